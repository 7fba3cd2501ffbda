package pipeline

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/gridpath/pkg/cache"
	errs "github.com/matzehuels/gridpath/pkg/errors"
	"github.com/matzehuels/gridpath/pkg/grid"
)

var trap = grid.Grid{
	{1, 9, 9},
	{5, 9, 9},
	{9, 1, 1},
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"dot", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errs.Is(err, errs.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s", tt.format, errs.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}
	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateVizType(t *testing.T) {
	tests := []struct {
		vizType string
		wantErr bool
	}{
		{"board", false},
		{"nodelink", false},
		{"tower", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateVizType(tt.vizType)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateVizType(%q) error = %v, wantErr %v", tt.vizType, err, tt.wantErr)
		}
	}
}

func TestValidateAlgorithms(t *testing.T) {
	tests := []struct {
		names   []string
		wantErr bool
	}{
		{[]string{"dynamic"}, false},
		{[]string{"greedy", "dynamic"}, false},
		{[]string{"dijkstra"}, true},
		{[]string{"dynamic", "dynamic"}, true},
	}

	for _, tt := range tests {
		err := ValidateAlgorithms(tt.names)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateAlgorithms(%v) error = %v, wantErr %v", tt.names, err, tt.wantErr)
		}
		if err != nil && !errs.Is(err, errs.ErrCodeInvalidAlgorithm) {
			t.Errorf("ValidateAlgorithms(%v) code = %s", tt.names, errs.GetCode(err))
		}
	}
}

func TestOptionsDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if len(opts.Algorithms) != 1 || opts.Algorithms[0] != "dynamic" {
		t.Errorf("Algorithms = %v, want [dynamic]", opts.Algorithms)
	}
	if opts.VizType != VizTypeBoard {
		t.Errorf("VizType = %q", opts.VizType)
	}
	if opts.CellSize != DefaultCellSize || opts.Scale != DefaultScale {
		t.Errorf("CellSize = %v, Scale = %v", opts.CellSize, opts.Scale)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}
	if len(opts.Formats) != 0 {
		t.Errorf("Formats should stay empty, got %v", opts.Formats)
	}
}

func TestExecute(t *testing.T) {
	totals := grid.Totals{}
	r := NewRunner(newMemCache(), nil, nil)

	res, err := r.Execute(context.Background(), trap, Options{
		Algorithms: []string{"dynamic", "greedy"},
		Formats:    []string{"svg", "json", "dot"},
		Reporter:   totals,
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(res.Solutions) != 2 || res.Solutions[0].MinCost != 7 || res.Solutions[1].MinCost != 19 {
		t.Fatalf("unexpected solutions: %+v", res.Solutions)
	}
	if totals["dynamic"] != 7 || totals["greedy"] != 19 {
		t.Errorf("reported totals = %v", totals)
	}
	if got := res.Board.Count(grid.MarkedDynamic); got != 3 {
		t.Errorf("dynamic cells = %d, want 3", got)
	}
	if got := res.Board.Count(grid.MarkedGreedy); got != 3 {
		t.Errorf("greedy cells = %d, want 3", got)
	}
	for _, f := range []string{"svg", "json", "dot"} {
		if len(res.Artifacts[f]) == 0 {
			t.Errorf("missing %s artifact", f)
		}
	}
	if !strings.Contains(string(res.Artifacts["dot"]), "digraph") {
		t.Error("dot artifact should be DOT source")
	}
	if res.Stats.Size != 3 || res.GridHash == "" {
		t.Errorf("stats = %+v, hash = %q", res.Stats, res.GridHash)
	}
	if res.CacheInfo.SolveHits != 0 || res.CacheInfo.RenderHit {
		t.Errorf("first run should miss: %+v", res.CacheInfo)
	}
}

func TestExecuteCaching(t *testing.T) {
	mc := newMemCache()
	r := NewRunner(mc, nil, nil)
	opts := Options{Algorithms: []string{"dynamic", "greedy"}, Formats: []string{"svg"}}

	first, err := r.Execute(context.Background(), trap, opts)
	if err != nil {
		t.Fatal(err)
	}
	second, err := r.Execute(context.Background(), trap, opts)
	if err != nil {
		t.Fatal(err)
	}
	if second.CacheInfo.SolveHits != 2 || !second.CacheInfo.RenderHit {
		t.Errorf("second run should hit: %+v", second.CacheInfo)
	}
	if string(first.Artifacts["svg"]) != string(second.Artifacts["svg"]) {
		t.Error("cached artifact differs")
	}
	if second.Solutions[0].Path[2] != 2 {
		t.Errorf("cached path = %v", second.Solutions[0].Path)
	}

	opts.Refresh = true
	third, err := r.Execute(context.Background(), trap, opts)
	if err != nil {
		t.Fatal(err)
	}
	if third.CacheInfo.SolveHits != 0 || third.CacheInfo.RenderHit {
		t.Errorf("refresh should bypass the cache: %+v", third.CacheInfo)
	}

	other := grid.Grid{{1, 1}, {1, 1}}
	fourth, err := r.Execute(context.Background(), other, Options{Algorithms: []string{"dynamic"}})
	if err != nil {
		t.Fatal(err)
	}
	if fourth.CacheInfo.SolveHits != 0 {
		t.Error("a different grid must not hit")
	}
}

func TestExecuteErrors(t *testing.T) {
	r := NewRunner(nil, nil, nil)

	tests := []struct {
		name string
		g    grid.Grid
		opts Options
		code errs.Code
	}{
		{"bad grid", grid.Grid{{1, 2}}, Options{}, errs.ErrCodeInvalidInput},
		{"bad algorithm", trap, Options{Algorithms: []string{"astar"}}, errs.ErrCodeInvalidAlgorithm},
		{"bad format", trap, Options{Formats: []string{"gif"}}, errs.ErrCodeInvalidFormat},
		{"bad viz", trap, Options{VizType: "tower"}, errs.ErrCodeInvalidVizType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Execute(context.Background(), tt.g, tt.opts)
			if !errs.Is(err, tt.code) {
				t.Errorf("got %v, want %s", err, tt.code)
			}
		})
	}
}

func TestExecuteCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewRunner(nil, nil, nil).Execute(ctx, trap, Options{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestSolve(t *testing.T) {
	r := NewRunner(newMemCache(), cache.NewScopedKeyer(nil, "test:"), nil)

	res, hit, err := r.SolveWithCacheInfo(context.Background(), trap, "greedy")
	if err != nil || hit {
		t.Fatalf("first solve: hit=%v err=%v", hit, err)
	}
	if res.MinCost != 19 {
		t.Errorf("MinCost = %d, want 19", res.MinCost)
	}
	if _, hit, _ = r.SolveWithCacheInfo(context.Background(), trap, "greedy"); !hit {
		t.Error("second solve should hit")
	}
	if _, err := r.Solve(context.Background(), trap, "nope"); !errs.Is(err, errs.ErrCodeInvalidAlgorithm) {
		t.Errorf("unknown algorithm: %v", err)
	}
}

func TestRenderNodelinkDOT(t *testing.T) {
	b := Mark(trap, nil, nil)
	out, err := Render(context.Background(), b, nil, Options{VizType: VizTypeNodelink, Formats: []string{"dot", "json"}, Lattice: true})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out["dot"]), "#cccccc") {
		t.Error("lattice option should reach the DOT output")
	}
	if !strings.Contains(string(out["json"]), `"size": 3`) {
		t.Errorf("json = %s", out["json"])
	}
}

// memCache is an in-memory cache.Cache for tests.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (m *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = data
	return nil
}

func (m *memCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memCache) Close() error { return nil }
