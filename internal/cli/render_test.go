package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBasePath(t *testing.T) {
	tests := []struct {
		output, input, want string
	}{
		{"", "grids/trap.txt", "grids/trap"},
		{"", "random-8-1", "random-8-1"},
		{"out/board.svg", "trap.txt", "out/board"},
		{"out/board.dot", "trap.txt", "out/board"},
		{"out/board", "trap.txt", "out/board"},
		{"out/board.v2", "trap.txt", "out/board.v2"},
	}
	for _, tt := range tests {
		if got := basePath(tt.output, tt.input); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
		}
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	artifacts := map[string][]byte{
		"svg":  []byte("<svg/>"),
		"json": []byte("{}"),
	}

	paths, err := writeArtifacts(artifacts, []string{"svg", "json"}, "in.txt", filepath.Join(dir, "nested", "board.svg"))
	if err != nil {
		t.Fatalf("writeArtifacts() error: %v", err)
	}
	want := []string{filepath.Join(dir, "nested", "board.svg"), filepath.Join(dir, "nested", "board.json")}
	for i, p := range want {
		if paths[i] != p {
			t.Errorf("path[%d] = %q, want %q", i, paths[i], p)
		}
		if _, err := os.Stat(p); err != nil {
			t.Errorf("%s not written: %v", p, err)
		}
	}

	// A single format writes exactly to --output.
	single := filepath.Join(dir, "exact.out")
	paths, err = writeArtifacts(artifacts, []string{"svg"}, "in.txt", single)
	if err != nil || len(paths) != 1 || paths[0] != single {
		t.Errorf("single format wrote %v, %v", paths, err)
	}
}

func TestRenderCommand(t *testing.T) {
	isolate(t)
	base := filepath.Join(t.TempDir(), "board")

	_, err := execute(t, "render", "--random", "5", "-a", "dynamic,greedy", "-f", "svg,json,dot", "-o", base, "--lines")
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	svg, err := os.ReadFile(base + ".svg")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(svg), "<svg") || !strings.Contains(string(svg), "polyline") {
		t.Error("svg output missing board or path lines")
	}
	if data, err := os.ReadFile(base + ".json"); err != nil || !strings.Contains(string(data), `"greedy"`) {
		t.Errorf("json output: %v", err)
	}
	if data, err := os.ReadFile(base + ".dot"); err != nil || !strings.Contains(string(data), "digraph") {
		t.Errorf("dot output: %v", err)
	}
}

func TestRenderCommandErrors(t *testing.T) {
	isolate(t)
	for _, args := range [][]string{
		{"render", "--random", "3", "-f", "gif"},
		{"render", "--random", "3", "-t", "tower"},
	} {
		if _, err := execute(t, args...); err == nil {
			t.Errorf("%v should fail", args)
		}
	}
}
