package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate points the config and cache directories at a temp dir.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
}

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSolveCommandJSON(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "trap.json")
	if err := os.WriteFile(path, []byte(`{"cells": [[1,9,9],[5,9,9],[9,1,1]]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "solve", path, "-a", "dynamic,greedy", "--json")
	if err != nil {
		t.Fatalf("solve: %v", err)
	}

	var got solveOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if got.Size != 3 || len(got.Solutions) != 2 {
		t.Fatalf("got %+v", got)
	}
	if s := got.Solutions[0]; s.Algorithm != "dynamic" || s.MinCost != 7 {
		t.Errorf("first solution = %+v, want dynamic 7", s)
	}
	if s := got.Solutions[1]; s.Algorithm != "greedy" || s.MinCost != 19 {
		t.Errorf("second solution = %+v, want greedy 19", s)
	}
	if got.Solutions[0].Costs != nil {
		t.Error("tables should be omitted without --tables")
	}
}

func TestSolveCommandTables(t *testing.T) {
	isolate(t)
	out, err := execute(t, "solve", "--random", "3", "--seed", "5", "--json", "--tables", "--no-cache")
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	var got solveOutput
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatal(err)
	}
	s := got.Solutions[0]
	if len(s.Costs) != 3 || len(s.Predecessors) != 3 {
		t.Fatalf("tables missing: %+v", s)
	}
	if s.Predecessors[0][0] != -1 {
		t.Errorf("predecessor of column 0 = %d, want -1", s.Predecessors[0][0])
	}
	if got.Source != "random-3-5" {
		t.Errorf("source = %q", got.Source)
	}
}

func TestSolveCommandUsesConfig(t *testing.T) {
	isolate(t)
	dir := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	cfg := "[cache]\nbackend = \"none\"\n[solve]\nalgorithms = [\"greedy\"]\n"
	if err := os.WriteFile(filepath.Join(dir, configFileName), []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "solve", "--random", "4", "--json")
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if !strings.Contains(out, `"algorithm": "greedy"`) || strings.Contains(out, `"algorithm": "dynamic"`) {
		t.Errorf("config algorithms not applied:\n%s", out)
	}
}

func TestSolveCommandErrors(t *testing.T) {
	isolate(t)
	tests := []struct {
		name string
		args []string
	}{
		{"no input", []string{"solve"}},
		{"unknown algorithm", []string{"solve", "--random", "3", "-a", "astar"}},
		{"duplicate algorithm", []string{"solve", "--random", "3", "-a", "greedy,greedy"}},
		{"missing file", []string{"solve", "nope.txt"}},
		{"random too big", []string{"solve", "--random", "100000"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Errorf("%v should fail", tt.args)
			}
		})
	}
}

func TestGenerateCommand(t *testing.T) {
	isolate(t)

	out, err := execute(t, "generate", "-n", "4", "--seed", "9", "--format", "json")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	var doc struct {
		Cells [][]int `json:"cells"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("generate output: %v\n%s", err, out)
	}
	if len(doc.Cells) != 4 {
		t.Errorf("generated %d rows, want 4", len(doc.Cells))
	}

	path := filepath.Join(t.TempDir(), "g.toml")
	if _, err := execute(t, "generate", "-n", "3", "-o", path); err != nil {
		t.Fatalf("generate -o: %v", err)
	}
	if _, err := execute(t, "solve", path, "--json"); err != nil {
		t.Errorf("generated file does not solve: %v", err)
	}
}

func TestCachePathCommand(t *testing.T) {
	isolate(t)
	out, err := execute(t, "cache", "path")
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(os.Getenv("XDG_CACHE_HOME"), appName)
	if strings.TrimSpace(out) != want {
		t.Errorf("cache path = %q, want %q", out, want)
	}
}

func TestCompletionCommand(t *testing.T) {
	isolate(t)
	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, appName) {
		t.Error("bash completion should mention the binary")
	}
}
