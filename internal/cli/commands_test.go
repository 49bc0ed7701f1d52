package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mindweave/mindweave/pkg/mindmap"
)

func writeGraphFile(t *testing.T, g mindmap.Graph) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "map.json")
	if err := mindmap.WriteGraphFile(g, path); err != nil {
		t.Fatal(err)
	}
	return path
}

func cliGraph() mindmap.Graph {
	return mindmap.Graph{
		Nodes: []mindmap.Node{
			{ID: "r", Label: "Root"},
			{ID: "a", Label: "Alpha"},
			{ID: "b", Label: "Beta"},
		},
		Edges: []mindmap.Edge{
			{ID: "e1", Source: "r", Target: "a"},
			{ID: "e2", Source: "r", Target: "b"},
		},
	}
}

func TestRunLayout(t *testing.T) {
	path := writeGraphFile(t, cliGraph())
	out := filepath.Join(t.TempDir(), "out.json")

	err := runLayout(context.Background(), path, &layoutOpts{output: out, rootID: "r"})
	if err != nil {
		t.Fatalf("runLayout: %v", err)
	}

	g, err := mindmap.ReadGraphFile(out)
	if err != nil {
		t.Fatal(err)
	}
	moved := false
	for _, n := range g.Nodes {
		if n.Position.Y > 0 {
			moved = true
		}
	}
	if !moved {
		t.Error("layout left every node at the origin")
	}
}

func TestRunLayoutOverwritesInputByDefault(t *testing.T) {
	path := writeGraphFile(t, cliGraph())

	if err := runLayout(context.Background(), path, &layoutOpts{}); err != nil {
		t.Fatalf("runLayout: %v", err)
	}
	if _, err := mindmap.ReadGraphFile(path); err != nil {
		t.Errorf("input file unreadable after in-place layout: %v", err)
	}
}

func TestRunMerge(t *testing.T) {
	path := writeGraphFile(t, cliGraph())
	genPath := writeGraphFile(t, mindmap.Graph{
		Nodes: []mindmap.Node{{ID: "a1", Label: "A1"}},
		Edges: []mindmap.Edge{{ID: "e3", Source: "a", Target: "a1"}},
	})
	out := filepath.Join(t.TempDir(), "merged.json")

	err := runMerge(context.Background(), path, &mergeOpts{
		generated: genPath,
		targetID:  "a",
		policy:    "append-new",
		output:    out,
	})
	if err != nil {
		t.Fatalf("runMerge: %v", err)
	}

	g, err := mindmap.ReadGraphFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Nodes) != 4 {
		t.Errorf("merged graph has %d nodes, want 4", len(g.Nodes))
	}
}

func TestRunMergeRejectsUnknownPolicy(t *testing.T) {
	path := writeGraphFile(t, cliGraph())

	err := runMerge(context.Background(), path, &mergeOpts{
		generated: path,
		targetID:  "a",
		policy:    "banana",
	})
	if err == nil {
		t.Error("unknown policy accepted")
	}
}

func TestRunExpand(t *testing.T) {
	path := writeGraphFile(t, cliGraph())
	genPath := filepath.Join(t.TempDir(), "gen.json")
	payload := `{"nodes":[{"id":"a1","label":"A1"},{"id":"a2","label":"A2"}],` +
		`"edges":[{"id":"e3","source":"a","target":"a1"},{"id":"e4","source":"a","target":"a2"}]}`
	if err := os.WriteFile(genPath, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "expanded.json")

	err := runExpand(context.Background(), path, &expandOpts{
		from:   genPath,
		nodeID: "a",
		rootID: "r",
		output: out,
	})
	if err != nil {
		t.Fatalf("runExpand: %v", err)
	}

	g, err := mindmap.ReadGraphFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Nodes) != 5 {
		t.Errorf("expanded graph has %d nodes, want 5", len(g.Nodes))
	}
}

func TestRunExpandUnknownNode(t *testing.T) {
	path := writeGraphFile(t, cliGraph())

	err := runExpand(context.Background(), path, &expandOpts{
		from:   path,
		nodeID: "ghost",
	})
	if err == nil {
		t.Error("expanding an unknown node succeeded")
	}
}

func TestRunRenderDOT(t *testing.T) {
	g := cliGraph()
	g.Nodes[0].Position = mindmap.Position{X: 0, Y: 0}
	g.Nodes[1].Position = mindmap.Position{X: -100, Y: 90}
	g.Nodes[2].Position = mindmap.Position{X: 100, Y: 90}
	path := writeGraphFile(t, g)
	out := filepath.Join(t.TempDir(), "map.dot")

	err := runRender(context.Background(), path, &renderOpts{
		output: out,
		format: formatDOT,
		rootID: "r",
	})
	if err != nil {
		t.Fatalf("runRender: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "digraph mindmap") {
		t.Errorf("DOT output malformed:\n%s", data)
	}
}
