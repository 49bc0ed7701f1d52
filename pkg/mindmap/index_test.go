package mindmap

import (
	"reflect"
	"testing"
)

func testNodes(ids ...string) []Node {
	nodes := make([]Node, 0, len(ids))
	for _, id := range ids {
		nodes = append(nodes, Node{ID: id})
	}
	return nodes
}

func edge(source, target string) Edge {
	return Edge{ID: source + "->" + target, Source: source, Target: target}
}

func TestIndexChildren(t *testing.T) {
	tests := []struct {
		name  string
		nodes []Node
		edges []Edge
		id    string
		want  []string
	}{
		{
			name:  "children in edge order",
			nodes: testNodes("r", "b", "a"),
			edges: []Edge{edge("r", "b"), edge("r", "a")},
			id:    "r",
			want:  []string{"b", "a"},
		},
		{
			name:  "leaf has no children",
			nodes: testNodes("r", "a"),
			edges: []Edge{edge("r", "a")},
			id:    "a",
			want:  nil,
		},
		{
			name:  "dangling source ignored",
			nodes: testNodes("r"),
			edges: []Edge{edge("ghost", "r")},
			id:    "ghost",
			want:  nil,
		},
		{
			name:  "dangling target ignored",
			nodes: testNodes("r"),
			edges: []Edge{edge("r", "ghost")},
			id:    "r",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := NewIndex(tt.nodes, tt.edges)
			got := idx.Children(tt.id)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Children(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestIndexDescendants(t *testing.T) {
	nodes := testNodes("r", "a", "b", "a1", "a2")
	edges := []Edge{
		edge("r", "a"),
		edge("r", "b"),
		edge("a", "a1"),
		edge("a", "a2"),
	}
	idx := NewIndex(nodes, edges)

	got := idx.Descendants("a")
	want := map[string]bool{"a1": true, "a2": true}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Descendants(a) = %v, want %v", got, want)
	}

	if d := idx.Descendants("a1"); len(d) != 0 {
		t.Errorf("Descendants(a1) = %v, want empty", d)
	}
}

func TestIndexDescendantsExcludesSelf(t *testing.T) {
	nodes := testNodes("a", "b")
	edges := []Edge{edge("a", "b"), edge("b", "a")}
	idx := NewIndex(nodes, edges)

	got := idx.Descendants("a")
	if got["a"] {
		t.Error("Descendants(a) contains the start node itself")
	}
	if !got["b"] {
		t.Error("Descendants(a) missing b")
	}
}

func TestIndexDescendantsCycleTerminates(t *testing.T) {
	nodes := testNodes("a", "b", "c")
	edges := []Edge{edge("a", "b"), edge("b", "c"), edge("c", "a")}
	idx := NewIndex(nodes, edges)

	got := idx.Descendants("a")
	want := map[string]bool{"b": true, "c": true}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Descendants(a) = %v, want %v", got, want)
	}
}
