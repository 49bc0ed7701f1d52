package mindmap

import "testing"

func TestDragCascadesToDescendants(t *testing.T) {
	nodes := []Node{
		{ID: "r", Position: Position{X: 0, Y: 0}},
		{ID: "a", Position: Position{X: 10, Y: 90}},
		{ID: "a1", Position: Position{X: 5, Y: 180}},
		{ID: "b", Position: Position{X: 100, Y: 90}},
	}
	edges := []Edge{edge("r", "a"), edge("r", "b"), edge("a", "a1")}

	moved := Drag(nodes, edges, "a", 30, -20)

	byID := make(map[string]Node)
	for _, n := range moved {
		byID[n.ID] = n
	}

	// Dragged node and its descendant move by the exact same delta and pin.
	for _, tc := range []struct {
		id   string
		x, y float64
	}{
		{"a", 40, 70},
		{"a1", 35, 160},
	} {
		n := byID[tc.id]
		if n.Position.X != tc.x || n.Position.Y != tc.y {
			t.Errorf("%s at (%v,%v), want (%v,%v)", tc.id, n.Position.X, n.Position.Y, tc.x, tc.y)
		}
		if !n.Pinned {
			t.Errorf("%s not pinned after drag", tc.id)
		}
	}

	// Unrelated nodes stay put and stay unpinned.
	for _, id := range []string{"r", "b"} {
		n := byID[id]
		if n.Pinned {
			t.Errorf("%s pinned after unrelated drag", id)
		}
	}
	if byID["b"].Position.X != 100 || byID["b"].Position.Y != 90 {
		t.Errorf("b moved to (%v,%v)", byID["b"].Position.X, byID["b"].Position.Y)
	}
}

func TestDragUnknownNodeIsNoOp(t *testing.T) {
	nodes := []Node{{ID: "a", Position: Position{X: 1, Y: 2}}}

	moved := Drag(nodes, nil, "ghost", 50, 50)
	if moved[0].Position.X != 1 || moved[0].Position.Y != 2 || moved[0].Pinned {
		t.Errorf("unknown drag mutated node: %+v", moved[0])
	}
}

func TestDragDoesNotMutateInput(t *testing.T) {
	nodes := []Node{{ID: "a"}}

	_ = Drag(nodes, nil, "a", 10, 10)
	if nodes[0].Position.X != 0 || nodes[0].Pinned {
		t.Errorf("input slice mutated: %+v", nodes[0])
	}
}
