package mindmap

// Drag applies a user drag of (dx, dy) to the node with the given ID and to
// every node in its descendant closure, as a single atomic update: the
// returned slice has every member of the subtree moved by exactly the same
// delta and marked pinned, and no other node touched.
//
// The input slice is not modified. An unknown id returns the nodes unchanged.
func Drag(nodes []Node, edges []Edge, id string, dx, dy float64) []Node {
	out := make([]Node, len(nodes))
	copy(out, nodes)

	idx := NewIndex(nodes, edges)
	if !idx.Has(id) {
		return out
	}
	moved := idx.Descendants(id)
	moved[id] = true

	for i := range out {
		if !moved[out[i].ID] {
			continue
		}
		out[i].Position.X += dx
		out[i].Position.Y += dy
		out[i].Pinned = true
	}
	return out
}
