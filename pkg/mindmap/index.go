package mindmap

// Index is the derived parent→children adjacency for a concept graph.
// It is rebuilt whenever the edge set changes; it never owns the data.
//
// Child order follows edge insertion order, which in turn determines
// left-to-right sibling placement during layout. Edges whose endpoints are
// missing from the node set are ignored so a malformed generation result
// cannot break traversal.
type Index struct {
	children map[string][]string
	present  map[string]bool
}

// NewIndex builds an adjacency index from the node and edge lists.
func NewIndex(nodes []Node, edges []Edge) *Index {
	idx := &Index{
		children: make(map[string][]string, len(nodes)),
		present:  make(map[string]bool, len(nodes)),
	}
	for _, n := range nodes {
		idx.present[n.ID] = true
	}
	for _, e := range edges {
		if !idx.present[e.Source] || !idx.present[e.Target] {
			continue // dangling endpoint
		}
		idx.children[e.Source] = append(idx.children[e.Source], e.Target)
	}
	return idx
}

// Children returns the ordered child IDs of a node.
// Returns nil for an unknown node or a leaf. The returned slice should be
// treated as a read-only view.
func (idx *Index) Children(id string) []string { return idx.children[id] }

// Has reports whether the node ID exists in the indexed node set.
func (idx *Index) Has(id string) bool { return idx.present[id] }

// Descendants returns the set of all nodes reachable from id through child
// edges, excluding id itself. The traversal guards against revisiting IDs,
// so cyclic adjacency (which an untrusted generator can produce) terminates
// instead of recursing forever. An unknown id yields an empty set.
func (idx *Index) Descendants(id string) map[string]bool {
	out := make(map[string]bool)
	if !idx.present[id] {
		return out
	}

	stack := append([]string(nil), idx.children[id]...)
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if out[curr] || curr == id {
			continue
		}
		out[curr] = true
		stack = append(stack, idx.children[curr]...)
	}
	return out
}
