package mindmap

// Levels computes the BFS distance of every node from the designated root.
//
// Levels is consumed only for deterministic per-depth styling, never for
// layout geometry. Nodes unreachable from the root are omitted from the
// result (not assigned level 0). A missing or unknown root yields an empty
// map. Cycles terminate because each node is visited at most once.
func Levels(nodes []Node, edges []Edge, rootID string) map[string]int {
	idx := NewIndex(nodes, edges)
	levels := make(map[string]int)
	if rootID == "" || !idx.Has(rootID) {
		return levels
	}

	levels[rootID] = 0
	queue := []string{rootID}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		for _, child := range idx.Children(curr) {
			if _, seen := levels[child]; seen {
				continue
			}
			levels[child] = levels[curr] + 1
			queue = append(queue, child)
		}
	}
	return levels
}

// RootID resolves the designated root for a graph. An explicit root wins;
// otherwise the first node in the list is used (empty string for an empty
// graph). Callers are encouraged to pass an explicit root.
func RootID(nodes []Node, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if len(nodes) == 0 {
		return ""
	}
	return nodes[0].ID
}
