package layout

import (
	"time"

	"github.com/mindweave/mindweave/pkg/mindmap"
	"github.com/mindweave/mindweave/pkg/observability"
)

// Layout computes non-overlapping positions for the tree below rootID and
// returns a new node slice plus a Report describing the resolution outcome.
//
// The input graph is never modified. Pinned nodes keep their stored
// positions verbatim; unpinned nodes are placed by the space-finding search
// and then relaxed by the overlap resolver. A missing or unknown root
// returns the nodes unmodified - structural problems in generator output
// degrade, they never fail (see Report for soft degradation).
//
// Traversal is iterative with a node-count guard so an adversarial, very
// deep generated subgraph cannot exhaust the stack.
func Layout(g mindmap.Graph, rootID string, cfg Config) ([]mindmap.Node, Report) {
	start := time.Now()
	nodes := make([]mindmap.Node, len(g.Nodes))
	copy(nodes, g.Nodes)

	root := mindmap.RootID(g.Nodes, rootID)
	idx := mindmap.NewIndex(g.Nodes, g.Edges)
	if root == "" || !idx.Has(root) {
		return nodes, Report{}
	}

	observability.Layout().OnLayoutStart(len(nodes))

	byID := make(map[string]int, len(nodes))
	for i, n := range nodes {
		byID[n.ID] = i
	}

	sidx := newSpatialIndex(cfg.CellSize)
	search := newSearcher(cfg, sidx)

	// The root anchors the tree: a pinned root keeps its dragged position,
	// an unpinned root keeps whatever position it already carries so
	// incremental updates do not recenter the map.
	decided := map[string]bool{root: true}
	sidx.insert(root, cfg.Footprint(nodes[byID[root]]))

	visited := make(map[string]bool, len(nodes))
	stack := []string{root}
	processed := 0

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[id] {
			continue
		}
		visited[id] = true
		if processed++; processed > cfg.MaxNodes {
			break
		}

		var kids []string
		for _, c := range idx.Children(id) {
			if !decided[c] {
				decided[c] = true
				kids = append(kids, c)
			}
		}
		if len(kids) == 0 {
			continue
		}

		parent := nodes[byID[id]]
		floorY := parent.Position.Y
		idealX := parent.Position.X
		idealY := parent.Position.Y + cfg.LevelGapY

		if anyPinned(nodes, byID, kids) {
			placeEach(nodes, byID, kids, cfg, search, sidx, floorY, idealX, idealY)
		} else {
			placeBlock(nodes, byID, kids, cfg, search, sidx, floorY, idealX, idealY)
		}
		stack = append(stack, kids...)
	}

	report := resolveOverlaps(nodes, cfg)
	report.Nodes = len(nodes)
	report.Duration = time.Since(start)

	observability.Layout().OnLayoutComplete(len(nodes), report.ResidualOverlaps, report.Duration)
	return nodes, report
}

func anyPinned(nodes []mindmap.Node, byID map[string]int, ids []string) bool {
	for _, id := range ids {
		if nodes[byID[id]].Pinned {
			return true
		}
	}
	return false
}

// placeEach positions children one at a time. Pinned children keep their
// stored position; unpinned children ask the search, each seeing every
// footprint placed so far.
func placeEach(nodes []mindmap.Node, byID map[string]int, kids []string, cfg Config, search *searcher, sidx *spatialIndex, floorY, idealX, idealY float64) {
	for _, c := range kids {
		i := byID[c]
		if !nodes[i].Pinned {
			w := cfg.NodeWidth(nodes[i].DisplayLabel())
			x, y := search.findBelow(floorY, idealX, idealY, w, cfg.NodeHeight)
			nodes[i].Position = mindmap.Position{X: x, Y: y}
		}
		sidx.insert(c, cfg.Footprint(nodes[i]))
	}
}

// placeBlock positions an all-unpinned sibling group with a single search
// call sized for the whole block, then distributes the children evenly
// inside it. One search per sibling group keeps siblings visually grouped
// and minimizes search cost.
func placeBlock(nodes []mindmap.Node, byID map[string]int, kids []string, cfg Config, search *searcher, sidx *spatialIndex, floorY, idealX, idealY float64) {
	total := 0.0
	for _, c := range kids {
		total += cfg.NodeWidth(nodes[byID[c]].DisplayLabel())
	}
	total += cfg.SiblingGapX * float64(len(kids)-1)

	bx, by := search.findBelow(floorY, idealX, idealY, total, cfg.NodeHeight)

	x := bx - total/2
	for _, c := range kids {
		i := byID[c]
		w := cfg.NodeWidth(nodes[i].DisplayLabel())
		nodes[i].Position = mindmap.Position{X: x + w/2, Y: by}
		x += w + cfg.SiblingGapX
		sidx.insert(c, cfg.Footprint(nodes[i]))
	}
}
