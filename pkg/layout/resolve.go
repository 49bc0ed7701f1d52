package layout

import (
	"fmt"
	"math"
	"time"

	"github.com/mindweave/mindweave/pkg/mindmap"
)

// verticalBias makes the resolver favor vertical separation even when the
// horizontal overlap is somewhat smaller, preserving the parent-above-child
// reading order.
const verticalBias = 1.5

// Report summarizes a layout pass. Geometric degradation is a soft-fail
// condition: residual overlaps are reported here, never raised as errors,
// and rendering proceeds regardless.
type Report struct {
	Nodes            int           `json:"nodes"`             // nodes considered by the pass
	Passes           int           `json:"passes"`            // relaxation passes actually run
	ResidualOverlaps int           `json:"residual_overlaps"` // overlapping pairs left after the corrective pass
	DegradedPairs    [][2]string   `json:"degraded_pairs,omitempty"`
	Duration         time.Duration `json:"duration_ns"` // wall time for layout + resolution
}

// Degraded reports whether any overlap survived resolution.
func (r Report) Degraded() bool { return r.ResidualOverlaps > 0 }

// String renders a one-line validation summary.
func (r Report) String() string {
	if !r.Degraded() {
		return fmt.Sprintf("laid out %d nodes in %d passes (%s)", r.Nodes, r.Passes, r.Duration.Round(time.Millisecond))
	}
	return fmt.Sprintf("laid out %d nodes in %d passes, %d residual overlaps (%s)",
		r.Nodes, r.Passes, r.ResidualOverlaps, r.Duration.Round(time.Millisecond))
}

// resolveOverlaps runs bounded iterative relaxation over all footprints,
// then a final corrective pass that forces any survivors fully apart. Only
// pairs where both members are pinned can remain overlapping afterwards;
// those are reported as degraded.
func resolveOverlaps(nodes []mindmap.Node, cfg Config) Report {
	report := Report{}

	for pass := 0; pass < cfg.MaxResolvePasses; pass++ {
		report.Passes = pass + 1
		moved := false
		for _, p := range overlappingPairs(nodes, cfg) {
			if separate(nodes, p[0], p[1], cfg, false) {
				moved = true
			}
		}
		if !moved {
			break
		}
	}

	// Last resort: push survivors fully apart in one uncapped step.
	for _, p := range overlappingPairs(nodes, cfg) {
		separate(nodes, p[0], p[1], cfg, true)
	}

	for _, p := range overlappingPairs(nodes, cfg) {
		report.ResidualOverlaps++
		report.DegradedPairs = append(report.DegradedPairs, [2]string{nodes[p[0]].ID, nodes[p[1]].ID})
	}
	return report
}

// overlappingPairs returns index pairs (i < j) whose footprints, expanded by
// half the minimum gap each, intersect. The spatial index prunes candidates;
// exact rectangle math makes the final call.
func overlappingPairs(nodes []mindmap.Node, cfg Config) [][2]int {
	sidx := newSpatialIndex(cfg.CellSize)
	rects := make([]Rect, len(nodes))
	for i, n := range nodes {
		rects[i] = cfg.Footprint(n).Expand(cfg.MinGap / 2)
		sidx.insert(n.ID, rects[i])
	}

	var pairs [][2]int
	seen := make(map[[2]int]bool)
	for i := range nodes {
		for _, j := range sidx.candidates(rects[i]) {
			if i >= j {
				continue
			}
			key := [2]int{i, j}
			if seen[key] || !rects[i].Intersects(rects[j]) {
				continue
			}
			seen[key] = true
			pairs = append(pairs, key)
		}
	}
	return pairs
}

// separate pushes the pair (i, j) apart along the axis needing the smaller
// movement, with vertical preferred. During relaxation the displacement is
// damped and capped; the corrective pass applies the full separation in one
// step. Pinned nodes never move - if only one member is pinned the other
// absorbs the whole displacement, and if both are pinned nothing moves.
// Reports whether any position changed.
func separate(nodes []mindmap.Node, i, j int, cfg Config, corrective bool) bool {
	a, b := &nodes[i], &nodes[j]
	if a.Pinned && b.Pinned {
		return false
	}

	ra := cfg.Footprint(*a).Expand(cfg.MinGap / 2)
	rb := cfg.Footprint(*b).Expand(cfg.MinGap / 2)
	overlapX := math.Min(ra.Right, rb.Right) - math.Max(ra.Left, rb.Left)
	overlapY := math.Min(ra.Bottom, rb.Bottom) - math.Max(ra.Top, rb.Top)
	if overlapX <= 0 || overlapY <= 0 {
		return false
	}

	var dx, dy float64
	if overlapY <= overlapX*verticalBias {
		dy = overlapY
		if ra.CenterY() > rb.CenterY() {
			dy = -dy
		}
	} else {
		dx = overlapX
		if ra.CenterX() > rb.CenterX() {
			dx = -dx
		}
	}
	// Identical centers: nudge vertically so the pair can split.
	if dx == 0 && dy == 0 {
		dy = cfg.MinGap
	}

	if !corrective {
		dx = clampAbs(dx*cfg.Damping, cfg.MaxStep)
		dy = clampAbs(dy*cfg.Damping, cfg.MaxStep)
	}

	switch {
	case a.Pinned:
		b.Position.X += dx
		b.Position.Y += dy
	case b.Pinned:
		a.Position.X -= dx
		a.Position.Y -= dy
	default:
		a.Position.X -= dx / 2
		a.Position.Y -= dy / 2
		b.Position.X += dx / 2
		b.Position.Y += dy / 2
	}
	return true
}

func clampAbs(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}
