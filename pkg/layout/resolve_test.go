package layout

import (
	"strings"
	"testing"

	"github.com/mindweave/mindweave/pkg/mindmap"
)

func TestResolveOverlapsSeparatesUnpinned(t *testing.T) {
	cfg := DefaultConfig()
	nodes := []mindmap.Node{
		{ID: "a", Position: mindmap.Position{X: 0, Y: 0}},
		{ID: "b", Position: mindmap.Position{X: 5, Y: 5}},
	}

	report := resolveOverlaps(nodes, cfg)

	if report.Degraded() {
		t.Fatalf("unpinned pair left degraded: %+v", report)
	}
	if cfg.Footprint(nodes[0]).Intersects(cfg.Footprint(nodes[1])) {
		t.Errorf("footprints still overlap: %+v vs %+v", nodes[0].Position, nodes[1].Position)
	}
}

func TestResolveOverlapsPinnedNeverMoves(t *testing.T) {
	cfg := DefaultConfig()
	nodes := []mindmap.Node{
		{ID: "anchor", Position: mindmap.Position{X: 0, Y: 0}, Pinned: true},
		{ID: "free", Position: mindmap.Position{X: 10, Y: 0}},
	}

	report := resolveOverlaps(nodes, cfg)

	if nodes[0].Position.X != 0 || nodes[0].Position.Y != 0 {
		t.Errorf("pinned node moved to %+v", nodes[0].Position)
	}
	if report.Degraded() {
		t.Errorf("one-pinned pair should resolve, got %+v", report)
	}
	if cfg.Footprint(nodes[0]).Intersects(cfg.Footprint(nodes[1])) {
		t.Error("free node did not absorb the full separation")
	}
}

func TestResolveOverlapsBothPinnedDegrades(t *testing.T) {
	cfg := DefaultConfig()
	nodes := []mindmap.Node{
		{ID: "a", Position: mindmap.Position{X: 0, Y: 0}, Pinned: true},
		{ID: "b", Position: mindmap.Position{X: 5, Y: 5}, Pinned: true},
	}

	report := resolveOverlaps(nodes, cfg)

	if !report.Degraded() {
		t.Fatal("both-pinned overlap must degrade, not resolve")
	}
	if len(report.DegradedPairs) != 1 {
		t.Fatalf("DegradedPairs = %v, want one pair", report.DegradedPairs)
	}
	pair := report.DegradedPairs[0]
	if pair[0] != "a" || pair[1] != "b" {
		t.Errorf("degraded pair = %v, want [a b]", pair)
	}
	// Degradation is a report, never a mutation.
	if nodes[0].Position.X != 0 || nodes[1].Position.X != 5 {
		t.Error("pinned positions mutated during degradation")
	}
}

func TestResolveOverlapsPrefersVerticalSeparation(t *testing.T) {
	cfg := DefaultConfig()
	// Slight vertical offset, heavy horizontal overlap: the resolver should
	// push along Y.
	nodes := []mindmap.Node{
		{ID: "a", Position: mindmap.Position{X: 0, Y: 0}},
		{ID: "b", Position: mindmap.Position{X: 2, Y: 20}},
	}

	_ = resolveOverlaps(nodes, cfg)

	if dx := nodes[1].Position.X - nodes[0].Position.X; dx > 20 || dx < -20 {
		t.Errorf("resolver moved horizontally (dx=%v) where vertical was cheaper", dx)
	}
	if dy := nodes[1].Position.Y - nodes[0].Position.Y; dy < cfg.NodeHeight {
		t.Errorf("vertical separation %v too small", dy)
	}
}

func TestReportString(t *testing.T) {
	clean := Report{Nodes: 10, Passes: 2}
	if s := clean.String(); !strings.Contains(s, "10") {
		t.Errorf("report string %q missing node count", s)
	}

	degraded := Report{Nodes: 10, ResidualOverlaps: 3}
	if s := degraded.String(); !strings.Contains(s, "3") {
		t.Errorf("degraded report string %q missing overlap count", s)
	}
}
