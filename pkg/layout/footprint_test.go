package layout

import (
	"strings"
	"testing"

	"github.com/mindweave/mindweave/pkg/mindmap"
)

func TestNodeWidth(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name  string
		label string
		want  float64
	}{
		{"empty label hits minimum", "", cfg.MinNodeWidth},
		{"short label hits minimum", "ab", cfg.MinNodeWidth},
		{"long label scales with length", strings.Repeat("x", 20), 20*cfg.CharWidth + 2*cfg.PaddingX},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.NodeWidth(tt.label); got != tt.want {
				t.Errorf("NodeWidth(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}

func TestFootprintCenteredOnPosition(t *testing.T) {
	cfg := DefaultConfig()
	n := mindmap.Node{ID: "a", Label: "hello", Position: mindmap.Position{X: 100, Y: 50}}

	r := cfg.Footprint(n)
	if r.CenterX() != 100 || r.CenterY() != 50 {
		t.Errorf("footprint center = (%v,%v), want (100,50)", r.CenterX(), r.CenterY())
	}
	if r.Height() != cfg.NodeHeight {
		t.Errorf("footprint height = %v, want %v", r.Height(), cfg.NodeHeight)
	}
	if r.Width() != cfg.NodeWidth(n.DisplayLabel()) {
		t.Errorf("footprint width = %v, want %v", r.Width(), cfg.NodeWidth(n.DisplayLabel()))
	}
}

func TestRectIntersects(t *testing.T) {
	a := RectAt(0, 0, 100, 40)

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"identical", RectAt(0, 0, 100, 40), true},
		{"partial overlap", RectAt(60, 10, 100, 40), true},
		{"touching edges do not intersect", RectAt(100, 0, 100, 40), false},
		{"clearly apart", RectAt(500, 500, 100, 40), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectExpand(t *testing.T) {
	r := RectAt(0, 0, 100, 40).Expand(5)
	if r.Width() != 110 || r.Height() != 50 {
		t.Errorf("expanded rect = %vx%v, want 110x50", r.Width(), r.Height())
	}
}
