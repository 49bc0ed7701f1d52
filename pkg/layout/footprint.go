package layout

import "github.com/mindweave/mindweave/pkg/mindmap"

// Rect is an axis-aligned rectangle in screen coordinates (Y grows downward,
// so "below" a node means a larger Y). All coordinates are in user units.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Width returns the horizontal span of the rect.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical span of the rect.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// CenterX returns the horizontal center point of the rect.
func (r Rect) CenterX() float64 { return (r.Left + r.Right) / 2 }

// CenterY returns the vertical center point of the rect.
func (r Rect) CenterY() float64 { return (r.Top + r.Bottom) / 2 }

// Expand grows the rect by gap on every side.
func (r Rect) Expand(gap float64) Rect {
	return Rect{Left: r.Left - gap, Top: r.Top - gap, Right: r.Right + gap, Bottom: r.Bottom + gap}
}

// Intersects reports whether two rects overlap. Touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	return r.Left < o.Right && o.Left < r.Right && r.Top < o.Bottom && o.Top < r.Bottom
}

// RectAt builds a rect of the given size centered on (x, y).
func RectAt(x, y, w, h float64) Rect {
	return Rect{Left: x - w/2, Top: y - h/2, Right: x + w/2, Bottom: y + h/2}
}

// NodeWidth estimates the rendered width of a node label. This is the single
// source of truth for footprint width; every geometry operation goes through
// it so visual and collision footprints stay in lockstep.
func (c Config) NodeWidth(label string) float64 {
	w := c.CharWidth*float64(len(label)) + 2*c.PaddingX
	if w < c.MinNodeWidth {
		return c.MinNodeWidth
	}
	return w
}

// Footprint returns the estimated rectangular footprint of a node, centered
// on its current position. Footprints are never stored - always recomputed.
func (c Config) Footprint(n mindmap.Node) Rect {
	return c.FootprintAt(n, n.Position.X, n.Position.Y)
}

// FootprintAt returns the footprint the node would occupy if centered at
// (x, y).
func (c Config) FootprintAt(n mindmap.Node, x, y float64) Rect {
	return RectAt(x, y, c.NodeWidth(n.DisplayLabel()), c.NodeHeight)
}
