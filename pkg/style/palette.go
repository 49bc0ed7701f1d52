// Package style derives deterministic visual attributes from BFS levels.
//
// Levels affect styling only, never layout geometry. The same level always
// maps to the same color and shape, so re-running layout cannot reshuffle
// the legend.
package style

// Style is the visual attribute set for one level of the map.
type Style struct {
	Fill   string `json:"fill"`   // hex fill color
	Stroke string `json:"stroke"` // hex border color
	Shape  string `json:"shape"`  // node outline shape
}

// Shapes per depth band: the root is a rounded box, inner levels are boxes,
// deep levels fall back to ellipses.
const (
	ShapeRounded = "rounded"
	ShapeBox     = "box"
	ShapeEllipse = "ellipse"
)

// palette cycles for maps deeper than its length.
var palette = []Style{
	{Fill: "#4c6ef5", Stroke: "#364fc7", Shape: ShapeRounded},
	{Fill: "#22b8cf", Stroke: "#0b7285", Shape: ShapeBox},
	{Fill: "#51cf66", Stroke: "#2b8a3e", Shape: ShapeBox},
	{Fill: "#fcc419", Stroke: "#e67700", Shape: ShapeBox},
	{Fill: "#ff922b", Stroke: "#d9480f", Shape: ShapeEllipse},
	{Fill: "#ff6b6b", Stroke: "#c92a2a", Shape: ShapeEllipse},
	{Fill: "#cc5de8", Stroke: "#862e9c", Shape: ShapeEllipse},
}

// ForLevel returns the deterministic style for a BFS level.
// Negative levels are treated as level 0.
func ForLevel(level int) Style {
	if level < 0 {
		level = 0
	}
	return palette[level%len(palette)]
}

// Memo caches level→style lookups for one mind-map instance. It exists so
// callers hold styling state explicitly (per session) instead of a shared
// module-level cache.
type Memo struct {
	byLevel map[int]Style
}

// NewMemo creates an empty style memo.
func NewMemo() *Memo {
	return &Memo{byLevel: make(map[int]Style)}
}

// ForLevel returns the memoized style for a level.
func (m *Memo) ForLevel(level int) Style {
	if s, ok := m.byLevel[level]; ok {
		return s
	}
	s := ForLevel(level)
	m.byLevel[level] = s
	return s
}
