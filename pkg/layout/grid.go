package layout

import "math"

// cellKey addresses one square cell of the uniform grid.
type cellKey struct{ col, row int }

// spatialIndex buckets node footprints into fixed-size square cells so the
// search and resolver can ask "what might overlap this rect" without scanning
// every placed node. Queries return a superset of true overlaps; callers
// narrow with exact rect intersection.
//
// The index is rebuilt from scratch whenever the placed set changes
// materially - cheap relative to layout cost at the expected graph sizes.
type spatialIndex struct {
	cell  float64
	cells map[cellKey][]int // cell -> entry indices
	ids   []string
	rects []Rect
}

func newSpatialIndex(cellSize float64) *spatialIndex {
	return &spatialIndex{
		cell:  cellSize,
		cells: make(map[cellKey][]int),
	}
}

func (s *spatialIndex) key(x, y float64) cellKey {
	return cellKey{col: int(math.Floor(x / s.cell)), row: int(math.Floor(y / s.cell))}
}

// insert registers a footprint into every cell its bounding box overlaps.
func (s *spatialIndex) insert(id string, r Rect) {
	i := len(s.rects)
	s.ids = append(s.ids, id)
	s.rects = append(s.rects, r)

	lo := s.key(r.Left, r.Top)
	hi := s.key(r.Right, r.Bottom)
	for col := lo.col; col <= hi.col; col++ {
		for row := lo.row; row <= hi.row; row++ {
			k := cellKey{col, row}
			s.cells[k] = append(s.cells[k], i)
		}
	}
}

// candidates returns the entry indices registered in any cell the query rect
// overlaps. Entries spanning multiple cells are deduplicated.
func (s *spatialIndex) candidates(r Rect) []int {
	lo := s.key(r.Left, r.Top)
	hi := s.key(r.Right, r.Bottom)

	var out []int
	seen := make(map[int]bool)
	for col := lo.col; col <= hi.col; col++ {
		for row := lo.row; row <= hi.row; row++ {
			for _, i := range s.cells[cellKey{col, row}] {
				if !seen[i] {
					seen[i] = true
					out = append(out, i)
				}
			}
		}
	}
	return out
}

// collides reports whether the candidate rect, expanded by gap, intersects
// any placed footprint.
func (s *spatialIndex) collides(r Rect, gap float64) bool {
	expanded := r.Expand(gap)
	for _, i := range s.candidates(expanded) {
		if expanded.Intersects(s.rects[i]) {
			return true
		}
	}
	return false
}

// density counts placed footprints whose centers fall within radius of
// (x, y). The search uses it to penalize crowded quadrants.
func (s *spatialIndex) density(x, y, radius float64) int {
	probe := RectAt(x, y, 2*radius, 2*radius)
	count := 0
	for _, i := range s.candidates(probe) {
		r := s.rects[i]
		dx := r.CenterX() - x
		dy := r.CenterY() - y
		if dx*dx+dy*dy <= radius*radius {
			count++
		}
	}
	return count
}

// nearestCenterDistance returns the distance from (x, y) to the nearest
// placed footprint center, or +Inf when nothing is placed nearby. Only the
// local neighborhood (within reach) is consulted.
func (s *spatialIndex) nearestCenterDistance(x, y, reach float64) float64 {
	probe := RectAt(x, y, 2*reach, 2*reach)
	nearest := math.Inf(1)
	for _, i := range s.candidates(probe) {
		r := s.rects[i]
		dx := r.CenterX() - x
		dy := r.CenterY() - y
		if d := math.Hypot(dx, dy); d < nearest {
			nearest = d
		}
	}
	return nearest
}

// lowestBottom returns the largest Bottom coordinate among placed footprints,
// or 0 for an empty index. The guaranteed-fallback strategy places below it.
func (s *spatialIndex) lowestBottom() float64 {
	lowest := 0.0
	for _, r := range s.rects {
		if r.Bottom > lowest {
			lowest = r.Bottom
		}
	}
	return lowest
}

// size returns the number of placed footprints.
func (s *spatialIndex) size() int { return len(s.rects) }
