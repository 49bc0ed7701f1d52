package layout

import (
	"math"
	"math/rand/v2"
)

// searcher finds collision-free positions for node footprints near an ideal
// layout slot. Strategies are tried in order of increasing cost, first
// success wins:
//
//  1. preferred slots - a small fixed set of offsets around the ideal
//  2. spiral sweep    - increasing-radius angular search, density-scored
//  3. grid scan       - bounded rectangular scan at a fixed step
//  4. fallback        - below the lowest placed footprint, cannot collide
//
// The vertical floor is a hard rule, not a preference: no strategy returns a
// center above the parent's Y, so children always read "below" their parent.
type searcher struct {
	cfg Config
	idx *spatialIndex
	rng *rand.Rand
}

func newSearcher(cfg Config, idx *spatialIndex) *searcher {
	return &searcher{
		cfg: cfg,
		idx: idx,
		rng: rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
	}
}

// candidate is a scored position under evaluation.
type candidate struct {
	x, y  float64
	score float64
}

// findBelow returns a collision-free center position for a w×h footprint,
// as close as possible to the ideal (ix, iy) and never above floorY.
func (s *searcher) findBelow(floorY, ix, iy, w, h float64) (float64, float64) {
	if iy < floorY {
		iy = floorY
	}

	if x, y, ok := s.preferredSlots(floorY, ix, iy, w, h); ok {
		return x, y
	}
	if x, y, ok := s.spiral(floorY, ix, iy, w, h); ok {
		return x, y
	}
	if x, y, ok := s.gridScan(floorY, ix, iy, w, h); ok {
		return x, y
	}
	return s.fallbackBelow(ix, h)
}

// preferredSlots covers the common case cheaply: directly below the ideal,
// then shifted left/right, then one level further down.
func (s *searcher) preferredSlots(floorY, ix, iy, w, h float64) (float64, float64, bool) {
	step := w + s.cfg.SiblingGapX
	offsets := [][2]float64{
		{0, 0},
		{-step, 0},
		{step, 0},
		{-step / 2, h + s.cfg.MinGap},
		{step / 2, h + s.cfg.MinGap},
		{0, s.cfg.LevelGapY},
	}
	for _, off := range offsets {
		x, y := ix+off[0], iy+off[1]
		if y < floorY {
			continue
		}
		if !s.idx.collides(RectAt(x, y, w, h), s.cfg.MinGap) {
			return x, y, true
		}
	}
	return 0, 0, false
}

// spiral sweeps rings of increasing radius around the ideal position. Each
// ring evaluates a fixed number of angles starting from a seeded random
// phase; valid candidates are scored by distance from ideal plus a penalty
// for local crowding, and the best candidate of the first ring that yields
// any valid position wins.
func (s *searcher) spiral(floorY, ix, iy, w, h float64) (float64, float64, bool) {
	const anglesPerRing = 12
	rings := s.cfg.SpiralAttempts / anglesPerRing
	if rings < 1 {
		rings = 1
	}
	phase := s.rng.Float64() * 2 * math.Pi

	for ring := 1; ring <= rings; ring++ {
		radius := float64(ring) * s.cfg.SpiralStep
		best := candidate{score: math.Inf(1)}
		found := false

		for a := 0; a < anglesPerRing; a++ {
			angle := phase + 2*math.Pi*float64(a)/anglesPerRing
			x := ix + radius*math.Cos(angle)
			y := iy + radius*math.Sin(angle)
			if y < floorY {
				continue
			}
			if s.idx.collides(RectAt(x, y, w, h), s.cfg.MinGap) {
				continue
			}
			score := math.Hypot(x-ix, y-iy) + s.densityPenalty(x, y)
			if score < best.score {
				best = candidate{x: x, y: y, score: score}
				found = true
			}
		}
		if found {
			return best.x, best.y, true
		}
	}
	return 0, 0, false
}

// gridScan walks a bounded rectangular region below the floor at a fixed
// step, scoring every collision-free position by distance from ideal, local
// density, and a bonus for clearance from the nearest placed node.
func (s *searcher) gridScan(floorY, ix, iy, w, h float64) (float64, float64, bool) {
	extent := s.cfg.GridScanExtent
	step := s.cfg.GridScanStep

	best := candidate{score: math.Inf(1)}
	found := false

	for y := math.Max(iy-extent, floorY); y <= iy+extent; y += step {
		for x := ix - extent; x <= ix+extent; x += step {
			if s.idx.collides(RectAt(x, y, w, h), s.cfg.MinGap) {
				continue
			}
			score := math.Hypot(x-ix, y-iy) + s.densityPenalty(x, y) - s.spacingBonus(x, y)
			if score < best.score {
				best = candidate{x: x, y: y, score: score}
				found = true
			}
		}
	}
	if found {
		return best.x, best.y, true
	}
	return 0, 0, false
}

// fallbackBelow places far enough below the lowest placed footprint that no
// collision is possible. Always succeeds; used only when the cheaper
// strategies exhaust their budgets.
func (s *searcher) fallbackBelow(ix, h float64) (float64, float64) {
	y := s.idx.lowestBottom() + s.cfg.LevelGapY + h/2
	return ix, y
}

// densityPenalty discourages crowded quadrants. Each neighbor within two
// cell sizes of the candidate costs a flat penalty.
func (s *searcher) densityPenalty(x, y float64) float64 {
	const perNeighbor = 18.0
	return perNeighbor * float64(s.idx.density(x, y, 2*s.cfg.CellSize))
}

// spacingBonus rewards clearance from the nearest placed node, capped so a
// lonely corner of the plane cannot outscore a close valid slot.
func (s *searcher) spacingBonus(x, y float64) float64 {
	d := s.idx.nearestCenterDistance(x, y, 2*s.cfg.CellSize)
	if math.IsInf(d, 1) {
		d = 2 * s.cfg.CellSize
	}
	return 0.25 * math.Min(d, 2*s.cfg.CellSize)
}
