// Package layout is the incremental mind-map layout engine.
//
// Layout positions an arbitrarily shaped, dynamically growing tree so that
// no two node footprints overlap, already-pinned (user-dragged) positions
// survive every pass untouched, and children always land below their parent.
//
// The pipeline inside a single Layout call:
//
//  1. Footprint estimation - deterministic label-length → rectangle mapping
//  2. Tree traversal       - iterative, pinned-aware, batched sibling blocks
//  3. Space-finding search - preferred slots → spiral → grid scan → fallback
//  4. Overlap resolution   - bounded relaxation plus a corrective last pass
//
// Degradation is explicit: when the resolver's budget runs out against
// immovable (pinned) geometry, the residual pairs are listed in the Report
// instead of raising an error.
package layout
