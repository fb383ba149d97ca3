// Package terrain models a square terrain map as a grid of optional cells,
// each carrying a fixed movement cost and the search-derived cost/parent
// fields filled in by a best-first search.
//
// What:
//
//   - Map is the per-search context: an N×N arena of *Cell (nil = impassable
//     water), the start and end coordinates, and the heuristic in use.
//   - Cell holds its coordinates, terrain Kind and MovementCost (fixed at
//     creation), an optional heuristic, the accumulated cost, the total
//     (cost + heuristic) and a parent index into the arena.
//   - WaterBodies groups impassable cells into 8-connected components and
//     WaterIndex answers "which water bodies overlap this region" through an
//     R-tree.
//
// Terrain alphabet and movement costs:
//
//	~  water     impassable (nil cell)
//	@  start     flatland, cost 1
//	X  end       flatland, cost 1
//	.  flatland  cost 1
//	*  forest    cost 2
//	^  mountain  cost 3
//
// Heuristics:
//
//   - Manhattan (default): |Δrow| + |Δcol|.
//   - Chebyshev: max(|Δrow|, |Δcol|). Never overestimates on an 8-connected
//     grid whose cheapest move costs 1, so searches using it are optimal.
//
// A cell's heuristic is optional. When the end cell is known at the time a
// cell is placed the heuristic is computed immediately; otherwise it stays
// unset until EnsureHeuristic is called on first touch by the search.
//
// Parent links are flat row-major indices (row*N + col), never pointers, so a
// Map owns all of its cells and the parent graph cannot form ownership cycles.
//
// Errors:
//
//   - ErrBadDimension:     NewMap called with N ≤ 0.
//   - ErrOutOfBounds:      coordinate outside the N×N grid.
//   - ErrMissingEndpoints: start or end not set.
//   - ErrEndpointBlocked:  start or end lies on impassable terrain.
package terrain
