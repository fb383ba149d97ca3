// Package search implements best-first (A*) search over a terrain.Map.
//
// Overview:
//
//   - Run expands cells in order of increasing total cost (accumulated
//     movement cost + heuristic) from the start cell until the end cell is
//     closed or the frontier is empty.
//   - Neighbors are the eight surrounding cells; cells outside the grid,
//     impassable cells and closed cells are skipped.
//   - Entering a cell costs its MovementCost, so the cost of a path is the sum
//     of the movement costs of every cell on it except the start.
//   - Every reached cell ends up with its best known cost and a parent index,
//     written into the map in place; annotate.Reconstruct walks those links.
//
// Search state:
//
//   - A fresh state is allocated per call: an N×N closed grid (append-only), a
//     min-heap open set ordered by total cost, and a best[] slice holding the
//     lowest total queued per cell.
//   - best[] makes "is it open, and is this candidate better" a single O(1)
//     comparison. A better candidate pushes a new heap entry; entries whose
//     total no longer matches best[] are stale and are dropped on pop.
//   - Run clears the search fields of the map before it starts, so calling it
//     twice on the same map yields the same result twice.
//
// Heuristic:
//
//   - The heuristic belongs to the map (terrain.WithHeuristic). Cells whose
//     heuristic is still unset when first reached get it computed then.
//   - Manhattan (the default) can overestimate diagonal moves; use
//     terrain.Chebyshev when the cost must be provably minimal.
//
// Ties:
//
//   - Cells with equal total cost compare equal and leave the heap in an
//     unspecified order; when several cheapest paths exist any one of them
//     may be returned.
//
// Complexity:
//
//   - Time:  O(E log V), V = N², E ≤ 8V.
//   - Space: O(V) for closed/best plus O(E) worst case heap entries.
//
// Errors (sentinel):
//
//   - ErrNilMap:            Run called with a nil map.
//   - ErrMissingEndpoints:  start or end not set; no search is performed.
//   - ErrEndpointBlocked:   start or end lies on water.
//   - ErrDimensionMismatch: RunSearch called with a dimension that is not the map's.
//   - ErrBadMaxExpansions:  WithMaxExpansions given a negative cap.
//
// Example:
//
//	m, _ := mapfile.Parse(strings.NewReader("@.X\r\n...\r\n...\r\n"))
//	res, err := search.Run(m)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Found, res.Cost) // true 2
package search
