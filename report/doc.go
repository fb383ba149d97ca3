// Package report prints human-readable views of a map and a search to an
// io.Writer. It only observes: nothing here changes a map or a result.
//
//   - Grid:    the terrain before the search. SO is the start, DE the end,
//     BL a blocked (water) cell, 0 any other cell.
//   - Scores:  the total cost (cost + heuristic) the search left on every
//     cell, BL for water.
//   - Path:    the route as "[r, c] -> [r, c] -> ...", end first.
//   - NoPath:  the message printed when the end is unreachable.
//   - Overlay: the map in its file alphabet with '#' over the path.
//
// Cells are printed as "%-3d " so that columns line up for costs below 1000.
package report
