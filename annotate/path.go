package annotate

import (
	"fmt"

	"github.com/katalvlaran/wayfinder/search"
	"github.com/katalvlaran/wayfinder/terrain"
)

// Reconstruct returns the path found by res, end cell first and start cell
// last.
// Complexity: O(L), L ≤ N².
func Reconstruct(m *terrain.Map, res *search.Result) ([]terrain.Coord, error) {
	if m == nil || res == nil {
		return nil, ErrNilInput
	}
	start, okS := m.Start()
	end, okE := m.End()
	if !okS || !okE {
		return nil, terrain.ErrMissingEndpoints
	}
	if !res.Found || !res.Closed(end) {
		return nil, ErrNoPath
	}

	cell, ok := m.At(end)
	if !ok {
		return nil, fmt.Errorf("%w: end %s is impassable", ErrCorruptPath, end)
	}
	path := []terrain.Coord{end}
	for cell.Coord != start {
		if len(path) > m.Len() {
			return nil, fmt.Errorf("%w: more than %d steps", ErrCorruptPath, m.Len())
		}
		p, ok := cell.Parent()
		if !ok {
			return nil, fmt.Errorf("%w: %s has no parent", ErrCorruptPath, cell.Coord)
		}
		if cell = m.CellAt(p); cell == nil {
			return nil, fmt.Errorf("%w: parent %d is not a cell", ErrCorruptPath, p)
		}
		path = append(path, cell.Coord)
	}

	return path, nil
}

// Reverse returns a copy of path in the opposite order.
func Reverse(path []terrain.Coord) []terrain.Coord {
	out := make([]terrain.Coord, len(path))
	for i, c := range path {
		out[len(path)-1-i] = c
	}

	return out
}
