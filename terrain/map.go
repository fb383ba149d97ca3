package terrain

import "fmt"

// Map is the context of one pathfinding run: an N×N arena of cells plus the
// endpoints and heuristic. Its shape is fixed by NewMap; after the parser
// has placed the cells only the search fields of each Cell change.
type Map struct {
	dim       int
	cells     []*Cell // row-major; nil = impassable
	heuristic Heuristic

	start, end       Coord
	startSet, endSet bool
}

// NewMap allocates an N×N map whose positions are all impassable until
// SetCell places terrain on them.
// Returns ErrBadDimension if n ≤ 0.
// Complexity: O(N²) time and memory.
func NewMap(n int, opts ...Option) (*Map, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDimension, n)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Map{
		dim:       n,
		cells:     make([]*Cell, n*n),
		heuristic: cfg.Heuristic,
	}, nil
}

// Dim returns N, the number of rows (and columns).
func (m *Map) Dim() int { return m.dim }

// Len returns N², the number of grid positions.
func (m *Map) Len() int { return len(m.cells) }

// InBounds reports whether c lies within the grid.
func (m *Map) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < m.dim && c.Col >= 0 && c.Col < m.dim
}

// Index maps c to its row-major index: Row*N + Col.
func (m *Map) Index(c Coord) int {
	return c.Row*m.dim + c.Col
}

// Coordinate converts a row-major index back to a Coord.
func (m *Map) Coordinate(idx int) Coord {
	return Coord{Row: idx / m.dim, Col: idx % m.dim}
}

// At returns the cell at c. ok is false when c is out of bounds or
// impassable.
func (m *Map) At(c Coord) (cell *Cell, ok bool) {
	if !m.InBounds(c) {
		return nil, false
	}
	cell = m.cells[m.Index(c)]

	return cell, cell != nil
}

// CellAt returns the cell stored at a row-major index, or nil for water and
// for indices outside the arena.
func (m *Map) CellAt(idx int) *Cell {
	if idx < 0 || idx >= len(m.cells) {
		return nil
	}

	return m.cells[idx]
}

// SetCell places terrain of kind k at c, replacing whatever was there.
// Water clears the position. The new cell's heuristic is computed at once
// when the end is already known.
func (m *Map) SetCell(c Coord, k Kind) error {
	if !m.InBounds(c) {
		return fmt.Errorf("%w: %s in %dx%d grid", ErrOutOfBounds, c, m.dim, m.dim)
	}
	if !k.Passable() {
		m.cells[m.Index(c)] = nil
		return nil
	}
	cell := newCell(c, k)
	if m.endSet {
		cell.setHeuristic(m.heuristic(c, m.end))
	}
	m.cells[m.Index(c)] = cell

	return nil
}

// SetBlocked marks c as impassable.
func (m *Map) SetBlocked(c Coord) error {
	return m.SetCell(c, Water)
}

// SetStartCell records c as the start. The start cell's total cost is reset
// to zero.
func (m *Map) SetStartCell(c Coord) error {
	if !m.InBounds(c) {
		return fmt.Errorf("%w: start %s in %dx%d grid", ErrOutOfBounds, c, m.dim, m.dim)
	}
	m.start, m.startSet = c, true
	if cell, ok := m.At(c); ok {
		cell.reset()
	}

	return nil
}

// SetEndCell records c as the end. Moving an already known end discards every
// computed heuristic; EnsureHeuristic recomputes them against the new end.
func (m *Map) SetEndCell(c Coord) error {
	if !m.InBounds(c) {
		return fmt.Errorf("%w: end %s in %dx%d grid", ErrOutOfBounds, c, m.dim, m.dim)
	}
	if m.endSet && m.end != c {
		for _, cell := range m.cells {
			if cell != nil {
				cell.clearHeuristic()
			}
		}
	}
	m.end, m.endSet = c, true

	return nil
}

// Start returns the start coordinate and whether it has been set.
func (m *Map) Start() (Coord, bool) { return m.start, m.startSet }

// End returns the end coordinate and whether it has been set.
func (m *Map) End() (Coord, bool) { return m.end, m.endSet }

// Ready checks the preconditions of a search: both endpoints set and both on
// passable terrain.
func (m *Map) Ready() error {
	if !m.startSet || !m.endSet {
		return ErrMissingEndpoints
	}
	if _, ok := m.At(m.start); !ok {
		return fmt.Errorf("%w: start %s", ErrEndpointBlocked, m.start)
	}
	if _, ok := m.At(m.end); !ok {
		return fmt.Errorf("%w: end %s", ErrEndpointBlocked, m.end)
	}

	return nil
}

// EnsureHeuristic returns the cell's heuristic, computing it against the end
// cell first if it is still unset. The end must be set.
func (m *Map) EnsureHeuristic(cell *Cell) int {
	if h, ok := cell.Heuristic(); ok {
		return h
	}
	h := m.heuristic(cell.Coord, m.end)
	cell.setHeuristic(h)

	return h
}

// ResetSearch clears cost, total and parent on every cell so that a new
// search starts from a clean grid. Heuristics are kept.
// Complexity: O(N²).
func (m *Map) ResetSearch() {
	for _, cell := range m.cells {
		if cell != nil {
			cell.reset()
		}
	}
}

// Passable counts the cells that are not water.
func (m *Map) Passable() int {
	n := 0
	for _, cell := range m.cells {
		if cell != nil {
			n++
		}
	}

	return n
}
