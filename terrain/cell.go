package terrain

// Cell is one passable grid position. Coord, Kind and MovementCost are fixed
// at creation; the remaining fields belong to the search and change only
// through Relax and reset, which update cost, total and parent together.
type Cell struct {
	Coord
	Kind         Kind
	MovementCost int

	heuristic    int
	hasHeuristic bool
	cost         int
	total        int
	parent       int
}

func newCell(at Coord, k Kind) *Cell {
	return &Cell{
		Coord:        at,
		Kind:         k,
		MovementCost: k.Cost(),
		parent:       NoParent,
	}
}

// Heuristic returns the cell's heuristic cost and whether it has been
// computed yet.
func (c *Cell) Heuristic() (int, bool) {
	return c.heuristic, c.hasHeuristic
}

// Cost returns the accumulated movement cost from the start cell along the
// best path found so far.
func (c *Cell) Cost() int { return c.cost }

// TotalCost returns Cost plus the heuristic; this is the search priority.
func (c *Cell) TotalCost() int { return c.total }

// Parent returns the flat index of the predecessor on the best known path.
// ok is false for the start cell and for cells never reached.
func (c *Cell) Parent() (idx int, ok bool) {
	return c.parent, c.parent != NoParent
}

// Relax records a better path to c: accumulated cost, total = cost +
// heuristic, and the predecessor index are written in one step.
func (c *Cell) Relax(cost, heuristic, parent int) {
	c.cost = cost
	c.total = cost + heuristic
	c.parent = parent
}

func (c *Cell) setHeuristic(h int) {
	c.heuristic = h
	c.hasHeuristic = true
}

func (c *Cell) clearHeuristic() {
	c.heuristic = 0
	c.hasHeuristic = false
}

func (c *Cell) reset() {
	c.cost = 0
	c.total = 0
	c.parent = NoParent
}
