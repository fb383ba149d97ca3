package search

import (
	"fmt"
	"math"

	"github.com/zyedidia/generic/heap"

	"github.com/katalvlaran/wayfinder/terrain"
)

// Run searches m for the cheapest path from its start cell to its end cell.
//
// Preconditions and validation (in order):
//  1. MaxExpansions must be non-negative (ErrBadMaxExpansions).
//  2. m must be non-nil (ErrNilMap).
//  3. Both endpoints must be set (ErrMissingEndpoints) and passable
//     (ErrEndpointBlocked).
//
// On success the map's cells carry the best cost and parent found for every
// reached cell, and the Result reports whether the end cell was closed. An
// unreachable end is not an error: Found is false.
//
// Complexity:
//
//   - Time:  O(E log V)
//   - Space: O(V + E)
func Run(m *terrain.Map, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxExpansions < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadMaxExpansions, cfg.MaxExpansions)
	}

	// 2) Validate the map and its endpoints
	if m == nil {
		return nil, ErrNilMap
	}
	if err := m.Ready(); err != nil {
		return nil, err
	}

	// 3) Fresh state for this invocation only
	m.ResetSearch()
	r := newRunner(m, cfg)

	// 4) Seed the frontier and run the main loop
	r.init()
	r.process()

	return r.result(), nil
}

// RunSearch runs the search on a map whose dimension the caller already
// knows, failing with ErrDimensionMismatch when it differs from m.Dim().
func RunSearch(m *terrain.Map, dimension int, opts ...Option) (*Result, error) {
	if m != nil && m.Dim() != dimension {
		return nil, fmt.Errorf("%w: map is %d, got %d", ErrDimensionMismatch, m.Dim(), dimension)
	}

	return Run(m, opts...)
}

// runner holds the mutable state for a single search.
type runner struct {
	m       *terrain.Map
	options Options

	// row-major indices of the endpoints
	start, end int
	// finalised cells; never cleared during a run
	closed []bool
	// lowest total queued per cell; math.MaxInt = never queued
	best []int
	// frontier, pruned lazily on pop
	open *heap.Heap[entry]

	expanded  int
	found     bool
	truncated bool
}

// entry is one frontier item. A cell may have several entries; only the one
// whose total equals best[idx] is live.
type entry struct {
	idx   int
	total int
}

func newRunner(m *terrain.Map, cfg Options) *runner {
	start, _ := m.Start()
	end, _ := m.End()

	best := make([]int, m.Len())
	for i := range best {
		best[i] = math.MaxInt
	}

	return &runner{
		m:       m,
		options: cfg,
		start:   m.Index(start),
		end:     m.Index(end),
		closed:  make([]bool, m.Len()),
		best:    best,
		open:    heap.New[entry](func(a, b entry) bool { return a.total < b.total }),
	}
}

// init admits the start cell with total cost 0.
func (r *runner) init() {
	r.best[r.start] = 0
	r.open.Push(entry{idx: r.start, total: 0})
}

// process pops the cheapest live entry, closes it, and relaxes its neighbors
// until the end is closed, the frontier is empty, or the cap is reached.
func (r *runner) process() {
	for {
		// 1) Pop the cheapest entry; an empty frontier means no path.
		e, ok := r.open.Pop()
		if !ok {
			return
		}

		// 2) Drop stale entries superseded by a cheaper one.
		if r.closed[e.idx] || e.total != r.best[e.idx] {
			continue
		}

		// 3) Finalise the cell.
		r.closed[e.idx] = true
		r.expanded++
		cell := r.m.CellAt(e.idx)
		if r.options.OnClose != nil {
			r.options.OnClose(cell)
		}

		// 4) The end's cost and parent are final once it is closed.
		if e.idx == r.end {
			r.found = true
			return
		}

		if r.options.MaxExpansions > 0 && r.expanded >= r.options.MaxExpansions {
			r.truncated = true
			return
		}

		// 5) Relax the neighbors.
		r.relax(cell)
	}
}

// relax offers every open-able neighbor of cur a path through cur.
func (r *runner) relax(cur *terrain.Cell) {
	from := r.m.Index(cur.Coord)
	for _, d := range terrain.Neighbors8 {
		// Skip out-of-bounds and impassable neighbors.
		next, ok := r.m.At(cur.Coord.Add(d))
		if !ok {
			continue
		}
		i := r.m.Index(next.Coord)
		if r.closed[i] {
			continue
		}

		h := r.m.EnsureHeuristic(next)
		cost := cur.Cost() + next.MovementCost

		// Covers both "not yet open" (best is MaxInt) and "strictly cheaper".
		if cost+h >= r.best[i] {
			continue
		}
		next.Relax(cost, h, from)
		r.best[i] = cost + h
		r.open.Push(entry{idx: i, total: cost + h})
	}
}

// result packages the outcome. The closed grid moves into the Result.
func (r *runner) result() *Result {
	res := &Result{
		Found:     r.found,
		Expanded:  r.expanded,
		Truncated: r.truncated,
		dim:       r.m.Dim(),
		closed:    r.closed,
	}
	if r.found {
		res.Cost = r.m.CellAt(r.end).Cost()
	}

	return res
}
