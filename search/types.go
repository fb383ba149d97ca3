package search

import (
	"errors"

	"github.com/katalvlaran/wayfinder/terrain"
)

// Sentinel errors returned by Run.
var (
	// ErrNilMap indicates that Run received a nil map.
	ErrNilMap = errors.New("search: map is nil")

	// ErrMissingEndpoints indicates that start or end has not been set.
	// It is the same value as terrain.ErrMissingEndpoints.
	ErrMissingEndpoints = terrain.ErrMissingEndpoints

	// ErrEndpointBlocked indicates that start or end lies on impassable
	// terrain. It is the same value as terrain.ErrEndpointBlocked.
	ErrEndpointBlocked = terrain.ErrEndpointBlocked

	// ErrDimensionMismatch indicates that RunSearch was given a dimension
	// different from the map's.
	ErrDimensionMismatch = errors.New("search: dimension does not match the map")

	// ErrBadMaxExpansions indicates a negative expansion cap.
	ErrBadMaxExpansions = errors.New("search: MaxExpansions must be non-negative")
)

// Options configures a search.
//
// MaxExpansions – stop after closing this many cells (0 = no cap); a capped
// search reports Found=false and Truncated=true.
// OnClose       – called with every cell as it is closed, in closing order.
type Options struct {
	MaxExpansions int
	OnClose       func(cell *terrain.Cell)
}

// Option represents a functional option for configuring Run.
type Option func(*Options)

// WithMaxExpansions caps the number of closed cells. Negative values make
// Run return ErrBadMaxExpansions.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		o.MaxExpansions = n
	}
}

// WithOnClose registers a hook invoked for every closed cell. The hook must
// not modify the cell.
func WithOnClose(fn func(cell *terrain.Cell)) Option {
	return func(o *Options) {
		o.OnClose = fn
	}
}

// DefaultOptions returns Options with no expansion cap and no hook.
func DefaultOptions() Options {
	return Options{}
}

// Result summarises one search.
//
// Found     – the end cell was closed.
// Cost      – accumulated movement cost of the end cell (valid when Found).
// Expanded  – number of cells closed.
// Truncated – the search stopped at MaxExpansions before finishing.
type Result struct {
	Found     bool
	Cost      int
	Expanded  int
	Truncated bool

	dim    int
	closed []bool
}

// Closed reports whether the cell at c was finalised by the search.
func (r *Result) Closed(c terrain.Coord) bool {
	if c.Row < 0 || c.Row >= r.dim || c.Col < 0 || c.Col >= r.dim {
		return false
	}

	return r.closed[c.Row*r.dim+c.Col]
}

// ClosedCount returns the number of finalised cells; it equals Expanded.
func (r *Result) ClosedCount() int {
	n := 0
	for _, c := range r.closed {
		if c {
			n++
		}
	}

	return n
}
