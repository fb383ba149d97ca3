package terrain

import (
	"errors"
	"fmt"
)

// Sentinel errors for terrain operations.
var (
	// ErrBadDimension indicates a non-positive grid dimension.
	ErrBadDimension = errors.New("terrain: dimension must be positive")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("terrain: coordinate outside the grid")
	// ErrMissingEndpoints indicates that start or end has not been set.
	ErrMissingEndpoints = errors.New("terrain: start and end cells must both be set")
	// ErrEndpointBlocked indicates that start or end lies on impassable terrain.
	ErrEndpointBlocked = errors.New("terrain: endpoint lies on impassable terrain")
)

// Movement costs per terrain type.
const (
	StartPointCost = 1
	EndPointCost   = 1
	FlatlandCost   = 1
	ForestCost     = 2
	MountainCost   = 3
)

// NoParent marks a cell without a predecessor (the start cell, or a cell the
// search never reached).
const NoParent = -1

// Kind classifies the terrain of a single grid position.
type Kind uint8

const (
	// Water is impassable; water positions hold no cell.
	Water Kind = iota
	// Flatland costs FlatlandCost. Start and end markers are flatland.
	Flatland
	// Forest costs ForestCost.
	Forest
	// Mountain costs MountainCost.
	Mountain
)

// Cost returns the movement cost of entering a cell of kind k.
// Water has no cost and returns 0.
func (k Kind) Cost() int {
	switch k {
	case Flatland:
		return FlatlandCost
	case Forest:
		return ForestCost
	case Mountain:
		return MountainCost
	default:
		return 0
	}
}

// Passable reports whether cells of kind k can be entered.
func (k Kind) Passable() bool { return k != Water }

// String returns the lowercase terrain name.
func (k Kind) String() string {
	switch k {
	case Water:
		return "water"
	case Flatland:
		return "flatland"
	case Forest:
		return "forest"
	case Mountain:
		return "mountain"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Coord addresses a grid position by row and column, both zero-based.
type Coord struct {
	Row, Col int
}

// Add returns c shifted by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// String renders c as "[row, col]".
func (c Coord) String() string {
	return fmt.Sprintf("[%d, %d]", c.Row, c.Col)
}

// Neighbors8 lists the offsets of the eight surrounding cells in clockwise
// order starting north: N, NE, E, SE, S, SW, W, NW.
var Neighbors8 = [8]Coord{
	{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1},
}

// Heuristic estimates the remaining cost from one coordinate to another.
type Heuristic func(from, to Coord) int

// Manhattan returns |Δrow| + |Δcol|.
func Manhattan(from, to Coord) int {
	return abs(from.Row-to.Row) + abs(from.Col-to.Col)
}

// Chebyshev returns max(|Δrow|, |Δcol|), the number of king moves between
// two cells.
func Chebyshev(from, to Coord) int {
	return max(abs(from.Row-to.Row), abs(from.Col-to.Col))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// Options configures a Map.
//
// Heuristic – estimate used for every cell's heuristic cost. Default Manhattan.
type Options struct {
	Heuristic Heuristic
}

// Option represents a functional option for configuring a Map.
type Option func(*Options)

// WithHeuristic selects the heuristic. A nil h keeps the default.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// DefaultOptions returns Options with Heuristic=Manhattan.
func DefaultOptions() Options {
	return Options{Heuristic: Manhattan}
}
