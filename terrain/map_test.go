package terrain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfinder/terrain"
)

//----------------------------------------------------------------------------//
// NewMap and geometry
//----------------------------------------------------------------------------//

func TestNewMap_BadDimension(t *testing.T) {
	for _, n := range []int{0, -1} {
		m, err := terrain.NewMap(n)
		assert.Nil(t, m)
		assert.ErrorIs(t, err, terrain.ErrBadDimension, "n=%d", n)
	}
}

func TestNewMap_AllWater(t *testing.T) {
	m, err := terrain.NewMap(3)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Dim())
	assert.Equal(t, 9, m.Len())
	assert.Zero(t, m.Passable())
	_, ok := m.At(terrain.Coord{Row: 1, Col: 1})
	assert.False(t, ok, "fresh map positions are impassable")
}

func TestMap_IndexCoordinate(t *testing.T) {
	m, err := terrain.NewMap(4)
	require.NoError(t, err)
	for i := 0; i < m.Len(); i++ {
		c := m.Coordinate(i)
		assert.True(t, m.InBounds(c))
		assert.Equal(t, i, m.Index(c))
	}
	assert.Equal(t, terrain.Coord{Row: 2, Col: 3}, m.Coordinate(11))

	for _, c := range []terrain.Coord{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		assert.False(t, m.InBounds(c), "%s", c)
	}
	assert.Nil(t, m.CellAt(-1))
	assert.Nil(t, m.CellAt(16))
}

//----------------------------------------------------------------------------//
// Cells, blocking and endpoints
//----------------------------------------------------------------------------//

func TestSetCell_Costs(t *testing.T) {
	m, err := terrain.NewMap(2)
	require.NoError(t, err)
	cases := []struct {
		at   terrain.Coord
		kind terrain.Kind
		cost int
	}{
		{terrain.Coord{Row: 0, Col: 0}, terrain.Flatland, terrain.FlatlandCost},
		{terrain.Coord{Row: 0, Col: 1}, terrain.Forest, terrain.ForestCost},
		{terrain.Coord{Row: 1, Col: 0}, terrain.Mountain, terrain.MountainCost},
	}
	for _, tc := range cases {
		require.NoError(t, m.SetCell(tc.at, tc.kind))
		cell, ok := m.At(tc.at)
		require.True(t, ok)
		assert.Equal(t, tc.kind, cell.Kind)
		assert.Equal(t, tc.cost, cell.MovementCost)
		assert.Equal(t, tc.at, cell.Coord)
		_, parented := cell.Parent()
		assert.False(t, parented)
	}

	require.NoError(t, m.SetCell(terrain.Coord{Row: 1, Col: 1}, terrain.Water))
	_, ok := m.At(terrain.Coord{Row: 1, Col: 1})
	assert.False(t, ok)
	assert.Equal(t, 3, m.Passable())
}

func TestSetCell_OutOfBounds(t *testing.T) {
	m, err := terrain.NewMap(2)
	require.NoError(t, err)
	assert.ErrorIs(t, m.SetCell(terrain.Coord{Row: 2, Col: 0}, terrain.Flatland), terrain.ErrOutOfBounds)
	assert.ErrorIs(t, m.SetBlocked(terrain.Coord{Row: 0, Col: -1}), terrain.ErrOutOfBounds)
	assert.ErrorIs(t, m.SetStartCell(terrain.Coord{Row: 5, Col: 5}), terrain.ErrOutOfBounds)
	assert.ErrorIs(t, m.SetEndCell(terrain.Coord{Row: -1, Col: 0}), terrain.ErrOutOfBounds)
}

func TestSetBlocked(t *testing.T) {
	m := flatMap(t, 2)
	at := terrain.Coord{Row: 0, Col: 1}
	require.NoError(t, m.SetBlocked(at))
	_, ok := m.At(at)
	assert.False(t, ok)
}

func TestReady(t *testing.T) {
	m := flatMap(t, 3)
	assert.ErrorIs(t, m.Ready(), terrain.ErrMissingEndpoints)

	require.NoError(t, m.SetStartCell(terrain.Coord{Row: 0, Col: 0}))
	assert.ErrorIs(t, m.Ready(), terrain.ErrMissingEndpoints)

	require.NoError(t, m.SetEndCell(terrain.Coord{Row: 2, Col: 2}))
	assert.NoError(t, m.Ready())

	start, ok := m.Start()
	assert.True(t, ok)
	assert.Equal(t, terrain.Coord{Row: 0, Col: 0}, start)
	end, ok := m.End()
	assert.True(t, ok)
	assert.Equal(t, terrain.Coord{Row: 2, Col: 2}, end)

	require.NoError(t, m.SetBlocked(terrain.Coord{Row: 2, Col: 2}))
	assert.ErrorIs(t, m.Ready(), terrain.ErrEndpointBlocked)
}

//----------------------------------------------------------------------------//
// Heuristics
//----------------------------------------------------------------------------//

func TestHeuristics(t *testing.T) {
	a := terrain.Coord{Row: 1, Col: 4}
	b := terrain.Coord{Row: 3, Col: 1}
	assert.Equal(t, 5, terrain.Manhattan(a, b))
	assert.Equal(t, 3, terrain.Chebyshev(a, b))
	assert.Zero(t, terrain.Manhattan(a, a))
	assert.Zero(t, terrain.Chebyshev(b, b))
}

// TestHeuristic_ComputedWhenEndKnown checks that cells placed before the end
// marker keep an unset heuristic while later cells get one at creation.
func TestHeuristic_ComputedWhenEndKnown(t *testing.T) {
	m, err := terrain.NewMap(3)
	require.NoError(t, err)
	before := terrain.Coord{Row: 0, Col: 0}
	end := terrain.Coord{Row: 1, Col: 1}
	after := terrain.Coord{Row: 2, Col: 2}

	require.NoError(t, m.SetCell(before, terrain.Flatland))
	require.NoError(t, m.SetCell(end, terrain.Flatland))
	require.NoError(t, m.SetEndCell(end))
	require.NoError(t, m.SetCell(after, terrain.Forest))

	cb, _ := m.At(before)
	_, ok := cb.Heuristic()
	assert.False(t, ok, "cell placed before the end has no heuristic yet")

	ce, _ := m.At(end)
	_, ok = ce.Heuristic()
	assert.False(t, ok, "end cell is placed before it is marked")

	ca, _ := m.At(after)
	h, ok := ca.Heuristic()
	assert.True(t, ok)
	assert.Equal(t, 2, h)

	// Lazy computation; a zero distance is a real value, not "unset".
	assert.Equal(t, 2, m.EnsureHeuristic(cb))
	assert.Equal(t, 0, m.EnsureHeuristic(ce))
	h, ok = ce.Heuristic()
	assert.True(t, ok)
	assert.Zero(t, h)
}

func TestHeuristic_Chebyshev(t *testing.T) {
	m, err := terrain.NewMap(4, terrain.WithHeuristic(terrain.Chebyshev))
	require.NoError(t, err)
	require.NoError(t, m.SetEndCell(terrain.Coord{Row: 0, Col: 0}))
	require.NoError(t, m.SetCell(terrain.Coord{Row: 3, Col: 2}, terrain.Flatland))
	cell, _ := m.At(terrain.Coord{Row: 3, Col: 2})
	h, ok := cell.Heuristic()
	require.True(t, ok)
	assert.Equal(t, 3, h)
}

func TestSetEndCell_MovingEndDropsHeuristics(t *testing.T) {
	m := flatMap(t, 3)
	require.NoError(t, m.SetEndCell(terrain.Coord{Row: 0, Col: 0}))
	cell, _ := m.At(terrain.Coord{Row: 2, Col: 2})
	assert.Equal(t, 4, m.EnsureHeuristic(cell))

	require.NoError(t, m.SetEndCell(terrain.Coord{Row: 2, Col: 1}))
	_, ok := cell.Heuristic()
	assert.False(t, ok)
	assert.Equal(t, 1, m.EnsureHeuristic(cell))
}

//----------------------------------------------------------------------------//
// Search fields
//----------------------------------------------------------------------------//

func TestRelaxAndReset(t *testing.T) {
	m := flatMap(t, 2)
	cell, _ := m.At(terrain.Coord{Row: 1, Col: 1})
	cell.Relax(4, 2, 0)
	assert.Equal(t, 4, cell.Cost())
	assert.Equal(t, 6, cell.TotalCost())
	p, ok := cell.Parent()
	assert.True(t, ok)
	assert.Zero(t, p)

	m.ResetSearch()
	assert.Zero(t, cell.Cost())
	assert.Zero(t, cell.TotalCost())
	_, ok = cell.Parent()
	assert.False(t, ok)
}

func TestSetStartCell_ResetsStartCost(t *testing.T) {
	m := flatMap(t, 2)
	at := terrain.Coord{Row: 1, Col: 0}
	cell, _ := m.At(at)
	cell.Relax(7, 1, 3)
	require.NoError(t, m.SetStartCell(at))
	assert.Zero(t, cell.TotalCost())
	_, ok := cell.Parent()
	assert.False(t, ok)
}

func TestKind(t *testing.T) {
	assert.False(t, terrain.Water.Passable())
	assert.True(t, terrain.Mountain.Passable())
	assert.Zero(t, terrain.Water.Cost())
	assert.Equal(t, "forest", terrain.Forest.String())
	assert.Equal(t, "[3, 7]", terrain.Coord{Row: 3, Col: 7}.String())
}

// flatMap returns an n×n map of flatland without endpoints.
func flatMap(t *testing.T, n int) *terrain.Map {
	t.Helper()
	m, err := terrain.NewMap(n)
	require.NoError(t, err)
	for i := 0; i < m.Len(); i++ {
		require.NoError(t, m.SetCell(m.Coordinate(i), terrain.Flatland))
	}

	return m
}
