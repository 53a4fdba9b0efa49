package gridpath

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridInBounds(t *testing.T) {
	grid := NewGrid(3, 2, nil, Cell{}, Cell{})

	tests := []struct {
		cell Cell
		want bool
	}{
		{Cell{0, 0}, true},
		{Cell{2, 1}, true},
		{Cell{3, 0}, false},
		{Cell{0, 2}, false},
		{Cell{-1, 0}, false},
		{Cell{0, -1}, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, grid.InBounds(tt.cell), "InBounds(%s)", tt.cell)
	}
}

func TestGridPassableIgnoresBounds(t *testing.T) {
	grid := NewGrid(2, 2, []Cell{{1, 1}, {1, 1}}, Cell{}, Cell{})

	assert.Len(t, grid.Blocked, 1)
	assert.False(t, grid.Passable(Cell{1, 1}))
	assert.True(t, grid.IsBlocked(Cell{1, 1}))
	assert.True(t, grid.Passable(Cell{0, 1}))
	assert.True(t, grid.Passable(Cell{7, 7}), "out-of-bounds cells are passable unless listed")
}

func TestGridNeighborsOrder(t *testing.T) {
	grid := NewGrid(3, 3, nil, Cell{}, Cell{})

	got := slices.Collect(grid.Neighbors(Cell{1, 1}))
	assert.Equal(t, []Cell{{2, 1}, {0, 1}, {1, 2}, {1, 0}}, got)
}

func TestGridNeighborsFiltered(t *testing.T) {
	grid := NewGrid(3, 3, []Cell{{1, 0}}, Cell{}, Cell{})

	assert.Equal(t, []Cell{{0, 1}}, slices.Collect(grid.Neighbors(Cell{0, 0})))
	assert.Equal(t, []Cell{{2, 1}, {0, 1}, {1, 2}}, slices.Collect(grid.Neighbors(Cell{1, 1})))
}

func TestGridNeighborsStopsEarly(t *testing.T) {
	grid := NewGrid(3, 3, nil, Cell{}, Cell{})

	var seen []Cell
	for c := range grid.Neighbors(Cell{1, 1}) {
		seen = append(seen, c)
		if len(seen) == 2 {
			break
		}
	}
	require.Len(t, seen, 2)
	assert.Equal(t, Cell{0, 1}, seen[1])
}

func TestGridBlockedCellsSorted(t *testing.T) {
	grid := NewGrid(4, 4, []Cell{{3, 2}, {0, 1}, {2, 1}, {1, 3}}, Cell{}, Cell{})

	assert.Equal(t, []Cell{{0, 1}, {2, 1}, {3, 2}, {1, 3}}, grid.BlockedCells())
}

func TestDirectionApply(t *testing.T) {
	c := Cell{5, 5}
	assert.Equal(t, Cell{6, 5}, Right.Apply(c))
	assert.Equal(t, Cell{4, 5}, Left.Apply(c))
	assert.Equal(t, Cell{5, 6}, Down.Apply(c))
	assert.Equal(t, Cell{5, 4}, Up.Apply(c))
	assert.Equal(t, "UP", Up.String())
}
