package gridpath

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
)

// Cell is a grid coordinate: X is the column, Y the row.
type Cell struct {
	X, Y int
}

func (c Cell) String() string { return fmt.Sprintf("(%d,%d)", c.X, c.Y) }

// Direction is one of the four orthogonal moves.
type Direction struct {
	Name   string
	DX, DY int
}

var (
	Right = Direction{Name: "RIGHT", DX: 1, DY: 0}
	Left  = Direction{Name: "LEFT", DX: -1, DY: 0}
	Down  = Direction{Name: "DOWN", DX: 0, DY: 1}
	Up    = Direction{Name: "UP", DX: 0, DY: -1}
)

// Directions is the canonical neighbour enumeration order: +x, -x, +y, -y.
// BFS and DFS results depend on it.
var Directions = [4]Direction{Right, Left, Down, Up}

// Apply returns the cell one move away from c.
func (d Direction) Apply(c Cell) Cell { return Cell{X: c.X + d.DX, Y: c.Y + d.DY} }

func (d Direction) String() string { return d.Name }

// Grid is an immutable-by-convention map: dimensions, blocked cells, start and goal.
// Start and goal are expected in bounds and unblocked; that is not checked here.
type Grid struct {
	Width   int
	Height  int
	Blocked map[Cell]struct{}
	Start   Cell
	Goal    Cell
}

// NewGrid builds a Grid, collapsing duplicate blocked cells.
func NewGrid(width, height int, blocked []Cell, start, goal Cell) *Grid {
	set := make(map[Cell]struct{}, len(blocked))
	for _, c := range blocked {
		set[c] = struct{}{}
	}
	return &Grid{Width: width, Height: height, Blocked: set, Start: start, Goal: goal}
}

// InBounds reports whether 0 <= X < Width and 0 <= Y < Height.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Passable reports whether c is not blocked. Bounds are not checked.
func (g *Grid) Passable(c Cell) bool {
	_, blocked := g.Blocked[c]
	return !blocked
}

// IsBlocked is the inverse of Passable.
func (g *Grid) IsBlocked(c Cell) bool { return !g.Passable(c) }

// Neighbors yields the in-bounds passable cells adjacent to c in Directions order.
func (g *Grid) Neighbors(c Cell) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for _, d := range Directions {
			next := d.Apply(c)
			if !g.InBounds(next) || !g.Passable(next) {
				continue
			}
			if !yield(next) {
				return
			}
		}
	}
}

// BlockedCells returns the blocked set sorted by row, then column.
func (g *Grid) BlockedCells() []Cell {
	cells := make([]Cell, 0, len(g.Blocked))
	for c := range g.Blocked {
		cells = append(cells, c)
	}
	slices.SortFunc(cells, func(a, b Cell) int {
		if n := cmp.Compare(a.Y, b.Y); n != 0 {
			return n
		}
		return cmp.Compare(a.X, b.X)
	})
	return cells
}
