package gridpath

import "github.com/pkg/errors"

// Route is the ordered sequence of cells from start to goal inclusive.
// An empty Route means the goal is unreachable.
type Route []Cell

// Directions converts the route into the moves that walk it.
func (r Route) Directions() ([]Direction, error) {
	if len(r) < 2 {
		return nil, nil
	}
	moves := make([]Direction, 0, len(r)-1)
	for i := 1; i < len(r); i++ {
		move, ok := directionBetween(r[i-1], r[i])
		if !ok {
			return nil, errors.Wrapf(ErrNonAdjacent, "step %d: %s -> %s", i, r[i-1], r[i])
		}
		moves = append(moves, move)
	}
	return moves, nil
}

// Cost sums cost over consecutive pairs.
func (r Route) Cost(cost CostFunc[Cell]) float64 {
	total := 0.0
	for i := 1; i < len(r); i++ {
		total += cost(r[i-1], r[i])
	}
	return total
}

func directionBetween(from, to Cell) (Direction, bool) {
	for _, d := range Directions {
		if d.Apply(from) == to {
			return d, true
		}
	}
	return Direction{}, false
}
