package gridpath

import "github.com/pkg/errors"

var (
	ErrUnknownStrategy  = errors.New("gridpath: unknown strategy")
	ErrUnknownHeuristic = errors.New("gridpath: unknown heuristic")
	ErrMissingHeuristic = errors.New("gridpath: A* requires a heuristic")
	ErrNilGrid          = errors.New("gridpath: grid is nil")
	ErrNonAdjacent      = errors.New("gridpath: route cells are not adjacent")
)
