package gridpath

import (
	"strings"

	"github.com/pkg/errors"
)

// Strategy selects a search algorithm.
type Strategy int

const (
	BFS Strategy = iota + 1
	DFS
	UCS
	AStar
)

var strategyNames = map[Strategy]string{
	BFS:   "bfs",
	DFS:   "dfs",
	UCS:   "ucs",
	AStar: "astar",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether s names one of the four strategies.
func (s Strategy) Valid() bool {
	_, ok := strategyNames[s]
	return ok
}

// ParseStrategy accepts bfs, dfs, ucs, astar (or a*), case-insensitively.
func ParseStrategy(name string) (Strategy, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "a*" {
		return AStar, nil
	}
	for strategy, strategyName := range strategyNames {
		if strategyName == normalized {
			return strategy, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownStrategy, "%q", name)
}

// HeuristicKind selects the distance estimate used by AStar.
type HeuristicKind int

const (
	ManhattanDistance HeuristicKind = iota + 1
	EuclideanDistance
)

func (h HeuristicKind) String() string {
	switch h {
	case ManhattanDistance:
		return "manhattan"
	case EuclideanDistance:
		return "euclidean"
	default:
		return "unknown"
	}
}

// Valid reports whether h names a known heuristic.
func (h HeuristicKind) Valid() bool { return h.Func() != nil }

// Func returns the heuristic for h, or nil if h is not a known kind.
func (h HeuristicKind) Func() Heuristic[Cell] {
	switch h {
	case ManhattanDistance:
		return Manhattan
	case EuclideanDistance:
		return Euclidean
	default:
		return nil
	}
}

// ParseHeuristic accepts manhattan or euclidean, case-insensitively.
func ParseHeuristic(name string) (HeuristicKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "manhattan":
		return ManhattanDistance, nil
	case "euclidean":
		return EuclideanDistance, nil
	default:
		return 0, errors.Wrapf(ErrUnknownHeuristic, "%q", name)
	}
}
