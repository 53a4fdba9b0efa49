package gridpath

import (
	"iter"

	"github.com/pkg/errors"
)

// Graph is generic over node type N.
// N must be comparable so it can be used in maps.
type Graph[NodeType comparable] interface {
	Neighbors(node NodeType) iter.Seq[NodeType]
}

// NeighborFunc adapts a plain function to Graph.
type NeighborFunc[NodeType comparable] func(node NodeType) iter.Seq[NodeType]

// Neighbors calls f(node).
func (f NeighborFunc[NodeType]) Neighbors(node NodeType) iter.Seq[NodeType] { return f(node) }

// CostFunc returns the positive cost of moving from one node to an adjacent one.
type CostFunc[NodeType comparable] func(from NodeType, to NodeType) float64

// UnitCost charges 1 for every step.
func UnitCost[NodeType comparable](NodeType, NodeType) float64 { return 1 }

// Heuristic returns the estimated cost from node a to node b
type Heuristic[NodeType comparable] func(from NodeType, to NodeType) float64

// Result contains the outcome of a search.
// Path is empty when the goal was not reached; that is not an error.
// BFS and DFS report the edge count as TotalCost.
type Result[NodeType comparable] struct {
	Path          []NodeType
	TotalCost     float64
	ExpandedNodes int
	Found         bool
	// Truncated is set when MaxExpansions stopped the search before the
	// frontier was exhausted. The goal may still be reachable.
	Truncated bool
}

// Options defines parameters for the search.
type Options[NodeType comparable] struct {
	// OnExpand is called with each node whose neighbours are about to be generated.
	OnExpand func(node NodeType)
	// MaxExpansions stops the search unreached after this many expansions. Zero means no limit.
	MaxExpansions int
}

// Option is a function that modifies Options.
type Option[NodeType comparable] func(*Options[NodeType])

// WithExpandHook registers a callback invoked in expansion order.
func WithExpandHook[NodeType comparable](hook func(node NodeType)) Option[NodeType] {
	return func(options *Options[NodeType]) { options.OnExpand = hook }
}

// WithMaxExpansions bounds the number of expanded nodes.
func WithMaxExpansions[NodeType comparable](limit int) Option[NodeType] {
	return func(options *Options[NodeType]) { options.MaxExpansions = limit }
}

func applyOptions[NodeType comparable](options []Option[NodeType]) Options[NodeType] {
	var searchOptions Options[NodeType]
	for _, option := range options {
		option(&searchOptions)
	}
	return searchOptions
}

// expand reports whether the budget allows one more expansion and fires the hook.
func (o *Options[NodeType]) expand(node NodeType, expanded *int) bool {
	if o.MaxExpansions > 0 && *expanded >= o.MaxExpansions {
		return false
	}
	*expanded++
	if o.OnExpand != nil {
		o.OnExpand(node)
	}
	return true
}

// Search runs the strategy named by tag. cost defaults to UnitCost when nil;
// heuristic is required for AStar and ignored otherwise.
func Search[NodeType comparable](
	strategy Strategy,
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
	cost CostFunc[NodeType],
	heuristic Heuristic[NodeType],
	options ...Option[NodeType],
) (Result[NodeType], error) {
	if cost == nil {
		cost = UnitCost[NodeType]
	}
	switch strategy {
	case BFS:
		return BreadthFirst(graph, startNode, goalNode, options...), nil
	case DFS:
		return DepthFirst(graph, startNode, goalNode, options...), nil
	case UCS:
		return UniformCost(graph, startNode, goalNode, cost, options...), nil
	case AStar:
		if heuristic == nil {
			return Result[NodeType]{}, ErrMissingHeuristic
		}
		return AStarSearch(graph, startNode, goalNode, cost, heuristic, options...), nil
	default:
		return Result[NodeType]{}, errors.Wrapf(ErrUnknownStrategy, "strategy %d", int(strategy))
	}
}
