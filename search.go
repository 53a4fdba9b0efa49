package gridpath

import (
	"github.com/pdrpinto/gridpath/internal"
)

// BreadthFirst explores in FIFO order. Each node is queued once, at first
// discovery, so on unit-cost graphs the returned path has the fewest edges.
func BreadthFirst[NodeType comparable](
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
	options ...Option[NodeType],
) Result[NodeType] {
	searchOptions := applyOptions(options)

	queue := []NodeType{startNode}
	cameFrom := map[NodeType]NodeType{startNode: startNode}
	expandedNodes := 0

	for len(queue) > 0 {
		currentNode := queue[0]
		queue = queue[1:]

		if currentNode == goalNode {
			return edgeResult(cameFrom, goalNode, expandedNodes)
		}
		if !searchOptions.expand(currentNode, &expandedNodes) {
			return Result[NodeType]{ExpandedNodes: expandedNodes, Truncated: true}
		}

		for neighbor := range graph.Neighbors(currentNode) {
			if _, seen := cameFrom[neighbor]; seen {
				continue
			}
			cameFrom[neighbor] = currentNode
			queue = append(queue, neighbor)
		}
	}
	return Result[NodeType]{ExpandedNodes: expandedNodes}
}

// DepthFirst explores in LIFO order: the most recently discovered node is
// expanded next. Nodes are marked at first discovery, as in BreadthFirst.
// The path returned is some path, not necessarily a shortest one, and it
// depends on the graph's neighbour order.
func DepthFirst[NodeType comparable](
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
	options ...Option[NodeType],
) Result[NodeType] {
	searchOptions := applyOptions(options)

	stack := []NodeType{startNode}
	cameFrom := map[NodeType]NodeType{startNode: startNode}
	expandedNodes := 0

	for len(stack) > 0 {
		currentNode := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if currentNode == goalNode {
			return edgeResult(cameFrom, goalNode, expandedNodes)
		}
		if !searchOptions.expand(currentNode, &expandedNodes) {
			return Result[NodeType]{ExpandedNodes: expandedNodes, Truncated: true}
		}

		for neighbor := range graph.Neighbors(currentNode) {
			if _, seen := cameFrom[neighbor]; seen {
				continue
			}
			cameFrom[neighbor] = currentNode
			stack = append(stack, neighbor)
		}
	}
	return Result[NodeType]{ExpandedNodes: expandedNodes}
}

// UniformCost is Dijkstra's algorithm with lazy frontier invalidation.
// cost must be positive.
func UniformCost[NodeType comparable](
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
	cost CostFunc[NodeType],
	options ...Option[NodeType],
) Result[NodeType] {
	return bestFirst(graph, startNode, goalNode, cost, nil, options)
}

// AStarSearch is UniformCost ordered by g + h. The path is optimal when
// heuristic is admissible; with a consistent heuristic no node is expanded twice.
func AStarSearch[NodeType comparable](
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
	cost CostFunc[NodeType],
	heuristic Heuristic[NodeType],
	options ...Option[NodeType],
) Result[NodeType] {
	return bestFirst(graph, startNode, goalNode, cost, heuristic, options)
}

func bestFirst[NodeType comparable](
	graph Graph[NodeType],
	startNode NodeType,
	goalNode NodeType,
	cost CostFunc[NodeType],
	heuristic Heuristic[NodeType],
	options []Option[NodeType],
) Result[NodeType] {
	searchOptions := applyOptions(options)
	priority := func(node NodeType, gScore float64) float64 {
		if heuristic == nil {
			return gScore
		}
		return gScore + heuristic(node, goalNode)
	}

	// --- Initialize state ---
	var openSet Frontier[NodeType]
	openSet.Push(startNode, priority(startNode, 0))

	cameFrom := map[NodeType]NodeType{startNode: startNode}
	pathCostFromStart := map[NodeType]float64{startNode: 0}
	closedSet := make(map[NodeType]bool)
	expandedNodes := 0

	for openSet.Len() > 0 {
		currentNode := openSet.Pop().Node

		// Stale entries for settled nodes
		if closedSet[currentNode] {
			continue
		}
		closedSet[currentNode] = true

		if currentNode == goalNode {
			return Result[NodeType]{
				Path:          internal.ReconstructPath(cameFrom, goalNode),
				TotalCost:     pathCostFromStart[goalNode],
				ExpandedNodes: expandedNodes,
				Found:         true,
			}
		}
		if !searchOptions.expand(currentNode, &expandedNodes) {
			return Result[NodeType]{ExpandedNodes: expandedNodes, Truncated: true}
		}

		currentG := pathCostFromStart[currentNode]
		for neighbor := range graph.Neighbors(currentNode) {
			if closedSet[neighbor] {
				continue
			}
			tentativeG := currentG + cost(currentNode, neighbor)
			if knownG, exists := pathCostFromStart[neighbor]; exists && tentativeG >= knownG {
				continue
			}
			pathCostFromStart[neighbor] = tentativeG
			cameFrom[neighbor] = currentNode
			openSet.Push(neighbor, priority(neighbor, tentativeG))
		}
	}
	return Result[NodeType]{ExpandedNodes: expandedNodes}
}

func edgeResult[NodeType comparable](cameFrom map[NodeType]NodeType, goalNode NodeType, expandedNodes int) Result[NodeType] {
	path := internal.ReconstructPath(cameFrom, goalNode)
	return Result[NodeType]{
		Path:          path,
		TotalCost:     float64(len(path) - 1),
		ExpandedNodes: expandedNodes,
		Found:         true,
	}
}
