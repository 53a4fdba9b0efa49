// Package gridpath plans routes for a single agent across a 2D grid with
// impassable cells.
//
// It exposes three layers:
//
//   - Search functions (BFS, DFS, UCS, AStar): generic over node type and run
//     to completion, returning a Result whose Path is empty when the goal is
//     unreachable.
//   - Grid: bounds and passability queries plus the canonical 4-connected
//     neighbour enumeration (Right, Left, Down, Up).
//   - SearchAgent: selects a strategy, plans once, and hands out the planned
//     route one cell at a time through Step.
//
// All search is single-threaded and deterministic: equal-priority frontier
// entries are resolved by insertion order, scoped to a single run.
package gridpath
