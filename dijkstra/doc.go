// Package dijkstra provides a generic single-source shortest-path search
// with non-negative step costs.
//
// What:
//
//   - Search: cheapest path from a start node to the first node accepted by
//     a success predicate.
//   - All: cheapest parent/cost for every node reachable from the start.
//   - Partial: All stopped as soon as a stop predicate accepts a node.
//   - BuildPath: rebuilds a path from the parent map of All or Partial.
//
// The graph is never materialized: a successors function lists, for a
// node, the nodes one step away and the cost of each step. Any comparable
// node type and any integer or float cost type can be used.
//
// Why:
//
//   - Route over weighted grids (gridgraph.ShortestPath uses it with
//     matrix.Cell nodes and cell values as entry costs).
//   - Shortest paths over puzzle or network state spaces.
//
// Determinism:
//
//	Successors are relaxed in the order the successors function returns
//	them, only strictly cheaper paths replace a parent, and equal-cost heap
//	entries leave in insertion order. Search, All and Partial therefore agree
//	exactly: BuildPath(t, All(s, f)) is the path Search(s, f, t) returns.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Panics:
//
//   - a nil successors function;
//   - a negative step cost;
//   - WithMaxCost(x) with x < 0, WithInfCostThreshold(t) with t <= 0.
//
// Example usage:
//
//	path, cost, ok := dijkstra.Search(start, successors, func(n Node) bool { return n == goal })
package dijkstra
