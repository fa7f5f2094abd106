// Package bfs provides a breadth-first traversal engine over any comparable
// node type, returning unweighted distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (expansion count) from a start node.
//   - The graph is implicit: an expand function returns the successors of a node.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from node → distance from start (its key set is the reachable set)
//   - Parent: map from node → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a node is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual expansions via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Flood-fill grids (matrix.BFSReachable), detect connected regions,
//     explore puzzle state spaces.
//
// Determinism
//
//	Successors are enqueued in the order the expand function returns them,
//	so the visit sequence is fully reproducible for a deterministic expand.
//
// Complexity (V = reached nodes, E = expansions)
//
//   - Time:   O(V + E)   (each node enqueued at most once)
//   - Memory: O(V)       (queue, Depth map, Parent map, visited set)
//
// Usage
//
//	res, err := bfs.Reach(start, expand)
//
//	res, err := bfs.Reach(start, expand,
//	    bfs.WithContext[Cell](ctx),
//	    bfs.WithMaxDepth[Cell](3),
//	    bfs.WithOnVisit(func(c Cell, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrNilExpand        if expand is nil.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNotReached       from Result.PathTo for unreached nodes.
//   - context errors      when the context is done.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
