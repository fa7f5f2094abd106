// Package dfs implements depth‑first traversal and topological sort over an
// implicit graph described by an expand (successors) function.
//
// What:
//
//   - Reach: explores as far as possible along each branch before
//     backtracking. Supports:
//   - Pre‑order and post‑order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//   - TopologicalSort: computes a linear ordering of the nodes reachable
//     from a set of roots, returning ErrCycleDetected if a cycle exists.
//
// Why:
//   - Flood-fill grids (matrix.DFSReachable) with a stack instead of a queue.
//   - Order dependency graphs (build systems, task schedulers).
//
// Errors:
//
//   - ErrNilExpand       if the expand/successors function is nil.
//   - ErrCycleDetected   from TopologicalSort on a back edge.
//   - context.Canceled   if ctx is done.
//   - any error returned by OnVisit or OnExit, wrapped.
package dfs
