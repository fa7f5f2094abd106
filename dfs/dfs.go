// Package dfs implements depth-first traversal over any comparable node type.
// The graph is implicit: an expand function returns the successors of a node.
//
// Key features:
//   - Reach(start, expand, opts...): pre-order and post-order from a root
//   - Hooks: OnVisit (pre-order) & OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//   - Explicit stack: deep grids never hit recursion limits
//
// Complexity:
//
//   - Time:   O(V + E) for traversal, plus overhead of hooks and filters.
//   - Memory: O(V) for the explicit stack and metadata maps.
package dfs

import (
	"fmt"
)

// frame is one entry of the explicit DFS stack.
type frame[N comparable] struct {
	node  N
	depth int
	succ  []N // successors, fetched once on entry
	next  int // index of the next successor to examine
}

// dfsWalker encapsulates state during DFS.
type dfsWalker[N comparable] struct {
	expand func(N) []N
	opts   Options[N]
	res    *Result[N]
	stack  []frame[N]
}

// Reach performs depth-first search from start, expanding nodes with expand.
// Successors are explored in the order expand returns them, exactly as a
// recursive DFS would. Every node is visited at most once and the result
// covers all nodes reachable from start, start included.
// Returns the Result or an error if aborted by context or hook; the partial
// Result is returned alongside the error.
func Reach[N comparable](start N, expand func(N) []N, opts ...Option[N]) (*Result[N], error) {
	// 1. Validate input
	if expand == nil {
		return nil, ErrNilExpand
	}

	// 2. Apply options
	dopts := DefaultOptions[N]()
	var fn Option[N]
	for _, fn = range opts {
		fn(&dopts)
	}

	// 3. Initialize result
	res := &Result[N]{
		Order:     make([]N, 0, 16),
		PostOrder: make([]N, 0, 16),
		Depth:     make(map[N]int),
		Parent:    make(map[N]N),
		Visited:   make(map[N]bool),
	}
	walker := &dfsWalker[N]{expand: expand, opts: dopts, res: res}

	// 4. Traverse
	err := walker.run(start)
	dopts.Logger.Debug("dfs: traversal finished", "reached", len(res.Visited), "skipped", res.SkippedNeighbors, "err", err)

	return res, err
}

// run drives the explicit stack from start until exhaustion or abort.
func (w *dfsWalker[N]) run(start N) error {
	select {
	case <-w.opts.Ctx.Done():
		// start is known even when nothing is explored
		w.res.Visited[start] = true
		w.res.Depth[start] = 0

		return w.opts.Ctx.Err()
	default:
	}
	if err := w.enter(start, 0); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			w.res.PostOrder = w.res.PostOrder[:0]

			return w.opts.Ctx.Err()
		default:
		}

		top := len(w.stack) - 1
		f := &w.stack[top]

		// 2. All successors examined: finish the node (post-order)
		if f.next >= len(f.succ) {
			node := f.node
			w.stack = w.stack[:top]
			if w.opts.OnExit != nil {
				if err := w.opts.OnExit(node); err != nil {
					w.res.PostOrder = w.res.PostOrder[:0]

					return fmt.Errorf("dfs: OnExit hook for %v: %w", node, err)
				}
			}
			w.res.PostOrder = append(w.res.PostOrder, node)

			continue
		}

		// 3. Examine the next successor
		nid := f.succ[f.next]
		f.next++
		parent, depth := f.node, f.depth+1

		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
			w.res.SkippedNeighbors++
			continue
		}
		if w.res.Visited[nid] {
			continue
		}
		if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
			continue
		}

		// f may dangle after enter grows the stack; only values are used below.
		w.res.Parent[nid] = parent
		if err := w.enter(nid, depth); err != nil {
			return err
		}
	}

	return nil
}

// enter discovers node n at the given depth: marks it, fires the pre-order
// hook and pushes its frame with successors fetched once.
func (w *dfsWalker[N]) enter(n N, depth int) error {
	w.res.Visited[n] = true
	w.res.Depth[n] = depth
	w.res.Order = append(w.res.Order, n)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(n); err != nil {
			// abort and clear post-order
			w.res.PostOrder = w.res.PostOrder[:0]

			return fmt.Errorf("dfs: OnVisit hook for %v: %w", n, err)
		}
	}

	w.stack = append(w.stack, frame[N]{node: n, depth: depth, succ: w.expand(n)})

	return nil
}
