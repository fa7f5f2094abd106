// Package dfs provides topological sorting over a successors function.
//
// TopologicalSort computes a linear ordering of nodes such that for
// every edge u→v, u appears before v in the ordering.
// If a cycle is reachable from the roots, ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each node and edge visited once)
//   - Memory: O(V)     (explicit stack and state map)
package dfs

import (
	"context"
	"fmt"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultTopoOptions returns the default options (Background context).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoFrame is one explicit-stack entry of the sort.
type topoFrame[N comparable] struct {
	node N
	succ []N
	next int
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[N comparable] struct {
	successors func(N) []N
	opts       topoOptions
	state      map[N]int // visitation state: White, Gray, Black
	order      []N       // recorded post-order sequence
}

// TopologicalSort orders every node reachable from roots so that each node
// precedes all of its successors. Roots are explored in the given order.
// If a cycle is detected, returns ErrCycleDetected wrapped with the node
// closing the cycle.
// You may pass WithCancelContext(ctx) to enable cancellation.
func TopologicalSort[N comparable](roots []N, successors func(N) []N, options ...TopoOption) ([]N, error) {
	// 1. Validate input
	if successors == nil {
		return nil, ErrNilExpand
	}
	// 2. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	// 3. Initialize sorter state
	sorter := &topoSorter[N]{
		successors: successors,
		opts:       opts,
		state:      make(map[N]int, len(roots)),
		order:      make([]N, 0, len(roots)),
	}
	// 4. Drive DFS from every unvisited root
	for _, v := range roots {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// 5. Reverse post-order to produce topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from root, marking states and detecting back edges.
func (t *topoSorter[N]) visit(root N) error {
	t.state[root] = Gray
	stack := []topoFrame[N]{{node: root, succ: t.successors(root)}}

	for len(stack) > 0 {
		// 1. Cancellation check
		select {
		case <-t.opts.ctx.Done():
			return t.opts.ctx.Err()
		default:
		}

		top := &stack[len(stack)-1]
		// 2. All successors done: mark Black and record post-order
		if top.next >= len(top.succ) {
			t.state[top.node] = Black
			t.order = append(t.order, top.node)
			stack = stack[:len(stack)-1]

			continue
		}

		next := top.succ[top.next]
		top.next++
		switch t.state[next] {
		case Gray:
			// back edge: next is on the current path
			return fmt.Errorf("%w: at %v", ErrCycleDetected, next)
		case Black:
			continue
		}
		t.state[next] = Gray
		stack = append(stack, topoFrame[N]{node: next, succ: t.successors(next)})
	}

	return nil
}
