// Package bfs provides breadth-first traversal over any node type,
// returning unweighted distances, parent links, and visit order.
//
// The graph is never materialized: it is described by an expand function
// returning the successors of a node, so a grid, a state space or an
// adjacency list can all be explored the same way.
package bfs

import (
	"context"
	"fmt"
)

// queueItem pairs a node with its BFS depth.
type queueItem[N comparable] struct {
	node  N
	depth int
}

// walker encapsulates mutable BFS state.
type walker[N comparable] struct {
	expand  func(N) []N
	opts    Options[N]
	ctx     context.Context
	queue   []queueItem[N]
	visited map[N]bool
	res     *Result[N]
}

// Reach runs breadth-first search from start, expanding nodes with expand
// and applying any number of functional Options.
// Every node is visited at most once; the returned Result covers all nodes
// transitively reachable from start, start included.
// Returns ErrNilExpand for a nil expand function, ErrOptionViolation for bad
// options, ctx.Err() on cancellation, or any user-supplied hook error.
// On error the partial Result is still returned.
//
// Complexity: O(V + E) time, O(V) memory, for V reached nodes and E expansions.
func Reach[N comparable](start N, expand func(N) []N, opts ...Option[N]) (*Result[N], error) {
	if expand == nil {
		return nil, ErrNilExpand
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[N]{
		expand:  expand,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem[N], 0, 16),
		visited: make(map[N]bool),
		res: &Result[N]{
			Order:  make([]N, 0, 16),
			Depth:  make(map[N]int),
			Parent: make(map[N]N),
		},
	}

	// Seed queue with start node (no parent)
	w.enqueue(start, 0)
	err := w.loop()
	o.Logger.Debug("bfs: traversal finished", "reached", len(w.res.Depth), "visited", len(w.res.Order), "err", err)

	return w.res, err
}

// enqueue marks n visited at depth d, calls OnEnqueue,
// and adds it to the queue.
func (w *walker[N]) enqueue(n N, d int) {
	w.visited[n] = true
	w.res.Depth[n] = d
	w.opts.OnEnqueue(n, d)
	w.queue = append(w.queue, queueItem[N]{node: n, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[N]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[N]) dequeue() queueItem[N] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.node, item.depth)

	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker[N]) visit(item queueItem[N]) error {
	w.res.Order = append(w.res.Order, item.node)
	if err := w.opts.OnVisit(item.node, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.node, err)
	}

	return nil
}

// enqueueNeighbors expands the node, applies filtering and MaxDepth,
// and enqueues each unseen successor in expand order.
func (w *walker[N]) enqueueNeighbors(item queueItem[N]) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, next := range w.expand(item.node) {
		// cancellation check inside neighbor iteration
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		if !w.opts.FilterNeighbor(item.node, next) {
			continue
		}
		// first time seen?
		if !w.visited[next] {
			w.res.Parent[next] = item.node
			w.enqueue(next, nextDepth)
		}
	}

	return nil
}
