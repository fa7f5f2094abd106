// Package bfs provides tunable options and error definitions
// for breadth-first traversal over an expand callback.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilExpand is returned if a nil expand function is passed.
	ErrNilExpand = errors.New("bfs: expand function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for a node the traversal never saw.
	ErrNotReached = errors.New("bfs: node not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Reach is invoked.
type Option[N comparable] func(*Options[N])

// Options holds parameters and callbacks to customize BFS execution.
type Options[N comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a node is enqueued, before visiting.
	// Receives the node and its depth from the start.
	OnEnqueue func(n N, depth int)

	// OnDequeue is called immediately before visiting a node.
	OnDequeue func(n N, depth int)

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(n N, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip expansions by returning false.
	// Called for each pair curr→next produced by the expand function.
	FilterNeighbor func(curr, next N) bool

	// Logger receives a debug record when the traversal finishes.
	Logger *log.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
//   - log.Default() as logger.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		Ctx:            context.Background(),
		OnEnqueue:      func(N, int) {},
		OnDequeue:      func(N, int) {},
		OnVisit:        func(N, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ N) bool { return true },
		Logger:         log.Default(),
		err:            nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[N comparable](ctx context.Context) Option[N] {
	return func(o *Options[N]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue[N comparable](fn func(n N, depth int)) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue[N comparable](fn func(n N, depth int)) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit[N comparable](fn func(n N, depth int) error) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[N comparable](d int) Option[N] {
	return func(o *Options[N]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[N comparable](fn func(curr, next N) bool) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithLogger sets the logger used for debug records.
func WithLogger[N comparable](l *log.Logger) Option[N] {
	return func(o *Options[N]) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: nodes visited, in visit sequence (start first).
//   - Depth: map from node to its distance (in expansions) from the start.
//   - Parent: map from node to its predecessor in the BFS tree.
//
// The key set of Depth is exactly the reachable set.
type Result[N comparable] struct {
	Order  []N
	Depth  map[N]int
	Parent map[N]N
}

// Has reports whether n was reached.
func (r *Result[N]) Has(n N) bool {
	_, ok := r.Depth[n]

	return ok
}

// PathTo reconstructs the path from the start node to dest.
// Returns ErrNotReached if dest was not reached.
func (r *Result[N]) PathTo(dest N) ([]N, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotReached, dest)
	}
	// build reversed path
	path := []N{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
