// Package dfs defines types and options for depth-first traversal,
// including cancellation, pre-/post-order hooks, depth limiting,
// neighbor filtering, and basic diagnostics.
package dfs

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
)

// Visitation states used by TopologicalSort.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is on the current DFS path.
	Black        // Black: the node and all its descendants have been fully explored.
)

var (
	// ErrNilExpand is returned when a nil expand/successors function is passed.
	ErrNilExpand = errors.New("dfs: expand function is nil")

	// ErrCycleDetected indicates that a back edge was encountered during TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures optional behavior of DFS traversal.
// Use with Reach(start, expand, opts...).
type Option[N comparable] func(*Options[N])

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options[N comparable] struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked immediately upon discovering a node (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(n N) error

	// OnExit, if non-nil, is invoked after all descendants of a node
	// have been explored (post-order), before appending to Result.PostOrder.
	// Returning an error aborts traversal and leaves PostOrder empty.
	OnExit func(n N) error

	// MaxDepth, if non-negative, limits exploration to the given depth.
	// A depth of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each successor before descending.
	// Return true to traverse into it, false to skip it.
	FilterNeighbor func(n N) bool

	// Logger receives a debug record when the traversal finishes.
	Logger *log.Logger
}

// DefaultOptions returns Options with:
//   - Background context
//   - No pre-/post-order hooks
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - log.Default() as logger
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		Ctx:            context.Background(),
		OnVisit:        nil,
		OnExit:         nil,
		MaxDepth:       -1,
		FilterNeighbor: nil,
		Logger:         log.Default(),
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext[N comparable](ctx context.Context) Option[N] {
	return func(o *Options[N]) {
		if ctx != nil {
			o.Ctx = ctx // use provided context for cancellation
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
// The hook is called when a node is first discovered.
func WithOnVisit[N comparable](fn func(n N) error) Option[N] {
	return func(o *Options[N]) {
		o.OnVisit = fn
	}
}

// WithOnExit returns an Option that installs fn as a post-order hook.
// The hook is called after a node’s descendants have been fully explored.
func WithOnExit[N comparable](fn func(n N) error) Option[N] {
	return func(o *Options[N]) {
		o.OnExit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start node is visited.
func WithMaxDepth[N comparable](limit int) Option[N] {
	return func(o *Options[N]) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters successors.
// If fn(n) == false, that successor is skipped and counted in SkippedNeighbors.
func WithFilterNeighbor[N comparable](fn func(n N) bool) Option[N] {
	return func(o *Options[N]) {
		o.FilterNeighbor = fn
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

// Result captures the outcome of a depth-first traversal.
type Result[N comparable] struct {
	// Order records nodes in the sequence they were discovered (pre-order).
	Order []N

	// PostOrder records nodes in the sequence they finished.
	PostOrder []N

	// Depth maps each node to its depth in the DFS tree.
	Depth map[N]int

	// Parent maps each node to the node from which it was first discovered.
	// The start node does not appear in this map.
	Parent map[N]N

	// Visited flags which nodes were reached; its key set is the reachable set.
	Visited map[N]bool

	// SkippedNeighbors reports how many successors were skipped
	// due to FilterNeighbor returning false.
	SkippedNeighbors int
}
