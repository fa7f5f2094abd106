// Package dijkstra defines the types and configuration options for the
// generic cost-accumulating shortest-path search.
//
// The graph is implicit: a successors function returns, for one node, the
// nodes reachable in one step together with the non-negative cost of that
// step. Nodes may be any comparable type and costs any integer or float type.
//
// Options:
//
//	– MaxCost:          nodes whose accumulated cost would exceed it are not reached.
//	– InfCostThreshold: steps with cost >= this threshold are treated as impassable.
//	– Logger:           receives a debug record per search.
package dijkstra

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/lvgrid/numeric"
)

var (
	// ErrBadMaxCost indicates that MaxCost was set to a negative value,
	// which is not meaningful for a cost threshold.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")

	// ErrBadInfThreshold indicates that InfCostThreshold was set to zero or
	// a negative value, which would make every step (zero-cost ones included)
	// impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfCostThreshold must be positive")
)

// ---------- Internal panic messages ----------

const (
	panicNegativeCost  = "dijkstra: negative step cost encountered"
	panicNilSuccessors = "dijkstra: successors function is nil"
)

// Successor is one outgoing step: the node reached and what it costs.
type Successor[N comparable, C numeric.Number] struct {
	Node N
	Cost C
}

// Step records how a node was best reached: from Parent, at total Cost.
type Step[N comparable, C numeric.Number] struct {
	Parent N
	Cost   C
}

// Options holds configuration for a search.
type Options[C numeric.Number] struct {
	MaxCost          C           // Maximum accumulated cost to explore (when HasMaxCost)
	HasMaxCost       bool        // Whether MaxCost applies
	InfCostThreshold C           // Step cost at or above which a step is skipped (when HasInfThreshold)
	HasInfThreshold  bool        // Whether InfCostThreshold applies
	Logger           *log.Logger // Debug sink; log.Default() unless overridden
}

// Option configures a search.
type Option[C numeric.Number] func(*Options[C])

// WithMaxCost bounds the accumulated cost: nodes costing more than limit
// are never reached. Panics if limit < 0.
func WithMaxCost[C numeric.Number](limit C) Option[C] {
	return func(o *Options[C]) {
		if limit < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = limit
		o.HasMaxCost = true
	}
}

// WithInfCostThreshold makes every step whose cost is >= threshold
// impassable. Panics if threshold <= 0.
func WithInfCostThreshold[C numeric.Number](threshold C) Option[C] {
	return func(o *Options[C]) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfCostThreshold = threshold
		o.HasInfThreshold = true
	}
}

// WithLogger sets the logger that receives the per-search debug record.
func WithLogger[C numeric.Number](l *log.Logger) Option[C] {
	return func(o *Options[C]) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns unbounded options logging to log.Default().
func DefaultOptions[C numeric.Number]() Options[C] {
	return Options[C]{Logger: log.Default()}
}
