// Package dijkstra implements Dijkstra's shortest-path algorithm over an
// implicit graph described by a successors function.
//
// Nodes are processed in order of increasing accumulated cost using a
// min-heap. Relaxation keeps the first strictly better cost for each node,
// and ties in the heap are broken by insertion order, so for a deterministic
// successors function every entry point (Search, All, Partial) reproduces the
// same parent links and BuildPath rebuilds the path Search returns.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//   - O(E) worst-case for entries in the heap under “lazy-decrease-key”.
package dijkstra

import (
	"container/heap"
	"slices"

	"github.com/katalvlaran/lvgrid/numeric"
)

// Search finds a cheapest path from start to the first node satisfying
// success. It returns the path (start and goal included), its cost, and
// true; or nil, 0, false if no reachable node satisfies success.
// If start itself satisfies success the path is [start] with cost 0.
//
// A negative step cost is a programmer error and panics.
func Search[N comparable, C numeric.Number](
	start N,
	successors func(N) []Successor[N, C],
	success func(N) bool,
	opts ...Option[C],
) ([]N, C, bool) {
	r := newRunner(start, successors, opts)
	goal, cost, ok := r.run(success)
	r.opts.Logger.Debug("dijkstra: search finished", "settled", len(r.done), "reached", len(r.best), "found", ok)
	if !ok {
		return nil, 0, false
	}

	return BuildPath(goal, r.best), cost, true
}

// All computes the cheapest way to reach every node reachable from start.
// The result maps each such node, start excluded, to its parent on a
// cheapest path and the total cost of that path.
func All[N comparable, C numeric.Number](
	start N,
	successors func(N) []Successor[N, C],
	opts ...Option[C],
) map[N]Step[N, C] {
	parents, _, _ := Partial(start, successors, func(N) bool { return false }, opts...)

	return parents
}

// Partial is All stopped early: the search halts as soon as a node
// satisfying stop is settled, and returns the parents found so far together
// with that node and true. Entries for nodes not yet settled may not be
// final, but BuildPath from the returned node is a cheapest path.
func Partial[N comparable, C numeric.Number](
	start N,
	successors func(N) []Successor[N, C],
	stop func(N) bool,
	opts ...Option[C],
) (map[N]Step[N, C], N, bool) {
	r := newRunner(start, successors, opts)
	reached, _, ok := r.run(stop)
	r.opts.Logger.Debug("dijkstra: partial search finished", "settled", len(r.done), "reached", len(r.best), "stopped", ok)

	return r.best, reached, ok
}

// BuildPath follows parents back from target and returns the path from the
// search start to target. A target absent from parents yields [target].
func BuildPath[N comparable, C numeric.Number](target N, parents map[N]Step[N, C]) []N {
	path := []N{target}
	next := target
	for {
		step, ok := parents[next]
		if !ok {
			break
		}
		path = append(path, step.Parent)
		next = step.Parent
	}
	slices.Reverse(path)

	return path
}

// runner holds the mutable state for a single search.
type runner[N comparable, C numeric.Number] struct {
	start      N
	successors func(N) []Successor[N, C]
	opts       Options[C]
	best       map[N]Step[N, C] // best known step per node, start excluded
	done       map[N]bool       // settled nodes
	pq         itemPQ[N, C]     // min-heap of candidate nodes
	seq        int              // insertion counter for tie-breaking
}

func newRunner[N comparable, C numeric.Number](start N, successors func(N) []Successor[N, C], opts []Option[C]) *runner[N, C] {
	if successors == nil {
		panic(panicNilSuccessors)
	}
	cfg := DefaultOptions[C]()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &runner[N, C]{
		start:      start,
		successors: successors,
		opts:       cfg,
		best:       make(map[N]Step[N, C]),
		done:       make(map[N]bool),
	}
}

// run settles nodes in cost order until one satisfies stop or the heap
// drains. It returns the stopping node and its cost.
func (r *runner[N, C]) run(stop func(N) bool) (N, C, bool) {
	heap.Push(&r.pq, &item[N, C]{node: r.start, cost: 0, seq: r.seq})
	for r.pq.Len() > 0 {
		it := heap.Pop(&r.pq).(*item[N, C])
		// stale heap entry (lazy decrease-key)
		if r.done[it.node] {
			continue
		}
		if stop(it.node) {
			return it.node, it.cost, true
		}
		r.done[it.node] = true
		r.relax(it.node, it.cost)
	}

	var zero N

	return zero, 0, false
}

// relax offers every successor of u, reached at cost d, a cheaper path.
func (r *runner[N, C]) relax(u N, d C) {
	for _, s := range r.successors(u) {
		if s.Cost < 0 {
			panic(panicNegativeCost)
		}
		if r.opts.HasInfThreshold && s.Cost >= r.opts.InfCostThreshold {
			continue
		}
		// the start is settled at cost 0 and never improved
		if s.Node == r.start {
			continue
		}
		nd := d + s.Cost
		if r.opts.HasMaxCost && nd > r.opts.MaxCost {
			continue
		}
		// strictly better only: equal costs keep the first parent found
		if old, seen := r.best[s.Node]; seen && nd >= old.Cost {
			continue
		}
		r.best[s.Node] = Step[N, C]{Parent: u, Cost: nd}
		r.seq++
		heap.Push(&r.pq, &item[N, C]{node: s.Node, cost: nd, seq: r.seq})
	}
}

// item is a heap entry: a node and the cost it was pushed with.
type item[N comparable, C numeric.Number] struct {
	node N
	cost C
	seq  int
}

// itemPQ is a min-heap of *item ordered by cost, then insertion order.
type itemPQ[N comparable, C numeric.Number] []*item[N, C]

func (pq itemPQ[N, C]) Len() int { return len(pq) }

func (pq itemPQ[N, C]) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].seq < pq[j].seq
}

func (pq itemPQ[N, C]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *itemPQ[N, C]) Push(x any) { *pq = append(*pq, x.(*item[N, C])) }

func (pq *itemPQ[N, C]) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return it
}
