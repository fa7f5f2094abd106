// Package dijkstra_test validates the generic search against a brute-force
// cross-check on random dense networks, plus options and edge cases.
package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvgrid/dijkstra"
	"github.com/katalvlaran/lvgrid/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildNetwork returns a size×size cost matrix where about two thirds of
// the (a, b) pairs carry a positive cost and the rest are 0 (no edge).
func buildNetwork(size int, seed int64) *matrix.Matrix[int] {
	rng := rand.New(rand.NewSource(seed))
	network := matrix.NewSquare(size, 0)
	for a := 0; a < size; a++ {
		for b := 0; b < size; b++ {
			if rng.Intn(3) < 2 {
				network.Set(a, b, rng.Intn(1<<16))
			}
		}
	}

	return network
}

// neighbours turns a cost matrix into a successors function.
func neighbours(network *matrix.Matrix[int]) func(int) []dijkstra.Successor[int, int] {
	return func(a int) []dijkstra.Successor[int, int] {
		var out []dijkstra.Successor[int, int]
		for b := 0; b < network.Rows(); b++ {
			if p := network.At(a, b); p != 0 {
				out = append(out, dijkstra.Successor[int, int]{Node: b, Cost: p})
			}
		}
		return out
	}
}

func equalTo(target int) func(int) bool {
	return func(n int) bool { return n == target }
}

// TestAllPaths checks that All and BuildPath agree with Search for every
// start/target pair of a random network.
func TestAllPaths(t *testing.T) {
	const size = 30
	network := buildNetwork(size, 42)
	succ := neighbours(network)

	for start := 0; start < size; start++ {
		paths := dijkstra.All(start, succ)
		for target := 0; target < size; target++ {
			path, cost, ok := dijkstra.Search(start, succ, equalTo(target))
			step, present := paths[target]
			switch {
			case !ok:
				assert.False(t, present, "path %d -> %d is present", start, target)
			case start == target:
				assert.False(t, present, "path %d -> %d is present", start, target)
				assert.Equal(t, []int{start}, path)
				assert.Zero(t, cost)
			default:
				require.True(t, present, "path %d -> %d is not found", start, target)
				assert.Equal(t, cost, step.Cost, "cost differ in path %d -> %d", start, target)
				assert.Equal(t, path, dijkstra.BuildPath(target, paths), "path %d -> %d differ", start, target)
			}
		}
	}
}

// TestPartialPaths stops on the first multiple of start and compares the
// partial parent map with a dedicated Search.
func TestPartialPaths(t *testing.T) {
	const size = 100
	network := buildNetwork(size, 7)
	succ := neighbours(network)

	for start := 0; start < size; start++ {
		stop := func(n int) bool { return start != 0 && n != 0 && n != start && n%start == 0 }
		paths, reached, ok := dijkstra.Partial(start, succ, stop)
		if ok {
			require.Zero(t, reached%start, "bad stop condition")
			path, dcost, found := dijkstra.Search(start, succ, equalTo(reached))
			require.True(t, found)
			assert.Equal(t, dcost, paths[reached].Cost, "costs %d -> %d differ", start, reached)
			assert.Equal(t, path, dijkstra.BuildPath(reached, paths), "path %d -> %d differ", start, reached)
		} else if start != 0 && start <= (size-1)/2 {
			// no multiple of start other than start itself is reachable
			for k := 2; k*start < size; k++ {
				_, _, found := dijkstra.Search(start, succ, equalTo(k*start))
				assert.False(t, found, "path %d -> %d found", start, k*start)
			}
		}
	}
}

// diamond:  a -1-> b -1-> d,  a -1-> c -1-> d,  a -5-> d
var diamond = map[string][]dijkstra.Successor[string, int]{
	"a": {{Node: "b", Cost: 1}, {Node: "c", Cost: 1}, {Node: "d", Cost: 5}},
	"b": {{Node: "d", Cost: 1}},
	"c": {{Node: "d", Cost: 1}},
}

func diamondSucc(n string) []dijkstra.Successor[string, int] { return diamond[n] }

func TestSearch_TiesKeepFirstParent(t *testing.T) {
	path, cost, ok := dijkstra.Search("a", diamondSucc, func(n string) bool { return n == "d" })
	require.True(t, ok)
	assert.Equal(t, 2, cost)
	assert.Equal(t, []string{"a", "b", "d"}, path)

	all := dijkstra.All("a", diamondSucc)
	assert.Equal(t, dijkstra.Step[string, int]{Parent: "b", Cost: 2}, all["d"])
	assert.NotContains(t, all, "a")
	assert.Len(t, all, 3)
}

func TestSearch_Unreachable(t *testing.T) {
	path, cost, ok := dijkstra.Search("b", diamondSucc, func(n string) bool { return n == "a" })
	assert.False(t, ok)
	assert.Nil(t, path)
	assert.Zero(t, cost)
}

func TestSearch_FloatCosts(t *testing.T) {
	succ := func(n int) []dijkstra.Successor[int, float64] {
		if n >= 3 {
			return nil
		}
		return []dijkstra.Successor[int, float64]{{Node: n + 1, Cost: 0.5}, {Node: 3, Cost: 2}}
	}
	path, cost, ok := dijkstra.Search(0, succ, func(n int) bool { return n == 3 })
	require.True(t, ok)
	assert.InDelta(t, 1.5, cost, 1e-12)
	assert.Equal(t, []int{0, 1, 2, 3}, path)
}

func TestSearch_SelfLoopAndZeroCost(t *testing.T) {
	succ := func(n int) []dijkstra.Successor[int, int] {
		return []dijkstra.Successor[int, int]{{Node: n, Cost: 0}, {Node: (n + 1) % 4, Cost: 0}}
	}
	all := dijkstra.All(0, succ)
	assert.Len(t, all, 3)
	for n := 1; n < 4; n++ {
		assert.Zero(t, all[n].Cost)
	}
}

func TestOptions_MaxCost(t *testing.T) {
	// chain 0 -2-> 1 -2-> 2 -2-> 3
	chain := func(n int) []dijkstra.Successor[int, int] {
		return []dijkstra.Successor[int, int]{{Node: n + 1, Cost: 2}}
	}
	all := dijkstra.All(0, chain, dijkstra.WithMaxCost(5))
	assert.Len(t, all, 2)
	assert.Equal(t, 4, all[2].Cost)

	_, _, ok := dijkstra.Search(0, chain, equalTo(3), dijkstra.WithMaxCost(5))
	assert.False(t, ok)

	assert.PanicsWithValue(t, dijkstra.ErrBadMaxCost.Error(), func() {
		dijkstra.All(0, chain, dijkstra.WithMaxCost(-1))
	})
}

func TestOptions_InfCostThreshold(t *testing.T) {
	path, cost, ok := dijkstra.Search("a", diamondSucc, func(n string) bool { return n == "d" },
		dijkstra.WithInfCostThreshold(1))
	assert.False(t, ok, "every step costs >= 1")
	assert.Nil(t, path)
	assert.Zero(t, cost)

	all := dijkstra.All("a", diamondSucc, dijkstra.WithInfCostThreshold(5))
	assert.Equal(t, 2, all["d"].Cost)

	assert.Panics(t, func() { dijkstra.All("a", diamondSucc, dijkstra.WithInfCostThreshold(0)) })
}

func TestNegativeCostPanics(t *testing.T) {
	succ := func(int) []dijkstra.Successor[int, int] {
		return []dijkstra.Successor[int, int]{{Node: 1, Cost: -1}}
	}
	assert.PanicsWithValue(t, "dijkstra: negative step cost encountered", func() {
		dijkstra.All(0, succ)
	})
	assert.Panics(t, func() { dijkstra.All[int, int](0, nil) })
}

func TestBuildPath(t *testing.T) {
	parents := map[int]dijkstra.Step[int, int]{
		2: {Parent: 1, Cost: 2},
		1: {Parent: 0, Cost: 1},
	}
	assert.Equal(t, []int{0, 1, 2}, dijkstra.BuildPath(2, parents))
	assert.Equal(t, []int{9}, dijkstra.BuildPath(9, parents))
}
