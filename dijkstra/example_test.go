// Package dijkstra_test provides runnable examples of the search entry points.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/lvgrid/dijkstra"
)

// ExampleSearch finds the cheapest route on a tiny road network.
func ExampleSearch() {
	roads := map[string][]dijkstra.Successor[string, int]{
		"A": {{Node: "B", Cost: 1}, {Node: "C", Cost: 5}},
		"B": {{Node: "C", Cost: 2}},
		"C": {{Node: "D", Cost: 1}},
	}
	succ := func(n string) []dijkstra.Successor[string, int] { return roads[n] }

	path, cost, ok := dijkstra.Search("A", succ, func(n string) bool { return n == "D" })
	fmt.Println(path, cost, ok)
	// Output: [A B C D] 4 true
}

// ExampleAll computes every cheapest cost, then rebuilds one path.
func ExampleAll() {
	// nodes are integers, each step n -> n+1 costs 1 and n -> 2n costs 1
	succ := func(n int) []dijkstra.Successor[int, int] {
		if n >= 10 {
			return nil
		}
		return []dijkstra.Successor[int, int]{{Node: n + 1, Cost: 1}, {Node: 2 * n, Cost: 1}}
	}
	all := dijkstra.All(1, succ)
	fmt.Println(all[10].Cost, dijkstra.BuildPath(10, all))
	// Output: 4 [1 2 4 5 10]
}

// ExamplePartial stops at the first node divisible by 7.
func ExamplePartial() {
	succ := func(n int) []dijkstra.Successor[int, int] {
		return []dijkstra.Successor[int, int]{{Node: n + 3, Cost: 3}, {Node: n + 5, Cost: 5}}
	}
	parents, reached, ok := dijkstra.Partial(1, succ, func(n int) bool { return n%7 == 0 })
	fmt.Println(reached, ok, parents[reached].Cost, dijkstra.BuildPath(reached, parents))
	// Output: 7 true 6 [1 4 7]
}
