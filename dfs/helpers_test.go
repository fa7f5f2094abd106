package dfs_test

import "fmt"

// adjacency turns a literal successor map into an expand function.
func adjacency(m map[string][]string) func(string) []string {
	return func(id string) []string { return m[id] }
}

// binaryTree returns successors for a complete binary tree T-1..T-(2^depth-1).
func binaryTree(depth int) func(string) []string {
	n := (1 << depth) - 1
	m := make(map[string][]string, n)
	for i := 1; 2*i+1 <= n; i++ {
		p := fmt.Sprintf("T-%d", i)
		m[p] = []string{fmt.Sprintf("T-%d", 2*i), fmt.Sprintf("T-%d", 2*i+1)}
	}

	return adjacency(m)
}

// chain returns successors for N0→N1→…→N(n-1).
func chain(n int) func(string) []string {
	m := make(map[string][]string, n)
	for i := 0; i+1 < n; i++ {
		m[fmt.Sprintf("N%d", i)] = []string{fmt.Sprintf("N%d", i+1)}
	}

	return adjacency(m)
}
