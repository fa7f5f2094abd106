package bfs_test

import "fmt"

// undirected builds an expand function over an undirected edge list.
// Successors are returned in edge insertion order.
func undirected(edges ...[2]string) func(string) []string {
	adj := make(map[string][]string)
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		if e[0] != e[1] {
			adj[e[1]] = append(adj[e[1]], e[0])
		}
	}

	return func(id string) []string { return adj[id] }
}

// chain returns an expand function for v0→v1→…→v(n-1), directed.
func chain(prefix string, n int) func(string) []string {
	next := make(map[string][]string, n)
	for i := 0; i+1 < n; i++ {
		u, v := fmt.Sprintf("%s%d", prefix, i), fmt.Sprintf("%s%d", prefix, i+1)
		next[u] = []string{v}
	}

	return func(id string) []string { return next[id] }
}
