package bfs_test

import (
	"testing"

	"github.com/katalvlaran/lvgrid/bfs"
)

// BenchmarkReach_Chain measures BFS on a linear chain of size N.
func BenchmarkReach_Chain(b *testing.B) {
	const N = 10000
	exp := chain("v", N)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Reach("v0", exp)
	}
}

// BenchmarkReach_BinaryTree runs BFS on a complete binary tree of depth D (~2^D−1 nodes).
func BenchmarkReach_BinaryTree(b *testing.B) {
	const nodeCount = (1 << 10) - 1
	exp := func(n int) []int {
		if 2*n+1 > nodeCount {
			return nil
		}
		return []int{2 * n, 2*n + 1}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Reach(1, exp)
	}
}
