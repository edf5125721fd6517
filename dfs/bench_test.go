// SPDX-License-Identifier: MIT

package dfs_test

import (
	"testing"

	"github.com/katalvlaran/conquest/core"
	"github.com/katalvlaran/conquest/dfs"
)

// BenchmarkDFS_Chain10000 measures DFS on a directed chain of 10,000 vertices.
func BenchmarkDFS_Chain10000(b *testing.B) {
	g := core.NewGraph[int, struct{}](core.WithDirected())
	for i := 0; i <= 10000; i++ {
		_ = g.AddVertex(i)
	}
	for i := 0; i < 10000; i++ {
		_ = g.AddEdge(i, i+1, struct{}{}, 1)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, 0)
	}
}

// BenchmarkAllPaths_Complete6 enumerates every simple path across K6.
func BenchmarkAllPaths_Complete6(b *testing.B) {
	g := core.NewGraph[int, struct{}](core.WithDenseStorage())
	for i := 0; i < 6; i++ {
		_ = g.AddVertex(i)
	}
	for i := 0; i < 6; i++ {
		for j := i + 1; j < 6; j++ {
			_ = g.AddEdge(i, j, struct{}{}, 1)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.AllPaths(g, 0, 5)
	}
}
