// SPDX-License-Identifier: MIT

package dfs_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conquest/core"
	"github.com/katalvlaran/conquest/dfs"
)

// build creates a graph from vertex names and edge pairs.
func build(t *testing.T, verts []string, edges [][2]string, opts ...core.GraphOption) *core.Graph[string, struct{}] {
	t.Helper()
	g := core.NewGraph[string, struct{}](opts...)
	for _, v := range verts {
		require.NoError(t, g.AddVertex(v))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1], struct{}{}, 1))
	}

	return g
}

// buildChain creates a directed chain graph of length n: N0→N1→…→N(n-1).
func buildChain(t *testing.T, n int) *core.Graph[string, struct{}] {
	t.Helper()
	g := core.NewGraph[string, struct{}](core.WithDirected())
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(fmt.Sprintf("N%d", i)))
	}
	for i := 0; i+1 < n; i++ {
		require.NoError(t, g.AddEdge(fmt.Sprintf("N%d", i), fmt.Sprintf("N%d", i+1), struct{}{}, 1))
	}

	return g
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS[string, struct{}](nil, "A")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	g := build(t, nil, nil)
	res, err := dfs.DFS(g, "X")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_SingleVertex_NoEdges(t *testing.T) {
	g := build(t, []string{"X"}, nil)
	res, err := dfs.DFS(g, "X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, res.Order)
	assert.Equal(t, 0, res.Depth["X"])
	_, hasParent := res.Parent["X"]
	assert.False(t, hasParent, "start vertex should have no parent")
}

func TestDFS_SelfLoop(t *testing.T) {
	g := core.NewGraph[string, struct{}](core.WithDirected(), core.WithLoops())
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddEdge("A", "A", struct{}{}, 1))

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order, "self-loop adds no entries")
}

// TestDFS_PreOrder checks that the explicit stack reproduces recursive pre-order.
func TestDFS_PreOrder(t *testing.T) {
	//   A
	//  / \
	// B   C
	// |   |
	// D   E
	g := build(t, []string{"A", "B", "C", "D", "E"},
		[][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "E"}})

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C", "E"}, res.Order)
	assert.Equal(t, "C", res.Parent["E"])
	assert.Equal(t, 2, res.Depth["E"])
}

func TestDFS_Disconnected(t *testing.T) {
	g := build(t, []string{"A", "B", "C"}, [][2]string{{"A", "B"}}, core.WithDirected())
	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
	assert.NotContains(t, res.Depth, "C", "disconnected vertex should not be visited")
}

func TestDFS_MaxDepth(t *testing.T) {
	g := buildChain(t, 3)
	res, err := dfs.DFS(g, "N0", dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []string{"N0"}, res.Order)

	res, err = dfs.DFS(g, "N0", dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"N0", "N1"}, res.Order)
}

func TestDFS_FilterNeighbor(t *testing.T) {
	g := build(t, []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"A", "C"}}, core.WithDirected())
	res, err := dfs.DFS(g, "A", dfs.WithFilterNeighbor(func(v string) bool { return v != "C" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
	assert.Equal(t, 1, res.SkippedNeighbors)
}

func TestDFS_OnVisitError(t *testing.T) {
	g := buildChain(t, 3)
	halt := errors.New("halt")
	res, err := dfs.DFS(g, "N0", dfs.WithOnVisit(func(v string, _ int) error {
		if v == "N1" {
			return halt
		}
		return nil
	}))
	require.NotNil(t, res)
	assert.ErrorIs(t, err, halt)
	assert.Equal(t, []string{"N0", "N1"}, res.Order)

	_, err = dfs.DFS(g, "N0", dfs.WithOnVisit(func(int, int) error { return nil }))
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)
}

// TestDFS_LargeChain runs deep enough that recursion would be a concern.
func TestDFS_LargeChain(t *testing.T) {
	const n = 50000
	g := core.NewGraph[int, struct{}](core.WithDirected())
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(i))
	}
	for i := 0; i+1 < n; i++ {
		require.NoError(t, g.AddEdge(i, i+1, struct{}{}, 1))
	}
	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	require.Len(t, res.Order, n)
	assert.Equal(t, n-1, res.Depth[n-1])
}
