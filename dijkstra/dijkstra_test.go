// SPDX-License-Identifier: MIT
// Package dijkstra_test contains unit tests for the Dijkstra implementation.

package dijkstra_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conquest/core"
	"github.com/katalvlaran/conquest/dijkstra"
)

type edge = struct {
	a, b string
	w    float64
}

// weighted builds a float-weighted graph from edge triples.
func weighted(t *testing.T, verts []string, edges []edge, opts ...core.GraphOption) *core.Graph[string, struct{}] {
	t.Helper()
	g := core.NewGraph[string, struct{}](opts...)
	for _, v := range verts {
		require.NoError(t, g.AddVertex(v))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.a, e.b, struct{}{}, e.w))
	}

	return g
}

func TestDijkstra_Validation(t *testing.T) {
	_, err := dijkstra.Dijkstra[string, struct{}](nil, "A")
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	g := weighted(t, []string{"A", "B"}, []edge{{"A", "B", -5}})
	_, err = dijkstra.Dijkstra(g, "X")
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
	_, err = dijkstra.Dijkstra(g, "A")
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)

	ok := weighted(t, []string{"A", "B"}, []edge{{"A", "B", 1}})
	_, err = dijkstra.Dijkstra(ok, "A", dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)
	_, err = dijkstra.Dijkstra(ok, "A", dijkstra.WithInfEdgeThreshold(0))
	assert.ErrorIs(t, err, dijkstra.ErrBadInfThreshold)

	_, _, err = dijkstra.ShortestPath(ok, "A", "X")
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

// TestShortestPath_RoadScenario mirrors a three-territory road network with
// an isolated fourth territory.
func TestShortestPath_RoadScenario(t *testing.T) {
	for _, opts := range [][]core.GraphOption{nil, {core.WithDenseStorage()}} {
		g := weighted(t, []string{"A", "B", "C", "D"}, []edge{{"A", "B", 3}, {"B", "C", 1}}, opts...)

		d, path, err := dijkstra.ShortestPath(g, "A", "C")
		require.NoError(t, err)
		assert.Equal(t, 4.0, d)
		assert.Equal(t, []string{"A", "B", "C"}, path)

		d, path, err = dijkstra.ShortestPath(g, "A", "D")
		require.NoError(t, err)
		assert.Equal(t, dijkstra.Unreachable, d)
		assert.Empty(t, path)

		d, path, err = dijkstra.ShortestPath(g, "B", "B")
		require.NoError(t, err)
		assert.Zero(t, d)
		assert.Equal(t, []string{"B"}, path)
	}
}

func TestDijkstra_PrefersCheaperDetour(t *testing.T) {
	g := weighted(t, []string{"A", "B", "C"}, []edge{{"A", "B", 1}, {"B", "C", 2}, {"A", "C", 5}})
	res, err := dijkstra.Dijkstra(g, "A")
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 1, 3}, res.Dist)
	assert.Equal(t, []int{-1, 0, 1}, res.Prev)
	path, err := res.PathTo("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)
	_, err = res.PathTo("Z")
	assert.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestDijkstra_Directed(t *testing.T) {
	g := weighted(t, []string{"A", "B", "C"}, []edge{{"A", "B", 1}, {"C", "B", 1}}, core.WithDirected())
	res, err := dijkstra.Dijkstra(g, "A")
	require.NoError(t, err)
	d, _ := res.DistanceTo("C")
	assert.Equal(t, dijkstra.Unreachable, d)
	assert.True(t, math.IsInf(res.Dist[2], 1))
}

func TestDijkstra_Limits(t *testing.T) {
	g := weighted(t, []string{"A", "B", "C"}, []edge{{"A", "B", 1}, {"B", "C", 10}, {"A", "C", 20}})

	res, err := dijkstra.Dijkstra(g, "A", dijkstra.WithMaxDistance(5))
	require.NoError(t, err)
	d, _ := res.DistanceTo("C")
	assert.Equal(t, dijkstra.Unreachable, d, "C is beyond the cap")

	res, err = dijkstra.Dijkstra(g, "A", dijkstra.WithInfEdgeThreshold(10))
	require.NoError(t, err)
	d, _ = res.DistanceTo("C")
	assert.Equal(t, dijkstra.Unreachable, d, "both edges into C are walls")

	res, err = dijkstra.Dijkstra(g, "A", dijkstra.WithInfEdgeThreshold(15))
	require.NoError(t, err)
	d, _ = res.DistanceTo("C")
	assert.Equal(t, 11.0, d)
}

func TestDijkstra_ZeroWeightsAndTies(t *testing.T) {
	// Two equal routes A–B–D and A–C–D; strict relaxation keeps the first found.
	g := weighted(t, []string{"A", "B", "C", "D"},
		[]edge{{"A", "B", 1}, {"A", "C", 1}, {"B", "D", 0}, {"C", "D", 0}})
	d, path, err := dijkstra.ShortestPath(g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)
	assert.Equal(t, []string{"A", "B", "D"}, path)
	assert.False(t, errors.Is(err, dijkstra.ErrNegativeWeight))
}
