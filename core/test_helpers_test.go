// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"iter"
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/conquest/core"
)

// Common vertex labels used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexE = "E"
)

// backings lists both storage modes so every contract runs against each.
var backings = []struct {
	name string
	opts []core.GraphOption
}{
	{name: "list", opts: nil},
	{name: "matrix", opts: []core.GraphOption{core.WithDenseStorage()}},
}

// forEachBacking runs fn once per storage backing as a subtest.
func forEachBacking(t *testing.T, fn func(t *testing.T, opts ...core.GraphOption)) {
	t.Helper()
	for _, b := range backings {
		t.Run(b.name, func(t *testing.T) { fn(t, b.opts...) })
	}
}

// buildPath creates the undirected chain ids[0]–ids[1]–…, edge i weighted i+1.
func buildPath(t *testing.T, ids []string, opts ...core.GraphOption) *core.Graph[string, int] {
	t.Helper()
	g := core.NewGraph[string, int](opts...)
	for _, id := range ids {
		if err := g.AddVertex(id); err != nil {
			t.Fatalf("AddVertex(%s): %v", id, err)
		}
	}
	for i := 1; i < len(ids); i++ {
		if err := g.AddEdge(ids[i-1], ids[i], i, float64(i)); err != nil {
			t.Fatalf("AddEdge(%s,%s): %v", ids[i-1], ids[i], err)
		}
	}

	return g
}

// collectV drains a sequence into a slice.
func collectV(seq iter.Seq[string]) []string {
	return slices.Collect(seq)
}

// nan returns a NaN weight for validation tests.
func nan() float64 { return math.NaN() }
