// SPDX-License-Identifier: MIT

package bfs_test

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/katalvlaran/conquest/bfs"
	"github.com/katalvlaran/conquest/core"
)

// undirected builds an undirected graph from vertex names and edge pairs.
func undirected(t *testing.T, verts []string, edges [][2]string, opts ...core.GraphOption) *core.Graph[string, struct{}] {
	t.Helper()
	g := core.NewGraph[string, struct{}](opts...)
	for _, v := range verts {
		if err := g.AddVertex(v); err != nil {
			t.Fatalf("AddVertex(%s): %v", v, err)
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1], struct{}{}, 1); err != nil {
			t.Fatalf("AddEdge(%s,%s): %v", e[0], e[1], err)
		}
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS[string, struct{}](nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := undirected(t, []string{"A"}, nil)
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	if _, err := bfs.BFS(g, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
	wrongType := bfs.WithFilterNeighbor(func(_, _ int) bool { return true })
	if _, err := bfs.BFS(g, "A", wrongType); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("mistyped filter: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SimpleTraversal covers the trivial one-vertex graph.
func TestBFS_SimpleTraversal(t *testing.T) {
	g := undirected(t, []string{"A"}, nil)
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []string{"A"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if d := res.Depth["A"]; d != 0 {
		t.Errorf("Depth[A] = %d; want 0", d)
	}
}

// TestBFS_CycleAndDepths covers a simple cycle on both backings.
func TestBFS_CycleAndDepths(t *testing.T) {
	for _, opts := range [][]core.GraphOption{nil, {core.WithDenseStorage()}} {
		g := undirected(t, []string{"A", "B", "C", "D"},
			[][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}}, opts...)

		res, err := bfs.BFS(g, "A")
		if err != nil {
			t.Fatal(err)
		}
		if want := []string{"A", "B", "D", "C"}; !reflect.DeepEqual(res.Order, want) {
			t.Errorf("Order = %v; want %v", res.Order, want)
		}
		want := map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}
		if !reflect.DeepEqual(res.Depth, want) {
			t.Errorf("Depth = %v; want %v", res.Depth, want)
		}
		path, err := res.PathTo("C")
		if err != nil {
			t.Fatal(err)
		}
		if want := []string{"A", "B", "C"}; !reflect.DeepEqual(path, want) {
			t.Errorf("PathTo(C) = %v; want %v", path, want)
		}
	}
}

// TestBFS_Unreachable ensures unreachable vertices never appear.
func TestBFS_Unreachable(t *testing.T) {
	g := undirected(t, []string{"A", "B", "X", "Y"}, [][2]string{{"A", "B"}, {"X", "Y"}})
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if _, err := res.PathTo("X"); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("PathTo(X): want ErrNoPath, got %v", err)
	}
}

// TestBFS_Directed follows edges From→To only.
func TestBFS_Directed(t *testing.T) {
	g := undirected(t, []string{"A", "B", "C"}, [][2]string{{"B", "A"}, {"B", "C"}}, core.WithDirected())
	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Order) != 1 {
		t.Errorf("Order = %v; want only A", res.Order)
	}
	res, _ = bfs.BFS(g, "B")
	if want := []string{"B", "A", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_Options exercises MaxDepth, FilterNeighbor and OnVisit.
func TestBFS_Options(t *testing.T) {
	g := undirected(t, []string{"A", "B", "C", "D"}, [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}})

	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("MaxDepth=2 Order = %v; want %v", res.Order, want)
	}

	res, err = bfs.BFS(g, "A", bfs.WithFilterNeighbor(func(_, nbr string) bool { return nbr != "C" }))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("filtered Order = %v; want %v", res.Order, want)
	}

	stop := errors.New("stop")
	var seen []string
	res, err = bfs.BFS(g, "A", bfs.WithOnVisit(func(v string, depth int) error {
		seen = append(seen, fmt.Sprintf("%s@%d", v, depth))
		if v == "B" {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Fatalf("want hook error, got %v", err)
	}
	if want := []string{"A@0", "B@1"}; !reflect.DeepEqual(seen, want) {
		t.Errorf("hook saw %v; want %v", seen, want)
	}
	if res == nil || len(res.Order) != 2 {
		t.Errorf("partial result missing: %+v", res)
	}
}
