// SPDX-License-Identifier: MIT
//
// File: storage.go
// Role: the two edge backings behind Graph, addressed purely by vertex key.
//
// Both backings keep one slot per vertex key. Undirected edges are stored in
// both endpoint slots and share the same *Edge record. remove(k) drops slot k
// and shifts every key above k down by one, matching the compaction done on
// Graph.verts.

package core

// storage is the key-addressed edge container used by Graph.
// All methods are called with Graph.mu held.
type storage[V comparable, E any] interface {
	// grow appends an empty slot for a new vertex with key == current size.
	grow()
	// remove deletes slot k and every entry pointing at k, then compacts keys.
	remove(k int)
	get(a, b int) *Edge[V, E]
	put(a, b int, e *Edge[V, E])
	del(a, b int)
	// each calls fn for every entry of slot a until fn returns false.
	each(a int, fn func(b int, e *Edge[V, E]) bool)
	degree(a int) int
}

// slot is one adjacency-list entry.
type slot[V comparable, E any] struct {
	to   int
	edge *Edge[V, E]
}

// listStore is the sparse adjacency-list backing. Entries keep insertion order.
type listStore[V comparable, E any] struct {
	rows [][]slot[V, E]
}

func (s *listStore[V, E]) grow() { s.rows = append(s.rows, nil) }

func (s *listStore[V, E]) remove(k int) {
	s.rows = append(s.rows[:k], s.rows[k+1:]...)
	for i, row := range s.rows {
		kept := row[:0]
		for _, sl := range row {
			if sl.to == k {
				continue
			}
			if sl.to > k {
				sl.to--
			}
			kept = append(kept, sl)
		}
		s.rows[i] = kept
	}
}

func (s *listStore[V, E]) get(a, b int) *Edge[V, E] {
	for _, sl := range s.rows[a] {
		if sl.to == b {
			return sl.edge
		}
	}

	return nil
}

func (s *listStore[V, E]) put(a, b int, e *Edge[V, E]) {
	s.rows[a] = append(s.rows[a], slot[V, E]{to: b, edge: e})
}

func (s *listStore[V, E]) del(a, b int) {
	row := s.rows[a]
	for i, sl := range row {
		if sl.to == b {
			s.rows[a] = append(row[:i], row[i+1:]...)
			return
		}
	}
}

func (s *listStore[V, E]) each(a int, fn func(b int, e *Edge[V, E]) bool) {
	for _, sl := range s.rows[a] {
		if !fn(sl.to, sl.edge) {
			return
		}
	}
}

func (s *listStore[V, E]) degree(a int) int { return len(s.rows[a]) }

// matrixStore is the dense adjacency-matrix backing; cells[a][b] is nil when
// there is no edge. Iteration follows target key order.
type matrixStore[V comparable, E any] struct {
	cells [][]*Edge[V, E]
}

func (s *matrixStore[V, E]) grow() {
	n := len(s.cells)
	for i := range s.cells {
		s.cells[i] = append(s.cells[i], nil)
	}
	s.cells = append(s.cells, make([]*Edge[V, E], n+1))
}

func (s *matrixStore[V, E]) remove(k int) {
	s.cells = append(s.cells[:k], s.cells[k+1:]...)
	for i, row := range s.cells {
		s.cells[i] = append(row[:k], row[k+1:]...)
	}
}

func (s *matrixStore[V, E]) get(a, b int) *Edge[V, E] { return s.cells[a][b] }

func (s *matrixStore[V, E]) put(a, b int, e *Edge[V, E]) { s.cells[a][b] = e }

func (s *matrixStore[V, E]) del(a, b int) { s.cells[a][b] = nil }

func (s *matrixStore[V, E]) each(a int, fn func(b int, e *Edge[V, E]) bool) {
	for b, e := range s.cells[a] {
		if e == nil {
			continue
		}
		if !fn(b, e) {
			return
		}
	}
}

func (s *matrixStore[V, E]) degree(a int) int {
	n := 0
	for _, e := range s.cells[a] {
		if e != nil {
			n++
		}
	}

	return n
}
