package dfs

import (
	"fmt"

	"github.com/katalvlaran/roadnet/matrix"
)

// walker holds the reusable state of repeated traversals over one matrix.
type walker struct {
	m       *matrix.Dense
	n       int
	visited []bool
	stack   []int
}

func newWalker(m *matrix.Dense) (*walker, error) {
	if m == nil {
		return nil, ErrMatrixNil
	}
	if m.Rows() != m.Cols() {
		return nil, fmt.Errorf("%w: %dx%d", ErrNonSquare, m.Rows(), m.Cols())
	}
	n := m.Rows()

	return &walker{
		m:       m,
		n:       n,
		visited: make([]bool, n),
		stack:   make([]int, 0, n),
	}, nil
}

// walk marks every vertex reachable from start and returns how many were marked.
// The start vertex counts as reached.
func (w *walker) walk(start int) int {
	for i := range w.visited {
		w.visited[i] = false
	}
	w.stack = append(w.stack[:0], start)
	w.visited[start] = true
	count := 1

	var u, v int
	var d int64
	for len(w.stack) > 0 {
		u = w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		for v = 0; v < w.n; v++ {
			if w.visited[v] {
				continue
			}
			d, _ = w.m.At(u, v) // bounds hold by construction
			if d == matrix.Inf {
				continue
			}
			w.visited[v] = true
			count++
			w.stack = append(w.stack, v)
		}
	}

	return count
}

// Reachable returns, for every vertex index, whether it can be reached from
// start by following roads. reached[start] is always true.
func Reachable(m *matrix.Dense, start int) ([]bool, error) {
	w, err := newWalker(m)
	if err != nil {
		return nil, err
	}
	if start < 0 || start >= w.n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, w.n)
	}

	w.walk(start)

	return w.visited, nil
}

// StronglyConnected reports whether every vertex can reach every other
// vertex. It stops at the first traversal that leaves a vertex unmarked.
//
// An empty matrix and a single isolated vertex are strongly connected.
func StronglyConnected(m *matrix.Dense) (bool, error) {
	w, err := newWalker(m)
	if err != nil {
		return false, err
	}

	for start := 0; start < w.n; start++ {
		if w.walk(start) != w.n {
			return false, nil
		}
	}

	return true, nil
}
