// Package dijkstra implements label-setting shortest distances on a dense matrix.
//
// Notes on implementation choices:
//
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring entries for vertices that are already settled.
//   - A road is any cell that is not matrix.Inf; Inf is checked before adding.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/roadnet/matrix"
)

// FromSource computes shortest distances from vertex index src to every
// vertex of the square matrix m.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrMatrixNil).
//  2. m must be square (ErrNonSquare).
//  3. src must be in [0, n) (ErrSourceOutOfRange).
//
// Returns a Result whose Dist[v] is matrix.Inf for unreachable v and
// Dist[src] == 0.
func FromSource(m *matrix.Dense, src int, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if m == nil {
		return nil, ErrMatrixNil
	}
	if m.Rows() != m.Cols() {
		return nil, fmt.Errorf("%w: %dx%d", ErrNonSquare, m.Rows(), m.Cols())
	}
	n := m.Rows()
	if src < 0 || src >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, src, n)
	}

	r := &runner{
		m:       m,
		n:       n,
		dist:    make([]int64, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
	}

	r.init(src)
	r.process()

	return &Result{Source: src, Dist: r.dist, Prev: r.prev}, nil
}

// runner holds the mutable state for a single run.
type runner struct {
	m       *matrix.Dense // read-only within the run
	n       int
	dist    []int64 // best known distance from the source
	prev    []int   // predecessor on a shortest route; nil unless requested
	visited []bool  // settled vertices
	pq      nodePQ
}

// init sets every distance to Inf except the source and seeds the heap.
func (r *runner) init(src int) {
	for v := 0; v < r.n; v++ {
		r.dist[v] = matrix.Inf
		if r.prev != nil {
			r.prev[v] = NoPredecessor
		}
	}
	r.dist[src] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: src, dist: 0})
}

// process settles vertices until the heap is empty. Vertices never pushed
// stay at Inf, which is how unreachable vertices are reported.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue // stale entry
		}
		r.visited[item.id] = true
		r.relax(item.id)
	}
}

// relax improves distances to u's unsettled neighbours.
// Assumes r.dist[u] is final.
func (r *runner) relax(u int) {
	var (
		v       int
		w       int64
		newDist int64
	)
	for v = 0; v < r.n; v++ {
		if r.visited[v] {
			continue
		}
		w, _ = r.m.At(u, v) // bounds hold by construction
		if w == matrix.Inf {
			continue
		}

		newDist = r.dist[u] + w
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// nodeItem is a heap entry: a vertex and the distance it was pushed with.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, ties broken by lower id
// so runs are deterministic.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
