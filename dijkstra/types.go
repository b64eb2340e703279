package dijkstra

import (
	"errors"

	"github.com/katalvlaran/roadnet/matrix"
)

// Sentinel errors returned by FromSource.
var (
	// ErrMatrixNil indicates that a nil *matrix.Dense was passed.
	ErrMatrixNil = errors.New("dijkstra: matrix is nil")

	// ErrNonSquare indicates the adjacency matrix is not n×n.
	ErrNonSquare = errors.New("dijkstra: matrix is not square")

	// ErrSourceOutOfRange indicates that the source index is not a vertex.
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")
)

// NoPredecessor marks the source and unreachable vertices in Result.Prev.
const NoPredecessor = -1

// Options configures FromSource.
type Options struct {
	// ReturnPath requests the predecessor slice in Result.Prev.
	ReturnPath bool
}

// Option represents a functional option for configuring FromSource.
type Option func(*Options)

// WithReturnPath enables Result.Prev.
// If not set (default), Prev is nil.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// DefaultOptions returns Options with ReturnPath disabled.
func DefaultOptions() Options {
	return Options{ReturnPath: false}
}

// Result holds the outcome of a single-source run.
type Result struct {
	// Source is the vertex index the run started from.
	Source int

	// Dist[v] is the shortest distance from Source to v, or matrix.Inf.
	Dist []int64

	// Prev[v] is the vertex before v on one shortest route, or NoPredecessor.
	// Nil unless WithReturnPath was given.
	Prev []int
}

// Reachable reports whether v was reached from Source.
func (r *Result) Reachable(v int) bool {
	return v >= 0 && v < len(r.Dist) && r.Dist[v] != matrix.Inf
}

// PathTo rebuilds the route Source → … → v as vertex indices.
// It returns nil when v is unreachable, out of range, or Prev was not recorded.
func (r *Result) PathTo(v int) []int {
	if r.Prev == nil || !r.Reachable(v) {
		return nil
	}

	var path []int
	for cur := v; cur != NoPredecessor; cur = r.Prev[cur] {
		path = append(path, cur)
		if cur == r.Source {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
