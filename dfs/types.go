package dfs

import "errors"

var (
	// ErrMatrixNil is returned when a nil *matrix.Dense is passed in.
	ErrMatrixNil = errors.New("dfs: matrix is nil")

	// ErrNonSquare is returned when the adjacency matrix is not n×n.
	ErrNonSquare = errors.New("dfs: matrix is not square")

	// ErrStartOutOfRange indicates that the start index is not a vertex.
	ErrStartOutOfRange = errors.New("dfs: start vertex out of range")
)
