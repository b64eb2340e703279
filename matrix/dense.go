// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Inf marks a cell with no direct road (or, after FloydWarshall, no path).
// It is the largest representable int64 and is never used in arithmetic.
const Inf int64 = math.MaxInt64

// Dense is a row-major matrix of int64 distances.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int     // number of rows and columns
	data []int64 // flat backing storage, length == r*c
}

// NewDense creates an rows×cols Dense matrix initialized to zeros.
// Zero dimensions are allowed and describe an empty network.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]int64, rows*cols)}, nil
}

// NewSquare creates an n×n matrix with every cell set to fill.
// Network construction uses NewSquare(n, Inf).
func NewSquare(n int, fill int64) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	if fill != 0 {
		for i := range m.data {
			m.data[i] = fill
		}
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (int64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col), overwriting any earlier value.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]int64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]int64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	copyData := make([]int64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// Equal reports whether m and o have the same shape and cells.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// String renders the matrix one row per line, with "∞" for Inf.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			v := m.data[i*m.c+j]
			if v == Inf {
				sb.WriteString("∞")
			} else {
				fmt.Fprintf(&sb, "%d", v)
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
