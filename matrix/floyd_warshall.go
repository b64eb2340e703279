// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense APSP (Floyd–Warshall) with deterministic loop order.
//   - In-place, O(n³) time, O(1) extra space.
//
// Contract:
//   - Square matrix; Inf means "no path". The diagonal is not reset: a cell
//     (i,i) becomes finite only when a cycle through i exists.

package matrix

const opFloydWarshall = "FloydWarshall"

// FloydWarshall computes all-pairs shortest distances in place on m.
//
// For every intermediate vertex k and every pair (i, j), d[i][j] is replaced
// by d[i][k] + d[k][j] when both legs are finite and the sum is strictly
// smaller. Inf is never summed, so the sentinel cannot overflow.
//
// Callers that need to keep the direct-distance matrix pass a Clone.
//
// Complexity: Time O(n³), Extra space O(1).
func FloydWarshall(m *Dense) error {
	if m == nil {
		return matrixErrorf(opFloydWarshall, ErrNilMatrix)
	}
	if m.r != m.c {
		return matrixErrorf(opFloydWarshall, ErrNonSquare)
	}

	n := m.r
	data := m.data

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand int64
	)
	for k = 0; k < n; k++ { // intermediate vertex
		baseK = k * n
		for i = 0; i < n; i++ { // source
			ik = data[i*n+k]
			if ik == Inf { // i cannot reach k
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ { // destination
				kj = data[baseK+j]
				if kj == Inf {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] { // strict improvement only
					data[baseI+j] = cand
				}
			}
		}
	}

	return nil
}
