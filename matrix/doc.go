// SPDX-License-Identifier: MIT

// Package matrix provides the dense distance matrix that backs a road network.
//
// A Dense is an n×n row-major table of int64 distances. Cell (i, j) holds the
// weight of the direct road from vertex i to vertex j, or Inf when there is
// none. Rows and columns follow the vertex index assigned by the caller
// (network sorts labels ascending).
//
// Besides storage the package offers one algorithm:
//
//   - FloydWarshall(m): all-pairs shortest distances, computed in place with
//     a fixed k → i → j loop order. Inf is treated as "no path" and is never
//     added to anything.
//
// Matrices are best for the small, dense networks this module targets (tens
// to low hundreds of intersections): O(n²) memory, O(1) edge lookups.
//
// Errors:
//
//	ErrBadShape     - negative dimension requested.
//	ErrOutOfRange   - row or column index outside [0, n).
//	ErrNilMatrix    - nil *Dense passed to an operation.
//	ErrNonSquare    - square matrix required.
package matrix
