// Package dijkstra provides single-source shortest distances over a dense
// distance matrix with non-negative road weights.
//
// Overview:
//
//   - FromSource settles vertices in order of increasing distance from the
//     source, relaxing each settled vertex's outgoing roads.
//   - A min-heap with lazy decrease-key picks the next vertex; stale heap
//     entries are skipped when popped.
//   - The loop ends when the heap drains: every vertex still at matrix.Inf
//     is unreachable.
//
// Relaxation never adds matrix.Inf: cells equal to Inf are not roads and are
// skipped before any arithmetic.
//
// Limitations:
//
//   - Weights are assumed non-negative. Negative weights are not rejected,
//     and results are unspecified when they are present.
//
// Options:
//
//   - WithReturnPath(): fill Result.Prev so routes can be rebuilt via PathTo.
//
// Complexity:
//
//   - Time:  O(n² log n) on the dense representation (n² edge scans, heap ops O(log n)).
//   - Space: O(n) plus up to O(n²) stale heap entries in the worst case.
//
// Errors (sentinel):
//
//   - ErrMatrixNil         if the matrix is nil.
//   - ErrNonSquare         if the matrix is not n×n.
//   - ErrSourceOutOfRange  if the source index is not a vertex.
package dijkstra
