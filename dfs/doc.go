// Package dfs implements depth-first reachability over a dense distance
// matrix and the strong-connectivity check built on it.
//
// Any cell that is not matrix.Inf is a traversable one-way road. The walk
// uses an explicit stack rather than recursion, so deep chains of
// intersections cannot exhaust the goroutine stack.
//
// Key functions:
//   - Reachable(m, start): which vertices can be reached from start.
//   - StronglyConnected(m): whether every vertex reaches every other vertex.
//
// Complexity:
//
//   - Reachable:         O(n²) time on the dense representation, O(n) memory.
//   - StronglyConnected: O(n³) worst case (n traversals).
//
// Errors:
//
//   - ErrMatrixNil          if m is nil.
//   - ErrNonSquare          if m is not n×n.
//   - ErrStartOutOfRange    if start is not a valid vertex index.
package dfs
