// Package render formats a network's distance matrices for people.
//
//   - Table writes the fixed-width grid shown by the CLI: one header row of
//     labels, then one row per source intersection. Inf cells and the
//     diagonal print as a placeholder ("*").
//   - YAML writes the same information as a nested map, omitting the
//     placeholder cells, for piping into other tools.
//
// Both take the vertex labels and a matrix whose rows and columns follow
// that order; neither modifies the matrix.
package render
