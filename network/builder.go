package network

import (
	"sort"

	"github.com/katalvlaran/roadnet/edgelist"
	"github.com/katalvlaran/roadnet/matrix"
)

// built is the result of Build: the three pieces of network state that only
// ever exist together.
type built struct {
	vertices []string
	index    map[string]int
	dist     *matrix.Dense
	edges    int
}

// Build derives the vertex universe from records and fills the direct
// distance matrix.
//
// Stage 1: collect distinct labels from both endpoints and sort them
// ascending; rank is the matrix index.
// Stage 2: allocate an n×n matrix of matrix.Inf.
// Stage 3: write each record in input order. A later record for the same
// (From, To) pair overwrites an earlier one. Self-loop records register their
// label but write nothing, so the diagonal stays Inf.
//
// Complexity: O(E + n log n + n²).
func Build(records []edgelist.Record) (vertices []string, dist *matrix.Dense, err error) {
	b, err := build(records)
	if err != nil {
		return nil, nil, err
	}

	return b.vertices, b.dist, nil
}

func build(records []edgelist.Record) (*built, error) {
	seen := make(map[string]struct{}, 2*len(records))
	for _, r := range records {
		seen[r.From] = struct{}{}
		seen[r.To] = struct{}{}
	}
	vertices := make([]string, 0, len(seen))
	for label := range seen {
		vertices = append(vertices, label)
	}
	sort.Strings(vertices)

	index := make(map[string]int, len(vertices))
	for i, label := range vertices {
		index[label] = i
	}

	dist, err := matrix.NewSquare(len(vertices), matrix.Inf)
	if err != nil {
		return nil, err
	}

	for _, r := range records {
		if r.SelfLoop() {
			continue
		}
		if err = dist.Set(index[r.From], index[r.To], r.Weight); err != nil {
			return nil, err
		}
	}

	return &built{vertices: vertices, index: index, dist: dist, edges: countRoads(dist)}, nil
}

// countRoads counts the cells of m that are not matrix.Inf.
func countRoads(m *matrix.Dense) int {
	var count int
	for i := 0; i < m.Rows(); i++ {
		row, _ := m.Row(i)
		for _, d := range row {
			if d != matrix.Inf {
				count++
			}
		}
	}

	return count
}
