package render

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/roadnet/matrix"
)

// document is the YAML shape written by YAML.
type document struct {
	Vertices  []string                    `yaml:"vertices"`
	Distances map[string]map[string]int64 `yaml:"distances,omitempty"`
}

// YAML writes vertices and the finite off-diagonal cells of m as
//
//	vertices: [A, B]
//	distances:
//	  A:
//	    B: 5
//
// Map keys are emitted in sorted order.
func YAML(w io.Writer, vertices []string, m *matrix.Dense) error {
	if err := check(vertices, m); err != nil {
		return err
	}

	doc := document{Vertices: vertices}
	for i, from := range vertices {
		row, err := m.Row(i)
		if err != nil {
			return err
		}
		for j, d := range row {
			if i == j || d == matrix.Inf {
				continue
			}
			if doc.Distances == nil {
				doc.Distances = make(map[string]map[string]int64)
			}
			if doc.Distances[from] == nil {
				doc.Distances[from] = make(map[string]int64)
			}
			doc.Distances[from][vertices[j]] = d
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}
