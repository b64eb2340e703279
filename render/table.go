package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/roadnet/matrix"
)

// ErrNoNetwork is returned when there are no labels or no matrix to render.
var ErrNoNetwork = errors.New("render: no transportation network data to display")

// ErrShapeMismatch is returned when the matrix does not match the label count.
var ErrShapeMismatch = errors.New("render: matrix shape does not match vertex count")

const (
	// DefaultCellWidth is the minimum width each cell is padded to.
	DefaultCellWidth = 5
	// DefaultPlaceholder stands in for "no road" and for the diagonal.
	DefaultPlaceholder = "*"
	cellGap            = "  "
)

// TableOption configures Table.
type TableOption func(*tableConfig)

type tableConfig struct {
	width       int
	placeholder string
}

// WithCellWidth sets the padded cell width. Values below 1 are ignored.
func WithCellWidth(w int) TableOption {
	return func(c *tableConfig) {
		if w > 0 {
			c.width = w
		}
	}
}

// WithPlaceholder sets the text printed for missing roads and the diagonal.
func WithPlaceholder(s string) TableOption {
	return func(c *tableConfig) { c.placeholder = s }
}

// Table writes vertices and m as a left-aligned grid. Every cell is padded to
// the cell width followed by two spaces; longer labels and values are not
// truncated. Trailing blanks are trimmed from each line.
func Table(w io.Writer, vertices []string, m *matrix.Dense, opts ...TableOption) error {
	if err := check(vertices, m); err != nil {
		return err
	}
	cfg := tableConfig{width: DefaultCellWidth, placeholder: DefaultPlaceholder}
	for _, opt := range opts {
		opt(&cfg)
	}

	var line strings.Builder
	cell := func(s string) {
		line.WriteString(s)
		if pad := cfg.width - len([]rune(s)); pad > 0 {
			line.WriteString(strings.Repeat(" ", pad))
		}
		line.WriteString(cellGap)
	}
	flush := func() error {
		_, err := io.WriteString(w, strings.TrimRight(line.String(), " ")+"\n")
		line.Reset()

		return err
	}

	cell("")
	for _, v := range vertices {
		cell(v)
	}
	if err := flush(); err != nil {
		return err
	}

	for i, from := range vertices {
		cell(from)
		row, err := m.Row(i)
		if err != nil {
			return err
		}
		for j, d := range row {
			if i == j || d == matrix.Inf {
				cell(cfg.placeholder)
				continue
			}
			cell(strconv.FormatInt(d, 10))
		}
		if err = flush(); err != nil {
			return err
		}
	}

	return nil
}

func check(vertices []string, m *matrix.Dense) error {
	if vertices == nil || m == nil {
		return ErrNoNetwork
	}
	if m.Rows() != len(vertices) || m.Cols() != len(vertices) {
		return fmt.Errorf("%w: %d labels, %dx%d matrix", ErrShapeMismatch, len(vertices), m.Rows(), m.Cols())
	}

	return nil
}
