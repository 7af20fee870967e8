// Package gridgraph provides utilities to treat a 2D grid of digit weights
// as a graph. It supports:
//
//   - Construction from [][]int or from text rows of digits
//   - Four-connectivity in a fixed, reproducible order
//   - 5×-style tiling with wrap-around weights
//   - Minimum entering-cost paths through the search engine
package gridgraph

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/advent/input"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice indexed
// values[y][x]. It copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrWeightRange for a value
// outside 0–9.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	g := &Grid{Bounds: Bounds{Width: w, Height: h}, weights: make([]uint8, w*h)}
	for y, row := range values {
		for x, v := range row {
			if v < 0 || v > MaxWeight {
				return nil, fmt.Errorf("%w: cell %d,%d holds %d", ErrWeightRange, x, y, v)
			}
			g.weights[g.index(x, y)] = uint8(v)
		}
	}

	return g, nil
}

// ParseDigits builds a Grid from text with one row of digits per line.
// Trailing blank lines are ignored. A non-digit rune fails with an
// *input.ParseError wrapping ErrInvalidDigit; a row of the wrong length
// with one wrapping ErrNonRectangular.
func ParseDigits(text string) (*Grid, error) {
	return FromRows(input.Lines(text))
}

// FromRows builds a Grid from rows of digits.
func FromRows(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: %w: %d rows", input.ErrParse, ErrEmptyGrid, len(rows))
	}
	w := len(rows[0])
	values := make([][]int, len(rows))
	for y, row := range rows {
		if len(row) != w {
			return nil, input.Errorf(y+1, 0, row, ErrNonRectangular, "width %d, want %d", len(row), w)
		}
		values[y] = make([]int, w)
		for x := 0; x < len(row); x++ {
			c := row[x]
			if c < '0' || c > '9' {
				return nil, input.Errorf(y+1, x+1, row, ErrInvalidDigit, "rune %q", c)
			}
			values[y][x] = int(c - '0')
		}
	}

	return NewGrid(values)
}

// Weight returns the cost of entering p. p must be in bounds.
// Complexity: O(1).
func (g *Grid) Weight(p Point) int {
	return int(g.weights[g.index(p.X, p.Y)])
}

// Rows returns a copy of the weights as values[y][x].
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.Height)
	for y := range rows {
		rows[y] = make([]int, g.Width)
		for x := range rows[y] {
			rows[y][x] = int(g.weights[g.index(x, y)])
		}
	}

	return rows
}

// String renders the grid as rows of digits.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.Width + 1) * g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			b.WriteByte('0' + g.weights[g.index(x, y)])
		}
		b.WriteByte('\n')
	}

	return b.String()
}
