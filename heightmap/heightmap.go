// Package heightmap solves hill-climbing maps: a grid of letter elevations
// where a step may climb at most one level but descend any amount.
//
// Letters a–z are elevations 0–25; S marks the start (elevation a) and E the
// summit (elevation z). FewestSteps searches from S; FewestStepsFromLowest
// seeds the search with every lowest cell at once instead of running one
// search per candidate.
package heightmap

import (
	"errors"
	"fmt"
	"iter"

	"github.com/katalvlaran/advent/gridgraph"
	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/search"
)

// Sentinel errors for heightmap parsing.
var (
	// ErrMissingMarker indicates the map lacks an S or E cell, or has several.
	ErrMissingMarker = errors.New("heightmap: map needs exactly one S and one E")
	// ErrInvalidCell indicates a rune that is neither a letter a–z nor S/E.
	ErrInvalidCell = errors.New("heightmap: invalid cell")
)

// MaxClimb is the largest elevation gain allowed in one step.
const MaxClimb = 1

// Map is an immutable elevation grid with its start and summit cells.
type Map struct {
	gridgraph.Bounds
	Start, End gridgraph.Point
	elevation  []int8
}

// Parse reads a height map. Every row must have the same width.
func Parse(text string) (*Map, error) {
	rows := input.Lines(text)
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: %w: %d rows", input.ErrParse, gridgraph.ErrEmptyGrid, len(rows))
	}
	m := &Map{Bounds: gridgraph.Bounds{Width: len(rows[0]), Height: len(rows)}}
	m.elevation = make([]int8, m.Width*m.Height)
	var starts, ends int
	for y, row := range rows {
		if len(row) != m.Width {
			return nil, input.Errorf(y+1, 0, row, gridgraph.ErrNonRectangular, "width %d, want %d", len(row), m.Width)
		}
		for x := 0; x < len(row); x++ {
			p := gridgraph.Point{X: x, Y: y}
			c := row[x]
			switch {
			case c == 'S':
				m.Start, c = p, 'a'
				starts++
			case c == 'E':
				m.End, c = p, 'z'
				ends++
			case c < 'a' || c > 'z':
				return nil, input.Errorf(y+1, x+1, row, ErrInvalidCell, "rune %q", c)
			}
			m.elevation[m.Index(p)] = int8(c - 'a')
		}
	}
	if starts != 1 || ends != 1 {
		return nil, fmt.Errorf("%w: %w: found %d S and %d E", input.ErrParse, ErrMissingMarker, starts, ends)
	}

	return m, nil
}

// Elevation returns the height of p (0 for a, 25 for z).
func (m *Map) Elevation(p gridgraph.Point) int {
	return int(m.elevation[m.Index(p)])
}

// FewestSteps returns the length of the shortest climb from Start to End.
// found is false when the summit cannot be reached.
func (m *Map) FewestSteps(opts ...search.Option) (steps uint64, found bool, err error) {
	return m.climb([]gridgraph.Point{m.Start}, opts)
}

// FewestStepsFromLowest returns the shortest climb to End from any cell at
// the lowest elevation.
func (m *Map) FewestStepsFromLowest(opts ...search.Option) (steps uint64, found bool, err error) {
	var starts []gridgraph.Point
	for p := range m.Cells() {
		if m.Elevation(p) == 0 {
			starts = append(starts, p)
		}
	}

	return m.climb(starts, opts)
}

func (m *Map) climb(starts []gridgraph.Point, opts []search.Option) (uint64, bool, error) {
	res, err := search.BreadthFirst[gridgraph.Point, gridgraph.Point](m, starts, opts...)
	if err != nil {
		return 0, false, err
	}

	return uint64(res.Cost), res.Found, nil
}

// Key implements search.Graph.
func (m *Map) Key(p gridgraph.Point) gridgraph.Point { return p }

// IsGoal implements search.Graph.
func (m *Map) IsGoal(p gridgraph.Point) bool { return p == m.End }

// Neighbors implements search.Graph: the orthogonal neighbours at most
// MaxClimb higher than p.
func (m *Map) Neighbors(p gridgraph.Point) iter.Seq[gridgraph.Point] {
	return func(yield func(gridgraph.Point) bool) {
		h := m.Elevation(p)
		for n := range m.Bounds.Neighbors(p) {
			if m.Elevation(n)-h > MaxClimb {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}
