package gridgraph_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/gridgraph"
	"github.com/katalvlaran/advent/input"
)

//----------------------------------------------------------------------------//
// NewGrid, ParseDigits and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects empty, ragged or out-of-range inputs.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
		{"Negative", [][]int{{1, -1}}, gridgraph.ErrWeightRange},
		{"TooLarge", [][]int{{10}}, gridgraph.ErrWeightRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGrid(tc.grid)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGrid(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNewGrid_Copies checks that later edits to the source slice do not leak in.
func TestNewGrid_Copies(t *testing.T) {
	src := [][]int{{1, 2}, {3, 4}}
	g, err := gridgraph.NewGrid(src)
	require.NoError(t, err)
	src[0][0] = 9
	assert.Equal(t, 1, g.Weight(gridgraph.Point{X: 0, Y: 0}))
	assert.Equal(t, [][]int{{1, 2}, {3, 4}}, g.Rows())
}

// TestParseDigits_Errors checks the positioned parse failures.
func TestParseDigits_Errors(t *testing.T) {
	_, err := gridgraph.ParseDigits("123\n4x6\n")
	require.ErrorIs(t, err, gridgraph.ErrInvalidDigit)
	require.ErrorIs(t, err, input.ErrParse)
	var pe *input.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, 2, pe.Column)

	_, err = gridgraph.ParseDigits("123\n45\n")
	require.ErrorIs(t, err, gridgraph.ErrNonRectangular)
	require.ErrorIs(t, err, input.ErrParse)

	_, err = gridgraph.ParseDigits("\n")
	require.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
	require.ErrorIs(t, err, input.ErrParse)

	_, err = gridgraph.FromRows(nil)
	require.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
	require.ErrorIs(t, err, input.ErrParse)
}

// TestParseDigits_RoundTrip checks String renders what ParseDigits read.
func TestParseDigits_RoundTrip(t *testing.T) {
	const text = "1163\n1381\n2136\n"
	g, err := gridgraph.ParseDigits(text)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Width)
	assert.Equal(t, 3, g.Height)
	assert.Equal(t, text, g.String())
	assert.Equal(t, gridgraph.Point{X: 3, Y: 2}, g.Corner())
	assert.Equal(t, gridgraph.Point{X: 2, Y: 1}, g.Coordinate(6))
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.NewGrid([][]int{
		{0, 1, 0},
		{1, 0, 1},
	})
	require.NoError(t, err)

	valid := []gridgraph.Point{{0, 0}, {2, 1}, {1, 1}}
	for _, p := range valid {
		if !g.InBounds(p) {
			t.Errorf("InBounds(%v)=false; want true", p)
		}
	}
	invalid := []gridgraph.Point{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, p := range invalid {
		if g.InBounds(p) {
			t.Errorf("InBounds(%v)=true; want false", p)
		}
	}
}

//----------------------------------------------------------------------------//
// Neighbors Tests
//----------------------------------------------------------------------------//

// TestNeighbors_Order verifies the canonical up, left, down, right order and
// clipping at the borders.
func TestNeighbors_Order(t *testing.T) {
	g, err := gridgraph.NewGrid([][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}})
	require.NoError(t, err)

	cases := []struct {
		at   gridgraph.Point
		want []gridgraph.Point
	}{
		{gridgraph.Point{X: 1, Y: 1}, []gridgraph.Point{{1, 0}, {0, 1}, {1, 2}, {2, 1}}},
		{gridgraph.Point{X: 0, Y: 0}, []gridgraph.Point{{0, 1}, {1, 0}}},
		{gridgraph.Point{X: 2, Y: 2}, []gridgraph.Point{{2, 1}, {1, 2}}},
		{gridgraph.Point{X: 2, Y: 0}, []gridgraph.Point{{1, 0}, {2, 1}}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, slices.Collect(g.Neighbors(tc.at)), "neighbors of %v", tc.at)
	}
}

// TestNeighbors_Restartable ranges the same sequence twice and stops early once.
func TestNeighbors_Restartable(t *testing.T) {
	g, err := gridgraph.NewGrid([][]int{{1, 1}, {1, 1}})
	require.NoError(t, err)

	seq := g.Neighbors(gridgraph.Point{X: 0, Y: 0})
	assert.Equal(t, slices.Collect(seq), slices.Collect(seq))

	var first []gridgraph.Point
	for p := range seq {
		first = append(first, p)
		break
	}
	assert.Len(t, first, 1)

	single, err := gridgraph.NewGrid([][]int{{5}})
	require.NoError(t, err)
	assert.Empty(t, slices.Collect(single.Neighbors(gridgraph.Point{})))
}
