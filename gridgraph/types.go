// Package gridgraph defines the Grid and Point types and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/advent.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrWeightRange indicates a cell weight outside 0–9.
	ErrWeightRange = errors.New("gridgraph: cell weight must be between 0 and 9")
	// ErrInvalidDigit indicates a non-digit rune in a text row.
	ErrInvalidDigit = errors.New("gridgraph: cell is not a decimal digit")
	// ErrBadFactor indicates a tiling factor below 1.
	ErrBadFactor = errors.New("gridgraph: tile factor must be at least 1")
)

// MaxWeight is the largest weight a cell may hold.
const MaxWeight = 9

// Point is a cell coordinate; X grows right, Y grows down.
type Point struct {
	X, Y int
}

// String formats the point as "x,y".
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point {
	return Point{p.X + d.X, p.Y + d.Y}
}

// Manhattan returns |dx| + |dy| between p and q.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// Bounds is a Width×Height rectangle of cells anchored at 0,0. It carries
// the geometry shared by every grid-shaped puzzle map.
type Bounds struct {
	Width, Height int
}

// Grid is an immutable rectangular weight map; weights holds the cell
// values row-major.
type Grid struct {
	Bounds
	weights []uint8
}

// neighborOffsets is the canonical 4-neighbour order: up, left, down, right.
var neighborOffsets = [4]Point{{0, -1}, {-1, 0}, {0, 1}, {1, 0}}
