package gridgraph_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/advent/gridgraph"
)

func TestBounds_Cells(t *testing.T) {
	b := gridgraph.Bounds{Width: 3, Height: 2}

	var got []gridgraph.Point
	for p := range b.Cells() {
		if idx := b.Index(p); b.Coordinate(idx) != p {
			t.Errorf("Coordinate(Index(%v)) = %v", p, b.Coordinate(idx))
		}
		got = append(got, p)
	}
	want := []gridgraph.Point{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}
	if !slices.Equal(got, want) {
		t.Errorf("Cells = %v; want %v", got, want)
	}
}

func TestBounds_NeighborsStopEarly(t *testing.T) {
	b := gridgraph.Bounds{Width: 3, Height: 3}

	var first []gridgraph.Point
	for n := range b.Neighbors(gridgraph.Point{X: 1, Y: 1}) {
		first = append(first, n)
		if len(first) == 2 {
			break
		}
	}
	if want := []gridgraph.Point{{1, 0}, {0, 1}}; !slices.Equal(first, want) {
		t.Errorf("first two neighbours = %v; want %v", first, want)
	}
	if b.InBounds(gridgraph.Point{X: 3, Y: 0}) {
		t.Error("3,0 reported inside a 3x3 rectangle")
	}
}
