package amphipod

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/advent/gridgraph"
	"github.com/katalvlaran/advent/input"
)

// Drawing errors.
var (
	// ErrDrawing indicates a burrow drawing with no room rows.
	ErrDrawing = errors.New("amphipod: malformed burrow drawing")
	// ErrUnknownCell indicates a rune other than '#', ' ', '.' or A–D.
	ErrUnknownCell = errors.New("amphipod: unknown cell")
)

// HallwayY is the drawing row of the hallway.
const HallwayY = 1

// Folded rows inserted by Unfold between the first and last room rows.
var foldedRows = [2][Rooms]Kind{
	{Desert, Copper, Bronze, Amber},
	{Desert, Bronze, Amber, Copper},
}

// Amphipod is one entity and its drawing coordinate.
type Amphipod struct {
	Kind Kind
	Pos  gridgraph.Point
}

// Layout is a parsed burrow: room depth and every amphipod.
type Layout struct {
	Depth     int
	Amphipods []Amphipod
}

// Parse reads a burrow drawing. Depth is the number of rows below the
// hallway that contain floor or amphipods. Positions are not validated here;
// NewBoard does that.
func Parse(text string) (Layout, error) {
	var l Layout
	lines := input.Lines(text)
	for y, line := range lines {
		for x := 0; x < len(line); x++ {
			c := line[x]
			switch c {
			case '#', ' ':
				continue
			case '.':
			default:
				k, ok := KindOf(c)
				if !ok {
					return Layout{}, input.Errorf(y+1, x+1, line, ErrUnknownCell, "rune %q", c)
				}
				l.Amphipods = append(l.Amphipods, Amphipod{Kind: k, Pos: gridgraph.Point{X: x, Y: y}})
			}
			if y > HallwayY {
				l.Depth = max(l.Depth, y-HallwayY)
			}
		}
	}
	if l.Depth == 0 {
		return Layout{}, fmt.Errorf("%w: %w: no room rows in %d lines", input.ErrParse, ErrDrawing, len(lines))
	}

	return l, nil
}

// Unfold returns a copy of l with the two folded rows (DCBA, DBAC) inserted
// under the first room row. Everything deeper moves down by two.
func Unfold(l Layout) Layout {
	out := Layout{Depth: l.Depth + len(foldedRows)}
	for _, a := range l.Amphipods {
		if a.Pos.Y > HallwayY+1 {
			a.Pos.Y += len(foldedRows)
		}
		out.Amphipods = append(out.Amphipods, a)
	}
	for i, row := range foldedRows {
		for r, k := range row {
			out.Amphipods = append(out.Amphipods, Amphipod{
				Kind: k,
				Pos:  gridgraph.Point{X: roomColumn(r), Y: HallwayY + 2 + i},
			})
		}
	}

	return out
}

func roomColumn(room int) int { return 3 + 2*room }
