package amphipod

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/advent/gridgraph"
	"github.com/katalvlaran/advent/search"
)

// Burrow geometry.
const (
	// HallwayLen is the number of hallway cells.
	HallwayLen = 11
	// MaxDepth bounds the room depth accepted by NewBoard.
	MaxDepth = 8

	vacant = '.'
)

// hallwayStops are the hallway indices an amphipod may stop on; the cells
// above room entrances (2, 4, 6, 8) are missing.
var hallwayStops = [...]int{0, 1, 3, 5, 7, 9, 10}

// entrance is the hallway index directly above room r.
func entrance(room int) int { return 2 + 2*room }

// Board is an immutable burrow configuration. The zero Board is invalid; use
// NewBoard.
//
// cells holds the 11 hallway cells left to right, then each room top to
// bottom, one byte per cell ('.' or A–D). Two boards are equal exactly when
// every cell matches, so Board is its own search key.
type Board struct {
	cells string
}

// NewBoard validates l and encodes it.
//
// Fails with search.ErrConfiguration when the depth is outside 1..MaxDepth,
// an amphipod has an unknown kind or stands off the floor, two share a cell,
// a kind outnumbers its home slots, or a room has a gap under an amphipod.
func NewBoard(l Layout) (Board, error) {
	if l.Depth < 1 || l.Depth > MaxDepth {
		return Board{}, fmt.Errorf("%w: room depth %d outside 1..%d", search.ErrConfiguration, l.Depth, MaxDepth)
	}

	cells := []byte(strings.Repeat(string(vacant), HallwayLen+Rooms*l.Depth))
	var count [Rooms]int
	for _, a := range l.Amphipods {
		if !a.Kind.Valid() {
			return Board{}, fmt.Errorf("%w: unknown kind %d at %v", search.ErrConfiguration, a.Kind, a.Pos)
		}
		i, ok := cellIndex(a.Pos, l.Depth)
		if !ok {
			return Board{}, fmt.Errorf("%w: %v at %v is not on the floor", search.ErrConfiguration, a.Kind, a.Pos)
		}
		if cells[i] != vacant {
			return Board{}, fmt.Errorf("%w: two amphipods at %v", search.ErrConfiguration, a.Pos)
		}
		cells[i] = a.Kind.Letter()
		count[a.Kind]++
		if count[a.Kind] > l.Depth {
			return Board{}, fmt.Errorf("%w: more than %d %v amphipods", search.ErrConfiguration, l.Depth, a.Kind)
		}
	}

	b := Board{cells: string(cells)}
	for r := 0; r < Rooms; r++ {
		for d := 1; d < l.Depth; d++ {
			if b.cells[b.slot(r, d-1)] != vacant && b.cells[b.slot(r, d)] == vacant {
				return Board{}, fmt.Errorf("%w: room %d has a gap at depth %d", search.ErrConfiguration, r, d+1)
			}
		}
	}

	return b, nil
}

// cellIndex maps a drawing coordinate to its position in the encoding.
func cellIndex(p gridgraph.Point, depth int) (int, bool) {
	if p.Y == HallwayY {
		if p.X < 1 || p.X > HallwayLen {
			return 0, false
		}

		return p.X - 1, true
	}
	d := p.Y - HallwayY - 1
	if d < 0 || d >= depth || p.X < 3 || p.X%2 == 0 {
		return 0, false
	}
	r := (p.X - 3) / 2
	if r >= Rooms {
		return 0, false
	}

	return HallwayLen + r*depth + d, true
}

// Depth is the number of slots per room.
func (b Board) Depth() int { return (len(b.cells) - HallwayLen) / Rooms }

func (b Board) slot(room, d int) int { return HallwayLen + room*b.Depth() + d }

// At returns the amphipod kind at p, if any.
func (b Board) At(p gridgraph.Point) (Kind, bool) {
	i, ok := cellIndex(p, b.Depth())
	if !ok || i >= len(b.cells) || b.cells[i] == vacant {
		return 0, false
	}

	return KindOf(b.cells[i])
}

// Solved reports whether the hallway is empty and every room holds only
// its own kind.
func (b Board) Solved() bool {
	if len(b.cells) == 0 {
		return false
	}
	for h := 0; h < HallwayLen; h++ {
		if b.cells[h] != vacant {
			return false
		}
	}
	for r := 0; r < Rooms; r++ {
		if !b.clean(r) {
			return false
		}
	}

	return true
}

// Settled reports whether the amphipod at p is in its home room with only
// its own kind below it. Empty cells and hallway cells are never settled.
func (b Board) Settled(p gridgraph.Point) bool {
	k, ok := b.At(p)
	if !ok || p.Y == HallwayY || p.X != k.Column() {
		return false
	}

	return b.settled(k.Room(), p.Y-HallwayY-1)
}

// settled reports whether the occupant of slot d in room r and everything
// below it belong to room r.
func (b Board) settled(r, d int) bool {
	home := Kind(r).Letter()
	for ; d < b.Depth(); d++ {
		if c := b.cells[b.slot(r, d)]; c != home && c != vacant {
			return false
		}
	}

	return true
}

// clean reports whether room r holds no foreign kind.
func (b Board) clean(r int) bool { return b.settled(r, 0) }

// Amphipods decodes every amphipod, hallway first then rooms.
func (b Board) Amphipods() []Amphipod {
	var out []Amphipod
	for h := 0; h < HallwayLen; h++ {
		if k, ok := KindOf(b.cells[h]); ok {
			out = append(out, Amphipod{Kind: k, Pos: gridgraph.Point{X: h + 1, Y: HallwayY}})
		}
	}
	for r := 0; r < Rooms; r++ {
		for d := 0; d < b.Depth(); d++ {
			if k, ok := KindOf(b.cells[b.slot(r, d)]); ok {
				out = append(out, Amphipod{Kind: k, Pos: gridgraph.Point{X: roomColumn(r), Y: HallwayY + 1 + d}})
			}
		}
	}

	return out
}

// Layout converts b back to a Layout.
func (b Board) Layout() Layout {
	return Layout{Depth: b.Depth(), Amphipods: b.Amphipods()}
}

// String draws the burrow in the puzzle format.
func (b Board) String() string {
	if len(b.cells) == 0 {
		return "<empty board>"
	}

	var sb strings.Builder
	sb.WriteString("#############\n#")
	sb.WriteString(b.cells[:HallwayLen])
	sb.WriteString("#\n")
	for d := 0; d < b.Depth(); d++ {
		if d == 0 {
			sb.WriteString("###")
		} else {
			sb.WriteString("  #")
		}
		for r := 0; r < Rooms; r++ {
			sb.WriteByte(b.cells[b.slot(r, d)])
			sb.WriteByte('#')
		}
		if d == 0 {
			sb.WriteString("##")
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  #########\n")

	return sb.String()
}
