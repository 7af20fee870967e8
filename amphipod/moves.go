package amphipod

import "iter"

// Moves yields every legal single move from b with its energy cost.
//
// Rooms are scanned left to right: the top amphipod of each unsettled room
// either walks straight into its home room or stops on every reachable
// hallway cell, nearest stops first. Hallway amphipods follow, left to right,
// each with at most one move into its home room.
func (b Board) Moves() iter.Seq2[Board, uint64] {
	return func(yield func(Board, uint64) bool) {
		for r := 0; r < Rooms; r++ {
			if !b.roomMoves(r, yield) {
				return
			}
		}
		for h := 0; h < HallwayLen; h++ {
			k, ok := KindOf(b.cells[h])
			if !ok {
				continue
			}
			home := k.Room()
			if !b.clean(home) || !b.clear(h, entrance(home)) {
				continue
			}
			t := b.landing(home)
			if t < 0 {
				continue
			}
			steps := distance(h, entrance(home)) + t + 1
			if !yield(b.move(h, b.slot(home, t)), k.Energy()*uint64(steps)) {
				return
			}
		}
	}
}

// roomMoves yields the moves of the top amphipod in room r. It returns false
// once yield asks to stop.
func (b Board) roomMoves(r int, yield func(Board, uint64) bool) bool {
	d := 0
	for d < b.Depth() && b.cells[b.slot(r, d)] == vacant {
		d++
	}
	if d == b.Depth() || b.settled(r, d) {
		return true
	}

	from := b.slot(r, d)
	k, _ := KindOf(b.cells[from])
	e := entrance(r)
	if home := k.Room(); home != r && b.clean(home) && b.clear(e, entrance(home)) {
		if t := b.landing(home); t >= 0 {
			steps := d + 1 + distance(e, entrance(home)) + t + 1
			if !yield(b.move(from, b.slot(home, t)), k.Energy()*uint64(steps)) {
				return false
			}
		}
	}
	for _, s := range hallwayStops {
		if !b.clear(e, s) {
			continue
		}
		if !yield(b.move(from, s), k.Energy()*uint64(d+1+distance(e, s))) {
			return false
		}
	}

	return true
}

// clear reports whether every hallway cell after from up to and including to
// is vacant.
func (b Board) clear(from, to int) bool {
	step := 1
	if to < from {
		step = -1
	}
	for h := from; h != to; {
		h += step
		if b.cells[h] != vacant {
			return false
		}
	}

	return true
}

// landing is the deepest slot reachable from the top of room r, or -1 when
// the top slot is taken.
func (b Board) landing(r int) int {
	t := -1
	for d := 0; d < b.Depth() && b.cells[b.slot(r, d)] == vacant; d++ {
		t = d
	}

	return t
}

// move returns a copy of b with the occupant of cell from moved to cell to.
func (b Board) move(from, to int) Board {
	c := []byte(b.cells)
	c[to], c[from] = c[from], vacant

	return Board{cells: string(c)}
}

func distance(a, b int) int {
	if a > b {
		return a - b
	}

	return b - a
}
