package amphipod

import "strconv"

// Kind is an amphipod type.
type Kind uint8

// Amphipod kinds in home-room order.
const (
	Amber Kind = iota
	Bronze
	Copper
	Desert
)

// Rooms is the number of side rooms, one per kind.
const Rooms = 4

var energy = [Rooms]uint64{1, 10, 100, 1000}

// KindOf maps a drawing letter A–D to its Kind.
func KindOf(c byte) (Kind, bool) {
	if c < 'A' || c >= 'A'+Rooms {
		return 0, false
	}

	return Kind(c - 'A'), true
}

// Valid reports whether k is one of the four kinds.
func (k Kind) Valid() bool { return k < Rooms }

// Energy is the cost of one step.
func (k Kind) Energy() uint64 { return energy[k] }

// Room is the index of the home room.
func (k Kind) Room() int { return int(k) }

// Column is the x coordinate of the home room.
func (k Kind) Column() int { return roomColumn(int(k)) }

// Letter is the drawing letter.
func (k Kind) Letter() byte { return 'A' + byte(k) }

func (k Kind) String() string {
	switch k {
	case Amber:
		return "Amber"
	case Bronze:
		return "Bronze"
	case Copper:
		return "Copper"
	case Desert:
		return "Desert"
	}

	return "Kind(" + strconv.Itoa(int(k)) + ")"
}
