// Package amphipod sorts amphipods into their home rooms at minimum energy.
//
// The burrow is a hallway of 11 cells above four rooms of equal depth:
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
//
// Coordinates follow the drawing: the hallway is row y=1 (x=1..11) and room
// r occupies column x=3+2r on rows y=2..1+depth.
//
// Move rules:
//   - An amphipod never passes through an occupied cell.
//   - The hallway cells directly above the rooms are transit-only.
//   - Leaving a room, an amphipod stops in the hallway or walks straight into
//     its home room.
//   - From the hallway it may only enter its home room, and only while that
//     room holds no other kind; it descends to the deepest free slot.
//   - An amphipod in its home room with only its own kind below it is settled
//     and never moves again.
//
// Each step costs 1, 10, 100 or 1000 energy for Amber, Bronze, Copper and
// Desert. Solve runs search.ShortestPath over Board states; Board is an
// immutable string encoding that doubles as the deduplication key.
package amphipod
