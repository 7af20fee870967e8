package amphipod_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/amphipod"
	"github.com/katalvlaran/advent/gridgraph"
)

// TestMoves_Start: only the top amphipod of each room can move and no room
// accepts anyone yet, so each of the four walks to one of the seven stops.
func TestMoves_Start(t *testing.T) {
	for _, drawing := range []string{example, exampleUnfolded} {
		_, costs := moves(board(t, drawing))
		require.Len(t, costs, 28)

		// Bronze leaving room A: stops 1, 2, 4, 6, 8, 10, 11.
		assert.Equal(t, []uint64{30, 20, 20, 40, 60, 80, 90}, costs[:7])
		// Desert leaving room D.
		assert.Equal(t, []uint64{9000, 8000, 6000, 4000, 2000, 2000, 3000}, costs[21:])
	}
}

func TestMoves_Mixed(t *testing.T) {
	b := board(t, `#############
#.....D.....#
###B#.#C#D###
  #A#B#C#A#
  #########
`)
	boards, costs := moves(b)

	// Bronze goes straight home, then stops left of the hallway Desert.
	// Room C is settled. Desert leaves room D for the right-hand stops only.
	// The hallway Desert cannot enter room D while the Amber is there.
	assert.Equal(t, []uint64{40, 30, 20, 20, 2000, 2000, 3000}, costs)
	assert.Equal(t, board(t, `#############
#.....D.....#
###.#B#C#D###
  #A#B#C#A#
  #########
`), boards[0])
	assert.Equal(t, board(t, `#############
#.....D....D#
###B#.#C#.###
  #A#B#C#A#
  #########
`), boards[6])
}

func TestMoves_DeepLanding(t *testing.T) {
	b := board(t, `#############
#A.........D#
###.#B#C#.###
  #.#B#C#.#
  #.#B#C#D#
  #A#B#C#D#
  #########
`)
	boards, costs := moves(b)

	require.Equal(t, []uint64{5, 4000}, costs)
	k, ok := boards[0].At(gridgraph.Point{X: 3, Y: 4})
	require.True(t, ok)
	assert.Equal(t, amphipod.Amber, k)
	k, ok = boards[1].At(gridgraph.Point{X: 9, Y: 3})
	require.True(t, ok)
	assert.Equal(t, amphipod.Desert, k)
}

func TestMoves_Blocked(t *testing.T) {
	// Each hallway amphipod stands in the other's way home.
	b := board(t, `#############
#...D.A.....#
###.#B#C#.###
  #########
`)
	_, costs := moves(b)
	assert.Empty(t, costs)

	_, costs = moves(board(t, sorted))
	assert.Empty(t, costs)
}

// TestMoves_Invariants walks three plies from the unfolded example and checks
// every generated board.
func TestMoves_Invariants(t *testing.T) {
	start := board(t, exampleUnfolded)
	want := kinds(start)

	level := []amphipod.Board{start}
	for ply := 0; ply < 3; ply++ {
		var next []amphipod.Board
		for _, b := range level {
			for child, cost := range b.Moves() {
				require.Positive(t, cost)
				require.NotEqual(t, b, child)
				require.Equal(t, want, kinds(child))
				for r := 0; r < amphipod.Rooms; r++ {
					_, taken := child.At(gridgraph.Point{X: 3 + 2*r, Y: amphipod.HallwayY})
					require.False(t, taken, "stopped above room %d:\n%v", r, child)
				}
				_, err := amphipod.NewBoard(child.Layout())
				require.NoError(t, err, "%v", child)
				next = append(next, child)
			}
		}
		level = next
	}
	assert.NotEmpty(t, level)
}

func kinds(b amphipod.Board) map[amphipod.Kind]int {
	out := map[amphipod.Kind]int{}
	for _, a := range b.Amphipods() {
		out[a.Kind]++
	}

	return out
}
