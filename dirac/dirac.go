package dirac

import (
	"errors"
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/search"
)

// Track and game constants.
const (
	// TrackSize is the number of spaces on the circular track.
	TrackSize = 10
	// DiracWinningScore is the threshold of the quantum game.
	DiracWinningScore uint32 = 21
	// PracticeWinningScore is the threshold of the warm-up game.
	PracticeWinningScore uint32 = 1000
	// PracticeDieSides is the size of the deterministic warm-up die.
	PracticeDieSides = 100
	// RollsPerTurn is how many times the die is rolled each turn.
	RollsPerTurn = 3
	// MaxWinningScore keeps every reachable score inside uint32.
	MaxWinningScore uint32 = math.MaxUint32 - TrackSize
)

// ErrBadStart indicates a malformed "Player N starting position: P" line.
var ErrBadStart = errors.New("dirac: invalid starting position")

// Roll is one distinct three-roll sum and the number of combinations giving it.
type Roll struct {
	Sum  uint8
	Freq uint64
}

// RollFrequencies lists the seven sums of three three-sided dice. The
// frequencies add up to 27.
var RollFrequencies = [...]Roll{
	{3, 1}, {4, 3}, {5, 6}, {6, 7}, {7, 6}, {8, 3}, {9, 1},
}

// Universe is one game configuration. It is its own canonical key:
// multiplicity lives in the search frontier, not in the state.
type Universe struct {
	Pos   [2]uint8
	Score [2]uint32
	Turn  uint8 // player to move next
}

// Advance moves the player on turn by roll, adds the landing space
// (position + 1) to their score and passes the turn.
func (u Universe) Advance(roll uint8) Universe {
	p := u.Turn
	u.Pos[p] = (u.Pos[p] + roll) % TrackSize
	u.Score[p] += uint32(u.Pos[p]) + 1
	u.Turn = 1 - p

	return u
}

// Game is the quantum game as a search.Branching space.
type Game struct {
	WinningScore uint32
}

// Key implements search.Branching.
func (Game) Key(u Universe) Universe { return u }

// Branches implements search.Branching: one child per distinct roll sum,
// weighted by its frequency.
func (Game) Branches(u Universe) iter.Seq2[Universe, uint64] {
	return func(yield func(Universe, uint64) bool) {
		for _, r := range RollFrequencies {
			if !yield(u.Advance(r.Sum), r.Freq) {
				return
			}
		}
	}
}

// Outcome implements search.Branching: a universe is decided once either
// score reaches WinningScore, and the outcome is the winner's index.
func (g Game) Outcome(u Universe) (uint8, bool) {
	for p, s := range u.Score {
		if s >= g.WinningScore {
			return uint8(p), true
		}
	}

	return 0, false
}

// CountOutcomes returns the number of universes won by each player when the
// quantum game starts from the 0-indexed positions start with player 0 to
// move.
func CountOutcomes(start [2]uint8, winningScore uint32, opts ...search.Option) ([2]uint64, error) {
	var wins [2]uint64
	if err := validate(start, winningScore); err != nil {
		return wins, err
	}

	out, err := search.Enumerate[Universe, Universe, uint8](Game{WinningScore: winningScore}, Universe{Pos: start}, opts...)
	if err != nil {
		return wins, err
	}
	wins[0], wins[1] = out[0], out[1]

	return wins, nil
}

// PlayPractice plays the deterministic game: the die yields 1, 2, …,
// dieSides and wraps around. It returns the losing score multiplied by the
// total number of rolls. Every turn counts against WithMaxSteps.
func PlayPractice(start [2]uint8, winningScore uint32, dieSides int, opts ...search.Option) (uint64, error) {
	if err := validate(start, winningScore); err != nil {
		return 0, err
	}
	if dieSides <= 0 {
		return 0, fmt.Errorf("%w: die needs at least one side, got %d", search.ErrConfiguration, dieSides)
	}
	guard, err := search.NewSteps(opts...)
	if err != nil {
		return 0, err
	}

	u := Universe{Pos: start}
	var rolls uint64
	for {
		if err := guard.Step(); err != nil {
			return 0, err
		}
		var sum int
		for i := 0; i < RollsPerTurn; i++ {
			sum += int(rolls%uint64(dieSides)) + 1
			rolls++
		}
		u = u.Advance(uint8(sum % TrackSize))
		if winner, done := (Game{WinningScore: winningScore}).Outcome(u); done {
			return uint64(u.Score[1-winner]) * rolls, nil
		}
	}
}

// ParseStart reads the two "Player N starting position: P" lines and returns
// 0-indexed positions.
func ParseStart(text string) ([2]uint8, error) {
	var start [2]uint8
	var seen [2]bool
	for i, line := range input.Lines(text) {
		if line == "" {
			continue
		}
		nums := input.Ints(line)
		if len(nums) != 2 {
			return start, input.Errorf(i+1, 0, line, ErrBadStart, "want player and position")
		}
		player, pos := nums[0], nums[1]
		if player < 1 || player > 2 || seen[player-1] {
			return start, input.Errorf(i+1, 0, line, ErrBadStart, "unexpected player %d", player)
		}
		if pos < 1 || pos > TrackSize {
			return start, input.Errorf(i+1, 0, line, ErrBadStart, "position %d outside 1..%d", pos, TrackSize)
		}
		start[player-1] = uint8(pos - 1)
		seen[player-1] = true
	}
	if !seen[0] || !seen[1] {
		return start, fmt.Errorf("%w: %w: need both players", input.ErrParse, ErrBadStart)
	}

	return start, nil
}

func validate(start [2]uint8, winningScore uint32) error {
	for p, pos := range start {
		if pos >= TrackSize {
			return fmt.Errorf("%w: player %d position %d outside 0..%d", search.ErrConfiguration, p+1, pos, TrackSize-1)
		}
	}
	if winningScore == 0 || winningScore > MaxWinningScore {
		return fmt.Errorf("%w: winning score %d outside 1..%d", search.ErrConfiguration, winningScore, MaxWinningScore)
	}

	return nil
}
