package puzzle_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/advent/config"
	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/search"
)

const chitonExample = `1163751742
1381373672
2136511328
3694931569
7463417111
1319128137
1359912421
3125421639
1293138521
2311944581
`

const diracExample = `Player 1 starting position: 4
Player 2 starting position: 8
`

const amphipodExample = `#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########
`

const climbExample = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
`

func id(year, day int) puzzle.ID { return puzzle.ID{Year: year, Day: day} }

func echo(answer string) puzzle.PartFunc {
	return func(context.Context, string) (string, error) { return answer, nil }
}

func TestRegistry(t *testing.T) {
	r := puzzle.NewRegistry()
	require.NoError(t, r.Register(puzzle.Func{Puzzle: id(2022, 1), Name: "late"}))
	require.NoError(t, r.Register(puzzle.Func{
		Puzzle: id(2021, 9),
		Name:   "early",
		Parts:  [2]puzzle.PartFunc{echo("one"), echo("two")},
	}))
	require.NoError(t, r.Register(puzzle.Func{Puzzle: id(2021, 10)}))

	err := r.Register(puzzle.Func{Puzzle: id(2021, 9)})
	require.ErrorIs(t, err, puzzle.ErrDuplicate)
	require.PanicsWithError(t, "puzzle: duplicate solver: 2021/09", func() {
		r.MustRegister(puzzle.Func{Puzzle: id(2021, 9)})
	})

	assert.Equal(t, []puzzle.ID{id(2021, 9), id(2021, 10), id(2022, 1)}, r.IDs())

	s, err := r.Lookup(id(2021, 9))
	require.NoError(t, err)
	assert.Equal(t, "early", s.Title())

	got, err := r.Run(context.Background(), id(2021, 9), 2, "")
	require.NoError(t, err)
	assert.Equal(t, "two", got)

	_, err = r.Run(context.Background(), id(2021, 9), 3, "")
	require.ErrorIs(t, err, puzzle.ErrBadPart)

	_, err = r.Run(context.Background(), id(2022, 1), 1, "")
	require.ErrorIs(t, err, puzzle.ErrBadPart, "registered without parts")

	_, err = r.Lookup(id(1999, 1))
	require.ErrorIs(t, err, puzzle.ErrUnknownPuzzle)
}

func TestID_String(t *testing.T) {
	assert.Equal(t, "2021/05", id(2021, 5).String())
}

// DefaultSuite runs every registered puzzle on its published example.
type DefaultSuite struct {
	suite.Suite
	reg *puzzle.Registry
}

func (s *DefaultSuite) SetupTest() {
	log := logrus.New()
	log.SetOutput(io.Discard)
	s.reg = puzzle.NewDefault(config.Default(), log)
}

func (s *DefaultSuite) solve(id puzzle.ID, part int, text string) string {
	got, err := s.reg.Run(context.Background(), id, part, text)
	s.Require().NoError(err)

	return got
}

func (s *DefaultSuite) TestIDs() {
	s.Equal([]puzzle.ID{id(2021, 15), id(2021, 21), id(2021, 23), id(2022, 12)}, s.reg.IDs())
}

func (s *DefaultSuite) TestChiton() {
	s.Equal("40", s.solve(id(2021, 15), 1, chitonExample))
	s.Equal("315", s.solve(id(2021, 15), 2, chitonExample))
}

func (s *DefaultSuite) TestDirac() {
	s.Equal("739785", s.solve(id(2021, 21), 1, diracExample))
	s.Equal("444356092776315", s.solve(id(2021, 21), 2, diracExample))
}

func (s *DefaultSuite) TestAmphipod() {
	s.Equal("12521", s.solve(id(2021, 23), 1, amphipodExample))
	s.Equal("44169", s.solve(id(2021, 23), 2, amphipodExample))
}

func (s *DefaultSuite) TestClimb() {
	s.Equal("31", s.solve(id(2022, 12), 1, climbExample))
	s.Equal("29", s.solve(id(2022, 12), 2, climbExample))
}

func (s *DefaultSuite) TestParseErrors() {
	for _, p := range s.reg.IDs() {
		_, err := s.reg.Run(context.Background(), p, 1, "#?#\n")
		s.Require().Error(err, "%v", p)
		s.True(errors.Is(err, input.ErrParse) || errors.Is(err, search.ErrConfiguration), "%v: %v", p, err)
	}
}

func (s *DefaultSuite) TestNoSolution() {
	_, err := s.reg.Run(context.Background(), id(2022, 12), 1, "Sac\nccE\n")
	s.Require().ErrorIs(err, puzzle.ErrNoSolution)
}

func (s *DefaultSuite) TestCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.reg.Run(ctx, id(2021, 23), 1, amphipodExample)
	s.Require().ErrorIs(err, context.Canceled)
}

func TestDefaultSuite(t *testing.T) {
	suite.Run(t, new(DefaultSuite))
}

func TestNewDefault_StepLimit(t *testing.T) {
	cfg := config.Default()
	cfg.MaxSteps = 10
	reg := puzzle.NewDefault(cfg, nil)

	_, err := reg.Run(context.Background(), id(2021, 23), 1, amphipodExample)
	require.ErrorIs(t, err, search.ErrStepLimit)
}
