package amphipod

import (
	"iter"

	"github.com/katalvlaran/advent/search"
)

// burrow adapts Board to search.Space.
type burrow struct{}

func (burrow) Key(b Board) Board { return b }

func (burrow) IsGoal(b Board) bool { return b.Solved() }

func (burrow) Successors(b Board) iter.Seq2[Board, uint64] { return b.Moves() }

// Solve returns the least energy that sorts l. found is false when no
// sequence of legal moves sorts it. Invalid layouts fail with
// search.ErrConfiguration before the search starts.
func Solve(l Layout, opts ...search.Option) (energy uint64, found bool, err error) {
	res, err := plan(l, opts)
	if err != nil {
		return 0, false, err
	}

	return res.Cost, res.Found, nil
}

// Plan is Solve that also returns every board from l to the sorted burrow.
func Plan(l Layout, opts ...search.Option) ([]Board, uint64, error) {
	res, err := plan(l, append(opts[:len(opts):len(opts)], search.WithReturnPath()))
	if err != nil {
		return nil, 0, err
	}

	return res.Path, res.Cost, nil
}

func plan(l Layout, opts []search.Option) (search.Result[Board, uint64], error) {
	b, err := NewBoard(l)
	if err != nil {
		return search.Result[Board, uint64]{}, err
	}

	return search.ShortestPath[Board, Board, uint64](burrow{}, []Board{b}, opts...)
}
