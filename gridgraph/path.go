package gridgraph

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/advent/search"
)

// riskSpace adapts a Grid to search.Space: states are cells, the transition
// cost is the weight of the cell being entered.
type riskSpace struct {
	g    *Grid
	goal Point
}

func (s riskSpace) Key(p Point) Point { return p }

func (s riskSpace) IsGoal(p Point) bool { return p == s.goal }

func (s riskSpace) Successors(p Point) iter.Seq2[Point, uint64] {
	return func(yield func(Point, uint64) bool) {
		for n := range s.g.Neighbors(p) {
			if !yield(n, uint64(s.g.Weight(n))) {
				return
			}
		}
	}
}

// ShortestPath returns the minimum total entering cost from start to goal.
// found is false when goal cannot be reached. start and goal must lie in
// the grid, otherwise the error wraps search.ErrConfiguration.
//
// uint64 holds any realistic total: the worst case is 9 × W × H.
func ShortestPath(g *Grid, start, goal Point, opts ...search.Option) (cost uint64, found bool, err error) {
	res, err := route(g, start, goal, opts)
	if err != nil {
		return 0, false, err
	}

	return res.Cost, res.Found, nil
}

// Route is ShortestPath that also returns the visited cells, start first.
func Route(g *Grid, start, goal Point, opts ...search.Option) (path []Point, cost uint64, found bool, err error) {
	res, err := route(g, start, goal, append(opts[:len(opts):len(opts)], search.WithReturnPath()))
	if err != nil {
		return nil, 0, false, err
	}

	return res.Path, res.Cost, res.Found, nil
}

// LowestRisk returns the cheapest cost from the top-left to the bottom-right cell.
func LowestRisk(g *Grid, opts ...search.Option) (uint64, bool, error) {
	if g == nil {
		return 0, false, fmt.Errorf("%w: nil grid", search.ErrConfiguration)
	}

	return ShortestPath(g, Point{}, g.Corner(), opts...)
}

func route(g *Grid, start, goal Point, opts []search.Option) (search.Result[Point, uint64], error) {
	if g == nil {
		return search.Result[Point, uint64]{}, fmt.Errorf("%w: nil grid", search.ErrConfiguration)
	}
	for _, p := range [2]Point{start, goal} {
		if !g.InBounds(p) {
			return search.Result[Point, uint64]{}, fmt.Errorf("%w: cell %v outside %dx%d grid",
				search.ErrConfiguration, p, g.Width, g.Height)
		}
	}

	return search.ShortestPath[Point, Point, uint64](riskSpace{g: g, goal: goal}, []Point{start}, opts...)
}
