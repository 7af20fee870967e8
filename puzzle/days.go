package puzzle

import (
	"context"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/advent/amphipod"
	"github.com/katalvlaran/advent/config"
	"github.com/katalvlaran/advent/dirac"
	"github.com/katalvlaran/advent/gridgraph"
	"github.com/katalvlaran/advent/heightmap"
	"github.com/katalvlaran/advent/search"
)

// NewDefault returns a Registry holding every search-backed puzzle:
//
//	2021/15 Chiton
//	2021/21 Dirac Dice
//	2021/23 Amphipod
//	2022/12 Hill Climbing Algorithm
func NewDefault(cfg config.Config, log logrus.FieldLogger) *Registry {
	d := days{cfg: cfg, log: log}
	r := NewRegistry()
	for _, s := range []Solver{
		Func{ID{2021, 15}, "Chiton", [2]PartFunc{d.chiton(1, 1), d.chiton(2, cfg.Chiton.TileFactor)}},
		Func{ID{2021, 21}, "Dirac Dice", [2]PartFunc{d.practice, d.quantum}},
		Func{ID{2021, 23}, "Amphipod", [2]PartFunc{d.amphipod(1), d.amphipod(2)}},
		Func{ID{2022, 12}, "Hill Climbing Algorithm", [2]PartFunc{d.climb(1), d.climb(2)}},
	} {
		r.MustRegister(s)
	}

	return r
}

// days carries the shared settings into each part.
type days struct {
	cfg config.Config
	log logrus.FieldLogger
}

func (d days) options(ctx context.Context, id ID, part int) []search.Option {
	opts := []search.Option{
		search.WithContext(ctx),
		search.WithMaxSteps(d.cfg.MaxSteps),
	}
	if d.log != nil {
		opts = append(opts, search.WithLogger(d.log.WithFields(logrus.Fields{
			"puzzle": id.String(),
			"part":   part,
		})))
	}

	return opts
}

// answer formats a search result; an unreached goal is ErrNoSolution.
func answer(v uint64, found bool, err error) (string, error) {
	if err != nil {
		return "", err
	}
	if !found {
		return "", ErrNoSolution
	}

	return strconv.FormatUint(v, 10), nil
}

// chiton tiles the cave factor times before searching it.
func (d days) chiton(part, factor int) PartFunc {
	return func(ctx context.Context, input string) (string, error) {
		g, err := gridgraph.ParseDigits(input)
		if err != nil {
			return "", err
		}
		if g, err = g.Tile(factor); err != nil {
			return "", err
		}

		return answer(gridgraph.LowestRisk(g, d.options(ctx, ID{2021, 15}, part)...))
	}
}

func (d days) practice(ctx context.Context, input string) (string, error) {
	start, err := dirac.ParseStart(input)
	if err != nil {
		return "", err
	}
	v, err := dirac.PlayPractice(start, d.cfg.Dirac.PracticeScore, d.cfg.Dirac.PracticeDieSides, d.options(ctx, ID{2021, 21}, 1)...)
	if err != nil {
		return "", err
	}

	return strconv.FormatUint(v, 10), nil
}

func (d days) quantum(ctx context.Context, input string) (string, error) {
	start, err := dirac.ParseStart(input)
	if err != nil {
		return "", err
	}
	wins, err := dirac.CountOutcomes(start, d.cfg.Dirac.WinningScore, d.options(ctx, ID{2021, 21}, 2)...)
	if err != nil {
		return "", err
	}

	return strconv.FormatUint(max(wins[0], wins[1]), 10), nil
}

// amphipod unfolds the burrow for part 2.
func (d days) amphipod(part int) PartFunc {
	return func(ctx context.Context, input string) (string, error) {
		l, err := amphipod.Parse(input)
		if err != nil {
			return "", err
		}
		if part == 2 {
			l = amphipod.Unfold(l)
		}

		return answer(amphipod.Solve(l, d.options(ctx, ID{2021, 23}, part)...))
	}
}

// climb starts from S in part 1 and from every lowest cell in part 2.
func (d days) climb(part int) PartFunc {
	return func(ctx context.Context, input string) (string, error) {
		m, err := heightmap.Parse(input)
		if err != nil {
			return "", err
		}
		opts := d.options(ctx, ID{2022, 12}, part)
		if part == 2 {
			return answer(m.FewestStepsFromLowest(opts...))
		}

		return answer(m.FewestSteps(opts...))
	}
}
