package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by the search engine.
var (
	// ErrConfiguration indicates a structurally valid but unusable search setup,
	// such as a nil space or an empty start set. Adapters wrap it for invalid
	// start states (out-of-grid coordinates, overfull rooms, ...).
	ErrConfiguration = errors.New("search: invalid configuration")

	// ErrNegativeCost indicates that a successor carried a negative cost.
	// Dijkstra's first-goal-pop guarantee only holds for non-negative costs.
	ErrNegativeCost = errors.New("search: negative transition cost")

	// ErrOverflow indicates that an accumulated cost or multiplicity overflowed.
	ErrOverflow = errors.New("search: accumulator overflow")

	// ErrStepLimit indicates that the configured step guard was exceeded.
	ErrStepLimit = errors.New("search: step limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// DefaultMaxSteps bounds the number of popped states when no explicit
// WithMaxSteps option is given.
const DefaultMaxSteps = 50_000_000

// progressInterval is the number of pops between context checks and
// progress callbacks.
const progressInterval = 1024

// Cost is the accumulated path cost type. Unsigned widths are preferred;
// signed widths are accepted but negative transitions are rejected.
type Cost interface {
	constraints.Integer
}

// Space describes an implicit weighted graph for ShortestPath.
//
// Key must return a canonical identity ignoring accumulated cost. Successors
// yields each next state together with the cost of the transition into it;
// the sequence must be finite and safe to iterate more than once.
type Space[S any, K comparable, C Cost] interface {
	Key(s S) K
	Successors(s S) iter.Seq2[S, C]
	IsGoal(s S) bool
}

// Graph describes an implicit unweighted graph for BreadthFirst. Neighbors
// must be finite and safe to iterate more than once.
type Graph[S any, K comparable] interface {
	Key(s S) K
	Neighbors(s S) iter.Seq[S]
	IsGoal(s S) bool
}

// Branching describes a state space for Enumerate.
//
// Branches yields each child with the number of identical universes it stands
// for (for example, the frequency of a dice sum). Outcome classifies terminal
// states; a terminal child is counted and never expanded.
type Branching[S any, K comparable, O comparable] interface {
	Key(s S) K
	Branches(s S) iter.Seq2[S, uint64]
	Outcome(s S) (O, bool)
}

// Stats reports frontier activity for a single call.
type Stats struct {
	Popped int // states removed from the frontier
	Pushed int // states added to the frontier
	Stale  int // popped entries skipped because a better cost was recorded
	Merged int // pushes folded into an already pending state (Enumerate only)
}

// Result holds the outcome of ShortestPath.
//
// Found is false when the frontier emptied without reaching a goal; Cost and
// Goal are then zero values. Path is only populated with WithReturnPath and
// runs from a start state to Goal inclusive.
type Result[S any, C Cost] struct {
	Cost  C
	Goal  S
	Found bool
	Path  []S
	Stats Stats
}

// Outcomes maps each terminal classification to its total multiplicity.
type Outcomes[O comparable] map[O]uint64

// Options configures a search call.
type Options struct {
	// Ctx allows cancellation; it is polled every progressInterval pops.
	Ctx context.Context

	// Logger receives a debug summary when the call finishes.
	Logger logrus.FieldLogger

	// MaxSteps bounds the number of popped states; 0 disables the guard.
	MaxSteps int

	// MaxDepth, if > 0, stops BreadthFirst from enqueuing states deeper than
	// this many steps. Ignored by the weighted searches.
	MaxDepth int

	// ReturnPath keeps predecessor links so Result.Path can be rebuilt.
	ReturnPath bool

	// Progress, if set, is called every progressInterval pops.
	Progress func(popped int)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

var quietLogger = newQuietLogger()

func newQuietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// DefaultOptions returns Options with a background context, a discarding
// logger, DefaultMaxSteps and no path reconstruction.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Logger:   quietLogger,
		MaxSteps: DefaultMaxSteps,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes the completion summary to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxSteps sets the step guard.
//
//	n > 0: fail with ErrStepLimit after n pops
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithMaxDepth bounds BreadthFirst exploration depth.
//
//	n > 0: no state deeper than n is enqueued
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxDepth(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxDepth = n
	}
}

// WithReturnPath enables predecessor tracking and Result.Path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithProgress registers a callback invoked every 1024 pops.
func WithProgress(fn func(popped int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.Progress = fn
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return cfg, cfg.err
	}

	return cfg, cfg.Ctx.Err()
}

// Steps applies the step guard, cancellation and progress options to a
// hand-written loop. Each Step counts as one pop.
type Steps struct {
	opts  Options
	stats Stats
}

// NewSteps builds a guard from opts; invalid options fail as in ShortestPath.
func NewSteps(opts ...Option) (*Steps, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return &Steps{opts: cfg}, nil
}

// Step accounts for one iteration. It fails with ErrStepLimit past
// MaxSteps or with the context error once cancelled.
func (s *Steps) Step() error { return s.opts.tick(&s.stats) }

// Count is the number of Step calls so far.
func (s *Steps) Count() int { return s.stats.Popped }

// tick accounts for one pop and enforces the step guard, cancellation and
// progress reporting.
func (o *Options) tick(st *Stats) error {
	st.Popped++
	if o.MaxSteps > 0 && st.Popped > o.MaxSteps {
		return fmt.Errorf("%w: popped %d states (limit %d)", ErrStepLimit, st.Popped, o.MaxSteps)
	}
	if st.Popped%progressInterval != 0 {
		return nil
	}
	if err := o.Ctx.Err(); err != nil {
		return err
	}
	if o.Progress != nil {
		o.Progress(st.Popped)
	}

	return nil
}
