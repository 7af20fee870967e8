// Package puzzle dispatches a (year, day, part) triple to the solver that
// owns it.
//
// A Solver turns raw puzzle input into an answer string. Registry keeps the
// solvers by ID; NewDefault wires the search-backed puzzles with the runner
// configuration and logger.
package puzzle

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/exp/maps"
)

// Dispatch errors.
var (
	// ErrDuplicate indicates a second solver registered under the same ID.
	ErrDuplicate = errors.New("puzzle: duplicate solver")
	// ErrUnknownPuzzle indicates a lookup for an unregistered ID.
	ErrUnknownPuzzle = errors.New("puzzle: unknown puzzle")
	// ErrBadPart indicates a part other than 1 or 2.
	ErrBadPart = errors.New("puzzle: part must be 1 or 2")
	// ErrNoSolution indicates the search finished without reaching a goal.
	ErrNoSolution = errors.New("puzzle: no solution")
)

// ID names a puzzle by event year and day.
type ID struct {
	Year int
	Day  int
}

func (id ID) String() string { return fmt.Sprintf("%d/%02d", id.Year, id.Day) }

// Less orders IDs by year, then day.
func (id ID) Less(o ID) bool {
	if id.Year != o.Year {
		return id.Year < o.Year
	}

	return id.Day < o.Day
}

// Solver answers both parts of one puzzle.
type Solver interface {
	ID() ID
	Title() string
	// Solve answers part 1 or 2 for input. Other parts fail with ErrBadPart.
	Solve(ctx context.Context, part int, input string) (string, error)
}

// Registry maps IDs to solvers. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	solvers map[ID]Solver
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{solvers: make(map[ID]Solver)}
}

// Register adds s, failing with ErrDuplicate when its ID is taken.
func (r *Registry) Register(s Solver) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := s.ID()
	if _, ok := r.solvers[id]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicate, id)
	}
	r.solvers[id] = s

	return nil
}

// MustRegister is Register that panics on error. It is meant for wiring
// fixed solver sets at startup.
func (r *Registry) MustRegister(s Solver) {
	if err := r.Register(s); err != nil {
		panic(err)
	}
}

// Lookup returns the solver for id or ErrUnknownPuzzle.
func (r *Registry) Lookup(id ID) (Solver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.solvers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownPuzzle, id)
	}

	return s, nil
}

// IDs returns every registered ID in year/day order.
func (r *Registry) IDs() []ID {
	r.mu.RLock()
	ids := maps.Keys(r.solvers)
	r.mu.RUnlock()

	slices.SortFunc(ids, func(a, b ID) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}

		return 0
	})

	return ids
}

// Run looks up id and solves part.
func (r *Registry) Run(ctx context.Context, id ID, part int, input string) (string, error) {
	s, err := r.Lookup(id)
	if err != nil {
		return "", err
	}

	return s.Solve(ctx, part, input)
}

// PartFunc answers one part.
type PartFunc func(ctx context.Context, input string) (string, error)

// Func is a Solver built from two PartFuncs.
type Func struct {
	Puzzle ID
	Name   string
	Parts  [2]PartFunc
}

// ID implements Solver.
func (f Func) ID() ID { return f.Puzzle }

// Title implements Solver.
func (f Func) Title() string { return f.Name }

// Solve implements Solver.
func (f Func) Solve(ctx context.Context, part int, input string) (string, error) {
	if part < 1 || part > len(f.Parts) || f.Parts[part-1] == nil {
		return "", fmt.Errorf("%w: %v part %d", ErrBadPart, f.Puzzle, part)
	}

	return f.Parts[part-1](ctx, input)
}
