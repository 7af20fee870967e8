package search

import (
	"fmt"
	"math/bits"

	"github.com/sirupsen/logrus"
)

// Enumerate explores every branch reachable from start and returns the total
// multiplicity of each terminal outcome.
//
// Behavior:
//  1. start carries multiplicity 1; if it is already terminal it is the only
//     outcome.
//  2. States are popped last-in first-out. Order affects memory only.
//  3. Each child's multiplicity is its parent's multiplicity times the branch
//     factor. A zero factor fails with ErrConfiguration.
//  4. Terminal children add their multiplicity to the outcome map.
//  5. Non-terminal children whose key is already pending are merged by summing
//     multiplicities; otherwise they are pushed.
//
// No best-cost pruning applies: every universe is counted exactly once.
//
// A nil space fails with ErrConfiguration; as in ShortestPath, a typed nil
// pointer inside the interface is not detected.
func Enumerate[S any, K comparable, O comparable](space Branching[S, K, O], start S, opts ...Option) (Outcomes[O], error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if space == nil {
		return nil, fmt.Errorf("%w: nil branching space", ErrConfiguration)
	}

	out := make(Outcomes[O])
	if o, ok := space.Outcome(start); ok {
		out[o] = 1
		return out, nil
	}

	k := space.Key(start)
	e := &enumerator[S, K, O]{
		space:   space,
		opts:    cfg,
		out:     out,
		stack:   []pendingState[S, K]{{state: start, key: k, mult: 1}},
		pending: map[K]int{k: 0},
		stats:   Stats{Pushed: 1},
	}
	err = e.process()
	e.report(err)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// pendingState is a frontier slot; its multiplicity grows while merges land.
type pendingState[S any, K comparable] struct {
	state S
	key   K
	mult  uint64
}

// enumerator holds the mutable state for a single Enumerate execution.
type enumerator[S any, K comparable, O comparable] struct {
	space   Branching[S, K, O]
	opts    Options
	out     Outcomes[O]
	stack   []pendingState[S, K]
	pending map[K]int // key → index into stack
	stats   Stats
}

// push adds mult universes of s, merging with a pending slot of the same key.
func (e *enumerator[S, K, O]) push(s S, mult uint64) error {
	k := e.space.Key(s)
	if i, ok := e.pending[k]; ok {
		sum, carry := bits.Add64(e.stack[i].mult, mult, 0)
		if carry != 0 {
			return fmt.Errorf("%w: merging multiplicity %d into %d", ErrOverflow, mult, e.stack[i].mult)
		}
		e.stack[i].mult = sum
		e.stats.Merged++

		return nil
	}
	e.pending[k] = len(e.stack)
	e.stack = append(e.stack, pendingState[S, K]{state: s, key: k, mult: mult})
	e.stats.Pushed++

	return nil
}

func (e *enumerator[S, K, O]) pop() pendingState[S, K] {
	n := len(e.stack) - 1
	top := e.stack[n]
	e.stack = e.stack[:n]
	delete(e.pending, top.key)

	return top
}

func (e *enumerator[S, K, O]) process() error {
	for len(e.stack) > 0 {
		if err := e.opts.tick(&e.stats); err != nil {
			return err
		}
		cur := e.pop()
		for child, factor := range e.space.Branches(cur.state) {
			if factor == 0 {
				return fmt.Errorf("%w: zero branch multiplicity", ErrConfiguration)
			}
			hi, mult := bits.Mul64(cur.mult, factor)
			if hi != 0 {
				return fmt.Errorf("%w: %d × %d", ErrOverflow, cur.mult, factor)
			}
			if o, ok := e.space.Outcome(child); ok {
				sum, carry := bits.Add64(e.out[o], mult, 0)
				if carry != 0 {
					return fmt.Errorf("%w: outcome %v", ErrOverflow, o)
				}
				e.out[o] = sum
				continue
			}
			if err := e.push(child, mult); err != nil {
				return err
			}
		}
	}

	return nil
}

func (e *enumerator[S, K, O]) report(err error) {
	entry := e.opts.Logger.WithFields(logrus.Fields{
		"popped":   e.stats.Popped,
		"pushed":   e.stats.Pushed,
		"merged":   e.stats.Merged,
		"outcomes": len(e.out),
	})
	if err != nil {
		entry.WithError(err).Debug("search: enumeration aborted")
		return
	}
	entry.Debug("search: enumeration finished")
}
