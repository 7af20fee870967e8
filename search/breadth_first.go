package search

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// BreadthFirst finds the fewest steps from any state in starts to a goal of
// an unweighted graph. Result.Cost is the step count.
//
// Behavior:
//  1. Options and inputs are validated as in ShortestPath, with the same
//     nil-interface limit.
//  2. Starts are enqueued at depth 0, duplicates by key once.
//  3. States are dequeued first-in first-out; a dequeued goal is returned.
//  4. Each neighbour seen for the first time is enqueued one level deeper,
//     unless that exceeds MaxDepth.
//  5. An exhausted queue yields Found=false and a nil error.
//
// Complexity: O(V + E) time and memory.
func BreadthFirst[S any, K comparable](g Graph[S, K], starts []S, opts ...Option) (Result[S, int], error) {
	var res Result[S, int]

	cfg, err := buildOptions(opts)
	if err != nil {
		return res, err
	}
	if g == nil {
		return res, fmt.Errorf("%w: nil graph", ErrConfiguration)
	}
	if len(starts) == 0 {
		return res, fmt.Errorf("%w: no start states", ErrConfiguration)
	}

	w := &walker[S, K]{
		graph: g,
		opts:  cfg,
		seen:  make(map[K]struct{}, len(starts)),
	}
	if cfg.ReturnPath {
		w.prev = make(map[K]S)
	}
	for _, s := range starts {
		if _, dup := w.seen[g.Key(s)]; !dup {
			w.enqueue(s, 0)
		}
	}

	res, err = w.loop()
	res.Stats = w.stats
	w.report(res, err)

	return res, err
}

// queued pairs a state with its distance from the nearest start.
type queued[S any] struct {
	state S
	depth int
}

// walker holds the mutable state for a single BreadthFirst execution.
type walker[S any, K comparable] struct {
	graph Graph[S, K]
	opts  Options
	queue []queued[S]
	seen  map[K]struct{}
	prev  map[K]S // nil unless ReturnPath
	stats Stats
}

func (w *walker[S, K]) enqueue(s S, depth int) {
	w.seen[w.graph.Key(s)] = struct{}{}
	w.queue = append(w.queue, queued[S]{state: s, depth: depth})
	w.stats.Pushed++
}

func (w *walker[S, K]) dequeue() queued[S] {
	item := w.queue[0]
	var zero queued[S]
	w.queue[0] = zero
	w.queue = w.queue[1:]

	return item
}

// loop processes the queue until a goal, exhaustion, or an error.
func (w *walker[S, K]) loop() (Result[S, int], error) {
	var res Result[S, int]
	for len(w.queue) > 0 {
		if err := w.opts.tick(&w.stats); err != nil {
			return res, err
		}

		item := w.dequeue()
		if w.graph.IsGoal(item.state) {
			res.Cost = item.depth
			res.Goal = item.state
			res.Found = true
			if w.prev != nil {
				res.Path = w.path(item.state)
			}

			return res, nil
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for nbr := range w.graph.Neighbors(item.state) {
			k := w.graph.Key(nbr)
			if _, ok := w.seen[k]; ok {
				continue
			}
			if w.prev != nil {
				w.prev[k] = item.state
			}
			w.enqueue(nbr, next)
		}
	}

	return res, nil
}

// path follows parent links back to a start.
func (w *walker[S, K]) path(goal S) []S {
	var rev []S
	for cur, ok := goal, true; ok; cur, ok = w.prev[w.graph.Key(cur)] {
		rev = append(rev, cur)
	}
	out := make([]S, len(rev))
	for i, s := range rev {
		out[len(rev)-1-i] = s
	}

	return out
}

func (w *walker[S, K]) report(res Result[S, int], err error) {
	entry := w.opts.Logger.WithFields(logrus.Fields{
		"popped": w.stats.Popped,
		"pushed": w.stats.Pushed,
		"seen":   len(w.seen),
		"found":  res.Found,
	})
	if err != nil {
		entry.WithError(err).Debug("search: breadth-first aborted")
		return
	}
	entry.Debug("search: breadth-first finished")
}
