package search

import (
	"container/heap"
	"fmt"

	"github.com/sirupsen/logrus"
)

// ShortestPath finds the minimum accumulated cost from any state in starts to
// the first state for which space.IsGoal holds.
//
// Behavior:
//  1. Options are applied; an invalid option or a cancelled context fails first.
//  2. A nil space or an empty start set fails with ErrConfiguration before any
//     queue operation. Only a nil interface is detected: a typed nil pointer
//     wrapped in Space panics on its first method call.
//  3. Every start is seeded at cost 0 (duplicate keys collapse to one entry).
//  4. The lowest-cost entry is popped; if its cost exceeds the recorded best
//     for its key it is stale and skipped.
//  5. A popped goal is returned immediately; with non-negative costs the first
//     goal popped is optimal.
//  6. Otherwise each successor whose tentative cost strictly improves its key's
//     best is recorded and pushed.
//  7. An empty frontier yields Found=false and a nil error.
//
// Complexity: O((V + E) log E) time, O(V + E) memory.
func ShortestPath[S any, K comparable, C Cost](space Space[S, K, C], starts []S, opts ...Option) (Result[S, C], error) {
	var res Result[S, C]

	cfg, err := buildOptions(opts)
	if err != nil {
		return res, err
	}
	if space == nil {
		return res, fmt.Errorf("%w: nil state space", ErrConfiguration)
	}
	if len(starts) == 0 {
		return res, fmt.Errorf("%w: no start states", ErrConfiguration)
	}

	r := &runner[S, K, C]{
		space: space,
		opts:  cfg,
		best:  make(map[K]C, len(starts)),
		pq:    make(frontier[S, C], 0, len(starts)),
	}
	if cfg.ReturnPath {
		r.prev = make(map[K]S)
	}

	r.init(starts)
	res, err = r.process()
	res.Stats = r.stats
	r.report(res, err)

	return res, err
}

// runner holds the mutable state for a single ShortestPath execution.
type runner[S any, K comparable, C Cost] struct {
	space Space[S, K, C]
	opts  Options
	best  map[K]C // key → best known accumulated cost
	prev  map[K]S // key → predecessor state, nil unless ReturnPath
	pq    frontier[S, C]
	seq   uint64 // push counter, breaks cost ties
	stats Stats
}

// init seeds every start state at cost 0.
func (r *runner[S, K, C]) init(starts []S) {
	heap.Init(&r.pq)
	for _, s := range starts {
		k := r.space.Key(s)
		if _, seen := r.best[k]; seen {
			continue
		}
		r.best[k] = 0
		r.push(s, 0)
	}
}

func (r *runner[S, K, C]) push(s S, cost C) {
	heap.Push(&r.pq, entry[S, C]{state: s, cost: cost, seq: r.seq})
	r.seq++
	r.stats.Pushed++
}

// process is the main loop: pop, skip stale, test goal, relax successors.
func (r *runner[S, K, C]) process() (Result[S, C], error) {
	var res Result[S, C]
	for r.pq.Len() > 0 {
		if err := r.opts.tick(&r.stats); err != nil {
			return res, err
		}

		item := heap.Pop(&r.pq).(entry[S, C])
		if item.cost > r.best[r.space.Key(item.state)] {
			r.stats.Stale++
			continue
		}

		if r.space.IsGoal(item.state) {
			res.Cost = item.cost
			res.Goal = item.state
			res.Found = true
			if r.prev != nil {
				res.Path = r.path(item.state)
			}

			return res, nil
		}

		if err := r.relax(item); err != nil {
			return res, err
		}
	}

	return res, nil
}

// relax pushes every successor of item that improves on its recorded best.
func (r *runner[S, K, C]) relax(item entry[S, C]) error {
	for next, step := range r.space.Successors(item.state) {
		if step < 0 {
			return fmt.Errorf("%w: step cost %d", ErrNegativeCost, step)
		}
		total := item.cost + step
		if total < item.cost {
			return fmt.Errorf("%w: %d + %d", ErrOverflow, item.cost, step)
		}

		k := r.space.Key(next)
		if known, ok := r.best[k]; ok && total >= known {
			continue
		}
		r.best[k] = total
		if r.prev != nil {
			r.prev[k] = item.state
		}
		r.push(next, total)
	}

	return nil
}

// path rebuilds the start → goal sequence from predecessor links.
func (r *runner[S, K, C]) path(goal S) []S {
	rev := []S{goal}
	for cur := goal; ; {
		p, ok := r.prev[r.space.Key(cur)]
		if !ok {
			break
		}
		rev = append(rev, p)
		cur = p
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

func (r *runner[S, K, C]) report(res Result[S, C], err error) {
	fields := logrus.Fields{
		"popped": r.stats.Popped,
		"pushed": r.stats.Pushed,
		"stale":  r.stats.Stale,
		"keys":   len(r.best),
		"found":  res.Found,
	}
	if res.Found {
		fields["cost"] = res.Cost
	}
	if err != nil {
		r.opts.Logger.WithFields(fields).WithError(err).Debug("search: shortest path aborted")
		return
	}
	r.opts.Logger.WithFields(fields).Debug("search: shortest path finished")
}
