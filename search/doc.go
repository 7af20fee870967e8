// Package search provides a generic best-first search engine over implicit
// state spaces, plus a weighted enumeration variant that counts outcomes
// instead of minimizing cost.
//
// Overview:
//
//   - ShortestPath is Dijkstra's algorithm over a Space: states are produced on
//     demand by Space.Successors, deduplicated by their canonical Space.Key, and
//     ordered in a min-heap by accumulated cost.
//   - BreadthFirst is the unweighted special case over a Graph: a plain FIFO
//     queue and a seen set, with an optional WithMaxDepth cutoff.
//   - Enumerate walks a Branching space depth-first, multiplying each child's
//     multiplicity by its branch factor and collecting terminal states into an
//     Outcomes map. Children that reduce to the same key while still pending
//     are merged by summing their multiplicities.
//
// When to use:
//
//   - Grid path finding where the graph is too large or too regular to build
//     explicitly (tiled risk maps; height maps go through BreadthFirst).
//   - Puzzle solvers whose state is a whole board configuration and whose
//     transitions come from a legal-move generator.
//   - Counting games with many identical parallel universes.
//
// Key features:
//
//   - Lazy decrease-key: improved states are pushed again and stale heap entries
//     are skipped when popped.
//   - Deterministic order: equal-cost entries pop in push order.
//   - Multi-source: every start state begins at cost 0.
//   - Checked arithmetic: cost and multiplicity accumulation fail with
//     ErrOverflow instead of wrapping.
//   - Step guard: WithMaxSteps bounds the number of popped states so a
//     malformed input fails loudly instead of hanging.
//
// Complexity:
//
//   - ShortestPath: O((V + E) log E) time, O(V + E) memory, where V is the
//     number of distinct keys reached and E the number of generated successors.
//   - BreadthFirst: O(V + E) time and memory.
//   - Enumerate: O(E) map/stack operations; the frontier is bounded by the
//     number of distinct pending keys.
//
// Errors (sentinel):
//
//   - ErrConfiguration:   nil space or graph, empty start set, zero branch factor.
//     Only nil interface values are caught; a typed nil pointer panics on use.
//   - ErrNegativeCost:    a successor reported a negative incremental cost.
//   - ErrOverflow:        a cost or multiplicity no longer fits its type.
//   - ErrStepLimit:       more states were popped than WithMaxSteps allows.
//   - ErrOptionViolation: an Option received an invalid value.
//
// An unreachable goal is not an error: ShortestPath and BreadthFirst return
// Result.Found=false.
//
// Thread safety:
//
//   - Every call owns its frontier and best-cost map; concurrent calls on
//     different spaces are safe. A Space must not be mutated during a call.
package search
