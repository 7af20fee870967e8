package search

// entry is a state waiting on the frontier with its accumulated cost.
type entry[S any, C Cost] struct {
	state S
	cost  C
	seq   uint64 // push order
}

// frontier is a min-heap of entries ordered by cost, then by push order.
// Outdated entries are left in place and skipped when popped (lazy decrease-key).
type frontier[S any, C Cost] []entry[S, C]

// Len returns the number of entries in the heap.
func (pq frontier[S, C]) Len() int { return len(pq) }

// Less orders by cost ascending; equal costs pop first-in first-out.
func (pq frontier[S, C]) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two entries.
func (pq frontier[S, C]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by heap.Push.
func (pq *frontier[S, C]) Push(x any) { *pq = append(*pq, x.(entry[S, C])) }

// Pop removes the last entry; called by heap.Pop.
func (pq *frontier[S, C]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	var zero entry[S, C]
	old[n-1] = zero
	*pq = old[:n-1]

	return item
}
