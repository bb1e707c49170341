package sat

import "github.com/rhartert/yagh"

// elimHeap is a min-heap over candidate variables for bounded variable
// elimination, ordered by the cost function of section 4.9: the product of
// positive and negative occurrence counts (cheap variables, those with at
// most one occurrence of either polarity, sort first since eliminating them
// can only shrink the formula). Like varHeap, stale entries (variables that
// stopped being eligible since they were queued) are discarded lazily by
// popCheapest rather than actively removed.
type elimHeap struct {
	order *yagh.IntMap[int]
	cost  []int
}

func newElimHeap() *elimHeap {
	return &elimHeap{order: yagh.New[int](0)}
}

func elimCost(posOcc, negOcc int) int {
	if posOcc <= 1 || negOcc <= 1 {
		return 0 // cheap: resolving it away cannot grow the formula
	}
	return posOcc * negOcc
}

// grow appends n fresh zero-cost slots (one per newly declared variable).
func (h *elimHeap) grow(n int) {
	for i := 0; i < n; i++ {
		h.cost = append(h.cost, 0)
		h.order.GrowBy(1)
	}
}

func (h *elimHeap) add(v Var, posOcc, negOcc int) {
	h.cost[v] = elimCost(posOcc, negOcc)
	h.order.Put(int(v), h.cost[v])
}

func (h *elimHeap) update(v Var, posOcc, negOcc int) {
	h.cost[v] = elimCost(posOcc, negOcc)
	if h.order.Contains(int(v)) {
		h.order.Put(int(v), h.cost[v])
	}
}

// popCheapest pops candidates until it finds one accepted by isCandidate,
// discarding stale entries along the way.
func (h *elimHeap) popCheapest(isCandidate func(Var) bool) (Var, int, bool) {
	for {
		e, ok := h.order.Pop()
		if !ok {
			return 0, 0, false
		}
		v := Var(e.Elem)
		if isCandidate(v) {
			return v, h.cost[v], true
		}
	}
}
