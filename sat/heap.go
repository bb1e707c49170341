package sat

import "github.com/rhartert/yagh"

// rescaleThreshold bounds variable activities; once any
// activity would exceed it, all activities and the running increment are
// scaled down together so their relative order is preserved.
const rescaleThreshold = 1e100

// varHeap is a VSIDS-style max-heap over variables, backed by yagh's
// indexed min-heap with negated priorities (yagh pops the smallest
// priority first, so the variable with the highest activity is stored with
// the most negative priority). Variables are never proactively removed when
// they get assigned by propagation: Pop lazily discards stale (already
// assigned) entries as it encounters them, and the caller simply does not
// reinsert what it doesn't want to keep.
type varHeap struct {
	order *yagh.IntMap[float64]

	activity []float64
	inc      float64
	decay    float64
}

func newVarHeap(decay float64) *varHeap {
	return &varHeap{
		order: yagh.New[float64](0),
		inc:   1,
		decay: decay,
	}
}

// addVar registers a freshly created variable with zero activity.
func (h *varHeap) addVar(v Var) {
	h.activity = append(h.activity, 0)
	h.order.GrowBy(1)
	h.order.Put(int(v), 0)
}

// reinsert puts v back in the candidate set; called on backtrack.
func (h *varHeap) reinsert(v Var) {
	h.order.Put(int(v), -h.activity[v])
}

// bump increases v's activity, rescaling every variable's activity (and the
// increment) if the threshold would otherwise be exceeded. If v has already
// been popped out of the heap (it is currently assigned), its activity is
// still updated so that a future reinsert uses the up to date value, but it
// is not resurrected in the heap.
func (h *varHeap) bump(v Var) {
	h.activity[v] += h.inc
	if h.order.Contains(int(v)) {
		h.order.Put(int(v), -h.activity[v])
	}
	if h.activity[v] > rescaleThreshold {
		h.rescale()
	}
}

// decayInc scales the increment instead of every activity, which is
// equivalent to decaying every activity but far cheaper.
func (h *varHeap) decayInc() {
	h.inc /= h.decay
	if h.inc > rescaleThreshold {
		h.rescale()
	}
}

func (h *varHeap) rescale() {
	h.inc *= 1e-100
	for v, a := range h.activity {
		h.activity[v] = a * 1e-100
		if h.order.Contains(v) {
			h.order.Put(v, -h.activity[v])
		}
	}
}

// popDecision pops candidates until it finds one accepted by isCandidate,
// discarding (not reinserting) every stale entry it skips along the way.
// It returns false if the heap is exhausted without finding one.
func (h *varHeap) popDecision(isCandidate func(Var) bool) (Var, bool) {
	for {
		e, ok := h.order.Pop()
		if !ok {
			return 0, false
		}
		v := Var(e.Elem)
		if isCandidate(v) {
			return v, true
		}
	}
}

// peekActivity returns the activity of the highest-priority candidate
// without consuming it permanently: it pops (discarding stale entries the
// same way popDecision does) and immediately reinserts the winner.
func (h *varHeap) peekActivity(isCandidate func(Var) bool) (float64, bool) {
	v, ok := h.popDecision(isCandidate)
	if !ok {
		return 0, false
	}
	h.reinsert(v)
	return h.activity[v], true
}
