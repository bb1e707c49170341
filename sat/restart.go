package sat

// ema is an exponential moving average over a window of roughly `window`
// samples, seeded with its first sample so it does not drift up from zero
// during warm-up.
type ema struct {
	decay float64
	value float64
	init  bool
}

func newEMA(window float64) ema {
	return ema{decay: (window - 1) / window}
}

func (e *ema) add(x float64) {
	if !e.init {
		e.init = true
		e.value = x
		return
	}
	e.value = e.decay*e.value + x*(1-e.decay)
}

func (e *ema) val() float64 {
	return e.value
}

const (
	fastEMASamples = 50
	slowEMASamples = 5000
)

// shouldRestart implements the glucose restart trigger: restart once the
// fast (recent) LBD average has caught up to the slow (long-term) one
// (i.e. the search has been producing worse-quality clauses lately), at
// least RestartInterval conflicts have passed since the last restart, and
// the current decision level has kept pace with its own recent average
// (a shallow conflict right after a restart shouldn't immediately trigger
// another one).
func (s *Solver) shouldRestart() bool {
	if s.sinceRestart < s.params.RestartInterval {
		return false
	}
	if !s.lbdSlow.init || !s.levelFast.init {
		return false
	}
	if float64(s.decisionLevel()) < s.levelFast.val() {
		return false
	}
	return s.lbdFast.val() >= restartMargin*s.lbdSlow.val()
}

// restart backtracks the search, either partially or fully. A partial
// restart finds the shallowest decision level whose decision variable's
// activity is below that of the current best unassigned variable and
// backtracks to the level just before it, preserving the part of the trail
// that VSIDS would reselect anyway; it falls back to a full restart (level
// 0) when no such level exists or partial restarts are disabled.
func (s *Solver) restart() {
	s.stats.Restarts++
	s.sinceRestart = 0

	if !s.params.PartialRestarts {
		s.backtrackTo(0)
		return
	}

	bestActivity, ok := s.heap.peekActivity(func(v Var) bool {
		return !s.removed[v] && (s.Value(v) == UndefTrue || s.Value(v) == UndefFalse)
	})
	if !ok {
		s.backtrackTo(0)
		return
	}

	level := 0
	found := false
	for lvl := 1; lvl <= s.decisionLevel(); lvl++ {
		idx := s.trail.levelStartIndex(lvl)
		if idx >= len(s.trail.lits) {
			break
		}
		decisionVar := s.trail.lits[idx].Var()
		if s.heap.activity[decisionVar] < bestActivity {
			found = true
			break
		}
		level = lvl
	}
	if !found {
		level = 0
	}
	s.backtrackTo(level)
}
