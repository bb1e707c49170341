package sat

import "math/rand"

// restartMargin is the glucose restart trigger ratio (29/32): a restart
// fires once the fast LBD EMA reaches this fraction of the slow one. Unlike
// the other search knobs this is not exposed as a Params field; it is an
// invariant of the glucose restart rule itself, not a tuning parameter.
const restartMargin = 29.0 / 32.0

// Params configures a Solver's search and inprocessing heuristics. Zero
// values are replaced by DefaultParams' corresponding field wherever a zero
// would not be a sensible setting (see withDefaults).
type Params struct {
	// VarDecay is the per-conflict decay factor applied to the VSIDS
	// variable activity increment; must be in (0, 1).
	VarDecay float64

	// ClauseDecay is the per-conflict decay factor applied to the learned
	// clause activity increment; must be in (0, 1).
	ClauseDecay float64

	// RandomSeed seeds the decision-randomization source.
	RandomSeed int64

	// Randomness is the probability (in [0, 1]) that a decision picks a
	// uniformly random active variable instead of the VSIDS top pick.
	Randomness float64

	// ConflictBudget caps the number of conflicts a single Solve call may
	// spend before returning Unknown. Negative means unbounded.
	ConflictBudget int64

	// ReduceInterval is the number of conflicts before the first clause
	// database reduction, and the initial increment between reductions.
	ReduceInterval int64

	// ReduceDelta seeds the reduction schedule's growth kicker: the
	// increment between reductions grows by this much after the first
	// reduction, then by one less each time, so the interval's growth
	// itself tapers off rather than staying constant.
	ReduceDelta int64

	// ReduceFraction is the fraction (in [0, 1]) of removable learned
	// clauses discarded at each reduction.
	ReduceFraction float64

	// KeepLBD is the "precious" LBD threshold: learned clauses with an LBD
	// at or below this are never discarded by reduceDB, regardless of
	// activity.
	KeepLBD int

	// RestartInterval is the minimum number of conflicts since the last
	// restart before a glucose restart may fire again.
	RestartInterval int64

	// PartialRestarts enables backtracking only to the level just before the
	// shallowest level whose decision is no longer VSIDS-preferred, instead
	// of always to level 0.
	PartialRestarts bool

	// Preprocess enables the inprocessing pass (unit/pure propagation, SCC
	// substitution, subsumption, bounded variable elimination) before and
	// during search.
	Preprocess bool

	// VarElimSkip bounds bounded variable elimination: a variable whose
	// positive-times-negative occurrence product would exceed this is
	// skipped, unless one side has at most one occurrence.
	VarElimSkip int

	// ResolventLimit caps the number of literals a single elimination
	// resolvent may have before it is rejected.
	ResolventLimit int

	// SubsumeSkip bounds subsumption: clauses longer than this are not used
	// as subsuming candidates (they may still be subsumed).
	SubsumeSkip int

	// SimplifyInterval is the minimum number of newly learned units between
	// successive level-0 simplification passes.
	SimplifyInterval int

	// SimplifyBinDelta is the minimum number of newly learned binary
	// clauses between successive level-0 simplification passes, tracked
	// separately from SimplifyInterval since a formula can accumulate
	// binaries much faster than units.
	SimplifyBinDelta int

	// Verbosity controls diagnostic output; 0 is silent.
	Verbosity int
}

// DefaultParams mirrors common CDCL solver defaults: aggressive decay,
// glucose-style restarts, and inprocessing enabled.
var DefaultParams = Params{
	VarDecay:         0.95,
	ClauseDecay:      0.999,
	RandomSeed:       1,
	Randomness:       0,
	ConflictBudget:   -1,
	ReduceInterval:   2000,
	ReduceDelta:      300,
	ReduceFraction:   0.5,
	KeepLBD:          2,
	RestartInterval:  50,
	PartialRestarts:  true,
	Preprocess:       true,
	VarElimSkip:      1 << 20,
	ResolventLimit:   16,
	SubsumeSkip:      1000,
	SimplifyInterval: 1000,
	SimplifyBinDelta: 1000,
	Verbosity:        0,
}

func (p Params) withDefaults() Params {
	d := DefaultParams
	if p.VarDecay == 0 {
		p.VarDecay = d.VarDecay
	}
	if p.ClauseDecay == 0 {
		p.ClauseDecay = d.ClauseDecay
	}
	if p.RandomSeed == 0 {
		p.RandomSeed = d.RandomSeed
	}
	if p.ConflictBudget == 0 {
		p.ConflictBudget = d.ConflictBudget
	}
	if p.ReduceInterval == 0 {
		p.ReduceInterval = d.ReduceInterval
	}
	if p.ReduceDelta == 0 {
		p.ReduceDelta = d.ReduceDelta
	}
	if p.ReduceFraction == 0 {
		p.ReduceFraction = d.ReduceFraction
	}
	if p.KeepLBD == 0 {
		p.KeepLBD = d.KeepLBD
	}
	if p.RestartInterval == 0 {
		p.RestartInterval = d.RestartInterval
	}
	if p.VarElimSkip == 0 {
		p.VarElimSkip = d.VarElimSkip
	}
	if p.ResolventLimit == 0 {
		p.ResolventLimit = d.ResolventLimit
	}
	if p.SubsumeSkip == 0 {
		p.SubsumeSkip = d.SubsumeSkip
	}
	if p.SimplifyInterval == 0 {
		p.SimplifyInterval = d.SimplifyInterval
	}
	if p.SimplifyBinDelta == 0 {
		p.SimplifyBinDelta = d.SimplifyBinDelta
	}
	return p
}

// SetVarDecay updates the VSIDS decay factor; it must be in (0, 1).
func (s *Solver) SetVarDecay(d float64) error {
	if d <= 0 || d >= 1 {
		return ErrParamOutOfRange
	}
	s.params.VarDecay = d
	s.heap.decay = d
	return nil
}

// SetClauseDecay updates the clause activity decay factor; it must be in
// (0, 1).
func (s *Solver) SetClauseDecay(d float64) error {
	if d <= 0 || d >= 1 {
		return ErrParamOutOfRange
	}
	s.params.ClauseDecay = d
	return nil
}

// SetRandomness updates the random-decision probability; it must be in
// [0, 1].
func (s *Solver) SetRandomness(r float64) error {
	if r < 0 || r > 1 {
		return ErrParamOutOfRange
	}
	s.params.Randomness = r
	return nil
}

// SetRandomSeed reseeds the decision-randomization source. It takes effect
// immediately, independent of decision level.
func (s *Solver) SetRandomSeed(seed int64) {
	s.params.RandomSeed = seed
	s.rng = rand.New(rand.NewSource(seed))
}

// SetConflictBudget bounds the number of conflicts the next Solve call may
// spend; negative means unbounded.
func (s *Solver) SetConflictBudget(n int64) {
	s.params.ConflictBudget = n
}

// SetKeepLBD updates the "precious" LBD threshold at or below which learned
// clauses are exempt from reduceDB; it must be non-negative.
func (s *Solver) SetKeepLBD(n int) error {
	if n < 0 {
		return ErrParamOutOfRange
	}
	s.params.KeepLBD = n
	return nil
}

// SetReduceDelta updates the reduction schedule's growth kicker; it must be
// non-negative.
func (s *Solver) SetReduceDelta(n int64) error {
	if n < 0 {
		return ErrParamOutOfRange
	}
	s.params.ReduceDelta = n
	return nil
}

// SetRestartInterval updates the minimum number of conflicts between
// restarts; it must be positive.
func (s *Solver) SetRestartInterval(n int64) error {
	if n <= 0 {
		return ErrParamOutOfRange
	}
	s.params.RestartInterval = n
	return nil
}

// SetSimplifyBinDelta updates the minimum number of newly learned binary
// clauses between level-0 simplification passes; it must be positive.
func (s *Solver) SetSimplifyBinDelta(n int) error {
	if n <= 0 {
		return ErrParamOutOfRange
	}
	s.params.SimplifyBinDelta = n
	return nil
}

// SetVerbosity updates diagnostic output level.
func (s *Solver) SetVerbosity(v int) {
	s.verbosity = v
	s.params.Verbosity = v
}
