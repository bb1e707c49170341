package sat

// maxPreprocessRounds bounds the unit/pure -> subsume -> eliminate ->
// equivalence fixpoint, so a pathological formula can't inprocess forever.
const maxPreprocessRounds = 64

// preprocessor holds the problem-clause occurrence index used by
// unit/pure propagation, subsumption, and bounded variable elimination. It
// is rebuilt whenever those passes change the clause set.
type preprocessor struct {
	occ [][]Handle // literal -> problem clause handles containing it
}

func (s *Solver) buildOccurrences() {
	if s.pp == nil {
		s.pp = &preprocessor{}
	}
	s.pp.occ = make([][]Handle, 2*s.numVars)
	s.pool.Each(false, func(h Handle) bool {
		n := s.pool.Len(h)
		for i := 0; i < n; i++ {
			l := s.pool.Lit(h, i)
			s.pp.occ[l] = append(s.pp.occ[l], h)
		}
		return true
	})
}

// runPreprocessing runs BCP to a fixpoint, then repeatedly applies
// unit/pure propagation, equivalence substitution, subsumption, and bounded
// variable elimination until none of them make further progress. It returns
// Unsat if a root-level conflict is found, Sat if every variable ends up
// assigned at level 0 (pure-literal removals are assigned, substituted or
// eliminated variables are not), and Unknown otherwise (ordinary search
// should proceed).
func (s *Solver) runPreprocessing() Status {
	if _, ok := s.propagate(); ok {
		s.unsat = true
		return Unsat
	}

	s.simplifyArena(false)
	s.simplifyArena(true)
	s.substituteEquivalences()
	if s.unsat {
		return Unsat
	}

	for round := 0; round < maxPreprocessRounds; round++ {
		changed := false

		if s.propagatePureUnits() {
			changed = true
		}
		if _, ok := s.propagate(); ok {
			s.unsat = true
			return Unsat
		}
		if s.unsat {
			return Unsat
		}

		s.simplifyArena(false)

		if s.subsume() {
			changed = true
		}
		if s.unsat {
			return Unsat
		}

		if s.eliminate() {
			changed = true
		}
		if s.unsat {
			return Unsat
		}

		if _, ok := s.propagate(); ok {
			s.unsat = true
			return Unsat
		}

		s.substituteEquivalences()
		if s.unsat {
			return Unsat
		}

		if !changed {
			break
		}
	}

	if s.numAssigned() == s.NumVars() {
		s.saveModel()
		return Sat
	}
	return Unknown
}
