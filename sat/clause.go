package sat

// watchBinary registers the inline binary clause {a, b}: each literal
// watches the other's negation, per the propagation loop in propagate.go.
func (s *Solver) watchBinary(a, b Literal) {
	s.watches.add(a, binaryWatch(b))
	s.watches.add(b, binaryWatch(a))
	s.numBinary++
}

func (s *Solver) unwatchBinary(a, b Literal) {
	s.watches.removeBinary(a, b)
	s.watches.removeBinary(b, a)
	s.numBinary--
}

func (w *watchVectors) removeBinary(at Literal, partner Literal) {
	list := w.lists[at]
	j := 0
	for i := range list {
		if !list[i].isBinary || list[i].lit != partner {
			list[j] = list[i]
			j++
		}
	}
	w.lists[at] = list[:j]
}

// watchClause registers the pool clause h, whose first two literals are its
// two watched literals.
func (s *Solver) watchClause(h Handle) {
	l0, l1 := s.pool.Lit(h, 0), s.pool.Lit(h, 1)
	s.watches.add(l0, clauseWatch(h, l1))
	s.watches.add(l1, clauseWatch(h, l0))
}

// AddClause adds a problem clause over the given literals. It accepts any
// length, including 0 (the solver becomes permanently unsat) and 1 (a root
// unit). Duplicate literals and tautological clauses (containing both a
// literal and its negation) are detected and the clause is simplified or
// dropped accordingly. Clauses can only be added at decision level 0.
func (s *Solver) AddClause(lits []Literal) error {
	if s.unsat || s.decisionLevel() != 0 {
		return ErrWrongState
	}
	for _, l := range lits {
		if l.Var() >= Var(s.numVars) {
			return ErrVariableOutOfRange
		}
	}

	clean, trivial := s.normalizeClause(lits)
	if trivial {
		return nil // always true: contributes nothing
	}
	s.addClauseInternal(clean)
	return nil
}

// addClauseInternal dispatches an already-normalized, already-validated
// clause to the appropriate representation by length. Used both by the
// public AddClause and by preprocessing steps that rewrite existing clauses
// (equivalence substitution, elimination) and need to re-add the result.
func (s *Solver) addClauseInternal(clean []Literal) {
	switch len(clean) {
	case 0:
		s.unsat = true
		s.emptyClause = true
	case 1:
		if !s.enqueueFact(clean[0], Antecedent{Tag: AntUnit}) {
			s.unsat = true
			s.emptyClause = true
		}
	case 2:
		s.watchBinary(clean[0], clean[1])
	default:
		h := s.pool.AllocateProblem(clean)
		s.watchClause(h)
	}
}

// normalizeClause dedups lits in place and drops any literal already false
// at level 0. It returns (clause, true) if the clause is a tautology or
// already satisfied at level 0, in which case it need not be stored.
func (s *Solver) normalizeClause(lits []Literal) ([]Literal, bool) {
	seen := make(map[Literal]struct{}, len(lits))
	n := len(lits)
	for i := n - 1; i >= 0; i-- {
		l := lits[i]
		if _, ok := seen[l.Opposite()]; ok {
			return nil, true // tautology
		}
		if _, ok := seen[l]; ok {
			n--
			lits[i], lits[n] = lits[n], lits[i]
			continue
		}
		seen[l] = struct{}{}

		switch s.LitValue(l) {
		case True:
			return nil, true
		case False:
			n--
			lits[i], lits[n] = lits[n], lits[i]
		}
	}
	return lits[:n], false
}

// enqueueFact assigns l at level 0 with the given antecedent, returning
// false if l was already false (a root-level conflict).
func (s *Solver) enqueueFact(l Literal, ant Antecedent) bool {
	switch s.LitValue(l) {
	case False:
		return false
	case True:
		return true
	default:
		s.assign(l, ant)
		return true
	}
}

// recordLearnt stores a clause produced by conflict analysis and enqueues
// its asserting literal (the first-UIP's negation, in position 0).
func (s *Solver) recordLearnt(lits []Literal, lbd int) {
	s.stats.LearnedCnt++
	s.stats.LearnedSum += int64(len(lits))
	s.stats.LBDSum += int64(lbd)

	switch len(lits) {
	case 1:
		s.assign(lits[0], Antecedent{Tag: AntUnit})
	case 2:
		s.watchBinary(lits[0], lits[1])
		s.assign(lits[0], Antecedent{Tag: AntBinary, Datum: uint32(lits[1])})
	default:
		// Put the literal with the highest decision level among lits[1:]
		// into position 1, so that backtracking to backLevel keeps it
		// watched correctly.
		maxLevel, wl := -1, 1
		for i := 1; i < len(lits); i++ {
			if lvl := s.varLevel[lits[i].Var()]; lvl > maxLevel {
				maxLevel, wl = lvl, i
			}
		}
		lits[1], lits[wl] = lits[wl], lits[1]

		h := s.pool.AllocateLearned(lits)
		s.pool.SetActivity(h, 0)
		s.bumpClauseActivity(h)
		s.setLBD(h, lbd)
		s.learned = append(s.learned, h)
		s.watchClause(h)
		s.assign(lits[0], Antecedent{Tag: AntClause, Datum: uint32(h)})
	}
}

// explainConflict returns the negation of every literal in the conflicting
// clause or binary, which is the starting reason set for conflict analysis.
func (s *Solver) explainConflict(c conflictRef, out []Literal) []Literal {
	out = out[:0]
	if c.isBinary {
		return append(out, c.binLits[0].Opposite(), c.binLits[1].Opposite())
	}
	h := c.handle
	if h.Learned() {
		s.bumpClauseActivity(h)
	}
	n := s.pool.Len(h)
	for i := 0; i < n; i++ {
		out = append(out, s.pool.Lit(h, i).Opposite())
	}
	return out
}

// explainAssign returns the reason literals that forced variable v's
// current value (excluding v's own literal), or nil if v was a decision or
// has no antecedent clause (a root fact).
func (s *Solver) explainAssign(v Var, out []Literal) []Literal {
	out = out[:0]
	ant := s.antecedent[v]
	switch ant.Tag {
	case AntBinary:
		return append(out, ant.otherLiteral().Opposite())
	case AntClause:
		h := ant.clauseHandle()
		if h.Learned() {
			s.bumpClauseActivity(h)
		}
		n := s.pool.Len(h)
		for i := 1; i < n; i++ {
			out = append(out, s.pool.Lit(h, i).Opposite())
		}
		return out
	default:
		return out
	}
}
