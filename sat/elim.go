package sat

// eliminate performs bounded variable elimination: each candidate variable
// is replaced by the resolvents of every pair of its positive/negative
// occurrences, provided doing so does not blow up clause count or size.
// Candidates with any binary-clause occurrence are skipped, since binary
// clauses are not materialized as pool clauses and so cannot be resolved by
// this pass without a separate (and unused) implication-graph rewrite.
func (s *Solver) eliminate() bool {
	s.buildOccurrences()

	isCandidate := func(v Var) bool {
		return !s.removed[v] && !s.Value(v).IsAssigned() &&
			s.binaryOccCount(PosLit(v)) == 0 && s.binaryOccCount(NegLit(v)) == 0
	}

	heap := newElimHeap()
	heap.grow(s.numVars)
	for v := Var(1); v < Var(s.numVars); v++ {
		if !isCandidate(v) {
			continue
		}
		heap.add(v, len(s.pp.occ[PosLit(v)]), len(s.pp.occ[NegLit(v)]))
	}

	changed := false
	for {
		v, cost, ok := heap.popCheapest(isCandidate)
		if !ok || cost > s.params.VarElimSkip {
			break
		}
		if s.eliminateVar(v) {
			changed = true
		}
		if s.unsat {
			return changed
		}
	}
	return changed
}

// resolve computes the resolvent of pl (containing v positively) and nl
// (containing v negatively) on v, or reports a tautology.
func resolve(pl, nl []Literal, v Var) ([]Literal, bool) {
	out := make([]Literal, 0, len(pl)+len(nl))
	seen := make(map[Literal]bool, len(out))
	for _, l := range pl {
		if l.Var() == v {
			continue
		}
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	for _, l := range nl {
		if l.Var() == v {
			continue
		}
		if seen[l.Opposite()] {
			return nil, true
		}
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	return out, false
}

// eliminateVar removes v by resolving every clause containing it positively
// against every clause containing it negatively, provided every resolvent
// fits within the configured limit. It records the removed clauses in the
// reconstruction log before deleting them.
func (s *Solver) eliminateVar(v Var) bool {
	posH := append([]Handle(nil), s.pp.occ[PosLit(v)]...)
	negH := append([]Handle(nil), s.pp.occ[NegLit(v)]...)
	if len(posH) == 0 && len(negH) == 0 {
		return false
	}

	var resolvents [][]Literal
	for _, hp := range posH {
		pl := s.clauseLits(hp)
		for _, hn := range negH {
			nl := s.clauseLits(hn)
			res, tauto := resolve(pl, nl, v)
			if tauto {
				continue
			}
			if len(res) > s.params.ResolventLimit {
				return false // too costly: leave v and its clauses alone
			}
			resolvents = append(resolvents, res)
		}
	}

	// Bounded: eliminating v must not grow the clause set. If the
	// non-trivial resolvents outnumber the clauses v currently occurs in,
	// leave v and its clauses alone.
	if len(resolvents) > len(posH)+len(negH) {
		return false
	}

	posClauses := make([][]Literal, len(posH))
	for i, h := range posH {
		posClauses[i] = s.clauseLits(h)
	}
	negClauses := make([][]Literal, len(negH))
	for i, h := range negH {
		negClauses[i] = s.clauseLits(h)
	}
	s.recon.recordElim(v, posClauses, negClauses)
	s.removed[v] = true

	for _, h := range posH {
		s.deleteProblemClause(h)
	}
	for _, h := range negH {
		s.deleteProblemClause(h)
	}

	for _, r := range resolvents {
		clean, trivial := s.normalizeClause(r)
		if trivial {
			continue
		}
		s.addClauseInternal(clean)
		if s.unsat {
			return true
		}
	}

	s.buildOccurrences()
	return true
}

func (s *Solver) deleteProblemClause(h Handle) {
	l0, l1 := s.pool.Lit(h, 0), s.pool.Lit(h, 1)
	s.watches.removeClause(l0, h)
	s.watches.removeClause(l1, h)
	s.pool.Delete(h)
}
