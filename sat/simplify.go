package sat

// maybeSimplify runs a level-0 clause sweep once enough new root-level facts
// have accumulated since the last one: every clause satisfied by a
// permanently-true literal is dropped, and every permanently-false literal
// is stripped out of the clauses that survive, shrinking some of them down
// to a new unit or binary. The caller guarantees decisionLevel() == 0.
func (s *Solver) maybeSimplify() {
	units := s.numAssigned()
	if units-s.unitsAtLastSimplify < s.params.SimplifyInterval &&
		s.numBinary-s.binariesAtLastSimplify < s.params.SimplifyBinDelta {
		return
	}

	s.simplifyArena(false)
	s.simplifyArena(true)

	s.unitsAtLastSimplify = units
	s.binariesAtLastSimplify = s.numBinary
	s.stats.Simplifies++

	if s.params.Preprocess && !s.unsat {
		s.substituteEquivalences()
	}
}

func (s *Solver) simplifyArena(learned bool) {
	var toDelete []Handle

	s.pool.Each(learned, func(h Handle) bool {
		l0, l1 := s.pool.Lit(h, 0), s.pool.Lit(h, 1)

		n := s.pool.Len(h)
		satisfied := false
		k := 0
		for i := 0; i < n; i++ {
			l := s.pool.Lit(h, i)
			switch s.LitValue(l) {
			case True:
				satisfied = true
			case False:
				// dropped
			default:
				if k != i {
					s.pool.SetLit(h, k, l)
				}
				k++
			}
		}

		if satisfied {
			s.watches.removeClause(l0, h)
			s.watches.removeClause(l1, h)
			toDelete = append(toDelete, h)
			return true
		}
		if k == n {
			return true // nothing stripped, l0/l1 untouched
		}

		s.pool.Shrink(h, k)
		switch {
		case k == 0:
			s.unsat = true
			s.emptyClause = true
			s.watches.removeClause(l0, h)
			s.watches.removeClause(l1, h)
			toDelete = append(toDelete, h)
		case k == 1:
			s.watches.removeClause(l0, h)
			s.watches.removeClause(l1, h)
			if !s.enqueueFact(s.pool.Lit(h, 0), Antecedent{Tag: AntUnit}) {
				s.unsat = true
				s.emptyClause = true
			}
			toDelete = append(toDelete, h)
		case k == 2:
			s.watches.removeClause(l0, h)
			s.watches.removeClause(l1, h)
			s.watchBinary(s.pool.Lit(h, 0), s.pool.Lit(h, 1))
			toDelete = append(toDelete, h)
		default:
			// Still a long clause; l0/l1 (positions 0/1) are untouched by
			// the strip above since a clause's watched literals are never
			// false while the search is quiescent at level 0.
		}
		return true
	})

	if len(toDelete) == 0 {
		return
	}

	dead := make(map[Handle]struct{}, len(toDelete))
	for _, h := range toDelete {
		dead[h] = struct{}{}
		if learned {
			delete(s.clauseLBD, h)
		}
		s.pool.Delete(h)
	}

	if learned {
		kept := s.learned[:0]
		for _, h := range s.learned {
			if _, gone := dead[h]; !gone {
				kept = append(kept, h)
			}
		}
		s.learned = kept
	}

	if s.pool.NeedsGC(learned) {
		if learned {
			s.compactLearned()
		} else {
			s.compactProblem()
		}
	}
}
