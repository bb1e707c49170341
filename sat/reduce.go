package sat

import "sort"

const clauseActivityRescale = 1e20

// clauseLBD holds the literal block distance recorded for each learned
// clause at creation time. It lives outside the pool's per-clause auxiliary
// word because that word already carries the clause's activity.
//
// setLBD, lbdOf, deleteLearned, and compactLearned below, plus
// simplifyArena in simplify.go, are the only things that touch it.

// bumpClauseActivity raises h's activity by the current increment, rescaling
// every learned clause's activity (and the increment itself) if it would
// otherwise risk overflowing the pool's float32 storage.
func (s *Solver) bumpClauseActivity(h Handle) {
	if !h.Learned() {
		return
	}
	act := s.pool.Activity(h) + s.clauseInc
	s.pool.SetActivity(h, act)
	if act > clauseActivityRescale {
		s.rescaleClauseActivity()
	}
}

func (s *Solver) rescaleClauseActivity() {
	for _, h := range s.learned {
		s.pool.SetActivity(h, s.pool.Activity(h)/clauseActivityRescale)
	}
	s.clauseInc /= clauseActivityRescale
}

func (s *Solver) decayClauseActivity() {
	s.clauseInc /= s.params.ClauseDecay
}

func (s *Solver) setLBD(h Handle, lbd int) {
	if s.clauseLBD == nil {
		s.clauseLBD = make(map[Handle]uint8)
	}
	if lbd > 255 {
		lbd = 255
	}
	s.clauseLBD[h] = uint8(lbd)
}

func (s *Solver) lbdOf(h Handle) int {
	return int(s.clauseLBD[h])
}

// isLocked reports whether h is currently some variable's antecedent, which
// makes it unsafe to delete: undoing that assignment later needs the clause
// to explain it.
func (s *Solver) isLocked(h Handle) bool {
	v := s.pool.Lit(h, 0).Var()
	ant := s.antecedent[v]
	return ant.Tag == AntClause && ant.clauseHandle() == h
}

// reduceDB discards a fraction of the worst learned clauses: those with the
// highest LBD (and, among ties, the lowest activity), skipping clauses that
// are precious (LBD <= KeepLBD) or currently locked as an antecedent.
func (s *Solver) reduceDB() {
	sort.Slice(s.learned, func(i, j int) bool {
		a, b := s.learned[i], s.learned[j]
		if la, lb := s.lbdOf(a), s.lbdOf(b); la != lb {
			return la > lb
		}
		return s.pool.Activity(a) < s.pool.Activity(b)
	})

	keepLBD := s.params.KeepLBD
	removable := 0
	for _, h := range s.learned {
		if s.lbdOf(h) > keepLBD && !s.isLocked(h) {
			removable++
		}
	}
	target := int(float64(removable) * s.params.ReduceFraction)

	kept := s.learned[:0]
	removed := 0
	for _, h := range s.learned {
		if removed < target && s.lbdOf(h) > keepLBD && !s.isLocked(h) {
			s.deleteLearned(h)
			removed++
			continue
		}
		kept = append(kept, h)
	}
	s.learned = kept

	if s.pool.NeedsGC(true) {
		s.compactLearned()
	}
}

func (s *Solver) deleteLearned(h Handle) {
	l0, l1 := s.pool.Lit(h, 0), s.pool.Lit(h, 1)
	s.watches.removeClause(l0, h)
	s.watches.removeClause(l1, h)
	delete(s.clauseLBD, h)
	s.pool.Delete(h)
}

// compactLearned sweeps deleted (padding) space out of the learned arena.
// Handles are renumbered, so every watch entry and antecedent referencing a
// learned clause is rebuilt or relocated. Compaction preserves the relative
// order of surviving clauses, so once s.learned is put back in handle order
// (reduceDB leaves it sorted by LBD and activity), the pre-compaction LBD
// values can be re-associated by walking both sequences in lockstep.
func (s *Solver) compactLearned() {
	holder := make(map[Handle]Var, 8)
	for v := Var(1); v < Var(s.numVars); v++ {
		if ant := s.antecedent[v]; ant.Tag == AntClause && ant.clauseHandle().Learned() {
			s.pool.Mark(ant.clauseHandle())
			holder[ant.clauseHandle()] = v
		}
	}

	oldOrder := s.learned
	sort.Slice(oldOrder, func(i, j int) bool { return oldOrder[i] < oldOrder[j] })
	oldLBD := make([]uint8, len(oldOrder))
	for i, h := range oldOrder {
		oldLBD[i] = s.clauseLBD[h]
		l0, l1 := s.pool.Lit(h, 0), s.pool.Lit(h, 1)
		s.watches.removeClause(l0, h)
		s.watches.removeClause(l1, h)
	}

	s.pool.CompactLearned(func(old, new Handle) {
		if v, ok := holder[old]; ok {
			s.antecedent[v] = Antecedent{Tag: AntClause, Datum: uint32(new)}
		}
	})

	newLearned := make([]Handle, 0, len(oldOrder))
	newLBD := make(map[Handle]uint8, len(oldOrder))
	i := 0
	s.pool.Each(true, func(h Handle) bool {
		newLBD[h] = oldLBD[i]
		newLearned = append(newLearned, h)
		l0, l1 := s.pool.Lit(h, 0), s.pool.Lit(h, 1)
		s.watches.add(l0, clauseWatch(h, l1))
		s.watches.add(l1, clauseWatch(h, l0))
		i++
		return true
	})
	s.learned = newLearned
	s.clauseLBD = newLBD
}
