package sat

// compactProblem sweeps deleted (padding) space out of the problem arena.
// Called by simplifyArena (during search and from preprocessing) once
// enough clauses have been deleted to be worth the sweep.
func (s *Solver) compactProblem() {
	holder := make(map[Handle]Var, 8)
	for v := Var(1); v < Var(s.numVars); v++ {
		if ant := s.antecedent[v]; ant.Tag == AntClause && !ant.clauseHandle().Learned() {
			s.pool.Mark(ant.clauseHandle())
			holder[ant.clauseHandle()] = v
		}
	}

	var oldOrder []Handle
	s.pool.Each(false, func(h Handle) bool {
		oldOrder = append(oldOrder, h)
		l0, l1 := s.pool.Lit(h, 0), s.pool.Lit(h, 1)
		s.watches.removeClause(l0, h)
		s.watches.removeClause(l1, h)
		return true
	})

	s.pool.CompactProblem(func(old, new Handle) {
		if v, ok := holder[old]; ok {
			s.antecedent[v] = Antecedent{Tag: AntClause, Datum: uint32(new)}
		}
	})

	s.pool.Each(false, func(h Handle) bool {
		l0, l1 := s.pool.Lit(h, 0), s.pool.Lit(h, 1)
		s.watches.add(l0, clauseWatch(h, l1))
		s.watches.add(l1, clauseWatch(h, l0))
		return true
	})
}
