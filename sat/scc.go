package sat

// computeLiteralSCCs runs Tarjan's algorithm, iteratively (an explicit work
// stack stands in for the call stack so the depth of the binary implication
// graph can't blow Go's goroutine stack), over the binary implication graph
// built from every binary clause currently watched. Edge u -> v means
// "assigning u true forces v true", i.e. there is a binary clause (¬u ∨ v).
// It returns, per literal, the index of its strongly connected component.
func (s *Solver) computeLiteralSCCs() ([]int32, int32) {
	n := 2 * s.numVars
	index := make([]int32, n)
	lowlink := make([]int32, n)
	onStack := make([]bool, n)
	comp := make([]int32, n)
	for i := range index {
		index[i] = -1
		comp[i] = -1
	}

	var idxCounter, compCounter int32
	stack := make([]int32, 0, n)

	type frame struct {
		node int32
		iter int
	}
	work := make([]frame, 0, n)

	for start := int32(0); start < int32(n); start++ {
		if index[start] != -1 {
			continue
		}

		index[start] = idxCounter
		lowlink[start] = idxCounter
		idxCounter++
		stack = append(stack, start)
		onStack[start] = true
		work = append(work, frame{node: start})

		for len(work) > 0 {
			top := &work[len(work)-1]
			u := top.node
			succ := s.watches.lists[Literal(u).Opposite()]

			descended := false
			for top.iter < len(succ) {
				e := succ[top.iter]
				top.iter++
				if !e.isBinary {
					continue
				}
				v := int32(e.lit)
				if index[v] == -1 {
					index[v] = idxCounter
					lowlink[v] = idxCounter
					idxCounter++
					stack = append(stack, v)
					onStack[v] = true
					work = append(work, frame{node: v})
					descended = true
					break
				} else if onStack[v] && index[v] < lowlink[u] {
					lowlink[u] = index[v]
				}
			}
			if descended {
				continue
			}

			work = work[:len(work)-1]
			if len(work) > 0 {
				p := &work[len(work)-1]
				if lowlink[u] < lowlink[p.node] {
					lowlink[p.node] = lowlink[u]
				}
			}

			if lowlink[u] == index[u] {
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[w] = false
					comp[w] = compCounter
					if w == u {
						break
					}
				}
				compCounter++
			}
		}
	}

	return comp, compCounter
}

// substituteEquivalences finds literals forced equal by binary clauses
// (mutual implication, i.e. same SCC) and rewrites every clause to use a
// single representative per equivalence class, recording each substituted
// variable in the reconstruction log.
func (s *Solver) substituteEquivalences() {
	comp, numComp := s.computeLiteralSCCs()
	if numComp == 0 {
		return
	}

	compMin := make([]int32, numComp)
	for i := range compMin {
		compMin[i] = -1
	}
	for lit := 0; lit < len(comp); lit++ {
		c := comp[lit]
		if compMin[c] == -1 || int32(lit) < compMin[c] {
			compMin[c] = int32(lit)
		}
	}

	for v := Var(1); v < Var(s.numVars); v++ {
		if comp[PosLit(v)] == comp[NegLit(v)] {
			s.unsat = true
			return
		}
	}

	repr := make([]Literal, len(comp))
	changed := false
	for lit := 0; lit < len(comp); lit++ {
		repr[lit] = Literal(compMin[comp[lit]])
		if repr[lit] != Literal(lit) {
			changed = true
		}
	}
	if !changed {
		return
	}

	s.applySubstitution(repr)
}

// applySubstitution rewrites every problem clause and binary under repr,
// records a reconstruction entry for each eliminated variable, and
// re-adds the rewritten clauses.
func (s *Solver) applySubstitution(repr []Literal) {
	var rewritten [][]Literal

	var longClauses []Handle
	s.pool.Each(false, func(h Handle) bool {
		longClauses = append(longClauses, h)
		return true
	})
	for _, h := range longClauses {
		n := s.pool.Len(h)
		lits := make([]Literal, n)
		for i := 0; i < n; i++ {
			lits[i] = repr[s.pool.Lit(h, i)]
		}
		l0, l1 := s.pool.Lit(h, 0), s.pool.Lit(h, 1)
		s.watches.removeClause(l0, h)
		s.watches.removeClause(l1, h)
		s.pool.Delete(h)
		rewritten = append(rewritten, lits)
	}

	seenBinary := make(map[[2]Literal]struct{})
	for a := Literal(0); int(a) < len(s.watches.lists); a++ {
		for _, e := range s.watches.lists[a] {
			if !e.isBinary {
				continue
			}
			key := [2]Literal{a, e.lit}
			if a > e.lit {
				key = [2]Literal{e.lit, a}
			}
			if _, ok := seenBinary[key]; ok {
				continue
			}
			seenBinary[key] = struct{}{}
			rewritten = append(rewritten, []Literal{repr[key[0]], repr[key[1]]})
		}
	}
	for key := range seenBinary {
		s.unwatchBinary(key[0], key[1])
	}

	for v := Var(1); v < Var(s.numVars); v++ {
		r := repr[PosLit(v)]
		if r != PosLit(v) {
			s.recon.recordSubst(v, r)
			s.removed[v] = true
		}
	}

	for _, lits := range rewritten {
		clean, trivial := s.normalizeClause(lits)
		if trivial {
			continue
		}
		s.addClauseInternal(clean)
		if s.unsat {
			return
		}
	}
}
