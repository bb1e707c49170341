package sat

import "sort"

// clauseLits copies the live literals of the clause at h.
func (s *Solver) clauseLits(h Handle) []Literal {
	n := s.pool.Len(h)
	out := make([]Literal, n)
	for i := 0; i < n; i++ {
		out[i] = s.pool.Lit(h, i)
	}
	return out
}

func (s *Solver) clauseSignature(h Handle) uint32 {
	var sig uint32
	lits := s.clauseLits(h)
	for _, l := range lits {
		sig |= 1 << (uint32(l.Var()) % 32)
	}
	return sig
}

// binaryOccCount returns the number of binary clauses containing l. A
// binary clause {l, other} is registered as a watch entry in both
// lists[l] and lists[other], so lists[l]'s binary entries enumerate exactly
// the binary clauses containing l.
func (s *Solver) binaryOccCount(l Literal) int {
	n := 0
	for _, e := range s.watches.lists[l] {
		if e.isBinary {
			n++
		}
	}
	return n
}

func containsLit(lits []Literal, l Literal) bool {
	for _, x := range lits {
		if x == l {
			return true
		}
	}
	return false
}

func subsumesLits(a, b []Literal) bool {
	for _, l := range a {
		if !containsLit(b, l) {
			return false
		}
	}
	return true
}

// selfSubsumingLiteral reports the literal to remove from b if a single
// resolution between a and b (on some literal p in a, matched against ¬p in
// b) would let b be replaced by its own strict subset.
func selfSubsumingLiteral(a, b []Literal) (Literal, bool) {
	for _, p := range a {
		if !containsLit(b, p.Opposite()) {
			continue
		}
		rest := true
		for _, q := range a {
			if q == p {
				continue
			}
			if !containsLit(b, q) {
				rest = false
				break
			}
		}
		if rest {
			return p.Opposite(), true
		}
	}
	return 0, false
}

// subsume removes problem clauses subsumed by a shorter clause and
// strengthens clauses via self-subsuming resolution, using 32-bit
// variable-mod-32 signatures as a cheap pre-filter before the exact check.
func (s *Solver) subsume() bool {
	s.buildOccurrences()

	var handles []Handle
	s.pool.Each(false, func(h Handle) bool {
		s.pool.SetSignature(h, s.clauseSignature(h))
		if s.pool.Len(h) <= s.params.SubsumeSkip {
			handles = append(handles, h)
		}
		return true
	})
	sort.Slice(handles, func(i, j int) bool {
		return s.pool.Len(handles[i]) < s.pool.Len(handles[j])
	})

	deleted := make(map[Handle]bool)
	strengthened := false

	for _, a := range handles {
		if deleted[a] {
			continue
		}
		litsA := s.clauseLits(a)

		pivot := litsA[0]
		minOcc := len(s.pp.occ[pivot])
		for _, l := range litsA[1:] {
			if o := len(s.pp.occ[l]); o < minOcc {
				minOcc = o
				pivot = l
			}
		}

		candidates := append([]Handle(nil), s.pp.occ[pivot]...)
		for _, b := range candidates {
			if b == a || deleted[b] {
				continue
			}
			litsB := s.clauseLits(b)
			if len(litsB) < len(litsA) {
				continue
			}

			sigA, sigB := s.pool.Signature(a), s.pool.Signature(b)
			if sigA&^sigB != 0 {
				continue
			}

			if subsumesLits(litsA, litsB) {
				deleted[b] = true
				continue
			}
			if rl, ok := selfSubsumingLiteral(litsA, litsB); ok {
				s.strengthenClause(b, rl)
				strengthened = true
			}
		}
	}

	for h := range deleted {
		s.deleteProblemClause(h)
	}
	if len(deleted) > 0 || strengthened {
		s.buildOccurrences()
		return true
	}
	return false
}

// strengthenClause removes removeLit from the clause at h by deleting and
// re-adding it, which keeps the watch invariants correct regardless of
// which literal (watched or not) was removed.
func (s *Solver) strengthenClause(h Handle, removeLit Literal) {
	lits := s.clauseLits(h)
	newLits := make([]Literal, 0, len(lits)-1)
	for _, l := range lits {
		if l != removeLit {
			newLits = append(newLits, l)
		}
	}
	s.deleteProblemClause(h)

	clean, trivial := s.normalizeClause(newLits)
	if trivial {
		return
	}
	s.addClauseInternal(clean)
}
