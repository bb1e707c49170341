package sat

type reconKind uint8

const (
	reconPure reconKind = iota
	reconSubst
	reconElim
)

// reconEntry records one preprocessing step that removed a variable from
// the search, in enough detail to recover its value once every variable
// that survived has been solved.
type reconEntry struct {
	kind reconKind
	v    Var

	// reconSubst: the literal v was replaced by.
	to Literal

	// reconPure: the polarity that was forced.
	pol bool

	// reconElim: the original clauses containing v positively (pos) and
	// negatively (neg), kept so the reconstructed value can be checked
	// against both.
	pos [][]Literal
	neg [][]Literal
}

// reconstructionLog is the ordered trail of preprocessing eliminations;
// replaying it back-to-front recovers a full model from a partial one.
type reconstructionLog struct {
	entries []reconEntry
}

func (log *reconstructionLog) recordPure(v Var, positivePolarity bool) {
	log.entries = append(log.entries, reconEntry{kind: reconPure, v: v, pol: positivePolarity})
}

func (log *reconstructionLog) recordSubst(v Var, to Literal) {
	log.entries = append(log.entries, reconEntry{kind: reconSubst, v: v, to: to})
}

func (log *reconstructionLog) recordElim(v Var, pos, neg [][]Literal) {
	log.entries = append(log.entries, reconEntry{kind: reconElim, v: v, pos: pos, neg: neg})
}

func litSatisfied(values []Value, l Literal) bool {
	if l.IsPositive() {
		return values[l.Var()] == True
	}
	return values[l.Var()] == False
}

func clausesSatisfied(clauses [][]Literal, values []Value) bool {
	for _, c := range clauses {
		sat := false
		for _, l := range c {
			if litSatisfied(values, l) {
				sat = true
				break
			}
		}
		if !sat {
			return false
		}
	}
	return true
}

// extend fills in values for every variable the log removed, processing
// entries from most recent to oldest: an entry's stored clauses/literal can
// only reference variables that were still live when it was recorded, i.e.
// variables removed later (and hence already restored by this point in the
// backward walk).
func (log *reconstructionLog) extend(values []Value) {
	for i := len(log.entries) - 1; i >= 0; i-- {
		e := log.entries[i]
		switch e.kind {
		case reconPure:
			if e.pol {
				values[e.v] = True
			} else {
				values[e.v] = False
			}
		case reconSubst:
			if litSatisfied(values, e.to) {
				values[e.v] = True
			} else {
				values[e.v] = False
			}
		case reconElim:
			// v = true trivially satisfies every clause in pos; it works
			// as long as every clause in neg is already satisfied by the
			// other (already-restored) literals. Otherwise v = false
			// works symmetrically, by the invariant elimination preserves.
			if clausesSatisfied(e.neg, values) {
				values[e.v] = True
			} else {
				values[e.v] = False
			}
		}
	}
}

// saveModel snapshots the current assignment into savedModel. It is called
// at the instant search (or preprocessing) finds every variable assigned,
// before search backtracks to level 0 to leave the solver ready for
// AddClause again.
func (s *Solver) saveModel() {
	if cap(s.savedModel) < s.numVars {
		s.savedModel = make([]Value, s.numVars)
	}
	s.savedModel = s.savedModel[:s.numVars]
	for v := 1; v < s.numVars; v++ {
		s.savedModel[v] = s.Value(Var(v))
	}
}

// Model returns a full assignment for variables 1..NumVars(), reconstructing
// values for any variable preprocessing removed from the search. It must
// only be called after Solve has returned Sat.
func (s *Solver) Model() []Value {
	out := make([]Value, s.numVars)
	copy(out, s.savedModel)
	s.recon.extend(out)
	return out[1:]
}
