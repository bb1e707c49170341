package sat

// AntecedentTag identifies why a variable was assigned (or why it was
// removed from the problem during preprocessing).
type AntecedentTag uint8

const (
	// AntNone marks unassigned variables.
	AntNone AntecedentTag = iota
	// AntUnit marks a permanent, level-0 fact (root unit clause or a fact
	// derived by preprocessing).
	AntUnit
	// AntDecision marks a literal chosen by the search driver.
	AntDecision
	// AntBinary marks a literal forced by an inline binary watch; Datum is
	// the other literal of the binary clause.
	AntBinary
	// AntClause marks a literal forced by a pooled clause; Datum is its
	// handle.
	AntClause
	// AntStacked is reserved for literals forced by a clause in a secondary
	// stash; the stash is not implemented (see trail.go), so no assignment
	// carries this tag.
	AntStacked
	// AntPure marks a variable removed by pure-literal elimination.
	AntPure
	// AntElim is reserved for variables removed by bounded variable
	// elimination. eliminateVar does not set it: it records the removal in
	// Solver.removed and the reconstruction log instead.
	AntElim
	// AntSubst is reserved for variables substituted by their SCC
	// representative. applySubstitution does not set it: it records the
	// removal in Solver.removed and the reconstruction log instead.
	AntSubst
)

// Antecedent records the reason a variable holds its current value. The
// specification packs a mark bit into the tag's top bit; Go has no trouble
// giving the mark its own field, so we do that instead of bit-twiddling.
type Antecedent struct {
	Tag    AntecedentTag
	Datum  uint32
	Marked bool
}

func (a Antecedent) otherLiteral() Literal {
	return Literal(a.Datum)
}

func (a Antecedent) clauseHandle() Handle {
	return Handle(a.Datum)
}

func (a Antecedent) replacement() Literal {
	return Literal(a.Datum)
}
