package sat

// Value is a four-state assignment value stored per literal. Besides True
// and False, the two undefined states record the preferred polarity the
// solver will assign next time it decides on that variable. Because an
// unassignment turns the value into the undef state matching the polarity
// the variable was last assigned (it is never rewritten to a fresh guess),
// phase saving falls out of the representation for free: see
// Solver.undoOne.
type Value int8

const (
	False      Value = -1
	Unassigned Value = 0 // never stored; used as a zero-value sentinel
	True       Value = 1
	UndefFalse Value = 2
	UndefTrue  Value = 3
)

// IsAssigned reports whether v represents a concrete True/False assignment.
func (v Value) IsAssigned() bool {
	return v == True || v == False
}

// Bool returns the concrete boolean value of v. It must only be called on
// an assigned value.
func (v Value) Bool() bool {
	return v == True
}

func (v Value) String() string {
	switch v {
	case True:
		return "true"
	case False:
		return "false"
	case UndefTrue:
		return "undef(true)"
	case UndefFalse:
		return "undef(false)"
	default:
		return "unassigned"
	}
}

// liftUndef returns the undefined Value matching the preferred polarity of
// literal l (i.e. the state l should have before any variable is assigned).
func liftUndef(positive bool) Value {
	if positive {
		return UndefTrue
	}
	return UndefFalse
}
