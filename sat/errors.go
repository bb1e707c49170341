package sat

import "errors"

// Input errors are caller-attributable mistakes: they are returned, never
// panicked, and leave the solver in the state it was in before the call
// (except where noted).
var (
	// ErrVariableOutOfRange is returned when a clause references a
	// variable that was never created.
	ErrVariableOutOfRange = errors.New("sat: literal refers to an out-of-range variable")

	// ErrWrongState is returned when an API call is made in a state that
	// does not support it, e.g. adding a clause after Solve returned Unsat
	// without an intervening Reset, or adding a clause while the search is
	// at a non-root decision level.
	ErrWrongState = errors.New("sat: solver is not in a state that allows this operation")

	// ErrParamOutOfRange is returned by a parameter setter when the given
	// value is outside the documented range for that parameter.
	ErrParamOutOfRange = errors.New("sat: parameter value out of range")
)
