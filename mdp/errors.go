package mdp

import "errors"

// Error kinds. Every failure in the model pipeline wraps exactly one of
// these, so callers can classify with errors.Is. None of them is transient:
// each one reflects a defect in the input data or in the model itself.
var (
	// ErrData marks an empty or malformed training log, or empirical
	// frequencies that fail to normalize.
	ErrData = errors.New("data error")

	// ErrConfig marks an inconsistent domain configuration, such as a
	// duplicate state tuple or an action count that does not match the
	// slot count.
	ErrConfig = errors.New("configuration error")

	// ErrValidation marks an assembled matrix that violates its contract:
	// a transition row not summing to 1, or a reward matrix of the wrong
	// shape. It indicates a defect in the transition or reward model.
	ErrValidation = errors.New("validation error")

	// ErrLookup marks a simulation step whose (configuration, event) pair
	// is absent from the enumerated state space. It is fatal to that
	// simulation run only; other runs remain valid.
	ErrLookup = errors.New("lookup error")

	// ErrSolver marks a solver failure: a discount outside (0,1), an
	// unknown algorithm name, or failure to converge.
	ErrSolver = errors.New("solver error")
)
