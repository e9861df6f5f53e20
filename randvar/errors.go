package randvar

import "errors"

// Validation and sampling failures are classified by kind so callers can
// match with errors.Is. None of them are recovered internally: a failed
// construction never yields a Distribution, and ErrInvariant during
// aggregation is a programming error, not user input.
var (
	// ErrTypeMismatch: a field received a value of the wrong type,
	// e.g. a non-integer element.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrShapeMismatch: element count and probability count differ.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrProbability: probabilities do not form a valid PMF, or a
	// probability entry is not numeric.
	ErrProbability = errors.New("bad probability")

	// ErrInvariant: a sampled value is not among the declared outcomes.
	// Should be unreachable with a correct Sampler.
	ErrInvariant = errors.New("invariant violation")
)
