package spatialgo

import (
	"errors"
	"fmt"
)

// Fitting failure causes. All are deterministic functions of the input and
// are matchable via errors.Is; callers that only care about presence can
// use Fitter.TryFit instead.
var (
	// ErrEmptyInput is returned when the point collection is empty.
	ErrEmptyInput = errors.New("spatialgo: empty point collection")

	// ErrFactorizationFailed is returned when the numeric backend cannot
	// factor the centered point matrix.
	ErrFactorizationFailed = errors.New("spatialgo: factorization failed")

	// ErrIncomparableSingularValues is returned when the singular values
	// cannot be totally ordered (a non-finite value is present).
	ErrIncomparableSingularValues = errors.New("spatialgo: singular values are not comparable")

	// ErrIndexOutOfRange is returned when the selected singular-vector
	// column does not exist or has the wrong arity.
	ErrIndexOutOfRange = errors.New("spatialgo: singular vector index out of range")

	// ErrDegenerateNormal is returned when the candidate normal cannot be
	// normalized to unit length.
	ErrDegenerateNormal = errors.New("spatialgo: degenerate normal")
)

// ErrInvalidDimension indicates a space whose ambient dimension is not
// supported by the requested predicate.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidDimension struct {
	Dimension int
	cause     error
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

func (e *ErrInvalidDimension) Unwrap() error { return e.cause }
