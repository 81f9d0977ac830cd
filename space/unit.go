package space

import (
	"errors"
	"fmt"
	"math"
)

// UnitTolerance is the maximum deviation from 1 accepted for the norm of a
// normalized vector.
const UnitTolerance = 1e-9

// ErrDegenerate is returned when a vector cannot be normalized because its
// norm is zero or non-finite.
var ErrDegenerate = errors.New("space: degenerate vector")

// Normed is the constraint for vector types with a Euclidean norm. The
// Scale result type is the vector type itself.
type Normed[V any] interface {
	Norm() float64
	Scale(s float64) V
}

// Unit wraps a vector validated to have near-unit norm. It is immutable
// after construction: there is no mutation path, and Get returns the
// wrapped value by copy.
type Unit[V Normed[V]] struct {
	inner V
}

// NewUnit normalizes v and wraps the result. It fails with ErrDegenerate if
// the norm of v is zero or non-finite, or if the normalized norm still
// deviates from 1 beyond UnitTolerance.
func NewUnit[V Normed[V]](v V) (Unit[V], error) {
	n := v.Norm()
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return Unit[V]{}, fmt.Errorf("%w: norm %v", ErrDegenerate, n)
	}

	u := v.Scale(1 / n)
	if d := math.Abs(u.Norm() - 1); d > UnitTolerance {
		return Unit[V]{}, fmt.Errorf("%w: normalized norm deviates by %v", ErrDegenerate, d)
	}

	return Unit[V]{inner: u}, nil
}

// Get returns the wrapped vector.
func (u Unit[V]) Get() V {
	return u.inner
}
