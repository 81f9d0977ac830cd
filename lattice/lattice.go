// Package lattice provides meet/join ordering operations over ordered
// scalars, plus a partial-order family that reports incomparable operands
// instead of guessing.
//
// The two families diverge on incomparable input (NaN): Meet and Join always
// return one of the operands via the raw comparison-operator fallback, while
// the Partial* functions report no result. Callers that must detect NaN
// should use the Partial* family.
//
// Meet/join semantics are opt-in per call site through the Scalar constraint
// rather than attached to arbitrary types, so minimum/maximum semantics are
// never exposed where they are not meaningful.
package lattice

import "cmp"

// Scalar is the constraint for lattice operations: any copyable, ordered
// scalar type. Floating-point values are only partially ordered (NaN is
// incomparable); see the package comment for how the two operation families
// treat that.
type Scalar interface {
	cmp.Ordered
}

// Meet returns the operand that orders below the other. Ties favor a:
// Meet(a, b) returns a whenever a <= b, including equality.
//
// With an incomparable operand (NaN) the a <= b test is false and b is
// returned, whatever it is. Use PartialMin to detect that case.
func Meet[T Scalar](a, b T) T {
	if a <= b {
		return a
	}
	return b
}

// Join returns the operand that orders above the other. Ties favor a.
//
// With an incomparable operand the a >= b test is false and b is returned.
// Use PartialMax to detect that case.
func Join[T Scalar](a, b T) T {
	if a >= b {
		return a
	}
	return b
}

// MeetJoin returns Meet(a, b) and Join(a, b) in one call.
func MeetJoin[T Scalar](a, b T) (meet, join T) {
	return Meet(a, b), Join(a, b)
}

// Compare is a partial comparison: it returns -1, 0 or +1 when a and b are
// ordered, and ok=false when they are incomparable (either operand NaN).
func Compare[T Scalar](a, b T) (c int, ok bool) {
	switch {
	case a < b:
		return -1, true
	case a > b:
		return 1, true
	case a == b:
		return 0, true
	default:
		return 0, false
	}
}

// PartialMin returns the lesser operand, favoring a on ties. It returns
// ok=false when the operands are incomparable; that is the only failure
// mode.
func PartialMin[T Scalar](a, b T) (T, bool) {
	c, ok := Compare(a, b)
	if !ok {
		var zero T
		return zero, false
	}
	if c > 0 {
		return b, true
	}
	return a, true
}

// PartialMax returns the greater operand, favoring a on ties. It returns
// ok=false when the operands are incomparable.
func PartialMax[T Scalar](a, b T) (T, bool) {
	c, ok := Compare(a, b)
	if !ok {
		var zero T
		return zero, false
	}
	if c < 0 {
		return b, true
	}
	return a, true
}

// PartialOrderedPair returns the operands as (lesser, greater), favoring a
// on ties. It returns ok=false when the operands are incomparable.
func PartialOrderedPair[T Scalar](a, b T) (lesser, greater T, ok bool) {
	c, ok := Compare(a, b)
	if !ok {
		var zero T
		return zero, zero, false
	}
	if c < 0 {
		return a, b, true
	}
	return b, a, true
}

// PartialClamp restricts x to [lo, hi] under the partial order, computed as
// meet(join(x, lo), hi). It returns ok=false if any pairwise comparison used
// internally is incomparable. The bounds are not validated against each
// other beyond the comparisons this computation performs.
func PartialClamp[T Scalar](x, lo, hi T) (T, bool) {
	raised, ok := PartialMax(x, lo)
	if !ok {
		var zero T
		return zero, false
	}
	return PartialMin(raised, hi)
}
