// Package composite provides fixed-arity tuple adapters that bridge
// 2- and 3-component values to flat ordered sequences, the buffer format
// the numeric backend consumes.
package composite

import "iter"

// Pair is a homogeneous 2-tuple.
type Pair[T any] struct {
	A, B T
}

// Triple is a homogeneous 3-tuple.
type Triple[T any] struct {
	A, B, C T
}

// Items decomposes the pair into its elements in original order.
func (p Pair[T]) Items() []T {
	return []T{p.A, p.B}
}

// Items decomposes the triple into its elements in original order.
func (t Triple[T]) Items() []T {
	return []T{t.A, t.B, t.C}
}

// PairFromItems builds a pair from the first two items. It returns ok=false
// if fewer than two items are available; surplus items are ignored.
func PairFromItems[T any](items []T) (Pair[T], bool) {
	if len(items) < 2 {
		return Pair[T]{}, false
	}
	return Pair[T]{A: items[0], B: items[1]}, true
}

// TripleFromItems builds a triple from the first three items. It returns
// ok=false if fewer than three items are available; surplus items are
// ignored.
func TripleFromItems[T any](items []T) (Triple[T], bool) {
	if len(items) < 3 {
		return Triple[T]{}, false
	}
	return Triple[T]{A: items[0], B: items[1], C: items[2]}, true
}

// PairFromSeq consumes exactly two items from seq. It returns ok=false if
// the sequence ends early; the sequence is not advanced past the second
// item.
func PairFromSeq[T any](seq iter.Seq[T]) (Pair[T], bool) {
	var p Pair[T]
	n := 0
	for v := range seq {
		switch n {
		case 0:
			p.A = v
		case 1:
			p.B = v
		}
		n++
		if n == 2 {
			break
		}
	}
	return p, n == 2
}

// TripleFromSeq consumes exactly three items from seq. It returns ok=false
// if the sequence ends early.
func TripleFromSeq[T any](seq iter.Seq[T]) (Triple[T], bool) {
	var t Triple[T]
	n := 0
	for v := range seq {
		switch n {
		case 0:
			t.A = v
		case 1:
			t.B = v
		case 2:
			t.C = v
		}
		n++
		if n == 3 {
			break
		}
	}
	return t, n == 3
}

// ConvergedPair builds a pair by repeating one value across both positions.
func ConvergedPair[T any](v T) Pair[T] {
	return Pair[T]{A: v, B: v}
}

// ConvergedTriple builds a triple by repeating one value across all three
// positions.
func ConvergedTriple[T any](v T) Triple[T] {
	return Triple[T]{A: v, B: v, C: v}
}
