package composite

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItems(t *testing.T) {
	assert.Equal(t, []float64{1, 2}, Pair[float64]{A: 1, B: 2}.Items())
	assert.Equal(t, []float64{1, 2, 3}, Triple[float64]{A: 1, B: 2, C: 3}.Items())
}

func TestPairFromItems(t *testing.T) {
	tests := []struct {
		name       string
		items      []int
		expected   Pair[int]
		expectedOK bool
	}{
		{"Exact", []int{1, 2}, Pair[int]{1, 2}, true},
		{"Surplus", []int{1, 2, 3, 4, 5}, Pair[int]{1, 2}, true},
		{"Short", []int{1}, Pair[int]{}, false},
		{"Empty", nil, Pair[int]{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := PairFromItems(tt.items)
			require.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expected, p)
		})
	}
}

func TestTripleFromItems(t *testing.T) {
	tests := []struct {
		name       string
		items      []int
		expected   Triple[int]
		expectedOK bool
	}{
		{"Exact", []int{1, 2, 3}, Triple[int]{1, 2, 3}, true},
		{"Surplus", []int{1, 2, 3, 4}, Triple[int]{1, 2, 3}, true},
		{"Short", []int{1, 2}, Triple[int]{}, false},
		{"Empty", nil, Triple[int]{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, ok := TripleFromItems(tt.items)
			require.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expected, tr)
		})
	}
}

func TestFromSeq(t *testing.T) {
	p, ok := PairFromSeq(slices.Values([]int{1, 2, 3}))
	require.True(t, ok)
	assert.Equal(t, Pair[int]{1, 2}, p)

	_, ok = PairFromSeq(slices.Values([]int{1}))
	assert.False(t, ok)

	tr, ok := TripleFromSeq(slices.Values([]int{1, 2, 3, 4}))
	require.True(t, ok)
	assert.Equal(t, Triple[int]{1, 2, 3}, tr)

	_, ok = TripleFromSeq(slices.Values([]int{1, 2}))
	assert.False(t, ok)
}

// The sequence must not be advanced past the consumed arity.
func TestFromSeqStopsEarly(t *testing.T) {
	pulled := 0
	seq := func(yield func(int) bool) {
		for i := 0; ; i++ {
			pulled++
			if !yield(i) {
				return
			}
		}
	}

	_, ok := PairFromSeq(seq)
	require.True(t, ok)
	assert.Equal(t, 2, pulled)
}

func TestConverged(t *testing.T) {
	assert.Equal(t, Pair[float64]{2.5, 2.5}, ConvergedPair(2.5))
	assert.Equal(t, Triple[string]{"x", "x", "x"}, ConvergedTriple("x"))
}
