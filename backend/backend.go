// Package backend defines the numeric factorization capability used by
// geometric predicates. The factorization routine itself is an opaque
// collaborator: implementations live in sub-packages and are swappable
// without touching the algorithms that consume them.
package backend

import (
	"errors"
	"fmt"
)

// ErrBadShape is returned when matrix dimensions and data length disagree.
var ErrBadShape = errors.New("backend: invalid matrix shape")

// Matrix is a dense column-major matrix, the flat buffer format composite
// adapters produce: element (i, j) lives at Data[j*Rows+i].
type Matrix struct {
	Rows, Cols int
	Data       []float64
}

// NewMatrix validates shape against the data length.
func NewMatrix(rows, cols int, data []float64) (Matrix, error) {
	if rows <= 0 || cols < 0 {
		return Matrix{}, fmt.Errorf("%w: %dx%d", ErrBadShape, rows, cols)
	}
	if len(data) != rows*cols {
		return Matrix{}, fmt.Errorf("%w: %dx%d with %d elements", ErrBadShape, rows, cols, len(data))
	}
	return Matrix{Rows: rows, Cols: cols, Data: data}, nil
}

// At returns element (i, j). Bounds are the caller's responsibility.
func (m Matrix) At(i, j int) float64 {
	return m.Data[j*m.Rows+i]
}

// Col returns column j as a slice of Rows scalars, or ok=false if j is out
// of range. The slice aliases the matrix data.
func (m Matrix) Col(j int) ([]float64, bool) {
	if j < 0 || j >= m.Cols {
		return nil, false
	}
	return m.Data[j*m.Rows : (j+1)*m.Rows], true
}

// Factorization is the result of a singular value decomposition.
type Factorization struct {
	// U holds the left singular vectors as columns, or is nil when not
	// requested. Values are positionally paired with U's columns.
	U *Matrix

	// Values are the singular values. Their order is implementation
	// defined; callers must not assume sorting.
	Values []float64

	// V holds the right singular vectors as columns, or is nil when not
	// requested.
	V *Matrix
}

// SVD is the factorization capability. Implementations must be safe for
// concurrent use by independent callers.
type SVD interface {
	// Factor decomposes a into singular values and, as requested, left and
	// right singular vector matrices. Some underlying drivers fail unless
	// both factors are requested; callers wanting only U should still
	// consider passing wantV=true and discarding V.
	Factor(a Matrix, wantU, wantV bool) (Factorization, error)
}
