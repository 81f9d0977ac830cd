// Package gonumsvd implements the backend factorization capability on top
// of gonum's LAPACK-derived SVD.
package gonumsvd

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/spatialgo/backend"
)

// ErrFactorize is returned when the underlying factorization does not
// converge.
var ErrFactorize = errors.New("gonumsvd: factorization did not converge")

// Backend computes thin singular value decompositions via gonum mat.SVD.
// The zero value is ready to use and safe for concurrent callers.
type Backend struct{}

// New returns a new gonum-backed SVD.
func New() *Backend {
	return &Backend{}
}

// Factor decomposes a. Values are returned in gonum's descending order;
// callers must not rely on that, per the backend contract.
func (b *Backend) Factor(a backend.Matrix, wantU, wantV bool) (backend.Factorization, error) {
	if len(a.Data) != a.Rows*a.Cols {
		return backend.Factorization{}, fmt.Errorf("gonumsvd: %w: %dx%d with %d elements",
			backend.ErrBadShape, a.Rows, a.Cols, len(a.Data))
	}

	m := mat.NewDense(a.Rows, a.Cols, nil)
	for j := 0; j < a.Cols; j++ {
		for i := 0; i < a.Rows; i++ {
			m.Set(i, j, a.At(i, j))
		}
	}

	kind := mat.SVDNone
	if wantU {
		kind |= mat.SVDThinU
	}
	if wantV {
		kind |= mat.SVDThinV
	}

	var svd mat.SVD
	if ok := svd.Factorize(m, kind); !ok {
		return backend.Factorization{}, ErrFactorize
	}

	f := backend.Factorization{
		Values: svd.Values(nil),
	}
	if wantU {
		var u mat.Dense
		svd.UTo(&u)
		f.U = toColumnMajor(&u)
	}
	if wantV {
		var v mat.Dense
		svd.VTo(&v)
		f.V = toColumnMajor(&v)
	}

	return f, nil
}

func toColumnMajor(d *mat.Dense) *backend.Matrix {
	rows, cols := d.Dims()
	data := make([]float64, rows*cols)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			data[j*rows+i] = d.At(i, j)
		}
	}
	return &backend.Matrix{Rows: rows, Cols: cols, Data: data}
}
