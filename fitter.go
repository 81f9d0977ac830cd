package spatialgo

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/spatialgo/backend"
	"github.com/hupe1980/spatialgo/backend/gonumsvd"
	"github.com/hupe1980/spatialgo/lattice"
	"github.com/hupe1980/spatialgo/space"
)

// Fitter computes best-approximating planes for point clouds in a
// 3-dimensional Euclidean space. It is generic over the space capability so
// alternative point/vector representations plug in without touching the
// algorithm; the ambient dimension is validated at construction.
//
// A Fitter is immutable after construction and safe for concurrent use,
// provided each caller owns its input collection.
type Fitter[P any, V space.Normed[V]] struct {
	sp      space.Space[P, V]
	svd     backend.SVD
	logger  *Logger
	metrics MetricsCollector
	limit   int
}

// NewFitter creates a Fitter over the given space. It fails fast with
// ErrInvalidDimension if the space's ambient dimension is not 3: plane
// fitting is specified for the 3-dimensional case only.
func NewFitter[P any, V space.Normed[V]](sp space.Space[P, V], opts ...Option) (*Fitter[P, V], error) {
	if d := sp.Dimension(); d != 3 {
		return nil, &ErrInvalidDimension{Dimension: d}
	}

	o := options{
		svd:         gonumsvd.New(),
		logger:      NoopLogger(),
		metrics:     NoopMetricsCollector{},
		parallelism: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Fitter[P, V]{
		sp:      sp,
		svd:     o.svd,
		logger:  o.logger,
		metrics: o.metrics,
		limit:   o.parallelism,
	}, nil
}

// NewFitter3 creates a Fitter over the canonical E3 space. The dimension
// check cannot fail for E3.
func NewFitter3(opts ...Option) *Fitter[space.Point3, space.Vector3] {
	f, err := NewFitter[space.Point3, space.Vector3](space.E3{}, opts...)
	if err != nil {
		// E3 has dimension 3; only an option bug could land here.
		panic(err)
	}
	return f
}

// Fit computes the best-approximating plane of the points: the plane
// through their centroid whose normal is the direction of minimum variance
// of the centered cloud. At least 3 non-collinear points are required for a
// well-determined result; degenerate inputs either fail or produce an
// arbitrary normal.
//
// Failure causes are the sentinel errors in errors.go, matchable via
// errors.Is.
func (f *Fitter[P, V]) Fit(ctx context.Context, points []P) (Plane[P, V], error) {
	start := time.Now()

	plane, err := f.fit(points)

	f.metrics.RecordFit(len(points), time.Since(start), err)
	f.logger.LogFit(ctx, len(points), err)

	return plane, err
}

// TryFit is Fit with the failure cause collapsed to a presence flag.
func (f *Fitter[P, V]) TryFit(points []P) (Plane[P, V], bool) {
	plane, err := f.fit(points)
	return plane, err == nil
}

func (f *Fitter[P, V]) fit(points []P) (Plane[P, V], error) {
	var zero Plane[P, V]

	n := len(points)
	if n == 0 {
		return zero, ErrEmptyInput
	}

	c, ok := f.sp.Centroid(points)
	if !ok {
		return zero, ErrEmptyInput
	}

	// Flatten the centered vectors column-major: column k of the d x n
	// matrix is the k-th point minus the centroid.
	d := f.sp.Dimension()
	data := make([]float64, 0, n*d)
	for _, p := range points {
		data = append(data, f.sp.Coords(f.sp.Minus(p, c))...)
	}

	m, err := backend.NewMatrix(d, n, data)
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrFactorizationFailed, err)
	}

	// V is requested even though it is discarded: some factorization
	// drivers fail unless both factors are requested.
	fact, err := f.svd.Factor(m, true, true)
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrFactorizationFailed, err)
	}
	if fact.U == nil {
		return zero, ErrFactorizationFailed
	}

	i, ok := minSingularIndex(fact.Values)
	if !ok {
		return zero, ErrIncomparableSingularValues
	}

	col, ok := fact.U.Col(i)
	if !ok {
		return zero, ErrIndexOutOfRange
	}

	v, ok := f.sp.FromCoords(col)
	if !ok {
		return zero, ErrIndexOutOfRange
	}

	normal, err := space.NewUnit(v)
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrDegenerateNormal, err)
	}

	return Plane[P, V]{Origin: c, Normal: normal}, nil
}

// minSingularIndex selects the index of the minimum singular value under a
// total-order comparison. It returns ok=false if any comparison it performs
// is unordered (a non-finite singular value) or the slice is empty.
func minSingularIndex(values []float64) (int, bool) {
	if len(values) == 0 {
		return 0, false
	}

	best := 0
	for i := 1; i < len(values); i++ {
		c, ok := lattice.Compare(values[i], values[best])
		if !ok {
			return 0, false
		}
		if c < 0 {
			best = i
		}
	}

	return best, true
}

// FitAll fits every point set concurrently, bounded by the fitter's
// parallelism. The returned slice is positionally paired with sets; entries
// whose fit failed are zero-valued and their causes are joined into the
// returned error, each wrapped with its set index.
func (f *Fitter[P, V]) FitAll(ctx context.Context, sets [][]P) ([]Plane[P, V], error) {
	start := time.Now()

	planes := make([]Plane[P, V], len(sets))
	errs := make([]error, len(sets))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(f.limit)

	for i, points := range sets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			plane, err := f.fit(points)
			if err != nil {
				errs[i] = fmt.Errorf("set %d: %w", i, err)
				return nil
			}
			planes[i] = plane
			return nil
		})
	}

	// Worker funcs never return errors; Wait only propagates ctx setup.
	_ = g.Wait()

	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
		}
	}

	f.metrics.RecordBatchFit(len(sets), failed, time.Since(start))
	f.logger.LogBatchFit(ctx, len(sets), failed)

	return planes, errors.Join(errs...)
}
