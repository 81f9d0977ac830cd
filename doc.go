// Package spatialgo provides geometric primitives over Euclidean spaces:
// SVD-based plane fitting for 3-dimensional point clouds, validated unit
// vectors, generic meet/join ordering, and point-cloud handling with
// snapshot persistence.
//
// # Quick Start
//
//	ctx := context.Background()
//	fitter := spatialgo.NewFitter3()
//
//	plane, err := fitter.Fit(ctx, []space.Point3{
//	    {X: 1, Y: 0, Z: 0},
//	    {X: 0.5, Y: 0.5, Z: 0},
//	    {X: 0, Y: 1, Z: 0},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(plane.Origin, plane.Normal.Get())
//
// The fitted origin is the centroid of the input and the normal is the
// direction of minimum variance of the centered cloud, computed via the
// numeric backend's singular value decomposition. At least 3 non-collinear
// points are required for a well-determined plane.
//
// # Failure Causes
//
// All fitting failures are deterministic functions of the input. Fit
// disambiguates them via sentinel errors (ErrEmptyInput,
// ErrFactorizationFailed, ErrIncomparableSingularValues,
// ErrIndexOutOfRange, ErrDegenerateNormal); TryFit collapses them to a
// presence flag for callers that do not care about the cause.
//
// # Swappable Collaborators
//
// The space capability (centroid, point difference, coordinate round trip)
// and the factorization backend are both interfaces: alternative point
// representations and numeric providers plug in without touching the
// fitting algorithm. The gonum-backed SVD in backend/gonumsvd is the
// default.
//
// # Batch Fitting and Persistence
//
// FitAll fits many point sets concurrently with bounded parallelism. The
// cloud, snapshot and blobstore packages cover point-cloud collections,
// compressed serialization, and local or object storage.
package spatialgo
