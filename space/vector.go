package space

import "math"

// Vector3 is a displacement in 3-dimensional Euclidean space, the
// difference type of Point3.
type Vector3 struct {
	X, Y, Z float64
}

// Add returns v + w.
func (v Vector3) Add(w Vector3) Vector3 {
	return Vector3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns v - w.
func (v Vector3) Sub(w Vector3) Vector3 {
	return Vector3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Scale returns v scaled by s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Neg returns -v.
func (v Vector3) Neg() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns the dot product of v and w.
func (v Vector3) Dot(w Vector3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product of v and w.
func (v Vector3) Cross(w Vector3) Vector3 {
	return Vector3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// SquaredNorm returns the squared Euclidean length of v.
func (v Vector3) SquaredNorm() float64 {
	return v.Dot(v)
}

// Norm returns the Euclidean length of v.
func (v Vector3) Norm() float64 {
	return math.Sqrt(v.SquaredNorm())
}

// Coords returns the coordinates of v as an ordered sequence of exactly
// three scalars. The round trip through FromCoords is exact for finite
// values.
func (v Vector3) Coords() []float64 {
	return []float64{v.X, v.Y, v.Z}
}

// Vector2 is a displacement in 2-dimensional Euclidean space.
type Vector2 struct {
	X, Y float64
}

// Add returns v + w.
func (v Vector2) Add(w Vector2) Vector2 {
	return Vector2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v - w.
func (v Vector2) Sub(w Vector2) Vector2 {
	return Vector2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Scale returns v scaled by s.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Neg returns -v.
func (v Vector2) Neg() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of v and w.
func (v Vector2) Dot(w Vector2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// SquaredNorm returns the squared Euclidean length of v.
func (v Vector2) SquaredNorm() float64 {
	return v.Dot(v)
}

// Norm returns the Euclidean length of v.
func (v Vector2) Norm() float64 {
	return math.Sqrt(v.SquaredNorm())
}

// Coords returns the coordinates of v as an ordered sequence of exactly two
// scalars.
func (v Vector2) Coords() []float64 {
	return []float64{v.X, v.Y}
}
