package space

// Point3 is an element of 3-dimensional Euclidean space.
type Point3 struct {
	X, Y, Z float64
}

// Sub returns the vector from q to p (point minus point).
func (p Point3) Sub(q Point3) Vector3 {
	return Vector3{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Translate returns p displaced by v.
func (p Point3) Translate(v Vector3) Point3 {
	return Point3{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}

// Vector returns the position vector of p relative to the origin.
func (p Point3) Vector() Vector3 {
	return Vector3(p)
}

// Centroid3 returns the arithmetic mean of the points. It returns ok=false
// for an empty collection.
func Centroid3(points []Point3) (Point3, bool) {
	if len(points) == 0 {
		return Point3{}, false
	}

	var sum Vector3
	for _, p := range points {
		sum = sum.Add(p.Vector())
	}
	sum = sum.Scale(1 / float64(len(points)))

	return Point3(sum), true
}

// Point2 is an element of 2-dimensional Euclidean space.
type Point2 struct {
	X, Y float64
}

// Sub returns the vector from q to p.
func (p Point2) Sub(q Point2) Vector2 {
	return Vector2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Translate returns p displaced by v.
func (p Point2) Translate(v Vector2) Point2 {
	return Point2{X: p.X + v.X, Y: p.Y + v.Y}
}

// Vector returns the position vector of p relative to the origin.
func (p Point2) Vector() Vector2 {
	return Vector2(p)
}

// Centroid2 returns the arithmetic mean of the points. It returns ok=false
// for an empty collection.
func Centroid2(points []Point2) (Point2, bool) {
	if len(points) == 0 {
		return Point2{}, false
	}

	var sum Vector2
	for _, p := range points {
		sum = sum.Add(p.Vector())
	}
	sum = sum.Scale(1 / float64(len(points)))

	return Point2(sum), true
}
