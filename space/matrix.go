package space

import "math"

// Mat3 is a 3x3 matrix in row-major order, used for rotations and other
// linear maps of Vector3.
type Mat3 [9]float64

// Identity3 returns the identity matrix.
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// MulVec applies the linear map to v.
func (m Mat3) MulVec(v Vector3) Vector3 {
	return Vector3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Mul returns the matrix product m * n.
func (m Mat3) Mul(n Mat3) Mat3 {
	var out Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var s float64
			for k := 0; k < 3; k++ {
				s += m[i*3+k] * n[k*3+j]
			}
			out[i*3+j] = s
		}
	}
	return out
}

// Transpose returns the transpose of m. For a rotation this is the inverse.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// RotationX returns the rotation by angle (radians) about the x axis.
func RotationX(angle float64) Mat3 {
	s, c := math.Sincos(angle)
	return Mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// RotationY returns the rotation by angle (radians) about the y axis.
func RotationY(angle float64) Mat3 {
	s, c := math.Sincos(angle)
	return Mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// RotationZ returns the rotation by angle (radians) about the z axis.
func RotationZ(angle float64) Mat3 {
	s, c := math.Sincos(angle)
	return Mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// RotationAxisAngle returns the rotation by angle (radians) about the given
// axis, via the Rodrigues formula. The axis is normalized first; a
// degenerate axis yields the identity.
func RotationAxisAngle(axis Vector3, angle float64) Mat3 {
	u, err := NewUnit(axis)
	if err != nil {
		return Identity3()
	}
	a := u.Get()

	s, c := math.Sincos(angle)
	t := 1 - c

	return Mat3{
		c + a.X*a.X*t, a.X*a.Y*t - a.Z*s, a.X*a.Z*t + a.Y*s,
		a.Y*a.X*t + a.Z*s, c + a.Y*a.Y*t, a.Y*a.Z*t - a.X*s,
		a.Z*a.X*t - a.Y*s, a.Z*a.Y*t + a.X*s, c + a.Z*a.Z*t,
	}
}
