package mathutil

import "math"

// Matrix is a row-major 4x4 homogeneous affine transform, stored as four
// rows. Grounded on original_source's Matrix.cpp, which stores the same
// shape as four Vector4 columns-of-data. TransformVector/TransformPoint
// take each row's dot product with the vector, so the first three columns
// are the images of the X/Y/Z axes and the W column holds the translation.
type Matrix struct {
	Rows [4]Vector4
}

// Identity is the multiplicative identity matrix.
var Identity = Matrix{Rows: [4]Vector4{
	{X: 1},
	{Y: 1},
	{Z: 1},
	{W: 1},
}}

// FromBasis builds a matrix whose first three columns are the given basis
// vectors and whose W column is the origin/translation; the fourth row is
// (0,0,0,1). Used by Camera.CalculateCameraToWorld, whose
// columns are (right, up, forward, origin) per the source contract.
func FromBasis(right, up, forward, origin Vector3) Matrix {
	return Matrix{Rows: [4]Vector4{
		{X: right.X, Y: up.X, Z: forward.X, W: origin.X},
		{X: right.Y, Y: up.Y, Z: forward.Y, W: origin.Y},
		{X: right.Z, Y: up.Z, Z: forward.Z, W: origin.Z},
		{W: 1},
	}}
}

// TransformVector applies only the rotation/scale part of m (the
// translation column is ignored).
func (m Matrix) TransformVector(v Vector3) Vector3 {
	return Vector3{
		X: m.Rows[0].X*v.X + m.Rows[0].Y*v.Y + m.Rows[0].Z*v.Z,
		Y: m.Rows[1].X*v.X + m.Rows[1].Y*v.Y + m.Rows[1].Z*v.Z,
		Z: m.Rows[2].X*v.X + m.Rows[2].Y*v.Y + m.Rows[2].Z*v.Z,
	}
}

// TransformPoint applies the full affine transform, including translation.
func (m Matrix) TransformPoint(p Vector3) Vector3 {
	return m.TransformVector(p).Add(Vector3{X: m.Rows[0].W, Y: m.Rows[1].W, Z: m.Rows[2].W})
}

// Translation returns the translation column of m.
func (m Matrix) Translation() Vector3 {
	return Vector3{X: m.Rows[0].W, Y: m.Rows[1].W, Z: m.Rows[2].W}
}

// Multiply returns m*other, composing transforms so that
// m.Multiply(other).TransformPoint(p) == m.TransformPoint(other.TransformPoint(p)).
func (m Matrix) Multiply(o Matrix) Matrix {
	var out Matrix
	for r := 0; r < 4; r++ {
		mr := m.Rows[r]
		out.Rows[r] = Vector4{
			X: mr.X*o.Rows[0].X + mr.Y*o.Rows[1].X + mr.Z*o.Rows[2].X + mr.W*o.Rows[3].X,
			Y: mr.X*o.Rows[0].Y + mr.Y*o.Rows[1].Y + mr.Z*o.Rows[2].Y + mr.W*o.Rows[3].Y,
			Z: mr.X*o.Rows[0].Z + mr.Y*o.Rows[1].Z + mr.Z*o.Rows[2].Z + mr.W*o.Rows[3].Z,
			W: mr.X*o.Rows[0].W + mr.Y*o.Rows[1].W + mr.Z*o.Rows[2].W + mr.W*o.Rows[3].W,
		}
	}
	return out
}

// Transpose returns the transpose of m, leaving m untouched.
func (m Matrix) Transpose() Matrix {
	var out Matrix
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out.set(r, c, m.at(c, r))
		}
	}
	return out
}

// TransposeInPlace transposes m in place.
func (m *Matrix) TransposeInPlace() {
	*m = m.Transpose()
}

func (m Matrix) at(r, c int) float32 {
	row := m.Rows[r]
	switch c {
	case 0:
		return row.X
	case 1:
		return row.Y
	case 2:
		return row.Z
	default:
		return row.W
	}
}

func (m *Matrix) set(r, c int, v float32) {
	switch c {
	case 0:
		m.Rows[r].X = v
	case 1:
		m.Rows[r].Y = v
	case 2:
		m.Rows[r].Z = v
	default:
		m.Rows[r].W = v
	}
}

func CreateTranslation(t Vector3) Matrix {
	m := Identity
	m.Rows[0].W = t.X
	m.Rows[1].W = t.Y
	m.Rows[2].W = t.Z
	return m
}

func CreateScale(s Vector3) Matrix {
	m := Identity
	m.Rows[0].X = s.X
	m.Rows[1].Y = s.Y
	m.Rows[2].Z = s.Z
	return m
}

// CreateRotationX builds a rotation of pitch radians about the X axis.
func CreateRotationX(pitch float32) Matrix {
	c, s := float32(math.Cos(float64(pitch))), float32(math.Sin(float64(pitch)))
	m := Identity
	m.Rows[1] = Vector4{Y: c, Z: -s}
	m.Rows[2] = Vector4{Y: s, Z: c}
	return m
}

// CreateRotationY builds a rotation of yaw radians about the Y axis.
func CreateRotationY(yaw float32) Matrix {
	c, s := float32(math.Cos(float64(yaw))), float32(math.Sin(float64(yaw)))
	m := Identity
	m.Rows[0] = Vector4{X: c, Z: s}
	m.Rows[2] = Vector4{X: -s, Z: c}
	return m
}

// CreateRotationZ builds a rotation of roll radians about the Z axis.
func CreateRotationZ(roll float32) Matrix {
	c, s := float32(math.Cos(float64(roll))), float32(math.Sin(float64(roll)))
	m := Identity
	m.Rows[0] = Vector4{X: c, Y: -s}
	m.Rows[1] = Vector4{X: s, Y: c}
	return m
}

// CreateRotation composes a rotation applied X then Y then Z, matching the
// source's CreateRotation(pitch, yaw, roll).
func CreateRotation(pitch, yaw, roll float32) Matrix {
	return CreateRotationZ(roll).Multiply(CreateRotationY(yaw)).Multiply(CreateRotationX(pitch))
}
