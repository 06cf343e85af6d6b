package mathutil

import "math"

// Vector3 is an ordered triple of 32-bit floats, used for both points and
// directions.
type Vector3 struct{ X, Y, Z float32 }

var (
	UnitX = Vector3{X: 1}
	UnitY = Vector3{Y: 1}
	UnitZ = Vector3{Z: 1}
	Zero  = Vector3{}
)

func (a Vector3) Add(b Vector3) Vector3 {
	return Vector3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func (a Vector3) Sub(b Vector3) Vector3 {
	return Vector3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func (a Vector3) Mul(s float32) Vector3 {
	return Vector3{a.X * s, a.Y * s, a.Z * s}
}

func (a Vector3) Div(s float32) Vector3 {
	return Vector3{a.X / s, a.Y / s, a.Z / s}
}

// MulVec is a component-wise product.
func (a Vector3) MulVec(b Vector3) Vector3 {
	return Vector3{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

func (a Vector3) Dot(b Vector3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func (a Vector3) Cross(b Vector3) Vector3 {
	return Vector3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func (a Vector3) SqrMagnitude() float32 {
	return a.Dot(a)
}

func (a Vector3) Magnitude() float32 {
	return float32(math.Sqrt(float64(a.SqrMagnitude())))
}

// Normalize scales a in place to unit length and returns the pre-normalize magnitude.
func (a *Vector3) Normalize() float32 {
	m := a.Magnitude()
	if m == 0 {
		return 0
	}
	*a = a.Div(m)
	return m
}

// Normalized returns a unit-length copy of a, leaving a untouched.
func (a Vector3) Normalized() Vector3 {
	m := a.Magnitude()
	if m == 0 {
		return a
	}
	return a.Div(m)
}

// At returns the component indexed 0=X, 1=Y, 2=Z.
func (a Vector3) At(i int) float32 {
	switch i {
	case 0:
		return a.X
	case 1:
		return a.Y
	default:
		return a.Z
	}
}

// Lerp linearly interpolates between a and b, grounded on the teacher's
// Point3D.Lerp used by pkg/motion's keyframe interpolator.
func (a Vector3) Lerp(b Vector3, t float32) Vector3 {
	return Vector3{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
	}
}

// Vector4 is a homogeneous row of a Matrix.
type Vector4 struct{ X, Y, Z, W float32 }

func (a Vector4) ToVector3() Vector3 {
	return Vector3{a.X, a.Y, a.Z}
}
