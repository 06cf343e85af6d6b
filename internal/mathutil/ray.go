package mathutil

import "math"

// Ray is a parameterized line with a scalar validity interval [Min, Max].
// Direction is expected unit-length by the intersection library. Min
// defaults to a small positive epsilon for shadow queries to avoid
// self-intersection; Max may be finite (point-light shadow) or +Inf
// (directional light shadow, or a primary ray).
type Ray struct {
	Origin, Direction Vector3
	Min, Max          float32
}

// Infinity is the Max used by directional-light shadow rays and primary rays.
var Infinity = float32(math.Inf(1))

func NewRay(origin, direction Vector3) Ray {
	return Ray{Origin: origin, Direction: direction, Min: Epsilon, Max: Infinity}
}

func (r Ray) At(t float32) Vector3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
