package geometry

import (
	"math"

	"raytracer/internal/mathutil"
)

// Sphere is grounded on the teacher's pkg/geometry/sphere.go Sphere3D, but
// replaces its point-containment Contains/Intersects pair with analytic
// closest-hit/any-hit ray tests per the center-origin quadratic formula.
type Sphere struct {
	Origin        mathutil.Vector3
	Radius        float32
	MaterialIndex uint8
}

// roots returns the two intersection parameters, nearest first, and
// whether the ray intersects the sphere's surface at all.
func (s Sphere) roots(ray mathutil.Ray) (float32, float32, bool) {
	oc := s.Origin.Sub(ray.Origin)
	a := ray.Direction.Dot(ray.Direction)
	b := ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - a*c
	if discriminant <= 0 {
		return 0, 0, false
	}
	sq := float32(math.Sqrt(float64(discriminant)))
	return (b - sq) / a, (b + sq) / a, true
}

// Hit is the closest-hit test: hitRecord is filled only if a root lands in
// [ray.Min, ray.Max], preferring the nearer one.
func (s Sphere) Hit(ray mathutil.Ray) (HitRecord, bool) {
	t0, t1, ok := s.roots(ray)
	if !ok {
		return HitRecord{}, false
	}
	t := t0
	if t < ray.Min || t > ray.Max {
		t = t1
		if t < ray.Min || t > ray.Max {
			return HitRecord{}, false
		}
	}
	hitPoint := ray.At(t)
	return HitRecord{
		DidHit:        true,
		Origin:        hitPoint,
		Normal:        hitPoint.Sub(s.Origin).Normalized(),
		MaterialIndex: s.MaterialIndex,
		T:             t,
	}, true
}

// HitAny is the any-hit (shadow) test; cull mode does not apply to spheres.
func (s Sphere) HitAny(ray mathutil.Ray) bool {
	t0, t1, ok := s.roots(ray)
	if !ok {
		return false
	}
	if t0 >= ray.Min && t0 <= ray.Max {
		return true
	}
	return t1 >= ray.Min && t1 <= ray.Max
}
