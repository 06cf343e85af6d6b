package geometry

import "raytracer/internal/mathutil"

// Plane is grounded on the teacher's pkg/geometry/plane.go, replaced with
// the spec's analytic ray/plane intersection.
type Plane struct {
	Origin        mathutil.Vector3
	Normal        mathutil.Vector3
	MaterialIndex uint8
}

func (p Plane) t(ray mathutil.Ray) (float32, bool) {
	denom := ray.Direction.Dot(p.Normal)
	t := p.Origin.Sub(ray.Origin).Dot(p.Normal) / denom
	return t, t > ray.Min && t < ray.Max
}

// Hit is the closest-hit test. The stored normal is returned as-is,
// oriented however the plane was constructed.
func (p Plane) Hit(ray mathutil.Ray) (HitRecord, bool) {
	t, ok := p.t(ray)
	if !ok {
		return HitRecord{}, false
	}
	return HitRecord{
		DidHit:        true,
		Origin:        ray.At(t),
		Normal:        p.Normal,
		MaterialIndex: p.MaterialIndex,
		T:             t,
	}, true
}

func (p Plane) HitAny(ray mathutil.Ray) bool {
	_, ok := p.t(ray)
	return ok
}
