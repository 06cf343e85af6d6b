package geometry

import "raytracer/internal/mathutil"

// AABB is an axis-aligned bounding box, grounded on the teacher's
// pkg/math/AABB.go AABB3D.IntersectRay slab test. Unlike the teacher's
// version, division by a zero direction component is not special-cased:
// it produces +/-Inf, and the tmin/tmax fold-in still misses correctly,
// per the spec's numerical-edges note.
type AABB struct {
	Min, Max mathutil.Vector3
}

func (a AABB) Expand(p mathutil.Vector3) AABB {
	return AABB{
		Min: mathutil.Vector3{X: mathutil.Min(a.Min.X, p.X), Y: mathutil.Min(a.Min.Y, p.Y), Z: mathutil.Min(a.Min.Z, p.Z)},
		Max: mathutil.Vector3{X: mathutil.Max(a.Max.X, p.X), Y: mathutil.Max(a.Max.Y, p.Y), Z: mathutil.Max(a.Max.Z, p.Z)},
	}
}

// EmptyAABB returns a box with inverted bounds, ready to be grown by Expand.
func EmptyAABB() AABB {
	inf := mathutil.Infinity
	return AABB{
		Min: mathutil.Vector3{X: inf, Y: inf, Z: inf},
		Max: mathutil.Vector3{X: -inf, Y: -inf, Z: -inf},
	}
}

// IntersectRay performs the slab test described in spec §4.1: miss if
// tmax <= 0 or tmax < tmin.
func (a AABB) IntersectRay(ray mathutil.Ray) bool {
	tx1 := (a.Min.X - ray.Origin.X) / ray.Direction.X
	tx2 := (a.Max.X - ray.Origin.X) / ray.Direction.X
	tmin, tmax := minMax(tx1, tx2)

	ty1 := (a.Min.Y - ray.Origin.Y) / ray.Direction.Y
	ty2 := (a.Max.Y - ray.Origin.Y) / ray.Direction.Y
	tymin, tymax := minMax(ty1, ty2)
	tmin = mathutil.Max(tmin, tymin)
	tmax = mathutil.Min(tmax, tymax)

	tz1 := (a.Min.Z - ray.Origin.Z) / ray.Direction.Z
	tz2 := (a.Max.Z - ray.Origin.Z) / ray.Direction.Z
	tzmin, tzmax := minMax(tz1, tz2)
	tmin = mathutil.Max(tmin, tzmin)
	tmax = mathutil.Min(tmax, tzmax)

	if tmax <= 0 || tmax < tmin {
		return false
	}
	return true
}

func minMax(a, b float32) (float32, float32) {
	if a > b {
		return b, a
	}
	return a, b
}
