package geometry

import "raytracer/internal/mathutil"

// Triangle is grounded on original_source/project/src/Utils.h's stubbed
// HitTest_Triangle (never implemented there) and spec'd fully here:
// Möller-style ray/triangle intersection expressed with a precomputed
// face normal: the plane hit uses that normal, and the inside test checks
// each edge's cross product against it.
//
// Invariant: Normal is consistent with CW winding, i.e.
// normalize(cross(V1-V0, V2-V0)), as produced by the mesh loader.
type Triangle struct {
	V0, V1, V2    mathutil.Vector3
	Normal        mathutil.Vector3
	Cull          CullMode
	MaterialIndex uint8
}

func (tr Triangle) Hit(ray mathutil.Ray) (HitRecord, bool) {
	t, ok := intersectTriangle(tr.V0, tr.V1, tr.V2, tr.Normal, ray, tr.Cull, false)
	if !ok {
		return HitRecord{}, false
	}
	return HitRecord{
		DidHit:        true,
		Origin:        ray.At(t),
		Normal:        tr.Normal,
		MaterialIndex: tr.MaterialIndex,
		T:             t,
	}, true
}

func (tr Triangle) HitAny(ray mathutil.Ray) bool {
	_, ok := intersectTriangle(tr.V0, tr.V1, tr.V2, tr.Normal, ray, tr.Cull, true)
	return ok
}

// intersectTriangle is shared by Triangle and TriangleMesh (which tests
// many triangles per ray without allocating a Triangle value each time).
//
// anyHit inverts the cull decision relative to closest-hit: shadow rays
// travel from the surface toward the light, so a back-face that occludes
// the closest-hit camera ray must still register as a hit for the
// shadow ray. This is unusual but intentional — see the scene's DoesHit
// contract.
func intersectTriangle(v0, v1, v2, normal mathutil.Vector3, ray mathutil.Ray, cull CullMode, anyHit bool) (float32, bool) {
	nd := normal.Dot(ray.Direction)

	if !anyHit {
		switch cull {
		case BackFaceCulling:
			if nd > 0 {
				return 0, false
			}
		case FrontFaceCulling:
			if nd <= 0 {
				return 0, false
			}
		case NoCulling:
			if nd > -mathutil.Epsilon && nd < mathutil.Epsilon {
				return 0, false
			}
		}
	} else {
		switch cull {
		case BackFaceCulling:
			if nd < 0 {
				return 0, false
			}
		case FrontFaceCulling:
			if nd > 0 {
				return 0, false
			}
		case NoCulling:
			if nd > -mathutil.Epsilon && nd < mathutil.Epsilon {
				return 0, false
			}
		}
	}

	t := v0.Sub(ray.Origin).Dot(normal) / nd
	if t < ray.Min || t > ray.Max {
		return 0, false
	}

	p := ray.At(t)

	e0 := v1.Sub(v0)
	if e0.Cross(p.Sub(v0)).Dot(normal) < 0 {
		return 0, false
	}
	e1 := v2.Sub(v1)
	if e1.Cross(p.Sub(v1)).Dot(normal) < 0 {
		return 0, false
	}
	e2 := v0.Sub(v2)
	if e2.Cross(p.Sub(v2)).Dot(normal) < 0 {
		return 0, false
	}

	return t, true
}
