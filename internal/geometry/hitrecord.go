package geometry

import "raytracer/internal/mathutil"

// HitRecord describes the closest intersection found along a ray.
//
// Invariant when DidHit: Origin = ray.Origin + ray.Direction*T,
// T is within the ray's [Min,Max] interval, and |Normal| == 1.
type HitRecord struct {
	DidHit        bool
	Origin        mathutil.Vector3
	Normal        mathutil.Vector3
	MaterialIndex uint8
	T             float32
}

// CullMode controls which side of a triangle is considered front-facing
// for closest-hit tests; any-hit (shadow) tests invert this decision, see
// Triangle.HitAny.
type CullMode int

const (
	BackFaceCulling CullMode = iota
	FrontFaceCulling
	NoCulling
)
