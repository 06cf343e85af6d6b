package geometry

import (
	"testing"

	"raytracer/internal/mathutil"
)

func unitTriangle(cull CullMode) Triangle {
	v0 := mathutil.Vector3{X: -1, Y: -1}
	v1 := mathutil.Vector3{X: 1, Y: -1}
	v2 := mathutil.Vector3{Y: 1}
	normal := v1.Sub(v0).Cross(v2.Sub(v0)).Normalized()
	return Triangle{V0: v0, V1: v1, V2: v2, Normal: normal, Cull: cull}
}

func TestTriangle_Hit_FrontOn(t *testing.T) {
	tri := unitTriangle(NoCulling)
	ray := mathutil.NewRay(mathutil.Vector3{Z: -5}, mathutil.UnitZ)
	hit, ok := tri.Hit(ray)
	if !ok || !hit.DidHit {
		t.Fatalf("expected a hit")
	}
	if !mathutil.AreEqual(hit.T, 5, 1e-4) {
		t.Errorf("t = %v, want 5", hit.T)
	}
}

func TestTriangle_Hit_OutsideEdgeMisses(t *testing.T) {
	tri := unitTriangle(NoCulling)
	ray := mathutil.NewRay(mathutil.Vector3{X: 5, Z: -5}, mathutil.UnitZ)
	if _, ok := tri.Hit(ray); ok {
		t.Errorf("expected a miss outside the triangle's edges")
	}
}

func TestTriangle_AnyHitInvertsCullRelativeToClosestHit(t *testing.T) {
	// unitTriangle's normal is +Z. A ray travelling in -Z (arriving from
	// +Z) has n.d < 0 and is the front face under BackFaceCulling; a ray
	// travelling in +Z (arriving from -Z) has n.d > 0 and is the back face.
	tri := unitTriangle(BackFaceCulling)
	frontRay := mathutil.NewRay(mathutil.Vector3{Z: 5}, mathutil.Vector3{Z: -1})
	backRay := mathutil.NewRay(mathutil.Vector3{Z: -5}, mathutil.UnitZ)

	if _, ok := tri.Hit(frontRay); !ok {
		t.Errorf("closest-hit should see the front face")
	}
	if _, ok := tri.Hit(backRay); ok {
		t.Errorf("closest-hit with BackFaceCulling should reject the back face")
	}

	// any-hit inverts the decision: it must now reject what closest-hit
	// accepted and accept what closest-hit rejected.
	if tri.HitAny(frontRay) {
		t.Errorf("any-hit with BackFaceCulling should reject the front face")
	}
	if !tri.HitAny(backRay) {
		t.Errorf("any-hit with BackFaceCulling should accept the back face")
	}
}
