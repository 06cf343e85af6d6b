package geometry

import (
	"testing"

	"raytracer/internal/mathutil"
)

func TestSphere_Hit_CenterOrigin(t *testing.T) {
	s := Sphere{Origin: mathutil.Zero, Radius: 1}
	ray := mathutil.NewRay(mathutil.Vector3{Z: -3}, mathutil.UnitZ)

	hit, ok := s.Hit(ray)
	if !ok || !hit.DidHit {
		t.Fatalf("expected a hit")
	}
	if !mathutil.AreEqual(hit.T, 2, 1e-5) {
		t.Errorf("t = %v, want 2", hit.T)
	}
	want := mathutil.Vector3{Z: -1}
	if !mathutil.AreEqual(hit.Origin.X, want.X, 1e-5) || !mathutil.AreEqual(hit.Origin.Y, want.Y, 1e-5) || !mathutil.AreEqual(hit.Origin.Z, want.Z, 1e-5) {
		t.Errorf("origin = %v, want %v", hit.Origin, want)
	}
	if !mathutil.AreEqual(hit.Normal.Z, -1, 1e-5) {
		t.Errorf("normal = %v, want (0,0,-1)", hit.Normal)
	}
}

func TestSphere_HitAny_MatchesHit(t *testing.T) {
	s := Sphere{Origin: mathutil.Zero, Radius: 1}
	hitRay := mathutil.NewRay(mathutil.Vector3{Z: -3}, mathutil.UnitZ)
	missRay := mathutil.NewRay(mathutil.Vector3{Z: -3}, mathutil.UnitX)

	if !s.HitAny(hitRay) {
		t.Errorf("expected HitAny true")
	}
	if s.HitAny(missRay) {
		t.Errorf("expected HitAny false")
	}
}

func TestSphere_NormalIsUnit(t *testing.T) {
	s := Sphere{Origin: mathutil.Vector3{X: 2, Y: 1}, Radius: 3}
	ray := mathutil.NewRay(mathutil.Vector3{X: 2, Y: 1, Z: -10}, mathutil.UnitZ)
	hit, ok := s.Hit(ray)
	if !ok {
		t.Fatalf("expected a hit")
	}
	if !mathutil.AreEqual(hit.Normal.Magnitude(), 1, 1e-5) {
		t.Errorf("normal not unit length: %v", hit.Normal.Magnitude())
	}
}
