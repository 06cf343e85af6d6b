package shading

import (
	"testing"

	"raytracer/internal/geometry"
	"raytracer/internal/mathutil"
)

func TestLambert_Shade(t *testing.T) {
	mat := Lambert{Albedo: mathutil.ColorRGB{R: 1, G: 1, B: 1}, Kd: 1}
	c := mat.Shade(geometry.HitRecord{}, mathutil.UnitY, mathutil.UnitY)
	want := 1 / pi32
	if !mathutil.AreEqual(c.R, want, 1e-5) || !mathutil.AreEqual(c.G, want, 1e-5) || !mathutil.AreEqual(c.B, want, 1e-5) {
		t.Errorf("Shade() = %v, want uniform %v", c, want)
	}
}

func TestCookTorrance_GrazingAngleIsBlack(t *testing.T) {
	mat := CookTorrance{Albedo: mathutil.ColorRGB{R: 1, G: 1, B: 1}, Metalness: 0, Roughness: 0.5}
	hit := geometry.HitRecord{Normal: mathutil.UnitY}

	c := mat.Shade(hit, mathutil.UnitX, mathutil.UnitY) // n.l == 0
	if c != mathutil.ColorBlack {
		t.Errorf("expected black at grazing light angle, got %v", c)
	}

	c = mat.Shade(hit, mathutil.UnitY, mathutil.UnitX) // n.v == 0
	if c != mathutil.ColorBlack {
		t.Errorf("expected black at grazing view angle, got %v", c)
	}
}

func TestPointLight_RadianceInverseSquare(t *testing.T) {
	l := NewPointLight(mathutil.Vector3{Y: 2}, 1, mathutil.ColorRGB{R: 1, G: 1, B: 1})
	near := l.GetRadiance(mathutil.Vector3{})
	far := l.GetRadiance(mathutil.Vector3{Y: -2}) // twice the distance (4 vs 2)

	ratio := near.R / far.R
	if !mathutil.AreEqual(ratio, 4, 1e-3) {
		t.Errorf("expected radiance to fall off as 1/d^2 (ratio 4), got %v", ratio)
	}
}

func TestDirectionalLight_RadianceIndependentOfPosition(t *testing.T) {
	l := NewDirectionalLight(mathutil.Vector3{Y: -1}, 2, mathutil.ColorRGB{R: 1, G: 1, B: 1})
	a := l.GetRadiance(mathutil.Vector3{})
	b := l.GetRadiance(mathutil.Vector3{X: 100, Y: 100, Z: 100})
	if a != b {
		t.Errorf("directional radiance should not depend on position: %v vs %v", a, b)
	}
}
