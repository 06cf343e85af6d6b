package renderer

import (
	"testing"

	"raytracer/internal/camera"
	"raytracer/internal/geometry"
	"raytracer/internal/mathutil"
	"raytracer/internal/scene"
	"raytracer/internal/shading"
)

// singleSphereScene builds a minimal scene: one white Lambert sphere at the
// origin, one camera looking straight down +Z, one point light directly in
// front of the sphere, matching the shape of spec.md §8 scenario 6.
func singleSphereScene(light shading.Light) *scene.Scene {
	s := &scene.Scene{Camera: camera.New(mathutil.Vector3{Z: -5}, 90)}
	white := s.AddMaterial(shading.Lambert{Albedo: mathutil.ColorRGB{R: 1, G: 1, B: 1}, Kd: 1})
	s.AddSphere(geometry.Sphere{Origin: mathutil.Vector3{}, Radius: 1, MaterialIndex: white})
	s.Lights = append(s.Lights, light)
	return s
}

func TestRender_ObservedAreaBrightestAtCenter(t *testing.T) {
	s := singleSphereScene(shading.NewPointLight(mathutil.Vector3{Z: -5}, 50, mathutil.ColorRGB{R: 1, G: 1, B: 1}))
	r := New(8, 8)
	r.Mode = ObservedArea
	r.ShadowsEnabled = false

	if err := r.Render(s); err != nil {
		t.Fatalf("Render: %v", err)
	}

	center := r.pixels[4*r.Width+4]
	corner := r.pixels[0]
	if center.R <= corner.R {
		t.Errorf("expected center pixel brighter than a corner pixel that misses the sphere, got center=%v corner=%v", center, corner)
	}
}

func TestRender_RadianceModeIgnoresMaterial(t *testing.T) {
	light := shading.NewPointLight(mathutil.Vector3{Z: -5}, 50, mathutil.ColorRGB{R: 1, G: 0, B: 0})
	s := singleSphereScene(light)
	r := New(4, 4)
	r.Mode = Radiance
	r.ShadowsEnabled = false

	if err := r.Render(s); err != nil {
		t.Fatalf("Render: %v", err)
	}

	center := r.pixels[2*r.Width+2]
	if center.R == 0 || center.G != 0 {
		t.Errorf("Radiance mode should reflect only light color/falloff, got %v", center)
	}
}

func TestMSAA_ClampedAndRebuildsWeight(t *testing.T) {
	r := New(2, 2)
	if r.sampleCount != 1 {
		t.Fatalf("expected default sample count 1, got %d", r.sampleCount)
	}

	r.IncreaseMSAA()
	if r.sampleCount != 4 || len(r.sampleOffsets) != 4 {
		t.Fatalf("expected 4 samples after one increase, got count=%d offsets=%d", r.sampleCount, len(r.sampleOffsets))
	}

	r.IncreaseMSAA()
	if r.sampleCount != 16 {
		t.Fatalf("expected 16 samples after two increases, got %d", r.sampleCount)
	}

	r.IncreaseMSAA()
	if r.sampleCount != 16 {
		t.Errorf("expected sample count clamped to 16, got %d", r.sampleCount)
	}

	r.DecreaseMSAA()
	r.DecreaseMSAA()
	r.DecreaseMSAA()
	if r.sampleCount != 1 {
		t.Errorf("expected sample count clamped to 1, got %d", r.sampleCount)
	}
	if r.perSampleWeight != 1 {
		t.Errorf("expected perSampleWeight 1 at sample count 1, got %f", r.perSampleWeight)
	}
}

func TestCycleLightingMode_Wraps(t *testing.T) {
	r := New(1, 1)
	modes := []LightingMode{r.Mode}
	for i := 0; i < 4; i++ {
		r.CycleLightingMode()
		modes = append(modes, r.Mode)
	}
	if modes[0] != modes[4] {
		t.Errorf("expected mode to wrap back to %v after 4 cycles, got %v", modes[0], modes[4])
	}
}

func TestRender_MaxToOneNeverExceedsOne(t *testing.T) {
	s := singleSphereScene(shading.NewPointLight(mathutil.Vector3{Z: -5}, 10000, mathutil.ColorRGB{R: 1, G: 1, B: 1}))
	r := New(4, 4)
	r.Mode = Combined
	r.ShadowsEnabled = false

	if err := r.Render(s); err != nil {
		t.Fatalf("Render: %v", err)
	}
	for i, c := range r.pixels {
		if c.R > 1 || c.G > 1 || c.B > 1 {
			t.Fatalf("pixel %d exceeds 1 after MaxToOne: %v", i, c)
		}
	}
}
