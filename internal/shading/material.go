package shading

import (
	"math"

	"raytracer/internal/geometry"
	"raytracer/internal/mathutil"
)

// Material dispatches the BRDF evaluation that was the teacher's
// pkg/shading/phong.go ShadedColor monolith, split per spec into a
// polymorphic capability so each reflectance model is independently
// testable. lightDir and viewDir are unit vectors in world space; viewDir
// points from the surface toward the camera.
type Material interface {
	Shade(hit geometry.HitRecord, lightDir, viewDir mathutil.Vector3) mathutil.ColorRGB
}

// SolidColor ignores its inputs and always returns the stored color.
type SolidColor struct {
	Color mathutil.ColorRGB
}

func (m SolidColor) Shade(geometry.HitRecord, mathutil.Vector3, mathutil.Vector3) mathutil.ColorRGB {
	return m.Color
}

// Lambert is a pure diffuse BRDF: albedo*kd/pi.
type Lambert struct {
	Albedo mathutil.ColorRGB
	Kd     float32
}

func (m Lambert) Shade(geometry.HitRecord, mathutil.Vector3, mathutil.Vector3) mathutil.ColorRGB {
	return lambertTerm(m.Albedo, m.Kd)
}

const pi32 = float32(math.Pi)

func lambertTerm(albedo mathutil.ColorRGB, kd float32) mathutil.ColorRGB {
	return albedo.Mul(kd / pi32)
}

// LambertPhong adds a Phong specular lobe on top of Lambert diffuse.
type LambertPhong struct {
	Albedo   mathutil.ColorRGB
	Kd, Ks   float32
	PhongExp float32
}

func (m LambertPhong) Shade(hit geometry.HitRecord, lightDir, viewDir mathutil.Vector3) mathutil.ColorRGB {
	diffuse := lambertTerm(m.Albedo, m.Kd)
	specular := phongSpecular(m.Ks, m.PhongExp, lightDir, viewDir, hit.Normal)
	return diffuse.Add(specular)
}

// phongSpecular is grounded on original_source/BRDFs.h's BRDF::Phong:
// reflect = lightDir - 2*(n.lightDir)*n; result = (1,1,1)*ks*max(reflect.viewDir,0)^exp.
func phongSpecular(ks, exp float32, lightDir, viewDir, normal mathutil.Vector3) mathutil.ColorRGB {
	reflect := lightDir.Sub(normal.Mul(2 * normal.Dot(lightDir)))
	cos := mathutil.Max(reflect.Dot(viewDir), 0)
	intensity := ks * pow32(cos, exp)
	return mathutil.ColorRGB{R: intensity, G: intensity, B: intensity}
}

func pow32(base, exp float32) float32 {
	return float32(math.Pow(float64(base), float64(exp)))
}
