package shading

import (
	"raytracer/internal/geometry"
	"raytracer/internal/mathutil"
)

// CookTorrance is a microfacet BRDF with a Trowbridge-Reitz (GGX) normal
// distribution, Schlick-GGX geometry term and Schlick Fresnel, grounded on
// original_source/BRDFs.h's NormalDistribution_GGX/GeometryFunction_SchlickGGX/
// GeometryFunction_Smith/FresnelFunction_Schlick.
//
// Metalness is documented by the source as effectively {0,1}, but the W3
// scene passes 0.0/1.0 as plain floats; this type treats it as a
// continuous [0,1] value and interpolates f0 accordingly (see DESIGN.md).
type CookTorrance struct {
	Albedo    mathutil.ColorRGB
	Metalness float32
	Roughness float32
}

var dielectricF0 = mathutil.ColorRGB{R: 0.04, G: 0.04, B: 0.04}

func (m CookTorrance) Shade(hit geometry.HitRecord, lightDir, viewDir mathutil.Vector3) mathutil.ColorRGB {
	n := hit.Normal
	nl := n.Dot(lightDir)
	nv := n.Dot(viewDir)
	if nl <= 0 || nv <= 0 {
		return mathutil.ColorBlack
	}

	h := viewDir.Add(lightDir).Normalized()
	f0 := lerpColor(dielectricF0, m.Albedo, m.Metalness)
	f := fresnelSchlick(h.Dot(viewDir), f0)

	a := m.Roughness * m.Roughness
	d := distributionGGX(n, h, a)
	g := geometrySmith(nv, nl, a)

	specular := f.Mul(d * g / (4 * nv * nl))

	oneMinusF := mathutil.ColorRGB{R: 1 - f.R, G: 1 - f.G, B: 1 - f.B}
	diffuse := oneMinusF.MulColor(m.Albedo).Mul((1 - m.Metalness) / pi32)

	return diffuse.Add(specular)
}

func lerpColor(a, b mathutil.ColorRGB, t float32) mathutil.ColorRGB {
	return mathutil.ColorRGB{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
	}
}

// fresnelSchlick approximates the Fresnel reflectance at grazing angle
// cosTheta (the angle between the half-vector and the view direction).
func fresnelSchlick(cosTheta float32, f0 mathutil.ColorRGB) mathutil.ColorRGB {
	factor := pow32(mathutil.Clamp(1-cosTheta, 0, 1), 5)
	return mathutil.ColorRGB{
		R: f0.R + (1-f0.R)*factor,
		G: f0.G + (1-f0.G)*factor,
		B: f0.B + (1-f0.B)*factor,
	}
}

// distributionGGX is the Trowbridge-Reitz normal distribution term.
func distributionGGX(n, h mathutil.Vector3, a float32) float32 {
	a2 := a * a
	nh := mathutil.Max(n.Dot(h), 0)
	denom := nh*nh*(a2-1) + 1
	return a2 / (pi32 * denom * denom)
}

// geometrySchlickGGX is the single-direction Schlick-GGX visibility term.
func geometrySchlickGGX(nDotX, a float32) float32 {
	k := (a + 1) * (a + 1) / 8
	return nDotX / (nDotX*(1-k) + k)
}

// geometrySmith combines the view and light Schlick-GGX terms.
func geometrySmith(nv, nl, a float32) float32 {
	return geometrySchlickGGX(nv, a) * geometrySchlickGGX(nl, a)
}
