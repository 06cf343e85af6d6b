package shading

import "raytracer/internal/mathutil"

// LightKind tags the Light variant.
type LightKind int

const (
	PointLight LightKind = iota
	DirectionalLight
)

// Light is a tagged variant carrying only the fields relevant to its kind.
// Directional lights have no meaningful Origin and cast shadows with
// unbounded ray extent (see GetDirectionToLight).
type Light struct {
	Kind      LightKind
	Origin    mathutil.Vector3 // Point only
	Direction mathutil.Vector3 // Directional only, unit length
	Intensity float32
	Color     mathutil.ColorRGB
}

func NewPointLight(origin mathutil.Vector3, intensity float32, color mathutil.ColorRGB) Light {
	return Light{Kind: PointLight, Origin: origin, Intensity: intensity, Color: color}
}

func NewDirectionalLight(direction mathutil.Vector3, intensity float32, color mathutil.ColorRGB) Light {
	return Light{Kind: DirectionalLight, Direction: direction.Normalized(), Intensity: intensity, Color: color}
}

// GetDirectionToLight returns an unnormalized vector from p to the light.
// For a point light its magnitude doubles as the shadow ray's max extent;
// for a directional light the caller must set the shadow ray's max to
// +Inf instead of relying on this vector's magnitude.
func (l Light) GetDirectionToLight(p mathutil.Vector3) mathutil.Vector3 {
	if l.Kind == PointLight {
		return l.Origin.Sub(p)
	}
	return l.Direction
}

// GetRadiance returns the incident radiance contributed by l at p.
func (l Light) GetRadiance(p mathutil.Vector3) mathutil.ColorRGB {
	if l.Kind == PointLight {
		distSqr := l.Origin.Sub(p).SqrMagnitude()
		return l.Color.Mul(l.Intensity / distSqr)
	}
	return l.Color.Mul(l.Intensity)
}
