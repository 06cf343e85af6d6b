package mathutil

// ColorRGB is an ordered triple of floats, unclamped until MaxToOne is
// applied at the end of the shading pipeline.
type ColorRGB struct{ R, G, B float32 }

var ColorBlack = ColorRGB{}

func (a ColorRGB) Add(b ColorRGB) ColorRGB {
	return ColorRGB{a.R + b.R, a.G + b.G, a.B + b.B}
}

func (a ColorRGB) MulColor(b ColorRGB) ColorRGB {
	return ColorRGB{a.R * b.R, a.G * b.G, a.B * b.B}
}

func (a ColorRGB) Mul(s float32) ColorRGB {
	return ColorRGB{a.R * s, a.G * s, a.B * s}
}

func (a ColorRGB) Div(s float32) ColorRGB {
	return ColorRGB{a.R / s, a.G / s, a.B / s}
}

// MaxToOne clamps a so that its brightest channel is at most one, dividing
// every channel by the max component when it exceeds one so hue is
// preserved instead of being clipped to white.
func (a ColorRGB) MaxToOne() ColorRGB {
	max := a.R
	if a.G > max {
		max = a.G
	}
	if a.B > max {
		max = a.B
	}
	if max > 1 {
		return a.Div(max)
	}
	return a
}

// Bytes converts a (already MaxToOne'd) color to 8-bit channels via
// floor(channel*255), saturating at [0,255].
func (a ColorRGB) Bytes() (r, g, b uint8) {
	return toByte(a.R), toByte(a.G), toByte(a.B)
}

func toByte(c float32) uint8 {
	if c < 0 {
		return 0
	}
	v := c * 255
	if v > 255 {
		return 255
	}
	return uint8(v)
}
