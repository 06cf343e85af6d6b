package mathutil

import "math"

// Epsilon is the default Min of rays built by NewRay and the near-parallel
// threshold of the triangle intersection test.
const Epsilon = 1e-4

// Square returns x*x; named to match the reference material's vocabulary
// rather than writing x*x inline at every call site.
func Square(x float32) float32 {
	return x * x
}

// AreEqual reports whether a and b are within eps of each other.
func AreEqual(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < eps
}

func ToRadians(degrees float32) float32 {
	return degrees * float32(math.Pi) / 180
}

func ToDegrees(radians float32) float32 {
	return radians * 180 / float32(math.Pi)
}

func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func Max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func Min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
