package renderer

// sampleOffset is a sub-pixel offset in [0,1)x[0,1).
type sampleOffset struct{ X, Y float32 }

// buildSampleOffsets returns the regular n=k*k grid of sub-pixel sample
// offsets spec.md §4.6 defines: ((x+0.5)/k, (y+0.5)/k) for x,y in [0,k).
// n is assumed to be a perfect square (1, 4 or 16, enforced by
// IncreaseMSAA/DecreaseMSAA).
func buildSampleOffsets(n int) []sampleOffset {
	k := isqrt(n)
	offsets := make([]sampleOffset, 0, n)
	for y := 0; y < k; y++ {
		for x := 0; x < k; x++ {
			offsets = append(offsets, sampleOffset{
				X: (float32(x) + 0.5) / float32(k),
				Y: (float32(y) + 0.5) / float32(k),
			})
		}
	}
	return offsets
}

func isqrt(n int) int {
	for k := 1; ; k++ {
		if k*k == n {
			return k
		}
		if k*k > n {
			return k - 1
		}
	}
}
