// Package math3d provides the homogeneous tuple and matrix primitives the
// tracer is built on.
package math3d

import "math"

// Comparison tolerances. The same absolute-difference rule is applied to
// every numeric domain; only the margin differs.
const (
	// TupleEpsilon is the per-component tolerance used by Tuple.Equal.
	// Values below float32 resolution near 1.0 (~1.2e-7) would make
	// normalised vectors compare unequal to themselves after a round trip.
	TupleEpsilon float32 = 1e-6

	// ColorEpsilon is the per-channel tolerance used for colours.
	ColorEpsilon float32 = 1e-6
)

// ApproxEqual reports whether a and b differ by less than eps.
func ApproxEqual(a, b, eps float32) bool {
	return math.Abs(float64(a)-float64(b)) < float64(eps)
}

func sqrt32(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}
