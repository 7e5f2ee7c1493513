// Package ease provides the interpolation primitives that shape all motion
// in the animation: straight lerps and a single symmetric ease-in-ease-out
// curve every progress value is passed through before geometry is computed.
package ease

// Lerp interpolates linearly between a and b. Factor is not clamped;
// values outside [0,1] extrapolate.
func Lerp(a, b, factor float64) float64 {
	return a + (b-a)*factor
}

// MultiLerp applies Lerp pairwise to two equal-length sequences.
// It panics if the lengths differ.
func MultiLerp(a, b []float64, factor float64) []float64 {
	if len(a) != len(b) {
		panic("ease: MultiLerp length mismatch")
	}
	result := make([]float64, len(a))
	for i := range a {
		result[i] = Lerp(a[i], b[i], factor)
	}
	return result
}

// ParametricBlend maps t in [0,1] onto a smooth accelerate/decelerate curve
// with fixed points at 0, 0.5 and 1. The denominator only vanishes for real
// t outside [0,1].
func ParametricBlend(t float64) float64 {
	sqt := t * t
	return sqt / (2.0*(sqt-t) + 1.0)
}
