package sprite

import "math"

// DefaultColorCurveExponent is the per-channel exponent applied when the
// color curve is enabled. The value is a perceptual brightness remap
// inherited from the original pipeline and is deliberately not a
// standard gamma constant.
const DefaultColorCurveExponent = 1.75

// ComputeColor applies a multiplicative tint to a sampled texel.
//
// Each of the R, G, B channels of texel is multiplied by the
// corresponding channel of tint; alpha passes through unchanged. The
// result is NOT clamped: out-of-range tints (HDR, additive flashes)
// propagate as-is, and downstream blend state owns any clamping to
// displayable range.
//
// ComputeColor is pure and deterministic. It does not validate its
// inputs; NaN or out-of-range components propagate by ordinary
// float32 arithmetic.
func ComputeColor(texel RGBA, tint RGB) RGBA {
	return RGBA{
		R: texel.R * tint.R,
		G: texel.G * tint.G,
		B: texel.B * tint.B,
		A: texel.A,
	}
}

// StageConfig configures a FragmentStage.
type StageConfig struct {
	// ColorCurve enables the per-channel power-curve adjustment applied
	// after the tint multiply. Disabled by default; when disabled the
	// stage output is bit-identical to ComputeColor.
	ColorCurve bool

	// ColorCurveExponent is the exponent used when ColorCurve is enabled.
	// If 0, DefaultColorCurveExponent is used.
	ColorCurveExponent float32
}

// FragmentStage is the per-fragment color computation of the sprite
// pipeline: tint multiply plus an optional, disabled-by-default color
// curve.
//
// The stage holds only its configuration. It has no per-fragment or
// per-draw state, so a single FragmentStage may shade fragments from
// arbitrarily many draws on arbitrarily many goroutines.
type FragmentStage struct {
	curve    bool
	exponent float32
}

// NewFragmentStage creates a fragment stage from the given configuration.
// A nil config yields the default stage: plain tint multiply, no curve.
func NewFragmentStage(config *StageConfig) *FragmentStage {
	s := &FragmentStage{exponent: DefaultColorCurveExponent}
	if config != nil {
		s.curve = config.ColorCurve
		if config.ColorCurveExponent != 0 {
			s.exponent = config.ColorCurveExponent
		}
	}
	return s
}

// ColorCurveEnabled reports whether the power-curve adjustment is active.
func (s *FragmentStage) ColorCurveEnabled() bool {
	return s.curve
}

// ColorCurveExponent returns the exponent applied when the curve is
// enabled.
func (s *FragmentStage) ColorCurveExponent() float32 {
	return s.exponent
}

// Shade computes the final fragment color for a sampled texel and a
// per-draw tint.
//
// With the color curve disabled (the default), Shade is exactly
// ComputeColor. With it enabled, each RGB channel x of the multiply
// result becomes pow(x, exponent) before alpha is attached; alpha is
// never curved.
func (s *FragmentStage) Shade(texel RGBA, tint RGB) RGBA {
	out := ComputeColor(texel, tint)
	if !s.curve {
		return out
	}
	out.R = powf(out.R, s.exponent)
	out.G = powf(out.G, s.exponent)
	out.B = powf(out.B, s.exponent)
	return out
}

// powf is float32 pow via math.Pow.
func powf(x, y float32) float32 {
	return float32(math.Pow(float64(x), float64(y)))
}
