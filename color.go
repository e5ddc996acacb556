package sprite

// RGBA is a color with float32 components, nominally in [0,1].
// Values outside that range are legal and propagate unchanged; HDR and
// additive effects rely on this. Alpha is always linear (never
// gamma-encoded).
type RGBA struct {
	R, G, B, A float32
}

// RGB is a three-channel tint color, nominally in [0,1] per channel.
// A tint has no alpha component: the fragment stage treats its alpha
// multiplier as a constant 1.
type RGB struct {
	R, G, B float32
}

// White is the identity tint: shading with it returns the texel unchanged.
var White = RGB{R: 1, G: 1, B: 1}

// RGBAFromBytes converts 8-bit channel values to an RGBA color.
// Each byte [0,255] maps to float32 [0,1].
func RGBAFromBytes(r, g, b, a uint8) RGBA {
	return RGBA{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: float32(a) / 255.0,
	}
}

// Bytes converts the color to 8-bit channel values with rounding.
// Out-of-range components are clamped here; this is the boundary where
// the unclamped fragment-stage output meets an 8-bit framebuffer.
func (c RGBA) Bytes() (r, g, b, a uint8) {
	return clampAndRound(c.R), clampAndRound(c.G), clampAndRound(c.B), clampAndRound(c.A)
}

// Premultiplied returns the color with RGB scaled by alpha.
// Alpha itself is unchanged.
func (c RGBA) Premultiplied() RGBA {
	return RGBA{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// clampAndRound clamps a float32 to [0,1] and converts to uint8 with rounding.
func clampAndRound(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}
