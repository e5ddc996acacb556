// Package blend implements the compositing operators applied to
// fragment-stage output.
//
// The fragment stage itself never blends or clamps; whatever clamping a
// displayable result needs happens here, in the externally configured
// blend state. All byte operators work with values in the range 0-255.
//
// The div255 family of functions avoid expensive integer division by
// using bit shifts and addition; mulDiv255 runs once per channel per
// blended fragment.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - Alpha blending without division: https://arxiv.org/abs/2202.02864
package blend

// div255 divides x by 255 using fast shift approximation.
//
// Formula: (x + 255) >> 8
//
// This is ~5x faster than integer division. The maximum error is +1
// for some input values, which is imperceptible in alpha blending.
func div255(x uint16) uint16 {
	return (x + 255) >> 8
}

// mulDiv255 multiplies two bytes and divides by 255 using the fast
// approximation.
func mulDiv255(a, b byte) byte {
	return byte(div255(uint16(a) * uint16(b)))
}

// inv255 computes 255 - x (inverse alpha).
func inv255(x byte) byte {
	return 255 - x
}

// addClamp adds two bytes and clamps to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}
