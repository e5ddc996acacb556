package texture

import "math"

// FilterMode defines how texture sampling interpolates between texels.
type FilterMode uint8

const (
	// FilterNearest selects the closest texel (no interpolation).
	// Fast; the usual choice for pixel-art sprites.
	FilterNearest FilterMode = iota

	// FilterBilinear performs linear interpolation between 4 neighboring
	// texels. Good balance between quality and performance.
	FilterBilinear

	// FilterBicubic performs Catmull-Rom interpolation using a 4x4 texel
	// neighborhood. Highest quality but slower than bilinear.
	FilterBicubic
)

// String returns a string representation of the filter mode.
func (m FilterMode) String() string {
	switch m {
	case FilterNearest:
		return "Nearest"
	case FilterBilinear:
		return "Bilinear"
	case FilterBicubic:
		return "Bicubic"
	default:
		return "Unknown"
	}
}

// WrapMode determines how coordinates outside [0,1] are addressed.
type WrapMode uint8

const (
	// WrapClamp clamps coordinates to the edge (default).
	WrapClamp WrapMode = iota

	// WrapRepeat tiles the texture; coordinates wrap at the boundaries.
	WrapRepeat

	// WrapMirror reflects the texture at boundaries, producing a
	// mirrored tiling.
	WrapMirror
)

// String returns a string representation of the wrap mode.
func (w WrapMode) String() string {
	switch w {
	case WrapClamp:
		return "Clamp"
	case WrapRepeat:
		return "Repeat"
	case WrapMirror:
		return "Mirror"
	default:
		return "Unknown"
	}
}

// wrap applies the wrap mode to a normalized coordinate.
// WrapClamp is handled later by texel-index clamping, matching edge-clamp
// sampler semantics, so it passes through here.
func (w WrapMode) wrap(v float64) float64 {
	switch w {
	case WrapRepeat:
		v -= math.Floor(v)
		return v
	case WrapMirror:
		// Triangle wave with period 2: 0..1..0 over [0,2).
		v = math.Abs(v)
		v = math.Mod(v, 2)
		if v > 1 {
			v = 2 - v
		}
		return v
	default:
		return v
	}
}

// Sample samples the texture at normalized coordinates (u, v) using the
// given filter and wrap modes. (0,0) is top-left, (1,1) bottom-right.
// Returns the texel as 8-bit channels; premultiplied formats are
// returned as stored, never un-premultiplied.
func Sample(buf *Buffer, u, v float64, filter FilterMode, wrap WrapMode) (r, g, b, a uint8) {
	u = wrap.wrap(u)
	v = wrap.wrap(v)

	switch filter {
	case FilterNearest:
		return sampleNearest(buf, u, v)
	case FilterBilinear:
		return sampleBilinear(buf, u, v)
	case FilterBicubic:
		return sampleBicubic(buf, u, v)
	default:
		return 0, 0, 0, 0
	}
}

// sampleNearest performs nearest-neighbor sampling.
func sampleNearest(buf *Buffer, u, v float64) (r, g, b, a uint8) {
	w, h := buf.Bounds()

	// Floor selects the texel containing the coordinate.
	x := int(math.Floor(u * float64(w)))
	y := int(math.Floor(v * float64(h)))

	x = clampInt(x, 0, w-1)
	y = clampInt(y, 0, h-1)

	return buf.GetRGBA(x, y)
}

// sampleBilinear interpolates between 4 neighboring texels with linear
// weights.
func sampleBilinear(buf *Buffer, u, v float64) (r, g, b, a uint8) {
	w, h := buf.Bounds()

	// Texel centers sit at half-integer coordinates.
	fx := u*float64(w) - 0.5
	fy := v*float64(h) - 0.5

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	x1 := clampInt(x0+1, 0, w-1)
	y1 := clampInt(y0+1, 0, h-1)
	x0 = clampInt(x0, 0, w-1)
	y0 = clampInt(y0, 0, h-1)

	r00, g00, b00, a00 := buf.GetRGBA(x0, y0)
	r10, g10, b10, a10 := buf.GetRGBA(x1, y0)
	r01, g01, b01, a01 := buf.GetRGBA(x0, y1)
	r11, g11, b11, a11 := buf.GetRGBA(x1, y1)

	r = uint8(lerp2D(float64(r00), float64(r10), float64(r01), float64(r11), tx, ty) + 0.5)
	g = uint8(lerp2D(float64(g00), float64(g10), float64(g01), float64(g11), tx, ty) + 0.5)
	b = uint8(lerp2D(float64(b00), float64(b10), float64(b01), float64(b11), tx, ty) + 0.5)
	a = uint8(lerp2D(float64(a00), float64(a10), float64(a01), float64(a11), tx, ty) + 0.5)

	return r, g, b, a
}

// sampleBicubic interpolates with Catmull-Rom weights over a 4x4
// neighborhood.
func sampleBicubic(buf *Buffer, u, v float64) (r, g, b, a uint8) {
	w, h := buf.Bounds()

	fx := u*float64(w) - 0.5
	fy := v*float64(h) - 0.5

	x := int(math.Floor(fx))
	y := int(math.Floor(fy))
	tx := fx - float64(x)
	ty := fy - float64(y)

	var rVals, gVals, bVals, aVals [4][4]float64
	for dy := -1; dy <= 2; dy++ {
		for dx := -1; dx <= 2; dx++ {
			px := clampInt(x+dx, 0, w-1)
			py := clampInt(y+dy, 0, h-1)

			pr, pg, pb, pa := buf.GetRGBA(px, py)
			rVals[dy+1][dx+1] = float64(pr)
			gVals[dy+1][dx+1] = float64(pg)
			bVals[dy+1][dx+1] = float64(pb)
			aVals[dy+1][dx+1] = float64(pa)
		}
	}

	r = uint8(clampFloat(bicubicInterp(rVals, tx, ty), 0, 255))
	g = uint8(clampFloat(bicubicInterp(gVals, tx, ty), 0, 255))
	b = uint8(clampFloat(bicubicInterp(bVals, tx, ty), 0, 255))
	a = uint8(clampFloat(bicubicInterp(aVals, tx, ty), 0, 255))

	return r, g, b, a
}

// clampInt clamps an integer value to [minVal, maxVal].
func clampInt(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// clampFloat clamps a float64 value to [minVal, maxVal].
func clampFloat(val, minVal, maxVal float64) float64 {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// lerp performs linear interpolation between a and b.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// lerp2D performs bilinear interpolation on a 2x2 grid.
func lerp2D(v00, v10, v01, v11, tx, ty float64) float64 {
	v0 := lerp(v00, v10, tx)
	v1 := lerp(v01, v11, tx)
	return lerp(v0, v1, ty)
}

// cubicWeight computes the Catmull-Rom cubic weight for distance t.
func cubicWeight(t float64) float64 {
	// Catmull-Rom spline (Mitchell-Netravali with B=0, C=0.5):
	// |t| < 1: (1.5|t|³ - 2.5|t|² + 1)
	// 1 ≤ |t| < 2: (-0.5|t|³ + 2.5|t|² - 4|t| + 2)
	// |t| ≥ 2: 0
	absT := math.Abs(t)
	if absT < 1 {
		return 1.5*absT*absT*absT - 2.5*absT*absT + 1.0
	}
	if absT < 2 {
		return -0.5*absT*absT*absT + 2.5*absT*absT - 4.0*absT + 2.0
	}
	return 0
}

// bicubicInterp performs bicubic interpolation on a 4x4 grid using
// Catmull-Rom weights.
func bicubicInterp(vals [4][4]float64, tx, ty float64) float64 {
	wx := [4]float64{
		cubicWeight(tx + 1),
		cubicWeight(tx),
		cubicWeight(tx - 1),
		cubicWeight(tx - 2),
	}
	wy := [4]float64{
		cubicWeight(ty + 1),
		cubicWeight(ty),
		cubicWeight(ty - 1),
		cubicWeight(ty - 2),
	}

	var result float64
	for i := range 4 {
		for j := range 4 {
			result += vals[i][j] * wx[j] * wy[i]
		}
	}
	return result
}
