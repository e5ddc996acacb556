package texture

import "testing"

// checkerboard builds a 2x2 texture: white top-left, black top-right,
// black bottom-left, white bottom-right, fully opaque.
func checkerboard(t *testing.T) *Buffer {
	t.Helper()
	buf, err := New(2, 2, FormatRGBA8)
	if err != nil {
		t.Fatal(err)
	}
	_ = buf.SetRGBA(0, 0, 255, 255, 255, 255)
	_ = buf.SetRGBA(1, 0, 0, 0, 0, 255)
	_ = buf.SetRGBA(0, 1, 0, 0, 0, 255)
	_ = buf.SetRGBA(1, 1, 255, 255, 255, 255)
	return buf
}

// TestSampleNearest tests nearest-neighbor texel selection.
func TestSampleNearest(t *testing.T) {
	buf := checkerboard(t)

	tests := []struct {
		name  string
		u, v  float64
		wantR uint8
	}{
		{"top-left quadrant", 0.25, 0.25, 255},
		{"top-right quadrant", 0.75, 0.25, 0},
		{"bottom-left quadrant", 0.25, 0.75, 0},
		{"bottom-right quadrant", 0.75, 0.75, 255},
		{"clamped above one", 1.5, 0.25, 0},
		{"clamped below zero", -0.5, 0.25, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, _, a := Sample(buf, tt.u, tt.v, FilterNearest, WrapClamp)
			if r != tt.wantR {
				t.Errorf("Sample(%v, %v) r = %d, want %d", tt.u, tt.v, r, tt.wantR)
			}
			if a != 255 {
				t.Errorf("alpha = %d, want 255", a)
			}
		})
	}
}

// TestSampleBilinearCenter verifies the exact center of the checkerboard
// averages to mid-gray.
func TestSampleBilinearCenter(t *testing.T) {
	buf := checkerboard(t)

	r, g, b, a := Sample(buf, 0.5, 0.5, FilterBilinear, WrapClamp)
	// Equal weights over two white and two black texels: 255/2 rounded.
	if r != 128 || g != 128 || b != 128 {
		t.Errorf("center sample = (%d,%d,%d), want (128,128,128)", r, g, b)
	}
	if a != 255 {
		t.Errorf("alpha = %d, want 255", a)
	}
}

// TestSampleBilinearTexelCenter verifies sampling exactly at a texel
// center returns that texel.
func TestSampleBilinearTexelCenter(t *testing.T) {
	buf := checkerboard(t)

	// Texel (0,0) center in normalized coordinates is (0.25, 0.25).
	r, _, _, _ := Sample(buf, 0.25, 0.25, FilterBilinear, WrapClamp)
	if r != 255 {
		t.Errorf("texel-center sample r = %d, want 255", r)
	}
}

// TestSampleWrapRepeat tests repeat addressing.
func TestSampleWrapRepeat(t *testing.T) {
	buf := checkerboard(t)

	// u=1.25 wraps to 0.25, v=2.75 wraps to 0.75.
	r, _, _, _ := Sample(buf, 1.25, 2.75, FilterNearest, WrapRepeat)
	want, _, _, _ := Sample(buf, 0.25, 0.75, FilterNearest, WrapClamp)
	if r != want {
		t.Errorf("repeat sample r = %d, want %d", r, want)
	}

	// Negative coordinates wrap forward.
	r, _, _, _ = Sample(buf, -0.75, 0.25, FilterNearest, WrapRepeat)
	want, _, _, _ = Sample(buf, 0.25, 0.25, FilterNearest, WrapClamp)
	if r != want {
		t.Errorf("negative repeat sample r = %d, want %d", r, want)
	}
}

// TestSampleWrapMirror tests mirrored addressing.
func TestSampleWrapMirror(t *testing.T) {
	buf := checkerboard(t)

	// u=1.25 mirrors to 0.75.
	r, _, _, _ := Sample(buf, 1.25, 0.25, FilterNearest, WrapMirror)
	want, _, _, _ := Sample(buf, 0.75, 0.25, FilterNearest, WrapClamp)
	if r != want {
		t.Errorf("mirror sample r = %d, want %d", r, want)
	}
}

// TestSampleBicubicSolid verifies bicubic sampling of a solid texture is
// exact.
func TestSampleBicubicSolid(t *testing.T) {
	buf, _ := New(4, 4, FormatRGBA8)
	buf.Fill(100, 150, 200, 255)

	r, g, b, a := Sample(buf, 0.4, 0.6, FilterBicubic, WrapClamp)
	if r != 100 || g != 150 || b != 200 || a != 255 {
		t.Errorf("bicubic solid sample = (%d,%d,%d,%d), want (100,150,200,255)", r, g, b, a)
	}
}

// TestFilterModeString tests filter mode names.
func TestFilterModeString(t *testing.T) {
	tests := []struct {
		mode FilterMode
		want string
	}{
		{FilterNearest, "Nearest"},
		{FilterBilinear, "Bilinear"},
		{FilterBicubic, "Bicubic"},
		{FilterMode(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("FilterMode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

// TestWrapModeString tests wrap mode names.
func TestWrapModeString(t *testing.T) {
	tests := []struct {
		mode WrapMode
		want string
	}{
		{WrapClamp, "Clamp"},
		{WrapRepeat, "Repeat"},
		{WrapMirror, "Mirror"},
		{WrapMode(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("WrapMode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

// BenchmarkSampleBilinear measures bilinear sampling throughput.
func BenchmarkSampleBilinear(b *testing.B) {
	buf, _ := New(256, 256, FormatRGBA8)
	buf.Fill(128, 128, 128, 255)

	var sink uint8
	for i := 0; i < b.N; i++ {
		r, _, _, _ := Sample(buf, 0.371, 0.629, FilterBilinear, WrapClamp)
		sink = r
	}
	_ = sink
}
