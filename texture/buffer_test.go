package texture

import (
	"errors"
	"testing"
)

// TestNew tests buffer construction and validation.
func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		format        Format
		wantErr       error
	}{
		{"valid RGBA", 64, 32, FormatRGBA8, nil},
		{"valid gray", 1, 1, FormatGray8, nil},
		{"zero width", 0, 32, FormatRGBA8, ErrInvalidDimensions},
		{"negative height", 64, -1, FormatRGBA8, ErrInvalidDimensions},
		{"bad format", 64, 32, Format(99), ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := New(tt.width, tt.height, tt.format)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if buf.Width() != tt.width || buf.Height() != tt.height {
				t.Errorf("dimensions = %dx%d, want %dx%d",
					buf.Width(), buf.Height(), tt.width, tt.height)
			}
			if buf.Stride() != tt.format.RowBytes(tt.width) {
				t.Errorf("stride = %d, want %d", buf.Stride(), tt.format.RowBytes(tt.width))
			}
		})
	}
}

// TestFromRaw tests wrapping existing data.
func TestFromRaw(t *testing.T) {
	data := make([]byte, 4*4*4)
	buf, err := FromRaw(data, 4, 4, FormatRGBA8, 16)
	if err != nil {
		t.Fatalf("FromRaw() error = %v", err)
	}
	if buf.Width() != 4 {
		t.Errorf("Width() = %d, want 4", buf.Width())
	}

	if _, err := FromRaw(data, 4, 4, FormatRGBA8, 8); !errors.Is(err, ErrInvalidStride) {
		t.Errorf("short stride error = %v, want ErrInvalidStride", err)
	}
	if _, err := FromRaw(data[:8], 4, 4, FormatRGBA8, 16); !errors.Is(err, ErrDataTooSmall) {
		t.Errorf("short data error = %v, want ErrDataTooSmall", err)
	}
}

// TestGetSetRGBA tests texel access across formats.
func TestGetSetRGBA(t *testing.T) {
	formats := []Format{FormatRGBA8, FormatBGRA8, FormatRGB8}
	for _, format := range formats {
		t.Run(format.String(), func(t *testing.T) {
			buf, err := New(4, 4, format)
			if err != nil {
				t.Fatal(err)
			}
			if err := buf.SetRGBA(2, 1, 10, 20, 30, 40); err != nil {
				t.Fatalf("SetRGBA() error = %v", err)
			}

			r, g, b, a := buf.GetRGBA(2, 1)
			if r != 10 || g != 20 || b != 30 {
				t.Errorf("GetRGBA() = (%d,%d,%d), want (10,20,30)", r, g, b)
			}
			wantA := uint8(40)
			if !format.HasAlpha() {
				wantA = 255
			}
			if a != wantA {
				t.Errorf("alpha = %d, want %d", a, wantA)
			}
		})
	}
}

// TestGetRGBAOutOfBounds verifies out-of-bounds reads return zero.
func TestGetRGBAOutOfBounds(t *testing.T) {
	buf, _ := New(4, 4, FormatRGBA8)
	r, g, b, a := buf.GetRGBA(-1, 0)
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Errorf("out-of-bounds read = (%d,%d,%d,%d), want zeros", r, g, b, a)
	}
	if err := buf.SetRGBA(4, 0, 1, 2, 3, 4); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("out-of-bounds write error = %v, want ErrOutOfBounds", err)
	}
}

// TestSubImage tests shared-data sub-views.
func TestSubImage(t *testing.T) {
	buf, _ := New(8, 8, FormatRGBA8)
	_ = buf.SetRGBA(5, 5, 100, 101, 102, 103)

	sub := buf.SubImage(4, 4, 4, 4)
	if sub == nil {
		t.Fatal("SubImage returned nil")
	}
	r, g, b, a := sub.GetRGBA(1, 1)
	if r != 100 || g != 101 || b != 102 || a != 103 {
		t.Errorf("sub read = (%d,%d,%d,%d), want (100,101,102,103)", r, g, b, a)
	}

	// Writes through the view are visible in the parent.
	_ = sub.SetRGBA(0, 0, 1, 2, 3, 4)
	r, _, _, _ = buf.GetRGBA(4, 4)
	if r != 1 {
		t.Errorf("parent did not observe sub write: r = %d, want 1", r)
	}

	if buf.SubImage(6, 6, 4, 4) != nil {
		t.Error("SubImage beyond bounds should return nil")
	}
}

// TestPremultipliedData tests the lazy premultiplication cache.
func TestPremultipliedData(t *testing.T) {
	buf, _ := New(2, 1, FormatRGBA8)
	_ = buf.SetRGBA(0, 0, 255, 128, 0, 128)
	_ = buf.SetRGBA(1, 0, 255, 255, 255, 0)

	if buf.IsPremulCached() {
		t.Error("premul cached before first request")
	}

	pm := buf.PremultipliedData()
	// (255*128+127)/255 = 128, (128*128+127)/255 = 64
	if pm[0] != 128 || pm[1] != 64 || pm[2] != 0 || pm[3] != 128 {
		t.Errorf("premul texel 0 = (%d,%d,%d,%d), want (128,64,0,128)",
			pm[0], pm[1], pm[2], pm[3])
	}
	// Zero alpha zeroes all channels.
	if pm[4] != 0 || pm[5] != 0 || pm[6] != 0 || pm[7] != 0 {
		t.Errorf("premul texel 1 = (%d,%d,%d,%d), want zeros",
			pm[4], pm[5], pm[6], pm[7])
	}

	if !buf.IsPremulCached() {
		t.Error("premul not cached after request")
	}

	// Writes invalidate the cache.
	_ = buf.SetRGBA(0, 0, 0, 0, 0, 255)
	if buf.IsPremulCached() {
		t.Error("premul cache not invalidated after write")
	}
}

// TestPremultipliedDataPassthrough verifies already-premultiplied and
// alpha-less formats return original data.
func TestPremultipliedDataPassthrough(t *testing.T) {
	for _, format := range []Format{FormatRGBAPremul, FormatRGB8, FormatGray8} {
		buf, _ := New(2, 2, format)
		if &buf.PremultipliedData()[0] != &buf.Data()[0] {
			t.Errorf("%v: PremultipliedData() should alias Data()", format)
		}
	}
}

// TestClone verifies deep copies.
func TestClone(t *testing.T) {
	buf, _ := New(2, 2, FormatRGBA8)
	_ = buf.SetRGBA(0, 0, 9, 9, 9, 9)

	cp := buf.Clone()
	_ = cp.SetRGBA(0, 0, 1, 1, 1, 1)

	r, _, _, _ := buf.GetRGBA(0, 0)
	if r != 9 {
		t.Errorf("clone write affected original: r = %d, want 9", r)
	}
}

// TestClearFill tests Clear and Fill.
func TestClearFill(t *testing.T) {
	buf, _ := New(3, 3, FormatRGBA8)
	buf.Fill(7, 8, 9, 10)
	r, g, b, a := buf.GetRGBA(2, 2)
	if r != 7 || g != 8 || b != 9 || a != 10 {
		t.Errorf("Fill result = (%d,%d,%d,%d), want (7,8,9,10)", r, g, b, a)
	}

	buf.Clear()
	r, g, b, a = buf.GetRGBA(2, 2)
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Errorf("Clear result = (%d,%d,%d,%d), want zeros", r, g, b, a)
	}
}
