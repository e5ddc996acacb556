package texture

import "testing"

// TestFormatInfo tests format metadata.
func TestFormatInfo(t *testing.T) {
	tests := []struct {
		format   Format
		bpp      int
		hasAlpha bool
		premul   bool
	}{
		{FormatGray8, 1, false, false},
		{FormatRGB8, 3, false, false},
		{FormatRGBA8, 4, true, false},
		{FormatRGBAPremul, 4, true, true},
		{FormatBGRA8, 4, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			if got := tt.format.BytesPerPixel(); got != tt.bpp {
				t.Errorf("BytesPerPixel() = %d, want %d", got, tt.bpp)
			}
			if got := tt.format.HasAlpha(); got != tt.hasAlpha {
				t.Errorf("HasAlpha() = %v, want %v", got, tt.hasAlpha)
			}
			if got := tt.format.IsPremultiplied(); got != tt.premul {
				t.Errorf("IsPremultiplied() = %v, want %v", got, tt.premul)
			}
		})
	}
}

// TestFormatInvalid tests out-of-range format values.
func TestFormatInvalid(t *testing.T) {
	bad := Format(200)
	if bad.IsValid() {
		t.Error("Format(200).IsValid() = true")
	}
	if bad.BytesPerPixel() != 0 {
		t.Errorf("invalid format BytesPerPixel() = %d, want 0", bad.BytesPerPixel())
	}
	if bad.String() != "Unknown" {
		t.Errorf("invalid format String() = %q, want Unknown", bad.String())
	}
}

// TestFormatRowBytes tests row size calculation.
func TestFormatRowBytes(t *testing.T) {
	if got := FormatRGBA8.RowBytes(100); got != 400 {
		t.Errorf("FormatRGBA8.RowBytes(100) = %d, want 400", got)
	}
	if got := FormatRGB8.RowBytes(100); got != 300 {
		t.Errorf("FormatRGB8.RowBytes(100) = %d, want 300", got)
	}
}
