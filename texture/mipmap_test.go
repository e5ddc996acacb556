package texture

import "testing"

// TestGenerateMipmapsLevels tests chain length and level dimensions.
func TestGenerateMipmapsLevels(t *testing.T) {
	buf, _ := New(16, 8, FormatRGBA8)
	chain := GenerateMipmaps(buf)
	if chain == nil {
		t.Fatal("GenerateMipmaps returned nil")
	}

	// 16 -> 8 -> 4 -> 2 -> 1: five levels.
	if chain.Levels() != 5 {
		t.Fatalf("Levels() = %d, want 5", chain.Levels())
	}
	if chain.Level(0) != buf {
		t.Error("level 0 should be the source texture, uncopied")
	}

	wantDims := [][2]int{{16, 8}, {8, 4}, {4, 2}, {2, 1}, {1, 1}}
	for i, want := range wantDims {
		lvl := chain.Level(i)
		if lvl.Width() != want[0] || lvl.Height() != want[1] {
			t.Errorf("level %d = %dx%d, want %dx%d",
				i, lvl.Width(), lvl.Height(), want[0], want[1])
		}
	}

	if chain.Level(5) != nil {
		t.Error("out-of-range level should be nil")
	}
}

// TestGenerateMipmapsBoxAverage verifies the 2x2 box filter.
func TestGenerateMipmapsBoxAverage(t *testing.T) {
	buf, _ := New(2, 2, FormatRGBA8)
	_ = buf.SetRGBA(0, 0, 255, 0, 0, 255)
	_ = buf.SetRGBA(1, 0, 0, 0, 0, 255)
	_ = buf.SetRGBA(0, 1, 0, 0, 0, 255)
	_ = buf.SetRGBA(1, 1, 255, 0, 0, 255)

	chain := GenerateMipmaps(buf)
	lvl := chain.Level(1)
	r, g, b, a := lvl.GetRGBA(0, 0)
	// (255+0+0+255+2)/4 = 128
	if r != 128 || g != 0 || b != 0 || a != 255 {
		t.Errorf("box average = (%d,%d,%d,%d), want (128,0,0,255)", r, g, b, a)
	}
}

// TestGenerateMipmapsScaled verifies the x/image scaler path produces a
// complete chain.
func TestGenerateMipmapsScaled(t *testing.T) {
	buf, _ := New(8, 8, FormatRGBA8)
	buf.Fill(200, 100, 50, 255)

	chain := GenerateMipmapsScaled(buf)
	if chain == nil {
		t.Fatal("GenerateMipmapsScaled returned nil")
	}
	if chain.Levels() != 4 {
		t.Fatalf("Levels() = %d, want 4", chain.Levels())
	}

	// A solid texture stays solid at every level.
	lvl := chain.Level(2)
	r, g, b, _ := lvl.GetRGBA(0, 0)
	if r != 200 || g != 100 || b != 50 {
		t.Errorf("scaled level texel = (%d,%d,%d), want (200,100,50)", r, g, b)
	}
}

// TestLevelFor tests mip level selection by draw scale.
func TestLevelFor(t *testing.T) {
	buf, _ := New(16, 16, FormatRGBA8)
	chain := GenerateMipmaps(buf)

	tests := []struct {
		name      string
		scale     float64
		wantWidth int
	}{
		{"native scale", 1.0, 16},
		{"upscale", 2.0, 16},
		{"half scale", 0.5, 8},
		{"quarter scale", 0.25, 4},
		{"tiny scale clamps to last", 0.001, 1},
		{"nonpositive scale", 0, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lvl := chain.LevelFor(tt.scale)
			if lvl.Width() != tt.wantWidth {
				t.Errorf("LevelFor(%v).Width() = %d, want %d",
					tt.scale, lvl.Width(), tt.wantWidth)
			}
		})
	}
}

// TestGenerateMipmapsNil tests nil and empty sources.
func TestGenerateMipmapsNil(t *testing.T) {
	if GenerateMipmaps(nil) != nil {
		t.Error("GenerateMipmaps(nil) should be nil")
	}
	if GenerateMipmapsScaled(nil) != nil {
		t.Error("GenerateMipmapsScaled(nil) should be nil")
	}
	var c *MipmapChain
	if c.Levels() != 0 {
		t.Error("nil chain Levels() should be 0")
	}
	if c.LevelFor(0.5) != nil {
		t.Error("nil chain LevelFor should be nil")
	}
}
