package gpu

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/sprite"
)

// TestSpriteShaderSourceNonEmpty verifies the shader source is embedded correctly.
func TestSpriteShaderSourceNonEmpty(t *testing.T) {
	source := SpriteShaderSource()
	if source == "" {
		t.Fatal("sprite shader source is empty")
	}
	if len(source) < 100 {
		t.Errorf("sprite shader source suspiciously short: %d bytes", len(source))
	}
}

// TestSpriteShaderContainsExpectedContent verifies the shader contains key elements.
func TestSpriteShaderContainsExpectedContent(t *testing.T) {
	source := SpriteShaderSource()

	required := []string{
		"@vertex",
		"@fragment",
		"vs_main",
		"fs_main",
		"texture_2d<f32>",
		"sampler",
		"textureSample",
		"SpriteParams",
		"screen_position",
		"screen_size",
		"texture_position",
		"texture_size",
		"color_curve",
		"CURVE_EXPONENT",
	}

	for _, req := range required {
		if !strings.Contains(source, req) {
			t.Errorf("sprite shader missing required element: %q", req)
		}
	}
}

// TestSpriteShaderTintSemantics checks that the fragment stage multiplies
// the texel by the tint and passes the texel alpha through.
func TestSpriteShaderTintSemantics(t *testing.T) {
	source := SpriteShaderSource()

	if !strings.Contains(source, "texel.rgb * params.color") {
		t.Error("fragment stage should multiply texel.rgb by params.color")
	}
	if !strings.Contains(source, "texel.a") {
		t.Error("fragment stage should pass texel alpha through")
	}
	if strings.Contains(source, "clamp(") || strings.Contains(source, "saturate(") {
		t.Error("fragment stage must not clamp the multiplied result")
	}
}

// TestSpriteShaderCurveExponentMatchesCPU verifies the WGSL constant matches
// the CPU fragment stage default.
func TestSpriteShaderCurveExponentMatchesCPU(t *testing.T) {
	want := "const CURVE_EXPONENT: f32 = 1.75;"
	if !strings.Contains(SpriteShaderSource(), want) {
		t.Errorf("shader missing %q (CPU default is %v)", want, sprite.DefaultColorCurveExponent)
	}
}

func f32At(buf []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
}

// TestPackSpriteParamsLayout verifies the std140 uniform packing.
func TestPackSpriteParamsLayout(t *testing.T) {
	pc := sprite.PushConstants{
		ScreenPosition:  sprite.Vec2{X: 1, Y: 2},
		ScreenSize:      sprite.Vec2{X: 3, Y: 4},
		TexturePosition: sprite.Vec2{X: 0.25, Y: 0.5},
		TextureSize:     sprite.Vec2{X: 0.75, Y: 1},
		Color:           sprite.RGB{R: 0.1, G: 0.2, B: 0.3},
	}

	buf := PackSpriteParams(pc, false)

	tests := []struct {
		name string
		off  int
		want float32
	}{
		{"screen_position.x", 0, 1},
		{"screen_position.y", 4, 2},
		{"screen_size.x", 8, 3},
		{"screen_size.y", 12, 4},
		{"texture_position.x", 16, 0.25},
		{"texture_position.y", 20, 0.5},
		{"texture_size.x", 24, 0.75},
		{"texture_size.y", 28, 1},
		{"color.r", 32, 0.1},
		{"color.g", 36, 0.2},
		{"color.b", 40, 0.3},
		{"color_curve", 44, 0},
	}
	for _, tt := range tests {
		if got := f32At(buf[:], tt.off); got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
		}
	}
}

// TestPackSpriteParamsCurveFlag verifies the curve flag encoding.
func TestPackSpriteParamsCurveFlag(t *testing.T) {
	buf := PackSpriteParams(sprite.PushConstants{}, true)
	if got := f32At(buf[:], 44); got != 1 {
		t.Errorf("color_curve = %v, want 1", got)
	}
}

// TestCreateSheetTextureValidation checks device-free validation paths.
func TestCreateSheetTextureValidation(t *testing.T) {
	if _, err := CreateSheetTexture(nil, 16, 16, "sheet"); err != ErrNilDevice {
		t.Errorf("nil device: err = %v, want ErrNilDevice", err)
	}
}
