// Package gpu provides WebGPU resources for the sprite compositor.
//
// It mirrors the CPU fragment stage on the GPU: the embedded WGSL
// shader performs the same multiplicative tint (and optional color
// curve) as sprite.FragmentStage, and SpriteParams packing produces
// the uniform block the shader expects.
package gpu

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/sprite"
)

//go:embed shaders/sprite.wgsl
var spriteShaderWGSL string

// SpriteShaderSource returns the WGSL source of the sprite shader.
func SpriteShaderSource() string {
	return spriteShaderWGSL
}

// CompileShaderToSPIRV compiles WGSL source to a SPIR-V uint32 slice.
func CompileShaderToSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("gpu: compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	return spirvCode, nil
}

// CreateShaderModule creates a HAL shader module from SPIR-V code.
func CreateShaderModule(device hal.Device, label string, spirvCode []uint32) (hal.ShaderModule, error) {
	return device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: label,
		Source: hal.ShaderSource{
			SPIRV: spirvCode,
		},
	})
}

// CompileSpriteShader compiles the embedded sprite shader and creates
// a shader module on the device.
func CompileSpriteShader(device hal.Device) (hal.ShaderModule, error) {
	code, err := CompileShaderToSPIRV(spriteShaderWGSL)
	if err != nil {
		return nil, err
	}
	sprite.Logger().Debug("sprite shader compiled", "words", len(code))
	return CreateShaderModule(device, "sprite shader", code)
}

// SpriteParamsSize is the byte size of the packed SpriteParams uniform
// block, including std140 padding.
const SpriteParamsSize = 48

// PackSpriteParams packs a per-draw parameter block into the std140
// layout of the SpriteParams uniform in sprite.wgsl.
//
// Layout (offsets in bytes):
//
//	 0  screen_position  vec2<f32>
//	 8  screen_size      vec2<f32>
//	16  texture_position vec2<f32>
//	24  texture_size     vec2<f32>
//	32  color            vec3<f32>
//	44  color_curve      f32
func PackSpriteParams(pc sprite.PushConstants, colorCurve bool) [SpriteParamsSize]byte {
	var buf [SpriteParamsSize]byte

	putVec2 := func(off int, v sprite.Vec2) {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v.X))
		binary.LittleEndian.PutUint32(buf[off+4:], math.Float32bits(v.Y))
	}

	putVec2(0, pc.ScreenPosition)
	putVec2(8, pc.ScreenSize)
	putVec2(16, pc.TexturePosition)
	putVec2(24, pc.TextureSize)

	binary.LittleEndian.PutUint32(buf[32:], math.Float32bits(pc.Color.R))
	binary.LittleEndian.PutUint32(buf[36:], math.Float32bits(pc.Color.G))
	binary.LittleEndian.PutUint32(buf[40:], math.Float32bits(pc.Color.B))

	curve := float32(0)
	if colorCurve {
		curve = 1
	}
	binary.LittleEndian.PutUint32(buf[44:], math.Float32bits(curve))

	return buf
}
