// Package sprite implements the sprite-compositing stage of a 2D
// rendering pipeline for real-time clients.
//
// # Overview
//
// The heart of the package is the fragment stage: a pure function that
// turns a sampled texture atlas texel and a per-draw tint into a final
// on-screen color. Everything else exists to feed that function:
//
//   - [PushConstants] is the fixed per-draw parameter block shared with
//     the vertex stage (screen placement, atlas sub-rectangle, tint).
//   - [ComputeColor] and [FragmentStage.Shade] implement the per-fragment
//     color contract: a componentwise tint multiply that preserves alpha
//     and never clamps.
//   - texture/ provides CPU texture buffers with filtered, wrapped
//     sampling at normalized coordinates.
//   - atlas/ packs sub-images into a shared texture atlas and converts
//     regions into the normalized rectangles PushConstants carries.
//   - render/ rasterizes sprite quads on the CPU, invoking the fragment
//     stage once per covered pixel and blending the result.
//   - gpu/ carries the WGSL form of the same stage for wgpu-based
//     backends, compiled through naga.
//
// # Quick Start
//
//	import "github.com/gogpu/sprite"
//
//	stage := sprite.NewFragmentStage(nil)
//	out := stage.Shade(sprite.RGBA{R: 1, G: 0.5, B: 0.25, A: 1},
//	    sprite.RGB{R: 0.5, G: 2, B: 0})
//	// out == sprite.RGBA{R: 0.5, G: 1, B: 0, A: 1}
//
// The fragment stage is stateless and referentially transparent: it
// performs no I/O, holds no resources, and may be invoked from any
// number of goroutines concurrently.
package sprite
