// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"math"
	"runtime"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/internal/blend"
	"github.com/gogpu/sprite/internal/parallel"
	"github.com/gogpu/sprite/texture"
)

// Renderer errors.
var (
	// ErrNilTarget is returned when a nil render target is passed.
	ErrNilTarget = errors.New("render: nil render target")

	// ErrNoCPUAccess is returned when the target does not expose pixel data.
	ErrNoCPUAccess = errors.New("render: target has no CPU pixel access")

	// ErrNilTexture is returned when a draw references a nil texture.
	ErrNilTexture = errors.New("render: nil sprite texture")
)

// BlendMode selects how shaded sprite pixels combine with the target.
type BlendMode int

const (
	// BlendSourceOver composites with standard alpha blending (default).
	BlendSourceOver BlendMode = iota

	// BlendReplace overwrites the target pixel unconditionally.
	BlendReplace

	// BlendAdditive adds the alpha-weighted source to the target.
	BlendAdditive
)

// SpriteDraw describes a single sprite quad to composite.
//
// Params carries the per-draw block: screen placement, the normalized
// sub-rectangle of Texture to sample, and the tint color consumed by
// the fragment stage. Filter, Wrap and Blend select sampling and
// compositing behavior; their zero values are nearest, clamp, and
// source-over.
type SpriteDraw struct {
	// Params is the per-draw parameter block.
	Params sprite.PushConstants

	// Texture is the sprite sheet to sample from.
	Texture *texture.Buffer

	// Filter selects the sampling filter.
	Filter texture.FilterMode

	// Wrap selects coordinate wrapping outside [0, 1].
	Wrap texture.WrapMode

	// Blend selects how the result combines with the target.
	Blend BlendMode
}

// Renderer composites sprite draws into a render target.
type Renderer interface {
	// Draw composites a single sprite into the target.
	Draw(target RenderTarget, draw SpriteDraw) error

	// DrawAll composites a batch of sprites in order.
	DrawAll(target RenderTarget, draws []SpriteDraw) error

	// Flush completes any pending work.
	Flush() error

	// Close releases renderer resources.
	Close() error
}

// RendererConfig configures a SoftwareRenderer.
type RendererConfig struct {
	// Stage configures the fragment stage. Nil uses defaults
	// (multiplicative tint, color curve disabled).
	Stage *sprite.StageConfig

	// Workers is the number of worker goroutines for row-parallel
	// compositing. Zero or negative uses runtime.NumCPU().
	Workers int
}

// SoftwareRenderer is a CPU implementation of Renderer.
//
// Each covered target pixel is sampled at its center, shaded through
// the fragment stage, and blended into the target. Rows are dispatched
// across a worker pool for large sprites.
type SoftwareRenderer struct {
	stage *sprite.FragmentStage
	pool  *parallel.WorkerPool
}

// Rows below this count are composited on the calling goroutine;
// pool dispatch overhead dominates for small sprites.
const parallelRowThreshold = 32

// NewSoftwareRenderer creates a CPU sprite renderer.
func NewSoftwareRenderer(config *RendererConfig) *SoftwareRenderer {
	if config == nil {
		config = &RendererConfig{}
	}
	workers := config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	r := &SoftwareRenderer{
		stage: sprite.NewFragmentStage(config.Stage),
		pool:  parallel.NewWorkerPool(workers),
	}
	sprite.Logger().Debug("software renderer initialized",
		"workers", workers,
		"colorCurve", r.stage.ColorCurveEnabled())
	return r
}

// Stage returns the fragment stage used by this renderer.
func (r *SoftwareRenderer) Stage() *sprite.FragmentStage {
	return r.stage
}

// Draw composites a single sprite into the target.
//
// The quad covers [ScreenPosition, ScreenPosition+ScreenSize) in pixel
// space, clipped to the target bounds. Pixels are sampled at their
// centers; a quad with zero or negative size covers nothing and is a
// no-op.
func (r *SoftwareRenderer) Draw(target RenderTarget, draw SpriteDraw) error {
	if target == nil {
		return ErrNilTarget
	}
	if draw.Texture == nil {
		return ErrNilTexture
	}
	pixels := target.Pixels()
	if pixels == nil {
		return ErrNoCPUAccess
	}

	pos := draw.Params.ScreenPosition
	size := draw.Params.ScreenSize
	if size.X <= 0 || size.Y <= 0 {
		return nil
	}

	x0 := clampRange(int(math.Floor(float64(pos.X))), 0, target.Width())
	x1 := clampRange(int(math.Ceil(float64(pos.X+size.X))), 0, target.Width())
	y0 := clampRange(int(math.Floor(float64(pos.Y))), 0, target.Height())
	y1 := clampRange(int(math.Ceil(float64(pos.Y+size.Y))), 0, target.Height())
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	stride := target.Stride()
	blendFn := blendFunc(draw.Blend)

	rowFn := func(py int) {
		fy := (float32(py) + 0.5 - pos.Y) / size.Y
		row := pixels[py*stride:]
		for px := x0; px < x1; px++ {
			fx := (float32(px) + 0.5 - pos.X) / size.X
			uv := draw.Params.TexCoord(fx, fy)

			sr, sg, sb, sa := texture.Sample(draw.Texture, float64(uv.X), float64(uv.Y), draw.Filter, draw.Wrap)
			shaded := r.stage.Shade(sprite.RGBAFromBytes(sr, sg, sb, sa), draw.Params.Color)
			cr, cg, cb, ca := shaded.Bytes()

			o := px * 4
			row[o], row[o+1], row[o+2], row[o+3] = blendFn(
				cr, cg, cb, ca,
				row[o], row[o+1], row[o+2], row[o+3],
			)
		}
	}

	rows := y1 - y0
	if rows < parallelRowThreshold || r.pool == nil {
		for py := y0; py < y1; py++ {
			rowFn(py)
		}
		return nil
	}

	work := make([]func(), rows)
	for i := range work {
		py := y0 + i
		work[i] = func() { rowFn(py) }
	}
	r.pool.ExecuteAll(work)
	return nil
}

// DrawAll composites a batch of sprites in submission order.
// Drawing stops at the first error.
func (r *SoftwareRenderer) DrawAll(target RenderTarget, draws []SpriteDraw) error {
	for i := range draws {
		if err := r.Draw(target, draws[i]); err != nil {
			return err
		}
	}
	return nil
}

// Flush is a no-op for the software renderer; Draw completes
// synchronously.
func (r *SoftwareRenderer) Flush() error {
	return nil
}

// Close shuts down the worker pool.
func (r *SoftwareRenderer) Close() error {
	if r.pool != nil {
		r.pool.Close()
	}
	return nil
}

// Ensure SoftwareRenderer implements Renderer.
var _ Renderer = (*SoftwareRenderer)(nil)

func blendFunc(mode BlendMode) blend.Func {
	switch mode {
	case BlendReplace:
		return blend.GetFunc(blend.ModeReplace)
	case BlendAdditive:
		return blend.GetFunc(blend.ModeAdditive)
	default:
		return blend.GetFunc(blend.ModeSourceOver)
	}
}

func clampRange(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
