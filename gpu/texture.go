package gpu

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/wgpu/hal"
	types "github.com/gogpu/gputypes"

	"github.com/gogpu/sprite/texture"
)

// Texture errors.
var (
	// ErrTextureDestroyed is returned when operating on a destroyed texture.
	ErrTextureDestroyed = errors.New("gpu: texture has been destroyed")

	// ErrNilDevice is returned when creating a resource without a device.
	ErrNilDevice = errors.New("gpu: device is nil")

	// ErrNilQueue is returned when uploading without a queue.
	ErrNilQueue = errors.New("gpu: queue is nil")

	// ErrNilBuffer is returned when uploading from a nil CPU buffer.
	ErrNilBuffer = errors.New("gpu: source buffer is nil")

	// ErrUnsupportedUpload is returned for CPU formats the GPU path
	// cannot upload directly.
	ErrUnsupportedUpload = errors.New("gpu: unsupported upload format")
)

// SheetTexture is a GPU sprite sheet texture.
//
// SheetTexture wraps a hal.Texture with lazy default view creation
// using sync.Once. It is safe for concurrent read access; Destroy
// is idempotent.
type SheetTexture struct {
	mu sync.RWMutex

	halTexture hal.Texture
	device     hal.Device

	width  uint32
	height uint32
	format types.TextureFormat

	defaultViewOnce sync.Once
	defaultView     hal.TextureView
	defaultViewErr  error

	destroyed bool
}

// CreateSheetTexture creates a 2D sprite sheet texture on the device.
//
// The texture is created with binding and copy-destination usage so
// sprite data can be uploaded with Upload.
func CreateSheetTexture(device hal.Device, width, height uint32, label string) (*SheetTexture, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("gpu: invalid texture size %dx%d", width, height)
	}

	format := types.TextureFormatRGBA8Unorm
	halTexture, err := device.CreateTexture(&hal.TextureDescriptor{
		Label: label,
		Size: hal.Extent3D{
			Width:              width,
			Height:             height,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     types.TextureDimension2D,
		Format:        format,
		Usage:         types.TextureUsageTextureBinding | types.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create texture: %w", err)
	}

	return &SheetTexture{
		halTexture: halTexture,
		device:     device,
		width:      width,
		height:     height,
		format:     format,
	}, nil
}

// Width returns the texture width in pixels.
func (t *SheetTexture) Width() uint32 { return t.width }

// Height returns the texture height in pixels.
func (t *SheetTexture) Height() uint32 { return t.height }

// Format returns the texture pixel format.
func (t *SheetTexture) Format() types.TextureFormat { return t.format }

// IsDestroyed returns true if the texture has been destroyed.
func (t *SheetTexture) IsDestroyed() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.destroyed
}

// Raw returns the underlying texture handle, or nil if destroyed.
func (t *SheetTexture) Raw() hal.Texture {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.destroyed {
		return nil
	}
	return t.halTexture
}

// Upload writes a CPU sprite sheet into the texture.
//
// The buffer must be RGBA8 (straight or premultiplied) and match the
// texture dimensions. Premultiplied conversion is the caller's choice:
// pass buf.PremultipliedData through a premultiplied-format buffer if
// the pipeline blends premultiplied.
func (t *SheetTexture) Upload(queue hal.Queue, buf *texture.Buffer) error {
	if queue == nil {
		return ErrNilQueue
	}
	if buf == nil {
		return ErrNilBuffer
	}
	if buf.Format() != texture.FormatRGBA8 && buf.Format() != texture.FormatRGBAPremul {
		return fmt.Errorf("%w: %v", ErrUnsupportedUpload, buf.Format())
	}
	if uint32(buf.Width()) != t.width || uint32(buf.Height()) != t.height {
		return fmt.Errorf("gpu: buffer size %dx%d does not match texture %dx%d",
			buf.Width(), buf.Height(), t.width, t.height)
	}

	t.mu.RLock()
	destroyed := t.destroyed
	halTex := t.halTexture
	t.mu.RUnlock()
	if destroyed {
		return ErrTextureDestroyed
	}

	dst := &hal.ImageCopyTexture{
		Texture:  halTex,
		MipLevel: 0,
		Origin:   hal.Origin3D{X: 0, Y: 0, Z: 0},
		Aspect:   types.TextureAspectAll,
	}
	layout := &hal.ImageDataLayout{
		Offset:       0,
		BytesPerRow:  uint32(buf.Stride()),
		RowsPerImage: t.height,
	}
	size := &hal.Extent3D{
		Width:              t.width,
		Height:             t.height,
		DepthOrArrayLayers: 1,
	}

	queue.WriteTexture(dst, buf.Data(), layout, size)
	return nil
}

// GetDefaultView returns the default view, creating it lazily on
// first call. Safe for concurrent use.
func (t *SheetTexture) GetDefaultView() (hal.TextureView, error) {
	t.mu.RLock()
	if t.destroyed {
		t.mu.RUnlock()
		return nil, ErrTextureDestroyed
	}
	t.mu.RUnlock()

	t.defaultViewOnce.Do(func() {
		t.defaultView, t.defaultViewErr = t.device.CreateTextureView(t.halTexture, &hal.TextureViewDescriptor{
			Label:     "sprite sheet (default view)",
			Format:    types.TextureFormatUndefined,
			Dimension: types.TextureViewDimensionUndefined,
			Aspect:    types.TextureAspectAll,
		})
	})

	if t.defaultViewErr != nil {
		return nil, fmt.Errorf("gpu: create default view: %w", t.defaultViewErr)
	}
	return t.defaultView, nil
}

// Destroy releases the texture and its default view.
// Calling Destroy multiple times is safe.
func (t *SheetTexture) Destroy() {
	t.mu.Lock()
	if t.destroyed {
		t.mu.Unlock()
		return
	}
	t.destroyed = true
	device := t.device
	halTex := t.halTexture
	view := t.defaultView
	t.halTexture = nil
	t.defaultView = nil
	t.mu.Unlock()

	if device == nil {
		return
	}
	if view != nil {
		device.DestroyTextureView(view)
	}
	if halTex != nil {
		device.DestroyTexture(halTex)
	}
}
