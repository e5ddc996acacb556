package texture

import (
	"errors"
	"sync"
)

// Common errors for texture operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("texture: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("texture: invalid format")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("texture: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("texture: data buffer too small")

	// ErrOutOfBounds is returned when texel coordinates are outside bounds.
	ErrOutOfBounds = errors.New("texture: coordinates out of bounds")
)

// Buffer is a stride-aware CPU texture with lazy premultiplication.
//
// Buffer stores texel data in a contiguous byte slice. The premultiplied
// version, needed when uploading to GPU backends that blend in
// premultiplied space, is computed only on first request and cached.
//
// Thread safety: Buffer is safe for concurrent read access; arbitrarily
// many fragment invocations may sample it simultaneously.
// Write operations (Set*, Clear,
// InvalidatePremulCache) require external synchronization.
type Buffer struct {
	data   []byte
	width  int
	height int
	stride int
	format Format

	// Lazy premultiplication cache
	premulMu    sync.RWMutex
	premulReady bool
	premulData  []byte
}

// New creates a texture buffer with the given dimensions and format.
// Returns an error if dimensions are invalid or the format is unknown.
func New(width, height int, format Format) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	stride := format.RowBytes(width)
	return &Buffer{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// FromRaw creates a Buffer from existing data without copying.
// The caller must ensure data remains valid for the lifetime of the
// Buffer. Stride must be at least format.RowBytes(width).
func FromRaw(data []byte, width, height int, format Format, stride int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	minStride := format.RowBytes(width)
	if stride < minStride {
		return nil, ErrInvalidStride
	}

	requiredSize := stride * height
	if len(data) < requiredSize {
		return nil, ErrDataTooSmall
	}

	return &Buffer{
		data:   data[:requiredSize],
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// Clone creates a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	newData := make([]byte, len(b.data))
	copy(newData, b.data)

	return &Buffer{
		data:   newData,
		width:  b.width,
		height: b.height,
		stride: b.stride,
		format: b.format,
		// premul cache is not copied - recomputed if needed
	}
}

// Width returns the texture width in texels.
func (b *Buffer) Width() int { return b.width }

// Height returns the texture height in texels.
func (b *Buffer) Height() int { return b.height }

// Stride returns the number of bytes per row (including padding).
func (b *Buffer) Stride() int { return b.stride }

// Format returns the pixel format.
func (b *Buffer) Format() Format { return b.format }

// Bounds returns the texture dimensions as (width, height).
func (b *Buffer) Bounds() (int, int) { return b.width, b.height }

// IsEmpty returns true if the texture has zero dimensions.
func (b *Buffer) IsEmpty() bool { return b.width == 0 || b.height == 0 }

// Data returns the raw texel data slice.
// Modifying it affects the texture; call InvalidatePremulCache()
// afterwards if premultiplied data may have been cached.
func (b *Buffer) Data() []byte { return b.data }

// RowBytes returns a slice of the texel data for row y.
// Returns nil if y is out of bounds.
func (b *Buffer) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.data[start : start+b.format.RowBytes(b.width)]
}

// texelOffset returns the byte offset of texel (x, y), or -1 if out of
// bounds.
func (b *Buffer) texelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.stride + x*b.format.BytesPerPixel()
}

// GetRGBA returns the color at (x, y) as (r, g, b, a) in 0-255 range.
// For grayscale formats, r=g=b=gray and a=255. For formats without
// alpha, a=255. Returns (0,0,0,0) if coordinates are out of bounds.
func (b *Buffer) GetRGBA(x, y int) (r, g, bl, a uint8) {
	offset := b.texelOffset(x, y)
	if offset < 0 {
		return 0, 0, 0, 0
	}
	px := b.data[offset : offset+b.format.BytesPerPixel()]

	switch b.format {
	case FormatGray8:
		v := px[0]
		return v, v, v, 255
	case FormatRGB8:
		return px[0], px[1], px[2], 255
	case FormatRGBA8, FormatRGBAPremul:
		return px[0], px[1], px[2], px[3]
	case FormatBGRA8:
		return px[2], px[1], px[0], px[3]
	default:
		return 0, 0, 0, 0
	}
}

// SetRGBA sets the color at (x, y) from (r, g, b, a) in 0-255 range.
// For grayscale formats, standard luminance weights are used.
// Returns ErrOutOfBounds if coordinates are outside texture bounds.
func (b *Buffer) SetRGBA(x, y int, r, g, bl, a uint8) error {
	offset := b.texelOffset(x, y)
	if offset < 0 {
		return ErrOutOfBounds
	}

	switch b.format {
	case FormatGray8:
		// Standard luminance: 0.299*R + 0.587*G + 0.114*B
		gray := (int(r)*299 + int(g)*587 + int(bl)*114) / 1000
		b.data[offset] = byte(gray)
	case FormatRGB8:
		b.data[offset] = r
		b.data[offset+1] = g
		b.data[offset+2] = bl
	case FormatRGBA8, FormatRGBAPremul:
		b.data[offset] = r
		b.data[offset+1] = g
		b.data[offset+2] = bl
		b.data[offset+3] = a
	case FormatBGRA8:
		b.data[offset] = bl
		b.data[offset+1] = g
		b.data[offset+2] = r
		b.data[offset+3] = a
	}

	b.InvalidatePremulCache()
	return nil
}

// Clear sets all texels to zero (transparent black for RGBA formats).
func (b *Buffer) Clear() {
	clear(b.data)
	b.InvalidatePremulCache()
}

// Fill sets all texels to the given RGBA color.
func (b *Buffer) Fill(r, g, bl, a uint8) {
	for y := range b.height {
		for x := range b.width {
			_ = b.SetRGBA(x, y, r, g, bl, a)
		}
	}
}

// SubImage returns a view into a rectangular region of the texture.
// The returned Buffer shares the underlying data with the original;
// modifications are visible both ways. Returns nil if the bounds are
// invalid or outside the texture.
func (b *Buffer) SubImage(x, y, width, height int) *Buffer {
	if x < 0 || y < 0 || width <= 0 || height <= 0 {
		return nil
	}
	if x+width > b.width || y+height > b.height {
		return nil
	}

	offset := y*b.stride + x*b.format.BytesPerPixel()
	endOffset := (y+height-1)*b.stride + (x+width)*b.format.BytesPerPixel()

	return &Buffer{
		data:   b.data[offset:endOffset],
		width:  width,
		height: height,
		stride: b.stride, // original stride for proper row access
		format: b.format,
		// premul cache is not shared
	}
}

// InvalidatePremulCache marks the premultiplication cache as stale.
// Call this after modifying texel data directly via Data() or RowBytes().
func (b *Buffer) InvalidatePremulCache() {
	b.premulMu.Lock()
	b.premulReady = false
	b.premulMu.Unlock()
}

// PremultipliedData returns the texel data with premultiplied alpha.
// For formats already premultiplied or without alpha, returns the
// original data. The result is cached; call InvalidatePremulCache() if
// the original data has been modified.
func (b *Buffer) PremultipliedData() []byte {
	// Fast path: format already premultiplied or has no alpha
	if b.format.IsPremultiplied() || !b.format.HasAlpha() {
		return b.data
	}

	b.premulMu.RLock()
	if b.premulReady {
		data := b.premulData
		b.premulMu.RUnlock()
		return data
	}
	b.premulMu.RUnlock()

	b.premulMu.Lock()
	defer b.premulMu.Unlock()

	// Double-check after acquiring write lock
	if b.premulReady {
		return b.premulData
	}

	if len(b.premulData) != len(b.data) {
		b.premulData = make([]byte, len(b.data))
	}

	bpp := b.format.BytesPerPixel()
	for y := range b.height {
		row := y * b.stride
		for x := range b.width {
			b.premulTexel(row + x*bpp)
		}
	}
	b.premulReady = true

	return b.premulData
}

// premulTexel premultiplies a single texel.
// Caller must hold premulMu write lock.
func (b *Buffer) premulTexel(offset int) {
	// FormatRGBA8 and FormatBGRA8 both store alpha last; channel order
	// does not matter for a per-channel multiply.
	c0 := uint16(b.data[offset])
	c1 := uint16(b.data[offset+1])
	c2 := uint16(b.data[offset+2])
	a := uint16(b.data[offset+3])

	b.premulData[offset] = byte((c0*a + 127) / 255)
	b.premulData[offset+1] = byte((c1*a + 127) / 255)
	b.premulData[offset+2] = byte((c2*a + 127) / 255)
	b.premulData[offset+3] = byte(a)
}

// IsPremulCached returns true if premultiplied data is currently cached.
func (b *Buffer) IsPremulCached() bool {
	b.premulMu.RLock()
	ready := b.premulReady
	b.premulMu.RUnlock()
	return ready
}
