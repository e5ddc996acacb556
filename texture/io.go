package texture

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("texture: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("texture: empty data")
)

// Load loads a texture from the given file path, auto-detecting the
// format. Supported formats: PNG, JPEG.
func Load(path string) (*Buffer, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png", ".jpg", ".jpeg":
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("texture: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// LoadCached loads a texture through a cache, decoding it only on a
// cache miss.
func LoadCached(c *Cache, path string) (*Buffer, error) {
	if c == nil {
		return Load(path)
	}
	return c.GetOrLoad(path, Load)
}

// Decode decodes a texture from the given reader, auto-detecting the
// format.
func Decode(r io.Reader) (*Buffer, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("texture: decode: %w", err)
	}
	return FromStdImage(img), nil
}

// SavePNG saves the texture as a PNG file.
func (b *Buffer) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("texture: create file: %w", err)
	}

	if err := b.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// EncodePNG encodes the texture as PNG to the given writer.
func (b *Buffer) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, b.ToStdImage()); err != nil {
		return fmt.Errorf("texture: encode PNG: %w", err)
	}
	return nil
}

// EncodeJPEG encodes the texture as JPEG to the given writer with the
// given quality (1-100).
func (b *Buffer) EncodeJPEG(w io.Writer, quality int) error {
	if quality < 1 {
		quality = 1
	}
	if quality > 100 {
		quality = 100
	}
	if err := jpeg.Encode(w, b.ToStdImage(), &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("texture: encode JPEG: %w", err)
	}
	return nil
}

// FromStdImage creates a Buffer from a standard library image.Image.
// The result is always FormatRGBA8 (straight alpha).
func FromStdImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	buf, err := New(width, height, FormatRGBA8)
	if err != nil {
		return nil
	}

	// Fast path for NRGBA images (straight alpha, matching FormatRGBA8)
	if nrgba, ok := img.(*image.NRGBA); ok {
		if nrgba.Stride == buf.Stride() {
			copy(buf.Data(), nrgba.Pix)
			return buf
		}
		for y := range height {
			srcStart := y * nrgba.Stride
			copy(buf.RowBytes(y), nrgba.Pix[srcStart:srcStart+width*4])
		}
		return buf
	}

	// Generic path for any image type
	for y := range height {
		for x := range width {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			r, g, b, a := c.RGBA()
			// RGBA() returns premultiplied 16-bit values; un-premultiply
			// so the buffer stores straight alpha.
			if a != 0 && a != 0xffff {
				r = r * 0xffff / a
				g = g * 0xffff / a
				b = b * 0xffff / a
			}
			_ = buf.SetRGBA(x, y, byte(r>>8), byte(g>>8), byte(b>>8), byte(a>>8))
		}
	}
	return buf
}

// ToStdImage converts the Buffer to a standard library image.Image.
// Returns *image.NRGBA for color formats, *image.Gray for grayscale.
func (b *Buffer) ToStdImage() image.Image {
	rect := image.Rect(0, 0, b.width, b.height)

	if b.format == FormatGray8 {
		gray := image.NewGray(rect)
		for y := range b.height {
			copy(gray.Pix[y*gray.Stride:], b.RowBytes(y))
		}
		return gray
	}

	nrgba := image.NewNRGBA(rect)
	for y := range b.height {
		dstStart := y * nrgba.Stride
		for x := range b.width {
			r, g, bl, a := b.GetRGBA(x, y)
			off := dstStart + x*4
			nrgba.Pix[off] = r
			nrgba.Pix[off+1] = g
			nrgba.Pix[off+2] = bl
			nrgba.Pix[off+3] = a
		}
	}
	return nrgba
}
