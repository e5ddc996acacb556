// Package atlas packs sprite images into a shared texture atlas.
//
// An atlas is a single large texture containing many sub-images, each
// addressed by a named Region. Regions convert to the normalized
// (texture_position, texture_size) rectangles that the per-draw
// parameter block carries to the vertex stage.
package atlas

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/texture"
)

// Atlas errors.
var (
	// ErrAtlasFull is returned when the atlas cannot fit the requested image.
	ErrAtlasFull = errors.New("atlas: texture atlas is full")

	// ErrDuplicateName is returned when adding a region name that already exists.
	ErrDuplicateName = errors.New("atlas: region name already exists")

	// ErrUnknownRegion is returned when looking up a name that was never added.
	ErrUnknownRegion = errors.New("atlas: unknown region")

	// ErrNilImage is returned when adding a nil image.
	ErrNilImage = errors.New("atlas: nil image")
)

// Region is a rectangular sub-image of the atlas, in texel coordinates.
type Region struct {
	// X is the left edge of the region.
	X int
	// Y is the top edge of the region.
	Y int
	// Width is the region width.
	Width int
	// Height is the region height.
	Height int
}

// IsValid returns true if the region has positive dimensions.
func (r Region) IsValid() bool {
	return r.Width > 0 && r.Height > 0
}

// Contains returns true if the texel (x, y) is inside the region.
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// String returns a string representation of the region.
func (r Region) String() string {
	return fmt.Sprintf("Region(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

// Normalized converts the region into the normalized texture rectangle
// carried by the per-draw parameter block: position is the top-left
// corner and size the extent, both as fractions of the atlas
// dimensions.
func (r Region) Normalized(atlasWidth, atlasHeight int) (position, size sprite.Vec2) {
	if atlasWidth <= 0 || atlasHeight <= 0 {
		return sprite.Vec2{}, sprite.Vec2{}
	}
	w := float32(atlasWidth)
	h := float32(atlasHeight)
	position = sprite.Vec2{X: float32(r.X) / w, Y: float32(r.Y) / h}
	size = sprite.Vec2{X: float32(r.Width) / w, Y: float32(r.Height) / h}
	return position, size
}

// Atlas is a texture atlas: one shared texture plus named regions.
//
// Thread safety: Add and Region may be called concurrently. The
// underlying texture is safe for concurrent sampling; callers must not
// mutate it while draws are in flight.
type Atlas struct {
	mu sync.RWMutex

	tex     *texture.Buffer
	alloc   *RectAllocator
	regions map[string]Region
}

// New creates an atlas with the given dimensions in FormatRGBA8.
// Dimensions below MinSize are raised to MinSize.
func New(width, height int) (*Atlas, error) {
	if width < MinSize {
		width = MinSize
	}
	if height < MinSize {
		height = MinSize
	}

	tex, err := texture.New(width, height, texture.FormatRGBA8)
	if err != nil {
		return nil, fmt.Errorf("atlas: create texture: %w", err)
	}

	return &Atlas{
		tex:     tex,
		alloc:   NewRectAllocator(width, height, DefaultPadding),
		regions: make(map[string]Region),
	}, nil
}

// Texture returns the shared atlas texture.
// The fragment pipeline borrows it read-only for the duration of a draw.
func (a *Atlas) Texture() *texture.Buffer {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.tex
}

// Bounds returns the atlas dimensions as (width, height).
func (a *Atlas) Bounds() (int, int) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.tex.Bounds()
}

// Add packs an image into the atlas under the given name and returns
// its region. Returns ErrAtlasFull if no space remains, or
// ErrDuplicateName if the name is taken.
func (a *Atlas) Add(name string, img *texture.Buffer) (Region, error) {
	if img == nil || img.IsEmpty() {
		return Region{}, ErrNilImage
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, exists := a.regions[name]; exists {
		return Region{}, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	region := a.alloc.Allocate(img.Width(), img.Height())
	if !region.IsValid() {
		return Region{}, fmt.Errorf("%w: no space for %dx%d %q",
			ErrAtlasFull, img.Width(), img.Height(), name)
	}

	a.blit(region, img)
	a.regions[name] = region

	sprite.Logger().Debug("atlas region packed",
		"name", name,
		"region", region.String(),
		"utilization", a.alloc.Utilization())

	return region, nil
}

// Grow reallocates the atlas texture at the given size and keeps all
// packed regions in place. The returned texture replaces the previous
// one; draws holding the old texture keep a valid snapshot.
// Shrinking is not supported.
func (a *Atlas) Grow(width, height int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	curW, curH := a.tex.Bounds()
	if width < curW {
		width = curW
	}
	if height < curH {
		height = curH
	}
	if width == curW && height == curH {
		return nil
	}

	grown, err := texture.New(width, height, texture.FormatRGBA8)
	if err != nil {
		return fmt.Errorf("atlas: grow texture: %w", err)
	}
	for y := 0; y < curH; y++ {
		copy(grown.RowBytes(y), a.tex.RowBytes(y))
	}

	a.tex = grown
	a.alloc.Grow(width, height)

	sprite.Logger().Debug("atlas grown",
		"width", width,
		"height", height,
		"regions", len(a.regions))
	return nil
}

// blit copies img into the atlas texture at region.
// Caller must hold mu.
func (a *Atlas) blit(region Region, img *texture.Buffer) {
	for y := range img.Height() {
		for x := range img.Width() {
			r, g, b, alpha := img.GetRGBA(x, y)
			_ = a.tex.SetRGBA(region.X+x, region.Y+y, r, g, b, alpha)
		}
	}
}

// Region returns the named region.
func (a *Atlas) Region(name string) (Region, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	region, ok := a.regions[name]
	if !ok {
		return Region{}, fmt.Errorf("%w: %q", ErrUnknownRegion, name)
	}
	return region, nil
}

// Names returns the names of all packed regions, in unspecified order.
func (a *Atlas) Names() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	names := make([]string, 0, len(a.regions))
	for name := range a.regions {
		names = append(names, name)
	}
	return names
}

// Len returns the number of packed regions.
func (a *Atlas) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.regions)
}

// PushConstants builds the per-draw parameter block for drawing the
// named region at the given screen placement with the given tint.
func (a *Atlas) PushConstants(name string, screenPos, screenSize sprite.Vec2, tint sprite.RGB) (sprite.PushConstants, error) {
	a.mu.RLock()
	region, ok := a.regions[name]
	w, h := a.tex.Bounds()
	a.mu.RUnlock()
	if !ok {
		return sprite.PushConstants{}, fmt.Errorf("%w: %q", ErrUnknownRegion, name)
	}

	texPos, texSize := region.Normalized(w, h)

	return sprite.PushConstants{
		ScreenPosition:  screenPos,
		ScreenSize:      screenSize,
		TexturePosition: texPos,
		TextureSize:     texSize,
		Color:           tint,
	}, nil
}
