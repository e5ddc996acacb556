package atlas

import "sync"

// Default atlas settings.
const (
	// DefaultSize is the default atlas dimension (2048x2048).
	DefaultSize = 2048

	// MinSize is the minimum atlas dimension (64x64).
	MinSize = 64

	// DefaultPadding is the padding between packed regions, preventing
	// bilinear sampling from bleeding neighboring sprites.
	DefaultPadding = 1
)

// shelf represents a horizontal shelf in the shelf-packing algorithm.
type shelf struct {
	y      int // Top Y coordinate of this shelf
	height int // Height of this shelf (tallest item so far)
	nextX  int // Next available X position on this shelf
}

// RectAllocator implements a shelf-packing algorithm for allocating
// rectangular regions within a fixed-size area.
//
// The allocator divides the atlas into horizontal "shelves". Each new
// rectangle is placed on the first shelf with room, or a new shelf is
// created below the last one.
type RectAllocator struct {
	mu sync.Mutex

	width  int
	height int

	// Shelves, sorted by Y position.
	shelves []*shelf

	padding int

	allocCount int
	usedArea   int
}

// NewRectAllocator creates a new rectangular region allocator.
// Dimensions below MinSize are raised to MinSize; negative padding is
// treated as zero.
func NewRectAllocator(width, height, padding int) *RectAllocator {
	if width < MinSize {
		width = MinSize
	}
	if height < MinSize {
		height = MinSize
	}
	if padding < 0 {
		padding = 0
	}

	return &RectAllocator{
		width:   width,
		height:  height,
		shelves: make([]*shelf, 0, 16),
		padding: padding,
	}
}

// Allocate finds space for a rectangle of the given size.
// Returns an invalid (zero) region if the rectangle cannot be placed.
func (a *RectAllocator) Allocate(width, height int) Region {
	a.mu.Lock()
	defer a.mu.Unlock()

	if width <= 0 || height <= 0 {
		return Region{}
	}

	paddedWidth := width + a.padding
	paddedHeight := height + a.padding

	if paddedWidth > a.width || paddedHeight > a.height {
		return Region{}
	}

	for i, s := range a.shelves {
		if a.fitsOnShelf(s, paddedWidth, paddedHeight) {
			return a.allocateOnShelf(i, width, height, paddedWidth)
		}
	}

	return a.allocateNewShelf(width, height, paddedWidth, paddedHeight)
}

// fitsOnShelf checks if a rectangle fits on the given shelf.
func (a *RectAllocator) fitsOnShelf(s *shelf, paddedWidth, paddedHeight int) bool {
	if s.nextX+paddedWidth > a.width {
		return false
	}
	// A taller item cannot grow a shelf that already holds items.
	if paddedHeight > s.height && s.nextX > 0 {
		return false
	}
	return true
}

// allocateOnShelf allocates space on an existing shelf.
func (a *RectAllocator) allocateOnShelf(shelfIndex, width, height, paddedWidth int) Region {
	s := a.shelves[shelfIndex]

	region := Region{
		X:      s.nextX,
		Y:      s.y,
		Width:  width,
		Height: height,
	}

	s.nextX += paddedWidth
	if height+a.padding > s.height {
		s.height = height + a.padding
	}

	a.allocCount++
	a.usedArea += width * height

	return region
}

// allocateNewShelf creates a new shelf below the last one and allocates
// the rectangle on it.
func (a *RectAllocator) allocateNewShelf(width, height, paddedWidth, paddedHeight int) Region {
	newY := 0
	if len(a.shelves) > 0 {
		lastShelf := a.shelves[len(a.shelves)-1]
		newY = lastShelf.y + lastShelf.height
	}

	if newY+paddedHeight > a.height {
		return Region{}
	}

	a.shelves = append(a.shelves, &shelf{
		y:      newY,
		height: paddedHeight,
		nextX:  paddedWidth,
	})

	region := Region{
		X:      0,
		Y:      newY,
		Width:  width,
		Height: height,
	}

	a.allocCount++
	a.usedArea += width * height

	return region
}

// Grow extends the allocatable area. Existing allocations stay valid;
// shrinking is not supported and leaves the allocator unchanged.
func (a *RectAllocator) Grow(width, height int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if width > a.width {
		a.width = width
	}
	if height > a.height {
		a.height = height
	}
}

// Reset clears all allocations, making the entire area available again.
func (a *RectAllocator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.shelves = a.shelves[:0]
	a.allocCount = 0
	a.usedArea = 0
}

// UsedArea returns the total area of allocated rectangles.
func (a *RectAllocator) UsedArea() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.usedArea
}

// Utilization returns the fraction of area used (0.0 to 1.0).
func (a *RectAllocator) Utilization() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	totalArea := a.width * a.height
	if totalArea == 0 {
		return 0
	}
	return float64(a.usedArea) / float64(totalArea)
}

// AllocCount returns the number of successful allocations.
func (a *RectAllocator) AllocCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.allocCount
}
