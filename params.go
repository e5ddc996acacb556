package sprite

// Vec2 is a two-component float32 vector.
// Used for screen-space positions/extents and normalized texture
// coordinates.
type Vec2 struct {
	X, Y float32
}

// PushConstants is the per-draw parameter block shared by the vertex and
// fragment stages. It is supplied once per draw call and is logically
// constant across every fragment of that draw.
//
// The fragment stage consumes only Color; the remaining fields position
// the sprite quad and select the atlas sub-rectangle in the vertex
// stage. They are carried here because the whole block travels together
// as a single push-constant-sized unit.
//
// PushConstants is a value type and is never mutated by any stage.
type PushConstants struct {
	// ScreenPosition is the top-left corner of the sprite in screen space.
	ScreenPosition Vec2

	// ScreenSize is the sprite extent in screen space.
	ScreenSize Vec2

	// TexturePosition is the top-left corner of the atlas sub-rectangle,
	// in normalized texture coordinates.
	TexturePosition Vec2

	// TextureSize is the extent of the atlas sub-rectangle, in normalized
	// texture coordinates.
	TextureSize Vec2

	// Color is the multiplicative tint applied per fragment.
	// Channels are nominally in [0,1] but are not clamped; values above 1
	// brighten additively under suitable blend state.
	Color RGB
}

// TexCoord maps interpolation factors (s, t) in [0,1] across the sprite
// quad to normalized texture coordinates inside the atlas sub-rectangle.
// This is the vertex-stage contract that produces the interpolated
// coordinate each fragment receives.
func (pc PushConstants) TexCoord(s, t float32) Vec2 {
	return Vec2{
		X: pc.TexturePosition.X + s*pc.TextureSize.X,
		Y: pc.TexturePosition.Y + t*pc.TextureSize.Y,
	}
}
