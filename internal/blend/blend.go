package blend

// Mode represents a compositing operation applied to fragment output.
type Mode uint8

const (
	// ModeReplace writes the source over the destination unconditionally.
	ModeReplace Mode = iota

	// ModeSourceOver is standard alpha compositing with straight-alpha
	// source: D' = S*Sa + D*(1-Sa). The default sprite blend state.
	ModeSourceOver

	// ModeAdditive adds the alpha-weighted source to the destination,
	// clamping to 255. Used for glows and HDR-style flashes.
	ModeAdditive
)

// String returns a string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeReplace:
		return "Replace"
	case ModeSourceOver:
		return "SourceOver"
	case ModeAdditive:
		return "Additive"
	default:
		return "Unknown"
	}
}

// Func is the signature for blend operations. Source is straight alpha,
// destination is the framebuffer value; all channels 0-255.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// GetFunc returns the blend function for the given mode.
// Returns sourceOver for unknown modes.
func GetFunc(mode Mode) Func {
	switch mode {
	case ModeReplace:
		return replace
	case ModeAdditive:
		return additive
	default:
		return sourceOver
	}
}

// replace overwrites the destination with the source.
func replace(sr, sg, sb, sa, _, _, _, _ byte) (r, g, b, a byte) {
	return sr, sg, sb, sa
}

// sourceOver composites a straight-alpha source over the destination.
func sourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte) {
	if sa == 255 {
		return sr, sg, sb, 255
	}
	if sa == 0 {
		return dr, dg, db, da
	}

	isa := inv255(sa)
	r = addClamp(mulDiv255(sr, sa), mulDiv255(dr, isa))
	g = addClamp(mulDiv255(sg, sa), mulDiv255(dg, isa))
	b = addClamp(mulDiv255(sb, sa), mulDiv255(db, isa))
	a = addClamp(sa, mulDiv255(da, isa))
	return r, g, b, a
}

// additive adds the alpha-weighted source to the destination with
// saturation.
func additive(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte) {
	r = addClamp(mulDiv255(sr, sa), dr)
	g = addClamp(mulDiv255(sg, sa), dg)
	b = addClamp(mulDiv255(sb, sa), db)
	a = addClamp(sa, da)
	return r, g, b, a
}
