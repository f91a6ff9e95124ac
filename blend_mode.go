package twig

// BlendMode controls whether blending updates the destination alpha channel.
type BlendMode uint8

const (
	// KeepAlpha blends colour channels but leaves destination alpha untouched.
	KeepAlpha BlendMode = iota

	// BlendAlpha blends the alpha channel with the same weight as colour.
	// This is the default for new bitmaps.
	BlendAlpha
)

// String returns a string representation of the blend mode.
func (m BlendMode) String() string {
	switch m {
	case KeepAlpha:
		return "keep"
	case BlendAlpha:
		return "blend"
	default:
		return "unknown"
	}
}

// ParseBlendMode maps "keep" and "blend" to their modes.
func ParseBlendMode(s string) (BlendMode, bool) {
	switch s {
	case "keep":
		return KeepAlpha, true
	case "blend":
		return BlendAlpha, true
	default:
		return BlendAlpha, false
	}
}

func (m BlendMode) keep() bool {
	return m == KeepAlpha
}
