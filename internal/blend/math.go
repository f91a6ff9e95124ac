// Package blend provides the fixed-point blending arithmetic used by the
// compositor.
//
// All weights live in the range [0, 65536] so that a full weight can be
// applied with a single right shift by 16:
//
//	channel' = channel + ((src - channel) * weight) >> 16
//
// The shift operates on the signed difference, so negative deltas round
// toward negative infinity. The result is truncated to 8 bits and added with
// wrap-around; for weights in range the sum never leaves [0, 255].
package blend

// Full is the weight that replaces the destination channel entirely.
const Full = 1 << 16

// Expand maps an 8-bit value 0..255 onto 0..256, so that 255 acts as a true
// unit weight under a right shift by 8.
//
// Formula: a + (a > 0 ? 1 : 0)
func Expand(a uint8) int32 {
	x := int32(a)
	if x > 0 {
		x++
	}
	return x
}

// Squared returns the weight used by solid-colour primitives (plot, line,
// rect): Expand(alpha) squared.
//
// Squaring biases low alphas toward weaker coverage: alpha 128 yields a
// weight of roughly 0.25 rather than 0.5.
func Squared(alpha uint8) int32 {
	x := Expand(alpha)
	return x * x
}

// Product returns the weight used by image primitives (tinted blits and
// text): the unsquared product of two expanded alphas.
func Product(a, b uint8) int32 {
	return Expand(a) * Expand(b)
}

// Channel moves dst toward src by weight/65536.
func Channel(dst, src uint8, weight int32) uint8 {
	return dst + uint8(((int32(src)-int32(dst))*weight)>>16)
}

// Alpha is Channel for the alpha channel, gated by keep. When keep is true
// the destination alpha is returned unchanged.
func Alpha(dst, src uint8, weight int32, keep bool) uint8 {
	if keep {
		return dst
	}
	return Channel(dst, src, weight)
}

// Scale multiplies a source channel by a tint channel: (Expand(tint) * c) >> 8.
// A tint of 255 leaves c unchanged; a tint of 0 yields 0.
func Scale(c, tint uint8) uint8 {
	return uint8((Expand(tint) * int32(c)) >> 8)
}
