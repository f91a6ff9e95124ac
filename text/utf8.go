package text

import "unicode/utf8"

// DecodeRune decodes the first UTF-8 sequence in p and returns the code point
// and the number of bytes consumed.
//
// A malformed sequence decodes to U+FFFD. The lead byte and any continuation
// bytes accepted before the error are consumed; the offending byte is not,
// so "\xC3A" yields U+FFFD then 'A'. Decoders that skip the offending byte
// too would lose the 'A'; this one never drops a valid character.
// Overlong forms (below 0x80, 0x800 or 0x10000 for 2-, 3- and 4-byte
// sequences) are malformed. A stray continuation byte decodes to U+FFFD with
// size 1. Empty input returns (U+FFFD, 0).
func DecodeRune(p []byte) (rune, int) {
	return decode(p)
}

// DecodeRuneInString is like DecodeRune but its input is a string.
func DecodeRuneInString(s string) (rune, int) {
	return decode(s)
}

func decode[T []byte | string](p T) (rune, int) {
	if len(p) == 0 {
		return utf8.RuneError, 0
	}

	c := p[0]
	var (
		r     rune
		extra int
		least rune
	)
	switch {
	case c >= 0xF0:
		r, extra, least = rune(c&0x07), 3, 0x10000
	case c >= 0xE0:
		r, extra, least = rune(c&0x0F), 2, 0x800
	case c >= 0xC0:
		r, extra, least = rune(c&0x1F), 1, 0x80
	case c >= 0x80:
		return utf8.RuneError, 1
	default:
		return rune(c), 1
	}

	n := 1
	for ; extra > 0; extra-- {
		if n >= len(p) || p[n]&0xC0 != 0x80 {
			return utf8.RuneError, n
		}
		r = r<<6 | rune(p[n]&0x3F)
		n++
	}
	if r < least {
		return utf8.RuneError, n
	}
	return r, n
}
