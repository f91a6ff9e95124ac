package text

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// upperRange maps atlas slots 96..223 (bytes 0x80..0xFF) to code points.
// Bytes that Windows-1252 leaves undefined (0x81, 0x8D, 0x8F, 0x90, 0x9D)
// map to U+FFFD.
var upperRange = func() [128]rune {
	var t [128]rune
	for i := range t {
		r := charmap.Windows1252.DecodeByte(byte(0x80 + i))
		if r >= 0x80 && r < 0xA0 {
			r = utf8.RuneError
		}
		t[i] = r
	}
	return t
}()

// slotRune returns the code point of atlas slot i in scan order.
func slotRune(i int) rune {
	if i < asciiGlyphs {
		return rune(i + 32)
	}
	return upperRange[i-asciiGlyphs]
}
