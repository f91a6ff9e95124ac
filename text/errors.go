package text

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrFontConstruction is returned when an atlas cannot be turned into a Font.
var ErrFontConstruction = errors.New("text: font construction failed")

// AtlasError describes which glyph of an atlas scan failed and why.
// It wraps ErrFontConstruction.
type AtlasError struct {
	Index  int
	Reason string
}

func (e *AtlasError) Error() string {
	return fmt.Sprintf("text: atlas glyph %d: %s", e.Index, e.Reason)
}

// Unwrap returns ErrFontConstruction.
func (e *AtlasError) Unwrap() error {
	return ErrFontConstruction
}
