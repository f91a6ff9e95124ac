package text

import "github.com/gogpu/twig"

// AtlasOption configures NewAtlas.
type AtlasOption func(*atlasConfig)

type atlasConfig struct {
	border  twig.Color
	columns int
}

func defaultAtlasConfig() atlasConfig {
	return atlasConfig{
		border:  twig.Magenta,
		columns: 16,
	}
}

// WithBorder sets the separator colour drawn between glyph cells.
// Its RGB must differ from black and white, which glyph cells use.
func WithBorder(c twig.Color) AtlasOption {
	return func(cfg *atlasConfig) {
		cfg.border = c
	}
}

// WithColumns sets the number of glyph cells per atlas row.
func WithColumns(n int) AtlasOption {
	return func(cfg *atlasConfig) {
		cfg.columns = n
	}
}
