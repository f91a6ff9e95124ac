package asset

import (
	"github.com/gogpu/twig"
	"github.com/gogpu/twig/internal/cache"
	"github.com/pkg/errors"
)

// DefaultCacheSize is the number of decoded images a Loader keeps.
const DefaultCacheSize = 32

// Loader reads assets from a Provider and decodes images into bitmaps.
// Decoded images are cached by name; every call returns a fresh copy, so
// callers may draw into the result.
type Loader struct {
	provider Provider
	images   *cache.Cache[string, *twig.Bitmap]
}

// NewLoader returns a loader over p that caches up to size decoded images.
// A size of 0 or less uses DefaultCacheSize.
func NewLoader(p Provider, size int) *Loader {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &Loader{
		provider: p,
		images:   cache.New[string, *twig.Bitmap](size),
	}
}

// ReadAsset implements Provider by delegating to the underlying provider.
func (l *Loader) ReadAsset(name string) ([]byte, error) {
	return l.provider.ReadAsset(name)
}

// Bitmap loads and decodes the image asset name.
func (l *Loader) Bitmap(name string) (*twig.Bitmap, error) {
	hit := true
	bmp, err := l.images.GetOrLoad(name, func() (*twig.Bitmap, error) {
		hit = false
		data, err := l.provider.ReadAsset(name)
		if err != nil {
			return nil, err
		}
		bmp, err := twig.LoadBitmap(data)
		if err != nil {
			return nil, errors.Wrap(err, name)
		}
		return bmp, nil
	})
	if err != nil {
		return nil, err
	}
	twig.Logger().Debug("asset bitmap", "name", name, "cached", hit,
		"width", bmp.Width(), "height", bmp.Height())
	return bmp.Clone(), nil
}

// Stats returns the image cache counters.
func (l *Loader) Stats() cache.Stats {
	return l.images.Stats()
}
