// Package cache provides a small generic LRU cache.
//
// The asset layer keeps decoded images here so that loading the same asset
// twice skips the decoder. Values are shared between callers and must be
// treated as immutable.
//
//	c := cache.New[string, *imageio.Decoded](32)
//	img, err := c.GetOrLoad("font.png", load)
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
