// Package asset supplies named byte blobs to the runtime.
//
// A [Provider] resolves slash-separated names such as "main.lua" or
// "sprites/ship.png". Providers can read from a zip archive, a directory,
// any [io/fs.FS] (including embed.FS), or a [Chain] of other providers.
// [Loader] adds decoded bitmap loading with an LRU of decoded images.
package asset
