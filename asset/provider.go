package asset

import (
	"archive/zip"
	"bytes"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/gogpu/twig"
	"github.com/pkg/errors"
)

// ErrNotFound is returned when no provider has an asset of the given name.
var ErrNotFound = errors.New("asset: not found")

// Provider reads assets by name.
type Provider interface {
	ReadAsset(name string) ([]byte, error)
}

// FS is a Provider backed by an fs.FS.
type FS struct {
	fsys  fs.FS
	label string
}

// NewFS returns a provider that reads from fsys.
func NewFS(fsys fs.FS) *FS {
	return &FS{fsys: fsys, label: "fs"}
}

// NewDir returns a provider that reads files below dir.
func NewDir(dir string) *FS {
	return &FS{fsys: os.DirFS(dir), label: dir}
}

// NewZip returns a provider that reads from an in-memory zip archive.
func NewZip(data []byte) (*FS, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, errors.Wrap(err, "asset: open zip")
	}
	return &FS{fsys: zr, label: "zip"}, nil
}

// OpenZip reads the zip archive at file into memory and returns a provider
// for it.
func OpenZip(file string) (*FS, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrapf(err, "asset: read %s", file)
	}
	p, err := NewZip(data)
	if err != nil {
		return nil, errors.Wrap(err, file)
	}
	p.label = file
	return p, nil
}

// ReadAsset returns the contents of name. Leading slashes and dot segments
// are cleaned, so a name can never escape the provider's root.
func (p *FS) ReadAsset(name string) ([]byte, error) {
	clean, ok := cleanName(name)
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "%q", name)
	}

	data, err := fs.ReadFile(p.fsys, clean)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, errors.Wrapf(ErrNotFound, "%s in %s", clean, p.label)
	case err != nil:
		return nil, errors.Wrapf(err, "asset: read %s in %s", clean, p.label)
	}
	twig.Logger().Debug("asset read", "name", clean, "source", p.label, "bytes", len(data))
	return data, nil
}

func (p *FS) String() string {
	return p.label
}

func cleanName(name string) (string, bool) {
	clean := strings.TrimPrefix(path.Clean("/"+name), "/")
	if clean == "" || !fs.ValidPath(clean) {
		return "", false
	}
	return clean, true
}

// Chain is a Provider that asks each provider in order and returns the
// first hit. Errors other than ErrNotFound stop the search.
type Chain []Provider

// ReadAsset implements Provider.
func (c Chain) ReadAsset(name string) ([]byte, error) {
	for _, p := range c {
		data, err := p.ReadAsset(name)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		return data, err
	}
	return nil, errors.Wrapf(ErrNotFound, "%q", name)
}
