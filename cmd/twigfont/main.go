// Command twigfont writes a glyph atlas PNG usable as a twig font.
//
// Without -ttf the atlas is built from the 7x13 fixed font; with it, from an
// OpenType or TrueType file at the given pixel size. Put the result in a
// program's data as font.png to replace the default font.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/gogpu/twig/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

func main() {
	var (
		ttf     = flag.String("ttf", "", "OpenType/TrueType font file (default: built-in 7x13)")
		size    = flag.Float64("size", 12, "font size in pixels (with -ttf)")
		columns = flag.Int("columns", 16, "glyph cells per atlas row")
		output  = flag.String("o", "font.png", "output file")
	)
	flag.Parse()

	var face font.Face = basicfont.Face7x13
	if *ttf != "" {
		data, err := os.ReadFile(*ttf)
		if err != nil {
			log.Fatalf("Failed to read font: %v", err)
		}
		if face, err = text.LoadFace(data, *size); err != nil {
			log.Fatalf("Failed to load font: %v", err)
		}
	}

	atlas, err := text.NewAtlas(face, text.WithColumns(*columns))
	if err != nil {
		log.Fatalf("Failed to build atlas: %v", err)
	}
	// The atlas must scan back into a complete font.
	f, err := text.NewFont(atlas)
	if err != nil {
		log.Fatalf("Atlas does not scan: %v", err)
	}

	if err := atlas.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Atlas saved to %s (%dx%d, line height %d)\n",
		*output, atlas.Width(), atlas.Height(), f.LineHeight())
}
