// Package text renders text from bitmap glyph atlases.
//
// An atlas is an ordinary [twig.Bitmap] whose glyph cells are separated by a
// border colour, the colour of the pixel at (0, 0). [NewFont] scans the atlas
// row by row and records 224 glyphs: the 96 printable ASCII code points
// 32..127 followed by the 128 code points of the Windows-1252 upper range.
// Any atlas laid out this way works; [NewAtlas] builds one from a
// golang.org/x/image font.Face and [Default] builds one from
// basicfont.Face7x13.
//
// # Example usage
//
//	f, err := text.Default()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	frame, _ := twig.NewBitmap(320, 240)
//	text.Draw(frame, f, 8, 8, twig.White, "Hello,\nworld")
//
// Glyphs are drawn with [twig.Bitmap.BlitTint], so the atlas ink is
// multiplied by the draw colour and blended with the product weight.
// Code points missing from the atlas render as '?'.
package text
