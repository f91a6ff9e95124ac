package script

import (
	"github.com/gogpu/twig"
	"github.com/gogpu/twig/text"
	lua "github.com/yuin/gopher-lua"
)

func (h *Host) registerGraphics() {
	h.L.SetGlobal("graphics", h.L.SetFuncs(h.L.NewTable(), map[string]lua.LGFunction{
		"clip":        h.gfxClip,
		"blit_mode":   h.gfxBlitMode,
		"clear":       h.gfxClear,
		"plot":        h.gfxPlot,
		"line":        h.gfxLine,
		"rect":        h.gfxRect,
		"rect_line":   h.gfxRectLine,
		"blit":        h.gfxBlit,
		"blit_alpha":  h.gfxBlitAlpha,
		"blit_tint":   h.gfxBlitTint,
		"print":       h.gfxPrint,
		"text_width":  h.gfxTextWidth,
		"text_height": h.gfxTextHeight,
		"width":       h.gfxWidth,
		"height":      h.gfxHeight,
	}))
}

// graphics.clip(x, y, w, h)
func (h *Host) gfxClip(L *lua.LState) int {
	h.frame.SetClip(argInt(L, 1), argInt(L, 2), argInt(L, 3), argInt(L, 4))
	return 0
}

// graphics.blit_mode("keep" | "blend"); other values are ignored.
func (h *Host) gfxBlitMode(L *lua.LState) int {
	s := L.CheckString(1)
	mode, ok := twig.ParseBlendMode(s)
	if !ok {
		twig.Logger().Warn("unknown blit mode", "mode", s)
		return 0
	}
	h.frame.SetBlendMode(mode)
	return 0
}

// graphics.clear(r, g, b, a)
func (h *Host) gfxClear(L *lua.LState) int {
	h.frame.Clear(argColor(L, 1))
	return 0
}

// graphics.plot(x, y, r, g, b, a)
func (h *Host) gfxPlot(L *lua.LState) int {
	h.frame.Plot(argInt(L, 1), argInt(L, 2), argColor(L, 3))
	return 0
}

// graphics.line(x0, y0, x1, y1, r, g, b, a)
func (h *Host) gfxLine(L *lua.LState) int {
	h.frame.Line(argInt(L, 1), argInt(L, 2), argInt(L, 3), argInt(L, 4), argColor(L, 5))
	return 0
}

// graphics.rect(x, y, w, h, r, g, b, a)
func (h *Host) gfxRect(L *lua.LState) int {
	h.frame.Rect(argInt(L, 1), argInt(L, 2), argInt(L, 3), argInt(L, 4), argColor(L, 5))
	return 0
}

// graphics.rect_line(x, y, w, h, r, g, b, a)
func (h *Host) gfxRectLine(L *lua.LState) int {
	h.frame.RectLine(argInt(L, 1), argInt(L, 2), argInt(L, 3), argInt(L, 4), argColor(L, 5))
	return 0
}

// blitArgs reads (bmp, x, y, sx, sy, sw, sh) common to the blit functions.
type blitArgs struct {
	src          *twig.Bitmap
	x, y, sx, sy int
	sw, sh       int
}

func (h *Host) checkBlitArgs(L *lua.LState) blitArgs {
	src, _ := h.checkBitmap(L, 1)
	return blitArgs{
		src: src,
		x:   argInt(L, 2),
		y:   argInt(L, 3),
		sx:  argInt(L, 4),
		sy:  argInt(L, 5),
		sw:  argInt(L, 6),
		sh:  argInt(L, 7),
	}
}

// graphics.blit(bmp, x, y, sx, sy, sw, sh)
func (h *Host) gfxBlit(L *lua.LState) int {
	a := h.checkBlitArgs(L)
	h.frame.Blit(a.src, a.x, a.y, a.sx, a.sy, a.sw, a.sh)
	return 0
}

// graphics.blit_alpha(bmp, x, y, sx, sy, sw, sh, alpha)
func (h *Host) gfxBlitAlpha(L *lua.LState) int {
	a := h.checkBlitArgs(L)
	alpha := float64(L.CheckNumber(8))
	h.frame.BlitAlpha(a.src, a.x, a.y, a.sx, a.sy, a.sw, a.sh, alpha)
	return 0
}

// graphics.blit_tint(bmp, x, y, sx, sy, sw, sh, r, g, b, a)
func (h *Host) gfxBlitTint(L *lua.LState) int {
	a := h.checkBlitArgs(L)
	h.frame.BlitTint(a.src, a.x, a.y, a.sx, a.sy, a.sw, a.sh, argColor(L, 8))
	return 0
}

// graphics.print(text, x, y, r, g, b, a)
func (h *Host) gfxPrint(L *lua.LState) int {
	s := L.CheckString(1)
	text.Draw(h.frame, h.font, argInt(L, 2), argInt(L, 3), argColor(L, 4), s)
	return 0
}

func (h *Host) gfxTextWidth(L *lua.LState) int {
	L.Push(lua.LNumber(h.font.Width(L.CheckString(1))))
	return 1
}

func (h *Host) gfxTextHeight(L *lua.LState) int {
	L.Push(lua.LNumber(h.font.Height(L.CheckString(1))))
	return 1
}

func (h *Host) gfxWidth(L *lua.LState) int {
	L.Push(lua.LNumber(h.frame.Width()))
	return 1
}

func (h *Host) gfxHeight(L *lua.LState) int {
	L.Push(lua.LNumber(h.frame.Height()))
	return 1
}
