package script

import (
	"fmt"

	"github.com/gogpu/twig"
	lua "github.com/yuin/gopher-lua"
)

const bitmapType = "Bitmap"

// handle is the userdata value of a script bitmap.
type handle int

func (h *Host) registerBitmap() {
	L := h.L
	mt := L.NewTypeMetatable(bitmapType)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"width":   h.bitmapWidth,
		"height":  h.bitmapHeight,
		"destroy": h.bitmapDestroy,
	}))
	L.SetField(mt, "__tostring", L.NewFunction(h.bitmapString))

	L.SetGlobal(bitmapType, L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"new":  h.bitmapNew,
		"load": h.bitmapLoad,
	}))
}

// LiveBitmaps returns the number of bitmap handles not yet destroyed.
func (h *Host) LiveBitmaps() int {
	return h.bitmaps.len()
}

func (h *Host) pushBitmap(L *lua.LState, b *twig.Bitmap) {
	ud := L.NewUserData()
	ud.Value = handle(h.bitmaps.add(b))
	L.SetMetatable(ud, L.GetTypeMetatable(bitmapType))
	L.Push(ud)
}

// checkBitmap returns the live bitmap at argument n or raises an argument
// error.
func (h *Host) checkBitmap(L *lua.LState, n int) (*twig.Bitmap, handle) {
	ud := L.CheckUserData(n)
	id, ok := ud.Value.(handle)
	if !ok {
		L.ArgError(n, "bitmap expected")
		return nil, 0
	}
	b, ok := h.bitmaps.get(int(id))
	if !ok {
		L.ArgError(n, "bitmap has been destroyed")
		return nil, 0
	}
	return b, id
}

// Bitmap.new(w, h)
func (h *Host) bitmapNew(L *lua.LState) int {
	w, ht := argInt(L, 1), argInt(L, 2)
	b, err := twig.NewBitmap(w, ht)
	if err != nil {
		L.RaiseError("Bitmap.new: %v", err)
		return 0
	}
	h.pushBitmap(L, b)
	return 1
}

// Bitmap.load(name)
func (h *Host) bitmapLoad(L *lua.LState) int {
	name := L.CheckString(1)
	b, err := h.assets.Bitmap(name)
	if err != nil {
		L.RaiseError("Bitmap.load: %v", err)
		return 0
	}
	h.pushBitmap(L, b)
	return 1
}

func (h *Host) bitmapWidth(L *lua.LState) int {
	b, _ := h.checkBitmap(L, 1)
	L.Push(lua.LNumber(b.Width()))
	return 1
}

func (h *Host) bitmapHeight(L *lua.LState) int {
	b, _ := h.checkBitmap(L, 1)
	L.Push(lua.LNumber(b.Height()))
	return 1
}

func (h *Host) bitmapDestroy(L *lua.LState) int {
	_, id := h.checkBitmap(L, 1)
	h.bitmaps.release(int(id))
	return 0
}

func (h *Host) bitmapString(L *lua.LState) int {
	ud := L.CheckUserData(1)
	id, _ := ud.Value.(handle)
	if b, ok := h.bitmaps.get(int(id)); ok {
		L.Push(lua.LString(fmt.Sprintf("Bitmap(%d, %dx%d)", id, b.Width(), b.Height())))
	} else {
		L.Push(lua.LString(fmt.Sprintf("Bitmap(%d, destroyed)", id)))
	}
	return 1
}
