package script

import (
	"bytes"
	"strings"

	"github.com/gogpu/twig"
	"github.com/gogpu/twig/asset"
	"github.com/pkg/errors"
	lua "github.com/yuin/gopher-lua"
)

// registerLoader replaces the filesystem searcher in package.loaders with
// one that reads modules from the host assets. The preload searcher stays
// first.
func (h *Host) registerLoader() {
	L := h.L
	loaders, ok := L.GetField(L.Get(lua.RegistryIndex), "_LOADERS").(*lua.LTable)
	if !ok {
		return
	}
	L.RawSetInt(loaders, 2, L.NewFunction(h.loadModule))
	for i := loaders.Len(); i > 2; i-- {
		L.RawSetInt(loaders, i, lua.LNil)
	}
}

// moduleAsset maps a module name to its asset: "ui.button" → "ui/button.lua".
func moduleAsset(name string) string {
	return strings.ReplaceAll(name, ".", "/") + ".lua"
}

func (h *Host) loadModule(L *lua.LState) int {
	name := L.CheckString(1)
	file := moduleAsset(name)
	src, err := h.assets.ReadAsset(file)
	if errors.Is(err, asset.ErrNotFound) {
		L.Push(lua.LString("no asset '" + file + "'"))
		return 1
	}
	if err != nil {
		L.RaiseError("require %s: %v", name, err)
		return 0
	}

	fn, err := L.Load(bytes.NewReader(src), file)
	if err != nil {
		L.RaiseError("require %s: %v", name, err)
		return 0
	}
	twig.Logger().Debug("script module loaded", "module", name, "asset", file)
	L.Push(fn)
	return 1
}
