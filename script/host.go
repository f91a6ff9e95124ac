// Package script runs Lua programs against a twig frame buffer.
//
// A Host owns one Lua state. Scripts draw through the global graphics
// table, create bitmaps through the global Bitmap table and receive events
// by defining functions on the global twig table:
//
//	function twig.init() end
//	function twig.update() end
//	function twig.mouse_move(x, y) end
//	function twig.mouse_button(button, pressed) end
//	function twig.key(name, pressed) end
//
// Modules are loaded with require from the host's assets ("a.b" reads
// "a/b.lua"); the filesystem is never consulted.
package script

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/twig"
	"github.com/gogpu/twig/asset"
	"github.com/gogpu/twig/text"
	"github.com/pkg/errors"
	lua "github.com/yuin/gopher-lua"
)

// ErrScript is returned when a script fails to load or a callback raises
// an error.
var ErrScript = errors.New("script: error")

// Assets supplies script sources and decoded bitmaps.
type Assets interface {
	asset.Provider
	Bitmap(name string) (*twig.Bitmap, error)
}

// Config holds what a Host draws into and reads from.
type Config struct {
	// Frame is the bitmap the graphics table draws into. Required.
	Frame *twig.Bitmap
	// Font is used by graphics.print. Required.
	Font *text.Font
	// Assets provides modules for require and images for Bitmap.load.
	// Required.
	Assets Assets
	// Output receives the output of print. Defaults to os.Stdout.
	Output io.Writer
}

// Callback names looked up on the global twig table.
const (
	CallbackInit        = "init"
	CallbackUpdate      = "update"
	CallbackMouseMove   = "mouse_move"
	CallbackMouseButton = "mouse_button"
	CallbackKey         = "key"
)

// Host is a Lua state bound to a frame buffer. It is not safe for
// concurrent use.
type Host struct {
	L      *lua.LState
	frame  *twig.Bitmap
	font   *text.Font
	assets Assets
	out    io.Writer

	bitmaps *arena
}

// New creates a Lua state with the base, package, table, string, math and
// coroutine libraries and the twig bindings installed.
func New(cfg Config) (*Host, error) {
	if cfg.Frame == nil || cfg.Font == nil || cfg.Assets == nil {
		return nil, errors.Wrap(ErrScript, "frame, font and assets are required")
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	h := &Host{
		L:       lua.NewState(lua.Options{SkipOpenLibs: true}),
		frame:   cfg.Frame,
		font:    cfg.Font,
		assets:  cfg.Assets,
		out:     cfg.Output,
		bitmaps: newArena(),
	}
	if err := h.openLibs(); err != nil {
		h.L.Close()
		return nil, err
	}
	h.register()
	return h, nil
}

func (h *Host) openLibs() error {
	libs := []struct {
		name string
		open lua.LGFunction
	}{
		{lua.LoadLibName, lua.OpenPackage},
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
		{lua.CoroutineLibName, lua.OpenCoroutine},
	}
	for _, lib := range libs {
		err := h.L.CallByParam(lua.P{
			Fn:      h.L.NewFunction(lib.open),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name))
		if err != nil {
			return errors.Wrapf(ErrScript, "open %s: %v", lib.name, err)
		}
	}
	return nil
}

func (h *Host) register() {
	L := h.L
	L.SetGlobal("print", L.NewFunction(h.print))
	L.SetGlobal("twig", L.NewTable())
	h.registerBitmap()
	h.registerGraphics()
	h.registerLoader()
}

// Close releases the Lua state and every live bitmap handle.
func (h *Host) Close() {
	h.bitmaps.clear()
	h.L.Close()
}

// SetContext makes running scripts stop with an error once ctx is done.
func (h *Host) SetContext(ctx context.Context) {
	h.L.SetContext(ctx)
}

// RemoveContext undoes SetContext.
func (h *Host) RemoveContext() {
	h.L.RemoveContext()
}

// Run loads the script asset name and executes it.
func (h *Host) Run(name string) error {
	src, err := h.assets.ReadAsset(name)
	if err != nil {
		return errors.Wrapf(ErrScript, "read %s: %v", name, err)
	}
	return h.exec(src, name)
}

// DoString executes src as a chunk called name.
func (h *Host) DoString(src, name string) error {
	return h.exec([]byte(src), name)
}

func (h *Host) exec(src []byte, name string) error {
	fn, err := h.L.Load(bytes.NewReader(src), name)
	if err != nil {
		return errors.Wrapf(ErrScript, "load %s: %v", name, err)
	}
	h.L.Push(fn)
	err = h.L.PCall(0, lua.MultRet, nil)
	h.L.SetTop(0)
	if err != nil {
		return errors.Wrapf(ErrScript, "run %s: %v", name, err)
	}
	twig.Logger().Debug("script executed", "name", name)
	return nil
}

// Init calls twig.init().
func (h *Host) Init() error {
	return h.call(CallbackInit)
}

// Update calls twig.update().
func (h *Host) Update() error {
	return h.call(CallbackUpdate)
}

// MouseMove calls twig.mouse_move(x, y) with frame coordinates.
func (h *Host) MouseMove(x, y int) error {
	return h.call(CallbackMouseMove, lua.LNumber(x), lua.LNumber(y))
}

// MouseButton calls twig.mouse_button(button, pressed). Buttons are 1 left,
// 2 right, 3 middle, 5 and 6 for the extra buttons.
func (h *Host) MouseButton(button int, pressed bool) error {
	return h.call(CallbackMouseButton, lua.LNumber(button), lua.LBool(pressed))
}

// Key calls twig.key(name, pressed).
func (h *Host) Key(name string, pressed bool) error {
	return h.call(CallbackKey, lua.LString(name), lua.LBool(pressed))
}

// HasCallback reports whether the script defined twig.<name>.
func (h *Host) HasCallback(name string) bool {
	_, ok := h.callback(name)
	return ok
}

func (h *Host) callback(name string) (*lua.LFunction, bool) {
	tbl, ok := h.L.GetGlobal("twig").(*lua.LTable)
	if !ok {
		return nil, false
	}
	fn, ok := h.L.GetField(tbl, name).(*lua.LFunction)
	return fn, ok
}

// call invokes twig.<name>(args...). A missing callback is not an error.
func (h *Host) call(name string, args ...lua.LValue) error {
	fn, ok := h.callback(name)
	if !ok {
		return nil
	}
	err := h.L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}, args...)
	if err != nil {
		return errors.Wrapf(ErrScript, "twig.%s: %v", name, err)
	}
	return nil
}

// print replaces the base library print so output goes to the host writer.
func (h *Host) print(L *lua.LState) int {
	top := L.GetTop()
	for i := 1; i <= top; i++ {
		fmt.Fprint(h.out, L.ToStringMeta(L.Get(i)).String())
		if i != top {
			fmt.Fprint(h.out, "\t")
		}
	}
	fmt.Fprintln(h.out)
	return 0
}
