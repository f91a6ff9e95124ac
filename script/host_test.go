package script

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/gogpu/twig"
	"github.com/gogpu/twig/asset"
	"github.com/gogpu/twig/text"
	"github.com/pkg/errors"
	lua "github.com/yuin/gopher-lua"
)

func pngAsset(t *testing.T, w, h int, c color.NRGBA) *fstest.MapFile {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}
	return &fstest.MapFile{Data: buf.Bytes()}
}

type testHost struct {
	*Host
	frame *twig.Bitmap
	out   *bytes.Buffer
}

func newTestHost(t *testing.T, files map[string]string) *testHost {
	t.Helper()
	fsys := fstest.MapFS{
		"ship.png": pngAsset(t, 2, 2, color.NRGBA{R: 0, G: 200, B: 0, A: 255}),
	}
	for name, src := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(src)}
	}

	frame, err := twig.NewBitmap(16, 16)
	if err != nil {
		t.Fatal(err)
	}
	font, err := text.Default()
	if err != nil {
		t.Fatalf("text.Default() error = %v", err)
	}
	out := &bytes.Buffer{}
	h, err := New(Config{
		Frame:  frame,
		Font:   font,
		Assets: asset.NewLoader(asset.NewFS(fsys), 0),
		Output: out,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(h.Close)
	return &testHost{Host: h, frame: frame, out: out}
}

func (th *testHost) run(t *testing.T, src string) {
	t.Helper()
	if err := th.DoString(src, "test"); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}
}

func (th *testHost) global(name string) lua.LValue {
	return th.L.GetGlobal(name)
}

func TestNewRequiresConfig(t *testing.T) {
	if _, err := New(Config{}); !errors.Is(err, ErrScript) {
		t.Errorf("New(Config{}) error = %v, want ErrScript", err)
	}
}

func TestCallbacks(t *testing.T) {
	th := newTestHost(t, nil)
	th.run(t, `
		calls = 0
		function twig.init() inited = true end
		function twig.update() calls = calls + 1 end
		function twig.mouse_move(x, y) mx, my = x, y end
		function twig.mouse_button(b, p) button, pressed = b, p end
		function twig.key(name, p) key, key_pressed = name, p end
	`)

	steps := []func() error{
		th.Init,
		th.Update,
		th.Update,
		func() error { return th.MouseMove(12, 7) },
		func() error { return th.MouseButton(2, true) },
		func() error { return th.Key("space", false) },
	}
	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d error = %v", i, err)
		}
	}

	tests := []struct {
		name string
		want lua.LValue
	}{
		{"inited", lua.LTrue},
		{"calls", lua.LNumber(2)},
		{"mx", lua.LNumber(12)},
		{"my", lua.LNumber(7)},
		{"button", lua.LNumber(2)},
		{"pressed", lua.LTrue},
		{"key", lua.LString("space")},
		{"key_pressed", lua.LFalse},
	}
	for _, tt := range tests {
		if got := th.global(tt.name); got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMissingCallbacksAreNoops(t *testing.T) {
	th := newTestHost(t, nil)
	if th.HasCallback(CallbackUpdate) {
		t.Error("HasCallback(update) = true before definition")
	}
	for _, err := range []error{th.Init(), th.Update(), th.MouseMove(1, 1), th.MouseButton(1, false), th.Key("a", true)} {
		if err != nil {
			t.Errorf("callback error = %v, want nil", err)
		}
	}

	th.run(t, `twig = nil`)
	if err := th.Update(); err != nil {
		t.Errorf("Update() with twig = nil error = %v", err)
	}
}

func TestCallbackError(t *testing.T) {
	th := newTestHost(t, nil)
	th.run(t, `function twig.update() error("boom") end`)
	err := th.Update()
	if !errors.Is(err, ErrScript) {
		t.Fatalf("Update() error = %v, want ErrScript", err)
	}
	if !strings.Contains(err.Error(), "boom") || !strings.Contains(err.Error(), "twig.update") {
		t.Errorf("Update() error = %q, want callback name and message", err)
	}
}

func TestLoadErrors(t *testing.T) {
	th := newTestHost(t, map[string]string{"bad.lua": "function ("})
	if err := th.DoString("this is not lua", "broken"); !errors.Is(err, ErrScript) {
		t.Errorf("DoString(syntax error) error = %v, want ErrScript", err)
	}
	if err := th.Run("bad.lua"); !errors.Is(err, ErrScript) {
		t.Errorf("Run(bad.lua) error = %v, want ErrScript", err)
	}
	if err := th.Run("missing.lua"); !errors.Is(err, ErrScript) {
		t.Errorf("Run(missing.lua) error = %v, want ErrScript", err)
	}
	if th.L.GetTop() != 0 {
		t.Errorf("stack not empty after failed runs: %d", th.L.GetTop())
	}
}

func TestRun(t *testing.T) {
	th := newTestHost(t, map[string]string{
		"main.lua": `function twig.init() graphics.clear(9, 9, 9, 255) end`,
	})
	if err := th.Run("main.lua"); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if err := th.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if got := th.frame.Pixel(15, 15); got != twig.RGB(9, 9, 9) {
		t.Errorf("Pixel(15, 15) = %+v after init", got)
	}
}

func TestPrint(t *testing.T) {
	th := newTestHost(t, nil)
	th.run(t, `print("hi", 1, true) print()`)
	if got := th.out.String(); got != "hi\t1\ttrue\n\n" {
		t.Errorf("output = %q", got)
	}
}

func TestRequire(t *testing.T) {
	th := newTestHost(t, map[string]string{
		"util.lua":       `return { answer = 42 }`,
		"lib/shapes.lua": `local M = {} function M.sides() return 4 end return M`,
	})
	th.run(t, `
		local util = require("util")
		local shapes = require("lib.shapes")
		answer = util.answer
		sides = shapes.sides()
		same = require("util") == util
	`)
	if got := th.global("answer"); got != lua.LNumber(42) {
		t.Errorf("answer = %v, want 42", got)
	}
	if got := th.global("sides"); got != lua.LNumber(4) {
		t.Errorf("sides = %v, want 4", got)
	}
	if got := th.global("same"); got != lua.LTrue {
		t.Error("require did not cache the module")
	}

	err := th.DoString(`require("nope")`, "test")
	if !errors.Is(err, ErrScript) || !strings.Contains(err.Error(), "nope.lua") {
		t.Errorf("require(nope) error = %v, want missing asset", err)
	}
}

func TestModuleAsset(t *testing.T) {
	tests := map[string]string{
		"main":      "main.lua",
		"ui.button": "ui/button.lua",
		"a.b.c":     "a/b/c.lua",
	}
	for in, want := range tests {
		if got := moduleAsset(in); got != want {
			t.Errorf("moduleAsset(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSandbox(t *testing.T) {
	th := newTestHost(t, nil)
	th.run(t, `has_os = os ~= nil has_io = io ~= nil`)
	if th.global("has_os") != lua.LFalse || th.global("has_io") != lua.LFalse {
		t.Error("os or io library is available to scripts")
	}
}

func TestSetContext(t *testing.T) {
	th := newTestHost(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	th.SetContext(ctx)
	if err := th.DoString(`while true do end`, "spin"); !errors.Is(err, ErrScript) {
		t.Errorf("DoString() with cancelled context error = %v, want ErrScript", err)
	}

	th.RemoveContext()
	if err := th.DoString(`x = 1`, "after"); err != nil {
		t.Errorf("DoString() after RemoveContext error = %v", err)
	}
}
