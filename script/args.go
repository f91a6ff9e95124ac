package script

import (
	"github.com/gogpu/twig"
	lua "github.com/yuin/gopher-lua"
)

// argInt returns argument n truncated toward zero.
func argInt(L *lua.LState, n int) int {
	return int(L.CheckNumber(n))
}

// argByte returns argument n truncated toward zero and wrapped to 8 bits.
func argByte(L *lua.LState, n int) uint8 {
	return uint8(int(L.CheckNumber(n)))
}

// argColor reads four channel arguments starting at n.
func argColor(L *lua.LState, n int) twig.Color {
	return twig.RGBA(argByte(L, n), argByte(L, n+1), argByte(L, n+2), argByte(L, n+3))
}
