package ebitengine

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// UnknownKey is the name reported for keys without a name.
const UnknownKey = "?"

var keyNames = map[ebiten.Key]string{
	ebiten.KeyDigit0: "0",
	ebiten.KeyDigit1: "1",
	ebiten.KeyDigit2: "2",
	ebiten.KeyDigit3: "3",
	ebiten.KeyDigit4: "4",
	ebiten.KeyDigit5: "5",
	ebiten.KeyDigit6: "6",
	ebiten.KeyDigit7: "7",
	ebiten.KeyDigit8: "8",
	ebiten.KeyDigit9: "9",

	ebiten.KeyA: "a",
	ebiten.KeyB: "b",
	ebiten.KeyC: "c",
	ebiten.KeyD: "d",
	ebiten.KeyE: "e",
	ebiten.KeyF: "f",
	ebiten.KeyG: "g",
	ebiten.KeyH: "h",
	ebiten.KeyI: "i",
	ebiten.KeyJ: "j",
	ebiten.KeyK: "k",
	ebiten.KeyL: "l",
	ebiten.KeyM: "m",
	ebiten.KeyN: "n",
	ebiten.KeyO: "o",
	ebiten.KeyP: "p",
	ebiten.KeyQ: "q",
	ebiten.KeyR: "r",
	ebiten.KeyS: "s",
	ebiten.KeyT: "t",
	ebiten.KeyU: "u",
	ebiten.KeyV: "v",
	ebiten.KeyW: "w",
	ebiten.KeyX: "x",
	ebiten.KeyY: "y",
	ebiten.KeyZ: "z",

	ebiten.KeyQuote:          "apostrophe",
	ebiten.KeyBackslash:      "backslash",
	ebiten.KeyComma:          "comma",
	ebiten.KeyEqual:          "equal",
	ebiten.KeyBackquote:      "grave_accent",
	ebiten.KeyBracketLeft:    "left_bracket",
	ebiten.KeyMinus:          "minus",
	ebiten.KeyPeriod:         "period",
	ebiten.KeyBracketRight:   "right_bracket",
	ebiten.KeySemicolon:      "semicolon",
	ebiten.KeySlash:          "slash",
	ebiten.KeyIntlBackslash:  "world_2",
	ebiten.KeyBackspace:      "backspace",
	ebiten.KeyDelete:         "delete",
	ebiten.KeyEnd:            "end",
	ebiten.KeyEnter:          "enter",
	ebiten.KeyEscape:         "escape",
	ebiten.KeyHome:           "home",
	ebiten.KeyInsert:         "insert",
	ebiten.KeyContextMenu:    "menu",
	ebiten.KeyPageDown:       "page_down",
	ebiten.KeyPageUp:         "page_up",
	ebiten.KeyPause:          "pause",
	ebiten.KeySpace:          "space",
	ebiten.KeyTab:            "tab",
	ebiten.KeyCapsLock:       "caps_lock",
	ebiten.KeyNumLock:        "num_lock",
	ebiten.KeyScrollLock:     "scroll_lock",
	ebiten.KeyAltLeft:        "left_alt",
	ebiten.KeyControlLeft:    "left_control",
	ebiten.KeyShiftLeft:      "left_shift",
	ebiten.KeyMetaLeft:       "left_super",
	ebiten.KeyPrintScreen:    "print_screen",
	ebiten.KeyAltRight:       "right_alt",
	ebiten.KeyControlRight:   "right_control",
	ebiten.KeyShiftRight:     "right_shift",
	ebiten.KeyMetaRight:      "right_super",
	ebiten.KeyArrowDown:      "down",
	ebiten.KeyArrowLeft:      "left",
	ebiten.KeyArrowRight:     "right",
	ebiten.KeyArrowUp:        "up",
	ebiten.KeyNumpadAdd:      "kp_add",
	ebiten.KeyNumpadDecimal:  "kp_decimal",
	ebiten.KeyNumpadDivide:   "kp_divide",
	ebiten.KeyNumpadEnter:    "kp_enter",
	ebiten.KeyNumpadMultiply: "kp_multiply",
	ebiten.KeyNumpadSubtract: "kp_subtract",

	ebiten.KeyF1:  "f1",
	ebiten.KeyF2:  "f2",
	ebiten.KeyF3:  "f3",
	ebiten.KeyF4:  "f4",
	ebiten.KeyF5:  "f5",
	ebiten.KeyF6:  "f6",
	ebiten.KeyF7:  "f7",
	ebiten.KeyF8:  "f8",
	ebiten.KeyF9:  "f9",
	ebiten.KeyF10: "f10",
	ebiten.KeyF11: "f11",
	ebiten.KeyF12: "f12",
	ebiten.KeyF13: "f13",
	ebiten.KeyF14: "f14",
	ebiten.KeyF15: "f15",
	ebiten.KeyF16: "f16",
	ebiten.KeyF17: "f17",
	ebiten.KeyF18: "f18",
	ebiten.KeyF19: "f19",
	ebiten.KeyF20: "f20",
	ebiten.KeyF21: "f21",
	ebiten.KeyF22: "f22",
	ebiten.KeyF23: "f23",
	ebiten.KeyF24: "f24",

	ebiten.KeyNumpad0: "kp_0",
	ebiten.KeyNumpad1: "kp_1",
	ebiten.KeyNumpad2: "kp_2",
	ebiten.KeyNumpad3: "kp_3",
	ebiten.KeyNumpad4: "kp_4",
	ebiten.KeyNumpad5: "kp_5",
	ebiten.KeyNumpad6: "kp_6",
	ebiten.KeyNumpad7: "kp_7",
	ebiten.KeyNumpad8: "kp_8",
	ebiten.KeyNumpad9: "kp_9",
}

// KeyName returns the script name of k, or UnknownKey.
// Names follow physical key positions on a US layout.
func KeyName(k ebiten.Key) string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return UnknownKey
}
