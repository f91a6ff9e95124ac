package ebitengine

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestKeyName(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want string
	}{
		{ebiten.KeyA, "a"},
		{ebiten.KeyZ, "z"},
		{ebiten.KeyDigit0, "0"},
		{ebiten.KeySpace, "space"},
		{ebiten.KeyEnter, "enter"},
		{ebiten.KeyNumpadEnter, "kp_enter"},
		{ebiten.KeyShiftLeft, "left_shift"},
		{ebiten.KeyMetaRight, "right_super"},
		{ebiten.KeyArrowUp, "up"},
		{ebiten.KeyF24, "f24"},
		{ebiten.KeyNumpad7, "kp_7"},
		{ebiten.KeyQuote, "apostrophe"},
		{ebiten.KeyBackquote, "grave_accent"},
		{ebiten.KeyNumpadEqual, UnknownKey},
		{ebiten.Key(-1), UnknownKey},
	}
	for _, tt := range tests {
		if got := KeyName(tt.key); got != tt.want {
			t.Errorf("KeyName(%v) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestKeyNamesUnique(t *testing.T) {
	seen := make(map[string]ebiten.Key, len(keyNames))
	for k, name := range keyNames {
		if name == UnknownKey {
			t.Errorf("key %v is named %q", k, UnknownKey)
		}
		if prev, ok := seen[name]; ok {
			t.Errorf("name %q used by %v and %v", name, prev, k)
		}
		seen[name] = k
	}
	// 10 digits, 26 letters, 24 function keys, 10 keypad digits and 47 others.
	if got, want := len(keyNames), 117; got != want {
		t.Errorf("len(keyNames) = %d, want %d", got, want)
	}
}

func TestMouseButtonIDs(t *testing.T) {
	want := []int{1, 2, 3, 5, 6}
	if len(mouseButtons) != len(want) {
		t.Fatalf("len(mouseButtons) = %d, want %d", len(mouseButtons), len(want))
	}
	for i, mb := range mouseButtons {
		if mb.id != want[i] {
			t.Errorf("mouseButtons[%d].id = %d, want %d", i, mb.id, want[i])
		}
	}
}
