//go:build !headless

package host

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/retroenv/retrochip8/internal/chip8"
)

// keymap maps the CHIP-8 keys 0x0-0xF to the keyboard block 1-4, Q-R, A-F, Z-V.
var keymap = [chip8.KeyCount]ebiten.Key{
	ebiten.KeyX,      // 0
	ebiten.KeyDigit1, // 1
	ebiten.KeyDigit2, // 2
	ebiten.KeyDigit3, // 3
	ebiten.KeyQ,      // 4
	ebiten.KeyW,      // 5
	ebiten.KeyE,      // 6
	ebiten.KeyA,      // 7
	ebiten.KeyS,      // 8
	ebiten.KeyD,      // 9
	ebiten.KeyZ,      // A
	ebiten.KeyC,      // B
	ebiten.KeyDigit4, // C
	ebiten.KeyR,      // D
	ebiten.KeyF,      // E
	ebiten.KeyV,      // F
}

func pollKeys() [chip8.KeyCount]bool {
	var keys [chip8.KeyCount]bool
	for i, key := range keymap {
		keys[i] = ebiten.IsKeyPressed(key)
	}
	return keys
}
