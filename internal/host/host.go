// Package host implements the graphical frontend that displays the
// framebuffer in a window and polls the keyboard.
package host

import (
	"github.com/retroenv/retrochip8/internal/chip8"
)

// Window defaults.
const (
	Title        = "retrochip8"
	DefaultScale = 10

	// FrameRate is the tick rate of the window frontend.
	FrameRate = 60
)

// Display is the part of the emulator that the frontend reads.
type Display interface {
	Screen() []byte
}

// toRGBA converts the framebuffer to RGBA pixels using the foreground and
// background colors.
func toRGBA(dst, screen []byte, fg, bg [4]byte) {
	for i, pixel := range screen {
		c := bg
		if pixel != 0 {
			c = fg
		}
		copy(dst[i*4:i*4+4], c[:])
	}
}

func newFrame() []byte {
	return make([]byte, chip8.ScreenWidth*chip8.ScreenHeight*4)
}
