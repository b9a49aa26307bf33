//go:build !headless

package host

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/retroenv/retrochip8/internal/audio"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
)

var (
	foreground = [4]byte{0xFF, 0xFF, 0xFF, 0xFF}
	background = [4]byte{0x00, 0x00, 0x00, 0xFF}
)

// Window is an ebiten game that runs the machine at the ebiten tick rate.
type Window struct {
	logger  *log.Logger
	runner  *runner.Runner
	display Display
	beeper  audio.Beeper

	frame []byte
	image *ebiten.Image
	dirty bool
	err   error
}

// NewWindow returns a new window frontend. The runner has to be configured
// with FrameRate as frame rate.
func NewWindow(logger *log.Logger, r *runner.Runner, display Display, beeper audio.Beeper) *Window {
	return &Window{
		logger:  logger,
		runner:  r,
		display: display,
		beeper:  beeper,
		frame:   newFrame(),
		dirty:   true,
	}
}

// Run opens the window and blocks until it is closed or the machine stops.
func (w *Window) Run(scale int) error {
	ebiten.SetWindowSize(chip8.ScreenWidth*scale, chip8.ScreenHeight*scale)
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(FrameRate)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return w.err
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	if ebiten.IsWindowBeingClosed() || quitRequested() {
		return ebiten.Termination
	}
	if rebootRequested() {
		w.runner.Reboot()
		w.dirty = true
		return nil
	}

	result, err := w.runner.Frame(pollKeys())
	if err != nil {
		if !errors.Is(err, runner.ErrFinished) {
			w.err = err
		}
		return ebiten.Termination
	}

	if result.Beep {
		w.beeper.Beep()
	}
	if result.ScreenUpdated {
		w.dirty = true
	}
	return nil
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.image == nil {
		w.image = ebiten.NewImage(chip8.ScreenWidth, chip8.ScreenHeight)
	}
	if w.dirty {
		toRGBA(w.frame, w.display.Screen(), foreground, background)
		w.image.WritePixels(w.frame)
		w.dirty = false
	}
	screen.DrawImage(w.image, nil)
}

// Layout implements ebiten.Game.
func (w *Window) Layout(_, _ int) (int, int) {
	return chip8.ScreenWidth, chip8.ScreenHeight
}

func ctrlPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
}

func quitRequested() bool {
	return ebiten.IsKeyPressed(ebiten.KeyEscape) || (ctrlPressed() && ebiten.IsKeyPressed(ebiten.KeyW))
}

func rebootRequested() bool {
	return ctrlPressed() && inpututil.IsKeyJustPressed(ebiten.KeyR)
}
