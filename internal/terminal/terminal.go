// Package terminal implements a headless frontend that renders the
// framebuffer as text.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

const (
	pixelOn  = "█"
	pixelOff = " "

	clearScreen = "\x1b[H\x1b[2J"
)

// Renderer writes framebuffers as text to an output.
type Renderer struct {
	out  io.Writer
	ansi bool // redraw in place using escape sequences
}

// NewRenderer returns a renderer for the file. The frame is redrawn in place
// if the file is a terminal that is wide enough to show a full frame.
func NewRenderer(file *os.File) *Renderer {
	fd := int(file.Fd())
	ansi := false
	if term.IsTerminal(fd) {
		width, _, err := term.GetSize(fd)
		ansi = err == nil && width >= chip8.ScreenWidth
	}
	return &Renderer{
		out:  file,
		ansi: ansi,
	}
}

// Render writes the framebuffer.
func (r *Renderer) Render(screen []byte) error {
	w := bufio.NewWriter(r.out)
	if r.ansi {
		if _, err := w.WriteString(clearScreen); err != nil {
			return err
		}
	}

	for y := range chip8.ScreenHeight {
		for _, pixel := range screen[y*chip8.ScreenWidth : (y+1)*chip8.ScreenWidth] {
			s := pixelOff
			if pixel != 0 {
				s = pixelOn
			}
			if _, err := w.WriteString(s); err != nil {
				return err
			}
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Display is the part of the emulator that the renderer reads.
type Display interface {
	Screen() []byte
}

// Config contains the settings of a headless run.
type Config struct {
	Frames   int           // number of frames to run, 0 runs until the program finishes
	Interval time.Duration // delay between frames, 0 runs as fast as possible
	Live     bool          // render every updated frame instead of only the last one
}

// Run drives the runner for the configured number of frames without any key
// input and renders the framebuffer.
func Run(ctx context.Context, logger *log.Logger, r *runner.Runner, display Display,
	renderer *Renderer, cfg Config) error {

	var ticker *time.Ticker
	if cfg.Interval > 0 {
		ticker = time.NewTicker(cfg.Interval)
		defer ticker.Stop()
	}

	var keys [chip8.KeyCount]bool
	frames := 0
	for cfg.Frames == 0 || frames < cfg.Frames {
		if err := waitFrame(ctx, ticker); err != nil {
			return err
		}

		result, err := r.Frame(keys)
		if errors.Is(err, runner.ErrFinished) {
			break
		}
		if err != nil {
			return err
		}
		frames++

		if cfg.Live && result.ScreenUpdated {
			if err := renderer.Render(display.Screen()); err != nil {
				return fmt.Errorf("rendering frame: %w", err)
			}
		}
	}

	logger.Debug("Headless run stopped", log.Int("frames", frames))
	if err := renderer.Render(display.Screen()); err != nil {
		return fmt.Errorf("rendering frame: %w", err)
	}
	return nil
}

func waitFrame(ctx context.Context, ticker *time.Ticker) error {
	if ticker == nil {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-ticker.C:
		return nil
	}
}
