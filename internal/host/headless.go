//go:build headless

package host

import (
	"errors"

	"github.com/retroenv/retrochip8/internal/audio"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
)

// ErrNotSupported is returned when the window frontend is used in a headless build.
var ErrNotSupported = errors.New("window frontend not available in headless build")

// Window is not available in headless builds.
type Window struct{}

// NewWindow returns a window that fails to run.
func NewWindow(*log.Logger, *runner.Runner, Display, audio.Beeper) *Window {
	return &Window{}
}

// Run returns ErrNotSupported.
func (w *Window) Run(int) error {
	return ErrNotSupported
}
