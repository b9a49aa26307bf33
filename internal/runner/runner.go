// Package runner drives the instruction and timer clocks of a CHIP-8 machine
// from a host frame loop.
package runner

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/log"
)

// TimerRate is the fixed rate of the delay and sound timers in Hz.
const TimerRate = 60

// ErrFinished is returned by Frame once the program counter reached the end
// of the loaded program.
var ErrFinished = errors.New("program finished")

// Machine is the part of the emulator that the runner drives.
type Machine interface {
	Step() error
	TickTimers() bool
	Finished() bool
	State() chip8.State
	SetKeys(keys [chip8.KeyCount]bool)
	PressedKey() (uint8, bool)
	DeliverKey(key uint8) bool
	ScreenUpdated() bool
	Reboot()
}

// Config contains the clock settings.
type Config struct {
	ClockSpeed int // instructions per second
	FrameRate  int // host frames per second
}

// Result describes the outcome of a single frame.
type Result struct {
	Beep          bool // a tone should be played
	ScreenUpdated bool // the framebuffer changed during the frame
	Steps         int  // number of executed instructions
}

// Runner converts host frames into instruction steps and timer ticks. Both
// clocks carry their fractional remainder over to the next frame so that
// the configured rates are kept on average.
type Runner struct {
	logger  *log.Logger
	machine Machine
	cfg     Config

	cycleCredit int // scaled by FrameRate
	timerCredit int // scaled by FrameRate
}

// New returns a new runner for the machine.
func New(logger *log.Logger, machine Machine, cfg Config) (*Runner, error) {
	if cfg.ClockSpeed <= 0 {
		return nil, fmt.Errorf("invalid clock speed %d", cfg.ClockSpeed)
	}
	if cfg.FrameRate <= 0 {
		return nil, fmt.Errorf("invalid frame rate %d", cfg.FrameRate)
	}

	return &Runner{
		logger:  logger,
		machine: machine,
		cfg:     cfg,
	}, nil
}

// Frame advances the machine by one host frame using the polled key states.
// While the machine awaits a key, the lowest pressed key is delivered and
// no instructions are executed until it is resumed.
func (r *Runner) Frame(keys [chip8.KeyCount]bool) (Result, error) {
	var result Result
	if r.machine.Finished() {
		return result, ErrFinished
	}

	r.machine.SetKeys(keys)
	r.resolveWait()

	r.cycleCredit += r.cfg.ClockSpeed
	for r.cycleCredit >= r.cfg.FrameRate {
		r.cycleCredit -= r.cfg.FrameRate

		if r.machine.State() == chip8.AwaitingKey {
			// the wait is resolved on the next frame's key poll
			r.cycleCredit = 0
			break
		}
		if err := r.machine.Step(); err != nil {
			return result, fmt.Errorf("executing instruction: %w", err)
		}
		result.Steps++
		result.ScreenUpdated = result.ScreenUpdated || r.machine.ScreenUpdated()

		if r.machine.Finished() {
			r.logger.Debug("Program finished", log.Int("steps", result.Steps))
			break
		}
	}

	r.timerCredit += TimerRate
	for r.timerCredit >= r.cfg.FrameRate {
		r.timerCredit -= r.cfg.FrameRate
		result.Beep = r.machine.TickTimers() || result.Beep
	}

	return result, nil
}

// Reboot resets the machine and the clock remainders.
func (r *Runner) Reboot() {
	r.machine.Reboot()
	r.cycleCredit = 0
	r.timerCredit = 0
	r.logger.Info("Machine rebooted")
}

func (r *Runner) resolveWait() {
	if r.machine.State() != chip8.AwaitingKey {
		return
	}
	key, ok := r.machine.PressedKey()
	if !ok {
		return
	}
	r.machine.DeliverKey(key)
	r.logger.Debug("Key delivered", log.Uint8("key", key))
}
