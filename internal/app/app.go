// Package app provides the main application helper for the emulator.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/retroenv/retrochip8/internal/audio"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/host"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrochip8/internal/terminal"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// PrintBanner prints the program name and version.
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}
	logger.Info("retrochip8 - CHIP-8 emulator",
		log.String("version", buildinfo.Version(version, commit, date)))
}

// PrintInfo prints the information about the loaded ROM.
func PrintInfo(logger *log.Logger, opts options.Program, emu *chip8.Chip8) {
	if opts.Quiet {
		return
	}
	logger.Info("Running CHIP-8 ROM",
		log.String("file", opts.Input),
		log.Int("size", int(emu.ProgramEnd())-chip8.ProgramStart),
		log.Int("clock", opts.ClockSpeed),
	)
}

// Load creates the emulator and loads the ROM file.
func Load(logger *log.Logger, opts options.Program) (*chip8.Chip8, error) {
	emuOptions := []chip8.Option{
		chip8.WithStrict(opts.Strict),
	}
	if opts.Debug {
		emuOptions = append(emuOptions, chip8.WithLogger(logger))
	}

	emu := chip8.New(emuOptions...)
	if err := emu.LoadFile(opts.Input); err != nil {
		return nil, err
	}
	return emu, nil
}

// Run loads the ROM and runs it with the selected frontend until the
// program finishes, the frontend is closed or the context is cancelled.
func Run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	emu, err := Load(logger, opts)
	if err != nil {
		return err
	}
	PrintInfo(logger, opts, emu)

	if opts.Dump {
		if err := emu.DumpProgram(os.Stdout); err != nil {
			return fmt.Errorf("dumping program: %w", err)
		}
	}

	r, err := runner.New(logger, emu, runner.Config{
		ClockSpeed: opts.ClockSpeed,
		FrameRate:  host.FrameRate,
	})
	if err != nil {
		return fmt.Errorf("creating runner: %w", err)
	}

	if opts.Headless {
		err = runHeadless(ctx, logger, opts, r, emu)
	} else {
		err = runWindow(logger, opts, r, emu)
	}
	if isMachineFault(err) {
		dumpFault(logger, emu)
	}
	return err
}

// isMachineFault reports whether the error was raised by the emulated
// program rather than by the frontend.
func isMachineFault(err error) bool {
	return errors.Is(err, chip8.ErrMemoryFault) || errors.Is(err, chip8.ErrUnknownOpcode)
}

func runHeadless(ctx context.Context, logger *log.Logger, opts options.Program, r *runner.Runner, emu *chip8.Chip8) error {
	cfg := terminal.Config{
		Frames: opts.Frames,
		Live:   opts.Live,
	}
	if opts.Live {
		cfg.Interval = time.Second / host.FrameRate
	}
	return terminal.Run(ctx, logger, r, emu, terminal.NewRenderer(os.Stdout), cfg)
}

func runWindow(logger *log.Logger, opts options.Program, r *runner.Runner, emu *chip8.Chip8) error {
	beeper, err := audio.New(opts.Mute)
	if err != nil {
		logger.Warn("Audio output not available", log.Err(err))
		beeper = audio.Mute{}
	}
	defer func() {
		_ = beeper.Close()
	}()

	window := host.NewWindow(logger, r, emu, beeper)
	return window.Run(opts.Scale)
}

func dumpFault(logger *log.Logger, emu *chip8.Chip8) {
	logger.Warn("Machine stopped",
		log.Hex("pc", emu.Registers().PC),
		log.String("state", emu.State().String()))
	_ = emu.DumpState(os.Stderr)
}
