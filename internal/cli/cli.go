// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/options"
)

// Limits of numeric flags.
const (
	maxClockSpeed = 100000
	maxScale      = 64
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	opts := options.New()
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	if len(args) > 0 {
		opts.Input = args[0]
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <ROM file to run>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	if len(args) > 1 {
		return &UsageError{
			msg: fmt.Sprintf("Only one ROM file can be run, got %d", len(args)),
		}
	}
	return nil
}

// normalizeOptions validates option values
func normalizeOptions(opts *options.Program) error {
	if opts.ClockSpeed < 1 || opts.ClockSpeed > maxClockSpeed {
		return fmt.Errorf("unsupported clock speed %d, valid range: 1-%d", opts.ClockSpeed, maxClockSpeed)
	}
	if opts.Scale < 1 || opts.Scale > maxScale {
		return fmt.Errorf("unsupported scale %d, valid range: 1-%d", opts.Scale, maxScale)
	}
	if opts.Frames < 0 {
		return fmt.Errorf("unsupported frame count %d", opts.Frames)
	}
	if opts.Debug && opts.Quiet {
		opts.Quiet = false
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.IntVar(&opts.ClockSpeed, "clock", options.DefaultClockSpeed, "instructions executed per second")
	flags.IntVar(&opts.Scale, "scale", options.DefaultScale, "window scale factor")
	flags.IntVar(&opts.Frames, "frames", options.DefaultFrames, "frames to run in headless mode, 0 runs until the program finishes")
	flags.BoolVar(&opts.Strict, "strict", false, "enable strict bounds checking for the stack, font memory and instruction alignment")
	flags.BoolVar(&opts.Headless, "headless", false, "run without window and render the screen to the terminal")
	flags.BoolVar(&opts.Live, "live", false, "render every updated frame in headless mode")
	flags.BoolVar(&opts.Mute, "mute", false, "disable sound output")
	flags.BoolVar(&opts.Dump, "dump", false, "print a listing of the loaded program before running")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
