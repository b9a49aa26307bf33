// Package options contains the program options.
package options

// Defaults of the program options.
const (
	DefaultClockSpeed = 700
	DefaultScale      = 10
	DefaultFrames     = 600
)

// Parameters contains file path options.
type Parameters struct {
	Input string // ROM file to run
}

// Flags contains behavior options.
type Flags struct {
	ClockSpeed int  // instructions per second
	Scale      int  // window scale factor
	Frames     int  // frames to run in headless mode, 0 runs until the program finishes
	Strict     bool // strict bounds checking
	Headless   bool // render to the terminal instead of a window
	Live       bool // render every updated frame in headless mode
	Mute       bool // disable tone output
	Dump       bool // dump the program listing before running
	Debug      bool
	Quiet      bool
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
}

// New returns program options with default values.
func New() Program {
	return Program{
		Flags: Flags{
			ClockSpeed: DefaultClockSpeed,
			Scale:      DefaultScale,
			Frames:     DefaultFrames,
		},
	}
}
