package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "default flags",
			args: []string{"prog", "pong.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "pong.ch8"},
				Flags: options.Flags{
					ClockSpeed: options.DefaultClockSpeed,
					Scale:      options.DefaultScale,
					Frames:     options.DefaultFrames,
				},
			},
		},
		{
			name: "input flag",
			args: []string{"prog", "-i", "tetris.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "tetris.ch8"},
				Flags: options.Flags{
					ClockSpeed: options.DefaultClockSpeed,
					Scale:      options.DefaultScale,
					Frames:     options.DefaultFrames,
				},
			},
		},
		{
			name: "headless run",
			args: []string{"prog", "-headless", "-frames", "0", "-clock", "1000", "-strict", "-mute", "pong.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "pong.ch8"},
				Flags: options.Flags{
					ClockSpeed: 1000,
					Scale:      options.DefaultScale,
					Strict:     true,
					Headless:   true,
					Mute:       true,
				},
			},
		},
		{
			name: "debug overrides quiet",
			args: []string{"prog", "-debug", "-q", "-scale", "4", "pong.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "pong.ch8"},
				Flags: options.Flags{
					ClockSpeed: options.DefaultClockSpeed,
					Scale:      4,
					Frames:     options.DefaultFrames,
					Debug:      true,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		usage bool
	}{
		{"no rom", []string{"prog"}, true},
		{"flag after rom", []string{"prog", "pong.ch8", "-debug"}, true},
		{"two roms", []string{"prog", "pong.ch8", "tetris.ch8"}, true},
		{"clock too low", []string{"prog", "-clock", "0", "pong.ch8"}, false},
		{"clock too high", []string{"prog", "-clock", "100001", "pong.ch8"}, false},
		{"scale too high", []string{"prog", "-scale", "65", "pong.ch8"}, false},
		{"negative frames", []string{"prog", "-frames", "-1", "pong.ch8"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			_, err := ParseFlags()
			assert.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.usage, errors.As(err, &usageErr))
		})
	}
}
