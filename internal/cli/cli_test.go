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
			args: []string{"prog", "test.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "test.ch8"},
			},
		},
		{
			name: "machine flags",
			args: []string{"prog", "-frames", "30", "-ipf", "15", "-seed", "7", "-shift-vx", "test.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "test.ch8"},
				MachineFlags: options.MachineFlags{
					Frames:               30,
					InstructionsPerFrame: 15,
					Seed:                 7,
					ShiftUsesVX:          true,
				},
			},
		},
		{
			name: "output gets png extension",
			args: []string{"prog", "-o", "frame", "-break", "0x20A", "test.ch8"},
			want: options.Program{
				Parameters: options.Parameters{Input: "test.ch8", Output: "frame.png"},
				Flags:      options.Flags{Breakpoints: "0x20A"},
			},
		},
		{
			name: "batch without positional argument",
			args: []string{"prog", "-batch", "*.ch8", "-q"},
			want: options.Program{
				Parameters: options.Parameters{Batch: "*.ch8"},
				Flags:      options.Flags{Quiet: true},
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

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		usageError bool
	}{
		{name: "no file", args: []string{"prog"}, usageError: true},
		{name: "flag after file", args: []string{"prog", "test.ch8", "-q"}, usageError: true},
		{name: "invalid breakpoint", args: []string{"prog", "-break", "0x2000", "test.ch8"}},
		{name: "negative frames", args: []string{"prog", "-frames", "-1", "test.ch8"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			_, err := ParseFlags()
			assert.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.usageError, errors.As(err, &usageErr))
		})
	}
}
