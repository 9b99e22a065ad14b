// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Batch == "" && opts.Input == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	if opts.Batch == "" && len(args) > 0 {
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
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	if opts.Output != "" && !strings.EqualFold(filepath.Ext(opts.Output), ".png") {
		opts.Output += ".png"
	}

	if opts.Frames < 0 {
		return fmt.Errorf("invalid frame count %d", opts.Frames)
	}
	if opts.InstructionsPerFrame < 0 {
		return fmt.Errorf("invalid instructions per frame %d", opts.InstructionsPerFrame)
	}
	if opts.Scale < 0 {
		return fmt.Errorf("invalid scale %d", opts.Scale)
	}

	if _, err := config.ParseAddresses(opts.Breakpoints); err != nil {
		return fmt.Errorf("invalid breakpoints: %w", err)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Output, "o", "", "name of the output .png screenshot of the final frame")
	flags.StringVar(&opts.Config, "c", "", "machine config file (.toml) with run settings and scripted key presses")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask, for example *.ch8, with -o screenshots are named after each ROM")
	flags.StringVar(&opts.Verify, "verify", "", "reference text frame file to compare the final frame against")
	flags.StringVar(&opts.Breakpoints, "break", "", "comma separated list of breakpoint addresses, for example 0x20A,0x300")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging, traces every instruction")
	flags.BoolVar(&opts.NoDisplay, "nodisplay", false, "do not print the final frame on the console")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")

	flags.IntVar(&opts.Frames, "frames", 0, "number of 60 Hz frames to run (default 600)")
	flags.IntVar(&opts.InstructionsPerFrame, "ipf", 0, "instructions executed per frame (default 10)")
	flags.Uint64Var(&opts.Seed, "seed", 0, "random number generator seed, time based if not set")
	flags.IntVar(&opts.Scale, "scale", 0, "pixel scale of the screenshot (default 8)")
	flags.BoolVar(&opts.Realtime, "realtime", false, "pace execution at 60 frames per second")
	flags.BoolVar(&opts.ShiftUsesVX, "shift-vx", false, "compatibility mode: shift instructions use Vx as source")
}
