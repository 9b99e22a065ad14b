// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input ROM file"`
	Output string `flag:"o" usage:"output .png screenshot of the final frame"`
	Config string `flag:"c" usage:"machine configuration file (.toml)"`
	Batch  string `flag:"batch" usage:"batch process files matching pattern (e.g. *.ch8)"`
	Verify string `flag:"verify" usage:"reference text frame to compare the final frame against"`
}

// Flags contains behavior options.
type Flags struct {
	Breakpoints string `flag:"break" usage:"comma separated list of breakpoint addresses (e.g. 0x20A,0x300)"`
	Debug       bool   `flag:"debug" usage:"enable debug logging, traces every executed instruction"`
	NoDisplay   bool   `flag:"nodisplay" usage:"do not print the final frame on the console"`
	Quiet       bool   `flag:"q" usage:"quiet mode"`
}

// MachineFlags contains options that override the machine configuration.
// Zero values keep the configured value.
type MachineFlags struct {
	Frames               int    `flag:"frames" usage:"number of 60 Hz frames to run"`
	InstructionsPerFrame int    `flag:"ipf" usage:"instructions executed per frame"`
	Seed                 uint64 `flag:"seed" usage:"random number generator seed"`
	Scale                int    `flag:"scale" usage:"pixel scale of the screenshot"`
	Realtime             bool   `flag:"realtime" usage:"pace execution at 60 frames per second"`
	ShiftUsesVX          bool   `flag:"shift-vx" usage:"compatibility mode: shift instructions use Vx as source"`
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
	MachineFlags
}
