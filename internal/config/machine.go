package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/emulator"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/screenshot"
	"github.com/retroenv/retrochip8/internal/vm"
)

// DefaultFrames is the number of frames run if not configured, 10 seconds.
const DefaultFrames = 10 * emulator.FrameRate

// KeyEvent is a scripted key press of the machine configuration.
type KeyEvent struct {
	Frame  int   `toml:"frame"`
	Key    uint8 `toml:"key"`
	Frames int   `toml:"frames"`
}

// Machine is the machine configuration, usually read from a TOML file:
//
//	instructions_per_frame = 10
//	frames = 600
//	seed = 1234
//	shift_uses_vx = false
//	scale = 8
//	realtime = false
//	breakpoints = [0x20A]
//
//	[[keys]]
//	frame = 30
//	key = 0x5
//	frames = 2
type Machine struct {
	InstructionsPerFrame int        `toml:"instructions_per_frame"`
	Frames               int        `toml:"frames"`
	Seed                 uint64     `toml:"seed"`
	ShiftUsesVX          bool       `toml:"shift_uses_vx"`
	Scale                int        `toml:"scale"`
	Realtime             bool       `toml:"realtime"`
	Breakpoints          []uint16   `toml:"breakpoints"`
	Keys                 []KeyEvent `toml:"keys"`
}

// DefaultMachine returns the machine configuration used without a config file.
func DefaultMachine() Machine {
	return Machine{
		InstructionsPerFrame: emulator.DefaultInstructionsPerFrame,
		Frames:               DefaultFrames,
		Scale:                screenshot.DefaultScale,
	}
}

// LoadMachine reads the machine configuration file, values missing in the
// file keep their defaults.
func LoadMachine(path string) (Machine, error) {
	m := DefaultMachine()
	md, err := toml.DecodeFile(path, &m)
	if err != nil {
		return Machine{}, fmt.Errorf("decoding config file %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Machine{}, fmt.Errorf("unsupported config key '%s' in %s", undecoded[0], path)
	}

	if err := m.validate(); err != nil {
		return Machine{}, fmt.Errorf("validating config file %s: %w", path, err)
	}
	return m, nil
}

// Override applies all command line options that are set.
func (m *Machine) Override(opts options.Program) error {
	if opts.Frames > 0 {
		m.Frames = opts.Frames
	}
	if opts.InstructionsPerFrame > 0 {
		m.InstructionsPerFrame = opts.InstructionsPerFrame
	}
	if opts.Seed != 0 {
		m.Seed = opts.Seed
	}
	if opts.Scale > 0 {
		m.Scale = opts.Scale
	}
	if opts.Realtime {
		m.Realtime = true
	}
	if opts.ShiftUsesVX {
		m.ShiftUsesVX = true
	}

	breakpoints, err := ParseAddresses(opts.Breakpoints)
	if err != nil {
		return fmt.Errorf("parsing breakpoints: %w", err)
	}
	m.Breakpoints = append(m.Breakpoints, breakpoints...)
	return m.validate()
}

// Quirks returns the VM compatibility settings.
func (m Machine) Quirks() vm.Quirks {
	return vm.Quirks{
		ShiftUsesVX: m.ShiftUsesVX,
	}
}

// EmulatorOptions converts the configuration to emulator options.
func (m Machine) EmulatorOptions() (emulator.Options, error) {
	opts := emulator.Options{
		InstructionsPerFrame: m.InstructionsPerFrame,
		Realtime:             m.Realtime,
		Breakpoints:          m.Breakpoints,
	}

	for _, event := range m.Keys {
		key, err := keypad.NewKey(event.Key)
		if err != nil {
			return emulator.Options{}, fmt.Errorf("key event at frame %d: %w", event.Frame, err)
		}
		opts.Keys = append(opts.Keys, emulator.KeyEvent{
			Frame:  event.Frame,
			Key:    key,
			Frames: event.Frames,
		})
	}
	return opts, nil
}

func (m Machine) validate() error {
	switch {
	case m.InstructionsPerFrame < 1:
		return errors.New("instructions_per_frame must be positive")
	case m.Frames < 1:
		return errors.New("frames must be positive")
	case m.Scale < 1:
		return errors.New("scale must be positive")
	}

	for _, address := range m.Breakpoints {
		if _, err := chip8.NewAddrChecked(int(address)); err != nil {
			return fmt.Errorf("breakpoint: %w", err)
		}
	}
	for _, event := range m.Keys {
		if event.Frame < 0 {
			return fmt.Errorf("key event frame %d is negative", event.Frame)
		}
		if _, err := keypad.NewKey(event.Key); err != nil {
			return fmt.Errorf("key event at frame %d: %w", event.Frame, err)
		}
	}
	return nil
}

// ParseAddresses parses a comma separated list of hex addresses like
// "0x20A,$300,2F0".
func ParseAddresses(list string) ([]uint16, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}

	var addresses []uint16
	for field := range strings.SplitSeq(list, ",") {
		field = strings.TrimSpace(field)
		s := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(field), "0x"), "$")
		value, err := strconv.ParseUint(s, 16, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid address '%s': %w", field, err)
		}
		address, err := chip8.NewAddrChecked(int(value))
		if err != nil {
			return nil, fmt.Errorf("invalid address '%s': %w", field, err)
		}
		addresses = append(addresses, uint16(address))
	}
	return addresses, nil
}
