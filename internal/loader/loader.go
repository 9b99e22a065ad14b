// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/memory"
	"github.com/retroenv/retrochip8/internal/options"
)

// MaxROMSize is the largest program that fits between ProgramStart and the
// end of memory.
const MaxROMSize = chip8.MemorySize - chip8.ProgramStart

var (
	errEmptyROM    = errors.New("empty ROM")
	errROMTooLarge = errors.New("ROM too large")
)

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the ROM file named in the options and places it in memory at
// chip8.ProgramStart. It returns the size of the loaded program.
func (l *Loader) Load(opts options.Program, mem *memory.Memory) (int, error) {
	data, err := l.Read(opts.Input)
	if err != nil {
		return 0, err
	}

	if err := l.LoadFromBytes(data, mem); err != nil {
		return 0, fmt.Errorf("loading ROM %s: %w", opts.Input, err)
	}
	return len(data), nil
}

// Read returns the content of the ROM file, files larger than MaxROMSize
// are rejected.
func (l *Loader) Read(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	// read one byte more than fits to detect oversized files
	data, err := io.ReadAll(io.LimitReader(file, MaxROMSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	if len(data) > MaxROMSize {
		return nil, fmt.Errorf("%w: file %s exceeds %d bytes", errROMTooLarge, path, MaxROMSize)
	}
	return data, nil
}

// LoadFromBytes places the program data in memory at chip8.ProgramStart.
func (l *Loader) LoadFromBytes(data []byte, mem *memory.Memory) error {
	switch {
	case len(data) == 0:
		return errEmptyROM
	case len(data) > MaxROMSize:
		return fmt.Errorf("%w: %d bytes, maximum is %d", errROMTooLarge, len(data), MaxROMSize)
	}

	if err := mem.Load(chip8.ProgramStart, data); err != nil {
		return fmt.Errorf("writing program to memory: %w", err)
	}
	return nil
}
