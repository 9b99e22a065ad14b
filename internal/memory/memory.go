// Package memory provides the flat 4KB RAM of the CHIP-8 machine.
package memory

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// Memory is a byte addressable RAM of chip8.MemorySize bytes.
// Reads and writes take pre-validated addresses and can not fail.
type Memory struct {
	ram [chip8.MemorySize]byte
}

// New returns a zero initialized memory.
func New() *Memory {
	return &Memory{}
}

// Read reads the byte at the given address.
func (m *Memory) Read(addr chip8.Addr) byte {
	return m.ram[addr&chip8.MaxAddress]
}

// Write writes a byte to the given address.
func (m *Memory) Write(addr chip8.Addr, value byte) {
	m.ram[addr&chip8.MaxAddress] = value
}

// Load copies data into memory starting at the given address.
// It returns an out of range error and leaves memory unchanged if the data
// does not fit.
func (m *Memory) Load(addr chip8.Addr, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if _, err := addr.Offset(len(data) - 1); err != nil {
		return fmt.Errorf("loading %d bytes at %s: %w", len(data), addr, err)
	}
	copy(m.ram[addr:], data)
	return nil
}

// ReadWord reads the big endian 16 bit word at the given address.
func (m *Memory) ReadWord(addr chip8.Addr) (uint16, error) {
	next, err := addr.Offset(1)
	if err != nil {
		return 0, fmt.Errorf("reading word at %s: %w", addr, err)
	}
	return uint16(m.Read(addr))<<8 | uint16(m.Read(next)), nil
}
