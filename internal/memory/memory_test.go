package memory

import (
	"errors"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestMemory_ReadWrite(t *testing.T) {
	m := New()
	assert.Equal(t, byte(0), m.Read(0x0000))
	assert.Equal(t, byte(0), m.Read(chip8.MaxAddress))

	m.Write(0x0000, 0x12)
	m.Write(chip8.MaxAddress, 0x34)
	assert.Equal(t, byte(0x12), m.Read(0x0000))
	assert.Equal(t, byte(0x34), m.Read(chip8.MaxAddress))
}

func TestMemory_Load(t *testing.T) {
	tests := []struct {
		name  string
		addr  chip8.Addr
		data  []byte
		valid bool
	}{
		{"program start", chip8.ProgramStart, []byte{0x12, 0x34}, true},
		{"ends at last address", chip8.MaxAddress - 1, []byte{0x12, 0x34}, true},
		{"empty", chip8.MaxAddress, nil, true},
		{"overflows address space", chip8.MaxAddress, []byte{0x12, 0x34}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			err := m.Load(tt.addr, tt.data)
			if !tt.valid {
				assert.True(t, errors.Is(err, chip8.ErrOutOfRange))
				assert.Equal(t, byte(0), m.Read(tt.addr))
				return
			}
			assert.NoError(t, err)
			for i, b := range tt.data {
				assert.Equal(t, b, m.Read(tt.addr+chip8.Addr(i)))
			}
		})
	}
}

func TestMemory_ReadWord(t *testing.T) {
	m := New()
	assert.NoError(t, m.Load(chip8.ProgramStart, []byte{0xA2, 0x2A}))

	word, err := m.ReadWord(chip8.ProgramStart)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0xA22A), word)

	_, err = m.ReadWord(chip8.MaxAddress)
	assert.True(t, errors.Is(err, chip8.ErrOutOfRange))
}
