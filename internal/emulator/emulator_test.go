package emulator

import (
	"context"
	"errors"
	"testing"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

type fixedRandom uint32

func (r fixedRandom) Uint32() uint32 {
	return uint32(r)
}

func newTestEmulator(t *testing.T, program []byte, opts Options) *Emulator {
	t.Helper()
	machine := vm.New(fixedRandom(0), nil, vm.Quirks{})
	assert.NoError(t, machine.Memory().Load(chip8.ProgramStart, program))
	return New(log.NewTestLogger(t), machine, opts)
}

// drawDigit draws the font glyph 5 at (0, 0) and loops forever.
var drawDigit = []byte{
	0x60, 0x05, // LD V0, 5
	0xF0, 0x29, // LD F, V0
	0x61, 0x00, // LD V1, 0
	0x62, 0x00, // LD V2, 0
	0xD1, 0x25, // DRW V1, V2, 5
	0x12, 0x0A, // JP $20A
}

func TestEmulator_Step(t *testing.T) {
	e := newTestEmulator(t, drawDigit, Options{})

	assert.NoError(t, e.Step())
	assert.Equal(t, uint16(0x202), e.Machine().PC())
	assert.Equal(t, uint8(5), e.Machine().V(chip8.V0))
	assert.Equal(t, uint64(1), e.Cycles())
}

func TestEmulator_RunToBreakpoint(t *testing.T) {
	e := newTestEmulator(t, drawDigit, Options{Breakpoints: []uint16{0x20A}})

	err := e.Run(context.Background(), 10)
	assert.True(t, errors.Is(err, ErrBreakpoint))
	assert.Equal(t, uint64(5), e.Cycles())
	assert.Equal(t, uint16(0x20A), e.Machine().PC())

	d := e.Machine().Display()
	for x, expected := range []display.Pixel{display.On, display.On, display.On, display.On, display.Off} {
		assert.Equal(t, expected, d.Pixel(display.XCoordinate(x), 0))
	}
	assert.Equal(t, uint8(0), e.Machine().V(chip8.VF))

	// resuming executes the instruction at the breakpoint
	assert.NoError(t, e.Step())
	assert.Equal(t, uint16(0x20A), e.Machine().PC())
}

func TestEmulator_RunFrames(t *testing.T) {
	e := newTestEmulator(t, drawDigit, Options{InstructionsPerFrame: 4})

	assert.NoError(t, e.Run(context.Background(), 3))
	assert.Equal(t, 3, e.Frame())
	assert.Equal(t, uint64(12), e.Cycles())
}

func TestEmulator_TimersTickPerFrame(t *testing.T) {
	program := []byte{
		0x60, 0x03, // LD V0, 3
		0xF0, 0x15, // LD DT, V0
		0x12, 0x04, // JP $204
	}
	e := newTestEmulator(t, program, Options{InstructionsPerFrame: 2})

	assert.NoError(t, e.RunFrame())
	assert.Equal(t, uint8(2), e.Machine().DelayTimer())
	assert.NoError(t, e.Run(context.Background(), 5))
	assert.Equal(t, uint8(0), e.Machine().DelayTimer())
}

func TestEmulator_KeyWait(t *testing.T) {
	program := []byte{
		0xF3, 0x0A, // LD V3, K
		0x12, 0x02, // JP $202
	}
	e := newTestEmulator(t, program, Options{
		Keys: []KeyEvent{{Frame: 2, Key: 0x7, Frames: 1}},
	})

	assert.NoError(t, e.Run(context.Background(), 2))
	_, waiting := e.Machine().WaitingForKey()
	assert.True(t, waiting)
	assert.Equal(t, uint16(0x202), e.Machine().PC())

	assert.NoError(t, e.Run(context.Background(), 2))
	_, waiting = e.Machine().WaitingForKey()
	assert.False(t, waiting)
	assert.Equal(t, uint8(0x7), e.Machine().V(chip8.V3))
	assert.False(t, e.Machine().Keypad().IsPressed(0x7))
}

func TestEmulator_UnknownInstruction(t *testing.T) {
	e := newTestEmulator(t, []byte{0x50, 0x01}, Options{})

	err := e.Step()
	assert.True(t, errors.Is(err, chip8.ErrUnknownInstruction))
	assert.ErrorContains(t, err, "$200")
}

func TestEmulator_FetchOutOfRange(t *testing.T) {
	e := newTestEmulator(t, nil, Options{})
	e.Machine().SetPC(chip8.MaxAddress)

	err := e.Step()
	assert.True(t, errors.Is(err, chip8.ErrOutOfRange))
}

func TestEmulator_Canceled(t *testing.T) {
	e := newTestEmulator(t, drawDigit, Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := e.Run(ctx, 10)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 0, e.Frame())
}
