package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// drawDigitROM draws the glyph of digit 7 at (1, 1) and loops forever.
var drawDigitROM = []byte{
	0x60, 0x07, // LD V0, $07
	0xF0, 0x29, // LD F, V0
	0x61, 0x01, // LD V1, $01
	0xD1, 0x15, // DRW V1, V1, 5
	0x12, 0x08, // JP $208
}

func TestNew(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	assert.NotNil(t, p)
	assert.NotNil(t, p.logger)
	assert.NotNil(t, p.detector)
	assert.NotNil(t, p.loader)
}

func TestExecuteWithROM(t *testing.T) {
	logger := log.NewTestLogger(t)
	p := New(logger)

	opts := options.Program{
		Flags:        options.Flags{Quiet: true},
		MachineFlags: options.MachineFlags{Frames: 3, Seed: 1},
	}

	var buf bytes.Buffer
	result, err := p.ExecuteWithROM(context.Background(), drawDigitROM, opts, &buf)
	assert.NoError(t, err)
	assert.Equal(t, 3, result.Frames)
	assert.Equal(t, uint64(30), result.Cycles)
	assert.Equal(t, uint64(1), result.Seed)
	assert.False(t, result.Breakpoint)

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, display.Height+1, len(lines))
	assert.Equal(t, ".####", lines[1][:5])
	assert.Equal(t, "....#", lines[2][:5])
	assert.Equal(t, "...#.", lines[3][:5])
	assert.Equal(t, "..#..", lines[4][:5])
	assert.Equal(t, "..#..", lines[5][:5])
}

func TestExecuteWithROMBreakpoint(t *testing.T) {
	p := New(log.NewTestLogger(t))

	opts := options.Program{
		Flags: options.Flags{Breakpoints: "0x206", NoDisplay: true},
	}

	var buf bytes.Buffer
	result, err := p.ExecuteWithROM(context.Background(), drawDigitROM, opts, &buf)
	assert.NoError(t, err)
	assert.True(t, result.Breakpoint)
	assert.Equal(t, uint64(3), result.Cycles)
	assert.Equal(t, 0, result.Frames)
	assert.Empty(t, buf.String())
	assert.Equal(t, uint16(0x206), result.Machine.PC())
}

func TestExecuteWithROMOutputs(t *testing.T) {
	p := New(log.NewTestLogger(t))
	dir := t.TempDir()

	// reference frame is produced by a first run
	reference := filepath.Join(dir, "frame.txt")
	opts := options.Program{
		Parameters:   options.Parameters{Output: filepath.Join(dir, "frame.png")},
		Flags:        options.Flags{NoDisplay: true, Quiet: true},
		MachineFlags: options.MachineFlags{Frames: 1, Scale: 2},
	}
	result, err := p.ExecuteWithROM(context.Background(), drawDigitROM, opts, &bytes.Buffer{})
	assert.NoError(t, err)

	info, err := os.Stat(opts.Output)
	assert.NoError(t, err)
	assert.True(t, info.Size() > 0)

	err = os.WriteFile(reference, []byte(result.Machine.Display().String()), 0600)
	assert.NoError(t, err)

	opts.Output = ""
	opts.Verify = reference
	_, err = p.ExecuteWithROM(context.Background(), drawDigitROM, opts, &bytes.Buffer{})
	assert.NoError(t, err)

	// an empty frame does not match
	_, err = p.ExecuteWithROM(context.Background(), []byte{0x12, 0x00}, opts, &bytes.Buffer{})
	assert.ErrorContains(t, err, "verification failed")
}

func TestExecuteWithROMErrors(t *testing.T) {
	p := New(log.NewTestLogger(t))

	t.Run("empty ROM", func(t *testing.T) {
		_, err := p.ExecuteWithROM(context.Background(), nil, options.Program{}, &bytes.Buffer{})
		assert.ErrorContains(t, err, "loading ROM")
	})

	t.Run("unknown instruction", func(t *testing.T) {
		_, err := p.ExecuteWithROM(context.Background(), []byte{0xFF, 0xFF}, options.Program{}, &bytes.Buffer{})
		assert.ErrorContains(t, err, "running ROM")
	})

	t.Run("missing config file", func(t *testing.T) {
		opts := options.Program{
			Parameters: options.Parameters{Config: filepath.Join(t.TempDir(), "missing.toml")},
		}
		_, err := p.ExecuteWithROM(context.Background(), drawDigitROM, opts, &bytes.Buffer{})
		assert.ErrorContains(t, err, "loading machine config")
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := p.ExecuteWithROM(ctx, drawDigitROM, options.Program{}, &bytes.Buffer{})
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestExecute(t *testing.T) {
	p := New(log.NewTestLogger(t))

	_, err := p.Execute(context.Background(), options.Program{
		Parameters: options.Parameters{Input: "/nonexistent/file.ch8"},
	})
	assert.ErrorContains(t, err, "reading ROM")
}
