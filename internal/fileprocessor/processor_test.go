package fileprocessor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestGetFilesToProcess(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.ch8", "b.ch8", "c.txt"} {
		assert.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte{0x12, 0x00}, 0600))
	}

	t.Run("single input", func(t *testing.T) {
		opts := options.Program{Parameters: options.Parameters{Input: "game.ch8"}}
		files, err := GetFilesToProcess(&opts)
		assert.NoError(t, err)
		assert.Equal(t, []string{"game.ch8"}, files)
	})

	t.Run("batch pattern", func(t *testing.T) {
		opts := options.Program{Parameters: options.Parameters{Batch: filepath.Join(dir, "*.ch8")}}
		files, err := GetFilesToProcess(&opts)
		assert.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "a.ch8"), filepath.Join(dir, "b.ch8")}, files)
	})

	t.Run("invalid pattern", func(t *testing.T) {
		opts := options.Program{Parameters: options.Parameters{Batch: "[z-"}}
		_, err := GetFilesToProcess(&opts)
		assert.Error(t, err)
	})
}

func TestGenerateOutputFilename(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "game.ch8", want: "game.png"},
		{input: "roms/pong.c8", want: "roms/pong.png"},
		{input: "noext", want: "noext.png"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateOutputFilename(tt.input))
		})
	}
}

func TestProcessFile(t *testing.T) {
	logger := log.NewTestLogger(t)
	dir := t.TempDir()
	rom := filepath.Join(dir, "loop.ch8")
	assert.NoError(t, os.WriteFile(rom, []byte{0x12, 0x00}, 0600))

	opts := options.Program{
		Parameters:   options.Parameters{Input: rom, Output: GenerateOutputFilename(rom)},
		Flags:        options.Flags{NoDisplay: true, Quiet: true},
		MachineFlags: options.MachineFlags{Frames: 2},
	}
	assert.NoError(t, ProcessFile(context.Background(), logger, opts))

	_, err := os.Stat(filepath.Join(dir, "loop.png"))
	assert.NoError(t, err)

	opts.Input = filepath.Join(dir, "missing.ch8")
	assert.ErrorContains(t, ProcessFile(context.Background(), logger, opts), "processing")
}

func TestPrintBanner(t *testing.T) {
	logger := log.NewTestLogger(t)
	PrintBanner(logger, options.Program{}, "1.0.0", "0123456789abcdef", "2024-01-01")
	PrintBanner(logger, options.Program{Flags: options.Flags{Quiet: true}}, "dev", "", "")
}
