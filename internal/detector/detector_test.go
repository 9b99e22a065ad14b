package detector

import (
	"testing"

	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestDetect(t *testing.T) {
	logger := log.NewTestLogger(t)
	d := New(logger)

	tests := []struct {
		name       string
		inputFile  string
		wantSystem arch.System
		wantChip8  bool
	}{
		{
			name:       "detect from .ch8 extension",
			inputFile:  "game.ch8",
			wantSystem: arch.CHIP8System,
			wantChip8:  true,
		},
		{
			name:       "detect from .c8 extension",
			inputFile:  "roms/PONG.C8",
			wantSystem: arch.CHIP8System,
			wantChip8:  true,
		},
		{
			name:       "detect from .rom extension",
			inputFile:  "game.rom",
			wantSystem: arch.CHIP8System,
			wantChip8:  true,
		},
		{
			name:       "detect from .nes extension",
			inputFile:  "game.nes",
			wantSystem: arch.NES,
			wantChip8:  false,
		},
		{
			name:       "unknown extension",
			inputFile:  "game.bin",
			wantSystem: "",
			wantChip8:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantSystem, d.Detect(tt.inputFile))
			assert.Equal(t, tt.wantChip8, d.IsChip8(tt.inputFile))
		})
	}
}
