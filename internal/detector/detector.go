// Package detector handles system detection of ROM files.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

// Detector handles system detection from file extensions.
type Detector struct {
	logger *log.Logger
}

// New creates a new system detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect returns the system that the file extension indicates, an empty
// system is returned for unknown extensions.
func (d *Detector) Detect(filename string) arch.System {
	system := detectFromFile(filename)
	d.logger.Debug("Detected system",
		log.String("system", string(system)),
		log.String("file", filename))
	return system
}

// IsChip8 returns whether the file can be run. Files with an unknown
// extension are accepted, files of other systems are not.
func (d *Detector) IsChip8(filename string) bool {
	system := d.Detect(filename)
	return system == "" || system == arch.CHIP8System
}

func detectFromFile(filename string) arch.System {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".ch8", ".c8", ".rom":
		return arch.CHIP8System
	case ".nes":
		return arch.NES
	default:
		return ""
	}
}
