// Package verification verifies that the final frame matches a reference frame.
package verification

import (
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrogolib/log"
)

const maxLoggedMismatches = 10

// VerifyFrame compares the text rendering of the display against the
// reference frame stored in the given file.
func VerifyFrame(logger *log.Logger, expectedPath string, d *display.Display) error {
	expected, err := os.ReadFile(expectedPath)
	if err != nil {
		return fmt.Errorf("reading reference frame: %w", err)
	}

	if err := checkBufferEqual(logger, expected, []byte(d.String())); err != nil {
		return fmt.Errorf("comparing frame with %s: %w", expectedPath, err)
	}
	return nil
}

func checkBufferEqual(logger *log.Logger, input, output []byte) error {
	if len(input) != len(output) {
		return fmt.Errorf("mismatched lengths, %d != %d", len(input), len(output))
	}

	var diffs uint64
	for i := range input {
		if input[i] == output[i] {
			continue
		}

		diffs++
		if diffs <= maxLoggedMismatches {
			logger.Error("Pixel mismatch",
				log.Int("x", i%(display.Width+1)),
				log.Int("y", i/(display.Width+1)),
				log.Hex("offset", i),
				log.Hex("expected", input[i]),
				log.Hex("got", output[i]))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d pixel mismatches", diffs)
}
