// Package emulator implements the host side fetch loop that drives a VM:
// fetching and decoding instruction words, frame pacing, the 60 Hz timer
// tick, scripted key input and breakpoints.
package emulator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// FrameRate is the number of frames per second, timers tick once per frame.
const FrameRate = 60

// DefaultInstructionsPerFrame is used if no instruction rate is configured.
const DefaultInstructionsPerFrame = 10

// ErrBreakpoint is returned when execution reaches a breakpoint address.
var ErrBreakpoint = errors.New("breakpoint reached")

// KeyEvent presses a key at the start of a frame and holds it for a number of frames.
type KeyEvent struct {
	Frame  int
	Key    keypad.Key
	Frames int // frames to hold the key, at least 1
}

// Options controls the emulator loop.
type Options struct {
	InstructionsPerFrame int
	Realtime             bool // pace frames at FrameRate
	Breakpoints          []uint16
	Keys                 []KeyEvent
}

// Emulator drives a VM.
type Emulator struct {
	logger  *log.Logger
	machine *vm.VM
	opts    Options

	breakpoints    set.Set[uint16]
	skipBreakpoint bool

	frame  int
	cycles uint64
}

// New returns a new emulator for the given machine.
func New(logger *log.Logger, machine *vm.VM, opts Options) *Emulator {
	if opts.InstructionsPerFrame <= 0 {
		opts.InstructionsPerFrame = DefaultInstructionsPerFrame
	}

	breakpoints := set.New[uint16]()
	for _, address := range opts.Breakpoints {
		breakpoints.Add(address)
	}

	return &Emulator{
		logger:      logger,
		machine:     machine,
		opts:        opts,
		breakpoints: breakpoints,
	}
}

// Machine returns the driven VM.
func (e *Emulator) Machine() *vm.VM {
	return e.machine
}

// Frame returns the number of completed frames.
func (e *Emulator) Frame() int {
	return e.frame
}

// Cycles returns the number of executed instructions.
func (e *Emulator) Cycles() uint64 {
	return e.cycles
}

// Step fetches, decodes and executes the instruction at PC. PC is advanced
// past the instruction before it is executed. While the VM waits for a key
// press Step does nothing.
func (e *Emulator) Step() error {
	if _, waiting := e.machine.WaitingForKey(); waiting {
		return nil
	}

	pc := e.machine.PC()
	if e.breakpoints.Contains(pc) && !e.skipBreakpoint {
		e.skipBreakpoint = true
		return fmt.Errorf("%w at $%03X", ErrBreakpoint, pc)
	}
	e.skipBreakpoint = false

	addr, err := chip8.NewAddrChecked(int(pc))
	if err != nil {
		return fmt.Errorf("fetching instruction: %w", err)
	}
	word, err := e.machine.Memory().ReadWord(addr)
	if err != nil {
		return fmt.Errorf("fetching instruction: %w", err)
	}

	ins, err := chip8.Decode(word)
	if err != nil {
		return fmt.Errorf("decoding instruction at $%03X: %w", pc, err)
	}

	e.logger.Debug("Executing instruction",
		log.Hex("pc", pc),
		log.Hex("opcode", word),
		log.Stringer("instruction", ins))

	e.machine.SetPC(pc + 2)
	if err := e.machine.Execute(ins); err != nil {
		return fmt.Errorf("executing instruction at $%03X: %w", pc, err)
	}
	e.cycles++
	return nil
}

// RunFrame applies the key events of the current frame, executes one
// frame worth of instructions and ticks the timers.
func (e *Emulator) RunFrame() error {
	e.applyKeyEvents()

	for range e.opts.InstructionsPerFrame {
		if _, waiting := e.machine.WaitingForKey(); waiting {
			break
		}
		if err := e.Step(); err != nil {
			return err
		}
	}

	e.machine.TickTimers()
	e.frame++
	return nil
}

// Run runs the given number of frames. It stops early when the context is
// canceled or a breakpoint or execution error occurs.
func (e *Emulator) Run(ctx context.Context, frames int) error {
	var ticker *time.Ticker
	if e.opts.Realtime {
		ticker = time.NewTicker(time.Second / FrameRate)
		defer ticker.Stop()
	}

	for range frames {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("running frame %d: %w", e.frame, err)
		}

		if err := e.RunFrame(); err != nil {
			return err
		}

		if ticker != nil {
			select {
			case <-ctx.Done():
				return fmt.Errorf("running frame %d: %w", e.frame, ctx.Err())
			case <-ticker.C:
			}
		}
	}

	if reg, waiting := e.machine.WaitingForKey(); waiting {
		e.logger.Info("Program is waiting for a key press",
			log.Stringer("register", reg),
			log.Int("frame", e.frame))
	}
	return nil
}

func (e *Emulator) applyKeyEvents() {
	for _, event := range e.opts.Keys {
		hold := max(event.Frames, 1)

		switch e.frame {
		case event.Frame:
			e.logger.Debug("Key pressed", log.Stringer("key", event.Key), log.Int("frame", e.frame))
			e.machine.PressKey(event.Key)
		case event.Frame + hold:
			e.logger.Debug("Key released", log.Stringer("key", event.Key), log.Int("frame", e.frame))
			e.machine.ReleaseKey(event.Key)
		}
	}
}
