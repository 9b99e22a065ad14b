// Package pipeline orchestrates running a ROM: loading, emulation, frame
// output and verification.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/emulator"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/screenshot"
	"github.com/retroenv/retrochip8/internal/verification"
	"github.com/retroenv/retrochip8/internal/vm"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

// Result describes a finished run.
type Result struct {
	Machine    *vm.VM
	Frames     int
	Cycles     uint64
	Seed       uint64
	Breakpoint bool // execution stopped at a breakpoint
}

// Pipeline orchestrates the complete run of a ROM.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute loads the ROM named in the options and runs it, the final frame
// is printed to stdout.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program) (*Result, error) {
	if !p.detector.IsChip8(opts.Input) {
		p.logger.Warn("File extension does not indicate a Chip-8 ROM", log.String("file", opts.Input))
	}

	data, err := p.loader.Read(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("reading ROM: %w", err)
	}
	return p.ExecuteWithROM(ctx, data, opts, os.Stdout)
}

// ExecuteWithROM runs the given program data, the final frame is written to
// the writer unless disabled in the options.
func (p *Pipeline) ExecuteWithROM(ctx context.Context, data []byte, opts options.Program,
	writer io.Writer) (*Result, error) {

	machineCfg, err := p.machineConfig(opts)
	if err != nil {
		return nil, err
	}

	emuOpts, err := machineCfg.EmulatorOptions()
	if err != nil {
		return nil, fmt.Errorf("creating emulator options: %w", err)
	}

	seed := machineCfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	machine := vm.New(rng, nil, machineCfg.Quirks())
	if err := p.loader.LoadFromBytes(data, machine.Memory()); err != nil {
		return nil, fmt.Errorf("loading ROM: %w", err)
	}

	p.printInfo(opts, len(data), seed)

	emu := emulator.New(p.logger, machine, emuOpts)
	result := &Result{
		Machine: machine,
		Seed:    seed,
	}

	err = emu.Run(ctx, machineCfg.Frames)
	result.Frames = emu.Frame()
	result.Cycles = emu.Cycles()
	switch {
	case errors.Is(err, emulator.ErrBreakpoint):
		result.Breakpoint = true
		p.logger.Info("Execution stopped",
			log.Err(err),
			log.Int("frame", result.Frames))
	case err != nil:
		return result, fmt.Errorf("running ROM: %w", err)
	}

	if err := p.writeOutputs(opts, machineCfg, machine.Display(), writer); err != nil {
		return result, err
	}

	if !opts.Quiet {
		p.logger.Info("Run finished",
			log.Int("frames", result.Frames),
			log.Uint64("cycles", result.Cycles))
	}
	return result, nil
}

func (p *Pipeline) machineConfig(opts options.Program) (config.Machine, error) {
	machineCfg := config.DefaultMachine()
	if opts.Config != "" {
		var err error
		machineCfg, err = config.LoadMachine(opts.Config)
		if err != nil {
			return config.Machine{}, fmt.Errorf("loading machine config: %w", err)
		}
	}

	if err := machineCfg.Override(opts); err != nil {
		return config.Machine{}, fmt.Errorf("applying command line options: %w", err)
	}
	return machineCfg, nil
}

func (p *Pipeline) writeOutputs(opts options.Program, machineCfg config.Machine,
	d *display.Display, writer io.Writer) error {

	if !opts.NoDisplay {
		if err := writeFrame(writer, d); err != nil {
			return fmt.Errorf("writing frame: %w", err)
		}
	}

	if opts.Output != "" {
		if err := writeScreenshot(opts.Output, d, machineCfg.Scale); err != nil {
			return err
		}
		p.logger.Info("Screenshot written", log.String("file", opts.Output))
	}

	if opts.Verify != "" {
		if err := verification.VerifyFrame(p.logger, opts.Verify, d); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
		p.logger.Info("Verification successful")
	}
	return nil
}

func (p *Pipeline) printInfo(opts options.Program, size int, seed uint64) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Processing Chip-8 ROM",
		log.String("file", opts.Input),
		log.Int("size", size),
		log.Uint64("seed", seed),
	)
}

// writeFrame prints the frame with block characters on a terminal and as
// plain text otherwise.
func writeFrame(writer io.Writer, d *display.Display) error {
	frame := d.String()
	if f, ok := writer.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		frame = d.Render('█', ' ')
	}
	_, err := io.WriteString(writer, frame)
	return err
}

func writeScreenshot(path string, d *display.Display, scale int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating screenshot file %s: %w", path, err)
	}

	if err := screenshot.WritePNG(file, d, scale); err != nil {
		_ = file.Close()
		return fmt.Errorf("writing screenshot file %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing screenshot file %s: %w", path, err)
	}
	return nil
}
