// Package vm implements the CHIP-8 execution engine. A VM owns the
// registers, call stack, timers, memory, display and keypad and executes
// one decoded instruction at a time.
//
// The VM does not fetch instructions itself, the host loop fetches the word
// at PC, advances PC by 2, decodes and passes the instruction to Execute.
package vm

import (
	"fmt"
	"math/rand/v2"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/keypad"
	"github.com/retroenv/retrochip8/internal/memory"
)

// StackSize is the number of nested subroutine calls supported.
const StackSize = 16

// RandomSource produces uniformly distributed random numbers.
// *rand.Rand of math/rand/v2 satisfies it.
type RandomSource interface {
	Uint32() uint32
}

// SysHandler handles the legacy SYS addr machine routine call.
type SysHandler func(vm *VM, addr chip8.Addr) error

// Quirks selects behavior that differs between CHIP-8 interpreters.
type Quirks struct {
	// ShiftUsesVX makes SHR and SHL shift Vx in place instead of
	// reading the source value from Vy.
	ShiftUsesVX bool
}

// Registers contains the CPU registers.
type Registers struct {
	V  [chip8.RegisterCount]uint8 // general purpose registers V0..VF
	I  uint16                     // address register
	PC uint16                     // program counter
}

// VM is the CHIP-8 virtual machine.
type VM struct {
	registers Registers
	stack     [StackSize]uint16
	sp        int

	delayTimer uint8
	soundTimer uint8

	rng    RandomSource
	sys    SysHandler
	quirks Quirks

	waiting    bool
	waitingReg chip8.VRegister

	memory  *memory.Memory
	display *display.Display
	keypad  *keypad.Keypad
}

// New returns a new VM with the font loaded at FontAddress and PC set to
// chip8.ProgramStart. A nil rng uses the math/rand/v2 global source, a nil
// sys handler fails every SYS instruction as unimplemented.
func New(rng RandomSource, sys SysHandler, quirks Quirks) *VM {
	if rng == nil {
		rng = globalRandom{}
	}
	if sys == nil {
		sys = unimplementedSys
	}

	vm := &VM{
		rng:     rng,
		sys:     sys,
		quirks:  quirks,
		memory:  memory.New(),
		display: display.New(),
		keypad:  keypad.New(),
	}
	vm.registers.PC = chip8.ProgramStart

	if err := vm.memory.Load(FontAddress, font[:]); err != nil {
		panic(fmt.Sprintf("built-in font does not fit into memory: %v", err))
	}
	return vm
}

type globalRandom struct{}

func (globalRandom) Uint32() uint32 {
	return rand.Uint32()
}

func unimplementedSys(_ *VM, addr chip8.Addr) error {
	return &chip8.UnimplementedInstructionError{Instruction: chip8.Sys(addr)}
}

// Memory returns the memory of the VM.
func (vm *VM) Memory() *memory.Memory {
	return vm.memory
}

// Display returns the framebuffer of the VM.
func (vm *VM) Display() *display.Display {
	return vm.display
}

// Keypad returns the keypad of the VM.
func (vm *VM) Keypad() *keypad.Keypad {
	return vm.keypad
}

// V returns the value of a general purpose register.
func (vm *VM) V(reg chip8.VRegister) uint8 {
	return vm.registers.V[reg&0x0F]
}

// SetV sets the value of a general purpose register.
func (vm *VM) SetV(reg chip8.VRegister, value uint8) {
	vm.registers.V[reg&0x0F] = value
}

// I returns the address register.
func (vm *VM) I() uint16 {
	return vm.registers.I
}

// SetI sets the address register.
func (vm *VM) SetI(value uint16) {
	vm.registers.I = value
}

// PC returns the program counter.
func (vm *VM) PC() uint16 {
	return vm.registers.PC
}

// SetPC sets the program counter.
func (vm *VM) SetPC(value uint16) {
	vm.registers.PC = value
}

// Registers returns a copy of the CPU registers.
func (vm *VM) Registers() Registers {
	return vm.registers
}

// DelayTimer returns the delay timer value.
func (vm *VM) DelayTimer() uint8 {
	return vm.delayTimer
}

// SoundTimer returns the sound timer value.
func (vm *VM) SoundTimer() uint8 {
	return vm.soundTimer
}

// SoundActive returns whether the sound timer is running.
func (vm *VM) SoundActive() bool {
	return vm.soundTimer > 0
}

// TickTimers decrements the delay and sound timers toward zero.
// The host calls it at 60 Hz.
func (vm *VM) TickTimers() {
	if vm.delayTimer > 0 {
		vm.delayTimer--
	}
	if vm.soundTimer > 0 {
		vm.soundTimer--
	}
}

// WaitingForKey returns the register that receives the next key press and
// whether the VM is blocked on a key press.
func (vm *VM) WaitingForKey() (chip8.VRegister, bool) {
	return vm.waitingReg, vm.waiting
}

// PressKey marks the key as pressed. If the VM is waiting for a key press
// the key is stored in the waiting register and the wait ends.
func (vm *VM) PressKey(key keypad.Key) {
	vm.keypad.Set(key, keypad.Pressed)
	if vm.waiting {
		vm.SetV(vm.waitingReg, uint8(key))
		vm.waiting = false
	}
}

// ReleaseKey marks the key as not pressed.
func (vm *VM) ReleaseKey(key keypad.Key) {
	vm.keypad.Set(key, keypad.NotPressed)
}
