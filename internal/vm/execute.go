package vm

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/keypad"
)

// instructionSize is the size of an instruction word in bytes.
const instructionSize = 2

// Execute executes a single decoded instruction. Skip instructions advance
// PC by one additional instruction when their condition holds, the base
// increment is done by the host fetch loop.
func (vm *VM) Execute(ins chip8.Instruction) error {
	switch ins.Op {
	case chip8.OpSys:
		return vm.sys(vm, ins.Addr)
	case chip8.OpClear:
		vm.display.Clear()
	case chip8.OpReturn, chip8.OpJump, chip8.OpCall, chip8.OpLongJump:
		return vm.executeFlow(ins)

	case chip8.OpSkipEqualOperand:
		vm.skipIf(vm.V(ins.X) == ins.Byte)
	case chip8.OpSkipNotEqualOperand:
		vm.skipIf(vm.V(ins.X) != ins.Byte)
	case chip8.OpSkipEqual:
		vm.skipIf(vm.V(ins.X) == vm.V(ins.Y))
	case chip8.OpSkipNotEqual:
		vm.skipIf(vm.V(ins.X) != vm.V(ins.Y))
	case chip8.OpSkipKeyPressed, chip8.OpSkipKeyNotPressed:
		return vm.executeSkipKey(ins)

	case chip8.OpLoadOperand:
		vm.SetV(ins.X, ins.Byte)
	case chip8.OpAddOperand:
		vm.SetV(ins.X, vm.V(ins.X)+ins.Byte)
	case chip8.OpLoad:
		vm.SetV(ins.X, vm.V(ins.Y))
	case chip8.OpOr:
		vm.SetV(ins.X, vm.V(ins.X)|vm.V(ins.Y))
	case chip8.OpAnd:
		vm.SetV(ins.X, vm.V(ins.X)&vm.V(ins.Y))
	case chip8.OpXOr:
		vm.SetV(ins.X, vm.V(ins.X)^vm.V(ins.Y))
	case chip8.OpAdd, chip8.OpSub, chip8.OpSubNegated, chip8.OpShiftRight, chip8.OpShiftLeft:
		vm.executeArithmetic(ins)

	case chip8.OpLoadI:
		vm.registers.I = uint16(ins.Addr)
	case chip8.OpRandom:
		vm.SetV(ins.X, uint8(vm.rng.Uint32())&ins.Byte)
	case chip8.OpDraw:
		return vm.executeDraw(ins)

	case chip8.OpLoadRegisterDelayTimer:
		vm.SetV(ins.X, vm.delayTimer)
	case chip8.OpLoadKey:
		vm.waiting = true
		vm.waitingReg = ins.X
	case chip8.OpLoadDelayTimerRegister:
		vm.delayTimer = vm.V(ins.X)
	case chip8.OpLoadSoundTimerRegister:
		vm.soundTimer = vm.V(ins.X)

	case chip8.OpAddI, chip8.OpLoadSprite, chip8.OpLoadBinaryCodedDecimal,
		chip8.OpLoadMemoryRegisters, chip8.OpLoadRegistersMemory:
		return vm.executeMemory(ins)

	default:
		return &chip8.UnimplementedInstructionError{Instruction: ins}
	}
	return nil
}

func (vm *VM) skipIf(condition bool) {
	if condition {
		vm.registers.PC += instructionSize
	}
}

// executeFlow handles jumps and subroutine calls.
func (vm *VM) executeFlow(ins chip8.Instruction) error {
	switch ins.Op {
	case chip8.OpJump:
		vm.registers.PC = uint16(ins.Addr)

	case chip8.OpLongJump:
		target, err := ins.Addr.Offset(int(vm.V(chip8.V0)))
		if err != nil {
			return fmt.Errorf("long jump: %w", err)
		}
		vm.registers.PC = uint16(target)

	case chip8.OpCall:
		if vm.sp >= StackSize {
			return fmt.Errorf("%w: stack overflow calling %s", chip8.ErrOutOfRange, ins.Addr)
		}
		vm.stack[vm.sp] = vm.registers.PC
		vm.sp++
		vm.registers.PC = uint16(ins.Addr)

	case chip8.OpReturn:
		if vm.sp == 0 {
			return fmt.Errorf("%w: stack underflow on return", chip8.ErrOutOfRange)
		}
		vm.sp--
		vm.registers.PC = vm.stack[vm.sp]

	default:
		return &chip8.UnimplementedInstructionError{Instruction: ins}
	}
	return nil
}

// executeSkipKey handles the keypad skip instructions.
func (vm *VM) executeSkipKey(ins chip8.Instruction) error {
	key, err := keypad.NewKey(vm.V(ins.X))
	if err != nil {
		return fmt.Errorf("reading key from %s: %w", ins.X, err)
	}

	pressed := vm.keypad.IsPressed(key)
	if ins.Op == chip8.OpSkipKeyPressed {
		vm.skipIf(pressed)
	} else {
		vm.skipIf(!pressed)
	}
	return nil
}

// executeArithmetic handles the register arithmetic instructions that set
// VF. Result and flag are computed from the operand values before any
// register is written, the flag is written last so that it wins when the
// destination is VF.
func (vm *VM) executeArithmetic(ins chip8.Instruction) {
	x := vm.V(ins.X)
	y := vm.V(ins.Y)

	var result, flag uint8
	switch ins.Op {
	case chip8.OpAdd:
		sum := uint16(x) + uint16(y)
		result = uint8(sum)
		flag = boolToFlag(sum > 0xFF)

	case chip8.OpSub:
		result = x - y
		flag = boolToFlag(x >= y)

	case chip8.OpSubNegated:
		result = y - x
		flag = boolToFlag(y >= x)

	case chip8.OpShiftRight:
		src := vm.shiftSource(x, y)
		result = src >> 1
		flag = src & 0x01

	case chip8.OpShiftLeft:
		src := vm.shiftSource(x, y)
		result = src << 1
		flag = src >> 7
	}

	vm.SetV(ins.X, result)
	vm.SetV(chip8.VF, flag)
}

func (vm *VM) shiftSource(x, y uint8) uint8 {
	if vm.quirks.ShiftUsesVX {
		return x
	}
	return y
}

func boolToFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// executeDraw reads N sprite rows starting at I and draws them at (Vx, Vy).
func (vm *VM) executeDraw(ins chip8.Instruction) error {
	base := chip8.NewAddr(vm.registers.I)
	if uint16(base) != vm.registers.I {
		return fmt.Errorf("%w: I register 0x%04X", chip8.ErrOutOfRange, vm.registers.I)
	}

	sprite := make(display.Sprite, 0, int(ins.N))
	for offset := range int(ins.N) {
		addr, err := base.Offset(offset)
		if err != nil {
			return fmt.Errorf("reading sprite row %d: %w", offset, err)
		}
		sprite = append(sprite, vm.memory.Read(addr))
	}

	x := display.NewXCoordinate(int(vm.V(ins.X)))
	y := display.NewYCoordinate(int(vm.V(ins.Y)))
	result := vm.display.Draw(sprite, x, y)
	vm.SetV(chip8.VF, boolToFlag(result == display.Overdrawn))
	return nil
}

// executeMemory handles the instructions that use or update I.
func (vm *VM) executeMemory(ins chip8.Instruction) error {
	switch ins.Op {
	case chip8.OpAddI:
		addr, err := chip8.NewAddrChecked(int(vm.registers.I) + int(vm.V(ins.X)))
		if err != nil {
			return fmt.Errorf("adding %s to I: %w", ins.X, err)
		}
		vm.registers.I = uint16(addr)

	case chip8.OpLoadSprite:
		digit := vm.V(ins.X) & 0x0F
		addr, err := chip8.NewAddrChecked(FontAddress + int(digit)*FontSpriteRows)
		if err != nil {
			return fmt.Errorf("locating font glyph %X: %w", digit, err)
		}
		vm.registers.I = uint16(addr)

	case chip8.OpLoadBinaryCodedDecimal:
		value := vm.V(ins.X)
		return vm.storeBytes([]byte{value / 100, value / 10 % 10, value % 10})

	case chip8.OpLoadMemoryRegisters:
		regs := chip8.RegistersTo(ins.X)
		next, err := vm.offsetI(len(regs))
		if err != nil {
			return err
		}
		data := make([]byte, len(regs))
		for i, reg := range regs {
			data[i] = vm.V(reg)
		}
		if err := vm.storeBytes(data); err != nil {
			return err
		}
		vm.registers.I = uint16(next)

	case chip8.OpLoadRegistersMemory:
		regs := chip8.RegistersTo(ins.X)
		next, err := vm.offsetI(len(regs))
		if err != nil {
			return err
		}
		data, err := vm.loadBytes(len(regs))
		if err != nil {
			return err
		}
		for i, reg := range regs {
			vm.SetV(reg, data[i])
		}
		vm.registers.I = uint16(next)

	default:
		return &chip8.UnimplementedInstructionError{Instruction: ins}
	}
	return nil
}

// storeBytes writes data to memory starting at I. All addresses are
// validated before the first write.
func (vm *VM) storeBytes(data []byte) error {
	addrs, err := vm.addressesFromI(len(data))
	if err != nil {
		return err
	}
	for i, addr := range addrs {
		vm.memory.Write(addr, data[i])
	}
	return nil
}

// loadBytes reads count bytes from memory starting at I.
func (vm *VM) loadBytes(count int) ([]byte, error) {
	addrs, err := vm.addressesFromI(count)
	if err != nil {
		return nil, err
	}
	data := make([]byte, count)
	for i, addr := range addrs {
		data[i] = vm.memory.Read(addr)
	}
	return data, nil
}

func (vm *VM) addressesFromI(count int) ([]chip8.Addr, error) {
	addrs := make([]chip8.Addr, count)
	for offset := range count {
		addr, err := chip8.NewAddrChecked(int(vm.registers.I) + offset)
		if err != nil {
			return nil, fmt.Errorf("accessing I+%d: %w", offset, err)
		}
		addrs[offset] = addr
	}
	return addrs, nil
}

// offsetI returns the address following a block of count bytes at I.
func (vm *VM) offsetI(count int) (chip8.Addr, error) {
	addr, err := chip8.NewAddrChecked(int(vm.registers.I) + count)
	if err != nil {
		return 0, fmt.Errorf("advancing I past %d bytes: %w", count, err)
	}
	return addr, nil
}
