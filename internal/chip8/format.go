package chip8

import (
	"fmt"

	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// sysMnemonic is used for the legacy machine routine call which has no
// entry in the instruction table.
const sysMnemonic = "sys"

// Mnemonic returns the assembler mnemonic of the instruction.
func (i Instruction) Mnemonic() string {
	if ins := i.cpuInstruction(); ins != nil {
		return ins.Name
	}
	if i.Op == OpSys {
		return sysMnemonic
	}
	return ""
}

// cpuInstruction maps the variant to its instruction table entry.
func (i Instruction) cpuInstruction() *chip8cpu.Instruction {
	switch i.Op {
	case OpClear:
		return chip8cpu.Cls
	case OpReturn:
		return chip8cpu.Ret
	case OpJump, OpLongJump:
		return chip8cpu.Jp
	case OpCall:
		return chip8cpu.Call
	case OpSkipEqualOperand, OpSkipEqual:
		return chip8cpu.Se
	case OpSkipNotEqualOperand, OpSkipNotEqual:
		return chip8cpu.Sne
	case OpLoadOperand, OpLoad, OpLoadI, OpLoadRegisterDelayTimer, OpLoadKey,
		OpLoadDelayTimerRegister, OpLoadSoundTimerRegister, OpLoadSprite,
		OpLoadBinaryCodedDecimal, OpLoadMemoryRegisters, OpLoadRegistersMemory:
		return chip8cpu.Ld
	case OpAddOperand, OpAdd, OpAddI:
		return chip8cpu.Add
	case OpOr:
		return chip8cpu.Or
	case OpAnd:
		return chip8cpu.And
	case OpXOr:
		return chip8cpu.Xor
	case OpSub:
		return chip8cpu.Sub
	case OpSubNegated:
		return chip8cpu.Subn
	case OpShiftRight:
		return chip8cpu.Shr
	case OpShiftLeft:
		return chip8cpu.Shl
	case OpRandom:
		return chip8cpu.Rnd
	case OpDraw:
		return chip8cpu.Drw
	case OpSkipKeyPressed:
		return chip8cpu.Skp
	case OpSkipKeyNotPressed:
		return chip8cpu.Sknp
	default:
		return nil
	}
}

// String returns the instruction in assembler notation, for example "add V2, V3".
func (i Instruction) String() string {
	name := i.Mnemonic()
	if name == "" {
		return fmt.Sprintf("%s(0x%04X)", i.Op, i.Encode())
	}
	if params := i.formatParams(); params != "" {
		return fmt.Sprintf("%s %s", name, params)
	}
	return name
}

// formatParams formats the operands of the instruction.
func (i Instruction) formatParams() string {
	switch i.Op {
	case OpClear, OpReturn:
		return "" // No parameters
	case OpSys, OpJump, OpCall:
		return fmt.Sprintf("$%03X", uint16(i.Addr))
	case OpLongJump:
		return fmt.Sprintf("V0, $%03X", uint16(i.Addr))
	case OpLoadI:
		return fmt.Sprintf("I, $%03X", uint16(i.Addr))
	case OpSkipEqualOperand, OpSkipNotEqualOperand, OpLoadOperand, OpAddOperand, OpRandom:
		return fmt.Sprintf("%s, $%02X", i.X, i.Byte)
	case OpSkipEqual, OpSkipNotEqual, OpLoad, OpOr, OpAnd, OpXOr, OpAdd, OpSub,
		OpShiftRight, OpSubNegated, OpShiftLeft:
		return fmt.Sprintf("%s, %s", i.X, i.Y)
	case OpDraw:
		return fmt.Sprintf("%s, %s, $%X", i.X, i.Y, uint8(i.N))
	case OpSkipKeyPressed, OpSkipKeyNotPressed:
		return i.X.String()
	default:
		return i.formatMiscParams()
	}
}

// formatMiscParams formats the operands of the Fxkk family.
func (i Instruction) formatMiscParams() string {
	switch i.Op {
	case OpLoadRegisterDelayTimer:
		return fmt.Sprintf("%s, DT", i.X)
	case OpLoadKey:
		return fmt.Sprintf("%s, K", i.X)
	case OpLoadDelayTimerRegister:
		return fmt.Sprintf("DT, %s", i.X)
	case OpLoadSoundTimerRegister:
		return fmt.Sprintf("ST, %s", i.X)
	case OpAddI:
		return fmt.Sprintf("I, %s", i.X)
	case OpLoadSprite:
		return fmt.Sprintf("F, %s", i.X)
	case OpLoadBinaryCodedDecimal:
		return fmt.Sprintf("B, %s", i.X)
	case OpLoadMemoryRegisters:
		return fmt.Sprintf("[I], %s", i.X)
	case OpLoadRegistersMemory:
		return fmt.Sprintf("%s, [I]", i.X)
	default:
		return ""
	}
}
