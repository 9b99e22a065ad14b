package chip8

// Op identifies the instruction variant of an Instruction.
type Op uint8

// Instruction variants, one per opcode form.
const (
	OpInvalid                 Op = iota
	OpSys                        // 0nnn - SYS addr
	OpClear                      // 00E0 - CLS
	OpReturn                     // 00EE - RET
	OpJump                       // 1nnn - JP addr
	OpCall                       // 2nnn - CALL addr
	OpSkipEqualOperand           // 3xkk - SE Vx, byte
	OpSkipNotEqualOperand        // 4xkk - SNE Vx, byte
	OpSkipEqual                  // 5xy0 - SE Vx, Vy
	OpLoadOperand                // 6xkk - LD Vx, byte
	OpAddOperand                 // 7xkk - ADD Vx, byte
	OpLoad                       // 8xy0 - LD Vx, Vy
	OpOr                         // 8xy1 - OR Vx, Vy
	OpAnd                        // 8xy2 - AND Vx, Vy
	OpXOr                        // 8xy3 - XOR Vx, Vy
	OpAdd                        // 8xy4 - ADD Vx, Vy
	OpSub                        // 8xy5 - SUB Vx, Vy
	OpShiftRight                 // 8xy6 - SHR Vx, Vy
	OpSubNegated                 // 8xy7 - SUBN Vx, Vy
	OpShiftLeft                  // 8xyE - SHL Vx, Vy
	OpSkipNotEqual               // 9xy0 - SNE Vx, Vy
	OpLoadI                      // Annn - LD I, addr
	OpLongJump                   // Bnnn - JP V0, addr
	OpRandom                     // Cxkk - RND Vx, byte
	OpDraw                       // Dxyn - DRW Vx, Vy, nibble
	OpSkipKeyPressed             // Ex9E - SKP Vx
	OpSkipKeyNotPressed          // ExA1 - SKNP Vx
	OpLoadRegisterDelayTimer     // Fx07 - LD Vx, DT
	OpLoadKey                    // Fx0A - LD Vx, K
	OpLoadDelayTimerRegister     // Fx15 - LD DT, Vx
	OpLoadSoundTimerRegister     // Fx18 - LD ST, Vx
	OpAddI                       // Fx1E - ADD I, Vx
	OpLoadSprite                 // Fx29 - LD F, Vx
	OpLoadBinaryCodedDecimal     // Fx33 - LD B, Vx
	OpLoadMemoryRegisters        // Fx55 - LD [I], Vx
	OpLoadRegistersMemory        // Fx65 - LD Vx, [I]
)

var opNames = [...]string{
	OpInvalid:                "Invalid",
	OpSys:                    "Sys",
	OpClear:                  "Clear",
	OpReturn:                 "Return",
	OpJump:                   "Jump",
	OpCall:                   "Call",
	OpSkipEqualOperand:       "SkipEqualOperand",
	OpSkipNotEqualOperand:    "SkipNotEqualOperand",
	OpSkipEqual:              "SkipEqual",
	OpLoadOperand:            "LoadOperand",
	OpAddOperand:             "AddOperand",
	OpLoad:                   "Load",
	OpOr:                     "Or",
	OpAnd:                    "And",
	OpXOr:                    "XOr",
	OpAdd:                    "Add",
	OpSub:                    "Sub",
	OpShiftRight:             "ShiftRight",
	OpSubNegated:             "SubNegated",
	OpShiftLeft:              "ShiftLeft",
	OpSkipNotEqual:           "SkipNotEqual",
	OpLoadI:                  "LoadI",
	OpLongJump:               "LongJump",
	OpRandom:                 "Random",
	OpDraw:                   "Draw",
	OpSkipKeyPressed:         "SkipKeyPressed",
	OpSkipKeyNotPressed:      "SkipKeyNotPressed",
	OpLoadRegisterDelayTimer: "LoadRegisterDelayTimer",
	OpLoadKey:                "LoadKey",
	OpLoadDelayTimerRegister: "LoadDelayTimerRegister",
	OpLoadSoundTimerRegister: "LoadSoundTimerRegister",
	OpAddI:                   "AddI",
	OpLoadSprite:             "LoadSprite",
	OpLoadBinaryCodedDecimal: "LoadBinaryCodedDecimal",
	OpLoadMemoryRegisters:    "LoadMemoryRegisters",
	OpLoadRegistersMemory:    "LoadRegistersMemory",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return opNames[OpInvalid]
}

// Instruction is a decoded instruction. Op selects the variant, the operand
// fields used depend on the variant, unused fields are zero.
// Instructions are plain comparable values.
type Instruction struct {
	Op   Op
	X    VRegister // first register operand
	Y    VRegister // second register operand
	Byte uint8     // 8 bit immediate kk
	Addr Addr      // 12 bit immediate nnn
	N    Nibble    // 4 bit immediate n
}

// Sys returns a SYS addr instruction.
func Sys(addr Addr) Instruction { return Instruction{Op: OpSys, Addr: addr} }

// Clear returns a CLS instruction.
func Clear() Instruction { return Instruction{Op: OpClear} }

// Return returns a RET instruction.
func Return() Instruction { return Instruction{Op: OpReturn} }

// Jump returns a JP addr instruction.
func Jump(addr Addr) Instruction { return Instruction{Op: OpJump, Addr: addr} }

// Call returns a CALL addr instruction.
func Call(addr Addr) Instruction { return Instruction{Op: OpCall, Addr: addr} }

// SkipEqualOperand returns a SE Vx, byte instruction.
func SkipEqualOperand(x VRegister, b uint8) Instruction {
	return Instruction{Op: OpSkipEqualOperand, X: x, Byte: b}
}

// SkipNotEqualOperand returns a SNE Vx, byte instruction.
func SkipNotEqualOperand(x VRegister, b uint8) Instruction {
	return Instruction{Op: OpSkipNotEqualOperand, X: x, Byte: b}
}

// SkipEqual returns a SE Vx, Vy instruction.
func SkipEqual(x, y VRegister) Instruction { return Instruction{Op: OpSkipEqual, X: x, Y: y} }

// LoadOperand returns a LD Vx, byte instruction.
func LoadOperand(x VRegister, b uint8) Instruction {
	return Instruction{Op: OpLoadOperand, X: x, Byte: b}
}

// AddOperand returns an ADD Vx, byte instruction.
func AddOperand(x VRegister, b uint8) Instruction {
	return Instruction{Op: OpAddOperand, X: x, Byte: b}
}

// Load returns a LD Vx, Vy instruction.
func Load(x, y VRegister) Instruction { return Instruction{Op: OpLoad, X: x, Y: y} }

// Or returns an OR Vx, Vy instruction.
func Or(x, y VRegister) Instruction { return Instruction{Op: OpOr, X: x, Y: y} }

// And returns an AND Vx, Vy instruction.
func And(x, y VRegister) Instruction { return Instruction{Op: OpAnd, X: x, Y: y} }

// XOr returns a XOR Vx, Vy instruction.
func XOr(x, y VRegister) Instruction { return Instruction{Op: OpXOr, X: x, Y: y} }

// Add returns an ADD Vx, Vy instruction.
func Add(x, y VRegister) Instruction { return Instruction{Op: OpAdd, X: x, Y: y} }

// Sub returns a SUB Vx, Vy instruction.
func Sub(x, y VRegister) Instruction { return Instruction{Op: OpSub, X: x, Y: y} }

// ShiftRight returns a SHR Vx, Vy instruction.
func ShiftRight(x, y VRegister) Instruction { return Instruction{Op: OpShiftRight, X: x, Y: y} }

// SubNegated returns a SUBN Vx, Vy instruction.
func SubNegated(x, y VRegister) Instruction { return Instruction{Op: OpSubNegated, X: x, Y: y} }

// ShiftLeft returns a SHL Vx, Vy instruction.
func ShiftLeft(x, y VRegister) Instruction { return Instruction{Op: OpShiftLeft, X: x, Y: y} }

// SkipNotEqual returns a SNE Vx, Vy instruction.
func SkipNotEqual(x, y VRegister) Instruction { return Instruction{Op: OpSkipNotEqual, X: x, Y: y} }

// LoadI returns a LD I, addr instruction.
func LoadI(addr Addr) Instruction { return Instruction{Op: OpLoadI, Addr: addr} }

// LongJump returns a JP V0, addr instruction.
func LongJump(addr Addr) Instruction { return Instruction{Op: OpLongJump, Addr: addr} }

// Random returns a RND Vx, byte instruction.
func Random(x VRegister, b uint8) Instruction { return Instruction{Op: OpRandom, X: x, Byte: b} }

// Draw returns a DRW Vx, Vy, nibble instruction.
func Draw(x, y VRegister, n Nibble) Instruction {
	return Instruction{Op: OpDraw, X: x, Y: y, N: n}
}

// SkipKeyPressed returns a SKP Vx instruction.
func SkipKeyPressed(x VRegister) Instruction { return Instruction{Op: OpSkipKeyPressed, X: x} }

// SkipKeyNotPressed returns a SKNP Vx instruction.
func SkipKeyNotPressed(x VRegister) Instruction { return Instruction{Op: OpSkipKeyNotPressed, X: x} }

// LoadRegisterDelayTimer returns a LD Vx, DT instruction.
func LoadRegisterDelayTimer(x VRegister) Instruction {
	return Instruction{Op: OpLoadRegisterDelayTimer, X: x}
}

// LoadKey returns a LD Vx, K instruction.
func LoadKey(x VRegister) Instruction { return Instruction{Op: OpLoadKey, X: x} }

// LoadDelayTimerRegister returns a LD DT, Vx instruction.
func LoadDelayTimerRegister(x VRegister) Instruction {
	return Instruction{Op: OpLoadDelayTimerRegister, X: x}
}

// LoadSoundTimerRegister returns a LD ST, Vx instruction.
func LoadSoundTimerRegister(x VRegister) Instruction {
	return Instruction{Op: OpLoadSoundTimerRegister, X: x}
}

// AddI returns an ADD I, Vx instruction.
func AddI(x VRegister) Instruction { return Instruction{Op: OpAddI, X: x} }

// LoadSprite returns a LD F, Vx instruction.
func LoadSprite(x VRegister) Instruction { return Instruction{Op: OpLoadSprite, X: x} }

// LoadBinaryCodedDecimal returns a LD B, Vx instruction.
func LoadBinaryCodedDecimal(x VRegister) Instruction {
	return Instruction{Op: OpLoadBinaryCodedDecimal, X: x}
}

// LoadMemoryRegisters returns a LD [I], Vx instruction.
func LoadMemoryRegisters(x VRegister) Instruction {
	return Instruction{Op: OpLoadMemoryRegisters, X: x}
}

// LoadRegistersMemory returns a LD Vx, [I] instruction.
func LoadRegistersMemory(x VRegister) Instruction {
	return Instruction{Op: OpLoadRegistersMemory, X: x}
}

// IsSkip returns true if the instruction conditionally skips the next instruction.
func (i Instruction) IsSkip() bool {
	switch i.Op {
	case OpSkipEqualOperand, OpSkipNotEqualOperand, OpSkipEqual, OpSkipNotEqual,
		OpSkipKeyPressed, OpSkipKeyNotPressed:
		return true
	default:
		return false
	}
}
