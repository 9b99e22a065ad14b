package chip8

// opcode fields of a 16 bit instruction word.
type fields struct {
	high uint16 // bits 12-15, instruction family
	x    uint8  // bits 8-11
	y    uint8  // bits 4-7
	low  uint8  // bits 0-3
	kk   uint8  // bits 0-7
	nnn  uint16 // bits 0-11
}

func splitFields(bits uint16) fields {
	return fields{
		high: (bits & 0xF000) >> 12,
		x:    uint8((bits & 0x0F00) >> 8),
		y:    uint8((bits & 0x00F0) >> 4),
		low:  uint8(bits & 0x000F),
		kk:   uint8(bits & 0x00FF),
		nnn:  bits & 0x0FFF,
	}
}

// Decode decodes a big endian 16 bit instruction word.
// Words that match no known opcode form return an *UnknownInstructionError.
func Decode(bits uint16) (Instruction, error) {
	f := splitFields(bits)

	x, err := NewVRegister(f.x)
	if err != nil {
		return Instruction{}, err
	}
	y, err := NewVRegister(f.y)
	if err != nil {
		return Instruction{}, err
	}
	addr := NewAddr(f.nnn)

	switch f.high {
	case 0x0:
		switch bits {
		case 0x00E0:
			return Clear(), nil
		case 0x00EE:
			return Return(), nil
		default:
			return Sys(addr), nil
		}
	case 0x1:
		return Jump(addr), nil
	case 0x2:
		return Call(addr), nil
	case 0x3:
		return SkipEqualOperand(x, f.kk), nil
	case 0x4:
		return SkipNotEqualOperand(x, f.kk), nil
	case 0x5:
		if f.low == 0x0 {
			return SkipEqual(x, y), nil
		}
	case 0x6:
		return LoadOperand(x, f.kk), nil
	case 0x7:
		return AddOperand(x, f.kk), nil
	case 0x8:
		if ins, ok := decodeArithmetic(f.low, x, y); ok {
			return ins, nil
		}
	case 0x9:
		if f.low == 0x0 {
			return SkipNotEqual(x, y), nil
		}
	case 0xA:
		return LoadI(addr), nil
	case 0xB:
		return LongJump(addr), nil
	case 0xC:
		return Random(x, f.kk), nil
	case 0xD:
		return Draw(x, y, NewNibble(f.low)), nil
	case 0xE:
		switch f.kk {
		case 0x9E:
			return SkipKeyPressed(x), nil
		case 0xA1:
			return SkipKeyNotPressed(x), nil
		}
	case 0xF:
		if ins, ok := decodeMisc(f.kk, x); ok {
			return ins, nil
		}
	}

	return Instruction{}, &UnknownInstructionError{Opcode: bits}
}

// decodeArithmetic decodes the 8xyN register arithmetic family.
func decodeArithmetic(low uint8, x, y VRegister) (Instruction, bool) {
	switch low {
	case 0x0:
		return Load(x, y), true
	case 0x1:
		return Or(x, y), true
	case 0x2:
		return And(x, y), true
	case 0x3:
		return XOr(x, y), true
	case 0x4:
		return Add(x, y), true
	case 0x5:
		return Sub(x, y), true
	case 0x6:
		return ShiftRight(x, y), true
	case 0x7:
		return SubNegated(x, y), true
	case 0xE:
		return ShiftLeft(x, y), true
	default:
		return Instruction{}, false
	}
}

// decodeMisc decodes the Fxkk timer, keypad and memory family.
func decodeMisc(kk uint8, x VRegister) (Instruction, bool) {
	switch kk {
	case 0x07:
		return LoadRegisterDelayTimer(x), true
	case 0x0A:
		return LoadKey(x), true
	case 0x15:
		return LoadDelayTimerRegister(x), true
	case 0x18:
		return LoadSoundTimerRegister(x), true
	case 0x1E:
		return AddI(x), true
	case 0x29:
		return LoadSprite(x), true
	case 0x33:
		return LoadBinaryCodedDecimal(x), true
	case 0x55:
		return LoadMemoryRegisters(x), true
	case 0x65:
		return LoadRegistersMemory(x), true
	default:
		return Instruction{}, false
	}
}

// Encode returns the 16 bit instruction word. It is the inverse of Decode:
// Encode(Decode(w)) == w for every word that Decode accepts.
// An instruction with an invalid Op encodes to 0x0000.
func (i Instruction) Encode() uint16 {
	x := uint16(i.X&0x0F) << 8
	y := uint16(i.Y&0x0F) << 4
	kk := uint16(i.Byte)
	nnn := uint16(i.Addr & MaxAddress)
	n := uint16(i.N & 0x0F)

	switch i.Op {
	case OpSys:
		return nnn
	case OpClear:
		return 0x00E0
	case OpReturn:
		return 0x00EE
	case OpJump:
		return 0x1000 | nnn
	case OpCall:
		return 0x2000 | nnn
	case OpSkipEqualOperand:
		return 0x3000 | x | kk
	case OpSkipNotEqualOperand:
		return 0x4000 | x | kk
	case OpSkipEqual:
		return 0x5000 | x | y
	case OpLoadOperand:
		return 0x6000 | x | kk
	case OpAddOperand:
		return 0x7000 | x | kk
	case OpLoad:
		return 0x8000 | x | y
	case OpOr:
		return 0x8001 | x | y
	case OpAnd:
		return 0x8002 | x | y
	case OpXOr:
		return 0x8003 | x | y
	case OpAdd:
		return 0x8004 | x | y
	case OpSub:
		return 0x8005 | x | y
	case OpShiftRight:
		return 0x8006 | x | y
	case OpSubNegated:
		return 0x8007 | x | y
	case OpShiftLeft:
		return 0x800E | x | y
	case OpSkipNotEqual:
		return 0x9000 | x | y
	case OpLoadI:
		return 0xA000 | nnn
	case OpLongJump:
		return 0xB000 | nnn
	case OpRandom:
		return 0xC000 | x | kk
	case OpDraw:
		return 0xD000 | x | y | n
	case OpSkipKeyPressed:
		return 0xE09E | x
	case OpSkipKeyNotPressed:
		return 0xE0A1 | x
	case OpLoadRegisterDelayTimer:
		return 0xF007 | x
	case OpLoadKey:
		return 0xF00A | x
	case OpLoadDelayTimerRegister:
		return 0xF015 | x
	case OpLoadSoundTimerRegister:
		return 0xF018 | x
	case OpAddI:
		return 0xF01E | x
	case OpLoadSprite:
		return 0xF029 | x
	case OpLoadBinaryCodedDecimal:
		return 0xF033 | x
	case OpLoadMemoryRegisters:
		return 0xF055 | x
	case OpLoadRegistersMemory:
		return 0xF065 | x
	default:
		return 0x0000
	}
}
