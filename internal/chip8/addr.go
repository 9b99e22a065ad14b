package chip8

import "fmt"

// Memory layout constants.
//
//	0x000-0x1FF: Interpreter and font data (512 bytes)
//	0x200-0xFFF: User program space (3584 bytes)
const (
	// ProgramStart is the address where programs are loaded and execution begins.
	ProgramStart = 0x200

	// MaxAddress is the highest valid address of the 4KB memory.
	MaxAddress = 0xFFF

	// MemorySize is the number of addressable bytes.
	MemorySize = MaxAddress + 1
)

// Addr is a 12 bit absolute memory address within 0x000..0xFFF.
type Addr uint16

// NewAddr returns the address for the given value, masking it to 12 bits.
func NewAddr(value uint16) Addr {
	return Addr(value & MaxAddress)
}

// NewAddrChecked returns the address for the given value or an out of range
// error if the value does not fit into 12 bits.
func NewAddrChecked(value int) (Addr, error) {
	if value < 0 || value > MaxAddress {
		return 0, fmt.Errorf("%w: address 0x%X", ErrOutOfRange, value)
	}
	return Addr(value), nil
}

// Offset returns the address advanced by the given number of bytes or an
// out of range error if the result leaves the address space.
func (a Addr) Offset(offset int) (Addr, error) {
	return NewAddrChecked(int(a) + offset)
}

func (a Addr) String() string {
	return fmt.Sprintf("$%03X", uint16(a))
}

// Nibble is a 4 bit unsigned value, used as sprite height operand.
type Nibble uint8

// NewNibble returns the nibble for the given value, masking it to 4 bits.
func NewNibble(value uint8) Nibble {
	return Nibble(value & 0x0F)
}

// VRegister names one of the 16 general purpose registers.
// VF doubles as flag register for carry, borrow, shift and collision results.
type VRegister uint8

// General purpose registers.
const (
	V0 VRegister = iota
	V1
	V2
	V3
	V4
	V5
	V6
	V7
	V8
	V9
	VA
	VB
	VC
	VD
	VE
	VF
)

// RegisterCount is the number of general purpose registers.
const RegisterCount = 16

// NewVRegister returns the register for the given index or an invalid
// register error if the index is outside of 0x0..0xF.
func NewVRegister(index uint8) (VRegister, error) {
	if index >= RegisterCount {
		return 0, fmt.Errorf("%w: 0x%X", ErrInvalidRegister, index)
	}
	return VRegister(index), nil
}

// RegistersTo returns all registers from V0 up to and including last.
func RegistersTo(last VRegister) []VRegister {
	if last > VF {
		last = VF
	}
	regs := make([]VRegister, 0, int(last)+1)
	for r := V0; r <= last; r++ {
		regs = append(regs, r)
	}
	return regs
}

func (r VRegister) String() string {
	return fmt.Sprintf("V%X", uint8(r))
}
