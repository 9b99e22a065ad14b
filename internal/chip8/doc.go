// Package chip8 provides the CHIP-8 instruction set: addressing primitives,
// the instruction decoder and its inverse encoder.
//
// # Memory Layout
//
// CHIP-8 systems have 4KB of memory (0x000-MaxAddress):
//   - 0x000-0x1FF: Interpreter area, holds the built-in font
//   - ProgramStart-MaxAddress: User program and data area
//
// # Instruction Set
//
// CHIP-8 has a simple instruction set with 35 opcodes:
//   - All instructions are 2 bytes (16 bits), stored big endian
//   - Instructions use direct addressing with 12-bit addresses
//   - 16 general-purpose 8-bit registers (V0-VF)
//   - Special-purpose registers: I (16-bit), PC
//
// An opcode word is split into the fields [high|x|y|n], equivalently
// [high|x|kk] or [high|nnn]. The high nibble selects the instruction family,
// families 0x0, 0x8, 0xE and 0xF are further distinguished by kk or n.
//
// # Usage Example
//
//	ins, err := chip8.Decode(0x8234)
//	if err != nil {
//		return fmt.Errorf("decoding opcode: %w", err)
//	}
//	// ins == chip8.Add(chip8.V2, chip8.V3)
//	word := ins.Encode() // 0x8234
package chip8
