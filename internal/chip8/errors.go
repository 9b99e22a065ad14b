package chip8

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRegister is returned when a register index is outside of V0..VF.
	ErrInvalidRegister = errors.New("invalid register")
	// ErrUnknownInstruction is returned when an opcode word matches no known instruction.
	ErrUnknownInstruction = errors.New("unknown instruction")
	// ErrUnimplementedInstruction is returned for a known instruction that can not be executed.
	ErrUnimplementedInstruction = errors.New("unimplemented instruction")
	// ErrInvalidKey is returned when a key index is outside of 0x0..0xF.
	ErrInvalidKey = errors.New("invalid key")
	// ErrOutOfRange is returned when address arithmetic leaves the 12 bit address space.
	ErrOutOfRange = errors.New("out of range")
)

// UnknownInstructionError carries the opcode word that could not be decoded.
type UnknownInstructionError struct {
	Opcode uint16
}

func (e *UnknownInstructionError) Error() string {
	return fmt.Sprintf("%s 0x%04X", ErrUnknownInstruction, e.Opcode)
}

func (e *UnknownInstructionError) Unwrap() error {
	return ErrUnknownInstruction
}

// UnimplementedInstructionError carries the decoded instruction that was not executed.
type UnimplementedInstructionError struct {
	Instruction Instruction
}

func (e *UnimplementedInstructionError) Error() string {
	return fmt.Sprintf("%s %s", ErrUnimplementedInstruction, e.Instruction)
}

func (e *UnimplementedInstructionError) Unwrap() error {
	return ErrUnimplementedInstruction
}
