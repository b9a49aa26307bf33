package chip8

import (
	"errors"
	"fmt"
)

var (
	// ErrMemoryFault is wrapped by all *MemoryFaultError values.
	ErrMemoryFault = errors.New("memory fault")
	// ErrUnknownOpcode is wrapped by all *UnknownOpcodeError values.
	ErrUnknownOpcode = errors.New("unknown opcode")
	// ErrStackOverflow is returned in strict mode when a call exceeds the stack region.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrStackUnderflow is returned in strict mode when a return is executed on an empty stack.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrProtectedMemory is returned in strict mode on writes to the font region.
	ErrProtectedMemory = errors.New("write to protected memory")
	// ErrROMTooLarge is returned when a ROM does not fit into program memory.
	ErrROMTooLarge = errors.New("rom too large")
)

// Access describes the kind of memory access that caused a fault.
type Access string

// Memory access kinds.
const (
	AccessFetch Access = "fetch"
	AccessWrite Access = "write"
	AccessPush  Access = "push"
	AccessPop   Access = "pop"
)

// MemoryFaultError is returned when the machine accesses memory outside of the
// region that the access kind is allowed to use.
type MemoryFaultError struct {
	Address uint16
	Access  Access
	Err     error // optional cause, one of the stack or protected memory errors
}

func (e *MemoryFaultError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s at address 0x%03X: %s", e.Access, e.Address, e.Err)
	}
	return fmt.Sprintf("invalid %s at address 0x%03X", e.Access, e.Address)
}

// Is reports whether target is ErrMemoryFault.
func (e *MemoryFaultError) Is(target error) bool {
	return target == ErrMemoryFault
}

func (e *MemoryFaultError) Unwrap() error {
	return e.Err
}

// UnknownOpcodeError is returned when an instruction word does not decode to
// any CHIP-8 instruction.
type UnknownOpcodeError struct {
	Address uint16
	Opcode  Opcode
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode %04X at address 0x%03X, decoded as %s",
		e.Opcode.Word, e.Address, e.Opcode.NibbleString())
}

func (e *UnknownOpcodeError) Unwrap() error {
	return ErrUnknownOpcode
}
