package cpu

import (
	"errors"
	"fmt"
)

// ErrUnknownOpcode is wrapped by every DecodeError.
var ErrUnknownOpcode = errors.New("unknown opcode")

// DecodeError reports an opcode with no instruction. Execution cannot
// continue past it: skipping the byte would desynchronise every
// following fetch.
type DecodeError struct {
	// Opcode is the byte that failed to decode.
	Opcode uint8
	// Address is where Opcode was fetched from. For a prefixed opcode
	// this is the byte after the 0xCB prefix.
	Address uint16
	// PC is the program counter of the failed instruction.
	PC uint16
	// Prefixed is set when Opcode was looked up in the CB table.
	Prefixed bool
}

func (e *DecodeError) Error() string {
	if e.Prefixed {
		return fmt.Sprintf("cpu: %v 0xCB 0x%02X at 0x%04X", ErrUnknownOpcode, e.Opcode, e.Address)
	}
	return fmt.Sprintf("cpu: %v 0x%02X at 0x%04X", ErrUnknownOpcode, e.Opcode, e.Address)
}

func (e *DecodeError) Unwrap() error {
	return ErrUnknownOpcode
}
