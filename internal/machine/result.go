package machine

import (
	"fmt"

	"github.com/kaioluanro/emulador-gba/internal/cpu"
)

// StopReason is why Run returned.
type StopReason uint8

const (
	// StepLimit means the step budget was spent.
	StepLimit StopReason = iota
	// Halted means the CPU entered HALT or STOP.
	Halted
	// Breakpoint means the CPU executed LD B, B in debug mode.
	Breakpoint
	// SerialResult means a test result was written to the serial port.
	SerialResult
	// DecodeFailure means the CPU fetched an unknown opcode.
	DecodeFailure
	// Cancelled means the context was done.
	Cancelled
)

func (r StopReason) String() string {
	switch r {
	case StepLimit:
		return "step limit"
	case Halted:
		return "halted"
	case Breakpoint:
		return "breakpoint"
	case SerialResult:
		return "serial result"
	case DecodeFailure:
		return "decode failure"
	case Cancelled:
		return "cancelled"
	}
	return fmt.Sprintf("StopReason(%d)", uint8(r))
}

// Result describes a finished Run.
type Result struct {
	Steps  int
	Cycles uint64
	Reason StopReason
	Final  cpu.Snapshot
}

// Outcome is the verdict a test ROM leaves in the registers when it hits
// its breakpoint.
type Outcome uint8

const (
	OutcomeUnknown Outcome = iota
	OutcomePassed
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomePassed:
		return "passed"
	case OutcomeFailed:
		return "failed"
	}
	return "unknown"
}

// Outcome reads the register verdict convention: a passing test writes
// the fibonacci sequence 3/5/8/13/21/34 to B/C/D/E/H/L, a failing test
// writes 0x42 to all of them.
func (r Result) Outcome() Outcome {
	regs := [...]uint8{r.Final.B, r.Final.C, r.Final.D, r.Final.E, r.Final.H, r.Final.L}
	switch regs {
	case [...]uint8{3, 5, 8, 13, 21, 34}:
		return OutcomePassed
	case [...]uint8{0x42, 0x42, 0x42, 0x42, 0x42, 0x42}:
		return OutcomeFailed
	}
	return OutcomeUnknown
}
