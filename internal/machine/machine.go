// Package machine drives a CPU over a flat memory bus. It loads program
// images, runs the step loop under a budget, and compares machines
// running side by side.
package machine

import (
	"context"
	"fmt"

	"github.com/kaioluanro/emulador-gba/internal/cpu"
	"github.com/kaioluanro/emulador-gba/internal/mmu"
	"github.com/kaioluanro/emulador-gba/pkg/log"
)

// cancelCheckInterval is how many steps Run takes between context checks.
const cancelCheckInterval = 1024

// Machine is a CPU attached to an MMU, optionally with a serial port
// mapped in.
type Machine struct {
	CPU    *cpu.CPU
	MMU    *mmu.MMU
	Serial *Serial

	log.Logger

	images     []image
	cpuOpts    []cpu.Opt
	entry      uint16
	hasEntry   bool
	stopOnHalt bool
}

type image struct {
	address uint16
	data    []byte
}

// Opt is a function that modifies a Machine instance.
type Opt func(m *Machine)

// WithImage loads data into memory at address.
func WithImage(address uint16, data []byte) Opt {
	return func(m *Machine) {
		m.images = append(m.images, image{address, data})
	}
}

// WithEntryPoint sets the PC execution starts from. It takes precedence
// over the PC set by PostBoot.
func WithEntryPoint(pc uint16) Opt {
	return func(m *Machine) {
		m.entry, m.hasEntry = pc, true
	}
}

// PostBoot starts the CPU with the registers left behind by the boot ROM.
func PostBoot() Opt {
	return func(m *Machine) {
		m.cpuOpts = append(m.cpuOpts, cpu.WithPostBootState())
	}
}

// Debug enables instruction tracing and the LD B, B breakpoint.
func Debug() Opt {
	return func(m *Machine) {
		m.cpuOpts = append(m.cpuOpts, cpu.Debug())
	}
}

// WithLogger sets the logger used by the machine and its components.
func WithLogger(l log.Logger) Opt {
	return func(m *Machine) {
		m.Logger = l
	}
}

// StopOnHalt makes Run return once the CPU executes HALT or STOP. With
// no interrupt controller attached nothing can wake it again.
func StopOnHalt() Opt {
	return func(m *Machine) {
		m.stopOnHalt = true
	}
}

// WithSerial maps a Serial port at SB and SC. Run returns once the
// captured output reports a test result.
func WithSerial() Opt {
	return func(m *Machine) {
		m.Serial = NewSerial()
	}
}

// New returns a new Machine.
func New(opts ...Opt) (*Machine, error) {
	m := &Machine{
		MMU:    mmu.NewMMU(),
		Logger: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.MMU.Log = m.Logger
	for _, img := range m.images {
		if err := m.MMU.Load(img.address, img.data); err != nil {
			return nil, fmt.Errorf("machine: %w", err)
		}
	}
	if m.Serial != nil {
		m.MMU.Map(SB, SC, m.Serial)
	}

	m.CPU = cpu.NewCPU(m.MMU, append(m.cpuOpts, cpu.WithLogger(m.Logger))...)
	if m.hasEntry {
		m.CPU.PC = m.entry
	}
	return m, nil
}

// Run steps the CPU until maxSteps instructions have been executed, or
// until something stops it first; Result.Reason says what. A maxSteps of
// zero or less runs without a budget.
//
// A decode failure is returned as an error wrapping the *cpu.DecodeError,
// a cancelled context as the context's error. In both cases the Result
// describes the state at the point Run stopped.
func (m *Machine) Run(ctx context.Context, maxSteps int) (Result, error) {
	result := Result{Reason: StepLimit}
	start := m.CPU.Cycles()
	finish := func(reason StopReason) Result {
		result.Reason = reason
		result.Cycles = m.CPU.Cycles() - start
		result.Final = m.CPU.Snapshot()
		return result
	}

	for maxSteps <= 0 || result.Steps < maxSteps {
		if result.Steps%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return finish(Cancelled), err
			}
		}

		if err := m.CPU.Step(); err != nil {
			return finish(DecodeFailure), fmt.Errorf("machine: step %d: %w", result.Steps, err)
		}
		result.Steps++

		switch {
		case m.CPU.DebugBreakpoint:
			m.CPU.DebugBreakpoint = false
			m.Debugf("breakpoint at 0x%04X", m.CPU.PC)
			return finish(Breakpoint), nil
		case m.stopOnHalt && m.CPU.Halted():
			return finish(Halted), nil
		case m.Serial != nil && m.Serial.Finished():
			return finish(SerialResult), nil
		}
	}
	return finish(StepLimit), nil
}
