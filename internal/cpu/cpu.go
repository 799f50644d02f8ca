// Package cpu implements the SM83, the Z80 derived processor of the
// Game Boy. It decodes and executes one instruction per Step against
// an mmu.IOBus, and knows nothing about the rest of the machine.
package cpu

import (
	"github.com/kaioluanro/emulador-gba/internal/mmu"
	"github.com/kaioluanro/emulador-gba/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the CPU in Hz.
	ClockSpeed = 4194304
)

type mode = uint8

const (
	// ModeNormal is the normal CPU mode.
	ModeNormal mode = iota
	// ModeHalt is entered by HALT and left on an interrupt.
	ModeHalt
	// ModeStop is entered by STOP and left on an interrupt.
	ModeStop
)

// CPU represents the Game Boy CPU. It is responsible for executing
// instructions. A CPU is not safe for concurrent use.
type CPU struct {
	// Registers contains the 8-bit registers, the flags, SP and PC.
	Registers

	// IME is the interrupt master enable flag.
	IME bool

	Debug           bool
	DebugBreakpoint bool

	bus mmu.IOBus
	log log.Logger

	mode mode
	// enableIME is set by EI, IME becomes set after the next instruction.
	enableIME bool
	cycles    uint64
}

// Opt is a function that modifies a CPU instance.
type Opt func(c *CPU)

// WithLogger sets the logger decode failures and traces are written to.
func WithLogger(l log.Logger) Opt {
	return func(c *CPU) {
		c.log = l
	}
}

// Debug enables instruction tracing and the LD B, B breakpoint.
func Debug() Opt {
	return func(c *CPU) {
		c.Debug = true
	}
}

// WithPostBootState starts the CPU with the registers the boot ROM
// leaves behind, at 0x0100.
func WithPostBootState() Opt {
	return func(c *CPU) {
		c.PostBoot()
	}
}

// NewCPU creates a new CPU attached to the given bus. Without options
// every register is zero and execution starts at 0x0000.
func NewCPU(bus mmu.IOBus, opts ...Opt) *CPU {
	c := &CPU{
		bus: bus,
		log: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Step fetches, decodes and executes one instruction and commits the
// new program counter. If the opcode cannot be decoded a *DecodeError
// is returned and the CPU state, PC included, is left untouched.
//
// A halted or stopped CPU does not fetch, it idles for one machine
// cycle until Interrupt wakes it.
func (c *CPU) Step() error {
	if c.mode != ModeNormal {
		c.cycles++
		return nil
	}

	address := c.PC
	opcode := c.bus.Read(address)
	prefixed := opcode == PrefixCB
	if prefixed {
		address++
		opcode = c.bus.Read(address)
	}

	instruction, ok := Decode(opcode, prefixed)
	if !ok {
		err := &DecodeError{
			Opcode:   opcode,
			Address:  address,
			PC:       c.PC,
			Prefixed: prefixed,
		}
		c.log.Errorf("%v", err)
		return err
	}

	if c.Debug {
		c.log.Debugf("%04X  %-14s A:%02X F:%s B:%02X C:%02X D:%02X E:%02X H:%02X L:%02X SP:%04X",
			c.PC, instruction, c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L, c.SP)
	}

	enableIME := c.enableIME
	c.PC = c.Execute(instruction)
	if enableIME && c.enableIME {
		c.IME = true
		c.enableIME = false
	}
	return nil
}

// Interrupt is called by an interrupt controller with a pending,
// enabled interrupt. A halted or stopped CPU is woken up. If IME is set
// the current PC is pushed, execution continues at vector, IME is
// cleared and true is returned.
func (c *CPU) Interrupt(vector uint16) bool {
	c.mode = ModeNormal
	if !c.IME {
		return false
	}

	c.IME = false
	c.enableIME = false
	c.pushStack(c.PC)
	c.PC = vector
	c.cycles += 5
	return true
}

// Halted reports whether the CPU is waiting in HALT or STOP.
func (c *CPU) Halted() bool {
	return c.mode != ModeNormal
}

// Cycles returns the number of machine cycles executed so far.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// readByte reads a byte from the bus.
func (c *CPU) readByte(addr uint16) uint8 {
	return c.bus.Read(addr)
}

// writeByte writes the given value to the given address.
func (c *CPU) writeByte(addr uint16, val uint8) {
	c.bus.Write(addr, val)
}

// readWord reads a little-endian word from the bus.
func (c *CPU) readWord(addr uint16) uint16 {
	return uint16(c.readByte(addr)) | uint16(c.readByte(addr+1))<<8
}
