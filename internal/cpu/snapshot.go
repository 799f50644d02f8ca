package cpu

import (
	"fmt"

	"github.com/cespare/xxhash"

	"github.com/kaioluanro/emulador-gba/internal/types"
)

// Snapshot is a copy of the architectural state of a CPU.
type Snapshot struct {
	Registers
	IME       bool
	EnableIME bool
	Mode      uint8
	Cycles    uint64
}

// Snapshot returns the current state of the CPU.
func (c *CPU) Snapshot() Snapshot {
	return Snapshot{
		Registers: c.Registers,
		IME:       c.IME,
		EnableIME: c.enableIME,
		Mode:      c.mode,
		Cycles:    c.cycles,
	}
}

// Restore replaces the state of the CPU with s.
func (c *CPU) Restore(s Snapshot) {
	c.Registers = s.Registers
	c.IME = s.IME
	c.enableIME = s.EnableIME
	c.mode = s.Mode
	c.cycles = s.Cycles
}

// Save encodes the snapshot into state.
func (s Snapshot) Save(state *types.State) {
	state.Write8(s.A)
	state.Write8(s.F.Byte())
	state.Write8(s.B)
	state.Write8(s.C)
	state.Write8(s.D)
	state.Write8(s.E)
	state.Write8(s.H)
	state.Write8(s.L)
	state.Write16(s.SP)
	state.Write16(s.PC)
	state.WriteBool(s.IME)
	state.WriteBool(s.EnableIME)
	state.Write8(s.Mode)
	state.Write64(s.Cycles)
}

// Load decodes a snapshot written by Save. The returned error wraps
// types.ErrShortState when state is truncated.
func (s *Snapshot) Load(state *types.State) error {
	var loaded Snapshot
	loaded.A = state.Read8()
	loaded.F = FlagsFromByte(state.Read8())
	loaded.B = state.Read8()
	loaded.C = state.Read8()
	loaded.D = state.Read8()
	loaded.E = state.Read8()
	loaded.H = state.Read8()
	loaded.L = state.Read8()
	loaded.SP = state.Read16()
	loaded.PC = state.Read16()
	loaded.IME = state.ReadBool()
	loaded.EnableIME = state.ReadBool()
	loaded.Mode = state.Read8()
	loaded.Cycles = state.Read64()
	if err := state.Err(); err != nil {
		return fmt.Errorf("cpu: loading snapshot: %w", err)
	}
	if loaded.Mode > ModeStop {
		return fmt.Errorf("cpu: loading snapshot: invalid mode %d", loaded.Mode)
	}
	*s = loaded
	return nil
}

// Fingerprint returns a hash of the encoded snapshot. Two snapshots
// have the same fingerprint when their encodings are identical.
func (s Snapshot) Fingerprint() uint64 {
	state := types.NewState()
	s.Save(state)
	return xxhash.Sum64(state.Bytes())
}

// Diff describes every field that differs between s and o, one entry
// per field, or nil when they are equal.
func (s Snapshot) Diff(o Snapshot) []string {
	var diff []string
	check := func(name string, a, b interface{}) {
		if a != b {
			diff = append(diff, fmt.Sprintf("%s: %v != %v", name, a, b))
		}
	}
	check("A", s.A, o.A)
	check("F", s.F, o.F)
	check("B", s.B, o.B)
	check("C", s.C, o.C)
	check("D", s.D, o.D)
	check("E", s.E, o.E)
	check("H", s.H, o.H)
	check("L", s.L, o.L)
	check("SP", s.SP, o.SP)
	check("PC", s.PC, o.PC)
	check("IME", s.IME, o.IME)
	check("EnableIME", s.EnableIME, o.EnableIME)
	check("Mode", s.Mode, o.Mode)
	check("Cycles", s.Cycles, o.Cycles)
	return diff
}

// Save writes the CPU state into state.
func (c *CPU) Save(state *types.State) {
	c.Snapshot().Save(state)
}

// Load restores the CPU state from state. On error the CPU is left
// unchanged.
func (c *CPU) Load(state *types.State) error {
	var s Snapshot
	if err := s.Load(state); err != nil {
		return err
	}
	c.Restore(s)
	return nil
}

var _ types.Stater = (*CPU)(nil)
