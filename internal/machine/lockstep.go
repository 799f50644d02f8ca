package machine

import (
	"context"
	"fmt"
	"strings"

	"github.com/cespare/xxhash"

	"github.com/kaioluanro/emulador-gba/internal/cpu"
	"github.com/kaioluanro/emulador-gba/internal/mmu"
)

// Divergence is returned by Lockstep when two machines stop agreeing.
type Divergence struct {
	// Step is the number of steps both machines had executed.
	Step int
	// A and B are the CPU states after that step.
	A, B cpu.Snapshot
	// Memory is set when the CPUs agree but memory does not.
	Memory bool
}

func (d *Divergence) Error() string {
	if d.Memory {
		return fmt.Sprintf("machine: memory diverged after step %d at PC 0x%04X", d.Step, d.A.PC)
	}
	return fmt.Sprintf("machine: diverged after step %d: %s", d.Step, strings.Join(d.A.Diff(d.B), ", "))
}

// MemoryFingerprint hashes the RAM of the machine.
func (m *Machine) MemoryFingerprint() uint64 {
	return xxhash.Sum64(m.MMU.Dump(0, mmu.AddressSpace))
}

// Lockstep steps a and b side by side for up to steps instructions and
// compares the CPU fingerprints after every step, and the memory
// fingerprints too when compareMemory is set. It returns the number of
// steps executed and a *Divergence at the first mismatch.
func Lockstep(ctx context.Context, a, b *Machine, steps int, compareMemory bool) (int, error) {
	for i := 0; i < steps; i++ {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if err := a.CPU.Step(); err != nil {
			return i, fmt.Errorf("machine: lockstep a: %w", err)
		}
		if err := b.CPU.Step(); err != nil {
			return i, fmt.Errorf("machine: lockstep b: %w", err)
		}

		sa, sb := a.CPU.Snapshot(), b.CPU.Snapshot()
		if sa.Fingerprint() != sb.Fingerprint() {
			return i + 1, &Divergence{Step: i + 1, A: sa, B: sb}
		}
		if compareMemory && a.MemoryFingerprint() != b.MemoryFingerprint() {
			return i + 1, &Divergence{Step: i + 1, A: sa, B: sb, Memory: true}
		}
	}
	return steps, nil
}
