package cpu

import (
	"fmt"

	"github.com/kaioluanro/emulador-gba/internal/mmu"
)

// Disassemble decodes the instruction at address and renders it with
// its immediate values filled in. JR targets are shown as absolute
// addresses. The returned length includes the CB prefix.
func Disassemble(bus mmu.IOBus, address uint16) (string, uint16, error) {
	fetch := address
	opcode := bus.Read(fetch)
	prefixed := opcode == PrefixCB
	if prefixed {
		fetch++
		opcode = bus.Read(fetch)
	}

	instruction, ok := Decode(opcode, prefixed)
	if !ok {
		return "", 1, &DecodeError{Opcode: opcode, Address: fetch, PC: address, Prefixed: prefixed}
	}

	n := bus.Read(address + 1)
	nn := uint16(n) | uint16(bus.Read(address+2))<<8
	text := instruction.format(func(o Operand) string {
		switch o {
		case Imm8:
			return fmt.Sprintf("$%02X", n)
		case Imm16:
			return fmt.Sprintf("$%04X", nn)
		case SignedImm8:
			if instruction.Op == JR {
				return fmt.Sprintf("$%04X", address+instruction.Length()+uint16(int8(n)))
			}
			return fmt.Sprintf("%+d", int8(n))
		case SPOffset:
			return fmt.Sprintf("SP%+d", int8(n))
		case Direct16:
			return fmt.Sprintf("($%04X)", nn)
		case HighImm8:
			return fmt.Sprintf("($FF%02X)", n)
		}
		return o.String()
	})
	return text, instruction.Length(), nil
}
