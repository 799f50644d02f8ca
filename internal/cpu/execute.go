package cpu

import "fmt"

// breakpoint is the software breakpoint recognised in debug mode.
var breakpoint = Instruction{Op: LD, Dst: B, Src: B}

// Execute performs the effect of instruction as if it were located at
// PC, and returns the address of the next instruction. Registers, flags
// and memory are updated but PC itself is not: committing the returned
// value is up to the caller (see Step).
//
// Immediate operands are read from the bytes following the opcode. The
// CB prefix byte is part of Length, so a prefixed instruction advances
// PC by 2.
//
// Execute panics if instruction is not a valid instruction, such as the
// Unimplemented marker.
func (c *CPU) Execute(instruction Instruction) uint16 {
	pc := c.PC
	next := pc + instruction.Length()
	taken := false

	switch op := instruction.Op; op {
	case NOP:
	case STOP:
		c.mode = ModeStop
	case HALT:
		c.mode = ModeHalt
	case DI:
		c.IME = false
		c.enableIME = false
	case EI:
		c.enableIME = true

	case LD:
		c.load(instruction.Dst, instruction.Src, pc)
	case PUSH:
		c.pushStack(c.read16(instruction.Src, pc))
	case POP:
		c.write16(instruction.Dst, c.popStack(), pc)

	case ADD:
		switch instruction.Dst {
		case HL:
			c.addHL(c.read16(instruction.Src, pc))
		case SP:
			c.SP = c.addSPSigned(c.readByte(pc + 1))
		default:
			c.add(c.read8(instruction.Src, pc), false)
		}
	case ADC:
		c.add(c.read8(instruction.Src, pc), true)
	case SUB:
		c.sub(c.read8(instruction.Src, pc), false)
	case SBC:
		c.sub(c.read8(instruction.Src, pc), true)
	case AND:
		c.and(c.read8(instruction.Src, pc))
	case XOR:
		c.xor(c.read8(instruction.Src, pc))
	case OR:
		c.or(c.read8(instruction.Src, pc))
	case CP:
		c.compare(c.read8(instruction.Src, pc))
	case INC:
		if instruction.Dst.wide() {
			c.write16(instruction.Dst, c.read16(instruction.Dst, pc)+1, pc)
		} else {
			c.write8(instruction.Dst, c.increment(c.read8(instruction.Dst, pc)), pc)
		}
	case DEC:
		if instruction.Dst.wide() {
			c.write16(instruction.Dst, c.read16(instruction.Dst, pc)-1, pc)
		} else {
			c.write8(instruction.Dst, c.decrement(c.read8(instruction.Dst, pc)), pc)
		}

	case DAA:
		c.decimalAdjust()
	case CPL:
		c.complement()
	case SCF:
		c.setCarryFlag()
	case CCF:
		c.complementCarryFlag()
	case RLCA, RRCA, RLA, RRA:
		// same as the CB rotates on A, except Z is always reset
		c.A = c.rotate(accumulatorRotates[op-RLCA], c.A)
		c.F.Zero = false

	case JP:
		if instruction.Src == HL {
			next = c.HL()
		} else if taken = c.condition(instruction.Cond); taken {
			next = c.readWord(pc + 1)
		}
	case JR:
		if taken = c.condition(instruction.Cond); taken {
			next = c.jumpRelative(next, c.readByte(pc+1))
		}
	case CALL:
		if taken = c.condition(instruction.Cond); taken {
			c.pushStack(next)
			next = c.readWord(pc + 1)
		}
	case RET:
		if taken = c.condition(instruction.Cond); taken {
			next = c.popStack()
		}
	case RETI:
		next = c.popStack()
		c.IME = true
	case RST:
		c.pushStack(next)
		next = uint16(instruction.Vector)

	case RLC, RRC, RL, RR, SLA, SRA, SWAP, SRL:
		c.write8(instruction.Dst, c.rotate(op, c.read8(instruction.Dst, pc)), pc)
	case BIT:
		c.testBit(c.read8(instruction.Dst, pc), instruction.Bit)
	case RES:
		c.write8(instruction.Dst, c.resetBit(c.read8(instruction.Dst, pc), instruction.Bit), pc)
	case SET:
		c.write8(instruction.Dst, c.setBit(c.read8(instruction.Dst, pc), instruction.Bit), pc)

	default:
		panic(fmt.Sprintf("cpu: cannot execute %v at 0x%04X", instruction, pc))
	}

	c.cycles += uint64(instruction.Cycles(taken))
	if c.Debug && instruction == breakpoint {
		c.DebugBreakpoint = true
	}
	return next
}

// accumulatorRotates maps RLCA, RRCA, RLA and RRA to the CB rotate
// sharing their semantics.
var accumulatorRotates = [...]Op{RLC, RRC, RL, RR}

// load copies src into dst. A 16-bit operand on either side makes it a
// 16-bit load.
//
//	LD dst, src
//
// Flags affected (LD HL, SP+r8 only):
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) load(dst, src Operand, pc uint16) {
	if dst.wide() || src.wide() {
		c.write16(dst, c.read16(src, pc), pc)
		return
	}
	c.write8(dst, c.read8(src, pc), pc)
}

// read8 returns the 8-bit value selected by o for the instruction at
// pc. (HL+) and (HL-) adjust HL after the read.
func (c *CPU) read8(o Operand, pc uint16) uint8 {
	switch o {
	case A:
		return c.A
	case B:
		return c.B
	case C:
		return c.C
	case D:
		return c.D
	case E:
		return c.E
	case H:
		return c.H
	case L:
		return c.L
	case IndirectHL:
		return c.readByte(c.HL())
	case IndirectBC:
		return c.readByte(c.BC())
	case IndirectDE:
		return c.readByte(c.DE())
	case IndirectHLInc:
		hl := c.HL()
		c.SetHL(hl + 1)
		return c.readByte(hl)
	case IndirectHLDec:
		hl := c.HL()
		c.SetHL(hl - 1)
		return c.readByte(hl)
	case Imm8, SignedImm8:
		return c.readByte(pc + 1)
	case Direct16:
		return c.readByte(c.readWord(pc + 1))
	case HighImm8:
		return c.readByte(0xFF00 | uint16(c.readByte(pc+1)))
	case HighC:
		return c.readByte(0xFF00 | uint16(c.C))
	}
	panic(fmt.Sprintf("cpu: %v is not an 8-bit source", o))
}

// write8 stores value in the 8-bit destination selected by o for the
// instruction at pc. (HL+) and (HL-) adjust HL after the write.
func (c *CPU) write8(o Operand, value uint8, pc uint16) {
	switch o {
	case A:
		c.A = value
	case B:
		c.B = value
	case C:
		c.C = value
	case D:
		c.D = value
	case E:
		c.E = value
	case H:
		c.H = value
	case L:
		c.L = value
	case IndirectHL:
		c.writeByte(c.HL(), value)
	case IndirectBC:
		c.writeByte(c.BC(), value)
	case IndirectDE:
		c.writeByte(c.DE(), value)
	case IndirectHLInc:
		hl := c.HL()
		c.writeByte(hl, value)
		c.SetHL(hl + 1)
	case IndirectHLDec:
		hl := c.HL()
		c.writeByte(hl, value)
		c.SetHL(hl - 1)
	case Direct16:
		c.writeByte(c.readWord(pc+1), value)
	case HighImm8:
		c.writeByte(0xFF00|uint16(c.readByte(pc+1)), value)
	case HighC:
		c.writeByte(0xFF00|uint16(c.C), value)
	default:
		panic(fmt.Sprintf("cpu: %v is not an 8-bit destination", o))
	}
}

// read16 returns the 16-bit value selected by o for the instruction at
// pc. SP+r8 sets the flags as described on addSPSigned.
func (c *CPU) read16(o Operand, pc uint16) uint16 {
	switch o {
	case BC:
		return c.BC()
	case DE:
		return c.DE()
	case HL:
		return c.HL()
	case SP:
		return c.SP
	case AF:
		return c.AF()
	case Imm16:
		return c.readWord(pc + 1)
	case SPOffset:
		return c.addSPSigned(c.readByte(pc + 1))
	}
	panic(fmt.Sprintf("cpu: %v is not a 16-bit source", o))
}

// write16 stores value in the 16-bit destination selected by o. (a16)
// stores the low byte first.
func (c *CPU) write16(o Operand, value uint16, pc uint16) {
	switch o {
	case BC:
		c.SetBC(value)
	case DE:
		c.SetDE(value)
	case HL:
		c.SetHL(value)
	case SP:
		c.SP = value
	case AF:
		c.SetAF(value)
	case Direct16:
		address := c.readWord(pc + 1)
		c.writeByte(address, uint8(value))
		c.writeByte(address+1, uint8(value>>8))
	default:
		panic(fmt.Sprintf("cpu: %v is not a 16-bit destination", o))
	}
}
