package cpu

// condition evaluates a jump condition against the current flags.
//
//	NZ - Z flag reset.
//	Z  - Z flag set.
//	NC - C flag reset.
//	C  - C flag set.
func (c *CPU) condition(cc Condition) bool {
	switch cc {
	case NotZero:
		return !c.F.Zero
	case Zero:
		return c.F.Zero
	case NotCarry:
		return !c.F.Carry
	case Carry:
		return c.F.Carry
	}
	return true
}

// pushStack pushes a 16 bit value onto the stack, high byte first.
func (c *CPU) pushStack(value uint16) {
	c.SP--
	c.writeByte(c.SP, uint8(value>>8))
	c.SP--
	c.writeByte(c.SP, uint8(value))
}

// popStack pops a 16 bit value off the stack.
func (c *CPU) popStack() uint16 {
	lower := uint16(c.readByte(c.SP))
	c.SP++
	upper := uint16(c.readByte(c.SP))
	c.SP++
	return upper<<8 | lower
}

// jumpRelative returns the address e bytes away from next, the address
// of the instruction following the JR.
//
//	JR e
//	e = 8-bit signed immediate value
func (c *CPU) jumpRelative(next uint16, e uint8) uint16 {
	return uint16(int32(next) + int32(int8(e)))
}
