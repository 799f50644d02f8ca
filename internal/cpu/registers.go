package cpu

// Register represents an 8-bit CPU register.
type Register = uint8

// Registers is the register file of the CPU: the seven 8-bit general
// registers, the flags, the stack pointer and the program counter.
//
// The 16-bit pairs BC, DE, HL and AF are views over two 8-bit fields,
// not separate storage. Both halves of a pair are written by a single
// setter call.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	H Register
	L Register

	// F holds the condition flags.
	F Flags

	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
}

// BC returns the value of the BC register pair.
func (r *Registers) BC() uint16 {
	return uint16(r.B)<<8 | uint16(r.C)
}

// SetBC sets B to the high byte and C to the low byte of value.
func (r *Registers) SetBC(value uint16) {
	r.B, r.C = uint8(value>>8), uint8(value)
}

// DE returns the value of the DE register pair.
func (r *Registers) DE() uint16 {
	return uint16(r.D)<<8 | uint16(r.E)
}

// SetDE sets D to the high byte and E to the low byte of value.
func (r *Registers) SetDE(value uint16) {
	r.D, r.E = uint8(value>>8), uint8(value)
}

// HL returns the value of the HL register pair.
func (r *Registers) HL() uint16 {
	return uint16(r.H)<<8 | uint16(r.L)
}

// SetHL sets H to the high byte and L to the low byte of value.
func (r *Registers) SetHL(value uint16) {
	r.H, r.L = uint8(value>>8), uint8(value)
}

// AF returns the value of the AF register pair, with the flags
// packed into the low byte.
func (r *Registers) AF() uint16 {
	return uint16(r.A)<<8 | uint16(r.F.Byte())
}

// SetAF sets A to the high byte of value and unpacks the flags from the
// low byte. The low nibble of the flags byte is not stored.
func (r *Registers) SetAF(value uint16) {
	r.A, r.F = uint8(value>>8), FlagsFromByte(uint8(value))
}

// PostBoot sets the registers to the values the DMG boot ROM leaves
// behind when it hands control to the cartridge at 0x0100.
func (r *Registers) PostBoot() {
	*r = Registers{
		A:  0x01,
		B:  0x00,
		C:  0x13,
		D:  0x00,
		E:  0xD8,
		H:  0x01,
		L:  0x4D,
		F:  FlagsFromByte(0xB0),
		SP: 0xFFFE,
		PC: 0x0100,
	}
}
