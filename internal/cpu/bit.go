package cpu

import "github.com/kaioluanro/emulador-gba/pkg/bits"

// testBit tests the bit at the given position in value.
//
//	BIT n, r
//	n = 0-7
//	r = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if bit n of r is 0.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func (c *CPU) testBit(value uint8, position uint8) {
	c.setFlags(!bits.Test(value, position), false, true, c.F.Carry)
}

// resetBit returns value with the bit at the given position cleared.
//
//	RES n, r
//	n = 0-7
//	r = B, C, D, E, H, L, (HL), A
//
// Flags affected: None.
func (c *CPU) resetBit(value uint8, position uint8) uint8 {
	return bits.Reset(value, position)
}

// setBit returns value with the bit at the given position set.
//
//	SET n, r
//	n = 0-7
//	r = B, C, D, E, H, L, (HL), A
//
// Flags affected: None.
func (c *CPU) setBit(value uint8, position uint8) uint8 {
	return bits.Set(value, position)
}
