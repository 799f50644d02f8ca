package cpu

import "github.com/kaioluanro/emulador-gba/pkg/bits"

// Flag is the bit position of a condition flag in the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// Flags is the semantic view of the F register. Only the upper nibble
// of F is architectural, bits 3-0 always read back as zero.
type Flags struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

// flagLayout maps each flag to its bit in the F register. Byte and
// FlagsFromByte are driven entirely by this table.
var flagLayout = [...]struct {
	bit   Flag
	field func(*Flags) *bool
}{
	{FlagZero, func(f *Flags) *bool { return &f.Zero }},
	{FlagSubtract, func(f *Flags) *bool { return &f.Subtract }},
	{FlagHalfCarry, func(f *Flags) *bool { return &f.HalfCarry }},
	{FlagCarry, func(f *Flags) *bool { return &f.Carry }},
}

// Byte packs the flags into their F register representation.
func (f Flags) Byte() uint8 {
	var b uint8
	for _, l := range flagLayout {
		if *l.field(&f) {
			b = bits.Set(b, l.bit)
		}
	}
	return b
}

// FlagsFromByte unpacks an F register value. The low nibble is ignored.
func FlagsFromByte(b uint8) Flags {
	var f Flags
	for _, l := range flagLayout {
		*l.field(&f) = bits.Test(b, l.bit)
	}
	return f
}

// String returns the flags in the ZNHC form used by debuggers, with a
// dash for each flag that is clear.
func (f Flags) String() string {
	s := []byte("----")
	for i, l := range flagLayout {
		if *l.field(&f) {
			s[i] = "ZNHC"[i]
		}
	}
	return string(s)
}

// setFlags sets all four flags at once.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	c.F = Flags{
		Zero:      zero,
		Subtract:  subtract,
		HalfCarry: halfCarry,
		Carry:     carry,
	}
}

// carryBit returns the carry flag as 0 or 1.
func (c *CPU) carryBit() uint8 {
	if c.F.Carry {
		return 1
	}
	return 0
}
