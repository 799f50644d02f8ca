package cpu

import "testing"

func TestInstruction_Add(t *testing.T) {
	tests := []struct {
		name  string
		a, n  uint8
		want  uint8
		flags Flags
	}{
		{"zero with carries", 0x3A, 0xC6, 0x00, Flags{Zero: true, HalfCarry: true, Carry: true}},
		{"half carry", 0x0F, 0x01, 0x10, Flags{HalfCarry: true}},
		{"carry", 0xF0, 0x20, 0x10, Flags{Carry: true}},
		{"no flags", 0x01, 0x01, 0x02, Flags{}},
		{"overflow without half carry", 0x80, 0x80, 0x00, Flags{Zero: true, Carry: true}},
	}
	for _, tt := range tests {
		// 0x81 - ADD A, C
		testInstruction(t, "ADD A, C "+tt.name, 0x81, func(t *testing.T, c *CPU, instruction Instruction) {
			c.A, c.C = tt.a, tt.n
			c.F.Subtract = true

			if next := c.Execute(instruction); next != 0x0001 {
				t.Errorf("expected next PC to be 0x0001, got 0x%04X", next)
			}
			if c.A != tt.want {
				t.Errorf("expected A to be 0x%02X, got 0x%02X", tt.want, c.A)
			}
			if c.C != tt.n {
				t.Errorf("expected C to be unchanged, got 0x%02X", c.C)
			}
			expectFlags(t, c, tt.flags)
		})
	}
}

func TestInstruction_AddWithCarry(t *testing.T) {
	c := newTestCPU(t)
	c.A = 0xE1
	c.F.Carry = true
	step(t, c, 0xCE, 0x0F) // ADC A, d8
	if c.A != 0xF1 {
		t.Errorf("expected A to be 0xF1, got 0x%02X", c.A)
	}
	expectFlags(t, c, Flags{HalfCarry: true})

	c = newTestCPU(t)
	c.A = 0xE1
	c.F.Carry = true
	step(t, c, 0xCE, 0x1E)
	if c.A != 0x00 {
		t.Errorf("expected A to be 0x00, got 0x%02X", c.A)
	}
	expectFlags(t, c, Flags{Zero: true, HalfCarry: true, Carry: true})
}

func TestInstruction_Sub(t *testing.T) {
	tests := []struct {
		name  string
		a, n  uint8
		want  uint8
		flags Flags
	}{
		{"equal", 0x3E, 0x3E, 0x00, Flags{Zero: true, Subtract: true}},
		{"half borrow", 0x3E, 0x0F, 0x2F, Flags{Subtract: true, HalfCarry: true}},
		{"borrow", 0x3E, 0x40, 0xFE, Flags{Subtract: true, Carry: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCPU(t)
			c.A, c.B = tt.a, tt.n
			step(t, c, 0x90) // SUB B
			if c.A != tt.want {
				t.Errorf("expected A to be 0x%02X, got 0x%02X", tt.want, c.A)
			}
			expectFlags(t, c, tt.flags)
		})
	}
}

func TestInstruction_SubWithCarry(t *testing.T) {
	c := newTestCPU(t)
	c.A, c.H = 0x3B, 0x2A
	c.F.Carry = true
	step(t, c, 0x9C) // SBC A, H
	if c.A != 0x10 {
		t.Errorf("expected A to be 0x10, got 0x%02X", c.A)
	}
	expectFlags(t, c, Flags{Subtract: true})

	c = newTestCPU(t)
	c.A, c.H = 0x3B, 0x4F
	c.F.Carry = true
	step(t, c, 0x9C)
	if c.A != 0xEB {
		t.Errorf("expected A to be 0xEB, got 0x%02X", c.A)
	}
	expectFlags(t, c, Flags{Subtract: true, HalfCarry: true, Carry: true})
}

func TestInstruction_Logic(t *testing.T) {
	tests := []struct {
		name    string
		program []uint8
		a       uint8
		want    uint8
		flags   Flags
	}{
		{"AND d8", []uint8{0xE6, 0x38}, 0x5A, 0x18, Flags{HalfCarry: true}},
		{"AND d8 zero", []uint8{0xE6, 0x00}, 0x5A, 0x00, Flags{Zero: true, HalfCarry: true}},
		{"OR d8", []uint8{0xF6, 0x03}, 0x5A, 0x5B, Flags{}},
		{"OR A zero", []uint8{0xB7}, 0x00, 0x00, Flags{Zero: true}},
		{"XOR A", []uint8{0xAF}, 0xFF, 0x00, Flags{Zero: true}},
		{"XOR d8", []uint8{0xEE, 0x0F}, 0xFF, 0xF0, Flags{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCPU(t)
			c.A = tt.a
			c.F = Flags{Subtract: true, Carry: true}
			step(t, c, tt.program...)
			if c.A != tt.want {
				t.Errorf("expected A to be 0x%02X, got 0x%02X", tt.want, c.A)
			}
			expectFlags(t, c, tt.flags)
		})
	}
}

func TestInstruction_Compare(t *testing.T) {
	tests := []struct {
		n     uint8
		flags Flags
	}{
		{0x2F, Flags{Subtract: true, HalfCarry: true}},
		{0x3C, Flags{Zero: true, Subtract: true}},
		{0x40, Flags{Subtract: true, Carry: true}},
	}
	for _, tt := range tests {
		c := newTestCPU(t)
		c.A = 0x3C
		step(t, c, 0xFE, tt.n) // CP d8
		if c.A != 0x3C {
			t.Errorf("expected A to be unchanged, got 0x%02X", c.A)
		}
		expectFlags(t, c, tt.flags)
	}
}

func TestInstruction_IncDec(t *testing.T) {
	t.Run("INC B", func(t *testing.T) {
		c := newTestCPU(t)
		c.B = 0xFF
		c.F.Carry = true
		step(t, c, 0x04)
		if c.B != 0x00 {
			t.Errorf("expected B to be 0x00, got 0x%02X", c.B)
		}
		expectFlags(t, c, Flags{Zero: true, HalfCarry: true, Carry: true})

		step(t, c, 0x04)
		expectFlags(t, c, Flags{Carry: true})
	})
	t.Run("DEC (HL)", func(t *testing.T) {
		c := newTestCPU(t)
		c.SetHL(0xC000)
		c.bus.Write(0xC000, 0x01)
		step(t, c, 0x35)
		if c.bus.Read(0xC000) != 0x00 {
			t.Errorf("expected (HL) to be 0x00, got 0x%02X", c.bus.Read(0xC000))
		}
		expectFlags(t, c, Flags{Zero: true, Subtract: true})

		step(t, c, 0x35)
		if c.bus.Read(0xC000) != 0xFF {
			t.Errorf("expected (HL) to be 0xFF, got 0x%02X", c.bus.Read(0xC000))
		}
		expectFlags(t, c, Flags{Subtract: true, HalfCarry: true})
	})
	t.Run("INC BC", func(t *testing.T) {
		c := newTestCPU(t)
		c.SetBC(0xFFFF)
		c.F = Flags{true, true, true, true}
		step(t, c, 0x03)
		if c.BC() != 0x0000 {
			t.Errorf("expected BC to be 0x0000, got 0x%04X", c.BC())
		}
		expectFlags(t, c, Flags{true, true, true, true})
	})
	t.Run("DEC SP", func(t *testing.T) {
		c := newTestCPU(t)
		step(t, c, 0x3B)
		if c.SP != 0xFFFF {
			t.Errorf("expected SP to be 0xFFFF, got 0x%04X", c.SP)
		}
	})
}

func TestInstruction_AddHL(t *testing.T) {
	c := newTestCPU(t)
	c.SetHL(0x8A23)
	c.SetBC(0x0605)
	c.F = Flags{Zero: true, Subtract: true}
	step(t, c, 0x09) // ADD HL, BC
	if c.HL() != 0x9028 {
		t.Errorf("expected HL to be 0x9028, got 0x%04X", c.HL())
	}
	expectFlags(t, c, Flags{Zero: true, HalfCarry: true})

	c = newTestCPU(t)
	c.SetHL(0x8A23)
	step(t, c, 0x29) // ADD HL, HL
	if c.HL() != 0x1446 {
		t.Errorf("expected HL to be 0x1446, got 0x%04X", c.HL())
	}
	expectFlags(t, c, Flags{HalfCarry: true, Carry: true})
}

func TestInstruction_AddSP(t *testing.T) {
	tests := []struct {
		sp     uint16
		offset uint8
		want   uint16
		flags  Flags
	}{
		{0xFFF8, 0x02, 0xFFFA, Flags{}},
		{0xFFF8, 0x08, 0x0000, Flags{HalfCarry: true, Carry: true}},
		{0x0005, 0xFE, 0x0003, Flags{HalfCarry: true, Carry: true}},
		{0x1000, 0x80, 0x0F80, Flags{}},
	}
	for _, tt := range tests {
		c := newTestCPU(t)
		c.SP = tt.sp
		c.F = Flags{Zero: true, Subtract: true}
		step(t, c, 0xE8, tt.offset) // ADD SP, r8
		if c.SP != tt.want {
			t.Errorf("expected SP to be 0x%04X, got 0x%04X", tt.want, c.SP)
		}
		expectFlags(t, c, tt.flags)

		c = newTestCPU(t)
		c.SP = tt.sp
		step(t, c, 0xF8, tt.offset) // LD HL, SP+r8
		if c.HL() != tt.want || c.SP != tt.sp {
			t.Errorf("expected HL 0x%04X and SP 0x%04X, got 0x%04X and 0x%04X", tt.want, tt.sp, c.HL(), c.SP)
		}
		expectFlags(t, c, tt.flags)
	}
}

func TestInstruction_DecimalAdjust(t *testing.T) {
	c := newTestCPU(t)
	c.A, c.B = 0x45, 0x38
	step(t, c, 0x80) // ADD A, B
	step(t, c, 0x27) // DAA
	if c.A != 0x83 {
		t.Errorf("expected A to be 0x83, got 0x%02X", c.A)
	}
	expectFlags(t, c, Flags{})

	step(t, c, 0x90) // SUB B
	step(t, c, 0x27)
	if c.A != 0x45 {
		t.Errorf("expected A to be 0x45, got 0x%02X", c.A)
	}
	expectFlags(t, c, Flags{Subtract: true})

	c = newTestCPU(t)
	c.A, c.B = 0x99, 0x01
	step(t, c, 0x80)
	step(t, c, 0x27)
	if c.A != 0x00 {
		t.Errorf("expected A to be 0x00, got 0x%02X", c.A)
	}
	expectFlags(t, c, Flags{Zero: true, Carry: true})
}

func TestInstruction_Accumulator(t *testing.T) {
	c := newTestCPU(t)
	c.A = 0x35
	c.F = Flags{Zero: true, Carry: true}
	step(t, c, 0x2F) // CPL
	if c.A != 0xCA {
		t.Errorf("expected A to be 0xCA, got 0x%02X", c.A)
	}
	expectFlags(t, c, Flags{true, true, true, true})

	step(t, c, 0x3F) // CCF
	expectFlags(t, c, Flags{Zero: true})
	step(t, c, 0x37) // SCF
	expectFlags(t, c, Flags{Zero: true, Carry: true})
	step(t, c, 0x3F)
	expectFlags(t, c, Flags{Zero: true})
}
