package cpu

import "testing"

func TestInstruction_RotateAccumulator(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint8
		a      uint8
		carry  bool
		want   uint8
		flags  Flags
	}{
		{"RLCA", 0x07, 0x85, false, 0x0B, Flags{Carry: true}},
		{"RLCA zero", 0x07, 0x00, false, 0x00, Flags{}},
		{"RLA", 0x17, 0x95, true, 0x2B, Flags{Carry: true}},
		{"RLA zero", 0x17, 0x80, false, 0x00, Flags{Carry: true}},
		{"RRCA", 0x0F, 0x3B, false, 0x9D, Flags{Carry: true}},
		{"RRA", 0x1F, 0x81, false, 0x40, Flags{Carry: true}},
		{"RRA carry in", 0x1F, 0x00, true, 0x80, Flags{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCPU(t)
			c.A = tt.a
			c.F = Flags{Subtract: true, HalfCarry: true, Carry: tt.carry}
			step(t, c, tt.opcode)
			if c.A != tt.want {
				t.Errorf("expected A to be 0x%02X, got 0x%02X", tt.want, c.A)
			}
			expectFlags(t, c, tt.flags)
		})
	}
}

func TestInstruction_RotateCB(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint8
		value  uint8
		carry  bool
		want   uint8
		flags  Flags
	}{
		{"RLC", 0x00, 0x80, false, 0x01, Flags{Carry: true}},
		{"RLC zero", 0x00, 0x00, true, 0x00, Flags{Zero: true}},
		{"RRC", 0x08, 0x01, false, 0x80, Flags{Carry: true}},
		{"RL", 0x10, 0x80, false, 0x00, Flags{Zero: true, Carry: true}},
		{"RL carry in", 0x10, 0x11, true, 0x23, Flags{}},
		{"RR", 0x18, 0x01, false, 0x00, Flags{Zero: true, Carry: true}},
		{"RR carry in", 0x18, 0x8A, true, 0xC5, Flags{}},
		{"SLA", 0x20, 0x80, false, 0x00, Flags{Zero: true, Carry: true}},
		{"SLA keeps bit 0 clear", 0x20, 0xFF, true, 0xFE, Flags{Carry: true}},
		{"SRA", 0x28, 0x8A, false, 0xC5, Flags{}},
		{"SRA zero", 0x28, 0x01, false, 0x00, Flags{Zero: true, Carry: true}},
		{"SWAP", 0x30, 0xF1, true, 0x1F, Flags{}},
		{"SWAP zero", 0x30, 0x00, true, 0x00, Flags{Zero: true}},
		{"SRL", 0x38, 0xFF, false, 0x7F, Flags{Carry: true}},
		{"SRL zero", 0x38, 0x01, false, 0x00, Flags{Zero: true, Carry: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// register B
			c := newTestCPU(t)
			c.B = tt.value
			c.F = Flags{Subtract: true, HalfCarry: true, Carry: tt.carry}
			step(t, c, PrefixCB, tt.opcode)
			if c.B != tt.want {
				t.Errorf("expected B to be 0x%02X, got 0x%02X", tt.want, c.B)
			}
			expectFlags(t, c, tt.flags)

			// (HL)
			c = newTestCPU(t)
			c.SetHL(0xC000)
			c.bus.Write(0xC000, tt.value)
			c.F = Flags{Carry: tt.carry}
			step(t, c, PrefixCB, tt.opcode|0x06)
			if got := c.bus.Read(0xC000); got != tt.want {
				t.Errorf("expected (HL) to be 0x%02X, got 0x%02X", tt.want, got)
			}
			expectFlags(t, c, tt.flags)
		})
	}
}
