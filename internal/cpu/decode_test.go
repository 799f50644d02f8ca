package cpu

import (
	"fmt"
	"testing"
)

func TestDecode_Totality(t *testing.T) {
	illegal := make(map[uint8]bool)
	for _, opcode := range disallowedOpcodes {
		illegal[opcode] = true
	}

	defined := 0
	for i := 0; i < 256; i++ {
		opcode := uint8(i)

		instruction, ok := Decode(opcode, false)
		if ok != (instruction.Op != Unimplemented) {
			t.Errorf("0x%02X: ok is %v for %v", opcode, ok, instruction)
		}
		if ok == illegal[opcode] {
			t.Errorf("0x%02X: expected defined to be %v", opcode, !illegal[opcode])
		}
		if ok {
			defined++
			if instruction.Prefixed() {
				t.Errorf("0x%02X: %v decoded from the plain table", opcode, instruction)
			}
		}

		instruction, ok = Decode(opcode, true)
		if !ok {
			t.Errorf("CB 0x%02X: expected an instruction", opcode)
		}
		if !instruction.Prefixed() {
			t.Errorf("CB 0x%02X: %v decoded from the CB table", opcode, instruction)
		}
	}
	if defined != 244 {
		t.Errorf("expected 244 plain opcodes, got %d", defined)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		opcode      uint8
		prefixed    bool
		instruction Instruction
	}{
		{0x00, false, Instruction{Op: NOP}},
		{0x01, false, Instruction{Op: LD, Dst: BC, Src: Imm16}},
		{0x02, false, Instruction{Op: LD, Dst: IndirectBC, Src: A}},
		{0x08, false, Instruction{Op: LD, Dst: Direct16, Src: SP}},
		{0x10, false, Instruction{Op: STOP}},
		{0x20, false, Instruction{Op: JR, Cond: NotZero, Src: SignedImm8}},
		{0x22, false, Instruction{Op: LD, Dst: IndirectHLInc, Src: A}},
		{0x27, false, Instruction{Op: DAA}},
		{0x36, false, Instruction{Op: LD, Dst: IndirectHL, Src: Imm8}},
		{0x38, false, Instruction{Op: JR, Cond: Carry, Src: SignedImm8}},
		{0x3A, false, Instruction{Op: LD, Dst: A, Src: IndirectHLDec}},
		{0x41, false, Instruction{Op: LD, Dst: B, Src: C}},
		{0x76, false, Instruction{Op: HALT}},
		{0x81, false, Instruction{Op: ADD, Dst: A, Src: C}},
		{0xBE, false, Instruction{Op: CP, Dst: A, Src: IndirectHL}},
		{0xC2, false, Instruction{Op: JP, Cond: NotZero, Src: Imm16}},
		{0xCA, false, Instruction{Op: JP, Cond: Zero, Src: Imm16}},
		{0xD2, false, Instruction{Op: JP, Cond: NotCarry, Src: Imm16}},
		{0xDA, false, Instruction{Op: JP, Cond: Carry, Src: Imm16}},
		{0xE0, false, Instruction{Op: LD, Dst: HighImm8, Src: A}},
		{0xE8, false, Instruction{Op: ADD, Dst: SP, Src: SignedImm8}},
		{0xE9, false, Instruction{Op: JP, Src: HL}},
		{0xF1, false, Instruction{Op: POP, Dst: AF}},
		{0xF8, false, Instruction{Op: LD, Dst: HL, Src: SPOffset}},
		{0xFE, false, Instruction{Op: CP, Dst: A, Src: Imm8}},
		{0xFF, false, Instruction{Op: RST, Vector: 0x38}},
		{0x00, true, Instruction{Op: RLC, Dst: B}},
		{0x37, true, Instruction{Op: SWAP, Dst: A}},
		{0x3E, true, Instruction{Op: SRL, Dst: IndirectHL}},
		{0x7C, true, Instruction{Op: BIT, Bit: 7, Dst: H}},
		{0x86, true, Instruction{Op: RES, Bit: 0, Dst: IndirectHL}},
		{0xFF, true, Instruction{Op: SET, Bit: 7, Dst: A}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%02X/%v", tt.opcode, tt.prefixed), func(t *testing.T) {
			instruction, ok := Decode(tt.opcode, tt.prefixed)
			if !ok {
				t.Fatal("expected an instruction")
			}
			if instruction != tt.instruction {
				t.Errorf("expected %+v, got %+v", tt.instruction, instruction)
			}
		})
	}
}

func TestInstruction_Length(t *testing.T) {
	for i := 0; i < 256; i++ {
		if instruction, ok := Decode(uint8(i), false); ok {
			if l := instruction.Length(); l < 1 || l > 3 {
				t.Errorf("0x%02X: length %d out of range", i, l)
			}
		}
		if instruction, _ := Decode(uint8(i), true); instruction.Length() != 2 {
			t.Errorf("CB 0x%02X: expected length 2, got %d", i, instruction.Length())
		}
	}

	tests := map[uint8]uint16{
		0x00: 1, // NOP
		0x01: 3, // LD BC, d16
		0x06: 2, // LD B, d8
		0x08: 3, // LD (a16), SP
		0x10: 2, // STOP
		0x18: 2, // JR r8
		0xC3: 3, // JP a16
		0xE0: 2, // LDH (a8), A
		0xE2: 1, // LD (C), A
		0xE9: 1, // JP HL
		0xEA: 3, // LD (a16), A
		0xF8: 2, // LD HL, SP+r8
		0xF9: 1, // LD SP, HL
	}
	for opcode, want := range tests {
		instruction, _ := Decode(opcode, false)
		if got := instruction.Length(); got != want {
			t.Errorf("%v: expected length %d, got %d", instruction, want, got)
		}
	}
}

func TestInstruction_String(t *testing.T) {
	tests := []struct {
		opcode   uint8
		prefixed bool
		want     string
	}{
		{0x00, false, "NOP"},
		{0x01, false, "LD BC, d16"},
		{0x20, false, "JR NZ, r8"},
		{0x2A, false, "LD A, (HL+)"},
		{0xC0, false, "RET NZ"},
		{0xC2, false, "JP NZ, a16"},
		{0xC9, false, "RET"},
		{0xCD, false, "CALL a16"},
		{0xE0, false, "LDH (a8), A"},
		{0xE2, false, "LD (C), A"},
		{0xE9, false, "JP HL"},
		{0xF8, false, "LD HL, SP+r8"},
		{0xFF, false, "RST 38H"},
		{0xD3, false, "UNIMPLEMENTED"},
		{0x7C, true, "BIT 7, H"},
		{0x86, true, "RES 0, (HL)"},
		{0x11, true, "RL C"},
	}
	for _, tt := range tests {
		instruction, _ := Decode(tt.opcode, tt.prefixed)
		if got := instruction.String(); got != tt.want {
			t.Errorf("%02X: expected %q, got %q", tt.opcode, tt.want, got)
		}
	}
}
