package cpu

// PrefixCB is the opcode that selects the CB instruction table for the
// byte that follows it.
const PrefixCB = 0xCB

var (
	// InstructionSet maps plain opcodes to instructions.
	InstructionSet [256]Instruction
	// InstructionSetCB maps the byte after a 0xCB prefix to instructions.
	InstructionSetCB [256]Instruction
)

// Decode returns the instruction for the given opcode, looked up in the
// CB table when prefixed is set and in the plain table otherwise. ok is
// false when the table has no instruction for the opcode.
func Decode(opcode uint8, prefixed bool) (instruction Instruction, ok bool) {
	if prefixed {
		instruction = InstructionSetCB[opcode]
	} else {
		instruction = InstructionSet[opcode]
	}
	return instruction, instruction.Op != Unimplemented
}

// DefineInstruction defines the instruction for opcode in the
// InstructionSet.
func DefineInstruction(opcode uint8, instruction Instruction) {
	InstructionSet[opcode] = instruction
}

// DefineInstructionCB defines the instruction for opcode in the
// InstructionSetCB.
func DefineInstructionCB(opcode uint8, instruction Instruction) {
	InstructionSetCB[opcode] = instruction
}

// Operand tables indexed by the register fields of an opcode.
//
//	xx yyy zzz
//	   ^^^ ^^^
//	   dst src
var (
	registerOperands = [8]Operand{B, C, D, E, H, L, IndirectHL, A}
	pairOperands     = [4]Operand{BC, DE, HL, SP}
	stackOperands    = [4]Operand{BC, DE, HL, AF}
	indirectOperands = [4]Operand{IndirectBC, IndirectDE, IndirectHLInc, IndirectHLDec}
	conditions       = [4]Condition{NotZero, Zero, NotCarry, Carry}
	aluOps           = [8]Op{ADD, ADC, SUB, SBC, AND, XOR, OR, CP}
	accumulatorOps   = [8]Op{RLCA, RRCA, RLA, RRA, DAA, CPL, SCF, CCF}
	rotateOps        = [8]Op{RLC, RRC, RL, RR, SLA, SRA, SWAP, SRL}
)

// disallowedOpcodes have no instruction on the SM83. 0xCB is the prefix
// and never reaches the plain table.
var disallowedOpcodes = []uint8{
	0xCB, 0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}

func init() {
	generateInstructions()
	generateInstructionsCB()

	for _, opcode := range disallowedOpcodes {
		DefineInstruction(opcode, Instruction{Op: Unimplemented})
	}
}

// generateInstructions fills the plain table.
func generateInstructions() {
	// 0x00 - 0x3F
	DefineInstruction(0x00, Instruction{Op: NOP})
	DefineInstruction(0x08, Instruction{Op: LD, Dst: Direct16, Src: SP})
	DefineInstruction(0x10, Instruction{Op: STOP})
	DefineInstruction(0x18, Instruction{Op: JR, Src: SignedImm8})
	for i, cc := range conditions {
		DefineInstruction(0x20+uint8(i)<<3, Instruction{Op: JR, Cond: cc, Src: SignedImm8})
	}
	for p, rr := range pairOperands {
		base := uint8(p) << 4
		DefineInstruction(base|0x01, Instruction{Op: LD, Dst: rr, Src: Imm16})
		DefineInstruction(base|0x02, Instruction{Op: LD, Dst: indirectOperands[p], Src: A})
		DefineInstruction(base|0x03, Instruction{Op: INC, Dst: rr})
		DefineInstruction(base|0x09, Instruction{Op: ADD, Dst: HL, Src: rr})
		DefineInstruction(base|0x0A, Instruction{Op: LD, Dst: A, Src: indirectOperands[p]})
		DefineInstruction(base|0x0B, Instruction{Op: DEC, Dst: rr})
	}
	for y, r := range registerOperands {
		base := uint8(y) << 3
		DefineInstruction(base|0x04, Instruction{Op: INC, Dst: r})
		DefineInstruction(base|0x05, Instruction{Op: DEC, Dst: r})
		DefineInstruction(base|0x06, Instruction{Op: LD, Dst: r, Src: Imm8})
		DefineInstruction(base|0x07, Instruction{Op: accumulatorOps[y]})
	}

	// 0x40 - 0x7F
	for y, dst := range registerOperands {
		for z, src := range registerOperands {
			DefineInstruction(0x40|uint8(y)<<3|uint8(z), Instruction{Op: LD, Dst: dst, Src: src})
		}
	}
	DefineInstruction(0x76, Instruction{Op: HALT}) // would be LD (HL), (HL)

	// 0x80 - 0xBF
	for y, op := range aluOps {
		for z, src := range registerOperands {
			DefineInstruction(0x80|uint8(y)<<3|uint8(z), Instruction{Op: op, Dst: A, Src: src})
		}
		DefineInstruction(0xC6|uint8(y)<<3, Instruction{Op: op, Dst: A, Src: Imm8})
	}

	// 0xC0 - 0xFF
	for i, cc := range conditions {
		base := 0xC0 | uint8(i)<<3
		DefineInstruction(base|0x00, Instruction{Op: RET, Cond: cc})
		DefineInstruction(base|0x02, Instruction{Op: JP, Cond: cc, Src: Imm16})
		DefineInstruction(base|0x04, Instruction{Op: CALL, Cond: cc, Src: Imm16})
	}
	for p, rr := range stackOperands {
		base := 0xC0 | uint8(p)<<4
		DefineInstruction(base|0x01, Instruction{Op: POP, Dst: rr})
		DefineInstruction(base|0x05, Instruction{Op: PUSH, Src: rr})
	}
	for y := uint8(0); y < 8; y++ {
		DefineInstruction(0xC7|y<<3, Instruction{Op: RST, Vector: y * 8})
	}
	DefineInstruction(0xC3, Instruction{Op: JP, Src: Imm16})
	DefineInstruction(0xC9, Instruction{Op: RET})
	DefineInstruction(0xCD, Instruction{Op: CALL, Src: Imm16})
	DefineInstruction(0xD9, Instruction{Op: RETI})
	DefineInstruction(0xE0, Instruction{Op: LD, Dst: HighImm8, Src: A})
	DefineInstruction(0xE2, Instruction{Op: LD, Dst: HighC, Src: A})
	DefineInstruction(0xE8, Instruction{Op: ADD, Dst: SP, Src: SignedImm8})
	DefineInstruction(0xE9, Instruction{Op: JP, Src: HL})
	DefineInstruction(0xEA, Instruction{Op: LD, Dst: Direct16, Src: A})
	DefineInstruction(0xF0, Instruction{Op: LD, Dst: A, Src: HighImm8})
	DefineInstruction(0xF2, Instruction{Op: LD, Dst: A, Src: HighC})
	DefineInstruction(0xF3, Instruction{Op: DI})
	DefineInstruction(0xF8, Instruction{Op: LD, Dst: HL, Src: SPOffset})
	DefineInstruction(0xF9, Instruction{Op: LD, Dst: SP, Src: HL})
	DefineInstruction(0xFA, Instruction{Op: LD, Dst: A, Src: Direct16})
	DefineInstruction(0xFB, Instruction{Op: EI})
}

// generateInstructionsCB fills the CB table. Every one of the 256
// entries is defined.
//
//	00 000 000
//	^^ ^^^ ^^^
//	op bit dst
func generateInstructionsCB() {
	for z, r := range registerOperands {
		for y := uint8(0); y < 8; y++ {
			DefineInstructionCB(0x00|y<<3|uint8(z), Instruction{Op: rotateOps[y], Dst: r})
			DefineInstructionCB(0x40|y<<3|uint8(z), Instruction{Op: BIT, Bit: y, Dst: r})
			DefineInstructionCB(0x80|y<<3|uint8(z), Instruction{Op: RES, Bit: y, Dst: r})
			DefineInstructionCB(0xC0|y<<3|uint8(z), Instruction{Op: SET, Bit: y, Dst: r})
		}
	}
}
