package cpu

import (
	"fmt"
	"strings"
)

// Op identifies the operation performed by an Instruction.
type Op uint8

const (
	// Unimplemented marks a decode table entry with no instruction. It is
	// the zero value, so an empty table slot is always this marker.
	Unimplemented Op = iota

	NOP
	STOP
	HALT
	DI
	EI

	LD
	PUSH
	POP

	ADD
	ADC
	SUB
	SBC
	AND
	XOR
	OR
	CP
	INC
	DEC

	DAA
	CPL
	SCF
	CCF
	RLCA
	RRCA
	RLA
	RRA

	JP
	JR
	CALL
	RET
	RETI
	RST

	// CB prefixed
	RLC
	RRC
	RL
	RR
	SLA
	SRA
	SWAP
	SRL
	BIT
	RES
	SET

	opCount
)

var opNames = [opCount]string{
	Unimplemented: "UNIMPLEMENTED",
	NOP:           "NOP",
	STOP:          "STOP",
	HALT:          "HALT",
	DI:            "DI",
	EI:            "EI",
	LD:            "LD",
	PUSH:          "PUSH",
	POP:           "POP",
	ADD:           "ADD",
	ADC:           "ADC",
	SUB:           "SUB",
	SBC:           "SBC",
	AND:           "AND",
	XOR:           "XOR",
	OR:            "OR",
	CP:            "CP",
	INC:           "INC",
	DEC:           "DEC",
	DAA:           "DAA",
	CPL:           "CPL",
	SCF:           "SCF",
	CCF:           "CCF",
	RLCA:          "RLCA",
	RRCA:          "RRCA",
	RLA:           "RLA",
	RRA:           "RRA",
	JP:            "JP",
	JR:            "JR",
	CALL:          "CALL",
	RET:           "RET",
	RETI:          "RETI",
	RST:           "RST",
	RLC:           "RLC",
	RRC:           "RRC",
	RL:            "RL",
	RR:            "RR",
	SLA:           "SLA",
	SRA:           "SRA",
	SWAP:          "SWAP",
	SRL:           "SRL",
	BIT:           "BIT",
	RES:           "RES",
	SET:           "SET",
}

func (o Op) String() string {
	if o < opCount {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

// Operand selects where an instruction reads or writes a value.
type Operand uint8

const (
	None Operand = iota

	// 8-bit registers
	A
	B
	C
	D
	E
	H
	L

	// 16-bit registers
	BC
	DE
	HL
	SP
	AF

	IndirectHL    // (HL)
	IndirectBC    // (BC)
	IndirectDE    // (DE)
	IndirectHLInc // (HL+), HL incremented after access
	IndirectHLDec // (HL-), HL decremented after access

	Imm8       // d8, unsigned byte following the opcode
	Imm16      // d16/a16, little-endian word following the opcode
	SignedImm8 // r8, signed byte following the opcode
	SPOffset   // SP+r8
	Direct16   // (a16), memory at the address following the opcode
	HighImm8   // (a8), memory at 0xFF00 + the byte following the opcode
	HighC      // (C), memory at 0xFF00 + C

	operandCount
)

var operandNames = [operandCount]string{
	A:             "A",
	B:             "B",
	C:             "C",
	D:             "D",
	E:             "E",
	H:             "H",
	L:             "L",
	BC:            "BC",
	DE:            "DE",
	HL:            "HL",
	SP:            "SP",
	AF:            "AF",
	IndirectHL:    "(HL)",
	IndirectBC:    "(BC)",
	IndirectDE:    "(DE)",
	IndirectHLInc: "(HL+)",
	IndirectHLDec: "(HL-)",
	Imm8:          "d8",
	Imm16:         "d16",
	SignedImm8:    "r8",
	SPOffset:      "SP+r8",
	Direct16:      "(a16)",
	HighImm8:      "(a8)",
	HighC:         "(C)",
}

func (o Operand) String() string {
	if o < operandCount {
		return operandNames[o]
	}
	return fmt.Sprintf("Operand(%d)", uint8(o))
}

// immediateSize returns the number of bytes the operand consumes from
// the instruction stream.
func (o Operand) immediateSize() uint16 {
	switch o {
	case Imm8, SignedImm8, SPOffset, HighImm8:
		return 1
	case Imm16, Direct16:
		return 2
	}
	return 0
}

// wide reports whether the operand is a 16-bit value.
func (o Operand) wide() bool {
	switch o {
	case BC, DE, HL, SP, AF, Imm16:
		return true
	}
	return false
}

// memory reports whether the operand is a memory access.
func (o Operand) memory() bool {
	switch o {
	case IndirectHL, IndirectBC, IndirectDE, IndirectHLInc, IndirectHLDec, Direct16, HighImm8, HighC:
		return true
	}
	return false
}

// Condition is the flag test of a conditional jump, call or return.
type Condition uint8

const (
	Always Condition = iota
	NotZero
	Zero
	NotCarry
	Carry
)

func (cc Condition) String() string {
	switch cc {
	case Always:
		return ""
	case NotZero:
		return "NZ"
	case Zero:
		return "Z"
	case NotCarry:
		return "NC"
	case Carry:
		return "C"
	}
	return fmt.Sprintf("Condition(%d)", uint8(cc))
}

// Instruction is a decoded instruction. It is a plain value: the
// operation, its operand selectors and nothing else, so it can be
// compared with == and built by hand in tests.
type Instruction struct {
	Op   Op
	Dst  Operand
	Src  Operand
	Cond Condition
	// Bit is the bit index of BIT, RES and SET.
	Bit uint8
	// Vector is the restart address of RST.
	Vector uint8
}

// Prefixed reports whether the instruction lives in the CB table.
func (i Instruction) Prefixed() bool {
	return i.Op >= RLC && i.Op <= SET
}

// Length returns the encoded size of the instruction in bytes,
// including the CB prefix for prefixed instructions.
func (i Instruction) Length() uint16 {
	switch {
	case i.Prefixed():
		return 2
	case i.Op == STOP:
		return 2
	}
	return 1 + i.Dst.immediateSize() + i.Src.immediateSize()
}

// Cycles returns the number of machine cycles the instruction takes.
// taken selects the cost of a conditional branch whose condition held;
// it is ignored for every other instruction.
func (i Instruction) Cycles(taken bool) uint8 {
	switch i.Op {
	case Unimplemented:
		return 0
	case STOP:
		return 1
	case JP:
		switch {
		case i.Src == HL:
			return 1
		case i.Cond == Always || taken:
			return 4
		}
		return 3
	case JR:
		if i.Cond == Always || taken {
			return 3
		}
		return 2
	case CALL:
		if i.Cond == Always || taken {
			return 6
		}
		return 3
	case RET:
		switch {
		case i.Cond == Always:
			return 4
		case taken:
			return 5
		}
		return 2
	case RETI, RST, PUSH:
		return 4
	case POP:
		return 3
	case BIT:
		if i.Dst == IndirectHL {
			return 3
		}
		return 2
	case INC, DEC:
		switch {
		case i.Dst == IndirectHL:
			return 3
		case i.Dst.wide():
			return 2
		}
		return 1
	case ADD:
		switch i.Dst {
		case HL:
			return 2
		case SP:
			return 4
		}
	case LD:
		switch {
		case i.Dst == Direct16 && i.Src == SP:
			return 5
		case i.Dst == SP && i.Src == HL:
			return 2
		case i.Src == SPOffset:
			return 3
		}
	}

	if i.Prefixed() {
		if i.Dst == IndirectHL {
			return 4
		}
		return 2
	}

	// one cycle for the opcode, one per operand byte, one per memory access
	cycles := uint8(i.Length())
	if i.Dst.memory() {
		cycles++
	}
	if i.Src.memory() {
		cycles++
	}
	return cycles
}

// String returns the assembly mnemonic of the instruction, with
// immediates shown as placeholders (d8, d16, a16, r8).
func (i Instruction) String() string {
	return i.format(func(o Operand) string {
		if o == Imm16 && (i.Op == JP || i.Op == CALL) {
			return "a16"
		}
		return o.String()
	})
}

// format renders the instruction, naming each operand with name.
func (i Instruction) format(name func(Operand) string) string {
	var operands []string
	switch i.Op {
	case Unimplemented:
		return i.Op.String()
	case RST:
		return fmt.Sprintf("RST %02XH", i.Vector)
	case BIT, RES, SET:
		operands = append(operands, fmt.Sprint(i.Bit))
	}
	if i.Cond != Always {
		operands = append(operands, i.Cond.String())
	}
	for _, o := range [...]Operand{i.Dst, i.Src} {
		if o != None {
			operands = append(operands, name(o))
		}
	}

	mnemonic := i.Op.String()
	if i.Op == LD && (i.Dst == HighImm8 || i.Src == HighImm8) {
		mnemonic = "LDH"
	}
	if len(operands) == 0 {
		return mnemonic
	}
	return mnemonic + " " + strings.Join(operands, ", ")
}
