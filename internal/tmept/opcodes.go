package tmept

// Opcode byte values. These are fixed by the TMEPT assembler: existing
// binaries depend on them bit-for-bit.
const (
	opADD = uint8(0x00)
	opADC = uint8(0x01)
	opSUB = uint8(0x02)
	opSBC = uint8(0x03)
	opAND = uint8(0x04)
	opOR  = uint8(0x05)
	opNOR = uint8(0x06)
	opNAD = uint8(0x07)
	opXOR = uint8(0x08)
	opCMP = uint8(0x09)

	opROL = uint8(0x0A)
	opSOL = uint8(0x0B)
	opSZL = uint8(0x0C)
	opRIL = uint8(0x0D)
	opROR = uint8(0x0E)
	opSOR = uint8(0x0F)
	opSZR = uint8(0x10)
	opRIR = uint8(0x11)

	opINV = uint8(0x12)
	opINH = uint8(0x13)
	opINL = uint8(0x14)
	opINE = uint8(0x15)
	opINO = uint8(0x16)
	opIEH = uint8(0x17)
	opIOH = uint8(0x18)
	opIEL = uint8(0x19)
	opIOL = uint8(0x1A)
	opIFB = uint8(0x1B)
	opILB = uint8(0x1C)
	opREV = uint8(0x1D)
	opRVL = uint8(0x1E)
	opRVH = uint8(0x1F)
	opRVE = uint8(0x20)
	opRVO = uint8(0x21)
	opRLE = uint8(0x22)
	opRHE = uint8(0x23)
	opRLO = uint8(0x24)
	opRHO = uint8(0x25)

	opJMP = uint8(0x26)
	opJMZ = uint8(0x27)
	opJMN = uint8(0x28)
	opJMG = uint8(0x29)
	opJMO = uint8(0x2A)
	opJIE = uint8(0x2B)
	opJIO = uint8(0x2C)

	opMOV  = uint8(0x2D)
	opLMAR = uint8(0x2E)
	opSMAR = uint8(0x2F)
	opLOAD = uint8(0x30)
	opSTOR = uint8(0x31)
	opIMAR = uint8(0x32)
	opDMAR = uint8(0x33)

	opALE = uint8(0x34)
	opDJN = uint8(0x35)
	opSLE = uint8(0x36)
	opSJN = uint8(0x37)

	opJNE = uint8(0x38)
	opJGE = uint8(0x39)
	opJLE = uint8(0x3A)

	opPUSH = uint8(0x3B)
	opPOP  = uint8(0x3C)
	opCALL = uint8(0x3D)
	opRET  = uint8(0x3E)

	// highest defined opcode; everything above decodes as invalid
	opMax = opRET
)

var opcodeNames = [opMax + 1]string{
	"ADD", "ADC", "SUB", "SBC", "AND", "OR", "NOR", "NAD", "XOR", "CMP",
	"ROL", "SOL", "SZL", "RIL", "ROR", "SOR", "SZR", "RIR",
	"INV", "INH", "INL", "INE", "INO", "IEH", "IOH", "IEL", "IOL", "IFB", "ILB",
	"REV", "RVL", "RVH", "RVE", "RVO", "RLE", "RHE", "RLO", "RHO",
	"JMP", "JMZ", "JMN", "JMG", "JMO", "JIE", "JIO",
	"MOV", "LMAR", "SMAR", "LOAD", "STOR", "IMAR", "DMAR",
	"ALE", "DJN", "SLE", "SJN",
	"JNE", "JGE", "JLE",
	"PUSH", "POP", "CALL", "RET",
}

func opcodeName(opcode uint8) string {
	if opcode > opMax {
		return "???"
	}
	return opcodeNames[opcode]
}

// instrLength returns the fetch length in bytes for an opcode. Every
// arithmetic, shift, bit-manipulation, MOV and LMAR opcode is 3 bytes;
// jumps, MAR/stack ops are 2; compound ops are 4. Undefined opcodes take
// the 3-byte default so fetch stays in lockstep with the assembler.
func instrLength(opcode uint8) int {
	switch {
	case opcode >= opJMP && opcode <= opJIO:
		return 2
	case opcode >= opSMAR && opcode <= opDMAR:
		return 2
	case opcode >= opALE && opcode <= opSJN:
		return 4
	case opcode >= opJNE && opcode <= opRET:
		return 2
	default:
		return 3
	}
}

// Functional-unit groups selected by the decoder.
type aluGroup uint8

const (
	groupNone aluGroup = iota
	groupArith
	groupShift
	groupBit
)
