package tmept

// Addressing modes for the standard 3-byte format, taken from the top two
// bits of byte 1.
type addrMode uint8

const (
	mode3Addr addrMode = iota // dst, src1, src2
	mode2Addr                 // dst = dst op src2
	modeImm                   // dst = dst op imm8
	modeMem                   // dst = dst op mem[MAR]
)

func (m addrMode) String() string {
	switch m {
	case mode3Addr:
		return "3ADDR"
	case mode2Addr:
		return "2ADDR"
	case modeImm:
		return "IMM"
	case modeMem:
		return "MEM"
	}
	return "???"
}

// Writeback source for register write port A.
type wbSel uint8

const (
	wbNone wbSel = iota
	wbALU        // ALU result
	wbOpB        // operand B passthrough (MOV)
	wbMem        // data-memory read byte (LOAD)
)

// decoded is the full control-field bundle for one instruction word. It is
// produced combinationally from the latched word each cycle; unknown
// opcodes leave every side-effect signal de-asserted.
type decoded struct {
	opcode uint8
	valid  bool

	group aluGroup
	aluOp uint8 // opcode as seen by the ALU (compound ops map to ADD/SUB)

	mode    addrMode
	dst     uint8
	src1    uint8
	src2    uint8
	jumpReg uint8
	imm8    uint8
	imm16   uint16

	regWrite  bool
	writeback wbSel
	flagWrite bool
	usesCarry bool
	bConstOne bool // operand B is the constant 1 (DJN)

	memRead  bool
	memWrite bool

	marLoadImm bool
	marLoadReg bool
	marInc     bool
	marDec     bool

	isBranch   bool
	isCompound bool
	isPush     bool
	isPop      bool
	isCall     bool
	isRet      bool
}

// word32 packs up to four instruction bytes most-significant-byte first,
// the layout the fetch unit accumulates into.
func word32(b [4]uint8) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

func decode(word uint32) decoded {
	b0 := uint8(word >> 24)
	b1 := uint8(word >> 16)
	b2 := uint8(word >> 8)
	b3 := uint8(word)

	d := decoded{opcode: b0}
	if b0 > opMax {
		return d
	}
	d.valid = true

	// standard-format fields; only the formats below that use them keep them
	d.mode = addrMode(b1 >> 6)
	d.dst = b1 >> 2 & 0xF
	d.src1 = b2 >> 4
	d.src2 = b2 & 0xF
	d.imm8 = b2

	switch {
	case b0 <= opCMP:
		d.group = groupArith
		d.aluOp = b0
		d.regWrite = b0 != opCMP
		d.writeback = wbALU
		d.flagWrite = true
		d.usesCarry = b0 == opADC || b0 == opSBC
		d.memRead = d.mode == modeMem

	case b0 <= opRIR:
		d.group = groupShift
		d.aluOp = b0
		d.regWrite = true
		d.writeback = wbALU
		d.flagWrite = true
		d.memRead = d.mode == modeMem

	case b0 <= opRHO:
		d.group = groupBit
		d.aluOp = b0
		d.regWrite = true
		d.writeback = wbALU
		d.flagWrite = true

	case b0 <= opJIO || (b0 >= opJNE && b0 <= opJLE):
		d.jumpReg = d.dst
		d.isBranch = true

	case b0 == opMOV:
		d.regWrite = true
		d.writeback = wbOpB
		d.memRead = d.mode == modeMem

	case b0 == opLMAR:
		d.imm16 = uint16(b1)<<8 | uint16(b2)
		d.marLoadImm = true

	case b0 == opSMAR:
		d.src1 = d.dst
		d.marLoadReg = true

	case b0 == opLOAD:
		d.regWrite = true
		d.writeback = wbMem
		d.memRead = true

	case b0 == opSTOR:
		d.src1 = d.dst
		d.memWrite = true

	case b0 == opIMAR:
		d.marInc = true

	case b0 == opDMAR:
		d.marDec = true

	case b0 <= opSJN:
		// 4-byte compound: b1 = src1|src2, b2 = dst, b3 = jump target
		d.mode = mode3Addr
		d.src1 = b1 >> 4
		d.src2 = b1 & 0xF
		d.dst = b2 >> 4
		d.jumpReg = b3 >> 4
		d.group = groupArith
		d.regWrite = true
		d.writeback = wbALU
		d.flagWrite = true
		d.isBranch = true
		d.isCompound = true
		if b0 == opALE {
			d.aluOp = opADD
		} else {
			d.aluOp = opSUB
		}
		d.bConstOne = b0 == opDJN

	case b0 == opPUSH:
		d.src1 = d.dst
		d.isPush = true

	case b0 == opPOP:
		d.isPop = true

	case b0 == opCALL:
		d.jumpReg = d.dst
		d.isPush = true
		d.isCall = true

	case b0 == opRET:
		d.isPop = true
		d.isRet = true
	}

	return d
}
