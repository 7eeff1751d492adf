package tmept

import "fmt"

// disasmOne renders one assembled instruction word in assembler syntax.
func disasmOne(word [4]uint8) string {
	d := decode(word32(word))
	if !d.valid {
		return fmt.Sprintf(".db $%02X", word[0])
	}
	name := opcodeName(d.opcode)

	switch {
	case d.group == groupBit || d.group == groupShift:
		// single-operand units: the mode bits still select where the
		// operand comes from, but the assembler only emits register form
		if d.mode == modeMem {
			return fmt.Sprintf("%s [MAR]", name)
		}
		return fmt.Sprintf("%s R%d", name, d.src1)

	case d.isCompound:
		if d.opcode == opDJN {
			return fmt.Sprintf("%s R%d, R%d", name, d.src1, d.jumpReg)
		}
		return fmt.Sprintf("%s R%d, R%d, R%d, R%d", name, d.src1, d.src2, d.dst, d.jumpReg)

	case d.opcode == opLMAR:
		return fmt.Sprintf("%s $%04X", name, d.imm16)

	case d.opcode == opSMAR || d.opcode == opSTOR || d.opcode == opPUSH:
		return fmt.Sprintf("%s R%d", name, d.src1)

	case d.opcode == opLOAD || d.opcode == opPOP || d.opcode == opCALL:
		return fmt.Sprintf("%s R%d", name, d.dst)

	case d.isRet:
		return name

	case d.isBranch:
		return fmt.Sprintf("%s R%d", name, d.jumpReg)

	case d.opcode == opIMAR || d.opcode == opDMAR:
		return name

	case d.opcode == opMOV:
		if d.mode == modeMem {
			return fmt.Sprintf("%s R%d, [MAR]", name, d.dst)
		}
		return fmt.Sprintf("%s R%d, R%d", name, d.dst, d.src2)
	}

	// arithmetic group
	switch d.mode {
	case mode3Addr:
		return fmt.Sprintf("%s R%d, R%d, R%d", name, d.dst, d.src1, d.src2)
	case mode2Addr:
		return fmt.Sprintf("%s R%d, R%d", name, d.dst, d.src2)
	case modeImm:
		return fmt.Sprintf("%s R%d, #$%02X", name, d.dst, d.imm8)
	default:
		return fmt.Sprintf("%s R%d, [MAR]", name, d.dst)
	}
}

// Disassemble returns a map of addresses and their corresponding
// instructions over the whole 64K instruction space. Variable instruction
// lengths mean the walk is only meaningful from a true instruction start,
// which is fine for a debug view.
func Disassemble(mem InstrMem) map[uint16]string {
	disasm := make(map[uint16]string, 0x8000)

	addr := uint32(0)
	for addr <= 0xFFFF {
		pc := uint16(addr)
		op := mem.Read8(pc)
		n := instrLength(op)

		var word [4]uint8
		word[0] = op
		for i := 1; i < n; i++ {
			word[i] = mem.Read8(pc + uint16(i))
		}
		disasm[pc] = fmt.Sprintf("$%04X: %s", pc, disasmOne(word))
		addr += uint32(n)
	}
	return disasm
}
