package tmept

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Decode(t *testing.T) {
	pack := func(b0, b1, b2, b3 uint8) uint32 {
		return word32([4]uint8{b0, b1, b2, b3})
	}

	t.Run("ADD three-address", func(t *testing.T) {
		// ADD R3, R1, R2
		d := decode(pack(opADD, 3<<2, 1<<4|2, 0))
		assert.True(t, d.valid)
		assert.Equal(t, groupArith, d.group)
		assert.Equal(t, mode3Addr, d.mode)
		assert.Equal(t, uint8(3), d.dst)
		assert.Equal(t, uint8(1), d.src1)
		assert.Equal(t, uint8(2), d.src2)
		assert.True(t, d.regWrite)
		assert.True(t, d.flagWrite)
		assert.False(t, d.memRead)
	})

	t.Run("ADD two-address", func(t *testing.T) {
		// ADD R4, R9
		d := decode(pack(opADD, 1<<6|4<<2, 4<<4|9, 0))
		assert.Equal(t, mode2Addr, d.mode)
		assert.Equal(t, uint8(4), d.dst)
		assert.Equal(t, uint8(9), d.src2)
	})

	t.Run("ADD immediate", func(t *testing.T) {
		// ADD R4, #$7F
		d := decode(pack(opADD, 2<<6|4<<2, 0x7F, 0))
		assert.Equal(t, modeImm, d.mode)
		assert.Equal(t, uint8(0x7F), d.imm8)
		assert.False(t, d.memRead)
	})

	t.Run("ADD memory operand", func(t *testing.T) {
		// ADD R4, [MAR]
		d := decode(pack(opADD, 3<<6|4<<2, 0, 0))
		assert.Equal(t, modeMem, d.mode)
		assert.True(t, d.memRead)
	})

	t.Run("CMP writes flags only", func(t *testing.T) {
		d := decode(pack(opCMP, 1<<6|2<<2, 2<<4|5, 0))
		assert.False(t, d.regWrite)
		assert.True(t, d.flagWrite)
	})

	t.Run("ADC and SBC consume the carry flag", func(t *testing.T) {
		assert.True(t, decode(pack(opADC, 0, 0, 0)).usesCarry)
		assert.True(t, decode(pack(opSBC, 0, 0, 0)).usesCarry)
		assert.False(t, decode(pack(opADD, 0, 0, 0)).usesCarry)
	})

	t.Run("INV single register operand", func(t *testing.T) {
		// assembler emits dst and src1 as the same register
		d := decode(pack(opINV, 1<<6|5<<2, 5<<4, 0))
		assert.Equal(t, groupBit, d.group)
		assert.Equal(t, uint8(5), d.dst)
		assert.True(t, d.regWrite)
	})

	t.Run("ROL shift group", func(t *testing.T) {
		d := decode(pack(opROL, 1<<6|6<<2, 6<<4, 0))
		assert.Equal(t, groupShift, d.group)
		assert.True(t, d.flagWrite)
	})

	t.Run("JMP register target", func(t *testing.T) {
		// JMP R11, two bytes
		d := decode(pack(opJMP, 11<<2, 0, 0))
		assert.True(t, d.isBranch)
		assert.Equal(t, uint8(11), d.jumpReg)
		assert.False(t, d.regWrite)
		assert.False(t, d.flagWrite)
	})

	t.Run("MOV register to register", func(t *testing.T) {
		// MOV R2, R8
		d := decode(pack(opMOV, 1<<6|2<<2, 2<<4|8, 0))
		assert.True(t, d.regWrite)
		assert.Equal(t, wbOpB, d.writeback)
		assert.False(t, d.flagWrite, "MOV must not touch flags")
	})

	t.Run("LMAR sixteen-bit immediate", func(t *testing.T) {
		// LMAR $BEEF
		d := decode(pack(opLMAR, 0xBE, 0xEF, 0))
		assert.True(t, d.marLoadImm)
		assert.Equal(t, uint16(0xBEEF), d.imm16)
	})

	t.Run("SMAR register source", func(t *testing.T) {
		d := decode(pack(opSMAR, 9<<2, 0, 0))
		assert.True(t, d.marLoadReg)
		assert.Equal(t, uint8(9), d.src1)
	})

	t.Run("LOAD reads memory into register", func(t *testing.T) {
		d := decode(pack(opLOAD, 6<<2, 0, 0))
		assert.True(t, d.memRead)
		assert.Equal(t, wbMem, d.writeback)
		assert.Equal(t, uint8(6), d.dst)
		assert.False(t, d.flagWrite)
	})

	t.Run("STOR writes register to memory", func(t *testing.T) {
		d := decode(pack(opSTOR, 6<<2, 0, 0))
		assert.True(t, d.memWrite)
		assert.Equal(t, uint8(6), d.src1)
		assert.False(t, d.regWrite)
	})

	t.Run("IMAR and DMAR", func(t *testing.T) {
		assert.True(t, decode(pack(opIMAR, 0, 0, 0)).marInc)
		assert.True(t, decode(pack(opDMAR, 0, 0, 0)).marDec)
	})

	t.Run("DJN decrement and jump", func(t *testing.T) {
		// DJN R2, R10: b1 packs src1|src2, b2 the dst, b3 the jump target
		d := decode(pack(opDJN, 2<<4|2, 2<<4, 10<<4))
		assert.True(t, d.isCompound)
		assert.True(t, d.isBranch)
		assert.True(t, d.bConstOne)
		assert.Equal(t, opSUB, d.aluOp)
		assert.Equal(t, uint8(2), d.src1)
		assert.Equal(t, uint8(2), d.dst)
		assert.Equal(t, uint8(10), d.jumpReg)
	})

	t.Run("ALE add and jump", func(t *testing.T) {
		// ALE R4, R1, R2, R10
		d := decode(pack(opALE, 1<<4|2, 4<<4, 10<<4))
		assert.Equal(t, opADD, d.aluOp)
		assert.False(t, d.bConstOne)
		assert.Equal(t, uint8(1), d.src1)
		assert.Equal(t, uint8(2), d.src2)
		assert.Equal(t, uint8(4), d.dst)
		assert.Equal(t, uint8(10), d.jumpReg)
	})

	t.Run("PUSH and POP", func(t *testing.T) {
		push := decode(pack(opPUSH, 5<<2, 0, 0))
		assert.True(t, push.isPush)
		assert.Equal(t, uint8(5), push.src1)

		pop := decode(pack(opPOP, 5<<2, 0, 0))
		assert.True(t, pop.isPop)
		assert.Equal(t, uint8(5), pop.dst)
	})

	t.Run("CALL pushes and jumps", func(t *testing.T) {
		d := decode(pack(opCALL, 12<<2, 0, 0))
		assert.True(t, d.isPush)
		assert.True(t, d.isCall)
		assert.Equal(t, uint8(12), d.jumpReg)
	})

	t.Run("RET pops into the program counter", func(t *testing.T) {
		d := decode(pack(opRET, 0, 0, 0))
		assert.True(t, d.isPop)
		assert.True(t, d.isRet)
	})

	t.Run("undefined opcode deasserts everything", func(t *testing.T) {
		d := decode(pack(0x3F, 0xFF, 0xFF, 0xFF))
		assert.False(t, d.valid)
		assert.False(t, d.regWrite)
		assert.False(t, d.memWrite)
		assert.False(t, d.flagWrite)
		assert.False(t, d.isBranch)
		assert.False(t, d.isPush)
		assert.False(t, d.isPop)
	})
}

func Test_InstrLength(t *testing.T) {
	assert.Equal(t, 3, instrLength(opADD))
	assert.Equal(t, 3, instrLength(opROL))
	assert.Equal(t, 3, instrLength(opINV))
	assert.Equal(t, 3, instrLength(opMOV))
	assert.Equal(t, 3, instrLength(opLMAR))
	assert.Equal(t, 2, instrLength(opJMP))
	assert.Equal(t, 2, instrLength(opJLE))
	assert.Equal(t, 2, instrLength(opSMAR))
	assert.Equal(t, 2, instrLength(opPUSH))
	assert.Equal(t, 2, instrLength(opRET))
	assert.Equal(t, 4, instrLength(opALE))
	assert.Equal(t, 4, instrLength(opSJN))
	assert.Equal(t, 3, instrLength(0x3F), "undefined opcodes take the default")
}
