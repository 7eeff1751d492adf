package tmept

import "github.com/sirupsen/logrus"

// executeUnit holds all architectural state behind the pipeline latch: the
// register file, the flags word, the memory address register, the hardware
// stack and the one-cycle-delayed stack-read latches used by POP and RET.
type executeUnit struct {
	regs  regFile
	stack hwStack
	flags uint8
	mar   uint16

	// pipeline register written by fetch at the end of its DONE cycle
	ir      uint32
	irValid bool
	retPC   uint16

	// stack-array reads are registered: the value popped this cycle is
	// only usable on the next one
	popPending bool
	popDst     uint8
	popValue   uint16
	retPending bool
	retValue   uint16

	commits uint64

	log *logrus.Entry
}

// pcRequest is Execute's program-counter-load output, consumed by Fetch on
// the following cycle.
type pcRequest struct {
	load   bool
	target uint16
}

func (e *executeUnit) latch(word uint32, retPC uint16) {
	e.ir = word
	e.irValid = true
	e.retPC = retPC
}

// quiet reports that no instruction is latched and no deferred writeback is
// in flight; together with fetch being between instructions this is the
// interrupt-service boundary.
func (e *executeUnit) quiet() bool {
	return !e.irValid && !e.popPending && !e.retPending
}

func (e *executeUnit) reset() {
	e.regs.reset()
	e.stack.reset()
	e.flags = 0
	e.mar = 0
	e.ir = 0
	e.irValid = false
	e.popPending = false
	e.retPending = false
}

// step runs one execute cycle: deferred stack writebacks first, then the
// latched instruction if one is valid. All register-file effects funnel
// through the two write ports committed at the end of the cycle.
func (e *executeUnit) step(dmem ReadWriter) pcRequest {
	var portA, portB regWrite
	var req pcRequest

	if e.popPending {
		portB = regWrite{enable: true, wide: true, index: e.popDst, value: e.popValue}
		e.popPending = false
	}
	if e.retPending {
		req = pcRequest{load: true, target: e.retValue}
		e.retPending = false
	}

	if !e.irValid {
		e.regs.commit(portA, portB)
		return req
	}
	e.irValid = false

	d := decode(e.ir)
	if !d.valid {
		// permissive hardware: undefined opcodes retire with no effects
		e.log.WithFields(logrus.Fields{
			"opcode": d.opcode,
			"pc":     e.retPC,
		}).Warn("undefined opcode")
		e.regs.commit(portA, portB)
		return req
	}
	e.commits++

	// operand selection
	var memData uint8
	if d.memRead {
		memData = dmem.Read8(e.mar)
	}
	var opA uint8
	if d.mode == mode3Addr {
		opA = e.regs.low(d.src1)
	} else {
		opA = e.regs.low(d.dst)
	}
	var opB uint8
	switch {
	case d.bConstOne:
		opB = 1
	case d.memRead:
		opB = memData
	case d.mode == modeImm:
		opB = d.imm8
	default:
		opB = e.regs.low(d.src2)
	}

	var result, aluFlags uint8
	if d.group != groupNone {
		result, aluFlags = aluDispatch(d.group, d.aluOp, opA, opB, e.flags&flagC > 0)
	}

	// branch resolution: simple jumps test the current flags, compound ops
	// test their own fresh result
	taken := false
	if d.isBranch {
		if d.isCompound {
			if d.opcode == opSLE {
				taken = aluFlags&(flagN|flagZ) > 0
			} else {
				taken = result != 0
			}
		} else {
			taken = branchTaken(d.opcode, e.flags)
		}
	}

	// commit phase
	if d.flagWrite {
		e.flags = aluFlags & flagMask
	}
	switch {
	case d.marLoadImm:
		e.mar = d.imm16
	case d.marLoadReg:
		e.mar = e.regs.read(d.src1)
	case d.marInc:
		e.mar++
	case d.marDec:
		e.mar--
	}
	if d.memWrite {
		dmem.Write8(e.mar, e.regs.low(d.src1))
	}
	if d.regWrite {
		var v uint8
		switch d.writeback {
		case wbALU:
			v = result
		case wbOpB:
			v = opB
		case wbMem:
			v = memData
		}
		portA = regWrite{enable: true, index: d.dst, value: uint16(v)}
	}

	// stack pointer moves this cycle; popped values land next cycle
	if d.isPush {
		if d.isCall {
			e.stack.push(e.retPC)
		} else {
			e.stack.push(e.regs.read(d.src1))
		}
	}
	if d.isPop {
		v := e.stack.pop()
		if d.isRet {
			e.retPending = true
			e.retValue = v
		} else {
			e.popPending = true
			e.popDst = d.dst
			e.popValue = v
		}
	}

	if d.isCall || (d.isBranch && taken) {
		req = pcRequest{load: true, target: e.regs.read(d.jumpReg)}
	}

	e.regs.commit(portA, portB)
	return req
}

func branchTaken(opcode uint8, flags uint8) bool {
	z := flags&flagZ > 0
	n := flags&flagN > 0
	c := flags&flagC > 0
	v := flags&flagV > 0
	o := flags&flagO > 0

	switch opcode {
	case opJMP:
		return true
	case opJMZ:
		return z
	case opJMN:
		return n
	case opJMG:
		return !z && !n
	case opJMO:
		return v
	case opJIE:
		return c
	case opJIO:
		return o
	case opJNE:
		return !z
	case opJGE:
		return n == v
	case opJLE:
		return n != v || z
	}
	return false
}
