package tmept

// Vector locations at the top of the 64K instruction space. Low byte first,
// as the assembler writes them.
const (
	ResetVecLo = uint16(0xFFFC)
	ResetVecHi = uint16(0xFFFD)
	IRQVecLo   = uint16(0xFFFE)
	IRQVecHi   = uint16(0xFFFF)
)

type fetchState uint8

const (
	stateResetLo fetchState = iota
	stateResetHi
	stateByte0
	stateByte1
	stateByte2
	stateByte3
	stateDone
)

// fetchUnit accumulates an instruction one byte per cycle. Out of reset it
// first spends two cycles reading the reset vector, then cycles through
// BYTE0..BYTE3 as the opcode's length demands, ending in a single DONE
// cycle during which the assembled word is valid.
type fetchUnit struct {
	mem InstrMem

	state   fetchState
	pc      uint16
	startPC uint16 // address of byte 0 of the current instruction
	buf     [4]uint8
	length  int
	vecLo   uint8

	word   uint32 // assembled instruction, stable during DONE
	nextPC uint16 // pc after the instruction; the CALL return address
}

func (f *fetchUnit) reset() {
	f.state = stateResetLo
	f.pc = 0
	f.startPC = 0
	f.buf = [4]uint8{}
	f.word = 0
}

// step advances the state machine by one cycle, consuming at most one
// instruction byte.
func (f *fetchUnit) step() {
	if f.state == stateDone {
		f.state = stateByte0
	}

	switch f.state {
	case stateResetLo:
		f.vecLo = f.mem.Read8(ResetVecLo)
		f.state = stateResetHi

	case stateResetHi:
		f.pc = uint16(f.mem.Read8(ResetVecHi))<<8 | uint16(f.vecLo)
		f.state = stateByte0

	case stateByte0:
		f.startPC = f.pc
		f.buf = [4]uint8{}
		f.buf[0] = f.mem.Read8(f.pc)
		f.pc++
		f.length = instrLength(f.buf[0])
		f.state = stateByte1

	case stateByte1:
		f.buf[1] = f.mem.Read8(f.pc)
		f.pc++
		if f.length == 2 {
			f.finish()
		} else {
			f.state = stateByte2
		}

	case stateByte2:
		f.buf[2] = f.mem.Read8(f.pc)
		f.pc++
		if f.length == 3 {
			f.finish()
		} else {
			f.state = stateByte3
		}

	case stateByte3:
		f.buf[3] = f.mem.Read8(f.pc)
		f.pc++
		f.finish()
	}
}

func (f *fetchUnit) finish() {
	f.word = word32(f.buf)
	f.nextPC = f.pc
	f.state = stateDone
}

// redirect cancels any partial accumulation and restarts at target on the
// next cycle. Execute's program-counter-load path and the interrupt vector
// sequence both land here.
func (f *fetchUnit) redirect(target uint16) {
	f.pc = target
	f.buf = [4]uint8{}
	f.state = stateByte0
}

func (f *fetchUnit) done() bool {
	return f.state == stateDone
}

// stall is true in every state except DONE; Execute must not see a valid
// instruction while it is asserted.
func (f *fetchUnit) stall() bool {
	return f.state != stateDone
}
