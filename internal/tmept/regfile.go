package tmept

// regFile is the 16-entry register file. R0 is hardwired to zero: it reads
// as 0 and swallows writes on both ports. Reads are combinational; the two
// write ports commit together at the end of a cycle, port A winning when
// both target the same register.
type regFile struct {
	r [16]uint16
}

func (rf *regFile) read(i uint8) uint16 {
	return rf.r[i&0xF]
}

// low returns the low byte of a register, the form consumed by the 8-bit
// ALU operand path.
func (rf *regFile) low(i uint8) uint8 {
	return uint8(rf.r[i&0xF])
}

type regWrite struct {
	enable bool
	wide   bool
	index  uint8
	value  uint16
}

// commit applies both write ports. B is applied before A so that A's value
// survives a same-register collision.
func (rf *regFile) commit(a, b regWrite) {
	rf.apply(b)
	rf.apply(a)
}

func (rf *regFile) apply(w regWrite) {
	i := w.index & 0xF
	if !w.enable || i == 0 {
		return
	}
	if w.wide {
		rf.r[i] = w.value
		return
	}
	rf.r[i] = rf.r[i]&0xFF00 | w.value&0x00FF
}

func (rf *regFile) reset() {
	for i := range rf.r {
		rf.r[i] = 0
	}
}
