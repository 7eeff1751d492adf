package tmept

// hwStack is the dedicated 16-entry call/data stack, separate from the
// register file. Full-descending: the pointer names the last occupied slot
// and decrements before a push. The 4-bit pointer wraps modulo 16 with no
// overflow or underflow detection, matching the hardware.
type hwStack struct {
	mem [16]uint16
	sp  uint8
}

func (s *hwStack) push(v uint16) {
	s.sp = (s.sp - 1) & 0xF
	s.mem[s.sp] = v
}

func (s *hwStack) pop() uint16 {
	v := s.mem[s.sp]
	s.sp = (s.sp + 1) & 0xF
	return v
}

func (s *hwStack) pointer() uint8 {
	return s.sp
}

func (s *hwStack) reset() {
	s.sp = 0
	for i := range s.mem {
		s.mem[i] = 0
	}
}
