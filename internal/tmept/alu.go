package tmept

import "math/bits"

// Status flags. The register is 5 bits wide: {O, V, C, N, Z} from most to
// least significant.
const (
	flagZ = uint8(1 << iota) // Zero
	flagN                    // Negative
	flagC                    // Carry (borrow on subtraction)
	flagV                    // Overflow
	flagO                    // Odd parity
)

const flagMask = flagZ | flagN | flagC | flagV | flagO

func flagString(flags uint8) string {
	b := []byte("ovcnz")
	if flags&flagO > 0 {
		b[0] = 'O'
	}
	if flags&flagV > 0 {
		b[1] = 'V'
	}
	if flags&flagC > 0 {
		b[2] = 'C'
	}
	if flags&flagN > 0 {
		b[3] = 'N'
	}
	if flags&flagZ > 0 {
		b[4] = 'Z'
	}
	return string(b)
}

func isSameSign(a, b uint8) bool {
	return (a^b)&0x80 == 0
}

// arithOp is the arithmetic/logic unit: 8-bit operands extended to 9 bits
// so bit 8 of the result captures carry out (add) or borrow (subtract).
// CMP is SUB with the result discarded by the caller.
func arithOp(opcode uint8, a, b uint8, carryIn bool) (uint8, uint8) {
	var r16 uint16
	var overflow bool

	switch opcode {
	case opADD, opADC:
		r16 = uint16(a) + uint16(b)
		if opcode == opADC && carryIn {
			r16++
		}
		overflow = isSameSign(a, b) && !isSameSign(a, uint8(r16))
	case opSUB, opSBC, opCMP:
		r16 = uint16(a) - uint16(b)
		if opcode == opSBC && carryIn {
			r16--
		}
		overflow = !isSameSign(a, b) && !isSameSign(a, uint8(r16))
	case opAND:
		r16 = uint16(a & b)
	case opOR:
		r16 = uint16(a | b)
	case opNOR:
		r16 = uint16(^(a | b))
	case opNAD:
		r16 = uint16(^(a & b))
	case opXOR:
		r16 = uint16(a ^ b)
	}

	r := uint8(r16)
	var flags uint8
	if r == 0 {
		flags |= flagZ
	}
	if r&0x80 > 0 {
		flags |= flagN
	}
	if r16&0x100 > 0 {
		flags |= flagC
	}
	if overflow {
		flags |= flagV
	}
	return r, flags
}

// shiftOp is the shift/rotate unit: single-position shifts where the carry
// flag is always the bit shifted out and the inserted bit depends on the
// opcode. Overflow is never set.
func shiftOp(opcode uint8, a uint8) (uint8, uint8) {
	var r uint8
	var carry bool

	switch opcode {
	case opROL, opSOL, opSZL, opRIL:
		carry = a&0x80 > 0
		r = a << 1
		switch {
		case opcode == opROL && carry:
			r |= 0x01
		case opcode == opSOL:
			r |= 0x01
		case opcode == opRIL && !carry:
			r |= 0x01
		}
	case opROR, opSOR, opSZR, opRIR:
		carry = a&0x01 > 0
		r = a >> 1
		switch {
		case opcode == opROR && carry:
			r |= 0x80
		case opcode == opSOR:
			r |= 0x80
		case opcode == opRIR && !carry:
			r |= 0x80
		}
	}

	var flags uint8
	if r == 0 {
		flags |= flagZ
	}
	if r&0x80 > 0 {
		flags |= flagN
	}
	if carry {
		flags |= flagC
	}
	return r, flags
}

// aluDispatch selects the functional group, merges in the parity flag and
// zeroes the flags a group does not produce.
func aluDispatch(group aluGroup, opcode uint8, a, b uint8, carryIn bool) (uint8, uint8) {
	var r, flags uint8
	switch group {
	case groupArith:
		r, flags = arithOp(opcode, a, b, carryIn)
	case groupShift:
		r, flags = shiftOp(opcode, a)
	case groupBit:
		r, flags = bitOp(opcode, a)
	default:
		return 0, 0
	}
	if bits.OnesCount8(r)&1 == 1 {
		flags |= flagO
	}
	return r, flags
}
