package tmept

import "math/bits"

// bitOp is the bit-manipulation unit: fixed-mask inversions and fixed
// permutations. Pure remaps, so only Zero and Negative come out of it.
func bitOp(opcode uint8, a uint8) (uint8, uint8) {
	var r uint8

	switch opcode {
	case opINV:
		r = a ^ 0xFF
	case opINH:
		r = a ^ 0xF0
	case opINL:
		r = a ^ 0x0F
	case opINE:
		r = a ^ 0x55
	case opINO:
		r = a ^ 0xAA
	case opIEH:
		r = a ^ 0x50
	case opIOH:
		r = a ^ 0xA0
	case opIEL:
		r = a ^ 0x05
	case opIOL:
		r = a ^ 0x0A
	case opIFB:
		r = a ^ 0x80
	case opILB:
		r = a ^ 0x01

	case opREV:
		r = bits.Reverse8(a)
	case opRVL:
		// reverse bits 3..0 in place
		r = a&0xF0 | bits.Reverse8(a&0x0F)>>4
	case opRVH:
		// reverse bits 7..4 in place
		r = a&0x0F | bits.Reverse8(a&0xF0)<<4
	case opRVE:
		// even positions 0,2,4,6 reversed among themselves
		r = a&0xAA | swapBits(swapBits(a, 0, 6), 2, 4)&0x55
	case opRVO:
		// odd positions 1,3,5,7 reversed among themselves
		r = a&0x55 | swapBits(swapBits(a, 1, 7), 3, 5)&0xAA
	case opRLE:
		r = swapBits(a, 0, 2)
	case opRHE:
		r = swapBits(a, 4, 6)
	case opRLO:
		r = swapBits(a, 1, 3)
	case opRHO:
		r = swapBits(a, 5, 7)
	}

	var flags uint8
	if r == 0 {
		flags |= flagZ
	}
	if r&0x80 > 0 {
		flags |= flagN
	}
	return r, flags
}

func swapBits(v uint8, i, j uint8) uint8 {
	bi := v >> i & 1
	bj := v >> j & 1
	v &^= 1<<i | 1<<j
	return v | bj<<i | bi<<j
}
