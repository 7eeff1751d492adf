package tmept

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ArithOp(t *testing.T) {
	type testArgs struct {
		opcode        uint8
		a, b          uint8
		carryIn       bool
		expected      uint8
		expectedFlags uint8
	}

	testDo := func(t *testing.T, in testArgs) {
		result, flags := aluDispatch(groupArith, in.opcode, in.a, in.b, in.carryIn)
		assert.Equal(t, in.expected, result, "result")
		assert.Equal(t, in.expectedFlags, flags, "flags")
	}

	t.Run("ADD positive overflow", func(t *testing.T) {
		testDo(t, testArgs{
			opcode:        opADD,
			a:             0x7F,
			b:             0x01,
			expected:      0x80,
			expectedFlags: flagN | flagV | flagO,
		})
	})

	t.Run("ADD unsigned carry out", func(t *testing.T) {
		testDo(t, testArgs{
			opcode:        opADD,
			a:             0xFF,
			b:             0xFF,
			expected:      0xFE,
			expectedFlags: flagN | flagC | flagO,
		})
	})

	t.Run("ADD zero result", func(t *testing.T) {
		testDo(t, testArgs{
			opcode:        opADD,
			a:             0x00,
			b:             0x00,
			expected:      0x00,
			expectedFlags: flagZ,
		})
	})

	t.Run("ADC folds carry in", func(t *testing.T) {
		testDo(t, testArgs{
			opcode:        opADC,
			a:             0x10,
			b:             0x20,
			carryIn:       true,
			expected:      0x31,
			expectedFlags: flagO,
		})
	})

	t.Run("SUB borrow sets carry", func(t *testing.T) {
		testDo(t, testArgs{
			opcode:        opSUB,
			a:             3,
			b:             10,
			expected:      0xF9, // six bits set, even parity
			expectedFlags: flagN | flagC,
		})
	})

	t.Run("SUB no borrow", func(t *testing.T) {
		testDo(t, testArgs{
			opcode:        opSUB,
			a:             10,
			b:             3,
			expected:      0x07,
			expectedFlags: flagO,
		})
	})

	t.Run("SUB equal operands", func(t *testing.T) {
		testDo(t, testArgs{
			opcode:   opSUB,
			a:        0x42,
			b:        0x42,
			expected: 0x00,
			// even parity, zero set
			expectedFlags: flagZ,
		})
	})

	t.Run("SBC subtracts borrow", func(t *testing.T) {
		testDo(t, testArgs{
			opcode:        opSBC,
			a:             0x10,
			b:             0x05,
			carryIn:       true,
			expected:      0x0A,
			expectedFlags: 0,
		})
	})

	t.Run("CMP computes SUB flags", func(t *testing.T) {
		testDo(t, testArgs{
			opcode:        opCMP,
			a:             3,
			b:             10,
			expected:      0xF9,
			expectedFlags: flagN | flagC,
		})
	})

	t.Run("AND", func(t *testing.T) {
		testDo(t, testArgs{
			opcode:        opAND,
			a:             0xF0,
			b:             0x3C,
			expected:      0x30,
			expectedFlags: 0,
		})
	})

	t.Run("OR", func(t *testing.T) {
		testDo(t, testArgs{
			opcode:        opOR,
			a:             0xF0,
			b:             0x0F,
			expected:      0xFF,
			expectedFlags: flagN,
		})
	})

	t.Run("NOR", func(t *testing.T) {
		testDo(t, testArgs{
			opcode:        opNOR,
			a:             0xF0,
			b:             0x0F,
			expected:      0x00,
			expectedFlags: flagZ,
		})
	})

	t.Run("NAD", func(t *testing.T) {
		testDo(t, testArgs{
			opcode:        opNAD,
			a:             0xFF,
			b:             0xFF,
			expected:      0x00,
			expectedFlags: flagZ,
		})
	})

	t.Run("XOR", func(t *testing.T) {
		testDo(t, testArgs{
			opcode:        opXOR,
			a:             0xAA,
			b:             0xFF,
			expected:      0x55,
			expectedFlags: 0,
		})
	})
}

func Test_ShiftOp(t *testing.T) {
	type testArgs struct {
		opcode        uint8
		a             uint8
		expected      uint8
		expectedFlags uint8
	}

	testDo := func(t *testing.T, in testArgs) {
		result, flags := aluDispatch(groupShift, in.opcode, in.a, 0, false)
		assert.Equal(t, in.expected, result, "result")
		assert.Equal(t, in.expectedFlags, flags, "flags")
	}

	t.Run("ROL wraps top bit around", func(t *testing.T) {
		testDo(t, testArgs{
			opcode:        opROL,
			a:             0x80,
			expected:      0x01,
			expectedFlags: flagC | flagO,
		})
	})

	t.Run("ROR wraps bottom bit around", func(t *testing.T) {
		testDo(t, testArgs{
			opcode:        opROR,
			a:             0x01,
			expected:      0x80,
			expectedFlags: flagN | flagC | flagO,
		})
	})

	t.Run("SOL inserts one", func(t *testing.T) {
		testDo(t, testArgs{
			opcode:        opSOL,
			a:             0x01,
			expected:      0x03,
			expectedFlags: 0,
		})
	})

	t.Run("SZL inserts zero", func(t *testing.T) {
		testDo(t, testArgs{
			opcode:        opSZL,
			a:             0x81,
			expected:      0x02,
			expectedFlags: flagC | flagO,
		})
	})

	t.Run("RIL inserts inverted carry-out, bit out clear", func(t *testing.T) {
		testDo(t, testArgs{
			opcode:        opRIL,
			a:             0x40,
			expected:      0x81,
			expectedFlags: flagN,
		})
	})

	t.Run("RIL inserts inverted carry-out, bit out set", func(t *testing.T) {
		testDo(t, testArgs{
			opcode:        opRIL,
			a:             0x80,
			expected:      0x00,
			expectedFlags: flagZ | flagC,
		})
	})

	t.Run("SOR inserts one on the left", func(t *testing.T) {
		testDo(t, testArgs{
			opcode:        opSOR,
			a:             0x02,
			expected:      0x81,
			expectedFlags: flagN,
		})
	})

	t.Run("SZR inserts zero on the left", func(t *testing.T) {
		testDo(t, testArgs{
			opcode:        opSZR,
			a:             0x03,
			expected:      0x01,
			expectedFlags: flagC | flagO,
		})
	})

	t.Run("RIR inserts inverted carry-out on the left", func(t *testing.T) {
		testDo(t, testArgs{
			opcode:        opRIR,
			a:             0x02,
			expected:      0x81,
			expectedFlags: flagN,
		})
	})

	t.Run("shift of zero is zero", func(t *testing.T) {
		testDo(t, testArgs{
			opcode:        opROL,
			a:             0x00,
			expected:      0x00,
			expectedFlags: flagZ,
		})
	})
}

func Test_FlagString(t *testing.T) {
	assert.Equal(t, "ovcnz", flagString(0))
	assert.Equal(t, "OVCNZ", flagString(flagO|flagV|flagC|flagN|flagZ))
	assert.Equal(t, "ovCnZ", flagString(flagC|flagZ))
}
