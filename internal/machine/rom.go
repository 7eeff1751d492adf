package machine

import (
	"fmt"
	"os"
)

const romSizeBytes = 0x10000

// ROM is the instruction memory: a flat image covering the full 64K address
// space with the reset and interrupt vectors at the top.
type ROM struct {
	mem [romSizeBytes]uint8
}

// NewROMFromFile reads a flat binary image as the assembler writes it.
// Images shorter than 64K are zero-padded; anything larger is rejected.
func NewROMFromFile(path string) (*ROM, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't read the image: %w", err)
	}
	return NewROM(data)
}

func NewROM(data []uint8) (*ROM, error) {
	if len(data) > romSizeBytes {
		return nil, fmt.Errorf("image is %d bytes, limit is %d", len(data), romSizeBytes)
	}
	rom := &ROM{}
	copy(rom.mem[:], data)
	return rom, nil
}

func (r *ROM) Read8(addr uint16) uint8 {
	return r.mem[addr]
}
