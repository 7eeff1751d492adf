package machine

// RAM is the data-side working memory. Reads outside the configured window
// float to zero, writes outside it are dropped.
type RAM struct {
	mem []uint8
}

func NewRAM(size int) *RAM {
	return &RAM{mem: make([]uint8, size)}
}

func (r *RAM) Read8(addr uint16) uint8 {
	if int(addr) >= len(r.mem) {
		return 0
	}
	return r.mem[addr]
}

func (r *RAM) Write8(addr uint16, data uint8) {
	if int(addr) >= len(r.mem) {
		return
	}
	r.mem[addr] = data
}
