package machine

// GPIO register offsets from the peripheral base.
const (
	gpioRegIn = iota
	gpioRegOut
	gpioRegCount
)

// GPIO is an 8-bit input port and an 8-bit output port. The input side is
// driven by the host, the output side by the program.
type GPIO struct {
	in  uint8
	out uint8
}

func NewGPIO() *GPIO {
	return &GPIO{}
}

// SetInput drives the input port pins.
func (g *GPIO) SetInput(v uint8) {
	g.in = v
}

// Output returns the last value the program wrote to the output port.
func (g *GPIO) Output() uint8 {
	return g.out
}

func (g *GPIO) Read8(offset uint16) uint8 {
	switch offset {
	case gpioRegIn:
		return g.in
	case gpioRegOut:
		return g.out
	}
	return 0
}

func (g *GPIO) Write8(offset uint16, data uint8) {
	if offset == gpioRegOut {
		g.out = data
	}
}
