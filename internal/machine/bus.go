package machine

// dataBus decodes data-port addresses: small peripheral windows carved out
// of the RAM space at the configured bases, RAM everywhere else.
type dataBus struct {
	m *Machine
}

func (m *Machine) newDataBus() *dataBus {
	return &dataBus{m: m}
}

func (b *dataBus) Read8(addr uint16) uint8 {
	m := b.m
	switch {
	case addr >= m.cfg.UARTBase && addr < m.cfg.UARTBase+uartRegCount:
		return m.uart.Read8(addr - m.cfg.UARTBase)
	case addr >= m.cfg.GPIOBase && addr < m.cfg.GPIOBase+gpioRegCount:
		return m.gpio.Read8(addr - m.cfg.GPIOBase)
	case addr >= m.cfg.TimerBase && addr < m.cfg.TimerBase+timerRegCount:
		return m.timer.Read8(addr - m.cfg.TimerBase)
	}
	return m.ram.Read8(addr)
}

func (b *dataBus) Write8(addr uint16, data uint8) {
	m := b.m
	switch {
	case addr >= m.cfg.UARTBase && addr < m.cfg.UARTBase+uartRegCount:
		m.uart.Write8(addr-m.cfg.UARTBase, data)
	case addr >= m.cfg.GPIOBase && addr < m.cfg.GPIOBase+gpioRegCount:
		m.gpio.Write8(addr-m.cfg.GPIOBase, data)
	case addr >= m.cfg.TimerBase && addr < m.cfg.TimerBase+timerRegCount:
		m.timer.Write8(addr-m.cfg.TimerBase, data)
	default:
		m.ram.Write8(addr, data)
	}
}
