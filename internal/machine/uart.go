package machine

import "io"

// UART register offsets from the peripheral base.
const (
	uartRegData = iota
	uartRegStatus
	uartRegCtrl
	uartRegCount
)

// status bits
const (
	uartStatusRxReady = uint8(1 << 0)
	uartStatusTxReady = uint8(1 << 1)
)

// control bits
const uartCtrlRxIRQEnable = uint8(1 << 0)

// UART is a memory-mapped serial port. Transmit is immediate into an
// io.Writer; receive comes from a software-fed queue and can raise the
// interrupt line while data is waiting.
type UART struct {
	out  io.Writer
	rx   []uint8
	ctrl uint8
}

func NewUART(out io.Writer) *UART {
	return &UART{out: out}
}

// QueueInput appends bytes to the receive queue.
func (u *UART) QueueInput(data []uint8) {
	u.rx = append(u.rx, data...)
}

// IRQ is the receive interrupt line: high while enabled and data waits.
func (u *UART) IRQ() bool {
	return u.ctrl&uartCtrlRxIRQEnable > 0 && len(u.rx) > 0
}

func (u *UART) Read8(offset uint16) uint8 {
	switch offset {
	case uartRegData:
		if len(u.rx) == 0 {
			return 0
		}
		b := u.rx[0]
		u.rx = u.rx[1:]
		return b
	case uartRegStatus:
		status := uartStatusTxReady
		if len(u.rx) > 0 {
			status |= uartStatusRxReady
		}
		return status
	case uartRegCtrl:
		return u.ctrl
	}
	return 0
}

func (u *UART) Write8(offset uint16, data uint8) {
	switch offset {
	case uartRegData:
		if u.out != nil {
			u.out.Write([]byte{data})
		}
	case uartRegCtrl:
		u.ctrl = data
	}
}
