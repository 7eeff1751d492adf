package machine

// Timer register offsets from the peripheral base.
const (
	timerRegReloadLo = iota
	timerRegReloadHi
	timerRegCtrl
	timerRegStatus
	timerRegCount
)

// control bits
const (
	timerCtrlEnable    = uint8(1 << 0)
	timerCtrlIRQEnable = uint8(1 << 1)
)

// status bits
const timerStatusExpired = uint8(1 << 0)

// Timer is a down-counter clocked once per machine tick. On reaching zero
// it latches the expired bit, reloads and keeps counting. Writing the
// status register clears the expired bit, which also drops the IRQ line.
type Timer struct {
	reload  uint16
	count   uint16
	ctrl    uint8
	expired bool
}

func NewTimer() *Timer {
	return &Timer{}
}

func (t *Timer) Tick() {
	if t.ctrl&timerCtrlEnable == 0 {
		return
	}
	if t.count == 0 {
		t.count = t.reload
		return
	}
	t.count--
	if t.count == 0 {
		t.expired = true
		t.count = t.reload
	}
}

// IRQ is high while the expired bit is set and interrupts are enabled.
func (t *Timer) IRQ() bool {
	return t.expired && t.ctrl&timerCtrlIRQEnable > 0
}

func (t *Timer) Read8(offset uint16) uint8 {
	switch offset {
	case timerRegReloadLo:
		return uint8(t.reload)
	case timerRegReloadHi:
		return uint8(t.reload >> 8)
	case timerRegCtrl:
		return t.ctrl
	case timerRegStatus:
		if t.expired {
			return timerStatusExpired
		}
	}
	return 0
}

func (t *Timer) Write8(offset uint16, data uint8) {
	switch offset {
	case timerRegReloadLo:
		t.reload = t.reload&0xFF00 | uint16(data)
	case timerRegReloadHi:
		t.reload = t.reload&0x00FF | uint16(data)<<8
	case timerRegCtrl:
		t.ctrl = data
		if data&timerCtrlEnable > 0 && t.count == 0 {
			t.count = t.reload
		}
	case timerRegStatus:
		t.expired = false
	}
}
