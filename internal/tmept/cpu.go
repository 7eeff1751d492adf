// Package tmept implements a cycle-accurate emulator core for the TMEPT
// 8-bit CPU: a two-stage fetch/execute pipeline over a 16-register file, a
// dedicated 16-entry hardware stack and a memory-address-register driven
// data port.
package tmept

import "github.com/sirupsen/logrus"

// InstrMem is the instruction-memory port: a combinational byte read per
// cycle, addressed by the fetch unit or the interrupt vector sequence.
type InstrMem interface {
	Read8(addr uint16) uint8
}

// ReadWriter is the data-memory port addressed by the MAR. Reads are
// combinational, writes commit on the cycle they are issued.
type ReadWriter interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, data uint8)
}

type cpuMode uint8

const (
	modeRun cpuMode = iota
	modeVecLo
	modeVecHi
)

// CPU wires the fetch and execute stages and owns the interrupt machinery.
// One Tick is one clock cycle.
type CPU struct {
	imem InstrMem
	dmem ReadWriter

	fetch fetchUnit
	exec  executeUnit

	mode  cpuMode
	vecLo uint8

	irqPrev    bool
	irqPending bool

	totalCycles uint64

	log *logrus.Entry
}

func NewCPU(imem InstrMem, dmem ReadWriter) *CPU {
	c := &CPU{
		imem: imem,
		dmem: dmem,
		log:  logrus.StandardLogger().WithField("sub", "cpu"),
	}
	c.fetch.mem = imem
	c.exec.log = c.log
	c.Reset()
	return c
}

// Reset returns the core to its power-on state: registers, flags, MAR and
// stack cleared, fetch restarted at the reset-vector read.
func (c *CPU) Reset() {
	c.fetch.reset()
	c.exec.reset()
	c.mode = modeRun
	c.irqPrev = false
	c.irqPending = false
	c.totalCycles = 0
}

// SetIRQ samples the interrupt request line. Only an inactive-to-active
// transition schedules service; holding the line asserted does not re-fire.
func (c *CPU) SetIRQ(level bool) {
	if level && !c.irqPrev {
		c.irqPending = true
	}
	c.irqPrev = level
}

// Tick advances the core by one clock cycle.
func (c *CPU) Tick() {
	c.totalCycles++

	// interrupt vector sequence: two instruction-memory reads reusing the
	// fetch port, then normal fetch resumes at the handler
	switch c.mode {
	case modeVecLo:
		c.vecLo = c.imem.Read8(IRQVecLo)
		c.mode = modeVecHi
		return
	case modeVecHi:
		hi := c.imem.Read8(IRQVecHi)
		c.fetch.redirect(uint16(hi)<<8 | uint16(c.vecLo))
		c.mode = modeRun
		return
	}

	req := c.exec.step(c.dmem)
	if req.load {
		c.fetch.redirect(req.target)
		return
	}

	c.fetch.step()
	if !c.fetch.done() {
		return
	}

	// instruction boundary: a freshly assembled word with execute quiet.
	// A pending interrupt wins here; the fetched instruction is discarded
	// and refetched after the handler returns.
	if c.irqPending && c.exec.quiet() {
		c.irqPending = false
		c.exec.stack.push(c.fetch.startPC)
		c.mode = modeVecLo
		c.log.WithField("pc", c.fetch.startPC).Debug("servicing interrupt")
		return
	}

	c.exec.latch(c.fetch.word, c.fetch.nextPC)
}

// StepInstr runs cycles until one instruction commits, or maxCycles pass.
// It returns the number of cycles consumed.
func (c *CPU) StepInstr(maxCycles int) int {
	start := c.exec.commits
	n := 0
	for n < maxCycles && c.exec.commits == start {
		c.Tick()
		n++
	}
	return n
}

// Stall is the aggregate backpressure signal: true whenever the pipeline is
// mid-accumulation or servicing an interrupt vector.
func (c *CPU) Stall() bool {
	return c.mode != modeRun || c.fetch.stall()
}

// Info is a snapshot of the programmer-visible state for debug front-ends.
type Info struct {
	PC     uint16
	Flags  uint8
	SP     uint8
	MAR    uint16
	Regs   [16]uint16
	Stack  [16]uint16
	Cycles uint64
	Stall  bool
}

func (i Info) FlagString() string {
	return flagString(i.Flags)
}

func (c *CPU) DebugInfo() Info {
	return Info{
		PC:     c.fetch.pc,
		Flags:  c.exec.flags,
		SP:     c.exec.stack.pointer(),
		MAR:    c.exec.mar,
		Regs:   c.exec.regs.r,
		Stack:  c.exec.stack.mem,
		Cycles: c.totalCycles,
		Stall:  c.Stall(),
	}
}

// Reg returns a register's current value.
func (c *CPU) Reg(i uint8) uint16 {
	return c.exec.regs.read(i)
}

// InstrCount returns the number of instructions retired since reset.
func (c *CPU) InstrCount() uint64 {
	return c.exec.commits
}
