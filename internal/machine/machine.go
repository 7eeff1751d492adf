// Package machine assembles a complete system around the CPU core: ROM on
// the instruction port, RAM and memory-mapped peripherals on the data port,
// a shared interrupt line and the clock loop.
package machine

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nevisdale/tmeptic/internal/config"
	"github.com/nevisdale/tmeptic/internal/tmept"
)

type Machine struct {
	cfg config.Config

	cpu   *tmept.CPU
	rom   *ROM
	ram   *RAM
	uart  *UART
	gpio  *GPIO
	timer *Timer

	tickCounter uint64

	log *logrus.Entry
}

// New builds a machine from its description. uartOut receives everything
// the program writes to the UART data register; nil discards it.
func New(cfg config.Config, rom *ROM, uartOut io.Writer) *Machine {
	m := &Machine{
		cfg:   cfg,
		rom:   rom,
		ram:   NewRAM(cfg.RAMSize),
		uart:  NewUART(uartOut),
		gpio:  NewGPIO(),
		timer: NewTimer(),
		log:   logrus.StandardLogger().WithField("sub", "machine"),
	}
	m.cpu = tmept.NewCPU(rom, m.newDataBus())
	return m
}

func (m *Machine) Reset() {
	m.cpu.Reset()
	m.tickCounter = 0
}

// Tick advances the whole machine by one clock cycle.
func (m *Machine) Tick() {
	m.cpu.SetIRQ(m.uart.IRQ() || m.timer.IRQ())
	m.cpu.Tick()
	m.timer.Tick()
	m.tickCounter++
}

// Run clocks the machine until the context is cancelled. A positive
// clock_hz paces execution in millisecond batches; zero runs flat out.
func (m *Machine) Run(ctx context.Context) {
	if m.cfg.ClockHz <= 0 {
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}
			for i := 0; i < 4096; i++ {
				m.Tick()
			}
		}
	}

	batch := m.cfg.ClockHz / 1000
	if batch < 1 {
		batch = 1
	}
	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for i := 0; i < batch; i++ {
				m.Tick()
			}
		}
	}
}

// StepInstr ticks the whole machine until the CPU retires one instruction,
// with a cap so a wedged core cannot hang the caller.
func (m *Machine) StepInstr() {
	start := m.cpu.InstrCount()
	for i := 0; i < 64 && m.cpu.InstrCount() == start; i++ {
		m.Tick()
	}
}

func (m *Machine) CPU() *tmept.CPU { return m.cpu }

func (m *Machine) ROM() *ROM { return m.rom }

func (m *Machine) UART() *UART { return m.uart }

func (m *Machine) GPIO() *GPIO { return m.gpio }

func (m *Machine) Timer() *Timer { return m.timer }

func (m *Machine) TickCounter() uint64 { return m.tickCounter }

// DataRead8 peeks the data bus without side effects on RAM; peripheral
// registers are read through their normal paths.
func (m *Machine) DataRead8(addr uint16) uint8 {
	return m.ram.Read8(addr)
}
