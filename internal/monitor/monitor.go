// Package monitor is a terminal front-end for a running machine: CPU state,
// hardware stack, a memory hexdump and a disassembly window, with keys for
// run/pause/single-step.
package monitor

import (
	"fmt"
	"sort"
	"time"

	"github.com/gdamore/tcell"

	"github.com/nevisdale/tmeptic/internal/machine"
	"github.com/nevisdale/tmeptic/internal/tmept"
)

// P - pause/resume
// S - single instruction
// Tab - page the hexdump window
// Q / Ctrl-C - quit

const cyclesPerFrame = 20000

type Monitor struct {
	screen tcell.Screen
	m      *machine.Machine

	paused  bool
	memBase uint16

	disasm      map[uint16]string
	disasmAddrs []uint16
}

func New(m *machine.Machine) (*Monitor, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("couldn't create the screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("couldn't init the screen: %w", err)
	}

	disasm := tmept.Disassemble(m.ROM())
	addrs := make([]uint16, 0, len(disasm))
	for addr := range disasm {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })

	return &Monitor{
		screen:      screen,
		m:           m,
		paused:      true,
		disasm:      disasm,
		disasmAddrs: addrs,
	}, nil
}

// Run drives the event and draw loop until the user quits.
func (mon *Monitor) Run() {
	defer mon.screen.Fini()

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			events <- mon.screen.PollEvent()
		}
	}()

	frame := time.NewTicker(25 * time.Millisecond)
	defer frame.Stop()

	for {
		select {
		case <-frame.C:
			if !mon.paused {
				for i := 0; i < cyclesPerFrame; i++ {
					mon.m.Tick()
				}
			}
			mon.draw()

		case evt := <-events:
			key, ok := evt.(*tcell.EventKey)
			if !ok {
				continue
			}
			switch {
			case key.Key() == tcell.KeyCtrlC:
				return
			case key.Key() == tcell.KeyTAB:
				mon.memBase += 0x80
			case key.Key() != tcell.KeyRune:
			case key.Rune() == 'q':
				return
			case key.Rune() == 'p':
				mon.paused = !mon.paused
			case key.Rune() == 's':
				mon.paused = true
				mon.m.StepInstr()
			}
			mon.draw()
		}
	}
}

func (mon *Monitor) draw() {
	mon.screen.Clear()
	info := mon.m.CPU().DebugInfo()
	mon.cpuBox(2, 1, info)
	mon.stackBox(24, 1, info)
	mon.memBox(38, 1)
	mon.disasmBox(2, 19, info.PC)
	mon.screen.Show()
}

func (mon *Monitor) cpuBox(x, y int, info tmept.Info) {
	box(mon.screen, x, y, 20, 16, " CPU ")
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	drawString(mon.screen, x+2, y+1, style, fmt.Sprintf("PC  $%04X", info.PC))
	drawString(mon.screen, x+2, y+2, style, fmt.Sprintf("MAR $%04X", info.MAR))
	drawString(mon.screen, x+2, y+3, style, fmt.Sprintf("SP  %X", info.SP))
	drawString(mon.screen, x+2, y+4, style, fmt.Sprintf("FLG %s", info.FlagString()))
	for i := 0; i < 8; i++ {
		left := fmt.Sprintf("R%-2d %04X", i, info.Regs[i])
		right := fmt.Sprintf("R%-2d %04X", i+8, info.Regs[i+8])
		drawString(mon.screen, x+2, y+6+i, style, left)
		drawString(mon.screen, x+11, y+6+i, style, right)
	}
	state := "RUN"
	if mon.paused {
		state = "PAUSE"
	}
	drawString(mon.screen, x+2, y+15, style, fmt.Sprintf("%s  %d", state, info.Cycles))
}

func (mon *Monitor) stackBox(x, y int, info tmept.Info) {
	box(mon.screen, x, y, 12, 17, " STACK ")
	for i := 0; i < 16; i++ {
		style := tcell.StyleDefault.Foreground(tcell.ColorGray)
		if uint8(i) == info.SP {
			style = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
		}
		drawString(mon.screen, x+2, y+1+i, style, fmt.Sprintf("%X %04X", i, info.Stack[i]))
	}
}

func (mon *Monitor) memBox(x, y int) {
	box(mon.screen, x, y, 57, 12, " DATA ")
	addr := mon.memBase & 0xFFF0
	for row := 0; row < 8; row++ {
		style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
		drawString(mon.screen, x+2, y+2+row, style, fmt.Sprintf("$%04X", addr))

		style = tcell.StyleDefault.Foreground(tcell.ColorGray)
		for col := 0; col < 16; col++ {
			cell := fmt.Sprintf("%02X", mon.m.DataRead8(addr))
			drawString(mon.screen, x+8+col*3, y+2+row, style, cell)
			addr++
		}
	}
}

func (mon *Monitor) disasmBox(x, y int, pc uint16) {
	box(mon.screen, x, y, 48, 12, " DISASM ")

	i := sort.Search(len(mon.disasmAddrs), func(i int) bool {
		return mon.disasmAddrs[i] >= pc
	})
	start := i - 3
	if start < 0 {
		start = 0
	}
	for row := 0; row < 10 && start+row < len(mon.disasmAddrs); row++ {
		addr := mon.disasmAddrs[start+row]
		style := tcell.StyleDefault.Foreground(tcell.ColorGray)
		if addr == pc {
			style = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
		}
		drawString(mon.screen, x+2, y+1+row, style, mon.disasm[addr])
	}
}

func drawString(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for i, c := range str {
		s.SetContent(x+i, y, c, nil, style)
	}
}

func box(s tcell.Screen, x, y, w, h int, label string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i := x; i < x+w; i++ {
		s.SetContent(i, y, tcell.RuneHLine, nil, style)
		s.SetContent(i, y+h, tcell.RuneHLine, nil, style)
	}
	for j := y; j < y+h; j++ {
		s.SetContent(x, j, tcell.RuneVLine, nil, style)
		s.SetContent(x+w, j, tcell.RuneVLine, nil, style)
	}
	s.SetContent(x, y, tcell.RuneULCorner, nil, style)
	s.SetContent(x+w, y, tcell.RuneURCorner, nil, style)
	s.SetContent(x, y+h, tcell.RuneLLCorner, nil, style)
	s.SetContent(x+w, y+h, tcell.RuneLRCorner, nil, style)

	drawString(s, x+2, y, style.Bold(true), label)
}
