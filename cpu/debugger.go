package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

// model is the bubbletea TUI debugger, adapted from the teacher's 6502
// page/status/opcode layout to the DMG register file and its two
// dispatch planes.
type model struct {
	cpu     *CPU
	program []byte

	offset uint16 // only for drawing pageTable
	prevPC uint16
	error  error
}

// Init loads the program into memory at offset and sets PC there.
func (m model) Init() tea.Cmd {
	for i, b := range m.program {
		_ = m.cpu.Mem.WriteByte(m.offset+uint16(i), b)
	}
	m.cpu.Reg.PC = m.offset
	return nil
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit

		case " ", "j":
			m.prevPC = m.cpu.Reg.PC
			_, err := m.cpu.Step()
			if err != nil {
				m.error = err
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// renderPage renders a single 16-byte page as a line. The current PC is
// highlighted.
func (m model) renderPage(start uint16) string {
	if start%16 != 0 {
		panic("start must be a multiple of 16")
	}
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		addr := start + i
		b := m.cpu.Mem.ReadByte(addr)
		if addr == m.cpu.Reg.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) status() string {
	var flags string
	for _, flag := range []bool{
		m.cpu.Reg.F.Zero,
		m.cpu.Reg.F.Subtract,
		m.cpu.Reg.F.HalfCarry,
		m.cpu.Reg.F.Carry,
		m.cpu.IME(),
	} {
		if flag {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
 PC: %04x (%04x)
 SP: %04x
  A: %02x   F: %02x
  B: %02x   C: %02x
  D: %02x   E: %02x
  H: %02x   L: %02x
Z N H C I
`,
		m.cpu.Reg.PC, m.prevPC,
		m.cpu.Reg.SP,
		m.cpu.Reg.A, m.cpu.Reg.F.Byte(),
		m.cpu.Reg.B, m.cpu.Reg.C,
		m.cpu.Reg.D, m.cpu.Reg.E,
		m.cpu.Reg.H, m.cpu.Reg.L,
	) + flags
}

func (m model) pageTable() string {
	header := "page | "
	for b := range 16 {
		header += fmt.Sprintf("  %01x  ", b)
	}

	pages := []string{header}

	offsets := []int{
		0, 16, 32, 48, 64,
		int(m.offset),
		int(m.offset + 16*1),
		int(m.offset + 16*2),
		int(m.offset + 16*3),
		int(m.offset + 16*4),
	}
	for _, i := range offsets {
		pages = append(pages, m.renderPage(uint16(i)))
	}
	return strings.Join(pages, "\n")
}

// currentEntry looks up the dispatch entry for the opcode under PC,
// following the CB prefix if present, purely for display purposes.
func (m model) currentEntry() opcodeEntry {
	op := m.cpu.Mem.ReadByte(m.cpu.Reg.PC)
	if op == 0xCB {
		return cbOpcodes[m.cpu.Mem.ReadByte(m.cpu.Reg.PC+1)]
	}
	return baseOpcodes[op]
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		spew.Sdump(m.currentEntry()),
	)
}

// Debug loads the program into memory at the given offset, then starts
// an interactive TUI for single-stepping it.
func (c *CPU) Debug(program []byte, offset uint16) {
	m, err := tea.NewProgram(model{
		cpu:     c,
		program: program,
		offset:  offset,
	}).Run()
	if err != nil {
		panic(err)
	}
	x := m.(model)
	if x.error != nil {
		fmt.Println("Error:", x.error)
	}
}
