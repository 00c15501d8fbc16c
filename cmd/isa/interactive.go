package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/wasm-regvm/bytecode"
	"github.com/wippyai/wasm-regvm/wasm"
)

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	formStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))
)

const pageSize = 15

type browserModel struct {
	families []bytecode.Family
	visible  []bytecode.Family
	filter   textinput.Model
	selected int
	expanded bool
}

func newBrowserModel() *browserModel {
	ti := textinput.New()
	ti.Placeholder = "filter families"
	ti.Prompt = "/ "
	ti.Width = 30
	ti.Focus()

	m := &browserModel{
		families: bytecode.Families(),
		filter:   ti,
	}
	m.applyFilter()
	return m
}

func (m *browserModel) applyFilter() {
	q := strings.TrimSpace(m.filter.Value())
	m.visible = m.visible[:0]
	for _, f := range m.families {
		if q == "" || strings.Contains(f.Name, q) {
			m.visible = append(m.visible, f)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = max(len(m.visible)-1, 0)
	}
}

func (m *browserModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			if m.expanded && key.String() == "esc" {
				m.expanded = false
				return m, nil
			}
			return m, tea.Quit
		case "up":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down":
			if m.selected < len(m.visible)-1 {
				m.selected++
			}
			return m, nil
		case "enter":
			m.expanded = !m.expanded && len(m.visible) > 0
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *browserModel) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Instruction Families"))
	b.WriteString(fmt.Sprintf(" %d/%d\n\n", len(m.visible), len(m.families)))

	if m.expanded {
		f := m.visible[m.selected]
		b.WriteString(nameStyle.Render(wasm.OpcodeName(f.Wasm)))
		b.WriteString(fmt.Sprintf(" (wasm 0x%02X)\n\n", f.Wasm))
		for _, enc := range bytecode.Encodings() {
			op, ok := f.Opcode(enc)
			if !ok {
				continue
			}
			b.WriteString(fmt.Sprintf("  %-14s %s %s\n", enc, formStyle.Render(fmt.Sprintf("%-28s", op)), dimStyle.Render(describe(op.Info()))))
		}
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("enter/esc back • ctrl+c quit"))
		return b.String()
	}

	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	start := max(m.selected-pageSize/2, 0)
	end := min(start+pageSize, len(m.visible))
	for i := start; i < end; i++ {
		f := m.visible[i]
		line := fmt.Sprintf("%-20s %d forms", f.Name, len(f.Opcodes()))
		if i == m.selected {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("↑/↓ select • enter show forms • esc quit"))
	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newBrowserModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
