package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/coralang/interp-runtime/bridge"
	"github.com/coralang/interp-runtime/object"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	convStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type convInfo struct {
	tag  string
	desc string
}

var interactiveConversions = []convInfo{
	{"i8", "signed 8-bit (narrowing truncates)"},
	{"i16", "signed 16-bit (narrowing truncates)"},
	{"i32", "signed 32-bit (narrowing truncates)"},
	{"i64", "signed 64-bit"},
	{"f32", "single precision (narrows)"},
	{"f64", "double precision"},
	{"c64", "complex, float32 parts"},
	{"c128", "complex, float64 parts"},
	{"bool", "singleton identity"},
}

type interactiveModel struct {
	err      error
	in       *object.Interp
	b        *bridge.Bridge
	input    textinput.Model
	result   string
	pending  string
	selected int
	state    modelState
}

type modelState int

const (
	stateSelectConv modelState = iota
	stateInputLiteral
	stateShowResult
)

func newInteractiveModel() *interactiveModel {
	in := object.New()
	return &interactiveModel{
		in:    in,
		b:     bridge.New(in),
		state: stateSelectConv,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state != stateInputLiteral || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectConv && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectConv && m.selected < len(interactiveConversions)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectConv:
				m.prepareInput()
				m.state = stateInputLiteral

			case stateInputLiteral:
				m.runConversion()
				m.state = stateShowResult

			case stateShowResult:
				m.state = stateSelectConv
				m.result = ""
				m.pending = ""
				m.err = nil
			}

		case "esc":
			switch m.state {
			case stateInputLiteral:
				m.state = stateSelectConv
			case stateShowResult:
				m.state = stateSelectConv
				m.result = ""
				m.pending = ""
				m.err = nil
			}
		}
	}

	if m.state == stateInputLiteral {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) prepareInput() {
	c := interactiveConversions[m.selected]
	ti := textinput.New()
	ti.Placeholder = c.tag + " literal"
	ti.Prompt = "value: "
	ti.Width = 40
	ti.Focus()
	m.input = ti
}

func (m *interactiveModel) runConversion() {
	c := interactiveConversions[m.selected]
	literal := m.input.Value()

	m.in.ClearErr()

	boxed, err := boxLiteral(m.b, literal, c.tag)
	if err != nil {
		m.err = err
		return
	}

	native, err := convert(m.b, boxed, c.tag)
	if err != nil {
		m.err = err
		if m.in.ErrOccurred() {
			m.pending = m.in.Err().Error()
		}
		return
	}

	m.err = nil
	m.result = fmt.Sprintf("%s (%s)  ->  %v (%s)  [allocs: %d]",
		boxed, boxed.Type(), native, c.tag, m.in.Allocs())
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Value Inspector"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectConv:
		b.WriteString("Select a conversion:\n\n")
		for i, c := range interactiveConversions {
			line := convStyle.Render(c.tag) + "  " + typeStyle.Render(c.desc)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + c.tag + "  " + c.desc))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter choose • q quit"))

	case stateInputLiteral:
		c := interactiveConversions[m.selected]
		b.WriteString(fmt.Sprintf("Boxing a %s literal\n\n", convStyle.Render(c.tag)))
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter convert • esc back"))

	case stateShowResult:
		c := interactiveConversions[m.selected]
		b.WriteString(fmt.Sprintf("Result of %s conversion:\n\n", convStyle.Render(c.tag)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			if m.pending != "" {
				b.WriteString("\n")
				b.WriteString(errorStyle.Render("Pending indicator: " + m.pending))
			}
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
