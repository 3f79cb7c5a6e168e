// Package tui implements a read-only scrollable pager for viewing a
// rendered ASCII art diagram, built the same way the wider CLI builds its
// interactive views: a bubbletea model tracking a scroll offset over a
// line slice, styled with lipgloss.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Model is the bubbletea model backing the pager.
type Model struct {
	title  string
	lines  []string
	offset int
	height int
	width  int
}

// NewModel builds a pager over content's lines, titled title.
func NewModel(title, content string) Model {
	return Model{
		title:  title,
		lines:  strings.Split(strings.TrimRight(content, "\n"), "\n"),
		height: 20,
	}
}

// Init satisfies tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update satisfies tea.Model, handling scroll keys and window resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.offset = max(0, m.offset-1)
		case "down", "j":
			m.offset = min(m.maxOffset(), m.offset+1)
		case "pgup":
			m.offset = max(0, m.offset-m.viewportHeight())
		case "pgdown", " ":
			m.offset = min(m.maxOffset(), m.offset+m.viewportHeight())
		case "g", "home":
			m.offset = 0
		case "G", "end":
			m.offset = m.maxOffset()
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.width = msg.Width
	}
	return m, nil
}

// View satisfies tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render(m.title))
	b.WriteString("\n\n")

	end := min(len(m.lines), m.offset+m.viewportHeight())
	for _, line := range m.lines[m.offset:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleDim.Render(fmt.Sprintf("lines %d-%d/%d  ↑/↓ scroll  g/G top/bottom  q quit", m.offset+1, end, len(m.lines))))
	return b.String()
}

func (m Model) viewportHeight() int {
	h := m.height - 4
	if h < 1 {
		return 1
	}
	return h
}

func (m Model) maxOffset() int {
	return max(0, len(m.lines)-m.viewportHeight())
}

// Run starts the pager as an alt-screen bubbletea program and blocks until
// the user quits.
func Run(title, content string) error {
	_, err := tea.NewProgram(NewModel(title, content), tea.WithAltScreen()).Run()
	return err
}
