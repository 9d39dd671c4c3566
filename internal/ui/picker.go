package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// PickItem is one selectable fix candidate.
type PickItem struct {
	Title    string // fix title
	Location string // path:line:col of the diagnostic
	Detail   string // diagnostic message
	Selected bool
}

// PickResult is what the picker hands back once the program exits.
type PickResult struct {
	// Selected holds indexes into the original item slice, in order.
	Selected []int
	// Aborted is true when the user quit without applying.
	Aborted bool
}

type pickerModel struct {
	title    string
	items    []PickItem
	cursor   int
	width    int
	spinner  spinner.Model
	applying bool
	result   PickResult
}

type applyMsg struct{}

// newPickerModel returns a Bubble Tea model that lets the user choose
// which fixes to apply. The selection is read back via Result() after
// the program finishes.
func newPickerModel(title string, items []PickItem) *pickerModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	return &pickerModel{
		title:   title,
		items:   items,
		spinner: sp,
		width:   80,
	}
}

// Result reports the user's selection; meaningful only after the
// program has quit.
func (m *pickerModel) Result() PickResult {
	return m.result
}

func (m *pickerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.applying {
			return m, nil
		}
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.result = PickResult{Aborted: true}
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case " ":
			if len(m.items) > 0 {
				m.items[m.cursor].Selected = !m.items[m.cursor].Selected
			}
		case "a":
			all := !allSelected(m.items)
			for i := range m.items {
				m.items[i].Selected = all
			}
		case "enter":
			m.applying = true
			return m, func() tea.Msg { return applyMsg{} }
		}
		return m, nil
	case applyMsg:
		var selected []int
		for i, item := range m.items {
			if item.Selected {
				selected = append(selected, i)
			}
		}
		m.result = PickResult{Selected: selected}
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		return m, nil
	}
	return m, nil
}

func (m *pickerModel) View() string {
	if len(m.items) == 0 {
		return "no applicable fixes\n"
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := fmt.Sprintf("%s %s", m.spinner.View(), m.title)
	if m.applying {
		header = fmt.Sprintf("%s applying...", m.spinner.View())
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	locWidth := 28
	titleWidth := m.width - locWidth - 10
	if titleWidth < 20 {
		titleWidth = 20
	}

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		mark := "[ ]"
		if item.Selected {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s%s %s  %s",
			cursor,
			markStyle(item.Selected).Render(mark),
			truncate(item.Title, titleWidth),
			locStyle().Render(truncate(item.Location, locWidth)),
		)
		b.WriteString(line)
		b.WriteString("\n")
		if i == m.cursor && item.Detail != "" {
			b.WriteString(detailStyle().Render("      " + truncate(item.Detail, m.width-8)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle().Render("space: toggle  a: all  enter: apply  q: quit"))
	b.WriteString("\n")

	return b.String()
}

func allSelected(items []PickItem) bool {
	for _, item := range items {
		if !item.Selected {
			return false
		}
	}
	return len(items) > 0
}

func markStyle(selected bool) lipgloss.Style {
	if selected {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
}

func locStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
}

func detailStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
}

func helpStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}

// RunPicker drives the model to completion on the current terminal.
func RunPicker(title string, items []PickItem) (PickResult, error) {
	model := newPickerModel(title, items)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return PickResult{Aborted: true}, err
	}
	return model.Result(), nil
}
