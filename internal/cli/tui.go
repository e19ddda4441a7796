package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/duncanmmacleod/gwsumm/pkg/tabs"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// TabListModel - Interactive tab selection
// =============================================================================

// TabListModel is the bubbletea model for picking the top-level tabs to
// build. Tabs are toggled with space and the selection is confirmed with
// enter; quitting without confirming selects nothing.
type TabListModel struct {
	Tabs      []tabs.Tab
	Cursor    int
	Picked    map[int]bool
	Confirmed bool
}

// NewTabListModel creates a new tab list model with every tab picked.
func NewTabListModel(roots []tabs.Tab) TabListModel {
	picked := make(map[int]bool, len(roots))
	for i := range roots {
		picked[i] = true
	}
	return TabListModel{Tabs: roots, Picked: picked}
}

func (m TabListModel) Init() tea.Cmd {
	return nil
}

func (m TabListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Tabs)-1 {
				m.Cursor++
			}
		case " ":
			m.Picked[m.Cursor] = !m.Picked[m.Cursor]
		case "a":
			for i := range m.Tabs {
				m.Picked[i] = true
			}
		case "n":
			for i := range m.Tabs {
				m.Picked[i] = false
			}
		case "enter":
			m.Confirmed = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m TabListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Tabs"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("arrows: navigate  space: toggle  a/n: all/none  enter: build  q: quit"))
	b.WriteString("\n\n")

	for i, t := range m.Tabs {
		cursor := "  "
		if i == m.Cursor {
			cursor = "> "
		}

		mark := StyleDim.Render("[ ]")
		if m.Picked[i] {
			mark = StyleSuccess.Render("[x]")
		}

		line := fmt.Sprintf("%s%s %-25s  %s", cursor, mark, t.Name(), listDimStyle.Render(tabDetail(t)))

		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else if m.Picked[i] {
			b.WriteString(listNormalStyle.Render(line))
		} else {
			b.WriteString(listDimStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Tabs))))

	return b.String()
}

// Names returns the names of the picked tabs in list order, or nil when
// the selection was not confirmed.
func (m TabListModel) Names() []string {
	if !m.Confirmed {
		return nil
	}
	var names []string
	for i, t := range m.Tabs {
		if m.Picked[i] {
			names = append(names, t.Name())
		}
	}
	return names
}

// pickTabs runs the interactive tab picker and returns the chosen names.
func pickTabs(roots []tabs.Tab) ([]string, error) {
	p := tea.NewProgram(NewTabListModel(roots))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("tab selection: %w", err)
	}
	model, ok := final.(TabListModel)
	if !ok {
		return nil, nil
	}
	return model.Names(), nil
}
