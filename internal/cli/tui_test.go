package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/duncanmmacleod/gwsumm/pkg/tabs"
)

func pickerTabs(t *testing.T) []tabs.Tab {
	t.Helper()
	a, err := tabs.NewPlotTab("Summary")
	if err != nil {
		t.Fatal(err)
	}
	b, err := tabs.NewPlotTab("Sensitivity")
	if err != nil {
		t.Fatal(err)
	}
	c, err := tabs.NewExternalTab("GEO", "https://example.org/geo/")
	if err != nil {
		t.Fatal(err)
	}
	return []tabs.Tab{a, b, c}
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTabListModelDefaultsToAllPicked(t *testing.T) {
	m := NewTabListModel(pickerTabs(t))
	for i := range m.Tabs {
		if !m.Picked[i] {
			t.Errorf("tab %d not picked by default", i)
		}
	}
	if names := m.Names(); names != nil {
		t.Errorf("Names() before confirm = %v, want nil", names)
	}
}

func TestTabListModelToggleAndConfirm(t *testing.T) {
	var model tea.Model = NewTabListModel(pickerTabs(t))

	// Move to the second tab and drop it from the selection.
	model, _ = model.Update(key("j"))
	model, _ = model.Update(key(" "))
	model, _ = model.Update(key("enter"))

	m := model.(TabListModel)
	if !m.Confirmed {
		t.Fatal("enter did not confirm the selection")
	}
	names := m.Names()
	if len(names) != 2 || names[0] != "Summary" || names[1] != "GEO" {
		t.Errorf("Names() = %v, want [Summary GEO]", names)
	}
}

func TestTabListModelAllAndNone(t *testing.T) {
	var model tea.Model = NewTabListModel(pickerTabs(t))

	model, _ = model.Update(key("n"))
	model, _ = model.Update(key("enter"))
	if names := model.(TabListModel).Names(); len(names) != 0 {
		t.Errorf("after 'n': Names() = %v, want none", names)
	}

	model = NewTabListModel(pickerTabs(t))
	model, _ = model.Update(key("n"))
	model, _ = model.Update(key("a"))
	model, _ = model.Update(key("enter"))
	if names := model.(TabListModel).Names(); len(names) != 3 {
		t.Errorf("after 'a': Names() = %v, want all three", names)
	}
}

func TestTabListModelView(t *testing.T) {
	m := NewTabListModel(pickerTabs(t))
	view := m.View()

	for _, name := range []string{"Summary", "Sensitivity", "GEO"} {
		if !strings.Contains(view, name) {
			t.Errorf("view missing tab %q", name)
		}
	}
	if !strings.Contains(view, "[1/3]") {
		t.Errorf("view missing position indicator:\n%s", view)
	}
}
