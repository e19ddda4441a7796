package tabs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/duncanmmacleod/gwsumm/pkg/errors"
	"github.com/duncanmmacleod/gwsumm/pkg/grid"
	"github.com/duncanmmacleod/gwsumm/pkg/plot"
	"github.com/duncanmmacleod/gwsumm/pkg/state"
)

func newTestStateTab(t *testing.T, states []state.State) *StateTab {
	t.Helper()
	tab, err := NewStateTab("Sensitivity", states, WithPath(t.TempDir()))
	if err != nil {
		t.Fatal(err)
	}
	return tab
}

func TestNewStateTabDefaults(t *testing.T) {
	tab := newTestStateTab(t, nil)
	if got := tab.States(); len(got) != 1 || !got[0].IsAll() {
		t.Errorf("States() = %v, want degenerate All", got)
	}
	if tab.switcher() != nil {
		t.Error("All-only tab should not expose a state switch")
	}
}

func TestFragmentPaths(t *testing.T) {
	tab := newTestStateTab(t, []state.State{"Locked", "Science Mode"})
	paths := tab.FragmentPaths()
	if len(paths) != 2 {
		t.Fatalf("len(paths) = %d", len(paths))
	}
	if filepath.Base(paths[0]) != "locked.html" {
		t.Errorf("paths[0] = %q", paths[0])
	}
	if filepath.Base(paths[1]) != "science_mode.html" {
		t.Errorf("paths[1] = %q", paths[1])
	}
	if filepath.Dir(paths[0]) != tab.OutputDir() {
		t.Errorf("fragments not in tab output dir: %q", paths[0])
	}
}

func TestWriteStateFiltering(t *testing.T) {
	tab := newTestStateTab(t, []state.State{"Locked", "Down"})
	if err := tab.AddPlot(&plot.Plot{Href: "shared.png"}); err != nil {
		t.Fatal(err)
	}
	if err := tab.AddPlot(&plot.Plot{Href: "locked-only.png", State: "Locked"}); err != nil {
		t.Fatal(err)
	}

	lockedPath, err := tab.WriteState("Locked")
	if err != nil {
		t.Fatalf("WriteState(Locked) error = %v", err)
	}
	downPath, err := tab.WriteState("Down")
	if err != nil {
		t.Fatalf("WriteState(Down) error = %v", err)
	}

	locked, err := os.ReadFile(lockedPath)
	if err != nil {
		t.Fatal(err)
	}
	down, err := os.ReadFile(downPath)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(string(locked), "locked-only.png") {
		t.Error("tagged plot missing from its own state fragment")
	}
	if strings.Contains(string(down), "locked-only.png") {
		t.Error("tagged plot leaked into another state's fragment")
	}
	if !strings.Contains(string(locked), "shared.png") || !strings.Contains(string(down), "shared.png") {
		t.Error("untagged plot must appear in every fragment")
	}
}

func TestWriteStateUnknown(t *testing.T) {
	tab := newTestStateTab(t, []state.State{"Locked"})
	if _, err := tab.WriteState("Down"); !errors.Is(err, errors.ErrCodeInvalidState) {
		t.Errorf("WriteState(unknown) error = %v, want invalid state", err)
	}
}

func TestWriteAllAndIndex(t *testing.T) {
	tab := newTestStateTab(t, []state.State{"Locked", "Down"})
	if err := tab.AddPlot("a.png"); err != nil {
		t.Fatal(err)
	}

	paths, err := tab.WriteAll()
	if err != nil {
		t.Fatalf("WriteAll() error = %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("WriteAll() wrote %d fragments, want 2", len(paths))
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("fragment %q not on disk: %v", p, err)
		}
	}

	if err := tab.WriteHTML(WriteOptions{}); err != nil {
		t.Fatalf("WriteHTML() error = %v", err)
	}
	index, err := os.ReadFile(tab.Index())
	if err != nil {
		t.Fatal(err)
	}
	got := string(index)

	// The default-loaded fragment is the first configured state.
	if !strings.Contains(got, `load("locked.html")`) {
		t.Errorf("index does not load the default fragment: %q", got)
	}
	// The switch control lists both states with the first active.
	if !strings.Contains(got, `class="state active"`) {
		t.Errorf("switch control missing active entry: %q", got)
	}
	if !strings.Contains(got, "down.html") {
		t.Errorf("switch control missing second state: %q", got)
	}
}

func TestWriteAllStopsAtFirstFailure(t *testing.T) {
	tab := newTestStateTab(t, []state.State{"Locked", "Down"})
	// Force a layout failure on render: odd centering remainder.
	tab.Layout = grid.Spec{{Count: 3, Divisor: 4}}
	if err := tab.AddPlot("a.png"); err != nil {
		t.Fatal(err)
	}

	if _, err := tab.WriteAll(); !errors.Is(err, errors.ErrCodeInvalidLayout) {
		t.Errorf("WriteAll() error = %v, want layout error", err)
	}
}
