package tabs

import (
	"os"
	"path/filepath"

	"github.com/duncanmmacleod/gwsumm/pkg/errors"
	"github.com/duncanmmacleod/gwsumm/pkg/markup"
	"github.com/duncanmmacleod/gwsumm/pkg/span"
	"github.com/duncanmmacleod/gwsumm/pkg/state"
)

// StateTab renders one HTML fragment per observing state plus an index
// document that loads the first fragment and exposes a client-side
// switch between them.
//
// States are kept in configuration order; the first entry is the default
// view. A tab configured with no states gets the single degenerate
// state.All, which suppresses the switch control.
type StateTab struct {
	PlotTab

	states []state.State
}

// NewStateTab creates a state tab. With no states given, the degenerate
// All state is used.
func NewStateTab(name string, states []state.State, opts ...Option) (*StateTab, error) {
	t := &StateTab{}
	if err := t.init(t, name, opts...); err != nil {
		return nil, err
	}
	if len(states) == 0 {
		states = []state.State{state.All}
	}
	for _, s := range states {
		t.AddState(s)
	}
	return t, nil
}

// NewArchivedStateTab creates a state tab bound to an archived interval.
func NewArchivedStateTab(name string, sp *span.Span, states []state.State, opts ...Option) (*StateTab, error) {
	return NewStateTab(name, states, append(opts, WithSpan(sp))...)
}

// AddState appends a state to the ordered list.
func (t *StateTab) AddState(s state.State) {
	t.states = append(t.states, s)
}

// States returns the ordered state list. The first entry is the default
// view of the index document.
func (t *StateTab) States() []state.State {
	return t.states
}

// FragmentPath returns the output path of the fragment document for s,
// derived from the sanitized state name. Two states sanitizing to the
// same token share a path; the second write silently overwrites the
// first.
func (t *StateTab) FragmentPath(s state.State) string {
	return filepath.Join(t.OutputDir(), s.FragmentName())
}

// FragmentPaths returns the fragment paths in state order.
func (t *StateTab) FragmentPaths() []string {
	paths := make([]string, len(t.states))
	for i, s := range t.states {
		paths[i] = t.FragmentPath(s)
	}
	return paths
}

// WriteState writes the fragment document for one state and returns the
// written path. The fragment holds the plots visible in that state laid
// out on this tab's grid, between the tab's foreword and afterword.
// A state not in the tab's list fails with ErrCodeInvalidState.
func (t *StateTab) WriteState(s state.State) (string, error) {
	if !t.hasState(s) {
		return "", errors.New(errors.ErrCodeInvalidState,
			"state %q is not defined for tab %q", s, t.Name())
	}

	scaffold, err := t.scaffold(t.statePlots(s))
	if err != nil {
		return "", err
	}
	page := markup.NewPage()
	page.AddContent(t.Foreword)
	page.AddContent(scaffold)
	page.AddContent(t.Afterword)

	target := t.FragmentPath(s)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, err, "failed to create %s", filepath.Dir(target))
	}
	if err := os.WriteFile(target, []byte(page.String()), 0o644); err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, err, "failed to write %s", target)
	}
	return target, nil
}

// WriteAll writes every state fragment in list order, stopping at the
// first failure. Fragments already written stay on disk; there is no
// rollback.
func (t *StateTab) WriteAll() ([]string, error) {
	paths := make([]string, 0, len(t.states))
	for _, s := range t.states {
		p, err := t.WriteState(s)
		if err != nil {
			return paths, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

func (t *StateTab) hasState(s state.State) bool {
	for _, have := range t.states {
		if have == s {
			return true
		}
	}
	return false
}

// switcher builds the state-switch brand control, or nil when the tab has
// only the degenerate All state and no switch is needed.
func (t *StateTab) switcher() *markup.Page {
	if len(t.states) == 1 && t.states[0].IsAll() {
		return nil
	}
	entries := make([]markup.SwitchEntry, len(t.states))
	for i, s := range t.states {
		entries[i] = markup.SwitchEntry{Label: s.String(), Href: s.FragmentName()}
	}
	return markup.StateSwitcher(entries, 0)
}

// WriteHTML writes the index document for this tab: an empty mount point
// that lazily loads the default state's fragment, plus the switch
// control. The fragments themselves are written by WriteAll.
func (t *StateTab) WriteHTML(opts WriteOptions) error {
	content := markup.LoadFragment(t.states[0].FragmentName(), "")
	_, err := t.writeIndex(content, t.switcher(), opts)
	return err
}
