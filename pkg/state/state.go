// Package state defines the named observing states over which a tab's
// content is rendered.
//
// A state is an opaque label (e.g. "Locked", "Science", "All") identifying
// one variant of a page. Each state of a tab is written to its own HTML
// fragment, named after the sanitized state name, and loaded client-side
// into the tab's index page.
package state

import (
	"regexp"
	"strings"
)

// All is the degenerate state used when a tab configures no states of its
// own. It covers the full span with no filtering.
const All State = "All"

// State is the name of an observing state.
type State string

// String returns the state name.
func (s State) String() string {
	return string(s)
}

// IsAll reports whether this is the degenerate all-encompassing state.
func (s State) IsAll() bool {
	return s == All
}

// reCChar matches runs of characters that are unsafe in filenames.
var reCChar = regexp.MustCompile(`[^a-z0-9]+`)

// Sanitize converts a state name into a filesystem-safe token: the name is
// lowercased and every run of non-alphanumeric characters is collapsed into
// a single underscore. Sanitize is idempotent.
//
// Two distinct states can sanitize to the same token; callers writing one
// file per state will silently overwrite on such a collision.
func Sanitize(s State) string {
	return reCChar.ReplaceAllString(strings.ToLower(string(s)), "_")
}

// FragmentName returns the filename of the HTML fragment for this state,
// e.g. "locked.html" for state "Locked".
func (s State) FragmentName() string {
	return Sanitize(s) + ".html"
}
