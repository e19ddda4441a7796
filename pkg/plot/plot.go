// Package plot defines the pre-rendered figure artifacts arranged into
// summary pages.
//
// A Plot is consumed opaquely by the layout engine: it exposes a link
// target (Href), an image source (Src), and an optional observing state
// restricting which page variants it appears on. Plot generation itself
// (spectral computation, rendering) happens upstream and is out of scope
// here.
package plot

import (
	"net/url"
	"path"
	"strings"

	"github.com/duncanmmacleod/gwsumm/pkg/state"
)

// Plot is a single displayable figure.
type Plot struct {
	// Href is the link target opened when the figure is clicked.
	Href string

	// Src is the image source displayed inline. When empty, Href is used.
	Src string

	// State restricts this plot to a single observing state. The empty
	// string means the plot applies to every state of its tab.
	State state.State

	// Caption is optional display text attached to the figure viewer.
	Caption string

	// New marks a plot whose output has not been generated yet. Plots
	// coerced from bare URLs refer to existing files and are not new.
	New bool
}

// FromURL coerces a bare URL into a minimal Plot applying to every state.
// Relative URLs are path-normalized; absolute URLs are kept as given.
func FromURL(raw string) *Plot {
	href := raw
	if u, err := url.Parse(raw); err == nil && u.Host == "" {
		href = path.Clean(raw)
	}
	return &Plot{Href: href, New: false}
}

// Source returns the image source for display, falling back to Href when
// no separate source was set.
func (p *Plot) Source() string {
	if p.Src != "" {
		return p.Src
	}
	return p.Href
}

// MatchesState reports whether the plot should appear on the page variant
// for the given state. Plots with no state tag match every state.
func (p *Plot) MatchesState(s state.State) bool {
	return p.State == "" || p.State == s
}

// IsSVG reports whether the display source is an SVG, which is embedded
// via an iframe viewer rather than an inline image.
func (p *Plot) IsSVG() bool {
	return strings.HasSuffix(p.Source(), ".svg")
}

// IsPDF reports whether the display source is a PDF, which is swapped for
// its PNG preview when displayed inline.
func (p *Plot) IsPDF() bool {
	return strings.HasSuffix(p.Source(), ".pdf")
}
