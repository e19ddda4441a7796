// Package tabs defines the tree of summary pages and writes their HTML.
//
// # Overview
//
// A [Tab] is one page of a summary report. Tabs form a tree: each tab owns
// an ordered list of children and keeps a non-owning back-reference to its
// parent, used only for navigation and output-path derivation. The tree is
// built once per run from configuration, has plots appended during the
// build phase, and is treated as read-only once writing starts.
//
// Variants:
//
//   - [PlotTab]: lays plots out on a 12-column grid.
//   - [StateTab]: a PlotTab rendered once per observing state, with a
//     client-side switch between the per-state fragments.
//   - [ExternalTab]: embeds a page from another server.
//   - [StaticTab]: a fixed markup body (about pages, the 404 page).
//
// Any variant can carry an archived [span.Span] describing the immutable
// time interval it covers; the span is attached by composition and changes
// no rendering behavior.
package tabs

import (
	"html/template"
	"os"
	"path/filepath"

	"github.com/duncanmmacleod/gwsumm/pkg/errors"
	"github.com/duncanmmacleod/gwsumm/pkg/markup"
	"github.com/duncanmmacleod/gwsumm/pkg/span"
	"github.com/duncanmmacleod/gwsumm/pkg/state"
)

// Tab is the interface satisfied by every page variant.
type Tab interface {
	// Name returns the display label for this tab.
	Name() string
	// ShortName returns the navigation label, falling back to Name.
	ShortName() string
	// Path returns the base output directory for the run.
	Path() string
	// Index returns the output path of this tab's index document.
	Index() string
	// Group returns the presentational grouping label for navigation.
	Group() string
	// Span returns the archived interval, or nil for live tabs.
	Span() *span.Span
	// Parent returns the owning tab, or nil at the root.
	Parent() Tab
	// Children returns the ordered child tabs.
	Children() []Tab
	// AddChild appends a child, enforcing the acyclic tree invariant.
	AddChild(Tab) error
	// WriteHTML writes this tab's index document and any fragments.
	WriteHTML(opts WriteOptions) error

	base() *Base
}

// WriteOptions carries the page chrome shared across a run.
type WriteOptions struct {
	Title    string   // level-1 heading; defaults from the tab's position
	Subtitle string   // level-2 heading
	Tabs     []Tab    // top-level tabs used to build the navigation bar
	CSS      []string // stylesheet URLs, defaulting to markup.DefaultCSS
	JS       []string // script URLs, defaulting to markup.DefaultJS
	Footer   string   // optional footer markup
}

// Base carries the tree bookkeeping shared by every variant. It is not a
// Tab itself; variants embed it and constructors bind the outer value via
// init.
type Base struct {
	self      Tab
	name      string
	shortName string
	path      string
	index     string
	group     string
	archived  *span.Span
	parent    Tab
	children  []Tab
}

// Option configures common tab fields at construction.
type Option func(*Base)

// WithPath sets the base output directory (shared across a run).
func WithPath(path string) Option {
	return func(b *Base) { b.path = path }
}

// WithIndex overrides the derived index document path.
func WithIndex(index string) Option {
	return func(b *Base) { b.index = index }
}

// WithShortName sets a shorter label for the navigation bar.
func WithShortName(name string) Option {
	return func(b *Base) { b.shortName = name }
}

// WithGroup places this tab under a named group in its parent's
// navigation dropdown.
func WithGroup(group string) Option {
	return func(b *Base) { b.group = group }
}

// WithSpan attaches an archived interval to the tab.
func WithSpan(s *span.Span) Option {
	return func(b *Base) { b.archived = s }
}

// init binds the outer variant and applies options. Every constructor
// must call it before the tab is used.
func (b *Base) init(self Tab, name string, opts ...Option) error {
	if err := errors.ValidateTabName(name); err != nil {
		return err
	}
	b.self = self
	b.name = name
	for _, opt := range opts {
		opt(b)
	}
	return nil
}

func (b *Base) base() *Base { return b }

// Name returns the display label.
func (b *Base) Name() string { return b.name }

// ShortName returns the navigation label, falling back to the name.
func (b *Base) ShortName() string {
	if b.shortName != "" {
		return b.shortName
	}
	return b.name
}

// Path returns the base output directory.
func (b *Base) Path() string { return b.path }

// Group returns the navigation group label.
func (b *Base) Group() string { return b.group }

// Span returns the archived interval, or nil.
func (b *Base) Span() *span.Span { return b.archived }

// Parent returns the owning tab, or nil.
func (b *Base) Parent() Tab { return b.parent }

// Children returns the ordered child tabs.
func (b *Base) Children() []Tab { return b.children }

// Index returns the output path of the index document. When not set
// explicitly it derives deterministically from the tab's position:
// <path>/<ancestor slugs>/<slug>/index.html, where slug is the sanitized
// lowercase name.
func (b *Base) Index() string {
	if b.index != "" {
		return b.index
	}
	elems := []string{state.Sanitize(state.State(b.name))}
	for p := b.parent; p != nil; p = p.Parent() {
		elems = append([]string{state.Sanitize(state.State(p.Name()))}, elems...)
	}
	if b.path != "" {
		elems = append([]string{b.path}, elems...)
	}
	elems = append(elems, "index.html")
	return filepath.Join(elems...)
}

// OutputDir returns the directory holding this tab's documents.
func (b *Base) OutputDir() string {
	return filepath.Dir(b.Index())
}

// AddChild appends child to this tab's ordered children and points the
// child's parent reference back here. Adding the tab itself or one of
// its ancestors fails with ErrCodeInvalidTab.
func (b *Base) AddChild(child Tab) error {
	if child == nil {
		return errors.New(errors.ErrCodeInvalidTab, "cannot add nil child tab")
	}
	if child.base() == b {
		return errors.New(errors.ErrCodeInvalidTab,
			"tab %q cannot be its own child", b.name)
	}
	for p := b.self; p != nil; p = p.Parent() {
		if p.base() == child.base() {
			return errors.New(errors.ErrCodeInvalidTab,
				"adding %q under %q would create a cycle", child.Name(), b.name)
		}
	}
	child.base().parent = b.self
	b.children = append(b.children, child)
	return nil
}

// NavLinks builds navigation-bar entries for the given top-level tabs and
// their children, preserving order and group labels.
func NavLinks(tabs []Tab) []markup.NavLink {
	links := make([]markup.NavLink, 0, len(tabs))
	for _, t := range tabs {
		l := markup.NavLink{Name: t.ShortName(), Href: t.Index()}
		for _, c := range t.Children() {
			l.Children = append(l.Children, markup.NavLink{
				Name:  c.ShortName(),
				Href:  c.Index(),
				Group: c.Group(),
			})
		}
		links = append(links, l)
	}
	return links
}

// writeIndex writes the full index document for this tab, wrapping the
// given content in the shared page chrome. It returns the written path.
func (b *Base) writeIndex(content *markup.Page, brand *markup.Page, opts WriteOptions) (string, error) {
	title, subtitle := opts.Title, opts.Subtitle
	if title == "" {
		if b.parent != nil {
			title = b.parent.Name()
			if subtitle == "" {
				subtitle = b.name
			}
		} else {
			title = b.name
		}
	}

	doc := markup.Doc{
		Title:    title,
		Subtitle: subtitle,
		CSS:      opts.CSS,
		JS:       opts.JS,
		Navbar:   template.HTML(markup.Navbar(NavLinks(opts.Tabs), brand).String()),
		Content:  template.HTML(content.String()),
		Footer:   template.HTML(opts.Footer),
	}

	target := b.Index()
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, err, "failed to create %s", filepath.Dir(target))
	}
	f, err := os.Create(target)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, err, "failed to create %s", target)
	}
	defer f.Close()
	if err := doc.Render(f); err != nil {
		return "", err
	}
	return target, nil
}
