package tabs

import (
	"github.com/duncanmmacleod/gwsumm/pkg/markup"
	"github.com/duncanmmacleod/gwsumm/pkg/span"
)

// StaticTab holds a fixed markup body with no grid and no states beyond
// the implicit default. It backs the informational pages of a run: the
// about page and the 404 page.
type StaticTab struct {
	Base

	// Body is the content of the page.
	Body *markup.Page
}

// NewStaticTab creates a static tab with the given body.
func NewStaticTab(name string, body *markup.Page, opts ...Option) (*StaticTab, error) {
	t := &StaticTab{Body: body}
	if err := t.init(t, name, opts...); err != nil {
		return nil, err
	}
	return t, nil
}

// WriteHTML writes the index document with the static body.
func (t *StaticTab) WriteHTML(opts WriteOptions) error {
	body := t.Body
	if body == nil {
		body = markup.NewPage()
	}
	_, err := t.writeIndex(body, nil, opts)
	return err
}

// NewAboutTab creates the about page for an archived run, describing how
// and when the pages were generated.
func NewAboutTab(s *span.Span, opts ...Option) (*StaticTab, error) {
	body := markup.NewPage()
	body.Open("div", markup.Class("row"))
	body.Open("div", markup.Class("col-md-12"))
	body.P("These pages were generated from a configured set of plot producers " +
		"and layouts. Each tab collects the figures for one aspect of detector " +
		"performance, rendered per observing state.")
	if s != nil {
		body.P("Data span: " + s.String())
	}
	body.Close()
	body.Close()
	return NewStaticTab("About", body, append(opts, WithSpan(s))...)
}

// NewError404Tab creates the page-not-found page. The top link points at
// the base of the run so a lost reader can recover.
func NewError404Tab(s *span.Span, top string, opts ...Option) (*StaticTab, error) {
	if top == "" {
		top = "/"
	}
	body := markup.NewPage()
	body.Open("div", markup.Class("alert alert-danger"))
	body.Open("p")
	body.Element("strong", "The page you are looking for doesn't exist")
	body.Close()
	body.P("This could be because the times you are looking for were never " +
		"processed, or because no page exists for the specific data products " +
		"you want.")
	body.P("Otherwise, you might be interested in one of the following:")
	body.Open("div", markup.Attr{Key: "style", Val: "padding-top: 10px;"})
	body.Element("a", "Take me back",
		markup.Attr{Key: "role", Val: "button"},
		markup.Class("btn btn-lg btn-info"),
		markup.Href("javascript:history.back()"))
	body.Element("a", "Take me to the top level",
		markup.Attr{Key: "role", Val: "button"},
		markup.Class("btn btn-lg btn-success"),
		markup.Href(top))
	body.Close()
	body.Close()
	t, err := NewStaticTab("404", body, append(opts, WithSpan(s))...)
	if err != nil {
		return nil, err
	}
	return t, nil
}
