package tabs

import (
	"fmt"
	"html"
	"strings"

	"github.com/duncanmmacleod/gwsumm/pkg/errors"
	"github.com/duncanmmacleod/gwsumm/pkg/markup"
	"github.com/duncanmmacleod/gwsumm/pkg/span"
)

// ExternalTab links a page from another server into the summary, embedded
// in an iframe viewer. It carries no plots and no grid.
type ExternalTab struct {
	Base

	// URL is the external content to embed.
	URL string
}

// NewExternalTab creates an external tab pointing at url.
func NewExternalTab(name, url string, opts ...Option) (*ExternalTab, error) {
	if err := errors.ValidateURL(url); err != nil {
		return nil, err
	}
	t := &ExternalTab{URL: url}
	if err := t.init(t, name, opts...); err != nil {
		return nil, err
	}
	return t, nil
}

// NewArchivedExternalTab creates an external tab bound to an archived
// interval.
func NewArchivedExternalTab(name, url string, s *span.Span, opts ...Option) (*ExternalTab, error) {
	return NewExternalTab(name, url, append(opts, WithSpan(s))...)
}

// Render wraps the external URL in the iframe load directive.
func (t *ExternalTab) Render() *markup.Page {
	return markup.LoadExternal(t.URL, "")
}

// WriteHTML writes the index document embedding the external page, with a
// footer pointing back at the original source.
func (t *ExternalTab) WriteHTML(opts WriteOptions) error {
	if opts.Footer == "" {
		href := strings.Fields(t.URL)[0]
		opts.Footer = fmt.Sprintf(
			`This page contains data from an external source, <a class="reference" href="%s">click here to view the original</a>.`,
			html.EscapeString(href))
	}
	_, err := t.writeIndex(t.Render(), nil, opts)
	return err
}
