package tabs

import (
	"fmt"
	"strings"

	"github.com/duncanmmacleod/gwsumm/pkg/errors"
	"github.com/duncanmmacleod/gwsumm/pkg/grid"
	"github.com/duncanmmacleod/gwsumm/pkg/markup"
	"github.com/duncanmmacleod/gwsumm/pkg/plot"
	"github.com/duncanmmacleod/gwsumm/pkg/span"
	"github.com/duncanmmacleod/gwsumm/pkg/state"
)

// PlotTab lays a list of plots out on the 12-column grid.
type PlotTab struct {
	Base

	// Layout is the row-descriptor sequence for the grid. When empty, a
	// default is chosen from the number of plots at render time.
	Layout grid.Spec

	// Foreword and Afterword hold content placed before and after the
	// plot grid: either a *markup.Page or a prose string.
	Foreword  any
	Afterword any

	plots []*plot.Plot
}

// NewPlotTab creates a plot tab with the given name.
func NewPlotTab(name string, opts ...Option) (*PlotTab, error) {
	t := &PlotTab{}
	if err := t.init(t, name, opts...); err != nil {
		return nil, err
	}
	return t, nil
}

// NewArchivedPlotTab creates a plot tab bound to an archived interval.
func NewArchivedPlotTab(name string, s *span.Span, opts ...Option) (*PlotTab, error) {
	return NewPlotTab(name, append(opts, WithSpan(s))...)
}

// AddPlot appends a plot to this tab. The value may be a *plot.Plot or a
// bare URL string, which is coerced into a plot applying to every state.
// Any other type fails with ErrCodeInvalidPlot.
func (t *PlotTab) AddPlot(v any) error {
	switch p := v.(type) {
	case *plot.Plot:
		if p == nil {
			return errors.New(errors.ErrCodeInvalidPlot, "cannot append nil plot")
		}
		t.plots = append(t.plots, p)
	case plot.Plot:
		t.plots = append(t.plots, &p)
	case string:
		t.plots = append(t.plots, plot.FromURL(p))
	default:
		return errors.New(errors.ErrCodeInvalidPlot,
			"cannot append plot of type %T", v)
	}
	return nil
}

// Plots returns the ordered plot list.
func (t *PlotTab) Plots() []*plot.Plot {
	return t.plots
}

// statePlots returns the plots visible in state s: those with no state
// tag plus those tagged with s itself.
func (t *PlotTab) statePlots(s state.State) []*plot.Plot {
	filtered := make([]*plot.Plot, 0, len(t.plots))
	for _, p := range t.plots {
		if p.MatchesState(s) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// scaffold builds the responsive grid markup for the given plots.
func (t *PlotTab) scaffold(plots []*plot.Plot) (*markup.Page, error) {
	placements, err := grid.Partition(len(plots), t.Layout)
	if err != nil {
		return nil, err
	}

	page := markup.NewPage()
	page.Open("div", markup.Class("scaffold well"))
	for i, pl := range placements {
		p := plots[i]
		if pl.RowStart {
			page.Open("div", markup.Class("row"))
		}
		class := fmt.Sprintf("col-md-%d", pl.Width)
		if pl.Offset > 0 {
			class = fmt.Sprintf("col-md-%d col-md-offset-%d", pl.Width, pl.Offset)
		}
		page.Open("div", markup.Class(class))
		writePlot(page, p)
		page.Close()
		if pl.RowEnd {
			page.Close()
		}
	}
	page.Close()
	return page, nil
}

// writePlot emits the anchor and image for one plot. SVG sources open in
// an iframe viewer; PDF sources display their PNG preview inline.
func writePlot(page *markup.Page, p *plot.Plot) {
	attrs := []markup.Attr{markup.Class("fancybox plot"), {Key: "data-fancybox-group", Val: "1"}}
	href := p.Href
	if p.IsSVG() {
		href = strings.Replace(p.Href, ".svg", ".html", 1) + "?iframe"
		attrs = append(attrs, markup.Attr{Key: "data-fancybox-type", Val: "iframe"})
	}
	page.Open("a", append([]markup.Attr{markup.Href(href)}, attrs...)...)
	src := p.Source()
	if p.IsPDF() {
		src = strings.Replace(src, ".pdf", ".png", 1)
	}
	page.Img(src, markup.Attr{Key: "alt", Val: p.Caption})
	page.Close()
}

// Render composes the inner document for this tab: foreword, then the
// injected content (may be nil), then the plot grid, then the afterword.
// It mutates nothing; repeated calls produce identical markup.
func (t *PlotTab) Render(content *markup.Page) (*markup.Page, error) {
	scaffold, err := t.scaffold(t.plots)
	if err != nil {
		return nil, err
	}
	page := markup.NewPage()
	page.AddContent(t.Foreword)
	if content != nil {
		page.AddContent(content)
	}
	page.AddContent(scaffold)
	page.AddContent(t.Afterword)
	return page, nil
}

// WriteHTML writes the index document with the plot grid inline.
func (t *PlotTab) WriteHTML(opts WriteOptions) error {
	content, err := t.Render(nil)
	if err != nil {
		return err
	}
	_, err = t.writeIndex(content, nil, opts)
	return err
}
