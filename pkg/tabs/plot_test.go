package tabs

import (
	"strings"
	"testing"

	"github.com/duncanmmacleod/gwsumm/pkg/errors"
	"github.com/duncanmmacleod/gwsumm/pkg/grid"
	"github.com/duncanmmacleod/gwsumm/pkg/plot"
)

func TestAddPlot(t *testing.T) {
	tab, err := NewPlotTab("Spectra")
	if err != nil {
		t.Fatal(err)
	}

	if err := tab.AddPlot("plots/spectrum.png"); err != nil {
		t.Fatalf("AddPlot(url) error = %v", err)
	}
	if err := tab.AddPlot(&plot.Plot{Href: "plots/range.png", State: "Locked"}); err != nil {
		t.Fatalf("AddPlot(*Plot) error = %v", err)
	}
	if err := tab.AddPlot(plot.Plot{Href: "plots/asd.png"}); err != nil {
		t.Fatalf("AddPlot(Plot) error = %v", err)
	}

	if err := tab.AddPlot(42); !errors.Is(err, errors.ErrCodeInvalidPlot) {
		t.Errorf("AddPlot(42) error = %v, want invalid plot", err)
	}
	if err := tab.AddPlot(nil); !errors.Is(err, errors.ErrCodeInvalidPlot) {
		t.Errorf("AddPlot(nil) error = %v, want invalid plot", err)
	}

	if got := len(tab.Plots()); got != 3 {
		t.Errorf("len(Plots()) = %d, want 3", got)
	}
	// Coerced URL plots apply to every state.
	if tab.Plots()[0].State != "" {
		t.Errorf("coerced plot state = %q, want none", tab.Plots()[0].State)
	}
}

func TestRenderGrid(t *testing.T) {
	tab, err := NewPlotTab("Spectra")
	if err != nil {
		t.Fatal(err)
	}
	tab.Layout = grid.Spec{{Count: 1}, {Count: 2, Divisor: 3}}
	for _, u := range []string{"a.png", "b.png", "c.png", "d.png"} {
		if err := tab.AddPlot(u); err != nil {
			t.Fatal(err)
		}
	}

	page, err := tab.Render(nil)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	got := page.String()

	if strings.Count(got, `<div class="row">`) != 3 {
		t.Errorf("want 3 rows, got: %q", got)
	}
	if !strings.Contains(got, `class="col-md-12"`) {
		t.Errorf("full-width column missing: %q", got)
	}
	if strings.Count(got, `class="col-md-4 col-md-offset-2"`) != 2 {
		t.Errorf("centered row starts missing: %q", got)
	}
	if strings.Count(got, "<img") != 4 {
		t.Errorf("want 4 images, got: %q", got)
	}
}

func TestRenderComposesContent(t *testing.T) {
	tab, err := NewPlotTab("Spectra")
	if err != nil {
		t.Fatal(err)
	}
	tab.Foreword = "Daily overview"
	tab.Afterword = "<div class=\"after\">done</div>"
	if err := tab.AddPlot("a.png"); err != nil {
		t.Fatal(err)
	}

	page, err := tab.Render(nil)
	if err != nil {
		t.Fatal(err)
	}
	got := page.String()

	fore := strings.Index(got, "<p>Daily overview</p>")
	grid := strings.Index(got, "scaffold well")
	after := strings.Index(got, `class="after"`)
	if fore == -1 || grid == -1 || after == -1 {
		t.Fatalf("missing sections in: %q", got)
	}
	if !(fore < grid && grid < after) {
		t.Errorf("sections out of order in: %q", got)
	}
}

func TestRenderLayoutError(t *testing.T) {
	tab, err := NewPlotTab("Bad")
	if err != nil {
		t.Fatal(err)
	}
	tab.Layout = grid.Spec{{Count: 13}}
	if err := tab.AddPlot("a.png"); err != nil {
		t.Fatal(err)
	}

	if _, err := tab.Render(nil); !errors.Is(err, errors.ErrCodeInvalidLayout) {
		t.Errorf("Render() error = %v, want layout error", err)
	}
}

func TestWritePlotFormats(t *testing.T) {
	tab, err := NewPlotTab("Formats")
	if err != nil {
		t.Fatal(err)
	}
	if err := tab.AddPlot("a.svg"); err != nil {
		t.Fatal(err)
	}
	if err := tab.AddPlot("b.pdf"); err != nil {
		t.Fatal(err)
	}

	page, err := tab.Render(nil)
	if err != nil {
		t.Fatal(err)
	}
	got := page.String()

	if !strings.Contains(got, "a.html?iframe") {
		t.Errorf("svg not linked through iframe viewer: %q", got)
	}
	if !strings.Contains(got, `src="b.png"`) {
		t.Errorf("pdf not swapped for png preview: %q", got)
	}
}
