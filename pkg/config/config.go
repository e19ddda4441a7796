// Package config loads summary-run definitions from TOML files and builds
// the tab tree they describe.
//
// # File format
//
// A run definition names the report, an optional archived span, and an
// ordered list of tabs:
//
//	title = "LIGO Hanford"
//
//	[span]
//	start = 1126259446
//	end = 1126345846
//	mode = "day"
//
//	[[tab]]
//	name = "Sensitivity"
//	type = "state"
//	states = ["Locked", "Down"]
//	layout = [1, [2, 3]]
//	plots = ["spectrum.png"]
//
//	  [[tab.plot]]
//	  href = "range.png"
//	  state = "Locked"
//
//	[[tab]]
//	name = "Range"
//	parent = "Sensitivity"
//	group = "Spectra"
//
// Tabs reference their parent by name; parents must be defined before
// their children. The layout value is parsed once here into a grid.Spec
// and is never evaluated as code.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/duncanmmacleod/gwsumm/pkg/errors"
	"github.com/duncanmmacleod/gwsumm/pkg/plot"
	"github.com/duncanmmacleod/gwsumm/pkg/span"
	"github.com/duncanmmacleod/gwsumm/pkg/state"
	"github.com/duncanmmacleod/gwsumm/pkg/tabs"
)

// Config is a parsed run definition.
type Config struct {
	Title  string      `toml:"title"`
	Output string      `toml:"output"`
	Span   *SpanConfig `toml:"span"`
	Tabs   []TabConfig `toml:"tab"`
}

// SpanConfig is the archived interval shared by the run's tabs.
type SpanConfig struct {
	Start int64  `toml:"start"`
	End   int64  `toml:"end"`
	Mode  string `toml:"mode"`
}

// TabConfig describes one tab of the tree.
type TabConfig struct {
	Name      string       `toml:"name"`
	Type      string       `toml:"type"`
	Parent    string       `toml:"parent"`
	Group     string       `toml:"group"`
	ShortName string       `toml:"shortname"`
	Index     string       `toml:"index"`
	URL       string       `toml:"url"`
	Foreword  string       `toml:"foreword"`
	Afterword string       `toml:"afterword"`
	States    []string     `toml:"states"`
	Layout    []any        `toml:"layout"`
	Plots     []string     `toml:"plots"`
	Plot      []PlotConfig `toml:"plot"`
}

// PlotConfig describes a plot with an optional state tag.
type PlotConfig struct {
	Href    string `toml:"href"`
	Src     string `toml:"src"`
	State   string `toml:"state"`
	Caption string `toml:"caption"`
}

// Tab types accepted in configuration.
const (
	TypePlots    = "plots"
	TypeState    = "state"
	TypeExternal = "external"
	TypeAbout    = "about"
	Type404      = "404"
)

// Load reads and parses a run definition from path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "cannot read %s", path)
	}
	return Parse(data)
}

// Parse parses a run definition from raw TOML.
func Parse(data []byte) (*Config, error) {
	var c Config
	if err := toml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "cannot parse configuration")
	}
	if len(c.Tabs) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "configuration defines no tabs")
	}
	return &c, nil
}

// resolvedType returns the effective tab type: an explicit type wins,
// otherwise tabs with states are state tabs and everything else is a
// plain plot tab.
func (t *TabConfig) resolvedType() string {
	if t.Type != "" {
		return t.Type
	}
	if len(t.States) > 0 {
		return TypeState
	}
	return TypePlots
}

// BuildTree constructs the tab tree described by the configuration,
// rooted at outputDir, and returns the top-level tabs in definition
// order. An empty outputDir falls back to the configured output field.
func (c *Config) BuildTree(outputDir string) ([]tabs.Tab, error) {
	if outputDir == "" {
		outputDir = c.Output
	}

	var runSpan *span.Span
	if c.Span != nil {
		var err error
		runSpan, err = span.New(c.Span.Start, c.Span.End, c.Span.Mode)
		if err != nil {
			return nil, err
		}
	}

	byName := make(map[string]tabs.Tab, len(c.Tabs))
	var roots []tabs.Tab
	for i := range c.Tabs {
		tc := &c.Tabs[i]
		if _, dup := byName[tc.Name]; dup {
			return nil, errors.New(errors.ErrCodeInvalidConfig,
				"duplicate tab name %q", tc.Name)
		}

		tab, err := tc.build(outputDir, runSpan)
		if err != nil {
			return nil, err
		}
		byName[tc.Name] = tab

		if tc.Parent == "" {
			roots = append(roots, tab)
			continue
		}
		parent, ok := byName[tc.Parent]
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidConfig,
				"tab %q references undefined parent %q", tc.Name, tc.Parent)
		}
		if err := parent.AddChild(tab); err != nil {
			return nil, err
		}
	}
	return roots, nil
}

// build constructs a single tab from its configuration.
func (t *TabConfig) build(outputDir string, runSpan *span.Span) (tabs.Tab, error) {
	opts := []tabs.Option{tabs.WithPath(outputDir)}
	if t.ShortName != "" {
		opts = append(opts, tabs.WithShortName(t.ShortName))
	}
	if t.Group != "" {
		opts = append(opts, tabs.WithGroup(t.Group))
	}
	if t.Index != "" {
		opts = append(opts, tabs.WithIndex(t.Index))
	}
	if runSpan != nil {
		opts = append(opts, tabs.WithSpan(runSpan))
	}

	switch t.resolvedType() {
	case TypeExternal:
		return tabs.NewExternalTab(t.Name, t.URL, opts...)

	case TypeAbout:
		return tabs.NewAboutTab(runSpan, opts...)

	case Type404:
		return tabs.NewError404Tab(runSpan, outputDir, opts...)

	case TypeState:
		states := make([]state.State, len(t.States))
		for i, s := range t.States {
			states[i] = state.State(s)
		}
		tab, err := tabs.NewStateTab(t.Name, states, opts...)
		if err != nil {
			return nil, err
		}
		if err := t.fillPlotTab(&tab.PlotTab); err != nil {
			return nil, err
		}
		return tab, nil

	case TypePlots:
		tab, err := tabs.NewPlotTab(t.Name, opts...)
		if err != nil {
			return nil, err
		}
		if err := t.fillPlotTab(tab); err != nil {
			return nil, err
		}
		return tab, nil

	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"unknown tab type %q for tab %q", t.Type, t.Name)
	}
}

// fillPlotTab applies the layout, content blocks and plot list shared by
// plot-bearing tab types.
func (t *TabConfig) fillPlotTab(tab *tabs.PlotTab) error {
	spec, err := ParseLayout(t.Layout)
	if err != nil {
		return err
	}
	tab.Layout = spec
	if t.Foreword != "" {
		tab.Foreword = t.Foreword
	}
	if t.Afterword != "" {
		tab.Afterword = t.Afterword
	}
	for _, u := range t.Plots {
		if err := tab.AddPlot(u); err != nil {
			return err
		}
	}
	for _, pc := range t.Plot {
		p := &plot.Plot{
			Href:    pc.Href,
			Src:     pc.Src,
			State:   state.State(pc.State),
			Caption: pc.Caption,
		}
		if err := tab.AddPlot(p); err != nil {
			return err
		}
	}
	return nil
}
