package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/duncanmmacleod/gwsumm/pkg/cache"
	"github.com/duncanmmacleod/gwsumm/pkg/config"
	"github.com/duncanmmacleod/gwsumm/pkg/errors"
	"github.com/duncanmmacleod/gwsumm/pkg/markup"
	"github.com/duncanmmacleod/gwsumm/pkg/observability"
	"github.com/duncanmmacleod/gwsumm/pkg/state"
	"github.com/duncanmmacleod/gwsumm/pkg/tabs"
)

// Runner encapsulates build execution with fragment caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store build results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Logger: logger,
	}
}

// Execute runs the complete configure → assemble → write pipeline.
// A manifest describing the run is written next to the output.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{
		RunID: uuid.NewString(),
	}

	// Stage 1: Assemble the tab tree from configuration
	buildStart := time.Now()
	observability.Build().OnAssembleStart(ctx, opts.ConfigPath)
	roots, err := r.Assemble(opts)
	observability.Build().OnAssembleComplete(ctx, opts.ConfigPath, len(roots), time.Since(buildStart), err)
	if err != nil {
		return nil, err
	}
	result.Tabs = roots
	result.Stats.BuildTime = time.Since(buildStart)

	opts.Logger.Info("assembled tab tree",
		"config", opts.ConfigPath,
		"tabs", len(roots),
		"duration", result.Stats.BuildTime)

	// Stage 2: Write every index document and state fragment
	writeStart := time.Now()
	observability.Build().OnWriteStart(ctx, opts.OutputDir)
	wopts := tabs.WriteOptions{Title: opts.Title, Tabs: roots}
	for _, t := range roots {
		if err := r.writeTab(ctx, t, wopts, opts.Refresh, result); err != nil {
			observability.Build().OnWriteComplete(ctx, opts.OutputDir,
				len(result.Written), len(result.Skipped), time.Since(writeStart), err)
			return nil, err
		}
	}
	result.Stats.WriteTime = time.Since(writeStart)
	observability.Build().OnWriteComplete(ctx, opts.OutputDir,
		len(result.Written), len(result.Skipped), result.Stats.WriteTime, nil)

	opts.Logger.Info("wrote summary pages",
		"written", len(result.Written),
		"skipped", len(result.Skipped),
		"duration", result.Stats.WriteTime)

	// Stage 3: Export the run manifest
	manifest := NewManifest(opts, result)
	manifestPath := filepath.Join(opts.OutputDir, "manifest.json")
	if err := ExportManifest(manifest, manifestPath); err != nil {
		return nil, err
	}
	result.Written = append(result.Written, manifestPath)

	return result, nil
}

// Assemble loads the run configuration and builds the tab tree, applying
// the Select filter when present.
func (r *Runner) Assemble(opts Options) ([]tabs.Tab, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	roots, err := cfg.BuildTree(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if len(opts.Select) == 0 {
		return roots, nil
	}
	return selectTabs(roots, opts.Select)
}

// writeTab writes one tab and recurses into its children. State fragments
// with unchanged fingerprints are skipped when the file is still on disk.
func (r *Runner) writeTab(ctx context.Context, t tabs.Tab, wopts tabs.WriteOptions, refresh bool, result *Result) error {
	result.Stats.TabCount++

	if st, ok := t.(*tabs.StateTab); ok {
		if err := r.writeFragments(ctx, st, refresh, result); err != nil {
			return err
		}
	}

	if err := t.WriteHTML(wopts); err != nil {
		return err
	}
	result.Written = append(result.Written, t.Index())

	for _, child := range t.Children() {
		if err := r.writeTab(ctx, child, wopts, refresh, result); err != nil {
			return err
		}
	}
	return nil
}

// writeFragments writes the state fragments for one tab, consulting the
// fragment cache for unchanged content.
func (r *Runner) writeFragments(ctx context.Context, st *tabs.StateTab, refresh bool, result *Result) error {
	for _, s := range st.States() {
		result.Stats.FragmentCount++
		target := st.FragmentPath(s)
		key := fragmentKey(st, s)

		if !refresh && r.unchanged(ctx, key, target) {
			result.Skipped = append(result.Skipped, target)
			observability.Build().OnFragmentSkipped(ctx, target)
			r.Logger.Debug("fragment unchanged", "path", target, "state", s)
			continue
		}

		written, err := st.WriteState(s)
		if err != nil {
			return err
		}
		result.Written = append(result.Written, written)
		observability.Build().OnFragmentWritten(ctx, written)
		_ = r.Cache.Set(ctx, key, []byte(written), 0)
		observability.Cache().OnCacheSet(ctx, "fragment", len(written))
	}
	return nil
}

// unchanged reports whether key is cached and the file it points at is
// still present on disk.
func (r *Runner) unchanged(ctx context.Context, key, target string) bool {
	_, hit, err := r.Cache.Get(ctx, key)
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, "fragment")
		return false
	}
	observability.Cache().OnCacheHit(ctx, "fragment")
	_, err = os.Stat(target)
	return err == nil
}

// fragmentKey derives the cache key for one state fragment. The
// fingerprint covers everything that shapes the rendered document:
// state, layout, plots, foreword/afterword content, and the archived
// span.
func fragmentKey(st *tabs.StateTab, s state.State) string {
	parts := []any{
		string(s),
		st.Layout,
		st.Plots(),
		contentText(st.Foreword),
		contentText(st.Afterword),
	}
	if sp := st.Span(); sp != nil {
		parts = append(parts, sp.String())
	}
	return cache.FragmentKey(st.FragmentPath(s), parts...)
}

// contentText flattens a foreword/afterword block to a stable string
// for fingerprinting.
func contentText(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case *markup.Page:
		return c.String()
	default:
		return fmt.Sprint(c)
	}
}

// selectTabs filters roots to the named tabs, matching display or short
// names case-insensitively.
func selectTabs(roots []tabs.Tab, names []string) ([]tabs.Tab, error) {
	var selected []tabs.Tab
	for _, name := range names {
		found := false
		for _, t := range roots {
			if strings.EqualFold(t.Name(), name) || strings.EqualFold(t.ShortName(), name) {
				selected = append(selected, t)
				found = true
				break
			}
		}
		if !found {
			return nil, errors.New(errors.ErrCodeTabNotFound, "no top-level tab named %q", name)
		}
	}
	return selected, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
