// Package pipeline orchestrates a complete summary-page build: load the
// run configuration, assemble the tab tree, and write every index
// document and state fragment under the output directory.
//
// The [Runner] adds fingerprint caching on top of the tab writers: a
// state fragment whose content fingerprint (states, layout, span,
// plots) is unchanged since the previous run is skipped when the file
// is still on disk. Archived tabs benefit the most, since their spans
// pin the fingerprint across runs.
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/duncanmmacleod/gwsumm/pkg/errors"
	"github.com/duncanmmacleod/gwsumm/pkg/tabs"
)

// Options contains all configuration for a build run.
// This struct supports JSON serialization for run manifests.
type Options struct {
	// ConfigPath is the TOML run configuration to build from.
	ConfigPath string `json:"config_path"`

	// OutputDir is the directory pages are written under. Defaults to ".".
	OutputDir string `json:"output_dir,omitempty"`

	// Title overrides the page heading for every tab. When empty, each
	// tab derives its heading from its position in the tree.
	Title string `json:"title,omitempty"`

	// Select restricts the build to the named top-level tabs.
	Select []string `json:"select,omitempty"`

	// Refresh bypasses the fragment cache and rewrites everything.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.ConfigPath == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "config path is required")
	}
	if o.OutputDir == "" {
		o.OutputDir = "."
	}
	if err := errors.ValidateOutputPath(o.OutputDir); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// Result contains the outputs of a build run.
type Result struct {
	// RunID uniquely identifies this run in the manifest.
	RunID string

	// Tabs holds the top-level tabs that were built.
	Tabs []tabs.Tab

	// Written lists every file written during this run, in write order.
	Written []string

	// Skipped lists fragment files left untouched because their
	// fingerprints were unchanged.
	Skipped []string

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains build execution statistics.
type Stats struct {
	TabCount      int
	FragmentCount int
	BuildTime     time.Duration
	WriteTime     time.Duration
}
