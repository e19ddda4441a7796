package pipeline

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/duncanmmacleod/gwsumm/pkg/buildinfo"
	"github.com/duncanmmacleod/gwsumm/pkg/errors"
)

// Manifest records what a build run produced. It is written as JSON next
// to the generated pages so later runs and operators can see what a run
// touched without re-reading the tree.
type Manifest struct {
	RunID       string    `json:"run_id"`
	Generator   string    `json:"generator"`
	GeneratedAt time.Time `json:"generated_at"`
	ConfigPath  string    `json:"config_path"`
	OutputDir   string    `json:"output_dir"`
	Tabs        int       `json:"tabs"`
	Fragments   int       `json:"fragments"`
	Written     []string  `json:"written"`
	Skipped     []string  `json:"skipped,omitempty"`
	BuildTime   string    `json:"build_time"`
	WriteTime   string    `json:"write_time"`
}

// NewManifest assembles the manifest for a finished run.
func NewManifest(opts Options, result *Result) Manifest {
	return Manifest{
		RunID:       result.RunID,
		Generator:   buildinfo.String(),
		GeneratedAt: time.Now().UTC(),
		ConfigPath:  opts.ConfigPath,
		OutputDir:   opts.OutputDir,
		Tabs:        result.Stats.TabCount,
		Fragments:   result.Stats.FragmentCount,
		Written:     result.Written,
		Skipped:     result.Skipped,
		BuildTime:   result.Stats.BuildTime.String(),
		WriteTime:   result.Stats.WriteTime.String(),
	}
}

// WriteManifest writes a manifest as indented JSON.
func WriteManifest(m Manifest, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "encode manifest")
	}
	return nil
}

// ExportManifest writes a manifest to a JSON file at path.
// This is a convenience wrapper around [WriteManifest] for file-based output.
func ExportManifest(m Manifest, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	defer f.Close()
	return WriteManifest(m, f)
}
