// Package cli implements the gwsumm command-line interface.
//
// This package provides commands for building detector summary web
// pages from TOML run configurations, inspecting the configured tab
// tree, and managing the fragment cache. The CLI is built using cobra
// and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - build: Write every index document and state fragment for a run
//   - tree: Print or render the configured tab tree
//   - cache: Manage the fragment cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context to allow structured progress
// tracking.
//
// # Example
//
//	import "github.com/duncanmmacleod/gwsumm/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/duncanmmacleod/gwsumm/pkg/buildinfo"
	"github.com/duncanmmacleod/gwsumm/pkg/cache"
	"github.com/duncanmmacleod/gwsumm/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "gwsumm"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "gwsumm builds detector summary web pages",
		Long:         `gwsumm assembles a tree of summary tabs from a TOML run configuration and writes a static web site: one index document per tab, one HTML fragment per observing state, plots arranged on a responsive 12-column grid.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.buildCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// cacheOptions carries the cache-selection flags shared by commands.
type cacheOptions struct {
	noCache  bool
	cacheDir string
	redis    string
}

// register adds the cache flags to cmd.
func (o *cacheOptions) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.noCache, "no-cache", false, "disable the fragment cache")
	cmd.Flags().StringVar(&o.cacheDir, "cache-dir", "", "fragment cache directory (default ~/.cache/gwsumm)")
	cmd.Flags().StringVar(&o.redis, "redis", "", "redis address for a shared fragment cache (host:port)")
}

// newRunner creates a build runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, opts cacheOptions) (*pipeline.Runner, error) {
	store, err := newCache(ctx, opts)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, c.Logger), nil
}

func newCache(ctx context.Context, opts cacheOptions) (cache.Cache, error) {
	if opts.noCache {
		return cache.NewNullCache(), nil
	}
	if opts.redis != "" {
		return cache.NewRedisCache(ctx, opts.redis)
	}
	dir := opts.cacheDir
	if dir == "" {
		var err error
		dir, err = cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/gwsumm/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
