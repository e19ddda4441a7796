package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/duncanmmacleod/gwsumm/pkg/pipeline"
)

// buildParams collects the build command flags.
type buildParams struct {
	output      string
	title       string
	selected    []string
	refresh     bool
	interactive bool
	cache       cacheOptions
}

// buildCommand creates the build command.
func (c *CLI) buildCommand() *cobra.Command {
	var p buildParams

	cmd := &cobra.Command{
		Use:   "build [config.toml]",
		Short: "Build the summary pages for a run configuration",
		Long: `Build the summary pages for a run configuration.

The build command reads a TOML run configuration, assembles the tab tree,
and writes one index document per tab plus one HTML fragment per observing
state under the output directory. A manifest.json describing the run is
written next to the pages.

State fragments whose content is unchanged since the previous run are
skipped when the fragment cache is enabled. Use --refresh to rewrite
everything regardless.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBuild(cmd.Context(), args[0], p)
		},
	}

	cmd.Flags().StringVarP(&p.output, "output", "o", ".", "directory to write pages under")
	cmd.Flags().StringVar(&p.title, "title", "", "override the page heading for every tab")
	cmd.Flags().StringSliceVar(&p.selected, "select", nil, "build only the named top-level tabs")
	cmd.Flags().BoolVarP(&p.interactive, "interactive", "i", false, "pick the tabs to build interactively")
	cmd.Flags().BoolVar(&p.refresh, "refresh", false, "rewrite fragments even when unchanged")
	p.cache.register(cmd)

	return cmd
}

// runBuild executes a full build run.
func (c *CLI) runBuild(ctx context.Context, configPath string, p buildParams) error {
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(ctx, p.cache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	defer runner.Close()

	opts := pipeline.Options{
		ConfigPath: configPath,
		OutputDir:  p.output,
		Title:      p.title,
		Select:     p.selected,
		Refresh:    p.refresh,
		Logger:     logger,
	}

	if p.interactive {
		roots, err := runner.Assemble(opts)
		if err != nil {
			return err
		}
		names, err := pickTabs(roots)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			printInfo("Nothing selected")
			return nil
		}
		opts.Select = names
	}

	track := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, "Building summary pages...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Build failed")
		return err
	}
	spinner.Stop()
	track.done(fmt.Sprintf("Wrote %d files", len(result.Written)))

	printSuccess("Built %d tabs under %s", len(result.Tabs), p.output)
	printStats(result.Stats.TabCount, len(result.Written), len(result.Skipped))
	for _, t := range result.Tabs {
		printFile(t.Index())
	}
	printNextStep("Inspect the tree", fmt.Sprintf("gwsumm tree %s", configPath))
	return nil
}
