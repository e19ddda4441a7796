package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/duncanmmacleod/gwsumm/pkg/pipeline"
	"github.com/duncanmmacleod/gwsumm/pkg/tabs"
	"github.com/duncanmmacleod/gwsumm/pkg/treeviz"
)

// Tree output formats.
const (
	treeFormatText = "text"
	treeFormatDOT  = "dot"
	treeFormatSVG  = "svg"
)

// treeCommand creates the tree command for inspecting a run configuration.
func (c *CLI) treeCommand() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "tree [config.toml]",
		Short: "Print or render the configured tab tree",
		Long: `Print or render the configured tab tree.

The tree command assembles the tab tree from a run configuration without
writing any pages, then prints it as indented text. With --format dot or
svg it renders the tree as a Graphviz diagram instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTree(cmd.Context(), args[0], format, output)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", treeFormatText, "output format: text, dot, svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file for dot/svg (default stdout, tree.svg)")

	return cmd
}

// runTree assembles the tree and emits it in the requested format.
func (c *CLI) runTree(ctx context.Context, configPath, format, output string) error {
	logger := loggerFromContext(ctx)
	runner := pipeline.NewRunner(nil, logger)
	defer runner.Close()

	roots, err := runner.Assemble(pipeline.Options{ConfigPath: configPath})
	if err != nil {
		return err
	}

	switch format {
	case treeFormatText:
		for _, t := range roots {
			printTab(t, 0)
		}
		return nil
	case treeFormatDOT:
		dot := treeviz.ToDOT(roots)
		if output == "" {
			fmt.Print(dot)
			return nil
		}
		if err := os.WriteFile(output, []byte(dot), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
		printFile(output)
		return nil
	case treeFormatSVG:
		data, err := treeviz.RenderSVG(treeviz.ToDOT(roots))
		if err != nil {
			return err
		}
		if output == "" {
			output = "tree.svg"
		}
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
		printSuccess("Rendered tab tree")
		printFile(output)
		return nil
	default:
		return fmt.Errorf("invalid format: %q (must be one of: text, dot, svg)", format)
	}
}

// printTab prints one tab and its children as indented styled text.
func printTab(t tabs.Tab, depth int) {
	indent := strings.Repeat("  ", depth)

	line := indent + StyleHighlight.Render(t.Name())
	if detail := tabDetail(t); detail != "" {
		line += " " + StyleDim.Render(detail)
	}
	fmt.Println(line)

	for _, child := range t.Children() {
		printTab(child, depth+1)
	}
}

// tabDetail summarizes a tab variant for the text listing.
func tabDetail(t tabs.Tab) string {
	switch v := t.(type) {
	case *tabs.StateTab:
		names := make([]string, len(v.States()))
		for i, s := range v.States() {
			names[i] = string(s)
		}
		return fmt.Sprintf("[states: %s]", strings.Join(names, ", "))
	case *tabs.PlotTab:
		return fmt.Sprintf("[%d plots]", len(v.Plots()))
	case *tabs.ExternalTab:
		return "[external]"
	default:
		return ""
	}
}
