package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/duncanmmacleod/gwsumm/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	var dirFlag string

	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the fragment cache",
	}
	cmd.PersistentFlags().StringVar(&dirFlag, "cache-dir", "", "fragment cache directory (default ~/.cache/gwsumm)")

	cmd.AddCommand(c.cacheClearCommand(&dirFlag))
	cmd.AddCommand(c.cacheInfoCommand(&dirFlag))
	cmd.AddCommand(c.cachePathCommand(&dirFlag))

	return cmd
}

// resolveCacheDir picks the flag value or the XDG default.
func resolveCacheDir(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	return cacheDir()
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand(dirFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all cached fragment fingerprints",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveCacheDir(*dirFlag)
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}

			if _, err := os.Stat(dir); os.IsNotExist(err) {
				printInfo("Cache is empty")
				return nil
			}

			fc, err := cache.NewFileCache(dir)
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			defer fc.Close()

			count, _, err := fc.Stats()
			if err != nil {
				return err
			}
			if err := fc.Clear(); err != nil {
				return err
			}

			printSuccess("Cleared %d cached entries", count)
			printDetail("Directory: %s", dir)
			return nil
		},
	}
}

// cacheInfoCommand creates the "cache info" subcommand.
func (c *CLI) cacheInfoCommand(dirFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show fragment cache statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveCacheDir(*dirFlag)
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}

			if _, err := os.Stat(dir); os.IsNotExist(err) {
				printInfo("Cache is empty")
				printDetail("Directory: %s", dir)
				return nil
			}

			fc, err := cache.NewFileCache(dir)
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			defer fc.Close()

			count, size, err := fc.Stats()
			if err != nil {
				return err
			}

			printKeyValue("Directory", dir)
			printKeyValue("Entries", fmt.Sprintf("%d", count))
			printKeyValue("Size", formatBytes(size))
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand(dirFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveCacheDir(*dirFlag)
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Println(dir)
			return nil
		},
	}
}

// formatBytes renders a byte count with a binary unit suffix.
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
