package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCommand generates shell completion scripts. Tab completion is
// mostly useful on the workstations where operators iterate on summary
// configurations; batch nodes rarely want it.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for gwsumm and print it to stdout.

Load it for the current session:

  bash:       source <(gwsumm completion bash)
  zsh:        source <(gwsumm completion zsh)
  fish:       gwsumm completion fish | source
  powershell: gwsumm completion powershell | Out-String | Invoke-Expression

To install it permanently, redirect the script to your shell's completion
directory instead, e.g.

  gwsumm completion bash > /etc/bash_completion.d/gwsumm
  gwsumm completion zsh  > "${fpath[1]}/_gwsumm"
  gwsumm completion fish > ~/.config/fish/completions/gwsumm.fish

Zsh users without completion enabled need "autoload -U compinit; compinit"
in ~/.zshrc first.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}
