package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for s2datasets. Dataset names are
completed for the commands that take one.

To load completions:

Bash:
  $ source <(s2datasets completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ s2datasets completion bash > /etc/bash_completion.d/s2datasets
  # macOS:
  $ s2datasets completion bash > $(brew --prefix)/etc/bash_completion.d/s2datasets

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ s2datasets completion zsh > "${fpath[1]}/_s2datasets"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ s2datasets completion fish | source

  # To load completions for each session, execute once:
  $ s2datasets completion fish > ~/.config/fish/completions/s2datasets.fish

PowerShell:
  PS> s2datasets completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> s2datasets completion powershell > s2datasets.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(output)
			case "zsh":
				return cmd.Root().GenZshCompletion(output)
			case "fish":
				return cmd.Root().GenFishCompletion(output, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(output)
			}
			return nil
		},
	}

	return cmd
}
