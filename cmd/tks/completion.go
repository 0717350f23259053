// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/spf13/cobra"

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

// newCompletionCommand creates `tks completion <shell>`.
func newCompletionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion <shell>",
		Short: "Generate shell completion scripts",
		Long: `Generate a completion script for bash, zsh, fish or powershell.

` + mutedStyle.Render("Examples:") + `
  eval "$(tks completion bash)"
  tks completion zsh > "${fpath[1]}/_tks"
  tks completion fish > ~/.config/fish/completions/tks.fish
  tks completion powershell | Out-String | Invoke-Expression`,
		DisableFlagsInUseLine: true,
		ValidArgs:             completionShells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, out := cmd.Root(), cmd.OutOrStdout()
			switch args[0] {
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(out)
			default:
				return root.GenBashCompletionV2(out, true)
			}
		},
	}
}
