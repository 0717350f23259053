// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newRootPathCommand creates the `tks root` command.
func newRootPathCommand(app *App) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "root",
		Short: "Print the root of the enclosing kernel tree",
		Long: `Print the root of the enclosing kernel tree.

Only the directory walk runs; the Makefile is not read, so this works on
trees with a missing or malformed version header.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := dir
			if start == "" {
				start = app.cfg.KernelDir.String()
			}
			root, err := app.Kernel.FindRoot(cmd.Context(), start)
			if err != nil {
				return app.kernelError(cmd, err, start)
			}
			_, err = fmt.Fprintln(app.stdout, root)
			return err
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "C", "", "start the search from this directory")
	_ = cmd.MarkFlagDirname("dir")
	return cmd
}
