// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tks/tks/internal/config"
)

// newConfigCommand creates the `tks config` command tree.
// Subcommands that read configuration use what the root command loaded.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage tks configuration",
		Long: `Manage tks configuration.

Configuration is stored in:
  - Linux: ~/.config/tks/config.cue
  - macOS: ~/Library/Application Support/tks/config.cue
  - Windows: %APPDATA%\tks\config.cue

A config.cue in the current directory is used when the file above is absent.
TKS_KERNEL_DIR, TKS_OUTPUT_FORMAT, TKS_UI_VERBOSE and TKS_UI_COLOR_SCHEME
override file values.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(app.stdout, app.cfg, app.cfgPath)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(app.stdout)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(app.stdout)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(app.stdout, config.GenerateCUE(app.cfg))
			return err
		},
	})

	return cfgCmd
}

func showConfig(w io.Writer, cfg *config.Config, cfgPath string) error {
	keyStyle := pathStyle
	valueStyle := okStyle

	fmt.Fprintln(w, titleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	if cfgPath != "" {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), cfgPath)
	} else {
		fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), mutedStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(w)

	kernelDir := mutedStyle.Render("(working directory)")
	if cfg.KernelDir != "" {
		kernelDir = valueStyle.Render(cfg.KernelDir.String())
	}
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("kernel_dir"), kernelDir)

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("output"))
	fmt.Fprintf(w, "  format: %s\n", valueStyle.Render(cfg.Output.Format.String()))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(w, "  color_scheme: %s\n", valueStyle.Render(cfg.UI.ColorScheme.String()))
	_, err := fmt.Fprintf(w, "  verbose: %s\n", valueStyle.Render(strconv.FormatBool(cfg.UI.Verbose)))
	return err
}

func initConfig(w io.Writer) error {
	cfgPath, created, err := config.CreateDefaultConfig()
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	if created {
		fmt.Fprintf(w, "%s Created default configuration at %s\n", okStyle.Render("✓"), cfgPath)
	} else {
		fmt.Fprintf(w, "%s Configuration already exists at %s\n", mutedStyle.Render("•"), cfgPath)
	}
	return nil
}

func showConfigPath(w io.Writer) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	cfgPath, err := config.ConfigFilePath()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Config directory: %s\n", cfgDir)
	fmt.Fprintf(w, "Config file: %s\n", cfgPath)
	return nil
}
