// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/tks/tks/internal/config"
	"github.com/tks/tks/internal/issue"
	"github.com/tks/tks/internal/logging"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the tks command tree around app.
// Running tks without a subcommand behaves like `tks info`.
func NewRootCommand(app *App) *cobra.Command {
	info := &infoOptions{}

	rootCmd := &cobra.Command{
		Use:   "tks",
		Short: "Kernel source tree toolkit",
		Long: titleStyle.Render("tks") + mutedStyle.Render(" - Kernel source tree toolkit") + `

tks finds the Linux kernel source tree you are working in (the closest
directory, walking up from the current one, that contains a .git directory)
and reports the version declared at the top of its Makefile.

` + mutedStyle.Render("Examples:") + `
  tks                       Show the version of the enclosing kernel tree
  tks info -o json          Same, as JSON
  tks info --host           Compare with the running kernel
  tks root                  Print the tree root
  tks config show           Show current configuration`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.initRoot(cmd.Context())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, app, info)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&app.opts.verbose, "verbose", "v", false, "enable debug logging and full error chains")
	flags.StringVar(&app.opts.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/tks/config.cue)")
	flags.StringVar(&app.opts.logFormat, "log-format", string(logging.FormatText), "log record format (text, json, logfmt)")

	addInfoFlags(rootCmd, info)

	rootCmd.AddCommand(
		newInfoCommand(app),
		newRootPathCommand(app),
		newConfigCommand(app),
		newCompletionCommand(),
	)
	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version != "dev" {
		return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return "dev (built from source)"
}

// Execute runs the tks command tree and exits with the command's exit code.
// This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	rootCmd := NewRootCommand(app)

	// fang overrides rootCmd.Version, so pass it explicitly.
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// initRoot loads configuration and installs the logger. A configuration that
// fails to load is reported as a warning and defaults are used instead.
func (a *App) initRoot(ctx context.Context) error {
	res, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: a.opts.configPath})
	if err != nil {
		fmt.Fprintln(a.stderr, warnStyle.Render("Warning: ")+formatErrorForDisplay(err, a.opts.verbose))
		if a.opts.verbose {
			newServiceError(err, issue.ConfigLoadFailedId, "").render(a.stderr, a.glamourStyle())
		}
		a.cfg, a.cfgPath = config.DefaultConfig(), ""
	} else {
		a.cfg, a.cfgPath = res.Config, res.Path
	}

	return logging.Install(a.stderr, logging.Options{
		Verbose: a.verbose(),
		Format:  logging.Format(a.opts.logFormat),
	})
}

// formatErrorForDisplay formats an error for user display.
// ActionableErrors use their Format method, which adds the error chain in
// verbose mode.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
