// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tks/tks/internal/issue"
	"github.com/tks/tks/internal/kernelinfo"
	"github.com/tks/tks/internal/output"
	"github.com/tks/tks/pkg/types"
)

type (
	// infoOptions holds the flags shared by `tks` and `tks info`.
	infoOptions struct {
		dir    string
		format string
		host   bool
	}

	// infoView is the text rendering of a kernelinfo.Info.
	infoView struct {
		*kernelinfo.Info
	}
)

// newInfoCommand creates the `tks info` command.
func newInfoCommand(app *App) *cobra.Command {
	opts := &infoOptions{}
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show the version of the enclosing kernel tree",
		Long: `Show the version of the enclosing kernel tree.

The tree root is the closest directory, starting from --dir (or kernel_dir
from the configuration, or the current directory), that contains a .git
directory. The version is read from the header block of its Makefile.

` + exitCodeHelp(),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, app, opts)
		},
	}
	addInfoFlags(cmd, opts)
	return cmd
}

func addInfoFlags(cmd *cobra.Command, opts *infoOptions) {
	cmd.Flags().StringVarP(&opts.dir, "dir", "C", "", "start the search from this directory")
	cmd.Flags().StringVarP(&opts.format, "format", "o", "", "output format: text, json, yaml, toml (default from config)")
	cmd.Flags().BoolVar(&opts.host, "host", false, "compare with the running kernel release")

	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		formats := make([]string, 0, len(output.Formats()))
		for _, f := range output.Formats() {
			formats = append(formats, f.String())
		}
		return formats, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.MarkFlagDirname("dir")
}

func runInfo(cmd *cobra.Command, app *App, opts *infoOptions) error {
	format := output.Format(app.cfg.Output.Format)
	if opts.format != "" {
		format = output.Format(opts.format)
	}
	if valid, errs := format.IsValid(); !valid {
		return issue.NewErrorContext().
			WithOperation("select output format").
			WithResource(opts.format).
			WithSuggestion("Use one of: text, json, yaml, toml").
			Wrap(errs[0]).
			BuildError()
	}

	startDir := opts.dir
	if startDir == "" {
		startDir = app.cfg.KernelDir.String()
	}

	info, err := app.Kernel.Load(cmd.Context(), kernelinfo.Options{
		StartDir:    startDir,
		CompareHost: opts.host,
	})
	if err != nil {
		return app.kernelError(cmd, err, startDir)
	}

	var v any = info
	if format == output.FormatText {
		v = infoView{info}
	}
	return output.Write(app.stdout, format, v)
}

// kernelError renders a kernel lookup failure and returns the ExitError
// carrying its exit code.
func (a *App) kernelError(cmd *cobra.Command, err error, startDir string) error {
	kind := kernelinfo.Classify(err)

	ctx := issue.NewErrorContext().Wrap(err)
	switch kind {
	case kernelinfo.KindNotFound:
		ctx.WithOperation("locate kernel tree").
			WithSuggestion("Run tks from inside a kernel checkout, or pass --dir")
		if startDir != "" {
			ctx.WithResource(startDir)
		}
	case kernelinfo.KindParse:
		ctx.WithOperation("read kernel version").
			WithSuggestion("Check the VERSION, PATCHLEVEL, SUBLEVEL, EXTRAVERSION and NAME lines of the Makefile")
	case kernelinfo.KindIO:
		ctx.WithOperation("read kernel tree").
			WithSuggestion("Check that the directory and its Makefile exist and are readable")
	case kernelinfo.KindHost:
		ctx.WithOperation("query running kernel").
			WithSuggestion("Run again without --host")
	default:
		ctx.WithOperation("load kernel info")
	}
	ae := ctx.Build()

	styled := errStyle.Render("✗ ") + ae.Format(a.verbose()) + "\n"
	svcErr := newServiceError(ae, issueFor(kind), styled)
	if a.verbose() {
		svcErr.render(a.stderr, a.glamourStyle())
	} else {
		// The catalog entry is long; only verbose mode shows it.
		fmt.Fprint(a.stderr, svcErr.StyledMessage)
	}

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	return &ExitError{Code: exitCodeFor(kind), Err: svcErr}
}

// exitCodeHelp lists the specific failure exit codes for help text.
func exitCodeHelp() string {
	var sb strings.Builder
	sb.WriteString(mutedStyle.Render("Exit codes:"))
	for _, c := range types.FailureCodes() {
		fmt.Fprintf(&sb, "\n  %s  %s", c, c.Describe())
	}
	return sb.String()
}

// Text renders the info as aligned label/value lines.
func (v infoView) Text() string {
	var sb strings.Builder
	line := func(label, value string) {
		sb.WriteString(labelStyle.Render(fmt.Sprintf("%-9s", label)))
		sb.WriteString(" ")
		sb.WriteString(value)
		sb.WriteString("\n")
	}

	line("Tree", pathStyle.Render(v.Root))
	line("Version", okStyle.Render(v.Display))
	if v.Release != v.Display {
		line("Release", v.Release)
	}
	if v.Version.Name != "" {
		line("Name", v.Version.Name)
	}
	if v.Host != nil {
		line("Running", v.Host.Release+" "+hintStyle.Render(compareHint(v.Host.Compare)))
	}
	return sb.String()
}

func compareHint(c int) string {
	switch {
	case c > 0:
		return "(tree is newer)"
	case c < 0:
		return "(tree is older)"
	default:
		return "(same version)"
	}
}
