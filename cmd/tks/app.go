// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/tks/tks/internal/config"
	"github.com/tks/tks/internal/kernelinfo"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root
	// for the CLI layer: every Cobra handler receives the App and delegates
	// through its service interfaces.
	App struct {
		Config ConfigProvider
		Kernel KernelService
		stdout io.Writer
		stderr io.Writer

		// Populated by the root command's PersistentPreRunE.
		cfg     *config.Config
		cfgPath string
		opts    rootOptions
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Kernel KernelService
		Stdout io.Writer
		Stderr io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.LoadResult, error)
	}

	// KernelService locates kernel trees and reads their version.
	KernelService interface {
		FindRoot(ctx context.Context, start string) (string, error)
		Load(ctx context.Context, opts kernelinfo.Options) (*kernelinfo.Info, error)
	}

	// rootOptions holds the persistent flags.
	rootOptions struct {
		verbose    bool
		configPath string
		logFormat  string
	}

	kernelService struct{}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Kernel == nil {
		deps.Kernel = kernelService{}
	}

	return &App{
		Config: deps.Config,
		Kernel: deps.Kernel,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
		cfg:    config.DefaultConfig(),
	}
}

// verbose reports whether debug output and error chains are enabled, by flag
// or by configuration.
func (a *App) verbose() bool {
	return a.opts.verbose || a.cfg.UI.Verbose
}

// glamourStyle maps the configured color scheme onto a glamour style name.
func (a *App) glamourStyle() string {
	switch a.cfg.UI.ColorScheme {
	case config.ColorSchemeDark, config.ColorSchemeLight:
		return string(a.cfg.UI.ColorScheme)
	default:
		return "auto"
	}
}

func (kernelService) FindRoot(ctx context.Context, start string) (string, error) {
	return kernelinfo.FindRoot(ctx, start)
}

func (kernelService) Load(ctx context.Context, opts kernelinfo.Options) (*kernelinfo.Info, error) {
	return kernelinfo.Load(ctx, opts)
}
