// SPDX-License-Identifier: MPL-2.0

package kernelinfo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tks/tks/internal/discovery"
	"github.com/tks/tks/pkg/kversion"
)

const (
	// KindUnknown is any error that is none of the kinds below.
	KindUnknown Kind = iota
	// KindNotFound means no ancestor of the start directory is a repository root.
	KindNotFound
	// KindIO means a directory could not be listed or the Makefile could not be read.
	KindIO
	// KindParse means the Makefile header block is malformed.
	KindParse
	// KindHost means the running kernel release could not be determined.
	KindHost
)

var (
	// ErrTreeNotFound is returned when the walk reaches the filesystem root
	// without finding a directory that contains a .git directory.
	ErrTreeNotFound = errors.New("no kernel source tree found")

	// ErrHostUnavailable is returned when the running kernel release cannot be
	// queried or parsed.
	ErrHostUnavailable = errors.New("running kernel release unavailable")
)

type (
	// Kind classifies a Load failure.
	Kind int

	// Options control a Load call.
	Options struct {
		// StartDir is where the upward search begins. Empty means the process
		// working directory.
		StartDir string
		// CompareHost also queries the running kernel release.
		CompareHost bool
	}

	// Info is the result of a successful Load.
	Info struct {
		Root     string           `json:"root" yaml:"root" toml:"root"`
		Makefile string           `json:"makefile" yaml:"makefile" toml:"makefile"`
		Version  kversion.Version `json:"version" yaml:"version" toml:"version"`
		Display  string           `json:"display" yaml:"display" toml:"display"`
		Release  string           `json:"release" yaml:"release" toml:"release"`
		Host     *HostInfo        `json:"host,omitempty" yaml:"host,omitempty" toml:"host,omitempty"`
	}

	// HostInfo describes the running kernel and how the tree relates to it.
	HostInfo struct {
		Release string           `json:"release" yaml:"release" toml:"release"`
		Version kversion.Version `json:"version" yaml:"version" toml:"version"`
		// Compare is tree.Compare(host): -1 older, 0 same, +1 newer.
		Compare int `json:"compare" yaml:"compare" toml:"compare"`
	}

	// HostError wraps a failure to obtain the running kernel release.
	HostError struct {
		Release string
		Err     error
	}
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not-found"
	case KindIO:
		return "io"
	case KindParse:
		return "parse"
	case KindHost:
		return "host"
	default:
		return "unknown"
	}
}

// Error implements the error interface.
func (e *HostError) Error() string {
	if e.Release != "" {
		return fmt.Sprintf("%s: release %q: %v", ErrHostUnavailable, e.Release, e.Err)
	}
	return fmt.Sprintf("%s: %v", ErrHostUnavailable, e.Err)
}

// Unwrap returns ErrHostUnavailable and the underlying cause for errors.Is.
func (e *HostError) Unwrap() []error { return []error{ErrHostUnavailable, e.Err} }

// FindRoot returns the kernel tree root enclosing start, or the working
// directory when start is empty. It fails with ErrTreeNotFound when no
// ancestor qualifies.
func FindRoot(ctx context.Context, start string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		start = wd
	}

	root, found, err := discovery.FindRepositoryRoot(start)
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf("%w above %s", ErrTreeNotFound, start)
	}
	return root, nil
}

// Load finds the kernel tree enclosing opts.StartDir and reads its version.
// No partial result is returned on failure.
func Load(ctx context.Context, opts Options) (*Info, error) {
	root, err := FindRoot(ctx, opts.StartDir)
	if err != nil {
		return nil, err
	}

	v, err := kversion.ReadDir(root)
	if err != nil {
		return nil, err
	}

	info := &Info{
		Root:     root,
		Makefile: filepath.Join(root, kversion.MakefileName),
		Version:  v,
		Display:  v.String(),
		Release:  v.KernelRelease(),
	}
	slog.Debug("kernel tree loaded", "root", root, "version", info.Display)

	if opts.CompareHost {
		hi, err := hostInfo(ctx, v)
		if err != nil {
			return nil, err
		}
		info.Host = hi
	}
	return info, nil
}

// Classify reports which failure kind err belongs to.
func Classify(err error) Kind {
	var pe *kversion.ParseError
	var he *HostError
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrTreeNotFound):
		return KindNotFound
	case errors.As(err, &pe):
		return KindParse
	case errors.As(err, &he):
		return KindHost
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindUnknown
	case errors.Is(err, kversion.ErrRead):
		return KindIO
	default:
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			return KindIO
		}
		return KindUnknown
	}
}
