// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/tks/tks/internal/issue"
	"github.com/tks/tks/internal/kernelinfo"
	"github.com/tks/tks/pkg/types"
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// exitCodeFor maps a kernel lookup failure to its process exit code.
func exitCodeFor(kind kernelinfo.Kind) types.ExitCode {
	switch kind {
	case kernelinfo.KindNotFound:
		return types.ExitNotFound
	case kernelinfo.KindParse:
		return types.ExitParse
	case kernelinfo.KindIO:
		return types.ExitIO
	default:
		return types.ExitFailure
	}
}

// issueFor maps a kernel lookup failure to its catalog entry, or 0.
func issueFor(kind kernelinfo.Kind) issue.Id {
	switch kind {
	case kernelinfo.KindNotFound:
		return issue.KernelTreeNotFoundId
	case kernelinfo.KindParse:
		return issue.VersionParseFailedId
	case kernelinfo.KindIO:
		return issue.MakefileNotFoundId
	case kernelinfo.KindHost:
		return issue.HostKernelUnavailableId
	default:
		return 0
	}
}
