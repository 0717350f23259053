// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/tks/tks/internal/issue"
)

// ServiceError pairs a failure with what the CLI shows for it: an optional
// pre-styled message and an optional issue catalog entry.
type ServiceError struct {
	Err           error
	IssueID       issue.Id
	StyledMessage string
}

// newServiceError panics on a nil err; a ServiceError always wraps something.
func newServiceError(err error, id issue.Id, styled string) *ServiceError {
	if err == nil {
		panic("cmd: ServiceError without an error")
	}
	return &ServiceError{Err: err, IssueID: id, StyledMessage: styled}
}

func (e *ServiceError) Error() string { return e.Err.Error() }

func (e *ServiceError) Unwrap() error { return e.Err }

// render writes the styled message, then the catalog entry rendered with the
// given glamour style. A catalog entry that fails to render is logged and
// skipped.
func (e *ServiceError) render(w io.Writer, style string) {
	fmt.Fprint(w, e.StyledMessage)

	entry := issue.Get(e.IssueID)
	if entry == nil {
		return
	}
	out, err := entry.Render(style)
	if err != nil {
		slog.Warn("cannot render issue", "id", e.IssueID, "error", err)
		return
	}
	fmt.Fprint(w, out)
}
