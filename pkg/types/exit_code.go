// SPDX-License-Identifier: MPL-2.0

package types

import "strconv"

// ExitCode is the process exit status tks reports. The zero value is success.
type ExitCode int

const (
	ExitSuccess ExitCode = iota
	// ExitFailure covers everything without a code of its own, including a
	// failed --host lookup.
	ExitFailure
	// ExitNotFound means no directory above the start holds a .git directory.
	ExitNotFound
	// ExitParse means the Makefile version header is malformed.
	ExitParse
	// ExitIO means a directory or the Makefile could not be read.
	ExitIO
)

var exitCodeText = map[ExitCode]string{
	ExitSuccess:  "success",
	ExitFailure:  "failure",
	ExitNotFound: "no kernel tree found",
	ExitParse:    "malformed Makefile version header",
	ExitIO:       "directory or Makefile could not be read",
}

// FailureCodes lists the specific failure codes, in ascending order, for
// help output. ExitFailure is left out as the catch-all.
func FailureCodes() []ExitCode {
	return []ExitCode{ExitNotFound, ExitParse, ExitIO}
}

// IsSuccess reports whether c is ExitSuccess.
func (c ExitCode) IsSuccess() bool { return c == ExitSuccess }

// Describe returns a short human description of c, or "" for codes tks
// never returns.
func (c ExitCode) Describe() string { return exitCodeText[c] }

// String returns the decimal form, as a shell would print $?.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
