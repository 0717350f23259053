// SPDX-License-Identifier: MPL-2.0

// Package logging builds the process logger: a charmbracelet/log logger
// installed behind log/slog so library packages only depend on slog.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

const (
	// FormatText is the human-friendly, styled format.
	FormatText Format = "text"
	// FormatJSON emits one JSON object per record.
	FormatJSON Format = "json"
	// FormatLogfmt emits key=value records.
	FormatLogfmt Format = "logfmt"

	// Prefix tags every record.
	Prefix = "tks"
)

// ErrInvalidFormat is returned when a Format value is not recognized.
var ErrInvalidFormat = errors.New("invalid log format")

type (
	// Format selects the record encoding.
	Format string

	// Options configure New.
	Options struct {
		// Verbose lowers the level from warn to debug.
		Verbose bool
		// Format defaults to FormatText.
		Format Format
		// Timestamps adds a time to each record.
		Timestamps bool
	}
)

// IsValid returns whether the Format is one of the defined formats.
func (f Format) IsValid() (bool, []error) {
	switch f {
	case "", FormatText, FormatJSON, FormatLogfmt:
		return true, nil
	default:
		return false, []error{fmt.Errorf("%w %q (valid: text, json, logfmt)", ErrInvalidFormat, f)}
	}
}

// New returns a slog.Logger writing to w through charmbracelet/log.
func New(w io.Writer, opts Options) (*slog.Logger, error) {
	if valid, errs := opts.Format.IsValid(); !valid {
		return nil, errs[0]
	}

	level := log.WarnLevel
	if opts.Verbose {
		level = log.DebugLevel
	}

	logger := log.NewWithOptions(w, log.Options{
		Prefix:          Prefix,
		Level:           level,
		ReportTimestamp: opts.Timestamps,
		Formatter:       formatter(opts.Format),
	})
	return slog.New(logger), nil
}

// Install builds a logger with New and makes it the slog default.
func Install(w io.Writer, opts Options) error {
	logger, err := New(w, opts)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	return nil
}

func formatter(f Format) log.Formatter {
	switch f {
	case FormatJSON:
		return log.JSONFormatter
	case FormatLogfmt:
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}
