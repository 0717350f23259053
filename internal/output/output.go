// SPDX-License-Identifier: MPL-2.0

// Package output renders command results in the format chosen with --format.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	// FormatText renders through the value's Text method.
	FormatText Format = "text"
	// FormatJSON renders indented JSON.
	FormatJSON Format = "json"
	// FormatYAML renders YAML.
	FormatYAML Format = "yaml"
	// FormatTOML renders TOML. The value must encode as a table.
	FormatTOML Format = "toml"
)

// ErrInvalidFormat is returned when a Format value is not recognized.
var ErrInvalidFormat = errors.New("invalid output format")

type (
	// Format selects how results are printed.
	Format string

	// Texter is implemented by results with a human-readable form.
	Texter interface {
		Text() string
	}
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML, FormatTOML}
}

// String returns the string representation of the Format.
func (f Format) String() string { return string(f) }

// IsValid returns whether the Format is one of the defined formats.
func (f Format) IsValid() (bool, []error) {
	switch f {
	case FormatText, FormatJSON, FormatYAML, FormatTOML:
		return true, nil
	default:
		return false, []error{fmt.Errorf("%w %q (valid: text, json, yaml, toml)", ErrInvalidFormat, f)}
	}
}

// Write encodes v to w in format f.
// FormatText uses v's Text method when it has one and fmt's default
// formatting otherwise.
func Write(w io.Writer, f Format, v any) error {
	switch f {
	case FormatText:
		if t, ok := v.(Texter); ok {
			_, err := io.WriteString(w, t.Text())
			return err
		}
		_, err := fmt.Fprintln(w, v)
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(v); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		return nil
	default:
		_, errs := f.IsValid()
		return errs[0]
	}
}
