// SPDX-License-Identifier: MPL-2.0

package kversion

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// MakefileName is the conventional name of the kernel metadata file.
const MakefileName = "Makefile"

const (
	// stateScanning reads header lines until NAME is assigned and a
	// non-assignment line follows.
	stateScanning scanState = iota
	// stateDone is terminal; no further lines are consumed.
	stateDone
)

type (
	scanState int

	// headerScanner is the line-level state machine behind Parse.
	// It holds no I/O and can be fed lines directly.
	headerScanner struct {
		state   scanState
		version Version
	}
)

// String returns a human-readable state name.
func (s scanState) String() string {
	switch s {
	case stateScanning:
		return "scanning"
	case stateDone:
		return "done"
	default:
		return "unknown"
	}
}

// ReadTree reads the Makefile that sits next to ref, i.e. in ref's directory.
// Callers pass any path known to be at the tree root.
func ReadTree(ref string) (Version, error) {
	return ReadFile(filepath.Join(filepath.Dir(ref), MakefileName))
}

// ReadDir reads the Makefile directly inside root.
func ReadDir(root string) (Version, error) {
	return ReadFile(filepath.Join(root, MakefileName))
}

// ReadFile opens and parses a kernel Makefile.
// Open and read failures wrap ErrRead and keep their own identity for
// errors.Is (e.g. fs.ErrNotExist). Parse failures are *ParseError.
func ReadFile(path string) (Version, error) {
	f, err := os.Open(path)
	if err != nil {
		return Version{}, fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer f.Close()

	v, err := Parse(f)
	if err != nil {
		return Version{}, fmt.Errorf("%s: %w", path, err)
	}
	slog.Debug("kernel metadata parsed", "path", path, "version", v.String())
	return v, nil
}

// Parse reads the version header block from r.
//
// A line belongs to the block when it starts with a field name followed by
// whitespace, '=' or a make assignment operator; lines that merely share the
// prefix, such as "NAMESPACE = x", are not fields and end a complete block.
// Lines of any length are accepted. Reading stops once the block is complete,
// though r may have been read ahead into a buffer. Read failures wrap ErrRead.
func Parse(r io.Reader) (Version, error) {
	var hs headerScanner
	br := bufio.NewReader(r)
	lineNo := 0
	for hs.state != stateDone {
		line, err := br.ReadString('\n')
		if line != "" {
			lineNo++
			if ferr := hs.feed(lineNo, strings.TrimRight(line, "\r\n")); ferr != nil {
				return Version{}, ferr
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Version{}, fmt.Errorf("%w: %w", ErrRead, err)
		}
	}
	return hs.version, nil
}

// feed advances the scanner by one line. Feeding a scanner in stateDone is a no-op.
func (hs *headerScanner) feed(lineNo int, line string) error {
	if hs.state == stateDone {
		return nil
	}
	if strings.HasPrefix(line, "#") {
		return nil
	}

	field, ok := matchField(line)
	if !ok {
		if hs.version.Name != "" {
			hs.state = stateDone
		}
		return nil
	}

	_, raw, found := strings.Cut(line, "=")
	if !found {
		return &ParseError{Field: field, Line: lineNo, Text: line, Err: ErrMissingSeparator}
	}
	return hs.assign(field, lineNo, line, strings.TrimSpace(raw))
}

func (hs *headerScanner) assign(field Field, lineNo int, line, value string) error {
	if field.IsNumeric() {
		n, err := strconv.ParseUint(value, 10, 16)
		if err != nil {
			return &ParseError{Field: field, Line: lineNo, Text: line, Err: fmt.Errorf("%w: %w", ErrInvalidNumber, err)}
		}
		switch field {
		case FieldVersion:
			hs.version.Major = uint16(n)
		case FieldPatchLevel:
			hs.version.Minor = uint16(n)
		case FieldSubLevel:
			hs.version.Patch = uint16(n)
		}
		return nil
	}

	switch field {
	case FieldExtraVersion:
		hs.version.Extra = value
		hs.version.HasExtra = true
	case FieldName:
		hs.version.Name = value
	}
	return nil
}

// matchField reports which header field line assigns, if any.
// The field name must be followed by the end of the line, whitespace or a
// make assignment operator character, so "NAMESPACE = x" is not NAME.
func matchField(line string) (Field, bool) {
	for _, f := range headerFields {
		rest, ok := strings.CutPrefix(line, string(f))
		if !ok {
			continue
		}
		if rest == "" {
			return f, true
		}
		switch rest[0] {
		case ' ', '\t', '=', ':', '?', '+':
			return f, true
		}
	}
	return "", false
}
