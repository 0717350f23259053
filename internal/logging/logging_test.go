// SPDX-License-Identifier: MPL-2.0

package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{"quiet", false, false},
		{"verbose", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger, err := New(&buf, Options{Verbose: tt.verbose, Format: FormatLogfmt})
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			logger.Debug("walking", "dir", "/src")
			logger.Warn("careful")

			out := buf.String()
			if got := strings.Contains(out, "walking"); got != tt.wantDebug {
				t.Errorf("debug record present = %v, want %v:\n%s", got, tt.wantDebug, out)
			}
			if !strings.Contains(out, "careful") {
				t.Errorf("warn record missing:\n%s", out)
			}
		})
	}
}

func TestNew_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(&buf, Options{Verbose: true, Format: FormatJSON})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Debug("repository root found", "path", "/src/linux")

	var rec map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if rec["msg"] != "repository root found" || rec["path"] != "/src/linux" {
		t.Errorf("record = %v", rec)
	}
}

func TestNew_InvalidFormat(t *testing.T) {
	t.Parallel()

	if _, err := New(&bytes.Buffer{}, Options{Format: "xml"}); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("New() error = %v, want ErrInvalidFormat", err)
	}
}

func TestInstall(t *testing.T) {
	orig := slog.Default()
	t.Cleanup(func() { slog.SetDefault(orig) })

	var buf bytes.Buffer
	if err := Install(&buf, Options{Verbose: true, Format: FormatLogfmt}); err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	slog.Debug("installed")
	if !strings.Contains(buf.String(), "installed") {
		t.Errorf("default logger did not write through charm log:\n%s", buf.String())
	}
}
