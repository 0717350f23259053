// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.KernelDir != "" {
		t.Errorf("KernelDir = %q, want empty", cfg.KernelDir)
	}
	if cfg.Output.Format != OutputFormatText {
		t.Errorf("Output.Format = %s, want text", cfg.Output.Format)
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("UI.ColorScheme = %s, want auto", cfg.UI.ColorScheme)
	}
	if cfg.UI.Verbose {
		t.Error("UI.Verbose should default to false")
	}
	if valid, errs := cfg.IsValid(); !valid {
		t.Errorf("DefaultConfig().IsValid() = false, %v", errs)
	}
}

func TestOutputFormat_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value OutputFormat
		want  bool
	}{
		{OutputFormatText, true},
		{OutputFormatJSON, true},
		{OutputFormatYAML, true},
		{OutputFormatTOML, true},
		{"", false},
		{"xml", false},
		{"JSON", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			t.Parallel()
			valid, errs := tt.value.IsValid()
			if valid != tt.want {
				t.Fatalf("IsValid() = %v, want %v", valid, tt.want)
			}
			if !valid && !errors.Is(errs[0], ErrInvalidOutputFormat) {
				t.Errorf("error = %v, want ErrInvalidOutputFormat", errs[0])
			}
		})
	}
}

func TestColorScheme_IsValid(t *testing.T) {
	t.Parallel()

	for _, cs := range []ColorScheme{ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight} {
		if valid, _ := cs.IsValid(); !valid {
			t.Errorf("%s.IsValid() = false", cs)
		}
	}
	valid, errs := ColorScheme("neon").IsValid()
	if valid {
		t.Fatal("neon should be invalid")
	}
	var csErr *InvalidColorSchemeError
	if !errors.As(errs[0], &csErr) || csErr.Value != "neon" {
		t.Errorf("error = %v, want *InvalidColorSchemeError{neon}", errs[0])
	}
}

func TestKernelDir_IsValid(t *testing.T) {
	t.Parallel()

	for _, d := range []KernelDir{"", "/usr/src/linux", "relative/linux"} {
		if valid, _ := d.IsValid(); !valid {
			t.Errorf("KernelDir(%q).IsValid() = false", d)
		}
	}
	if valid, errs := KernelDir(" \t").IsValid(); valid || !errors.Is(errs[0], ErrInvalidKernelDir) {
		t.Errorf("whitespace KernelDir should be invalid, got %v %v", valid, errs)
	}
}

func TestConfig_IsValid_CollectsAll(t *testing.T) {
	t.Parallel()

	cfg := Config{
		KernelDir: "  ",
		Output:    OutputConfig{Format: "xml"},
		UI:        UIConfig{ColorScheme: "neon"},
	}
	valid, errs := cfg.IsValid()
	if valid {
		t.Fatal("IsValid() = true, want false")
	}
	if !errors.Is(errs[0], ErrInvalidConfig) {
		t.Errorf("error = %v, want ErrInvalidConfig", errs[0])
	}
	var cfgErr *InvalidConfigError
	if !errors.As(errs[0], &cfgErr) {
		t.Fatalf("error = %T, want *InvalidConfigError", errs[0])
	}
	if len(cfgErr.FieldErrors) != 3 {
		t.Errorf("FieldErrors = %d, want 3", len(cfgErr.FieldErrors))
	}
	msg := cfgErr.Error()
	for _, want := range []string{`"xml"`, `"neon"`, "kernel dir"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, should mention %s", msg, want)
		}
	}
}
