// SPDX-License-Identifier: MPL-2.0

package kversion

import (
	"cmp"
	"fmt"
	"strings"
)

const (
	// FieldVersion holds the major version number.
	FieldVersion Field = "VERSION"
	// FieldPatchLevel holds the minor version number.
	FieldPatchLevel Field = "PATCHLEVEL"
	// FieldSubLevel holds the patch version number.
	FieldSubLevel Field = "SUBLEVEL"
	// FieldExtraVersion holds the free-form version suffix (e.g. "-rc1").
	FieldExtraVersion Field = "EXTRAVERSION"
	// FieldName holds the release name. Its assignment completes the header block.
	FieldName Field = "NAME"
)

type (
	// Field is the name of a Makefile version header field.
	Field string

	// Version is a parsed kernel version header.
	// Values are built once by the parser and are safe to copy and share.
	Version struct {
		// Major is the VERSION field.
		Major uint16 `json:"major" yaml:"major" toml:"major"`
		// Minor is the PATCHLEVEL field.
		Minor uint16 `json:"minor" yaml:"minor" toml:"minor"`
		// Patch is the SUBLEVEL field.
		Patch uint16 `json:"patch" yaml:"patch" toml:"patch"`
		// Extra is the EXTRAVERSION field, trimmed. Only meaningful when HasExtra is set.
		Extra string `json:"extra,omitempty" yaml:"extra,omitempty" toml:"extra,omitempty"`
		// HasExtra reports whether an EXTRAVERSION line was present.
		HasExtra bool `json:"-" yaml:"-" toml:"-"`
		// Name is the NAME field. May be empty.
		Name string `json:"name" yaml:"name" toml:"name"`
	}
)

// headerFields lists the recognized fields in Makefile order.
var headerFields = []Field{FieldVersion, FieldPatchLevel, FieldSubLevel, FieldExtraVersion, FieldName}

// String returns the field name.
func (f Field) String() string { return string(f) }

// IsNumeric reports whether the field holds an unsigned integer.
func (f Field) IsNumeric() bool {
	switch f {
	case FieldVersion, FieldPatchLevel, FieldSubLevel:
		return true
	default:
		return false
	}
}

// String renders the canonical display form. With an EXTRAVERSION line the
// extraversion replaces the sublevel: "-rc1" renders as "6.1-rc1", and an
// empty EXTRAVERSION (as in every release Makefile) renders as "6.1". Without
// one the sublevel is shown: "6.1.0".
func (v Version) String() string {
	if !v.HasExtra {
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
	if extra := v.extraSuffix(); extra != "" {
		return fmt.Sprintf("%d.%d-%s", v.Major, v.Minor, extra)
	}
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// KernelRelease renders the version the way the kernel build reports it
// (KERNELRELEASE without local version): "major.minor.patch" with the raw
// extraversion appended, e.g. "6.1.0-rc1".
func (v Version) KernelRelease() string {
	base := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.HasExtra {
		return base + v.Extra
	}
	return base
}

// Compare orders two versions by major, minor and patch number.
// Extraversion and name are ignored. The result is -1, 0 or +1.
func (v Version) Compare(other Version) int {
	if c := cmp.Compare(v.Major, other.Major); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Minor, other.Minor); c != 0 {
		return c
	}
	return cmp.Compare(v.Patch, other.Patch)
}

// extraSuffix returns the extraversion without its leading separators.
func (v Version) extraSuffix() string {
	return strings.TrimLeft(v.Extra, "-.")
}
