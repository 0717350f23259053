// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"fmt"
	"path/filepath"
	"testing"
)

// KernelTree creates a minimal kernel source tree at dir: a .git directory
// and a Makefile whose header block declares the given version.
// Pass extra == "" to omit the EXTRAVERSION line. It returns dir.
func KernelTree(t testing.TB, dir string, major, minor, patch int, extra, name string) string {
	t.Helper()
	MustMkdirAll(t, filepath.Join(dir, ".git"), 0o755)
	MustWriteFile(t, filepath.Join(dir, "Makefile"), KernelHeader(major, minor, patch, extra, name))
	return dir
}

// KernelHeader renders a Makefile version header block followed by the kind
// of content that comes after it in a real tree.
func KernelHeader(major, minor, patch int, extra, name string) string {
	header := fmt.Sprintf("# SPDX-License-Identifier: GPL-2.0\nVERSION = %d\nPATCHLEVEL = %d\nSUBLEVEL = %d\n", major, minor, patch)
	if extra != "" {
		header += fmt.Sprintf("EXTRAVERSION = %s\n", extra)
	}
	header += fmt.Sprintf("NAME = %s\n", name)
	return header + "\n# *DOCUMENTATION*\n# To see a list of typical targets execute \"make help\"\n\nMAKEFLAGS += -rR\n"
}
