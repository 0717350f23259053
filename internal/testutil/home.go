// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"runtime"
	"testing"
)

// SetHomeDir points the home directory variable os.UserHomeDir reads
// (USERPROFILE on Windows, HOME elsewhere) at dir until the test ends.
func SetHomeDir(t testing.TB, dir string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Setenv("USERPROFILE", dir)
		return
	}
	t.Setenv("HOME", dir)
}
