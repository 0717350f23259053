// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// MarkerDirName is the version-control marker that identifies a repository root.
const MarkerDirName = ".git"

// Locate finds the repository root enclosing the process working directory.
// See FindRepositoryRoot.
func Locate() (string, bool, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", false, fmt.Errorf("get working directory: %w", err)
	}
	return FindRepositoryRoot(wd)
}

// FindRepositoryRoot walks from start up to the filesystem root and returns the
// first directory (start included) that directly contains a .git directory.
// The closest match wins.
//
// A .git entry that is not itself a directory (as git worktrees and submodules
// use) does not count. Reaching the filesystem root without a match returns
// found == false and a nil error. A directory that cannot be listed stops the
// walk with an error.
func FindRepositoryRoot(start string) (root string, found bool, err error) {
	cur, err := filepath.Abs(start)
	if err != nil {
		return "", false, fmt.Errorf("resolve start path: %w", err)
	}

	for {
		ok, err := hasMarkerDir(cur)
		if err != nil {
			return "", false, err
		}
		if ok {
			slog.Debug("repository root found", "path", cur)
			return cur, true, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			slog.Debug("no repository root found", "start", start)
			return "", false, nil
		}
		cur = parent
	}
}

// hasMarkerDir lists dir and reports whether it holds a .git directory entry.
func hasMarkerDir(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, fmt.Errorf("list %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.Name() == MarkerDirName && entry.IsDir() {
			return true, nil
		}
	}
	slog.Debug("no repository marker", "dir", dir)
	return false, nil
}
