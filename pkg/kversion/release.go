// SPDX-License-Identifier: MPL-2.0

package kversion

import (
	"fmt"
	"regexp"
	"strconv"
)

// releasePattern matches "major.minor[.patch][extra]" as reported by uname -r,
// e.g. "6.1.0-13-amd64", "5.15.0", "6.8-rc3", "4.19.0+".
var releasePattern = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)(?:\.(0|[1-9]\d*))?([-+.~_][0-9A-Za-z.+~_-]*)?$`)

// ParseRelease parses a kernel release string into a Version.
// Anything after the numeric triple is kept verbatim as the extraversion;
// Name is always empty since release strings do not carry it.
func ParseRelease(release string) (Version, error) {
	m := releasePattern.FindStringSubmatch(release)
	if m == nil {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidRelease, release)
	}

	var v Version
	parts := []*uint16{&v.Major, &v.Minor, &v.Patch}
	for i, dst := range parts {
		s := m[i+1]
		if s == "" {
			continue
		}
		n, err := strconv.ParseUint(s, 10, 16)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q: %w", ErrInvalidRelease, release, err)
		}
		*dst = uint16(n)
	}
	if m[4] != "" {
		v.Extra = m[4]
		v.HasExtra = true
	}
	return v, nil
}
