// SPDX-License-Identifier: MPL-2.0

// Package kversion reads the version header block of a Linux kernel source
// tree's top-level Makefile.
//
// The header block is the leading run of field assignments at the top of the
// Makefile:
//
//	# SPDX-License-Identifier: GPL-2.0
//	VERSION = 6
//	PATCHLEVEL = 1
//	SUBLEVEL = 0
//	EXTRAVERSION = -rc1
//	NAME = Hurr durr I'ma ninja sloth
//
// The parser stops at the first non-assignment line after NAME has been
// assigned, so the rest of the Makefile is never read. Parsing is split from
// I/O: [Parse] works on any io.Reader, while [ReadFile], [ReadDir] and
// [ReadTree] resolve and open the Makefile on disk.
package kversion
