// SPDX-License-Identifier: MPL-2.0

// Package kernelinfo locates the kernel source tree enclosing a directory and
// reads its version header.
//
// Load composes repository discovery with the Makefile reader and reports
// failures as values instead of terminating, so the CLI decides how to present
// them. Classify maps any returned error onto the three failure kinds
// (not found, I/O, parse) that drive exit codes and issue catalog entries.
package kernelinfo
