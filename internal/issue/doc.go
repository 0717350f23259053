// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors and a catalog of Markdown guidance
// for the failures tks reports.
//
// An ActionableError says what operation failed, on which resource, and what
// to try next. A catalog Issue is the longer, glamour-rendered explanation the
// CLI prints in verbose mode.
package issue
