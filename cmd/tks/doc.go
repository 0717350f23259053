// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the tks command tree.
//
// Commands are built around an App that owns the configuration provider and
// the kernel lookup service, so tests can swap either and capture output.
package cmd
