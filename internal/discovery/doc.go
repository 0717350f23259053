// SPDX-License-Identifier: MPL-2.0

// Package discovery locates the repository that encloses a directory.
//
// The walk is read-only and starts from an explicit path so it can be tested
// against a temporary tree; Locate is the convenience entry point that starts
// from the process working directory.
package discovery
