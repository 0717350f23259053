// SPDX-License-Identifier: MPL-2.0

// Package testutil holds fixtures shared by tks tests: kernel source trees
// with a version header (KernelTree), file and directory creation that fails
// the test on error, and environment helpers the testing package lacks.
package testutil
