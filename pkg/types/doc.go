// SPDX-License-Identifier: MPL-2.0

// Package types holds small value types shared between the CLI and its services.
package types
