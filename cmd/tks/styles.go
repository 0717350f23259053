// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Palette. Adaptive colors pick the light or dark variant from the terminal
// background; lipgloss drops them entirely when output is not a terminal.
var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#F59E0B"}
	colorMuted  = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}
	colorOK     = lipgloss.AdaptiveColor{Light: "#047857", Dark: "#10B981"}
	colorBad    = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#EF4444"}
	colorPath   = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"}
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
	okStyle    = lipgloss.NewStyle().Foreground(colorOK)
	errStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorBad)
	warnStyle  = lipgloss.NewStyle().Foreground(colorAccent)
	// pathStyle is for directories, files and config keys.
	pathStyle = lipgloss.NewStyle().Foreground(colorPath)

	// labelStyle is the left column of `tks info` text output.
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	// hintStyle is a remark trailing a value.
	hintStyle = lipgloss.NewStyle().Italic(true).Foreground(colorMuted)
)
