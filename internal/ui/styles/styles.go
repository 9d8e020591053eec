// Package styles provides shared lipgloss styles for UI components.
//
// This package centralizes color definitions so the spinner, progress
// bar, and summary rendering stay visually consistent.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colors used throughout the UI
var (
	// Primary is the main accent color (cyan/teal)
	Primary color.Color = lipgloss.Color("62")

	// Accent is the highlight color (pink)
	Accent color.Color = lipgloss.Color("212")

	// Success is used for checkmarks and updated repositories (green)
	Success color.Color = lipgloss.Color("82")

	// Error is used for failed repositories (red)
	Error color.Color = lipgloss.Color("196")

	// Muted is used for secondary text like durations (gray)
	Muted color.Color = lipgloss.Color("240")

	// Normal is the standard text color (light gray)
	Normal color.Color = lipgloss.Color("252")
)

// Common styles
var (
	// Bold applies bold formatting
	Bold = lipgloss.NewStyle().Bold(true)

	// PrimaryStyle applies the primary color
	PrimaryStyle = lipgloss.NewStyle().Foreground(Primary)

	// SuccessStyle applies the success color
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)

	// ErrorStyle applies the error color
	ErrorStyle = lipgloss.NewStyle().Foreground(Error)

	// MutedStyle applies the muted color
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)

	// NormalStyle applies the normal text color
	NormalStyle = lipgloss.NewStyle().Foreground(Normal)
)

// Summary symbols
const (
	// SuccessSymbol marks an updated repository
	SuccessSymbol = "✓"

	// FailureSymbol marks a failed repository
	FailureSymbol = "✗"
)
