package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Minimal color palette
var (
	DimColor    = lipgloss.Color("#6c6c6c")
	TextColor   = lipgloss.Color("#e0e0e0")
	AccentColor = lipgloss.Color("#7aa2f7")
	BadgeColor  = lipgloss.Color("#9ece6a")
)

var (
	StatusActiveStyle = lipgloss.NewStyle().
				Foreground(AccentColor)

	FooterStyle = lipgloss.NewStyle().
			Foreground(DimColor)

	FooterAppNameStyle = lipgloss.NewStyle().
				Foreground(AccentColor).
				Bold(true).
				PaddingRight(1)

	FooterTargetStyle = lipgloss.NewStyle().
				Foreground(BadgeColor).
				PaddingRight(1)

	FooterInfoStyle = lipgloss.NewStyle().
			Foreground(DimColor).
			PaddingRight(1)

	ShortcutKeyStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	ShortcutDescStyle = lipgloss.NewStyle().
				Foreground(DimColor)
)
