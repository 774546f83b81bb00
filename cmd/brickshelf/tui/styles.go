package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

// Color constants extracted from the Mocha palette for convenience.
var (
	colorBase     = lipgloss.Color(flavor.Base().Hex)
	colorSurface0 = lipgloss.Color(flavor.Surface0().Hex)
	colorSurface1 = lipgloss.Color(flavor.Surface1().Hex)
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorGreen    = lipgloss.Color(flavor.Green().Hex)
	colorRed      = lipgloss.Color(flavor.Red().Hex)
	colorYellow   = lipgloss.Color(flavor.Yellow().Hex)
	colorMauve    = lipgloss.Color(flavor.Mauve().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

// Home view styles.
var (
	// TitleStyle is used for the app title line.
	TitleStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	// SectionTitleStyle is used for each resolved section heading.
	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(colorMauve).
				Bold(true)

	// CountStyle is used for the item count next to a section title.
	CountStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	// ItemStyle is used for set rows.
	ItemStyle = lipgloss.NewStyle().
			Foreground(colorText).
			PaddingLeft(2)

	// DetailStyle is used for the dim metadata after a set name.
	DetailStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0)

	// HintStyle is used for footers and empty-state guidance.
	HintStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)
)

// Editor styles.
var (
	// CursorStyle highlights the row under the cursor.
	CursorStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	// GrabbedStyle marks a row that is being dragged.
	GrabbedStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorYellow).
			Bold(true)

	// TagStyle marks smart vs theme sections.
	TagStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0).
			Italic(true)

	// ErrorStyle is used for inline save errors.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	// SuccessStyle is used for confirmations.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	// StatusBarStyle is the base style for the bottom key hints.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorSurface0).
			Padding(0, 1)

	// BoxStyle wraps the editor when the terminal size is known.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(1, 2)
)
