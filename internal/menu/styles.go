package menu

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 72  // Minimum supported terminal width
	MaxContentWidth  = 120 // Maximum content width before capping
	SlotWidth        = 12  // Fixed width of one grid cell
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	ErrorColor     = lipgloss.Color("#FF0000") // Red
	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
	HighlightColor = lipgloss.Color("#43BF6D") // Green
	DeleteColor    = lipgloss.Color("#FF5F5F") // Soft red
)

// Common styles
var (
	// Title style for the menu header
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// Status line under the title (mode, sort, page)
	StatusStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Entry slot (unselected)
	SlotStyle = lipgloss.NewStyle().
			Width(SlotWidth).
			Foreground(TextColor)

	// Entry slot (selected)
	SelectedSlotStyle = lipgloss.NewStyle().
				Width(SlotWidth).
				Foreground(HighlightColor).
				Bold(true)

	// Entry slot selected while in delete mode
	SelectedDeleteSlotStyle = lipgloss.NewStyle().
				Width(SlotWidth).
				Foreground(DeleteColor).
				Bold(true)

	// Empty filler slot
	FillerStyle = lipgloss.NewStyle().
			Width(SlotWidth).
			Foreground(SubtleColor)

	// Filler slot while in delete mode
	DeleteFillerStyle = lipgloss.NewStyle().
				Width(SlotWidth).
				Foreground(DeleteColor).
				Faint(true)

	// Control row button
	ControlStyle = lipgloss.NewStyle().
			Width(SlotWidth).
			Foreground(TextColor)

	// Control row button (selected)
	SelectedControlStyle = lipgloss.NewStyle().
				Width(SlotWidth).
				Foreground(HighlightColor).
				Bold(true)

	// Control row button that cannot be activated
	DisabledControlStyle = lipgloss.NewStyle().
				Width(SlotWidth).
				Foreground(SubtleColor).
				Faint(true)

	// Detail pane for the selected entry
	DetailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Padding(0, 1)

	// Inline error text (validation re-prompts)
	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// Help text style
	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Confirmation buttons
	ConfirmYesStyle = lipgloss.NewStyle().
			Width(SlotWidth).
			Foreground(SecondaryColor).
			Bold(true)

	ConfirmNoStyle = lipgloss.NewStyle().
			Width(SlotWidth).
			Foreground(ErrorColor).
			Bold(true)
)

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}
