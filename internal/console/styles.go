package console

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorCommand = lipgloss.Color("13")  // Magenta, matches the pjoin helper's accent
	ColorFlag    = lipgloss.Color("12")  // Blue
	ColorArg     = lipgloss.Color("11")  // Yellow
	ColorError   = lipgloss.Color("196") // Red
	ColorMuted   = lipgloss.Color("245") // Gray
)

// Styles for help and diagnostic text.
var (
	// CommandStyle renders the program name in usage lines.
	CommandStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorCommand)

	// FlagStyle renders flag tokens in usage lines.
	FlagStyle = lipgloss.NewStyle().
			Foreground(ColorFlag)

	// ArgStyle renders positional argument placeholders.
	ArgStyle = lipgloss.NewStyle().
			Foreground(ColorArg)

	// MutedStyle renders explanatory text.
	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// ExampleStyle renders example output lines.
	ExampleStyle = lipgloss.NewStyle().
			Italic(true)

	// ErrorPrefixStyle renders the [ERROR] prefix on diagnostics.
	ErrorPrefixStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorError)
)
