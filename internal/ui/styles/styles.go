// Package styles contains Lip Gloss style definitions.
package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Adaptive colors pick a readable shade for light and dark terminals.
var (
	SuccessColor = lipgloss.AdaptiveColor{Light: "28", Dark: "42"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "124", Dark: "196"}
	WarnColor    = lipgloss.AdaptiveColor{Light: "130", Dark: "214"}
	AccentColor  = lipgloss.AdaptiveColor{Light: "25", Dark: "39"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "243", Dark: "240"}
)

var (
	Success = lipgloss.NewStyle().Foreground(SuccessColor)
	Error   = lipgloss.NewStyle().Foreground(ErrorColor).Bold(true)
	Warn    = lipgloss.NewStyle().Foreground(WarnColor)
	Accent  = lipgloss.NewStyle().Foreground(AccentColor).Bold(true)
	Muted   = lipgloss.NewStyle().Foreground(MutedColor)
)

// SetColorMode forces or disables color output. "auto" leaves terminal
// detection alone; "always" and "never" override it, which matters when
// output is piped.
func SetColorMode(mode string) error {
	switch mode {
	case "auto":
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI256)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	default:
		return fmt.Errorf("unknown color mode %q", mode)
	}
	return nil
}
