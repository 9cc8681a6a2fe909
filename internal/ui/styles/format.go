// Package styles contains Lip Gloss style definitions.
package styles

import (
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
)

// PadRight pads s with spaces to width display cells. Wide runes count as
// two cells, so columns stay aligned for non-ASCII package names.
func PadRight(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", gap, "")
}

// Wrap word-wraps s to the given width. Width <= 0 returns s unchanged.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wordwrap.String(s, width)
}

// FormatDuration renders d in the coarsest unit that still reads well:
// sub-second runs in milliseconds, everything else in seconds or minutes.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
	}
}
