package common

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

// RelativeTime renders t relative to now, compact: "just now", "5m", "3h",
// "2d". Anything older than a week falls back to a date.
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	default:
		return t.Format("Jan 2")
	}
}

// PadCenter centers text within width columns, accounting for wide runes.
// Text wider than width is returned unchanged.
func PadCenter(text string, width int) string {
	w := runewidth.StringWidth(text)
	if w >= width {
		return text
	}
	left := (width - w) / 2
	right := width - w - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

// TruncateRight clips text to width columns, appending "…" when clipped.
func TruncateRight(text string, width int) string {
	if runewidth.StringWidth(text) <= width {
		return text
	}
	if width <= 1 {
		return "…"
	}
	return runewidth.Truncate(text, width-1, "") + "…"
}
