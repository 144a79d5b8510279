package ui

import "strings"

const (
	reset      = "\033[0m"
	bold       = "\033[1m"
	titleAmber = "\033[38;5;214m"
	hintGray   = "\033[38;5;244m"
	columnMint = "\033[38;5;121m"
)

const (
	title    = "Process Monitor"
	quitHint = "Press 'q' to quit"
)

// Header renders the title line, colored when color is set.
func Header(color bool) string {
	if !color {
		return title + " | " + quitHint
	}
	var b strings.Builder
	b.WriteString(bold + titleAmber + title + reset)
	b.WriteString(hintGray + " | " + quitHint + reset)
	return b.String()
}

// IsQuitKey reports whether b ends the monitor.
func IsQuitKey(b byte) bool {
	return b == 'q' || b == 'Q'
}
