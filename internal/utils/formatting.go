package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// TruncateString truncates a string to a maximum display width with ellipsis
func TruncateString(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}

	runes := []rune(s)
	if maxWidth <= 3 {
		return string(runes[:min(maxWidth, len(runes))])
	}

	for len(runes) > 0 && lipgloss.Width(string(runes))+3 > maxWidth {
		runes = runes[:len(runes)-1]
	}
	return strings.TrimRight(string(runes), " ") + "..."
}

// PadString pads a string to a specific display width
func PadString(s string, width int, padChar rune) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(string(padChar), width-w)
}

// FormatKeyHint renders a "key label" pair for help and link text
func FormatKeyHint(key, label string) string {
	return fmt.Sprintf("[%s] %s", key, label)
}

// FormatSelection renders a cycling picker value
func FormatSelection(label string, focused bool) string {
	if focused {
		return "‹ " + label + " ›"
	}
	return "  " + label + "  "
}

// FormatCopyright returns the footer copyright line for the given time
func FormatCopyright(owner string, now time.Time) string {
	return fmt.Sprintf("© %d %s. All rights reserved.", now.Year(), owner)
}
