package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"premrishi/fitterm/internal/navigation"
	"premrishi/fitterm/internal/utils"
)

// CompactWidth is the terminal width below which the links collapse behind
// the menu toggle.
const CompactWidth = 80

func isCompact(width int) bool {
	return width < CompactWidth
}

// renderNavBar is a pure projection of the navigation state.
func renderNavBar(state navigation.State, width int) string {
	barStyle := lipgloss.NewStyle().
		Width(width).
		Padding(0, 2)
	if state.IsScrolled {
		barStyle = barStyle.Background(lipgloss.Color(utils.Colours.Surface))
	}

	logo := renderLogo()

	var right string
	if isCompact(width) {
		toggle := "☰ Menu [m]"
		if state.IsMobileMenuOpen {
			toggle = "✕ Close [m]"
		}
		right = lipgloss.NewStyle().Foreground(lipgloss.Color(utils.Colours.Text)).Render(toggle)
	} else {
		linkStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(utils.Colours.Subtext))
		links := make([]string, 0, len(navigation.Links)+1)
		for i, link := range navigation.Links {
			links = append(links, linkStyle.Render(utils.FormatKeyHint(fmt.Sprint(i+1), strings.ToUpper(link.Label))))
		}
		links = append(links, lipgloss.NewStyle().
			Foreground(lipgloss.Color(utils.Colours.Text)).
			Background(lipgloss.Color(utils.Colours.Primary)).
			Padding(0, 1).
			Render("Book Now [c]"))
		right = strings.Join(links, "  ")
	}

	inner := width - 4
	gap := inner - lipgloss.Width(logo) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return barStyle.MaxHeight(1).Render(logo + strings.Repeat(" ", gap) + right)
}

// renderMobileMenu returns the dropdown lines shown under the bar while
// the compact menu is open.
func renderMobileMenu(width int) []string {
	itemStyle := lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		Foreground(lipgloss.Color(utils.Colours.Text)).
		Background(lipgloss.Color(utils.Colours.Surface))

	lines := make([]string, 0, len(navigation.Links)+1)
	for i, link := range navigation.Links {
		lines = append(lines, itemStyle.Render(utils.FormatKeyHint(fmt.Sprint(i+1), strings.ToUpper(link.Label))))
	}
	lines = append(lines, itemStyle.
		Foreground(lipgloss.Color(utils.Colours.Primary)).
		Bold(true).
		Render(utils.FormatKeyHint("c", "Book Now")))
	return lines
}
