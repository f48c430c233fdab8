package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Run summary styles.
var (
	okStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color("28")).
		Padding(0, 1)

	failStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("124")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(14)
)

// renderSummary formats a run summary: a status badge followed by
// aligned label/value rows.
func renderSummary(ok bool, title string, rows [][2]string) string {
	var b strings.Builder
	badge := okStyle.Render("OK")
	if !ok {
		badge = failStyle.Render("FAILED")
	}
	fmt.Fprintf(&b, "%s %s\n", badge, title)
	for _, row := range rows {
		fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render(row[0]), row[1])
	}
	return b.String()
}
