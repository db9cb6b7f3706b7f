// Package sidebar provides the left navigation component.
package sidebar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/socialfeed/internal/presentation/tui/metrics"
	"github.com/tesso57/socialfeed/internal/presentation/tui/palette"
	"github.com/tesso57/socialfeed/internal/presentation/tui/textutil"
)

// Props defines the properties for the sidebar component.
type Props struct {
	View        string
	Width       int
	Height      int
	FooterLinks []string
	Active      bool
	Colors      palette.Palette
}

// Render renders the sidebar component. Width includes the right border.
func Render(p Props) string {
	if p.Width <= 0 || p.Height <= 0 {
		return ""
	}
	inner := max(p.Width-metrics.RegionBorderWidth, 0)

	body := p.View
	if footer := Footer(p.FooterLinks, inner); footer != "" {
		listHeight := max(p.Height-lipgloss.Height(footer), 0)
		body = lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Height(listHeight).MaxHeight(listHeight).Render(body),
			lipgloss.NewStyle().Foreground(p.Colors.Muted).Render(footer),
		)
	}

	return lipgloss.NewStyle().
		Width(inner).
		Height(p.Height).
		MaxHeight(p.Height).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(p.Colors.Frame(p.Active)).
		Render(textutil.Fit(body, inner))
}

// Footer returns the footer link line wrapped to width.
func Footer(links []string, width int) string {
	if len(links) == 0 || width <= 0 {
		return ""
	}
	return textutil.Wrap(" "+strings.Join(links, " · "), width)
}

// FooterHeight returns the rows taken by the footer links at width.
func FooterHeight(links []string, width int) int {
	footer := Footer(links, max(width-metrics.RegionBorderWidth, 0))
	if footer == "" {
		return 0
	}
	return lipgloss.Height(footer)
}
