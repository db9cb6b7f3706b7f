// Package header provides the fixed top bar component.
package header

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/socialfeed/internal/domain/social"
	"github.com/tesso57/socialfeed/internal/presentation/tui/glyph"
	"github.com/tesso57/socialfeed/internal/presentation/tui/palette"
	"github.com/tesso57/socialfeed/internal/presentation/tui/textutil"
)

// Props defines the properties for the header component.
type Props struct {
	Width  int
	Height int
	Brand  string
	// Search is the rendered search input; empty hides the search box.
	Search      string
	Links       []social.HeaderLink
	ProfileName string
	Actions     []social.QuickAction
	Colors      palette.Palette
}

// Render renders the header component.
func Render(p Props) string {
	if p.Width <= 0 || p.Height <= 0 {
		return ""
	}

	left := brand(p)
	if p.Search != "" {
		left += " " + p.Search
	}
	center := links(p)
	right := actions(p)
	if p.ProfileName != "" {
		right = lipgloss.NewStyle().Bold(true).Render(glyph.For(social.IconAccount)+" "+p.ProfileName) + "  " + right
	}

	line := arrange(p.Width, left, center, right)

	style := lipgloss.NewStyle().Width(p.Width)
	inner := p.Height
	if p.Height >= 2 {
		style = style.
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(p.Colors.Border)
		inner = p.Height - 1
	}
	body := lipgloss.PlaceVertical(inner, lipgloss.Center, line)
	return style.Render(body)
}

func brand(p Props) string {
	name := strings.TrimSpace(p.Brand)
	mark := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("15")).
		Background(p.Colors.Primary).
		Padding(0, 1).
		Render(glyph.For(social.IconBrand))
	if name == "" {
		return mark
	}
	return mark + " " + lipgloss.NewStyle().Bold(true).Foreground(p.Colors.Primary).Render(name)
}

func links(p Props) string {
	if len(p.Links) == 0 {
		return ""
	}
	parts := make([]string, 0, len(p.Links))
	for _, l := range p.Links {
		text := glyph.For(l.Icon) + " " + l.Label
		style := lipgloss.NewStyle().Foreground(p.Colors.Muted)
		if l.Active {
			style = lipgloss.NewStyle().Foreground(p.Colors.Primary).Underline(true)
		}
		parts = append(parts, style.Render(text))
	}
	return strings.Join(parts, "   ")
}

func actions(p Props) string {
	parts := make([]string, 0, len(p.Actions))
	for _, a := range p.Actions {
		text := glyph.For(a.Icon)
		if badge := social.BadgeLabel(a.BadgeCount); badge != "" {
			text += lipgloss.NewStyle().
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("160")).
				Render(badge)
		}
		parts = append(parts, fmt.Sprintf("(%s)", text))
	}
	return strings.Join(parts, " ")
}

// arrange places left, center and right on one line of the given width,
// dropping the center and then truncating when space runs out.
func arrange(width int, left, center, right string) string {
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)
	if center != "" && lw+cw+rw+4 <= width {
		start := max(min((width-cw)/2, width-cw-rw-2), lw+2)
		gapL := start - lw
		gapR := max(width-lw-gapL-cw-rw, 1)
		return left + strings.Repeat(" ", gapL) + center + strings.Repeat(" ", gapR) + right
	}
	if lw+rw+1 <= width {
		return left + strings.Repeat(" ", width-lw-rw) + right
	}
	return textutil.Truncate(left+" "+right, width)
}
