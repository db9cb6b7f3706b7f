package rail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/tesso57/socialfeed/internal/domain/social"
	"github.com/tesso57/socialfeed/internal/presentation/tui/glyph"
	"github.com/tesso57/socialfeed/internal/presentation/tui/palette"
	"github.com/tesso57/socialfeed/internal/presentation/tui/textutil"
)

// Group renders one suggested group with its member count, a dot per visible
// member avatar and a join button.
func Group(g social.GroupSuggestion, width int, selected bool, colors palette.Palette) string {
	muted := lipgloss.NewStyle().Foreground(colors.Muted)
	text := max(width-2, 0)

	lines := []string{
		lipgloss.NewStyle().Bold(true).Render(textutil.Truncate(glyph.For(social.IconGroup)+" "+g.Name, text)),
	}
	if g.Tagline != "" {
		lines = append(lines, muted.Render(textutil.Truncate(g.Tagline, text)))
	}
	members := fmt.Sprintf("%s members", humanize.Comma(int64(g.MemberCount)))
	if n := len(g.VisibleMemberAvatars()); n > 0 {
		members += " " + strings.Repeat("●", n)
	}
	lines = append(lines,
		muted.Render(textutil.Truncate(members, text)),
		lipgloss.NewStyle().Foreground(colors.Primary).Render("[ Join ]"),
	)

	m := marker(selected, colors)
	for i, line := range lines {
		lines[i] = m + " " + line
	}
	return strings.Join(lines, "\n")
}

// Contact renders one chat contact with its presence dot.
func Contact(c social.ChatContact, width int, selected bool, colors palette.Palette) string {
	dot := glyph.Presence(c.Presence)
	switch c.Presence {
	case social.Online:
		dot = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render(dot)
	case social.Away:
		dot = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Render(dot)
	default:
		dot = lipgloss.NewStyle().Foreground(colors.Muted).Render(dot)
	}
	return marker(selected, colors) + " " + dot + " " + textutil.Truncate(c.Name, max(width-4, 0))
}
