package rail

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/socialfeed/internal/domain/social"
	"github.com/tesso57/socialfeed/internal/presentation/tui/palette"
	"github.com/tesso57/socialfeed/internal/presentation/tui/textutil"
)

const (
	// StoryCardWidth is the outer width of one story card, border included.
	StoryCardWidth = 11
	// AddStory is the story cursor position of the add-story card.
	AddStory = -1
)

// StoriesProps defines the horizontally scrolled story strip.
type StoriesProps struct {
	Width    int
	Stories  []social.Story
	Offset   int
	Cursor   int
	Selected bool
	Colors   palette.Palette
}

// VisibleStories returns how many story cards fit in width next to the
// "add story" card.
func VisibleStories(width int) int {
	return max((width-StoryCardWidth)/StoryCardWidth, 1)
}

// ClampOffset returns the strip offset that keeps cursor in view. The
// add-story card is always shown, so AddStory scrolls to the start.
func ClampOffset(offset, cursor, total, width int) int {
	visible := VisibleStories(width)
	if cursor < offset {
		offset = cursor
	}
	if cursor >= offset+visible {
		offset = cursor - visible + 1
	}
	return max(min(offset, total-visible), 0)
}

// Stories renders the strip: an add-story card followed by the stories from
// Offset that fit, with arrows when more exist on either side.
func Stories(p StoriesProps) string {
	muted := lipgloss.NewStyle().Foreground(p.Colors.Muted)
	cards := []string{storyCard("+", "Add story", false, p.Selected && p.Cursor == AddStory, p.Colors)}

	visible := VisibleStories(p.Width)
	offset := max(min(p.Offset, len(p.Stories)-1), 0)
	end := min(offset+visible, len(p.Stories))
	for i := offset; i < end; i++ {
		s := p.Stories[i]
		cards = append(cards, storyCard(social.Initials(s.UserName, 2), s.UserName, s.Viewed, p.Selected && i == p.Cursor, p.Colors))
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, cards...)

	var arrows []string
	if offset > 0 {
		arrows = append(arrows, "‹ more")
	}
	if end < len(p.Stories) {
		arrows = append(arrows, "more ›")
	}
	if len(arrows) > 0 {
		strip += "\n" + muted.Render(strings.Join(arrows, "  "))
	}
	return textutil.Fit(strip, p.Width)
}

func storyCard(mark, name string, viewed, selected bool, colors palette.Palette) string {
	border := colors.Primary
	switch {
	case selected:
		border = colors.Accent
	case viewed:
		border = colors.Muted
	}
	inner := StoryCardWidth - 2
	return lipgloss.NewStyle().
		Width(inner).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Render(lipgloss.PlaceHorizontal(inner, lipgloss.Center, mark) + "\n" + textutil.Truncate(name, inner))
}
