package mainview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/tesso57/socialfeed/internal/domain/social"
	"github.com/tesso57/socialfeed/internal/presentation/tui/metrics"
	"github.com/tesso57/socialfeed/internal/presentation/tui/palette"
	"github.com/tesso57/socialfeed/internal/presentation/tui/textutil"
)

// FeedProps defines the content of the scrollable feed.
type FeedProps struct {
	Width   int
	Profile social.Profile
	Posts   []social.Post
	// Cursor 0 selects the composer, n selects Posts[n-1].
	Cursor  int
	Focused bool
	Colors  palette.Palette
}

// Feed renders the composer and post cards stacked vertically. It also
// returns the first line of every card so callers can scroll to a selection.
func Feed(p FeedProps) (string, []int) {
	if p.Width <= 0 {
		return "", nil
	}
	cards := make([]string, 0, len(p.Posts)+1)
	cards = append(cards, card(composer(p), p.Width, p.Cursor == 0 && p.Focused, p.Colors))
	for i, post := range p.Posts {
		cards = append(cards, card(PostBody(post, p.Width-4, p.Colors), p.Width, p.Cursor == i+1 && p.Focused, p.Colors))
	}

	offsets := make([]int, len(cards))
	line := 0
	for i, c := range cards {
		offsets[i] = line
		line += lipgloss.Height(c) + metrics.CardGap
	}
	return strings.Join(cards, "\n"+strings.Repeat("\n", metrics.CardGap)), offsets
}

func card(body string, width int, selected bool, colors palette.Palette) string {
	return lipgloss.NewStyle().
		Width(max(width-2, 0)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colors.Frame(selected)).
		Padding(0, 1).
		Render(body)
}

func composer(p FeedProps) string {
	name := p.Profile.ShortName
	if name == "" {
		name = p.Profile.Name
	}
	muted := lipgloss.NewStyle().Foreground(p.Colors.Muted)
	prompt := "What's on your mind?"
	if name != "" {
		prompt = fmt.Sprintf("What's on your mind, %s?", name)
	}
	width := max(p.Width-4, 0)
	return strings.Join([]string{
		avatar(p.Profile.Name) + " " + muted.Render(textutil.Truncate(prompt, max(width-5, 0))),
		muted.Render(strings.Repeat("─", width)),
		textutil.Truncate("▶ Live video   ▣ Photo/Video   ☺ Feeling/Activity", width),
	}, "\n")
}

// PostBody renders one post for the given inner width. Engagement counters
// are shown only when positive.
func PostBody(post social.Post, width int, colors palette.Palette) string {
	if width <= 0 {
		return ""
	}
	muted := lipgloss.NewStyle().Foreground(colors.Muted)
	bold := lipgloss.NewStyle().Bold(true)

	author := bold.Render(post.AuthorName)
	if post.AuthorHandle != "" {
		author += " " + muted.Render("@"+post.AuthorHandle)
	}
	meta := joinNonEmpty(" · ", post.Timestamp, privacyLabel(post.Privacy))

	lines := []string{
		textutil.Truncate(avatar(post.AuthorName)+" "+author, width),
		textutil.Truncate("     "+muted.Render(meta), width),
	}
	if text := strings.TrimSpace(post.Text); text != "" {
		lines = append(lines, "", textutil.Wrap(text, width))
	}
	if post.ImageURL != "" {
		lines = append(lines, "", muted.Render(textutil.Truncate("▣ "+post.ImageURL, width)))
	}
	if loc := post.Location; loc != nil && loc.Name != "" {
		lines = append(lines, "", textutil.Truncate("⌖ "+bold.Render(loc.Name), width))
		if detail := joinNonEmpty(" · ", loc.Type, loc.TaggedFriends); detail != "" {
			lines = append(lines, muted.Render(textutil.Truncate("  "+detail, width)))
		}
		lines = append(lines, muted.Render("  [v] Save"))
	}
	if post.HasEngagement() {
		lines = append(lines, "", textutil.Truncate(engagement(post), width))
	}
	lines = append(lines,
		muted.Render(strings.Repeat("─", width)),
		textutil.Truncate("[L] Like   [C] Comment   [S] Share   [o] ⋯", width),
	)
	return strings.Join(lines, "\n")
}

func engagement(post social.Post) string {
	parts := make([]string, 0, 3)
	if post.Likes > 0 {
		parts = append(parts, "♥ "+humanize.Comma(int64(post.Likes)))
	}
	if post.Comments > 0 {
		parts = append(parts, countLabel(post.Comments, "comment"))
	}
	if post.Shares > 0 {
		parts = append(parts, countLabel(post.Shares, "share"))
	}
	return strings.Join(parts, "   ")
}

func countLabel(n int, noun string) string {
	if n != 1 {
		noun += "s"
	}
	return humanize.Comma(int64(n)) + " " + noun
}

func privacyLabel(p social.Privacy) string {
	switch p {
	case social.PrivacyFriends:
		return "☺ Friends"
	case social.PrivacyOnlyMe:
		return "⚿ Only me"
	case social.PrivacyPublic:
		return "◍ Public"
	default:
		return ""
	}
}

func avatar(name string) string {
	initials := social.Initials(name, 2)
	if initials == "" {
		initials = "?"
	}
	return lipgloss.NewStyle().Bold(true).Render("(" + initials + ")")
}

func joinNonEmpty(sep string, values ...string) string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return strings.Join(out, sep)
}
