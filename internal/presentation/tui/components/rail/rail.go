// Package rail provides the right column component: stories, group
// suggestions and chat contacts.
package rail

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/socialfeed/internal/domain/social"
	"github.com/tesso57/socialfeed/internal/presentation/tui/metrics"
	"github.com/tesso57/socialfeed/internal/presentation/tui/palette"
	"github.com/tesso57/socialfeed/internal/presentation/tui/textutil"
)

// Props defines the properties for the rail frame.
type Props struct {
	Width  int
	Height int
	Body   string
	Active bool
	Colors palette.Palette
}

// Render renders the rail frame. Width includes the left border.
func Render(p Props) string {
	if p.Width <= 0 || p.Height <= 0 {
		return ""
	}
	inner := max(p.Width-metrics.RegionBorderWidth, 0)
	return lipgloss.NewStyle().
		Width(inner).
		Height(p.Height).
		MaxHeight(p.Height).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(p.Colors.Frame(p.Active)).
		Render(textutil.Fit(p.Body, inner))
}

// ContentProps defines the scrollable content of the rail.
type ContentProps struct {
	Width       int
	Stories     []social.Story
	StoryOffset int
	StoryCursor int
	Groups      []social.GroupSuggestion
	Contacts    []social.ChatContact
	// ChatSearch is the rendered contact search input.
	ChatSearch string
	// Cursor indexes Entries.
	Cursor  int
	Focused bool
	Colors  palette.Palette
}

// EntryKind identifies what a rail cursor position points at.
type EntryKind int

const (
	StoriesEntry EntryKind = iota
	GroupEntry
	ContactEntry
	// ControlEntry is a link in a section title; Entry.Index holds the Control.
	ControlEntry
)

// Control is an action link drawn next to a section title.
type Control int

const (
	ArchiveStories Control = iota
	StorySettings
	SeeAllGroups
	NewMessage
	NewGroupChat
	ChatSettings
)

var controlLabels = [...]string{
	ArchiveStories: "Archive",
	StorySettings:  "Settings",
	SeeAllGroups:   "See All",
	NewMessage:     "✉",
	NewGroupChat:   "◎",
	ChatSettings:   "⋯",
}

func (c Control) String() string {
	if c < 0 || int(c) >= len(controlLabels) {
		return ""
	}
	return controlLabels[c]
}

// Entry is one selectable position of the rail.
type Entry struct {
	Kind  EntryKind
	Index int
}

// Entries lists the selectable rail positions in display order: each
// section's title links come before its items.
func Entries(groups, contacts int) []Entry {
	out := make([]Entry, 0, 7+groups+contacts)
	out = append(out,
		Entry{Kind: ControlEntry, Index: int(ArchiveStories)},
		Entry{Kind: ControlEntry, Index: int(StorySettings)},
		Entry{Kind: StoriesEntry},
		Entry{Kind: ControlEntry, Index: int(SeeAllGroups)},
	)
	for i := range groups {
		out = append(out, Entry{Kind: GroupEntry, Index: i})
	}
	out = append(out,
		Entry{Kind: ControlEntry, Index: int(NewMessage)},
		Entry{Kind: ControlEntry, Index: int(NewGroupChat)},
		Entry{Kind: ControlEntry, Index: int(ChatSettings)},
	)
	for i := range contacts {
		out = append(out, Entry{Kind: ContactEntry, Index: i})
	}
	return out
}

// IndexOf returns the position of the first entry of kind, or -1.
func IndexOf(entries []Entry, kind EntryKind) int {
	for i, e := range entries {
		if e.Kind == kind {
			return i
		}
	}
	return -1
}

// Content renders the rail sections and returns the first line of every
// entry.
func Content(p ContentProps) (string, []int) {
	if p.Width <= 0 {
		return "", nil
	}
	entries := Entries(len(p.Groups), len(p.Contacts))
	offsets := make([]int, len(entries))
	next := 0
	selected := func(i int) bool { return p.Focused && p.Cursor == i }

	var b strings.Builder
	lines := 0
	write := func(block string) {
		if lines > 0 {
			b.WriteString("\n")
		}
		b.WriteString(block)
		lines += lipgloss.Height(block)
	}
	item := func(render func(sel bool) string) {
		offsets[next] = lines
		write(render(selected(next)))
		next++
	}

	heading := lipgloss.NewStyle().Bold(true)
	muted := lipgloss.NewStyle().Foreground(p.Colors.Muted)
	title := func(name, sep string, controls ...Control) {
		links := make([]string, len(controls))
		for i, c := range controls {
			offsets[next] = lines
			links[i] = controlLink(c, selected(next), p.Colors)
			next++
		}
		write(sectionTitle(heading.Render(name), strings.Join(links, muted.Render(sep)), p.Width))
	}

	title("Stories", " · ", ArchiveStories, StorySettings)
	item(func(sel bool) string {
		return Stories(StoriesProps{
			Width:    p.Width,
			Stories:  p.Stories,
			Offset:   p.StoryOffset,
			Cursor:   p.StoryCursor,
			Selected: sel,
			Colors:   p.Colors,
		})
	})

	write("")
	title("Suggested Groups", "", SeeAllGroups)
	for _, g := range p.Groups {
		item(func(sel bool) string { return Group(g, p.Width, sel, p.Colors) })
	}

	write("")
	title("Contacts", " ", NewMessage, NewGroupChat, ChatSettings)
	if p.ChatSearch != "" {
		write(textutil.Truncate(p.ChatSearch, p.Width))
	}
	if len(p.Contacts) == 0 {
		write(muted.Render("No contacts found."))
	}
	for _, c := range p.Contacts {
		item(func(sel bool) string { return Contact(c, p.Width, sel, p.Colors) })
	}
	return b.String(), offsets
}

func controlLink(c Control, selected bool, colors palette.Palette) string {
	if selected {
		return lipgloss.NewStyle().Foreground(colors.Accent).Bold(true).Render("▸" + c.String())
	}
	return lipgloss.NewStyle().Foreground(colors.Muted).Render(c.String())
}

func sectionTitle(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return textutil.Truncate(left, width)
	}
	return left + strings.Repeat(" ", gap) + right
}

func marker(selected bool, colors palette.Palette) string {
	if selected {
		return lipgloss.NewStyle().Foreground(colors.Accent).Render("▌")
	}
	return " "
}
