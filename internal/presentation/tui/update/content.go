package update

import (
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/socialfeed/internal/domain/layout"
	mainview "github.com/tesso57/socialfeed/internal/presentation/tui/components/main"
	"github.com/tesso57/socialfeed/internal/presentation/tui/components/rail"
	"github.com/tesso57/socialfeed/internal/presentation/tui/state"
)

// RefreshContent rebuilds the scrollable region contents and scrolls each
// viewport so its cursor stays visible.
func RefreshContent(s *state.ModelState) {
	if s.NavDelegate != nil {
		s.NavDelegate.Focused = s.Focus == state.FocusLeftNav
	}
	refreshMain(s)
	refreshRail(s)
}

func refreshMain(s *state.ModelState) {
	s.PostCursor = clampCursor(s.PostCursor, len(s.Snapshot.Posts)+1)
	content, offsets := mainview.Feed(mainview.FeedProps{
		Width:   s.Frame.ContentCols,
		Profile: s.Snapshot.Profile,
		Posts:   s.Snapshot.Posts,
		Cursor:  s.PostCursor,
		Focused: s.Focus == state.FocusMain,
		Colors:  s.Colors,
	})
	s.PostLines = offsets
	s.MainViewport.SetContent(content)
	scrollTo(&s.MainViewport, offsets, s.PostCursor, lipgloss.Height(content))
}

func refreshRail(s *state.ModelState) {
	if !s.Frame.Visible(layout.RightRail) {
		s.RailLines = nil
		s.RailViewport.SetContent("")
		return
	}
	entries := rail.Entries(len(s.Snapshot.Groups), len(s.Contacts))
	s.RailCursor = clampCursor(s.RailCursor, len(entries))
	s.StoryCursor = max(min(s.StoryCursor, len(s.Snapshot.Stories)-1), rail.AddStory)
	s.StoryOffset = rail.ClampOffset(s.StoryOffset, s.StoryCursor, len(s.Snapshot.Stories), s.RailViewport.Width)

	search := ""
	if s.Session == state.ChatSearchView || s.ChatSearch.Value() != "" {
		search = s.ChatSearch.View()
	}
	content, offsets := rail.Content(rail.ContentProps{
		Width:       s.RailViewport.Width,
		Stories:     s.Snapshot.Stories,
		StoryOffset: s.StoryOffset,
		StoryCursor: s.StoryCursor,
		Groups:      s.Snapshot.Groups,
		Contacts:    s.Contacts,
		ChatSearch:  search,
		Cursor:      s.RailCursor,
		Focused:     s.Focus == state.FocusRightRail,
		Colors:      s.Colors,
	})
	s.RailLines = offsets
	s.RailViewport.SetContent(content)
	scrollTo(&s.RailViewport, offsets, s.RailCursor, lipgloss.Height(content))
}

// scrollTo adjusts the viewport so the item starting at offsets[idx] is in
// view, preferring to show the whole item.
func scrollTo(vp *viewport.Model, offsets []int, idx, total int) {
	if idx < 0 || idx >= len(offsets) || vp.Height <= 0 {
		return
	}
	start := offsets[idx]
	end := total
	if idx+1 < len(offsets) {
		end = offsets[idx+1]
	}
	switch {
	case start < vp.YOffset:
		vp.SetYOffset(start)
	case end > vp.YOffset+vp.Height:
		vp.SetYOffset(min(start, end-vp.Height))
	}
}

func clampCursor(cursor, n int) int {
	if n <= 0 {
		return 0
	}
	return max(min(cursor, n-1), 0)
}
