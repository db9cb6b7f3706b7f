package update

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/socialfeed/internal/application/settings"
	"github.com/tesso57/socialfeed/internal/domain/layout"
	"github.com/tesso57/socialfeed/internal/presentation/tui/components/sidebar"
	"github.com/tesso57/socialfeed/internal/presentation/tui/metrics"
	"github.com/tesso57/socialfeed/internal/presentation/tui/state"
	"github.com/tesso57/socialfeed/internal/presentation/tui/textutil"
)

// ApplyLayout recomputes the page layout for the terminal size and resizes
// every region. Focus and search sessions leave regions that disappeared.
func ApplyLayout(s *state.ModelState) {
	if s.Width <= 0 || s.Height <= 0 {
		return
	}

	cellW, cellH := cellSize(s)
	pageRows := max(s.Height-footerHeight(s), 0)
	l := layout.ForViewport(float64(s.Width*cellW), float64(pageRows*cellH))
	s.Frame = metrics.Project(l, s.Width, pageRows, cellW, cellH)

	dropHiddenFocus(s)

	f := s.Frame
	navWidth := max(f.LeftCols-metrics.RegionBorderWidth, 0)
	navHeight := max(f.BodyRows-sidebar.FooterHeight(s.Snapshot.FooterLinks, f.LeftCols), 0)
	s.NavList.SetSize(navWidth, navHeight)

	s.MainViewport.Width = f.ContentCols
	s.MainViewport.Height = f.BodyRows
	s.RailViewport.Width = max(f.RightCols-metrics.RegionBorderWidth, 0)
	s.RailViewport.Height = f.BodyRows

	s.HeaderSearch.Width = max(min(f.MainCols/2, 30), 10)
	s.ChatSearch.Width = max(s.RailViewport.Width-4, 1)

	RefreshContent(s)
}

func dropHiddenFocus(s *state.ModelState) {
	if !s.Frame.Visible(s.Focus.Region()) {
		s.Focus = state.FocusMain
	}
	switch {
	case s.Session == state.HeaderSearchView && s.Frame.Layout.Tier < layout.Medium:
		s.HeaderSearch.Blur()
		s.Session = state.BrowseView
	case s.Session == state.ChatSearchView && !s.Frame.Visible(layout.RightRail):
		s.ChatSearch.Blur()
		s.Session = state.BrowseView
	}
}

func cellSize(s *state.ModelState) (int, int) {
	return settings.Settings{Display: settings.DisplayConfig{
		CellWidth:  s.CellWidth,
		CellHeight: s.CellHeight,
	}}.CellSize()
}

func footerHeight(s *state.ModelState) int {
	s.Help.Width = s.Width
	return lipgloss.Height(FooterView(s))
}

// FooterView returns the rendered footer for the current state, cut to the
// terminal width.
func FooterView(s *state.ModelState) string {
	return textutil.Fit(state.FooterText(s.Session, s.Loading, s.StatusMessage, s.Help.View(&s.Keys)), s.Width)
}
