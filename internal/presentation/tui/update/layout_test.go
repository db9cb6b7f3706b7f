package update

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/socialfeed/internal/application/settings"
	"github.com/tesso57/socialfeed/internal/domain/layout"
	"github.com/tesso57/socialfeed/internal/domain/social"
	"github.com/tesso57/socialfeed/internal/presentation/tui/metrics"
	"github.com/tesso57/socialfeed/internal/presentation/tui/state"
)

func TestApplyLayout_SizesRegions(t *testing.T) {
	s := newLayoutTestState()
	s.Width, s.Height = 160, 40
	ApplyLayout(s)

	f := s.Frame
	require.Equal(t, layout.Wide, f.Layout.Tier)
	assert.Equal(t, 39, f.HeaderRows+f.BodyRows, "page sits above a one-line footer")
	assert.Equal(t, f.ContentCols, s.MainViewport.Width)
	assert.Equal(t, f.BodyRows, s.MainViewport.Height)
	assert.Equal(t, f.RightCols-metrics.RegionBorderWidth, s.RailViewport.Width)
	assert.Equal(t, f.LeftCols-metrics.RegionBorderWidth, s.NavList.Width())
	assert.Less(t, s.NavList.Height(), f.BodyRows, "sidebar footer takes rows from the list")
}

func TestApplyLayout_HiddenRegions(t *testing.T) {
	s := newLayoutTestState()
	s.Width, s.Height = 80, 40
	s.Focus = state.FocusRightRail
	s.Session = state.HeaderSearchView
	ApplyLayout(s)

	assert.Equal(t, layout.Narrow, s.Frame.Layout.Tier)
	assert.Zero(t, s.Frame.LeftCols)
	assert.Zero(t, s.Frame.RightCols)
	assert.Equal(t, 80, s.Frame.MainCols)
	assert.Equal(t, state.FocusMain, s.Focus)
	assert.Equal(t, state.BrowseView, s.Session)
	assert.Zero(t, s.RailViewport.Width)
	assert.Nil(t, s.RailLines)
}

func TestApplyLayout_IgnoresUnsizedTerminal(t *testing.T) {
	s := newLayoutTestState()
	ApplyLayout(s)
	assert.Equal(t, metrics.Frame{}, s.Frame)
}

func TestApplyLayout_UsesCellSize(t *testing.T) {
	s := newLayoutTestState()
	s.Width, s.Height = 100, 40

	ApplyLayout(s)
	assert.Equal(t, layout.Medium, s.Frame.Layout.Tier, "100 cols of 8px is 800px")

	s.CellWidth = 12
	ApplyLayout(s)
	assert.Equal(t, layout.Wide, s.Frame.Layout.Tier, "100 cols of 12px is 1200px")
}

func TestFooterHeight_WrapsOnNarrowTerminal(t *testing.T) {
	s := newLayoutTestState()
	s.Width = 200
	wide := footerHeight(s)
	assert.Equal(t, 1, wide)

	s.Width = 20
	s.StatusMessage = "header.action friend-requests"
	assert.GreaterOrEqual(t, footerHeight(s), wide)
}

func TestFooterView_FitsWidth(t *testing.T) {
	s := newLayoutTestState()
	s.StatusMessage = "header.action friend-requests"
	for _, width := range []int{1, 13, 24, 40, 80} {
		s.Width = width
		footerHeight(s)
		for _, line := range strings.Split(FooterView(s), "\n") {
			assert.LessOrEqual(t, lipgloss.Width(line), width, "width %d", width)
		}
	}
}

func TestScrollTo(t *testing.T) {
	vp := viewport.New(10, 10)
	lines := make([]string, 30)
	vp.SetContent(lipgloss.JoinVertical(lipgloss.Left, lines...))
	offsets := []int{0, 4, 12, 20}

	scrollTo(&vp, offsets, 2, 30)
	assert.Equal(t, 10, vp.YOffset, "item 2 spans 12..20 and is bottom-aligned")

	scrollTo(&vp, offsets, 1, 30)
	assert.Equal(t, 4, vp.YOffset)

	scrollTo(&vp, offsets, 3, 30)
	assert.Equal(t, 20, vp.YOffset, "tall items show their first line")

	scrollTo(&vp, offsets, 9, 30)
	assert.Equal(t, 20, vp.YOffset, "out of range is ignored")
}

func TestClampCursor(t *testing.T) {
	assert.Equal(t, 0, clampCursor(-3, 4))
	assert.Equal(t, 3, clampCursor(9, 4))
	assert.Equal(t, 2, clampCursor(2, 4))
	assert.Equal(t, 0, clampCursor(5, 0))
}

func newLayoutTestState() *state.ModelState {
	lipgloss.SetColorProfile(termenv.Ascii)
	keys := state.NewKeyMap(settings.KeyMapConfig{
		Up: "k", Down: "j", Left: "h", Right: "l", Top: "g", Bottom: "G",
		NextRegion: "tab", PrevRegion: "shift+tab",
		Open: "enter", Back: "esc", Search: "/", ChatSearch: "ctrl+f",
		Like: "L", Comment: "C", Share: "S", Options: "o", SaveLocation: "v",
		Quit: "q",
	})
	return &state.ModelState{
		Session:      state.BrowseView,
		Focus:        state.FocusMain,
		NavList:      list.New(nil, list.NewDefaultDelegate(), 0, 0),
		MainViewport: viewport.New(0, 0),
		RailViewport: viewport.New(0, 0),
		HeaderSearch: textinput.New(),
		ChatSearch:   textinput.New(),
		Help:         help.New(),
		Keys:         keys,
		CellWidth:    8,
		CellHeight:   16,
		Loaded:       true,
		Snapshot: social.Snapshot{
			FooterLinks: []string{"Privacy", "Terms", "Cookies", "More"},
			Posts: []social.Post{
				{ID: "p1", AuthorName: "Ann Lee", Text: "hello"},
			},
			Contacts: []social.ChatContact{{ID: "c1", Name: "Ann Lee"}},
		},
	}
}
