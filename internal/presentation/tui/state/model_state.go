package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/tesso57/socialfeed/internal/domain/social"
	"github.com/tesso57/socialfeed/internal/presentation/tui/metrics"
	"github.com/tesso57/socialfeed/internal/presentation/tui/palette"
	listview "github.com/tesso57/socialfeed/internal/presentation/tui/view/list"
)

// ModelState holds the presentation state for the TUI.
type ModelState struct {
	Session  Session
	Previous Session
	Focus    Focus

	NavList      list.Model
	NavDelegate  *listview.NavDelegate
	MainViewport viewport.Model
	RailViewport viewport.Model
	HeaderSearch textinput.Model
	ChatSearch   textinput.Model
	Help         help.Model
	Spinner      spinner.Model
	Keys         KeyMap
	Colors       palette.Palette

	Width      int
	Height     int
	CellWidth  int
	CellHeight int
	Frame      metrics.Frame

	Snapshot social.Snapshot
	Contacts []social.ChatContact
	Loaded   bool
	Loading  bool
	Err      error

	// PostCursor 0 is the composer card, n is Snapshot.Posts[n-1].
	PostCursor  int
	RailCursor  int
	StoryCursor int
	StoryOffset int

	// Line offsets of selectable items inside the scroll viewports.
	PostLines []int
	RailLines []int

	StatusMessage string
}

// SelectedPost returns the post under the cursor, if any.
func (s *ModelState) SelectedPost() (social.Post, bool) {
	i := s.PostCursor - 1
	if i < 0 || i >= len(s.Snapshot.Posts) {
		return social.Post{}, false
	}
	return s.Snapshot.Posts[i], true
}
