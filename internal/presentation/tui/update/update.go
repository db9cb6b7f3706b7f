// Package update holds UI update logic for the TUI.
package update

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/socialfeed/internal/application/usecase"
	"github.com/tesso57/socialfeed/internal/domain/layout"
	"github.com/tesso57/socialfeed/internal/domain/social"
	"github.com/tesso57/socialfeed/internal/presentation/tui/components/rail"
	"github.com/tesso57/socialfeed/internal/presentation/tui/intent"
	"github.com/tesso57/socialfeed/internal/presentation/tui/presenter"
	"github.com/tesso57/socialfeed/internal/presentation/tui/state"
)

// Deps groups external dependencies for updates.
type Deps struct {
	Feed         *usecase.FeedService
	Interactions *usecase.InteractionService
	Log          *slog.Logger
}

func (d Deps) logger() *slog.Logger {
	if d.Log == nil {
		return slog.Default()
	}
	return d.Log
}

// SnapshotLoadedMsg is emitted after the feed data has been loaded.
type SnapshotLoadedMsg struct {
	Snapshot social.Snapshot
	Err      error
}

// LoadSnapshotCmd creates a command that loads the feed data.
func LoadSnapshotCmd(feed *usecase.FeedService) tea.Cmd {
	return func() tea.Msg {
		if feed == nil {
			return SnapshotLoadedMsg{Err: fmt.Errorf("feed service is not configured")}
		}
		snap, err := feed.Load()
		return SnapshotLoadedMsg{Snapshot: snap, Err: err}
	}
}

// HandleSnapshotLoaded installs loaded data into the state.
func HandleSnapshotLoaded(s *state.ModelState, msg SnapshotLoadedMsg, deps Deps) {
	s.Loading = false
	defer ApplyLayout(s)

	if msg.Err != nil {
		s.Err = msg.Err
		s.StatusMessage = fmt.Sprintf("Failed to load feed: %s", strings.TrimSpace(msg.Err.Error()))
		deps.logger().Error("snapshot load failed", "err", msg.Err)
		return
	}

	s.Err = nil
	s.Loaded = true
	s.Snapshot = msg.Snapshot
	s.Contacts = searchContacts(s, deps)
	presenter.ApplyNavList(&s.NavList, s.Snapshot.Profile, s.Snapshot.NavSections)
	deps.logger().Debug("snapshot loaded",
		"posts", len(s.Snapshot.Posts),
		"stories", len(s.Snapshot.Stories),
		"groups", len(s.Snapshot.Groups),
		"contacts", len(s.Snapshot.Contacts),
	)
}

// HandleWindowSize updates layout sizing based on terminal size.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg, deps Deps) {
	prev := s.Frame.Layout.Tier
	s.Width = msg.Width
	s.Height = msg.Height
	ApplyLayout(s)
	if s.Frame.Layout.Tier != prev {
		deps.logger().Debug("layout tier changed",
			"from", prev.String(),
			"to", s.Frame.Layout.Tier.String(),
			"cols", msg.Width,
			"rows", msg.Height,
			"tiles", s.Frame.Layout.Tiles(),
		)
	}
}

// HandleKeyMsg processes key input based on the current session.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	switch s.Session {
	case state.QuitView:
		return handleQuitView(s, msg)
	case state.HeaderSearchView:
		return handleHeaderSearch(s, msg, deps)
	case state.ChatSearchView:
		return handleChatSearch(s, msg, deps)
	}

	parsed := intent.FromKeyMsg(msg, s.Keys)
	if s.Help.ShowAll {
		if parsed.Type == intent.ToggleHelp || parsed.Type == intent.Back {
			s.Help.ShowAll = false
		}
		return nil, true
	}

	switch parsed.Type {
	case intent.Quit:
		s.Previous = s.Session
		s.Session = state.QuitView
	case intent.ToggleHelp:
		s.Help.ShowAll = true
	case intent.NextRegion:
		cycleFocus(s, 1)
	case intent.PrevRegion:
		cycleFocus(s, -1)
	case intent.Search:
		if s.Frame.Layout.Tier < layout.Medium {
			return nil, true
		}
		s.Session = state.HeaderSearchView
		return s.HeaderSearch.Focus(), true
	case intent.ChatSearch:
		if !s.Frame.Visible(layout.RightRail) {
			return nil, true
		}
		s.Focus = state.FocusRightRail
		s.Session = state.ChatSearchView
		return s.ChatSearch.Focus(), true
	case intent.QuickAction:
		triggerQuickAction(s, parsed.Index, deps)
	case intent.Like:
		triggerPostAction(s, usecase.ActionPostLike, deps)
	case intent.Comment:
		triggerPostAction(s, usecase.ActionPostComment, deps)
	case intent.Share:
		triggerPostAction(s, usecase.ActionPostShare, deps)
	case intent.Options:
		triggerPostAction(s, usecase.ActionPostOptions, deps)
	case intent.SaveLocation:
		triggerSaveLocation(s, deps)
	case intent.None:
		return nil, false
	default:
		handleRegionIntent(s, parsed, deps)
	}
	RefreshContent(s)
	return nil, true
}

func handleQuitView(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "y", "Y":
		return tea.Quit, true
	case "n", "N", "esc", "q", "Q":
		s.Session = s.Previous
		return nil, true
	}
	return nil, true
}

func handleHeaderSearch(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	switch msg.Type {
	case tea.KeyEnter:
		if query := strings.TrimSpace(s.HeaderSearch.Value()); query != "" {
			trigger(s, deps, usecase.Action{
				Name:  usecase.ActionHeaderSearch,
				Attrs: map[string]string{"query": query},
			})
		}
		closeHeaderSearch(s)
		return nil, true
	case tea.KeyEsc:
		closeHeaderSearch(s)
		return nil, true
	}

	var cmd tea.Cmd
	s.HeaderSearch, cmd = s.HeaderSearch.Update(msg)
	return cmd, true
}

func closeHeaderSearch(s *state.ModelState) {
	s.HeaderSearch.Reset()
	s.HeaderSearch.Blur()
	s.Session = state.BrowseView
}

func handleChatSearch(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		s.ChatSearch.Blur()
		s.Session = state.BrowseView
		RefreshContent(s)
		return nil, true
	}

	var cmd tea.Cmd
	s.ChatSearch, cmd = s.ChatSearch.Update(msg)
	s.Contacts = searchContacts(s, deps)
	s.RailCursor = firstContactCursor(s)
	RefreshContent(s)
	return cmd, true
}

// firstContactCursor points the rail cursor at the first filtered contact,
// or at the last chat link when none match.
func firstContactCursor(s *state.ModelState) int {
	entries := rail.Entries(len(s.Snapshot.Groups), len(s.Contacts))
	if i := rail.IndexOf(entries, rail.ContactEntry); i >= 0 {
		return i
	}
	return len(entries) - 1
}

func searchContacts(s *state.ModelState, deps Deps) []social.ChatContact {
	query := s.ChatSearch.Value()
	if deps.Feed != nil {
		return deps.Feed.SearchContacts(s.Snapshot.Contacts, query)
	}
	return social.FilterContacts(s.Snapshot.Contacts, query)
}

func cycleFocus(s *state.ModelState, dir int) {
	order := state.FocusOrder
	current := 0
	for i, f := range order {
		if f == s.Focus {
			current = i
		}
	}
	n := len(order)
	for step := 1; step < n; step++ {
		next := order[((current+dir*step)%n+n)%n]
		if s.Frame.Visible(next.Region()) {
			s.Focus = next
			return
		}
	}
}

func handleRegionIntent(s *state.ModelState, in intent.Intent, deps Deps) {
	switch s.Focus {
	case state.FocusLeftNav:
		handleNavIntent(s, in, deps)
	case state.FocusRightRail:
		handleRailIntent(s, in, deps)
	default:
		handleMainIntent(s, in, deps)
	}
}

func handleMainIntent(s *state.ModelState, in intent.Intent, deps Deps) {
	switch in.Type {
	case intent.Up:
		s.PostCursor--
	case intent.Down:
		s.PostCursor++
	case intent.Top:
		s.PostCursor = 0
	case intent.Bottom:
		s.PostCursor = len(s.Snapshot.Posts)
	case intent.Open:
		if s.PostCursor == 0 {
			trigger(s, deps, usecase.Action{Name: usecase.ActionPostCreate, Target: s.Snapshot.Profile.ID})
			return
		}
		triggerPostAction(s, usecase.ActionPostOptions, deps)
	}
}

func handleNavIntent(s *state.ModelState, in intent.Intent, deps Deps) {
	items := s.NavList.Items()
	switch in.Type {
	case intent.Up:
		s.NavList.Select(presenter.NextSelectable(items, s.NavList.Index(), -1))
	case intent.Down:
		s.NavList.Select(presenter.NextSelectable(items, s.NavList.Index(), 1))
	case intent.Top:
		s.NavList.Select(presenter.NextSelectable(items, -1, 1))
	case intent.Bottom:
		s.NavList.Select(presenter.NextSelectable(items, len(items), -1))
	case intent.Open:
		item, ok := s.NavList.SelectedItem().(*presenter.Item)
		if !ok || item.IsSectionHeader() {
			return
		}
		trigger(s, deps, usecase.Action{
			Name:   usecase.ActionNavOpen,
			Target: item.ID,
			Attrs:  map[string]string{"label": item.TitleText},
		})
	}
}

func handleRailIntent(s *state.ModelState, in intent.Intent, deps Deps) {
	entries := rail.Entries(len(s.Snapshot.Groups), len(s.Contacts))
	switch in.Type {
	case intent.Up:
		s.RailCursor--
	case intent.Down:
		s.RailCursor++
	case intent.Top:
		s.RailCursor = 0
	case intent.Bottom:
		s.RailCursor = len(entries) - 1
	case intent.Left, intent.Right:
		if s.RailCursor < 0 || s.RailCursor >= len(entries) || entries[s.RailCursor].Kind != rail.StoriesEntry {
			return
		}
		if in.Type == intent.Left {
			s.StoryCursor--
		} else {
			s.StoryCursor++
		}
	case intent.Back:
		if s.ChatSearch.Value() != "" {
			s.ChatSearch.Reset()
			s.Contacts = searchContacts(s, deps)
		}
	case intent.Open:
		if s.RailCursor < 0 || s.RailCursor >= len(entries) {
			return
		}
		openRailEntry(s, entries[s.RailCursor], deps)
	}
}

func openRailEntry(s *state.ModelState, e rail.Entry, deps Deps) {
	switch e.Kind {
	case rail.StoriesEntry:
		if s.StoryCursor == rail.AddStory || s.StoryCursor >= len(s.Snapshot.Stories) {
			trigger(s, deps, usecase.Action{Name: usecase.ActionStoryAdd, Target: s.Snapshot.Profile.ID})
			return
		}
		story := s.Snapshot.Stories[s.StoryCursor]
		trigger(s, deps, usecase.Action{
			Name:   usecase.ActionStoryView,
			Target: story.ID,
			Attrs:  map[string]string{"user": story.UserName},
		})
	case rail.GroupEntry:
		g := s.Snapshot.Groups[e.Index]
		trigger(s, deps, usecase.Action{
			Name:   usecase.ActionGroupJoin,
			Target: g.ID,
			Attrs:  map[string]string{"name": g.Name},
		})
	case rail.ControlEntry:
		c := rail.Control(e.Index)
		if name, ok := controlActions[c]; ok {
			trigger(s, deps, usecase.Action{Name: name, Attrs: map[string]string{"label": c.String()}})
		}
	case rail.ContactEntry:
		c := s.Contacts[e.Index]
		trigger(s, deps, usecase.Action{
			Name:   usecase.ActionChatOpen,
			Target: c.ID,
			Attrs:  map[string]string{"name": c.Name},
		})
	}
}

var controlActions = map[rail.Control]string{
	rail.ArchiveStories: usecase.ActionStoryArchive,
	rail.StorySettings:  usecase.ActionStorySettings,
	rail.SeeAllGroups:   usecase.ActionGroupSeeAll,
	rail.NewMessage:     usecase.ActionChatNewMessage,
	rail.NewGroupChat:   usecase.ActionChatGroup,
	rail.ChatSettings:   usecase.ActionChatSettings,
}

func triggerPostAction(s *state.ModelState, name string, deps Deps) {
	post, ok := s.SelectedPost()
	if !ok {
		s.StatusMessage = "Select a post first"
		return
	}
	trigger(s, deps, usecase.Action{
		Name:   name,
		Target: post.ID,
		Attrs:  map[string]string{"author": post.AuthorName},
	})
}

func triggerSaveLocation(s *state.ModelState, deps Deps) {
	post, ok := s.SelectedPost()
	if !ok || post.Location == nil {
		s.StatusMessage = "This post has no location"
		return
	}
	trigger(s, deps, usecase.Action{
		Name:   usecase.ActionPostSaveLocation,
		Target: post.ID,
		Attrs:  map[string]string{"location": post.Location.Name},
	})
}

func triggerQuickAction(s *state.ModelState, index int, deps Deps) {
	actions := s.Snapshot.QuickActions
	if index < 0 || index >= len(actions) {
		return
	}
	a := actions[index]
	trigger(s, deps, usecase.Action{
		Name:   usecase.ActionHeaderAction,
		Target: a.ID,
		Attrs:  map[string]string{"label": a.Label},
	})
}

func trigger(s *state.ModelState, deps Deps, a usecase.Action) {
	if deps.Interactions != nil {
		deps.Interactions.Trigger(a)
	}
	s.StatusMessage = statusFor(a)
}

func statusFor(a usecase.Action) string {
	if a.Target == "" {
		return a.Name
	}
	return a.Name + " " + a.Target
}
