package tui

import (
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/mock"
	"github.com/tesso57/socialfeed/internal/application/settings"
	"github.com/tesso57/socialfeed/internal/application/usecase"
	"github.com/tesso57/socialfeed/internal/domain/social"
	"github.com/tesso57/socialfeed/internal/infrastructure/fixture"
	"github.com/tesso57/socialfeed/internal/presentation/tui/update"
)

type stubSource struct {
	snap social.Snapshot
	err  error
}

func (s stubSource) Load() (social.Snapshot, error) {
	return s.snap, s.err
}

type mockSource struct {
	mock.Mock
}

func (m *mockSource) Load() (social.Snapshot, error) {
	args := m.Called()
	snap, _ := args.Get(0).(social.Snapshot)
	return snap, args.Error(1)
}

type actionRecorder struct {
	actions []usecase.Action
}

func (r *actionRecorder) Hook(a usecase.Action) {
	r.actions = append(r.actions, a)
}

func (r *actionRecorder) last() (usecase.Action, bool) {
	if len(r.actions) == 0 {
		return usecase.Action{}, false
	}
	return r.actions[len(r.actions)-1], true
}

type mockHook struct {
	mock.Mock
}

func (m *mockHook) Hook(a usecase.Action) {
	m.Called(a)
}

func testSettings() settings.Settings {
	return settings.Settings{
		KeyMap: settings.KeyMapConfig{
			Up: "k,up", Down: "j,down", Left: "h,left", Right: "l,right",
			Top: "g", Bottom: "G",
			NextRegion: "tab", PrevRegion: "shift+tab",
			Open: "enter", Back: "esc",
			Search: "/", ChatSearch: "ctrl+f",
			Like: "L", Comment: "C", Share: "S", Options: "o", SaveLocation: "v",
			Quit: "q",
		},
		Display: settings.DisplayConfig{CellWidth: 8, CellHeight: 16},
	}
}

func newTestModel(t *testing.T, source usecase.SnapshotSource, hook usecase.ActionHook) *Model {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := NewModel(testSettings(), usecase.NewFeedService(source), usecase.NewInteractionService(hook), log)

	msg := update.LoadSnapshotCmd(&m.feed)()
	m = send(m, msg)
	return m
}

// newLoadedModel returns a model showing the built-in data in a cols x rows terminal.
func newLoadedModel(t *testing.T, cols, rows int) (*Model, *actionRecorder) {
	t.Helper()
	rec := &actionRecorder{}
	m := newTestModel(t, stubSource{snap: fixture.Builtin()}, rec.Hook)
	m = resize(m, cols, rows)
	return m, rec
}

func send(m *Model, msg tea.Msg) *Model {
	tm, _ := m.Update(msg)
	return tm.(*Model)
}

func resize(m *Model, cols, rows int) *Model {
	return send(m, tea.WindowSizeMsg{Width: cols, Height: rows})
}

func press(m *Model, keys ...string) *Model {
	for _, k := range keys {
		m = send(m, keyMsg(k))
	}
	return m
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+f":
		return tea.KeyMsg{Type: tea.KeyCtrlF}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func typeText(m *Model, text string) *Model {
	for _, r := range text {
		m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}
