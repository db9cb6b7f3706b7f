package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/socialfeed/internal/application/settings"
	"github.com/tesso57/socialfeed/internal/application/usecase"
	"github.com/tesso57/socialfeed/internal/presentation/tui/palette"
	"github.com/tesso57/socialfeed/internal/presentation/tui/state"
	"github.com/tesso57/socialfeed/internal/presentation/tui/update"
	"github.com/tesso57/socialfeed/internal/presentation/tui/view"
	listview "github.com/tesso57/socialfeed/internal/presentation/tui/view/list"
)

// Model represents the main application state.
type Model struct {
	settings     settings.Settings
	feed         usecase.FeedService
	interactions usecase.InteractionService
	log          *slog.Logger
	state        *state.ModelState
}

// NewModel creates a new application model. A nil logger uses slog's default.
func NewModel(cfg settings.Settings, feed usecase.FeedService, interactions usecase.InteractionService, log *slog.Logger) *Model {
	if log == nil {
		log = slog.Default()
	}
	return &Model{
		settings:     cfg,
		feed:         feed,
		interactions: interactions,
		log:          log,
		state:        newModelState(cfg),
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.state.Spinner.Tick, update.LoadSnapshotCmd(&m.feed))
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := update.HandleKeyMsg(m.state, msg, m.deps())
		if handled {
			update.ApplyLayout(m.state)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		update.HandleWindowSize(m.state, msg, m.deps())
	case update.SnapshotLoadedMsg:
		update.HandleSnapshotLoaded(m.state, msg, m.deps())
	}

	if m.state.Loading {
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg:
		switch m.state.Focus {
		case state.FocusMain:
			m.state.MainViewport, cmd = m.state.MainViewport.Update(msg)
			cmds = append(cmds, cmd)
		case state.FocusRightRail:
			m.state.RailViewport, cmd = m.state.RailViewport.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// View renders the application view.
func (m *Model) View() string {
	return view.Render(m.buildProps())
}

func (m *Model) deps() update.Deps {
	return update.Deps{
		Feed:         &m.feed,
		Interactions: &m.interactions,
		Log:          m.log,
	}
}

func newModelState(cfg settings.Settings) *state.ModelState {
	colors := palette.FromTheme(cfg.Theme)
	delegate := listview.NewNavDelegate(colors.Accent, colors.Muted)
	cellW, cellH := cfg.CellSize()

	return &state.ModelState{
		Session:      state.BrowseView,
		Focus:        state.FocusMain,
		NavList:      newNavList(delegate),
		NavDelegate:  delegate,
		MainViewport: viewport.New(0, 0),
		RailViewport: viewport.New(0, 0),
		HeaderSearch: newTextInput("Search"),
		ChatSearch:   newTextInput("Search contacts"),
		Help:         help.New(),
		Spinner:      newSpinner(colors.Accent),
		Keys:         state.NewKeyMap(cfg.KeyMap),
		Colors:       colors,
		CellWidth:    cellW,
		CellHeight:   cellH,
		Loading:      true,
	}
}

func newNavList(delegate list.ItemDelegate) list.Model {
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "Menu"
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return l
}

func newTextInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = "⌕ "
	ti.Placeholder = placeholder
	ti.CharLimit = 80
	ti.Width = 20
	return ti
}

func newSpinner(color lipgloss.Color) spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(color)
	return s
}
