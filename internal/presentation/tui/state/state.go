// Package state holds UI state types for the TUI.
package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/tesso57/socialfeed/internal/application/settings"
	"github.com/tesso57/socialfeed/internal/domain/layout"
)

// Session represents the current view state.
type Session int

const (
	BrowseView Session = iota
	HeaderSearchView
	ChatSearchView
	QuitView
)

// Focus is the scroll region receiving navigation keys.
type Focus int

const (
	FocusMain Focus = iota
	FocusLeftNav
	FocusRightRail
)

// Region returns the page region backing the focus.
func (f Focus) Region() layout.RegionKind {
	switch f {
	case FocusLeftNav:
		return layout.LeftNav
	case FocusRightRail:
		return layout.RightRail
	default:
		return layout.MainContent
	}
}

func (f Focus) String() string {
	switch f {
	case FocusLeftNav:
		return "Menu"
	case FocusRightRail:
		return "Contacts"
	default:
		return "Feed"
	}
}

// FocusOrder is the tab order of the scroll regions, left to right.
var FocusOrder = []Focus{FocusLeftNav, FocusMain, FocusRightRail}

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	Top          key.Binding
	Bottom       key.Binding
	NextRegion   key.Binding
	PrevRegion   key.Binding
	Open         key.Binding
	Back         key.Binding
	Search       key.Binding
	ChatSearch   key.Binding
	Like         key.Binding
	Comment      key.Binding
	Share        key.Binding
	Options      key.Binding
	SaveLocation key.Binding
	QuickAction  key.Binding
	Quit         key.Binding
	Help         key.Binding
}

// ShortHelp returns a subset of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit, k.NextRegion, k.Open}
}

// FullHelp returns all keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Top, k.Bottom, k.NextRegion, k.PrevRegion},
		{k.Open, k.Back, k.Search, k.ChatSearch},
		{k.Like, k.Comment, k.Share, k.Options, k.SaveLocation},
		{k.QuickAction, k.Help, k.Quit},
	}
}

// NewKeyMap creates a new KeyMap from the configuration.
func NewKeyMap(cfg settings.KeyMapConfig) KeyMap {
	return KeyMap{
		Up:           binding(cfg.Up, "up"),
		Down:         binding(cfg.Down, "down"),
		Left:         binding(cfg.Left, "stories left"),
		Right:        binding(cfg.Right, "stories right"),
		Top:          binding(cfg.Top, "top"),
		Bottom:       binding(cfg.Bottom, "bottom"),
		NextRegion:   binding(cfg.NextRegion, "next region"),
		PrevRegion:   binding(cfg.PrevRegion, "prev region"),
		Open:         binding(cfg.Open, "open"),
		Back:         binding(cfg.Back, "back"),
		Search:       binding(cfg.Search, "search"),
		ChatSearch:   binding(cfg.ChatSearch, "search contacts"),
		Like:         binding(cfg.Like, "like"),
		Comment:      binding(cfg.Comment, "comment"),
		Share:        binding(cfg.Share, "share"),
		Options:      binding(cfg.Options, "post options"),
		SaveLocation: binding(cfg.SaveLocation, "save location"),
		QuickAction: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "header action"),
		),
		Quit: binding(cfg.Quit, "quit"),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

func binding(keys, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(splitKeys(keys)...),
		key.WithHelp(keys, desc),
	)
}

func splitKeys(keys string) []string {
	parts := strings.Split(keys, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		keyName := strings.TrimSpace(part)
		if keyName == "" {
			continue
		}
		out = append(out, keyName)
		switch keyName {
		case "pgdn":
			out = append(out, "pgdown")
		case "pgdown":
			out = append(out, "pgdn")
		}
	}
	return out
}
