// Package intent parses user input into UI intents.
package intent

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/socialfeed/internal/presentation/tui/state"
)

// Type represents a user intent.
type Type int

const (
	None Type = iota
	Quit
	ToggleHelp
	NextRegion
	PrevRegion
	Up
	Down
	Top
	Bottom
	Left
	Right
	Open
	Back
	Search
	ChatSearch
	Like
	Comment
	Share
	Options
	SaveLocation
	QuickAction
)

// Intent represents a parsed user intent.
type Intent struct {
	Type Type
	// Index is the zero-based quick action for QuickAction intents.
	Index int
}

// FromKeyMsg maps a key message to an intent.
func FromKeyMsg(msg tea.KeyMsg, keys state.KeyMap) Intent {
	switch {
	case key.Matches(msg, keys.Quit):
		return Intent{Type: Quit}
	case key.Matches(msg, keys.Help):
		return Intent{Type: ToggleHelp}
	case key.Matches(msg, keys.NextRegion):
		return Intent{Type: NextRegion}
	case key.Matches(msg, keys.PrevRegion):
		return Intent{Type: PrevRegion}
	case key.Matches(msg, keys.Up):
		return Intent{Type: Up}
	case key.Matches(msg, keys.Down):
		return Intent{Type: Down}
	case key.Matches(msg, keys.Top):
		return Intent{Type: Top}
	case key.Matches(msg, keys.Bottom):
		return Intent{Type: Bottom}
	case key.Matches(msg, keys.Left):
		return Intent{Type: Left}
	case key.Matches(msg, keys.Right):
		return Intent{Type: Right}
	case key.Matches(msg, keys.Open):
		return Intent{Type: Open}
	case key.Matches(msg, keys.Back):
		return Intent{Type: Back}
	case key.Matches(msg, keys.Search):
		return Intent{Type: Search}
	case key.Matches(msg, keys.ChatSearch):
		return Intent{Type: ChatSearch}
	case key.Matches(msg, keys.Like):
		return Intent{Type: Like}
	case key.Matches(msg, keys.Comment):
		return Intent{Type: Comment}
	case key.Matches(msg, keys.Share):
		return Intent{Type: Share}
	case key.Matches(msg, keys.Options):
		return Intent{Type: Options}
	case key.Matches(msg, keys.SaveLocation):
		return Intent{Type: SaveLocation}
	case key.Matches(msg, keys.QuickAction):
		return Intent{Type: QuickAction, Index: int(msg.String()[0] - '1')}
	default:
		return Intent{Type: None}
	}
}
