package intent

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/socialfeed/internal/application/settings"
	"github.com/tesso57/socialfeed/internal/presentation/tui/state"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestFromKeyMsg(t *testing.T) {
	keys := state.NewKeyMap(settings.KeyMapConfig{
		Up: "k,up", Down: "j,down", Left: "h", Right: "l",
		Top: "g", Bottom: "G",
		NextRegion: "tab", PrevRegion: "shift+tab",
		Open: "enter", Back: "esc",
		Search: "/", ChatSearch: "ctrl+f",
		Like: "L", Comment: "C", Share: "S", Options: "o", SaveLocation: "v",
		Quit: "q",
	})

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Intent
	}{
		{name: "quit", msg: runes("q"), want: Intent{Type: Quit}},
		{name: "help", msg: runes("?"), want: Intent{Type: ToggleHelp}},
		{name: "tab", msg: tea.KeyMsg{Type: tea.KeyTab}, want: Intent{Type: NextRegion}},
		{name: "shift tab", msg: tea.KeyMsg{Type: tea.KeyShiftTab}, want: Intent{Type: PrevRegion}},
		{name: "arrow up", msg: tea.KeyMsg{Type: tea.KeyUp}, want: Intent{Type: Up}},
		{name: "j", msg: runes("j"), want: Intent{Type: Down}},
		{name: "top", msg: runes("g"), want: Intent{Type: Top}},
		{name: "bottom", msg: runes("G"), want: Intent{Type: Bottom}},
		{name: "left", msg: runes("h"), want: Intent{Type: Left}},
		{name: "right", msg: runes("l"), want: Intent{Type: Right}},
		{name: "enter", msg: tea.KeyMsg{Type: tea.KeyEnter}, want: Intent{Type: Open}},
		{name: "esc", msg: tea.KeyMsg{Type: tea.KeyEsc}, want: Intent{Type: Back}},
		{name: "search", msg: runes("/"), want: Intent{Type: Search}},
		{name: "chat search", msg: tea.KeyMsg{Type: tea.KeyCtrlF}, want: Intent{Type: ChatSearch}},
		{name: "like", msg: runes("L"), want: Intent{Type: Like}},
		{name: "comment", msg: runes("C"), want: Intent{Type: Comment}},
		{name: "share", msg: runes("S"), want: Intent{Type: Share}},
		{name: "options", msg: runes("o"), want: Intent{Type: Options}},
		{name: "save location", msg: runes("v"), want: Intent{Type: SaveLocation}},
		{name: "first quick action", msg: runes("1"), want: Intent{Type: QuickAction, Index: 0}},
		{name: "fifth quick action", msg: runes("5"), want: Intent{Type: QuickAction, Index: 4}},
		{name: "unbound", msg: runes("z"), want: Intent{Type: None}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromKeyMsg(tt.msg, keys); got != tt.want {
				t.Errorf("FromKeyMsg(%q) = %+v, want %+v", tt.msg.String(), got, tt.want)
			}
		})
	}
}
