package state

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/socialfeed/internal/application/settings"
	"github.com/tesso57/socialfeed/internal/domain/layout"
)

func TestFooterText(t *testing.T) {
	tests := []struct {
		name          string
		session       Session
		loading       bool
		statusMessage string
		helpText      string
		want          string
	}{
		{
			name:     "help only without status",
			session:  BrowseView,
			helpText: "help",
			want:     "help",
		},
		{
			name:          "status prepended",
			session:       BrowseView,
			statusMessage: "liked post1",
			helpText:      "help",
			want:          "liked post1\nhelp",
		},
		{
			name:          "help only while loading",
			session:       BrowseView,
			loading:       true,
			statusMessage: "liked post1",
			helpText:      "help",
			want:          "help",
		},
		{
			name:     "header search hint",
			session:  HeaderSearchView,
			helpText: "help",
			want:     "Searching (enter to submit, esc to cancel)\nhelp",
		},
		{
			name:          "chat search hint with status",
			session:       ChatSearchView,
			statusMessage: "2 contacts",
			want:          "Filtering contacts (esc to finish) · 2 contacts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FooterText(tt.session, tt.loading, tt.statusMessage, tt.helpText)
			if got != tt.want {
				t.Fatalf("FooterText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewKeyMap(t *testing.T) {
	keys := NewKeyMap(settings.KeyMapConfig{
		Up:         "k, up",
		Down:       "j",
		NextRegion: "tab",
		Like:       "L",
		Quit:       "q",
	})

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{name: "first of list", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")}, binding: keys.Up},
		{name: "trimmed second", msg: tea.KeyMsg{Type: tea.KeyUp}, binding: keys.Up},
		{name: "tab", msg: tea.KeyMsg{Type: tea.KeyTab}, binding: keys.NextRegion},
		{name: "digit quick action", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")}, binding: keys.QuickAction},
		{name: "help", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")}, binding: keys.Help},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !key.Matches(tt.msg, tt.binding) {
				t.Errorf("%q should match %v", tt.msg.String(), tt.binding.Keys())
			}
		})
	}

	if got := help.New().View(&keys); !strings.Contains(got, "quit") {
		t.Errorf("short help %q should mention quit", got)
	}
}

func TestSplitKeys(t *testing.T) {
	got := splitKeys(" pgdn, ,x")
	want := []string{"pgdn", "pgdown", "x"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("splitKeys() = %v, want %v", got, want)
	}
}

func TestFocusRegion(t *testing.T) {
	if FocusLeftNav.Region() != layout.LeftNav || FocusRightRail.Region() != layout.RightRail || FocusMain.Region() != layout.MainContent {
		t.Error("focus regions mismatch")
	}
}
