package social

import (
	"errors"
	"testing"

	"gopkg.in/yaml.v3"
)

func sampleContacts() []ChatContact {
	return []ChatContact{
		{ID: "c1", Name: "Julia Fillory", Presence: Online},
		{ID: "c2", Name: "Bryan Durand", Presence: Online},
		{ID: "c3", Name: "Alex Chen", Presence: Offline},
		{ID: "c4", Name: "Maria Garcia", Presence: Away},
	}
}

func TestFilterContacts(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "Empty", query: "", wantIDs: []string{"c1", "c2", "c3", "c4"}},
		{name: "Whitespace", query: "   ", wantIDs: []string{"c1", "c2", "c3", "c4"}},
		{name: "CaseInsensitive", query: "JULIA", wantIDs: []string{"c1"}},
		{name: "Substring", query: "ar", wantIDs: []string{"c4"}},
		{name: "MatchesSurname", query: "chen", wantIDs: []string{"c3"}},
		{name: "SeveralMatches", query: "ia", wantIDs: []string{"c1", "c4"}},
		{name: "NoMatch", query: "zzz", wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := sampleContacts()
			got := FilterContacts(source, tt.query)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("FilterContacts(%q) returned %d contacts, want %d", tt.query, len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("result[%d] = %q, want %q", i, got[i].ID, id)
				}
			}
			if len(source) != 4 || source[0].Name != "Julia Fillory" {
				t.Errorf("source mutated: %+v", source)
			}
		})
	}
}

func TestFilterContacts_ResultDoesNotAliasSource(t *testing.T) {
	source := sampleContacts()
	got := FilterContacts(source, "")
	got[0].Name = "changed"
	if source[0].Name != "Julia Fillory" {
		t.Error("result shares backing array with source")
	}
}

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{name: "TwoLetters", in: "Olenna Mason", n: 2, want: "OL"},
		{name: "OneLetter", in: "sophia", n: 1, want: "S"},
		{name: "Short", in: "al", n: 3, want: "AL"},
		{name: "Empty", in: "  ", n: 2, want: ""},
		{name: "ZeroN", in: "Alex", n: 0, want: ""},
		{name: "Multibyte", in: "élodie", n: 2, want: "ÉL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Initials(tt.in, tt.n); got != tt.want {
				t.Errorf("Initials(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
		})
	}
}

func TestBadgeLabel(t *testing.T) {
	tests := map[int]string{-1: "", 0: "", 5: "5", 99: "99", 100: "99+", 1000: "99+"}
	for in, want := range tests {
		if got := BadgeLabel(in); got != want {
			t.Errorf("BadgeLabel(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestVisibleMemberAvatars(t *testing.T) {
	g := GroupSuggestion{MemberAvatars: []string{"a", "b", "c", "d", "e", "f", "g"}}
	if got := g.VisibleMemberAvatars(); len(got) != MaxMemberAvatars {
		t.Errorf("got %d avatars, want %d", len(got), MaxMemberAvatars)
	}
	small := GroupSuggestion{MemberAvatars: []string{"a"}}
	if got := small.VisibleMemberAvatars(); len(got) != 1 {
		t.Errorf("got %d avatars, want 1", len(got))
	}
}

func TestPostHasEngagement(t *testing.T) {
	if (Post{}).HasEngagement() {
		t.Error("zero counts should have no engagement")
	}
	if !(Post{Shares: 1}).HasEngagement() {
		t.Error("shares alone should count as engagement")
	}
}

func TestSnapshotClone(t *testing.T) {
	orig := Snapshot{
		Posts:    []Post{{ID: "p1", Location: &Location{Name: "Raleigh"}}},
		Groups:   []GroupSuggestion{{ID: "g1", MemberAvatars: []string{"a"}}},
		Contacts: sampleContacts(),
		NavSections: []NavSection{
			{Title: "Explore", Items: []NavItem{{ID: "events", Label: "Events"}}},
		},
	}
	c := orig.Clone()
	c.Posts[0].Location.Name = "Elsewhere"
	c.Groups[0].MemberAvatars[0] = "z"
	c.Contacts[0].Name = "x"
	c.NavSections[0].Items[0].Label = "y"

	if orig.Posts[0].Location.Name != "Raleigh" {
		t.Error("location shared between clone and original")
	}
	if orig.Groups[0].MemberAvatars[0] != "a" {
		t.Error("member avatars shared")
	}
	if orig.Contacts[0].Name != "Julia Fillory" {
		t.Error("contacts shared")
	}
	if orig.NavSections[0].Items[0].Label != "Events" {
		t.Error("nav items shared")
	}
}

func TestSnapshotValidate(t *testing.T) {
	valid := Snapshot{
		Posts:    []Post{{ID: "p1", Privacy: PrivacyFriends}},
		Contacts: sampleContacts(),
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	tests := []struct {
		name string
		snap Snapshot
	}{
		{name: "DuplicatePost", snap: Snapshot{Posts: []Post{{ID: "p"}, {ID: "p"}}}},
		{name: "EmptyStoryID", snap: Snapshot{Stories: []Story{{UserName: "x"}}}},
		{name: "BadPrivacy", snap: Snapshot{Posts: []Post{{ID: "p", Privacy: "secret"}}}},
		{name: "BadPresence", snap: Snapshot{Contacts: []ChatContact{{ID: "c", Presence: "busy"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.snap.Validate()
			if !errors.Is(err, ErrInvalidSnapshot) {
				t.Errorf("Validate() = %v, want ErrInvalidSnapshot", err)
			}
		})
	}
}

func TestIconYAML(t *testing.T) {
	var item NavItem
	if err := yaml.Unmarshal([]byte("id: w\nicon: watch\n"), &item); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if item.Icon != IconWatch {
		t.Errorf("icon = %q, want %q", item.Icon, IconWatch)
	}
	if err := yaml.Unmarshal([]byte("id: w\nicon: rocket\n"), &item); err == nil {
		t.Error("expected error for unknown icon")
	}
}
