package presenter

import (
	"testing"

	"github.com/charmbracelet/bubbles/list"
	"github.com/tesso57/socialfeed/internal/domain/social"
)

func sampleSections() []social.NavSection {
	return []social.NavSection{
		{Items: []social.NavItem{
			{ID: "news-feed", Label: "News Feed", Icon: social.IconNewsFeed, Active: true},
			{ID: "watch", Label: "Watch", Icon: social.IconWatch, Count: "9+"},
		}},
		{Title: "Explore", Items: []social.NavItem{
			{ID: "events", Label: "Events", Icon: social.IconEvents},
		}},
		{Title: "Create", CreateLinks: true, Items: []social.NavItem{
			{ID: "create-ad", Label: "Ad", Icon: social.IconAd},
		}},
	}
}

func TestBuildNavItems(t *testing.T) {
	items := BuildNavItems(social.Profile{ID: "me", Name: "Olenna Mason"}, sampleSections())

	want := []struct {
		kind  ItemKind
		title string
	}{
		{ProfileItem, "Olenna Mason"},
		{LinkItem, "News Feed"},
		{LinkItem, "Watch"},
		{SectionHeaderItem, "Explore"},
		{LinkItem, "Events"},
		{SectionHeaderItem, "Create"},
		{CreateItem, "Ad"},
	}
	if len(items) != len(want) {
		t.Fatalf("got %d items, want %d", len(items), len(want))
	}
	for i, w := range want {
		item := items[i].(*Item)
		if item.Kind != w.kind || item.TitleText != w.title {
			t.Errorf("item %d = %v %q, want %v %q", i, item.Kind, item.TitleText, w.kind, w.title)
		}
	}
	if watch := items[2].(*Item); watch.Count != "9+" {
		t.Errorf("count = %q", watch.Count)
	}
	if !items[1].(*Item).Active {
		t.Error("news feed should be active")
	}
}

func TestBuildNavItems_NoProfile(t *testing.T) {
	items := BuildNavItems(social.Profile{}, sampleSections()[:1])
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
}

func TestNextSelectable(t *testing.T) {
	items := BuildNavItems(social.Profile{}, sampleSections())
	// 0 News Feed, 1 Watch, 2 [Explore], 3 Events, 4 [Create], 5 Ad

	tests := []struct {
		name string
		from int
		dir  int
		want int
	}{
		{name: "skips header downward", from: 1, dir: 1, want: 3},
		{name: "skips header upward", from: 3, dir: -1, want: 1},
		{name: "stays at bottom", from: 5, dir: 1, want: 5},
		{name: "stays at top", from: 0, dir: -1, want: 0},
		{name: "first selectable", from: -1, dir: 1, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextSelectable(items, tt.from, tt.dir); got != tt.want {
				t.Errorf("NextSelectable(%d, %d) = %d, want %d", tt.from, tt.dir, got, tt.want)
			}
		})
	}
}

func TestApplyNavList_SelectsFirstLink(t *testing.T) {
	l := list.New(nil, list.NewDefaultDelegate(), 20, 10)
	sections := []social.NavSection{{Title: "Shortcuts", Items: []social.NavItem{{ID: "farm", Label: "FarmVille 2"}}}}
	ApplyNavList(&l, social.Profile{}, sections)
	if l.Index() != 1 {
		t.Errorf("index = %d, want 1", l.Index())
	}
}
