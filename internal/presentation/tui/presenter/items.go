// Package presenter builds view models for the TUI.
package presenter

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/tesso57/socialfeed/internal/domain/social"
)

// ItemKind distinguishes rows of the navigation list.
type ItemKind int

const (
	LinkItem ItemKind = iota
	ProfileItem
	SectionHeaderItem
	CreateItem
)

// Item is a view model for navigation list rows.
type Item struct {
	Kind      ItemKind
	ID        string
	TitleText string
	Icon      social.Icon
	Count     string
	Active    bool
	Pictured  bool
}

// FilterValue implements list.Item.
func (i *Item) FilterValue() string { return i.TitleText }

// Title returns the row label.
func (i *Item) Title() string { return i.TitleText }

// IsSectionHeader reports whether the row is a non-selectable section title.
func (i *Item) IsSectionHeader() bool { return i.Kind == SectionHeaderItem }

// IconID returns the row icon.
func (i *Item) IconID() social.Icon { return i.Icon }

// Badge returns the count label shown after the title.
func (i *Item) Badge() string { return i.Count }

// IsActive reports whether the row is the current page.
func (i *Item) IsActive() bool { return i.Active }

// IsPictured reports whether the row shows a picture instead of an icon.
func (i *Item) IsPictured() bool { return i.Pictured }

// BuildNavItems flattens the profile link and navigation sections into list
// rows. Titled sections are preceded by a header row.
func BuildNavItems(profile social.Profile, sections []social.NavSection) []list.Item {
	items := make([]list.Item, 0, 1+len(sections)*4)
	if profile.Name != "" {
		items = append(items, &Item{
			Kind:      ProfileItem,
			ID:        profile.ID,
			TitleText: profile.Name,
			Pictured:  true,
		})
	}
	for _, sec := range sections {
		if sec.Title != "" {
			items = append(items, &Item{Kind: SectionHeaderItem, TitleText: sec.Title})
		}
		kind := LinkItem
		if sec.CreateLinks {
			kind = CreateItem
		}
		for _, nav := range sec.Items {
			items = append(items, &Item{
				Kind:      kind,
				ID:        nav.ID,
				TitleText: nav.Label,
				Icon:      nav.Icon,
				Count:     nav.Count,
				Active:    nav.Active,
				Pictured:  nav.Pictured,
			})
		}
	}
	return items
}

// ApplyNavList replaces the list rows and moves the cursor to the first
// selectable row.
func ApplyNavList(model *list.Model, profile social.Profile, sections []social.NavSection) {
	model.SetItems(BuildNavItems(profile, sections))
	model.Select(NextSelectable(model.Items(), -1, 1))
}

// NextSelectable returns the index of the first non-header row after from in
// direction dir (+1 or -1). It returns from, clamped to the list, when none
// exists.
func NextSelectable(items []list.Item, from, dir int) int {
	if dir == 0 {
		dir = 1
	}
	for i := from + dir; i >= 0 && i < len(items); i += dir {
		if item, ok := items[i].(*Item); ok && !item.IsSectionHeader() {
			return i
		}
	}
	return max(min(from, len(items)-1), 0)
}
