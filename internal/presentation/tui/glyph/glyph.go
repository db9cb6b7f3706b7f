// Package glyph maps icon identifiers to terminal symbols.
package glyph

import "github.com/tesso57/socialfeed/internal/domain/social"

var symbols = map[social.Icon]string{
	social.IconBrand:         "f",
	social.IconSearch:        "⌕",
	social.IconHome:          "⌂",
	social.IconFriends:       "☺",
	social.IconWatch:         "▶",
	social.IconMarketplace:   "$",
	social.IconGroups:        "◎",
	social.IconNewsFeed:      "≡",
	social.IconMessenger:     "✉",
	social.IconGame:          "♞",
	social.IconEvents:        "◷",
	social.IconPages:         "⚑",
	social.IconFriendLists:   "☰",
	social.IconFundraisers:   "♥",
	social.IconMore:          "⌄",
	social.IconCreate:        "+",
	social.IconFriendRequest: "☻",
	social.IconNotifications: "♪",
	social.IconAccount:       "▾",
	social.IconAd:            "◆",
	social.IconPage:          "⚐",
	social.IconGroup:         "◉",
	social.IconEvent:         "◴",
	social.IconGift:          "✱",
}

// For returns the symbol for icon, or a bullet for the empty/unknown icon.
func For(icon social.Icon) string {
	if s, ok := symbols[icon]; ok {
		return s
	}
	return "•"
}

// Presence returns the status dot for a chat contact.
func Presence(p social.Presence) string {
	switch p {
	case social.Online:
		return "●"
	case social.Away:
		return "◐"
	default:
		return "○"
	}
}
