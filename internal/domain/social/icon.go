package social

import "fmt"

// Icon names a glyph from the closed icon set. The presentation layer decides
// how each one is drawn.
type Icon string

const (
	IconNone          Icon = ""
	IconBrand         Icon = "brand"
	IconSearch        Icon = "search"
	IconHome          Icon = "home"
	IconFriends       Icon = "friends"
	IconWatch         Icon = "watch"
	IconMarketplace   Icon = "marketplace"
	IconGroups        Icon = "groups"
	IconNewsFeed      Icon = "news_feed"
	IconMessenger     Icon = "messenger"
	IconGame          Icon = "game"
	IconEvents        Icon = "events"
	IconPages         Icon = "pages"
	IconFriendLists   Icon = "friend_lists"
	IconFundraisers   Icon = "fundraisers"
	IconMore          Icon = "more"
	IconCreate        Icon = "create"
	IconFriendRequest Icon = "friend_request"
	IconNotifications Icon = "notifications"
	IconAccount       Icon = "account"
	IconAd            Icon = "ad"
	IconPage          Icon = "page"
	IconGroup         Icon = "group"
	IconEvent         Icon = "event"
	IconGift          Icon = "gift"
)

var knownIcons = map[Icon]struct{}{
	IconNone: {}, IconBrand: {}, IconSearch: {}, IconHome: {}, IconFriends: {},
	IconWatch: {}, IconMarketplace: {}, IconGroups: {}, IconNewsFeed: {},
	IconMessenger: {}, IconGame: {}, IconEvents: {}, IconPages: {},
	IconFriendLists: {}, IconFundraisers: {}, IconMore: {}, IconCreate: {},
	IconFriendRequest: {}, IconNotifications: {}, IconAccount: {}, IconAd: {},
	IconPage: {}, IconGroup: {}, IconEvent: {}, IconGift: {},
}

// Valid reports whether the icon belongs to the known set.
func (i Icon) Valid() bool {
	_, ok := knownIcons[i]
	return ok
}

// UnmarshalText rejects icon names outside the known set.
func (i *Icon) UnmarshalText(text []byte) error {
	icon := Icon(text)
	if !icon.Valid() {
		return fmt.Errorf("unknown icon %q", string(text))
	}
	*i = icon
	return nil
}
