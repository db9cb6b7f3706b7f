// Package fixture provides the static data the feed shell renders: a
// built-in snapshot plus optional local YAML and RSS/Atom overrides.
package fixture

import "github.com/tesso57/socialfeed/internal/domain/social"

func avatar(size, seed string) string {
	return "https://i.pravatar.cc/" + size + "?u=" + seed
}

// Builtin returns the default snapshot. Each call returns fresh slices.
func Builtin() social.Snapshot {
	return social.Snapshot{
		Brand: "Social Feed",
		Profile: social.Profile{
			ID:        "olenna-mason",
			Name:      "Olenna Mason",
			ShortName: "Olenna",
			AvatarURL: avatar("40", "olennamason"),
		},
		NavSections: []social.NavSection{
			{
				Items: []social.NavItem{
					{ID: "news-feed", Label: "News Feed", Icon: social.IconNewsFeed, Href: "#news-feed", Active: true},
					{ID: "messenger", Label: "Messenger", Icon: social.IconMessenger, Href: "#messenger"},
					{ID: "watch", Label: "Watch", Icon: social.IconWatch, Href: "#watch", Count: "9+"},
					{ID: "marketplace", Label: "Marketplace", Icon: social.IconMarketplace, Href: "#marketplace"},
				},
			},
			{
				Title: "Shortcuts",
				Items: []social.NavItem{
					{ID: "farmville-2", Label: "FarmVille 2", Icon: social.IconGame, Href: "#farmville", Pictured: true, PictureURL: "https://i.pravatar.cc/40?u=farmville2&img=50"},
				},
			},
			{
				Title: "Explore",
				Items: []social.NavItem{
					{ID: "events", Label: "Events", Icon: social.IconEvents, Href: "#events", Count: "12"},
					{ID: "pages", Label: "Pages", Icon: social.IconPages, Href: "#pages", Count: "3"},
					{ID: "groups", Label: "Groups", Icon: social.IconGroups, Href: "#groups", Count: "5 New"},
					{ID: "friend-lists", Label: "Friend Lists", Icon: social.IconFriendLists, Href: "#friend-lists"},
					{ID: "fundraisers", Label: "Fundraisers", Icon: social.IconFundraisers, Href: "#fundraisers"},
					{ID: "see-more-explore", Label: "See More...", Icon: social.IconMore, Href: "#see-more-explore"},
				},
			},
			{
				Title:       "Create",
				CreateLinks: true,
				Items: []social.NavItem{
					{ID: "create-ad", Label: "Ad", Icon: social.IconAd, Href: "#create-ad"},
					{ID: "create-page", Label: "Page", Icon: social.IconPage, Href: "#create-page"},
					{ID: "create-group", Label: "Group", Icon: social.IconGroup, Href: "#create-group"},
					{ID: "create-event", Label: "Event", Icon: social.IconEvent, Href: "#create-event"},
					{ID: "create-fundraiser", Label: "Fundraiser", Icon: social.IconGift, Href: "#create-fundraiser"},
				},
			},
		},
		FooterLinks: []string{"Privacy", "Terms", "Cookies", "More"},
		HeaderLinks: []social.HeaderLink{
			{Label: "Home", Href: "#home", Icon: social.IconHome, Active: true},
			{Label: "Friends", Href: "#friends", Icon: social.IconFriends},
			{Label: "Watch", Href: "#watch", Icon: social.IconWatch},
			{Label: "Marketplace", Href: "#marketplace", Icon: social.IconMarketplace},
			{Label: "Groups", Href: "#groups", Icon: social.IconGroups},
		},
		QuickActions: []social.QuickAction{
			{ID: "create", Label: "Create", Icon: social.IconCreate},
			{ID: "friend-requests", Label: "Friend Requests", Icon: social.IconFriendRequest, BadgeCount: 8},
			{ID: "messenger", Label: "Messenger", Icon: social.IconMessenger, BadgeCount: 5},
			{ID: "notifications", Label: "Notifications", Icon: social.IconNotifications, BadgeCount: 36},
			{ID: "account", Label: "Account", Icon: social.IconAccount},
		},
		Posts: []social.Post{
			{
				ID:              "post1",
				AuthorName:      "Julia Fillory",
				AuthorAvatarURL: avatar("150", "juliafillory"),
				AuthorHandle:    "juliaf",
				Timestamp:       "2 hrs ago",
				Privacy:         social.PrivacyPublic,
				Text:            "Checking out some new stores downtown!",
				ImageURL:        "https://source.unsplash.com/random/800x500?city,map&sig=raleighmap",
				Location: &social.Location{
					Name:          "Raleigh, North Carolina",
					Type:          "City - United States",
					TaggedFriends: "Bryan Durand and 2 others have been here",
				},
				Likes:    125,
				Comments: 12,
				Shares:   5,
			},
			{
				ID:              "post2",
				AuthorName:      "Mark Johnson",
				AuthorAvatarURL: avatar("150", "markjohnson"),
				AuthorHandle:    "markj",
				Timestamp:       "5 hrs ago",
				Privacy:         social.PrivacyFriends,
				Text:            `Just enjoyed a great book! Highly recommend "The Midnight Library". What are you all reading these days? #booklover #reading`,
				Likes:           78,
				Comments:        23,
				Shares:          2,
			},
			{
				ID:              "post3",
				AuthorName:      "Alice Wonderland",
				AuthorAvatarURL: avatar("150", "alicew"),
				Timestamp:       "1 day ago",
				Privacy:         social.PrivacyPublic,
				Text:            "Beautiful sunset at the beach today! 🌅 #sunset #beachlife #nature",
				ImageURL:        "https://source.unsplash.com/random/800x600?sunset,beach&sig=post3image",
				Likes:           210,
				Comments:        35,
				Shares:          15,
			},
		},
		Stories: []social.Story{
			{ID: "story1", UserName: "Sophia M.", AvatarURL: avatar("150", "sophia"), ImageURL: "https://picsum.photos/seed/story1/200/320"},
			{ID: "story2", UserName: "Liam G.", AvatarURL: avatar("150", "liam"), ImageURL: "https://picsum.photos/seed/story2/200/320", Viewed: true},
			{ID: "story3", UserName: "Olivia R.", AvatarURL: avatar("150", "olivia"), ImageURL: "https://picsum.photos/seed/story3/200/320"},
			{ID: "story4", UserName: "Noah S.", AvatarURL: avatar("150", "noah"), ImageURL: "https://picsum.photos/seed/story4/200/320"},
			{ID: "story5", UserName: "Ava W.", AvatarURL: avatar("150", "ava"), ImageURL: "https://picsum.photos/seed/story5/200/320", Viewed: true},
			{ID: "story6", UserName: "Jackson B.", AvatarURL: avatar("150", "jackson"), ImageURL: "https://picsum.photos/seed/story6/200/320"},
		},
		Groups: []social.GroupSuggestion{
			{
				ID:            "group1",
				Name:          "Mad Men",
				Tagline:       "(MADdicts)",
				MemberCount:   6195,
				CoverImageURL: "https://source.unsplash.com/random/300x100?sig=1&abstract",
				MemberAvatars: []string{
					avatar("40", "member1sg1"), avatar("40", "member2sg1"), avatar("40", "member3sg1"),
					avatar("40", "member4sg1"), avatar("40", "member5sg1"),
				},
			},
			{
				ID:            "group2",
				Name:          "Dexter Morgan",
				MemberCount:   6984,
				CoverImageURL: "https://source.unsplash.com/random/300x100?sig=2&dark,moody",
				MemberAvatars: []string{
					avatar("40", "member1sg2"), avatar("40", "member2sg2"), avatar("40", "member3sg2"),
				},
			},
			{
				ID:            "group3",
				Name:          "Sci-Fi Readers Club",
				MemberCount:   2450,
				CoverImageURL: "https://source.unsplash.com/random/300x100?sig=3&space,stars",
				MemberAvatars: []string{
					avatar("40", "member1sg3"), avatar("40", "member2sg3"), avatar("40", "member3sg3"),
					avatar("40", "member4sg3"),
				},
			},
		},
		Contacts: []social.ChatContact{
			{ID: "chat1", Name: "Julia Fillory", AvatarURL: avatar("40", "juliafillory"), Presence: social.Online},
			{ID: "chat2", Name: "Bryan Durand", AvatarURL: avatar("40", "bryandurand"), Presence: social.Online},
			{ID: "chat3", Name: "Alex Chen", AvatarURL: avatar("40", "alexchen"), Presence: social.Offline},
			{ID: "chat4", Name: "Maria Garcia", AvatarURL: avatar("40", "mariagarcia"), Presence: social.Away},
			{ID: "chat5", Name: "David Miller", AvatarURL: avatar("40", "davidmiller"), Presence: social.Online},
			{ID: "chat6", Name: "Sarah Wilson", AvatarURL: avatar("40", "sarahwilson"), Presence: social.Offline},
			{ID: "chat7", Name: "Michael Brown", AvatarURL: avatar("40", "michaelbrown"), Presence: social.Online},
			{ID: "chat8", Name: "Linda Davis", AvatarURL: avatar("40", "lindadavis"), Presence: social.Online},
		},
	}
}
