// Package social defines the static records rendered by the feed shell.
package social

// Privacy is the audience of a post.
type Privacy string

const (
	PrivacyPublic  Privacy = "public"
	PrivacyFriends Privacy = "friends"
	PrivacyOnlyMe  Privacy = "only_me"
)

// Presence is a chat contact's online status.
type Presence string

const (
	Online  Presence = "online"
	Away    Presence = "away"
	Offline Presence = "offline"
)

// Profile is the signed-in user.
type Profile struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	ShortName string `yaml:"short_name"`
	AvatarURL string `yaml:"avatar_url"`
}

// Location is a place attached to a post.
type Location struct {
	Name          string `yaml:"name"`
	Type          string `yaml:"type"`
	TaggedFriends string `yaml:"tagged_friends"`
}

// Post is one entry of the main feed.
type Post struct {
	ID              string    `yaml:"id"`
	AuthorName      string    `yaml:"author_name"`
	AuthorAvatarURL string    `yaml:"author_avatar_url"`
	AuthorHandle    string    `yaml:"author_handle"`
	Timestamp       string    `yaml:"timestamp"`
	Privacy         Privacy   `yaml:"privacy"`
	Text            string    `yaml:"text"`
	ImageURL        string    `yaml:"image_url"`
	Location        *Location `yaml:"location"`
	Likes           int       `yaml:"likes"`
	Comments        int       `yaml:"comments"`
	Shares          int       `yaml:"shares"`
}

// HasEngagement reports whether any engagement counter is positive.
func (p Post) HasEngagement() bool {
	return p.Likes > 0 || p.Comments > 0 || p.Shares > 0
}

// Story is one card of the stories strip.
type Story struct {
	ID        string `yaml:"id"`
	UserName  string `yaml:"user_name"`
	AvatarURL string `yaml:"avatar_url"`
	ImageURL  string `yaml:"image_url"`
	Viewed    bool   `yaml:"viewed"`
}

// GroupSuggestion is a group offered in the suggestions widget.
type GroupSuggestion struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Tagline       string   `yaml:"tagline"`
	MemberCount   int      `yaml:"member_count"`
	CoverImageURL string   `yaml:"cover_image_url"`
	MemberAvatars []string `yaml:"member_avatars"`
}

// MaxMemberAvatars is how many member avatars a suggestion shows.
const MaxMemberAvatars = 5

// VisibleMemberAvatars returns the avatars shown on the suggestion card.
func (g GroupSuggestion) VisibleMemberAvatars() []string {
	if len(g.MemberAvatars) <= MaxMemberAvatars {
		return g.MemberAvatars
	}
	return g.MemberAvatars[:MaxMemberAvatars]
}

// ChatContact is one entry of the chat widget.
type ChatContact struct {
	ID        string   `yaml:"id"`
	Name      string   `yaml:"name"`
	AvatarURL string   `yaml:"avatar_url"`
	Presence  Presence `yaml:"presence"`
}

// NavItem is one link of the left navigation.
type NavItem struct {
	ID         string `yaml:"id"`
	Label      string `yaml:"label"`
	Icon       Icon   `yaml:"icon"`
	Href       string `yaml:"href"`
	Active     bool   `yaml:"active"`
	Pictured   bool   `yaml:"pictured"`
	PictureURL string `yaml:"picture_url"`
	Count      string `yaml:"count"`
}

// NavSection groups navigation items under an optional title. Create-link
// sections render as a single inline row.
type NavSection struct {
	Title       string    `yaml:"title"`
	Items       []NavItem `yaml:"items"`
	CreateLinks bool      `yaml:"create_links"`
}

// HeaderLink is one entry of the header's center navigation.
type HeaderLink struct {
	Label  string `yaml:"label"`
	Href   string `yaml:"href"`
	Icon   Icon   `yaml:"icon"`
	Active bool   `yaml:"active"`
}

// QuickAction is one round button on the right side of the header.
type QuickAction struct {
	ID         string `yaml:"id"`
	Label      string `yaml:"label"`
	Icon       Icon   `yaml:"icon"`
	BadgeCount int    `yaml:"badge_count"`
}

// Snapshot holds every static collection the shell renders.
type Snapshot struct {
	Profile      Profile           `yaml:"profile"`
	Brand        string            `yaml:"brand"`
	NavSections  []NavSection      `yaml:"nav_sections"`
	FooterLinks  []string          `yaml:"footer_links"`
	HeaderLinks  []HeaderLink      `yaml:"header_links"`
	QuickActions []QuickAction     `yaml:"quick_actions"`
	Posts        []Post            `yaml:"posts"`
	Stories      []Story           `yaml:"stories"`
	Groups       []GroupSuggestion `yaml:"groups"`
	Contacts     []ChatContact     `yaml:"contacts"`
}
