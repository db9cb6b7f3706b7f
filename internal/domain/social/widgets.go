package social

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// MaxBadgeCount is the largest badge number shown verbatim.
const MaxBadgeCount = 99

// FilterContacts returns the contacts whose name contains query, ignoring
// case. The input slice is never modified; an empty query returns a copy of
// every contact.
func FilterContacts(contacts []ChatContact, query string) []ChatContact {
	needle := strings.ToLower(strings.TrimSpace(query))
	out := make([]ChatContact, 0, len(contacts))
	for _, c := range contacts {
		if needle == "" || strings.Contains(strings.ToLower(c.Name), needle) {
			out = append(out, c)
		}
	}
	return out
}

// Initials returns the first n runes of name upper-cased, used when an
// avatar image is unavailable.
func Initials(name string, n int) string {
	name = strings.TrimSpace(name)
	if n <= 0 || name == "" {
		return ""
	}
	if utf8.RuneCountInString(name) <= n {
		return strings.ToUpper(name)
	}
	runes := []rune(name)
	return strings.ToUpper(string(runes[:n]))
}

// BadgeLabel formats a notification count. Non-positive counts have no badge.
func BadgeLabel(count int) string {
	switch {
	case count <= 0:
		return ""
	case count > MaxBadgeCount:
		return strconv.Itoa(MaxBadgeCount) + "+"
	default:
		return strconv.Itoa(count)
	}
}

// Clone returns a deep copy so callers can't reach the source arrays.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.NavSections = make([]NavSection, len(s.NavSections))
	for i, sec := range s.NavSections {
		sec.Items = append([]NavItem(nil), sec.Items...)
		out.NavSections[i] = sec
	}
	out.FooterLinks = append([]string(nil), s.FooterLinks...)
	out.HeaderLinks = append([]HeaderLink(nil), s.HeaderLinks...)
	out.QuickActions = append([]QuickAction(nil), s.QuickActions...)
	out.Posts = make([]Post, len(s.Posts))
	for i, p := range s.Posts {
		if p.Location != nil {
			loc := *p.Location
			p.Location = &loc
		}
		out.Posts[i] = p
	}
	out.Stories = append([]Story(nil), s.Stories...)
	out.Groups = make([]GroupSuggestion, len(s.Groups))
	for i, g := range s.Groups {
		g.MemberAvatars = append([]string(nil), g.MemberAvatars...)
		out.Groups[i] = g
	}
	out.Contacts = append([]ChatContact(nil), s.Contacts...)
	return out
}

// ErrInvalidSnapshot is wrapped by Validate failures.
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// Validate checks that every record has an id unique within its collection
// and that enumerated fields hold known values.
func (s Snapshot) Validate() error {
	var errs []error
	check := func(kind string, ids []string) {
		seen := make(map[string]struct{}, len(ids))
		for i, id := range ids {
			if id == "" {
				errs = append(errs, fmt.Errorf("%s #%d: empty id", kind, i))
				continue
			}
			if _, dup := seen[id]; dup {
				errs = append(errs, fmt.Errorf("%s %q: duplicate id", kind, id))
			}
			seen[id] = struct{}{}
		}
	}

	var navIDs []string
	for _, sec := range s.NavSections {
		for _, item := range sec.Items {
			navIDs = append(navIDs, item.ID)
		}
	}
	check("nav item", navIDs)
	check("post", collect(s.Posts, func(p Post) string { return p.ID }))
	check("story", collect(s.Stories, func(st Story) string { return st.ID }))
	check("group", collect(s.Groups, func(g GroupSuggestion) string { return g.ID }))
	check("contact", collect(s.Contacts, func(c ChatContact) string { return c.ID }))
	check("quick action", collect(s.QuickActions, func(q QuickAction) string { return q.ID }))

	for _, p := range s.Posts {
		switch p.Privacy {
		case "", PrivacyPublic, PrivacyFriends, PrivacyOnlyMe:
		default:
			errs = append(errs, fmt.Errorf("post %q: unknown privacy %q", p.ID, p.Privacy))
		}
	}
	for _, c := range s.Contacts {
		switch c.Presence {
		case "", Online, Away, Offline:
		default:
			errs = append(errs, fmt.Errorf("contact %q: unknown presence %q", c.ID, c.Presence))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidSnapshot, errors.Join(errs...))
}

func collect[T any](items []T, id func(T) string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = id(item)
	}
	return out
}
