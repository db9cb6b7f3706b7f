package fixture

import (
	"fmt"
	"os"
	"time"

	"github.com/tesso57/socialfeed/internal/domain/social"
	"gopkg.in/yaml.v3"
)

// FileSource loads the built-in snapshot and applies local overrides. Both
// paths are optional; remote URLs are not supported.
type FileSource struct {
	FixturePath   string
	PostsFeedPath string
	Now           func() time.Time
}

// Load implements usecase.SnapshotSource.
func (s FileSource) Load() (social.Snapshot, error) {
	snap := Builtin()

	if s.FixturePath != "" {
		override, err := readFixture(s.FixturePath)
		if err != nil {
			return social.Snapshot{}, err
		}
		snap = merge(snap, override)
	}

	if s.PostsFeedPath != "" {
		now := time.Now
		if s.Now != nil {
			now = s.Now
		}
		posts, err := PostsFromFeedFile(s.PostsFeedPath, now())
		if err != nil {
			return social.Snapshot{}, err
		}
		snap.Posts = posts
	}

	return snap, nil
}

func readFixture(path string) (social.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return social.Snapshot{}, fmt.Errorf("open fixture: %w", err)
	}
	defer func() { _ = f.Close() }()

	var snap social.Snapshot
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&snap); err != nil {
		return social.Snapshot{}, fmt.Errorf("decode fixture %s: %w", path, err)
	}
	return snap, nil
}

// merge replaces every non-empty section of base with the override's.
func merge(base, override social.Snapshot) social.Snapshot {
	if override.Brand != "" {
		base.Brand = override.Brand
	}
	if override.Profile != (social.Profile{}) {
		base.Profile = override.Profile
	}
	if len(override.NavSections) > 0 {
		base.NavSections = override.NavSections
	}
	if len(override.FooterLinks) > 0 {
		base.FooterLinks = override.FooterLinks
	}
	if len(override.HeaderLinks) > 0 {
		base.HeaderLinks = override.HeaderLinks
	}
	if len(override.QuickActions) > 0 {
		base.QuickActions = override.QuickActions
	}
	if len(override.Posts) > 0 {
		base.Posts = override.Posts
	}
	if len(override.Stories) > 0 {
		base.Stories = override.Stories
	}
	if len(override.Groups) > 0 {
		base.Groups = override.Groups
	}
	if len(override.Contacts) > 0 {
		base.Contacts = override.Contacts
	}
	return base
}
