// Package usecase contains application-level services.
package usecase

import (
	"errors"
	"fmt"

	"github.com/tesso57/socialfeed/internal/domain/social"
)

// SnapshotSource abstracts where the static feed data comes from.
type SnapshotSource interface {
	Load() (social.Snapshot, error)
}

// FeedService provides read access to the feed data.
type FeedService struct {
	Source SnapshotSource
}

// NewFeedService constructs a FeedService.
func NewFeedService(source SnapshotSource) FeedService {
	return FeedService{Source: source}
}

// Load returns a validated copy of the source snapshot.
func (s FeedService) Load() (social.Snapshot, error) {
	if s.Source == nil {
		return social.Snapshot{}, errors.New("snapshot source is not configured")
	}
	snap, err := s.Source.Load()
	if err != nil {
		return social.Snapshot{}, fmt.Errorf("load snapshot: %w", err)
	}
	if err := snap.Validate(); err != nil {
		return social.Snapshot{}, err
	}
	return snap.Clone(), nil
}

// SearchContacts narrows contacts by a case-insensitive name query without
// touching the input.
func (s FeedService) SearchContacts(contacts []social.ChatContact, query string) []social.ChatContact {
	return social.FilterContacts(contacts, query)
}
