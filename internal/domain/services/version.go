package services

import (
	"context"
	"fmt"

	"github.com/ersonp/topic-core/internal/domain/entities"
)

// History returns every committed snapshot of a topic, oldest first.
// Unknown ids yield an empty slice rather than an error.
func (s *TopicService) History(_ context.Context, id string) ([]entities.Topic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	versions, ok := s.store.History(id)
	if !ok {
		return []entities.Topic{}, nil
	}
	return versions, nil
}

// VersionAt returns the snapshot sealed as version n of a topic.
// It fails with ErrNotFound when the topic has no history at all and returns
// nil without error when version n was never committed.
func (s *TopicService) VersionAt(_ context.Context, id string, n int) (*entities.Topic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	versions, ok := s.store.History(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	for i := range versions {
		if versions[i].Version == n {
			return &versions[i], nil
		}
	}
	return nil, nil
}
