package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/ersonp/topic-core/internal/domain/entities"
)

// Delete removes a topic, every descendant, and all of their version history.
// It reports false, without error, when the topic does not exist.
func (s *TopicService) Delete(ctx context.Context, id string) (bool, error) {
	removed, err := s.DeleteTree(ctx, id)
	if err != nil {
		return false, err
	}
	return len(removed) > 0, nil
}

// DeleteTree behaves like Delete and returns the removed ids, descendants
// before their ancestors. An unknown id yields an empty result.
//
// Every removed topic gets its own delete audit entry. The entry of the
// requested topic lists the whole cascade under "removed"; descendants carry
// the requested id under "cascade_from".
func (s *TopicService) DeleteTree(ctx context.Context, id string) ([]string, error) {
	s.mu.Lock()
	if !s.store.Has(id) {
		s.mu.Unlock()
		return []string{}, nil
	}
	removed := s.removeSubtree(id, nil)
	s.mu.Unlock()

	s.logger.Debug("topic deleted",
		zap.String("id", id),
		zap.Int("removed", len(removed)),
	)
	for _, gone := range removed {
		if gone == id {
			continue
		}
		s.audit(ctx, entities.AuditDelete, gone, map[string]any{"cascade_from": id})
	}
	s.audit(ctx, entities.AuditDelete, id, map[string]any{"removed": removed})

	return removed, nil
}

// removeSubtree deletes children before their parent and returns the removed ids.
func (s *TopicService) removeSubtree(id string, removed []string) []string {
	for _, child := range s.store.Children(id) {
		removed = s.removeSubtree(child, removed)
	}
	s.store.Remove(id)
	return append(removed, id)
}
