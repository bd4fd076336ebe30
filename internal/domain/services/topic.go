package services

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/ersonp/topic-core/internal/domain/entities"
	"github.com/ersonp/topic-core/internal/domain/ports"
)

// TopicService manages versioned topics and answers structural queries.
// All access to the store goes through a single RWMutex: mutations are
// serialized and readers never observe a half-applied mutation.
type TopicService struct {
	mu       sync.RWMutex
	store    ports.TopicStore
	ids      ports.IDGenerator
	clock    ports.Clock
	auditLog ports.AuditLog
	logger   *zap.Logger
}

// NewTopicService creates a new TopicService. auditLog and logger may be nil.
func NewTopicService(
	store ports.TopicStore,
	ids ports.IDGenerator,
	clock ports.Clock,
	auditLog ports.AuditLog,
	logger *zap.Logger,
) *TopicService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TopicService{
		store:    store,
		ids:      ids,
		clock:    clock,
		auditLog: auditLog,
		logger:   logger,
	}
}

// Create validates and stores a new topic with version 1.
func (s *TopicService) Create(ctx context.Context, name, content, parentID string) (*entities.Topic, error) {
	s.mu.Lock()
	topic, err := s.create(name, content, parentID)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	s.logger.Debug("topic created",
		zap.String("id", topic.ID),
		zap.String("parent", topic.ParentTopicID),
	)
	s.audit(ctx, entities.AuditCreate, topic.ID, map[string]any{"name": topic.Name, "version": topic.Version})

	return &topic, nil
}

// create must be called with the write lock held.
func (s *TopicService) create(name, content, parentID string) (entities.Topic, error) {
	now := s.clock.Now()
	topic := entities.Topic{
		Name:          name,
		Content:       content,
		ParentTopicID: parentID,
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.validate(&topic); err != nil {
		return entities.Topic{}, err
	}

	topic.ID = s.ids.NewID()
	s.store.Insert(topic)
	return topic, nil
}

// UpdateContent replaces the content of a topic, bumping its version and
// appending the new snapshot to its history. Unchanged content still bumps.
func (s *TopicService) UpdateContent(ctx context.Context, id, content string) (*entities.Topic, error) {
	s.mu.Lock()
	current, ok := s.store.Get(id)
	if !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	updated := current
	updated.Content = content
	updated.Version = current.Version + 1
	updated.UpdatedAt = s.clock.Now()

	if err := s.validate(&updated); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.store.Replace(updated)
	s.mu.Unlock()

	s.logger.Debug("topic updated",
		zap.String("id", id),
		zap.Int("version", updated.Version),
	)
	s.audit(ctx, entities.AuditUpdate, id, map[string]any{"version": updated.Version})

	return &updated, nil
}

// Get returns the current snapshot of a topic, or nil if it does not exist.
func (s *TopicService) Get(_ context.Context, id string) (*entities.Topic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	topic, ok := s.store.Get(id)
	if !ok {
		return nil, nil
	}
	return &topic, nil
}

// List returns every current topic in creation order.
func (s *TopicService) List(_ context.Context) ([]entities.Topic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.List(), nil
}

// Count returns the number of current topics.
func (s *TopicService) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Count(), nil
}

// AuditTrail returns the audit entries recorded for a topic, newest first.
func (s *TopicService) AuditTrail(ctx context.Context, id string) ([]entities.AuditEntry, error) {
	if s.auditLog == nil {
		return []entities.AuditEntry{}, nil
	}
	entries, err := s.auditLog.FindAuditLog(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reading audit log: %w", err)
	}
	if entries == nil {
		entries = []entities.AuditEntry{}
	}
	return entries, nil
}

// AuditByAction returns the most recent audit entries of one action, newest
// first, across all topics. limit must be positive.
func (s *TopicService) AuditByAction(ctx context.Context, action string, limit int) ([]entities.AuditEntry, error) {
	if !entities.IsAuditAction(action) {
		return nil, fmt.Errorf("%w: unknown audit action %q", ErrValidation, action)
	}
	if limit < 1 {
		return nil, fmt.Errorf("%w: limit must be positive", ErrValidation)
	}
	if s.auditLog == nil {
		return []entities.AuditEntry{}, nil
	}
	entries, err := s.auditLog.FindAuditLogByAction(ctx, action, limit)
	if err != nil {
		return nil, fmt.Errorf("reading audit log: %w", err)
	}
	if entries == nil {
		entries = []entities.AuditEntry{}
	}
	return entries, nil
}

// validate checks required fields and that a parent reference names a current topic.
// It must be called with a lock held.
func (s *TopicService) validate(topic *entities.Topic) error {
	if topic.Name == "" || topic.Content == "" {
		return fmt.Errorf("%w: name and content are required", ErrValidation)
	}
	if topic.ParentTopicID != "" && !s.store.Has(topic.ParentTopicID) {
		return fmt.Errorf("%w: %s", ErrParentNotFound, topic.ParentTopicID)
	}
	return nil
}

// audit records an action. Failures are logged and never fail the operation.
func (s *TopicService) audit(ctx context.Context, action, topicID string, details map[string]any) {
	if s.auditLog == nil {
		return
	}
	if err := s.auditLog.LogAction(ctx, action, topicID, details); err != nil {
		s.logger.Warn("writing audit entry",
			zap.String("action", action),
			zap.String("topic_id", topicID),
			zap.Error(err),
		)
	}
}
