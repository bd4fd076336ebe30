package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/ersonp/topic-core/internal/domain/entities"
)

// AuditLog is a mock implementation of ports.AuditLog.
type AuditLog struct {
	mu      sync.Mutex
	Entries []entities.AuditEntry
	Err     error
}

// NewAuditLog creates a new mock AuditLog.
func NewAuditLog() *AuditLog {
	return &AuditLog{}
}

// LogAction records the action in memory.
func (m *AuditLog) LogAction(_ context.Context, action string, topicID string, details map[string]any) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, entities.AuditEntry{
		ID:        int64(len(m.Entries) + 1),
		Action:    action,
		TopicID:   topicID,
		Details:   details,
		CreatedAt: time.Now(),
	})
	return nil
}

// FindAuditLog returns entries for a topic, newest first.
func (m *AuditLog) FindAuditLog(_ context.Context, topicID string) ([]entities.AuditEntry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []entities.AuditEntry
	for i := len(m.Entries) - 1; i >= 0; i-- {
		if m.Entries[i].TopicID == topicID {
			result = append(result, m.Entries[i])
		}
	}
	return result, nil
}

// FindAuditLogByAction returns entries for an action, newest first.
func (m *AuditLog) FindAuditLogByAction(_ context.Context, action string, limit int) ([]entities.AuditEntry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []entities.AuditEntry
	for i := len(m.Entries) - 1; i >= 0 && len(result) < limit; i-- {
		if m.Entries[i].Action == action {
			result = append(result, m.Entries[i])
		}
	}
	return result, nil
}

// Close is a no-op.
func (m *AuditLog) Close() error {
	return nil
}

// Actions returns the recorded action names in order.
func (m *AuditLog) Actions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	actions := make([]string, len(m.Entries))
	for i := range m.Entries {
		actions[i] = m.Entries[i].Action
	}
	return actions
}
