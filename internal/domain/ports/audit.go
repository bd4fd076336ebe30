package ports

import (
	"context"

	"github.com/ersonp/topic-core/internal/domain/entities"
)

// AuditLog records topic mutations for later inspection.
type AuditLog interface {
	// LogAction logs an action to the audit log.
	LogAction(ctx context.Context, action string, topicID string, details map[string]any) error

	// FindAuditLog finds audit log entries for a specific topic, newest first.
	FindAuditLog(ctx context.Context, topicID string) ([]entities.AuditEntry, error)

	// FindAuditLogByAction finds audit log entries by action type, newest first.
	FindAuditLogByAction(ctx context.Context, action string, limit int) ([]entities.AuditEntry, error)

	// Close releases the underlying storage.
	Close() error
}
