package entities

import "time"

// Audit actions recorded for topic mutations.
const (
	AuditCreate = "create"
	AuditUpdate = "update"
	AuditDelete = "delete"
	AuditImport = "import"
)

// IsAuditAction reports whether action is one of the recorded audit actions.
func IsAuditAction(action string) bool {
	switch action {
	case AuditCreate, AuditUpdate, AuditDelete, AuditImport:
		return true
	}
	return false
}

// AuditEntry represents a logged action in the system.
type AuditEntry struct {
	ID        int64          `json:"id"`
	Action    string         `json:"action"`
	TopicID   string         `json:"topic_id,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
