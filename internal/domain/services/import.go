package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ersonp/topic-core/internal/domain/entities"
	"github.com/ersonp/topic-core/internal/infrastructure/parsers"
)

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun bool // Validate without saving
}

// ImportError represents an error for a specific row during import.
type ImportError struct {
	Line    int    // Line number (1-indexed, 0 if unknown)
	Key     string // Key of the offending row
	Message string // Human-readable error message
}

func (e ImportError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// ImportResult contains the result of an import operation.
type ImportResult struct {
	Imported int
	Errors   []ImportError
	// IDs maps each imported row key to the id of the created topic.
	IDs map[string]string
}

// ImportService creates topics from parsed seed rows.
type ImportService struct {
	topics *TopicService
}

// NewImportService creates a new import service.
func NewImportService(topics *TopicService) *ImportService {
	return &ImportService{topics: topics}
}

// Import validates every row and, unless any row is invalid or DryRun is set,
// creates the topics in file order. Parents must appear before their children.
// Validation and creation run under one write lock, so a concurrent delete
// cannot remove a referenced parent between the two.
func (s *ImportService) Import(ctx context.Context, rows []parsers.RawTopic, opts ImportOptions) (*ImportResult, error) {
	result := &ImportResult{IDs: make(map[string]string, len(rows))}

	s.topics.mu.Lock()
	result.Errors = s.validateRows(rows)
	if len(result.Errors) > 0 || opts.DryRun {
		s.topics.mu.Unlock()
		if len(result.Errors) == 0 {
			result.Imported = len(rows)
		}
		return result, nil
	}

	created := make([]entities.Topic, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		parentID := row.Parent
		if id, ok := result.IDs[row.Parent]; ok {
			parentID = id
		}

		topic, err := s.topics.create(row.Name, row.Content, parentID)
		if err != nil {
			s.topics.mu.Unlock()
			return result, fmt.Errorf("importing %q: %w", row.Key, err)
		}
		created = append(created, topic)
		result.IDs[row.Key] = topic.ID
		result.Imported++
	}
	s.topics.mu.Unlock()

	s.topics.logger.Debug("topics imported", zap.Int("count", result.Imported))
	for i := range created {
		s.topics.audit(ctx, entities.AuditCreate, created[i].ID, map[string]any{"name": created[i].Name, "version": created[i].Version})
	}
	s.topics.audit(ctx, entities.AuditImport, "", map[string]any{"imported": result.Imported})
	return result, nil
}

// validateRows checks required fields, key uniqueness and parent ordering.
// It must be called with the write lock held.
func (s *ImportService) validateRows(rows []parsers.RawTopic) []ImportError {
	var errs []ImportError
	seen := make(map[string]bool, len(rows))

	for i := range rows {
		row := &rows[i]
		line := row.LineNum
		if line == 0 {
			line = i + 1
		}

		switch {
		case row.Key == "":
			errs = append(errs, ImportError{Line: line, Message: "key is required"})
			continue
		case seen[row.Key]:
			errs = append(errs, ImportError{Line: line, Key: row.Key, Message: fmt.Sprintf("duplicate key %q", row.Key)})
			continue
		case row.Name == "" || row.Content == "":
			errs = append(errs, ImportError{Line: line, Key: row.Key, Message: "name and content are required"})
		case row.Parent != "" && !seen[row.Parent] && !s.topics.store.Has(row.Parent):
			errs = append(errs, ImportError{Line: line, Key: row.Key, Message: fmt.Sprintf("unknown parent %q", row.Parent)})
		}
		seen[row.Key] = true
	}

	return errs
}
