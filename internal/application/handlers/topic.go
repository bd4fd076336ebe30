package handlers

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ersonp/topic-core/internal/domain/entities"
	"github.com/ersonp/topic-core/internal/domain/services"
)

// TopicHandler handles topic operations for the API and CLI.
type TopicHandler struct {
	service *services.TopicService
}

// NewTopicHandler creates a new TopicHandler.
func NewTopicHandler(service *services.TopicService) *TopicHandler {
	return &TopicHandler{service: service}
}

// HandleCreate creates a topic, optionally under an existing parent.
func (h *TopicHandler) HandleCreate(ctx context.Context, name, content, parentID string) (*entities.Topic, error) {
	return h.service.Create(ctx, name, content, parentID)
}

// HandleUpdate replaces a topic's content and bumps its version.
func (h *TopicHandler) HandleUpdate(ctx context.Context, id, content string) (*entities.Topic, error) {
	return h.service.UpdateContent(ctx, id, content)
}

// HandleGet returns the current version of a topic.
func (h *TopicHandler) HandleGet(ctx context.Context, id string) (*entities.Topic, error) {
	topic, err := h.service.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting topic: %w", err)
	}
	if topic == nil {
		return nil, fmt.Errorf("%w: %s", services.ErrNotFound, id)
	}
	return topic, nil
}

// HandleList returns every current topic in creation order.
func (h *TopicHandler) HandleList(ctx context.Context) ([]entities.Topic, error) {
	return h.service.List(ctx)
}

// HandleRoots returns the topics without a parent in creation order.
func (h *TopicHandler) HandleRoots(ctx context.Context) ([]entities.Topic, error) {
	return h.service.Roots(ctx)
}

// HandleDelete removes a topic and all of its descendants and returns how
// many topics were removed.
func (h *TopicHandler) HandleDelete(ctx context.Context, id string) (int, error) {
	removed, err := h.service.DeleteTree(ctx, id)
	if err != nil {
		return 0, err
	}
	if len(removed) == 0 {
		return 0, fmt.Errorf("%w: %s", services.ErrNotFound, id)
	}
	return len(removed), nil
}

// HandleVersions returns the full version history of a topic.
func (h *TopicHandler) HandleVersions(ctx context.Context, id string) ([]entities.Topic, error) {
	return h.service.History(ctx, id)
}

// HandleVersion returns one version of a topic. The version is given as text
// so callers can pass path or argument values straight through.
func (h *TopicHandler) HandleVersion(ctx context.Context, id, version string) (*entities.Topic, error) {
	n, err := strconv.Atoi(version)
	if err != nil || n < 1 {
		return nil, fmt.Errorf("%w: version must be a positive integer", services.ErrValidation)
	}

	topic, err := h.service.VersionAt(ctx, id, n)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, fmt.Errorf("%w: version %d of %s", services.ErrNotFound, n, id)
	}
	return topic, nil
}

// HandleHierarchy returns the topic and its descendants in pre-order.
func (h *TopicHandler) HandleHierarchy(ctx context.Context, id string) ([]entities.Topic, error) {
	return h.service.Subtree(ctx, id)
}

// HandleTree returns the topic with its descendants nested.
func (h *TopicHandler) HandleTree(ctx context.Context, id string) (*entities.TopicNode, error) {
	return h.service.Tree(ctx, id)
}

// HandlePath returns the shortest path between two topics.
func (h *TopicHandler) HandlePath(ctx context.Context, startID, endID string) (*entities.TopicPath, error) {
	return h.service.ShortestPath(ctx, startID, endID)
}

// HandleAudit returns the audit trail of a topic, newest first.
func (h *TopicHandler) HandleAudit(ctx context.Context, id string) ([]entities.AuditEntry, error) {
	return h.service.AuditTrail(ctx, id)
}

// defaultAuditLimit caps audit listings when no limit is given.
const defaultAuditLimit = 50

// HandleAuditByAction returns recent audit entries of one action, newest
// first. An empty limit uses the default.
func (h *TopicHandler) HandleAuditByAction(ctx context.Context, action, limit string) ([]entities.AuditEntry, error) {
	n := defaultAuditLimit
	if limit != "" {
		var err error
		n, err = strconv.Atoi(limit)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: limit must be a positive integer", services.ErrValidation)
		}
	}
	return h.service.AuditByAction(ctx, action, n)
}
