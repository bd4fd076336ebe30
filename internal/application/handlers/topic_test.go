package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/topic-core/internal/domain/entities"
	"github.com/ersonp/topic-core/internal/domain/services"
)

func TestTopicHandler_CreateGetUpdate(t *testing.T) {
	ctx := context.Background()
	h := NewTopicHandler(newTestTopicService(t))

	created, err := h.HandleCreate(ctx, "Go", "A language", "")
	require.NoError(t, err)

	got, err := h.HandleGet(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := h.HandleUpdate(ctx, created.ID, "A compiled language")
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Version)

	list, err := h.HandleList(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "A compiled language", list[0].Content)
}

func TestTopicHandler_HandleGet_Absent(t *testing.T) {
	h := NewTopicHandler(newTestTopicService(t))

	_, err := h.HandleGet(context.Background(), "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestTopicHandler_HandleDelete(t *testing.T) {
	ctx := context.Background()
	h := NewTopicHandler(newTestTopicService(t))

	root, err := h.HandleCreate(ctx, "Root", "r", "")
	require.NoError(t, err)
	_, err = h.HandleCreate(ctx, "Child", "c", root.ID)
	require.NoError(t, err)

	removed, err := h.HandleDelete(ctx, root.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	list, err := h.HandleList(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = h.HandleDelete(ctx, root.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestTopicHandler_HandleRoots(t *testing.T) {
	ctx := context.Background()
	h := NewTopicHandler(newTestTopicService(t))

	a, err := h.HandleCreate(ctx, "A", "a", "")
	require.NoError(t, err)
	_, err = h.HandleCreate(ctx, "Child", "c", a.ID)
	require.NoError(t, err)
	b, err := h.HandleCreate(ctx, "B", "b", "")
	require.NoError(t, err)

	roots, err := h.HandleRoots(ctx)
	require.NoError(t, err)
	require.Len(t, roots, 2)
	assert.Equal(t, a.ID, roots[0].ID)
	assert.Equal(t, b.ID, roots[1].ID)
}

func TestTopicHandler_HandleAuditByAction(t *testing.T) {
	ctx := context.Background()
	h := NewTopicHandler(newTestTopicService(t))

	for _, name := range []string{"A", "B", "C"} {
		_, err := h.HandleCreate(ctx, name, "c", "")
		require.NoError(t, err)
	}

	entries, err := h.HandleAuditByAction(ctx, entities.AuditCreate, "")
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	entries, err = h.HandleAuditByAction(ctx, entities.AuditCreate, "1")
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	tests := []struct {
		name   string
		action string
		limit  string
	}{
		{name: "unknown action", action: "rename", limit: ""},
		{name: "missing action", action: "", limit: ""},
		{name: "zero limit", action: entities.AuditCreate, limit: "0"},
		{name: "non-numeric limit", action: entities.AuditCreate, limit: "ten"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.HandleAuditByAction(ctx, tt.action, tt.limit)
			assert.ErrorIs(t, err, services.ErrValidation)
		})
	}
}

func TestTopicHandler_HandleVersion(t *testing.T) {
	ctx := context.Background()
	h := NewTopicHandler(newTestTopicService(t))

	topic, err := h.HandleCreate(ctx, "Go", "v1", "")
	require.NoError(t, err)
	_, err = h.HandleUpdate(ctx, topic.ID, "v2")
	require.NoError(t, err)

	tests := []struct {
		name        string
		id          string
		version     string
		wantContent string
		wantErr     error
	}{
		{name: "first version", id: topic.ID, version: "1", wantContent: "v1"},
		{name: "latest version", id: topic.ID, version: "2", wantContent: "v2"},
		{name: "missing version", id: topic.ID, version: "3", wantErr: services.ErrNotFound},
		{name: "zero", id: topic.ID, version: "0", wantErr: services.ErrValidation},
		{name: "negative", id: topic.ID, version: "-1", wantErr: services.ErrValidation},
		{name: "not a number", id: topic.ID, version: "latest", wantErr: services.ErrValidation},
		{name: "unknown topic", id: "missing", version: "1", wantErr: services.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := h.HandleVersion(ctx, tt.id, tt.version)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantContent, got.Content)
		})
	}

	versions, err := h.HandleVersions(ctx, topic.ID)
	require.NoError(t, err)
	assert.Len(t, versions, 2)
}

func TestTopicHandler_StructuralQueries(t *testing.T) {
	ctx := context.Background()
	h := NewTopicHandler(newTestTopicService(t))

	root, err := h.HandleCreate(ctx, "Root", "r", "")
	require.NoError(t, err)
	left, err := h.HandleCreate(ctx, "Left", "l", root.ID)
	require.NoError(t, err)
	right, err := h.HandleCreate(ctx, "Right", "r", root.ID)
	require.NoError(t, err)

	flat, err := h.HandleHierarchy(ctx, root.ID)
	require.NoError(t, err)
	assert.Len(t, flat, 3)

	tree, err := h.HandleTree(ctx, root.ID)
	require.NoError(t, err)
	require.Len(t, tree.Subtopics, 2)
	assert.Equal(t, left.ID, tree.Subtopics[0].Topic.ID)

	path, err := h.HandlePath(ctx, left.ID, right.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{left.ID, root.ID, right.ID}, path.Path)
	assert.Equal(t, 2, path.Distance)

	trail, err := h.HandleAudit(ctx, root.ID)
	require.NoError(t, err)
	require.NotEmpty(t, trail)
	assert.Equal(t, entities.AuditCreate, trail[0].Action)
}
