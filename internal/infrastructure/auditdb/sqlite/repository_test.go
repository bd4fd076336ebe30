package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/topic-core/internal/domain/entities"
	"github.com/ersonp/topic-core/internal/domain/ports"
	"github.com/ersonp/topic-core/internal/infrastructure/config"
)

var _ ports.AuditLog = (*Repository)(nil)

// setupTestRepo creates an in-memory SQLite repository for testing.
func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := NewRepository(context.Background(), config.AuditConfig{Path: config.MemoryAuditPath})
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestNewRepository(t *testing.T) {
	t.Run("success with memory database", func(t *testing.T) {
		repo, err := NewRepository(context.Background(), config.AuditConfig{Path: ":memory:"})
		require.NoError(t, err)
		defer repo.Close()
		assert.Equal(t, ":memory:", repo.Path())
	})

	t.Run("success with file database", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "audit.db")
		repo, err := NewRepository(context.Background(), config.AuditConfig{Path: path})
		require.NoError(t, err)
		defer repo.Close()
		assert.FileExists(t, path)
	})

	t.Run("error with empty path", func(t *testing.T) {
		_, err := NewRepository(context.Background(), config.AuditConfig{})
		require.Error(t, err)
	})
}

func TestRepository_EnsureSchema_Idempotent(t *testing.T) {
	repo := setupTestRepo(t)

	require.NoError(t, repo.EnsureSchema(context.Background()))

	var count int
	err := repo.db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='audit_log'`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRepository_AuditLog(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	t.Run("log action with details", func(t *testing.T) {
		err := repo.LogAction(ctx, entities.AuditCreate, "topic-1", map[string]any{
			"name":    "Root",
			"version": 1,
		})
		require.NoError(t, err)
	})

	t.Run("log action without topic ID", func(t *testing.T) {
		err := repo.LogAction(ctx, entities.AuditImport, "", map[string]any{
			"imported": 3,
		})
		require.NoError(t, err)
	})

	t.Run("log action without details", func(t *testing.T) {
		err := repo.LogAction(ctx, entities.AuditUpdate, "topic-1", nil)
		require.NoError(t, err)
	})

	t.Run("find by topic newest first", func(t *testing.T) {
		entries, err := repo.FindAuditLog(ctx, "topic-1")
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, entities.AuditUpdate, entries[0].Action)
		assert.Nil(t, entries[0].Details)
		assert.Equal(t, entities.AuditCreate, entries[1].Action)
		assert.Equal(t, "topic-1", entries[1].TopicID)
		assert.Equal(t, "Root", entries[1].Details["name"])
		assert.Equal(t, float64(1), entries[1].Details["version"])
		assert.False(t, entries[1].CreatedAt.IsZero())
	})

	t.Run("find by topic with no entries", func(t *testing.T) {
		entries, err := repo.FindAuditLog(ctx, "missing")
		require.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})

	t.Run("find by action", func(t *testing.T) {
		entries, err := repo.FindAuditLogByAction(ctx, entities.AuditImport, 10)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Empty(t, entries[0].TopicID)
	})

	t.Run("find by action with limit", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			require.NoError(t, repo.LogAction(ctx, entities.AuditDelete, "", nil))
		}

		entries, err := repo.FindAuditLogByAction(ctx, entities.AuditDelete, 3)
		require.NoError(t, err)
		assert.Len(t, entries, 3)
	})
}

func TestRepository_ClosedDatabase(t *testing.T) {
	repo, err := NewRepository(context.Background(), config.AuditConfig{Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	err = repo.LogAction(context.Background(), entities.AuditCreate, "topic-1", nil)
	assert.Error(t, err)
}
