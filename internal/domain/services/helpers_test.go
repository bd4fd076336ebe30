package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ersonp/topic-core/internal/domain/entities"
	"github.com/ersonp/topic-core/internal/domain/mocks"
	"github.com/ersonp/topic-core/internal/infrastructure/memstore"
)

func newTestService(t *testing.T) (*TopicService, *mocks.AuditLog) {
	t.Helper()
	auditLog := mocks.NewAuditLog()
	svc := NewTopicService(memstore.New(), &mocks.SequentialIDs{}, mocks.NewClock(), auditLog, nil)
	return svc, auditLog
}

func mustCreate(t *testing.T, svc *TopicService, name, content, parentID string) *entities.Topic {
	t.Helper()
	topic, err := svc.Create(context.Background(), name, content, parentID)
	require.NoError(t, err)
	return topic
}

func ids(topics []entities.Topic) []string {
	out := make([]string, len(topics))
	for i := range topics {
		out[i] = topics[i].ID
	}
	return out
}
