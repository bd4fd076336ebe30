package handlers

import (
	"testing"

	"github.com/ersonp/topic-core/internal/domain/mocks"
	"github.com/ersonp/topic-core/internal/domain/services"
	"github.com/ersonp/topic-core/internal/infrastructure/memstore"
)

func newTestTopicService(t *testing.T) *services.TopicService {
	t.Helper()
	return services.NewTopicService(memstore.New(), &mocks.SequentialIDs{}, mocks.NewClock(), mocks.NewAuditLog(), nil)
}
