package integration

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/ersonp/topic-core/internal/application/handlers"
	"github.com/ersonp/topic-core/internal/domain/services"
	"github.com/ersonp/topic-core/internal/infrastructure/auditdb/sqlite"
	"github.com/ersonp/topic-core/internal/infrastructure/config"
	"github.com/ersonp/topic-core/internal/infrastructure/idgen"
	"github.com/ersonp/topic-core/internal/infrastructure/memstore"
	"github.com/ersonp/topic-core/internal/infrastructure/observability"
	"github.com/ersonp/topic-core/internal/interfaces/http/rest"
)

// stack is a fully wired API backed by a file audit database.
type stack struct {
	server   *httptest.Server
	auditLog *sqlite.Repository
	imports  *handlers.ImportHandler
}

// newStack wires the production components the way the serve command does.
func newStack(t *testing.T) *stack {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	auditLog, err := sqlite.NewRepository(context.Background(), config.AuditConfig{
		Path: filepath.Join(t.TempDir(), "audit.db"),
	})
	if err != nil {
		t.Fatalf("creating audit repository: %v", err)
	}
	t.Cleanup(func() { auditLog.Close() })

	topicService := services.NewTopicService(memstore.New(), idgen.UUID{}, idgen.SystemClock{}, auditLog, nil)
	collector := observability.NewCollector("integration", func() float64 {
		n, _ := topicService.Count(context.Background())
		return float64(n)
	})

	server := httptest.NewServer(rest.NewRouter(handlers.NewTopicHandler(topicService), collector, nil).Setup())
	t.Cleanup(server.Close)

	return &stack{
		server:   server,
		auditLog: auditLog,
		imports:  handlers.NewImportHandler(services.NewImportService(topicService)),
	}
}

// writeSeed writes a seed file into a temp directory.
func writeSeed(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing seed: %v", err)
	}
	return path
}
