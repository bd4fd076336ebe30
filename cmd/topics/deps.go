package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ersonp/topic-core/internal/application/handlers"
	"github.com/ersonp/topic-core/internal/domain/services"
	"github.com/ersonp/topic-core/internal/infrastructure/auditdb/sqlite"
	"github.com/ersonp/topic-core/internal/infrastructure/config"
	"github.com/ersonp/topic-core/internal/infrastructure/idgen"
	"github.com/ersonp/topic-core/internal/infrastructure/logging"
	"github.com/ersonp/topic-core/internal/infrastructure/memstore"
	"github.com/ersonp/topic-core/internal/infrastructure/observability"
)

// Deps holds high-level dependencies for commands.
// Only handlers are exposed - services and repositories are internal.
type Deps struct {
	Config        *config.Config
	Logger        *zap.Logger
	Collector     *observability.Collector // nil when metrics are disabled
	TopicHandler  *handlers.TopicHandler
	ImportHandler *handlers.ImportHandler
	AuditPath     string // resolved audit database location
}

// withDeps loads config and builds dependencies, then calls the provided function.
// It handles cleanup automatically.
func withDeps(ctx context.Context, fn func(*Deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	return withConfig(ctx, cfg, fn)
}

// withConfig builds dependencies from an already loaded config.
func withConfig(ctx context.Context, cfg *config.Config, fn func(*Deps) error) error {
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	auditLog, err := sqlite.NewRepository(ctx, cfg.Audit)
	if err != nil {
		return fmt.Errorf("creating audit repository: %w", err)
	}
	defer auditLog.Close()

	topicService := services.NewTopicService(memstore.New(), idgen.UUID{}, idgen.SystemClock{}, auditLog, logger)

	var collector *observability.Collector
	if cfg.Metrics.Enabled {
		collector = observability.NewCollector(cfg.Metrics.Namespace, func() float64 {
			n, _ := topicService.Count(context.Background())
			return float64(n)
		})
	}

	deps := &Deps{
		Config:        cfg,
		Logger:        logger,
		Collector:     collector,
		TopicHandler:  handlers.NewTopicHandler(topicService),
		ImportHandler: handlers.NewImportHandler(services.NewImportService(topicService)),
		AuditPath:     auditLog.Path(),
	}

	return fn(deps)
}

// loadSeed imports a seed file into the store and returns its key -> id map.
// Any invalid row fails the whole load.
func loadSeed(ctx context.Context, d *Deps, path string) (map[string]string, error) {
	result, err := d.ImportHandler.HandleImport(ctx, path, handlers.ImportOptions{})
	if err != nil {
		return nil, fmt.Errorf("importing seed: %w", err)
	}
	if len(result.Errors) > 0 {
		return nil, fmt.Errorf("seed %s has %d invalid rows, first: %w", path, len(result.Errors), result.Errors[0])
	}

	d.Collector.RecordMutation(observability.OpImport, result.Imported)
	d.Logger.Info("seed loaded", zap.String("file", path), zap.Int("topics", result.Imported))
	return result.IDs, nil
}

// resolveKey maps a seed key to its topic id.
func resolveKey(ids map[string]string, key string) (string, error) {
	id, ok := ids[key]
	if !ok {
		return "", fmt.Errorf("unknown seed key %q", key)
	}
	return id, nil
}
