package handlers

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ersonp/topic-core/internal/domain/services"
	"github.com/ersonp/topic-core/internal/infrastructure/parsers"
)

// ImportHandler handles importing seed topics from files.
type ImportHandler struct {
	service *services.ImportService
}

// NewImportHandler creates a new import handler.
func NewImportHandler(service *services.ImportService) *ImportHandler {
	return &ImportHandler{
		service: service,
	}
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	Format string // "json", "csv", "yaml", or "auto"
	DryRun bool   // Validate without creating topics
}

// ImportResult contains the result of an import operation.
type ImportResult struct {
	Imported int
	Errors   []services.ImportError
	IDs      map[string]string // seed key -> topic id
}

// HandleImport imports topics from a seed file.
func (h *ImportHandler) HandleImport(ctx context.Context, filePath string, opts ImportOptions) (*ImportResult, error) {
	var parser parsers.Parser
	if opts.Format == "" || opts.Format == "auto" {
		parser = parsers.ForFile(filePath)
	} else {
		parser = parsers.ForFormat(opts.Format)
	}

	if parser == nil {
		return nil, fmt.Errorf("unsupported format for file: %s", filePath)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	return h.importFrom(ctx, parser, file, opts)
}

func (h *ImportHandler) importFrom(ctx context.Context, parser parsers.Parser, r io.Reader, opts ImportOptions) (*ImportResult, error) {
	rows, err := parser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing file: %w", err)
	}

	if len(rows) == 0 {
		return &ImportResult{IDs: map[string]string{}}, nil
	}

	serviceResult, err := h.service.Import(ctx, rows, services.ImportOptions{DryRun: opts.DryRun})
	if err != nil {
		return nil, err
	}

	return &ImportResult{
		Imported: serviceResult.Imported,
		Errors:   serviceResult.Errors,
		IDs:      serviceResult.IDs,
	}, nil
}
