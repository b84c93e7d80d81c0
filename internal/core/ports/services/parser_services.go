package services

import (
	"context"

	"github.com/SscSPs/hot_settlement_app/internal/core/domain"
)

// ParserSvcFacade exposes HOT/LIFT file parsing to the handlers.
type ParserSvcFacade interface {
	// ParseHOT decodes raw file content into the hierarchical model.
	// Anomalies surface on the returned model's diagnostics, not as an
	// error; the error is reserved for infrastructure failures.
	ParseHOT(ctx context.Context, content []byte) (*domain.ParsedFile, error)
}

// ExportSvcFacade renders an already-parsed file into flat output formats.
type ExportSvcFacade interface {
	// RenderCSV flattens every document with its owning agent's identity
	// into one CSV row.
	RenderCSV(ctx context.Context, file *domain.ParsedFile) ([]byte, error)

	// RenderReport produces the human-readable plain-text analysis report.
	RenderReport(ctx context.Context, file *domain.ParsedFile, filename string) string
}
