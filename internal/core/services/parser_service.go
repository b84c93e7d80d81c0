package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/hot_settlement_app/internal/core/domain"
	"github.com/SscSPs/hot_settlement_app/internal/core/hot"
	"github.com/SscSPs/hot_settlement_app/internal/middleware"
)

// ParserService decodes uploaded HOT/LIFT content via the core parser.
type ParserService struct {
	opts hot.Options
}

// NewParserService creates a new ParserService with the given parsing
// options (orphan policy, year pivot, amount scale).
func NewParserService(opts hot.Options) *ParserService {
	return &ParserService{opts: opts}
}

// ParseHOT runs the single-pass decode. It never fails on malformed file
// content: warnings and errors accumulate on the returned model.
func (s *ParserService) ParseHOT(ctx context.Context, content []byte) (*domain.ParsedFile, error) {
	parsed := hot.ParseWithOptions(content, s.opts)

	documentCount := 0
	for _, agent := range parsed.Agents {
		documentCount += len(agent.Documents)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Parsed HOT file",
		slog.Int("bytes", len(content)),
		slog.Int("agents", len(parsed.Agents)),
		slog.Int("documents", documentCount),
		slog.Int("warnings", len(parsed.Warnings)),
		slog.Int("errors", len(parsed.Errors)),
	)

	return parsed, nil
}
