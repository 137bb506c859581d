package events

import (
	"context"
	"log/slog"

	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	"github.com/SscSPs/orbisx_backoffice/internal/core/ports/publishers"
)

// NoopPublisher drops events. It is used when no broker is configured.
type NoopPublisher struct {
	logger *slog.Logger
}

var _ publishers.EventPublisher = (*NoopPublisher)(nil)

func NewNoopPublisher(logger *slog.Logger) *NoopPublisher {
	return &NoopPublisher{logger: logger}
}

func (p *NoopPublisher) Publish(ctx context.Context, event domain.Event) error {
	if p.logger != nil {
		p.logger.DebugContext(ctx, "Dropping domain event, no broker configured", slog.String("type", string(event.Type)))
	}
	return nil
}

func (p *NoopPublisher) Close() error { return nil }
