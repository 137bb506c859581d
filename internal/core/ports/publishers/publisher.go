// Package publishers declares the outbound port for domain events.
package publishers

import (
	"context"

	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
)

// EventPublisher delivers domain events to interested parties.
type EventPublisher interface {
	// Publish sends one event. Implementations must not block past ctx.
	Publish(ctx context.Context, event domain.Event) error

	// Close releases the underlying connection.
	Close() error
}
