package events

import (
	"context"

	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	"github.com/SscSPs/orbisx_backoffice/internal/core/ports/publishers"
	"github.com/SscSPs/orbisx_backoffice/internal/utils"
)

// AnalyticsPublisher forwards domain events to PostHog, keyed by the acting user.
type AnalyticsPublisher struct {
	client *utils.PosthogClientWrapper
}

var _ publishers.EventPublisher = (*AnalyticsPublisher)(nil)

func NewAnalyticsPublisher(client *utils.PosthogClientWrapper) *AnalyticsPublisher {
	return &AnalyticsPublisher{client: client}
}

func (p *AnalyticsPublisher) Publish(_ context.Context, event domain.Event) error {
	if !p.client.IsInitialized() || event.ActorID == "" {
		return nil
	}
	props := map[string]any{
		"entity_id": event.EntityID,
		"version":   event.Version,
	}
	for k, v := range event.Attributes {
		props[k] = v
	}
	p.client.Enqueue(event.ActorID, string(event.Type), props)
	return nil
}

// Close is a no-op; the PostHog client is owned by main.
func (p *AnalyticsPublisher) Close() error { return nil }
