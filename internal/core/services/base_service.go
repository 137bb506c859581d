package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	"github.com/SscSPs/orbisx_backoffice/internal/core/ports/publishers"
	"github.com/SscSPs/orbisx_backoffice/internal/dto"
	"github.com/SscSPs/orbisx_backoffice/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	publisher publishers.EventPublisher
	now       func() time.Time
}

// ServiceOption is a functional option shared by every service.
type ServiceOption func(*BaseService)

// WithEventPublisher sets where domain events are sent after each mutation.
func WithEventPublisher(p publishers.EventPublisher) ServiceOption {
	return func(s *BaseService) {
		s.publisher = p
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.now = now
	}
}

func newBaseService(options []ServiceOption) BaseService {
	b := BaseService{now: time.Now}
	for _, option := range options {
		option(&b)
	}
	return b
}

// Now returns the current instant from the configured clock.
func (s *BaseService) Now() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

// Today returns the local calendar day of Now, stored as a midnight-UTC date.
func (s *BaseService) Today() time.Time {
	return domain.DateOf(s.Now())
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Publish sends a domain event. Failures are logged and never returned,
// the mutation they describe has already been committed.
func (s *BaseService) Publish(ctx context.Context, eventType domain.EventType, entityID, actorID string, version int64, attrs map[string]any) {
	if s.publisher == nil {
		return
	}
	event := domain.Event{
		Type:       eventType,
		EntityID:   entityID,
		ActorID:    actorID,
		Version:    version,
		OccurredAt: s.Now().UTC(),
		Attributes: attrs,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to publish domain event",
			slog.String("type", string(eventType)),
			slog.String("entity_id", entityID))
	}
}

// newAuditFields stamps a record created now by userID at version 1.
func newAuditFields(now time.Time, userID string) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
		Version:       1,
	}
}

// touch advances the audit fields of an update and returns the version the stored row must have.
// A caller-supplied version takes precedence over the one that was read.
func touch(a *domain.AuditFields, now time.Time, userID string, requested *int64) int64 {
	expected := a.Version
	if requested != nil {
		expected = *requested
	}
	a.LastUpdatedAt = now
	a.LastUpdatedBy = userID
	a.Version = expected + 1
	return expected
}

// optionalDate parses a YYYY-MM-DD pointer; nil and "" both mean no date.
func optionalDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	return dto.ParseOptionalDate(*s)
}
