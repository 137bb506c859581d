package events

import (
	"context"
	"errors"

	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	"github.com/SscSPs/orbisx_backoffice/internal/core/ports/publishers"
)

// FanoutPublisher delivers each event to every wrapped publisher and joins their errors.
type FanoutPublisher struct {
	targets []publishers.EventPublisher
}

var _ publishers.EventPublisher = (*FanoutPublisher)(nil)

func NewFanoutPublisher(targets ...publishers.EventPublisher) *FanoutPublisher {
	return &FanoutPublisher{targets: targets}
}

func (f *FanoutPublisher) Publish(ctx context.Context, event domain.Event) error {
	var errs []error
	for _, t := range f.targets {
		if err := t.Publish(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f *FanoutPublisher) Close() error {
	var errs []error
	for _, t := range f.targets {
		if err := t.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
