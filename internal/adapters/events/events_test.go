package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/orbisx_backoffice/internal/core/domain"
	"github.com/SscSPs/orbisx_backoffice/internal/utils"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, event domain.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockPublisher) Close() error {
	return m.Called().Error(0)
}

func sampleEvent() domain.Event {
	return domain.Event{
		Type:       domain.EventQuoteStatusChanged,
		EntityID:   "q-1",
		ActorID:    "user-1",
		Version:    3,
		OccurredAt: time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC),
		Attributes: map[string]any{"from": "pending", "to": "sent"},
	}
}

func TestNewPublishing(t *testing.T) {
	msg, err := newPublishing(sampleEvent())
	require.NoError(t, err)

	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp091.Persistent, msg.DeliveryMode)
	assert.Equal(t, "quote.status_changed", msg.Type)
	assert.NotEmpty(t, msg.MessageId)

	var decoded domain.Event
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, "q-1", decoded.EntityID)
	assert.Equal(t, int64(3), decoded.Version)
	assert.Equal(t, "sent", decoded.Attributes["to"])
}

func TestFanoutPublisher(t *testing.T) {
	ok := new(MockPublisher)
	failing := new(MockPublisher)
	ev := sampleEvent()
	boom := errors.New("broker down")

	ok.On("Publish", mock.Anything, ev).Return(nil).Once()
	failing.On("Publish", mock.Anything, ev).Return(boom).Once()
	ok.On("Close").Return(nil).Once()
	failing.On("Close").Return(nil).Once()

	f := NewFanoutPublisher(failing, ok)
	err := f.Publish(context.Background(), ev)
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, f.Close())

	ok.AssertExpectations(t)
	failing.AssertExpectations(t)
}

func TestNoopAndDisabledAnalytics(t *testing.T) {
	assert.NoError(t, NewNoopPublisher(nil).Publish(context.Background(), sampleEvent()))
	assert.NoError(t, NewAnalyticsPublisher(&utils.PosthogClientWrapper{}).Publish(context.Background(), sampleEvent()))
}
