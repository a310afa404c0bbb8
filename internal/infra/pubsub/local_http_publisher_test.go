package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cleanrecord/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent() *service.BookingEvent {
	return &service.BookingEvent{
		RequestID:     "req-1",
		Type:          service.BookingCreated,
		SessionID:     "session-1",
		UserID:        "user-1",
		AddressID:     "address-1",
		ServiceType:   "standard",
		ScheduledTime: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		OccurredAt:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishBookingEvent(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))
	err := publisher.PublishBookingEvent(context.Background(), testEvent())
	require.NoError(t, err)

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, "booking.created", received.Message.Attributes["type"])
	assert.Equal(t, "session-1", received.Message.Attributes["session_id"])
	assert.Equal(t, "user-1", received.Message.Attributes["user_id"])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := received.DecodeData()
	require.NoError(t, err)
	var event service.BookingEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "address-1", event.AddressID)
	assert.True(t, event.ScheduledTime.Equal(testEvent().ScheduledTime))
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))
	err := publisher.PublishBookingEvent(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestPushMessage_DecodeDataInvalid(t *testing.T) {
	var msg PushMessage
	msg.Message.Data = "%%%"

	_, err := msg.DecodeData()
	assert.Error(t, err)
}
