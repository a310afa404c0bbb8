package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "cleanrecord/internal/delivery/context"
	"cleanrecord/internal/domain/service"
	"cleanrecord/internal/errors"
)

const (
	localSubscription   = "projects/local/subscriptions/booking-events-sub"
	localPublishTimeout = 10 * time.Second
)

// localHTTPPublisher posts push envelopes straight to a subscriber endpoint, so a
// development setup behaves like a Pub/Sub push subscription without the emulator.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localPublishTimeout},
		logger:     logger,
	}
}

func (p *localHTTPPublisher) PublishBookingEvent(ctx context.Context, event *service.BookingEvent) error {
	data, attributes, err := encodeBookingEvent(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(NewPushMessage(data, attributes, localSubscription))
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "post booking event to %s", p.endpoint)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("subscriber answered %d for %s", resp.StatusCode, event.Type)
	}

	p.logger.DebugContext(ctx, "[LocalPubSub] Booking event delivered",
		slog.String("type", string(event.Type)),
		slog.String("session_id", event.SessionID),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}
