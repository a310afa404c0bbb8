package stream

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"cleanrecord/config"
	"cleanrecord/internal/domain/entity"
	"cleanrecord/internal/errors"
	"cleanrecord/internal/infra/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(&config.StreamConfig{
		APIBaseURL:   server.URL,
		AccountID:    "acct",
		APIToken:     "secret-token",
		ViewsBaseURL: server.URL + "/views-host",
		Timeout:      time.Second,
		Breaker: config.BreakerConfig{
			MaxFailures: 2,
			OpenTimeout: time.Minute,
		},
	}, metrics.Noop{}, slog.New(slog.DiscardHandler))
}

func TestClient_LiveInputStatus_Connected(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/accounts/acct/stream/live_inputs/live-1", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"success":true,"result":{"uid":"live-1","status":{"current":{"state":"connected"}}}}`))
	})
	mux.HandleFunc("/views-host/live-1/views", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"liveViewers":3}`))
	})
	client := newTestClient(t, mux)

	status := client.LiveInputStatus(context.Background(), "live-1")

	assert.Equal(t, entity.LiveInputConnected, status.Status)
	require.NotNil(t, status.ViewerCount)
	assert.Equal(t, 3, *status.ViewerCount)
}

func TestClient_LiveInputStatus_Disconnected(t *testing.T) {
	var viewsCalled atomic.Bool
	mux := http.NewServeMux()
	mux.HandleFunc("/accounts/acct/stream/live_inputs/live-1", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"result":{"uid":"live-1","status":{"current":{"state":"disconnected"}}}}`))
	})
	mux.HandleFunc("/views-host/live-1/views", func(w http.ResponseWriter, _ *http.Request) {
		viewsCalled.Store(true)
	})
	client := newTestClient(t, mux)

	status := client.LiveInputStatus(context.Background(), "live-1")

	assert.Equal(t, entity.LiveInputDisconnected, status.Status)
	assert.Nil(t, status.ViewerCount)
	assert.False(t, viewsCalled.Load())
}

func TestClient_LiveInputStatus_ViewsFailureKeepsStatus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/accounts/acct/stream/live_inputs/live-1", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"result":{"uid":"live-1","status":{"current":{"state":"connected"}}}}`))
	})
	mux.HandleFunc("/views-host/live-1/views", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	client := newTestClient(t, mux)

	status := client.LiveInputStatus(context.Background(), "live-1")

	assert.Equal(t, entity.LiveInputConnected, status.Status)
	assert.Nil(t, status.ViewerCount)
}

func TestClient_LiveInputStatus_NonOKIsUnknown(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	status := client.LiveInputStatus(context.Background(), "live-1")

	assert.Equal(t, entity.UnknownLiveInputStatus(), status)
}

func TestClient_LiveInputStatus_UnsuccessfulEnvelopeIsUnknown(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"result":{}}`))
	}))

	status := client.LiveInputStatus(context.Background(), "live-1")

	assert.Equal(t, entity.LiveInputUnknown, status.Status)
}

func TestClient_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	for range 5 {
		status := client.LiveInputStatus(context.Background(), "live-1")
		assert.Equal(t, entity.LiveInputUnknown, status.Status)
	}

	// Two failures trip the breaker; later calls never reach the server
	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_BreakerIgnoresClientErrors(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/accounts/acct/stream/live_inputs/gone", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("/accounts/acct/stream/live_inputs/live-1", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"result":{"uid":"live-1","status":{"current":{"state":"connected"}}}}`))
	})
	client := newTestClient(t, mux)

	for range 3 {
		assert.Equal(t, entity.LiveInputUnknown, client.LiveInputStatus(context.Background(), "gone").Status)
	}

	assert.Equal(t, entity.LiveInputConnected, client.LiveInputStatus(context.Background(), "live-1").Status)
}

func TestClient_BreakerIgnoresCancelledCallers(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/accounts/acct/stream/live_inputs/live-1", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"result":{"uid":"live-1","status":{"current":{"state":"connected"}}}}`))
	})
	client := newTestClient(t, mux)

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	for range 3 {
		assert.Equal(t, entity.LiveInputUnknown, client.LiveInputStatus(cancelled, "live-1").Status)
	}

	assert.Equal(t, entity.LiveInputConnected, client.LiveInputStatus(context.Background(), "live-1").Status)
}

func TestCountsAsFailure(t *testing.T) {
	tests := map[string]struct {
		err  error
		want bool
	}{
		"server error":   {err: &statusError{code: http.StatusBadGateway}, want: true},
		"not found":      {err: &statusError{code: http.StatusNotFound}, want: false},
		"caller gone":    {err: &callerDoneError{err: context.Canceled}, want: false},
		"transport":      {err: io.ErrUnexpectedEOF, want: true},
		"wrapped status": {err: errors.WithStack(&statusError{code: http.StatusTooManyRequests}), want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, countsAsFailure(tt.err))
		})
	}
}

func TestNewStreamStatusService_Unconfigured(t *testing.T) {
	svc := NewStreamStatusService(&config.Config{}, metrics.Noop{}, slog.New(slog.DiscardHandler))

	assert.Equal(t, entity.LiveInputUnknown, svc.LiveInputStatus(context.Background(), "live-1").Status)
}
