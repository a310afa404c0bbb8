// Package stream reads live input state from the video platform API.
package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cleanrecord/config"
	"cleanrecord/internal/domain/entity"
	"cleanrecord/internal/domain/service"
	"cleanrecord/internal/errors"

	"github.com/sony/gobreaker"
)

const (
	breakerName               = "stream-api"
	defaultMaxFailures uint32 = 3
	defaultOpenTimeout        = 30 * time.Second
)

type liveInputResponse struct {
	Success bool `json:"success"`
	Result  struct {
		UID    string `json:"uid"`
		Status *struct {
			Current struct {
				State string `json:"state"`
			} `json:"current"`
		} `json:"status"`
	} `json:"result"`
}

type viewsResponse struct {
	LiveViewers *int `json:"liveViewers"`
}

// statusError is a non-2xx answer from the platform API.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("stream api returned status %d", e.code)
}

// callerDoneError is a request abandoned because the caller's context ended.
type callerDoneError struct {
	err error
}

func (e *callerDoneError) Error() string { return "stream api request abandoned: " + e.err.Error() }
func (e *callerDoneError) Unwrap() error { return e.err }

// countsAsFailure reports whether err says something about the platform's health.
// Client errors and abandoned requests concern a single caller and leave the breaker alone.
func countsAsFailure(err error) bool {
	var callerDone *callerDoneError
	if errors.As(err, &callerDone) {
		return false
	}

	var statusErr *statusError
	if errors.As(err, &statusErr) {
		return statusErr.code >= http.StatusInternalServerError
	}

	return true
}

// Client implements service.StreamStatusService against a Cloudflare style API.
type Client struct {
	apiBaseURL   string
	accountID    string
	apiToken     string
	viewsBaseURL string
	httpClient   *http.Client
	breaker      *gobreaker.CircuitBreaker
	metrics      service.MetricsRecorder
	logger       *slog.Logger
}

// NewClient creates a status client guarded by a circuit breaker
func NewClient(cfg *config.StreamConfig, recorder service.MetricsRecorder, logger *slog.Logger) *Client {
	maxFailures := cfg.Breaker.MaxFailures
	if maxFailures == 0 {
		maxFailures = defaultMaxFailures
	}
	openTimeout := cfg.Breaker.OpenTimeout
	if openTimeout <= 0 {
		openTimeout = defaultOpenTimeout
	}

	c := &Client{
		apiBaseURL:   strings.TrimRight(cfg.APIBaseURL, "/"),
		accountID:    cfg.AccountID,
		apiToken:     cfg.APIToken,
		viewsBaseURL: strings.TrimRight(cfg.ViewsBaseURL, "/"),
		httpClient:   &http.Client{Timeout: cfg.Timeout},
		metrics:      recorder,
		logger:       logger,
	}

	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Timeout:     openTimeout,
		IsSuccessful: func(err error) bool {
			return err == nil || !countsAsFailure(err)
		},
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				slog.String("name", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			recorder.RecordBreakerState(name, int(to))
		},
	})

	return c
}

// NewStreamStatusService returns the platform client, or an always-unknown service when the API is not configured
func NewStreamStatusService(cfg *config.Config, recorder service.MetricsRecorder, logger *slog.Logger) service.StreamStatusService {
	if cfg.Stream == nil || cfg.Stream.APIBaseURL == "" {
		logger.Info("Stream API not configured, live input status is always unknown")

		return unknownStatusService{}
	}

	return NewClient(cfg.Stream, recorder, logger)
}

// LiveInputStatus returns the current state of a live input. Failures of any kind yield the unknown status.
func (c *Client) LiveInputStatus(ctx context.Context, liveInputID string) entity.LiveInputStatus {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetchStatus(ctx, liveInputID)
	})
	if err != nil {
		c.logger.WarnContext(ctx, "Live input status unavailable",
			slog.String("live_input_id", liveInputID),
			slog.Any("error", err),
		)
		c.metrics.RecordStreamStatus(string(entity.LiveInputUnknown))

		return entity.UnknownLiveInputStatus()
	}

	status, ok := result.(entity.LiveInputStatus)
	if !ok {
		return entity.UnknownLiveInputStatus()
	}
	c.metrics.RecordStreamStatus(string(status.Status))

	return status
}

func (c *Client) fetchStatus(ctx context.Context, liveInputID string) (entity.LiveInputStatus, error) {
	endpoint := fmt.Sprintf("%s/accounts/%s/stream/live_inputs/%s",
		c.apiBaseURL, url.PathEscape(c.accountID), url.PathEscape(liveInputID))

	var body liveInputResponse
	if err := c.getJSON(ctx, endpoint, true, &body); err != nil {
		return entity.LiveInputStatus{}, err
	}
	if !body.Success {
		return entity.LiveInputStatus{}, errors.New("stream api reported failure")
	}

	status := entity.LiveInputStatus{Status: entity.LiveInputDisconnected}
	if body.Result.Status != nil && body.Result.Status.Current.State == string(entity.LiveInputConnected) {
		status.Status = entity.LiveInputConnected
	}

	// Viewer count is best effort and only meaningful while connected
	if status.Status == entity.LiveInputConnected && c.viewsBaseURL != "" {
		status.ViewerCount = c.viewerCount(ctx, liveInputID)
	}

	return status, nil
}

func (c *Client) viewerCount(ctx context.Context, liveInputID string) *int {
	endpoint := fmt.Sprintf("%s/%s/views", c.viewsBaseURL, url.PathEscape(liveInputID))

	var body viewsResponse
	if err := c.getJSON(ctx, endpoint, false, &body); err != nil {
		c.logger.DebugContext(ctx, "Viewer count unavailable",
			slog.String("live_input_id", liveInputID),
			slog.Any("error", err),
		)

		return nil
	}

	return body.LiveViewers
}

func (c *Client) getJSON(ctx context.Context, endpoint string, authorized bool, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if authorized {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return errors.WithStack(&callerDoneError{err: ctx.Err()})
		}

		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.WithStack(&statusError{code: resp.StatusCode})
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return errors.Wrap(err, "decode stream api response")
	}

	return nil
}

type unknownStatusService struct{}

func (unknownStatusService) LiveInputStatus(context.Context, string) entity.LiveInputStatus {
	return entity.UnknownLiveInputStatus()
}
