// Package client is a typed HTTP client for the portal REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cleanrecord/internal/delivery/api/dto"
	"cleanrecord/internal/domain/entity"
	"cleanrecord/internal/errors"
)

const (
	defaultBaseURL   = "http://127.0.0.1:8080"
	defaultUserAgent = "cleanrecord-portal/1.0"
	requestTimeout   = 10 * time.Second
)

// APIError is a non-2xx answer decoded from the error envelope.
type APIError struct {
	Status  int
	Code    string
	Message string
	Details []string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("api returned status %d", e.Status)
	}

	return fmt.Sprintf("api returned status %d: %s (%s)", e.Status, e.Message, e.Code)
}

// IsStatus reports whether err is an APIError with the given HTTP status.
func IsStatus(err error, status int) bool {
	var apiErr *APIError

	return errors.As(err, &apiErr) && apiErr.Status == status
}

// Client talks to the portal API on behalf of one signed-in customer.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	token     string
	userAgent string
}

// New builds a Client for baseURL authenticating with the bearer token.
func New(baseURL, token string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: requestTimeout},
		token:     strings.TrimSpace(token),
		userAgent: defaultUserAgent,
	}, nil
}

// Me is the identity the API resolved from the token.
type Me struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

func (c *Client) WhoAmI(ctx context.Context) (*Me, error) {
	var me Me
	if err := c.do(ctx, http.MethodGet, "/api/me", nil, &me); err != nil {
		return nil, err
	}

	return &me, nil
}

func (c *Client) ListAddresses(ctx context.Context) ([]*dto.AddressResponse, error) {
	var addresses []*dto.AddressResponse
	if err := c.do(ctx, http.MethodGet, "/api/addresses", nil, &addresses); err != nil {
		return nil, err
	}

	return addresses, nil
}

func (c *Client) CreateAddress(ctx context.Context, req *dto.AddressRequest) (*dto.AddressResponse, error) {
	var address dto.AddressResponse
	if err := c.do(ctx, http.MethodPost, "/api/addresses", req, &address); err != nil {
		return nil, err
	}

	return &address, nil
}

// UpdateAddress rewrites the address named by req.ID.
func (c *Client) UpdateAddress(ctx context.Context, req *dto.AddressRequest) (*dto.AddressResponse, error) {
	var address dto.AddressResponse
	if err := c.do(ctx, http.MethodPut, "/api/addresses/"+url.PathEscape(req.ID), req, &address); err != nil {
		return nil, err
	}

	return &address, nil
}

func (c *Client) DeleteAddress(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/addresses/"+url.PathEscape(id), nil, nil)
}

// GetProfile returns nil when the customer has not saved a profile yet.
func (c *Client) GetProfile(ctx context.Context) (*dto.ProfileResponse, error) {
	var profile *dto.ProfileResponse
	if err := c.do(ctx, http.MethodGet, "/api/profile", nil, &profile); err != nil {
		return nil, err
	}

	return profile, nil
}

func (c *Client) SaveProfile(ctx context.Context, req *dto.ProfileRequest) (*dto.ProfileResponse, error) {
	var profile dto.ProfileResponse
	if err := c.do(ctx, http.MethodPost, "/api/profile", req, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

func (c *Client) GetProfileDefaults(ctx context.Context) (*entity.ProfileDefaults, error) {
	var defaults entity.ProfileDefaults
	if err := c.do(ctx, http.MethodGet, "/api/profile/defaults", nil, &defaults); err != nil {
		return nil, err
	}

	return &defaults, nil
}

func (c *Client) ListBookings(ctx context.Context) ([]*dto.SessionResponse, error) {
	var sessions []*dto.SessionResponse
	if err := c.do(ctx, http.MethodGet, "/api/bookings", nil, &sessions); err != nil {
		return nil, err
	}

	return sessions, nil
}

func (c *Client) CreateBooking(ctx context.Context, req *dto.BookingRequest) (*dto.BookingCreatedResponse, error) {
	var created dto.BookingCreatedResponse
	if err := c.do(ctx, http.MethodPost, "/api/bookings", req, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

func (c *Client) UpdateBooking(ctx context.Context, id string, req *dto.BookingRequest) (*dto.SessionResponse, error) {
	var session dto.SessionResponse
	if err := c.do(ctx, http.MethodPut, "/api/bookings/"+url.PathEscape(id), req, &session); err != nil {
		return nil, err
	}

	return &session, nil
}

func (c *Client) CancelBooking(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/bookings/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ReviewSession(ctx context.Context, id string, req *dto.ReviewRequest) (*dto.SessionResponse, error) {
	var session dto.SessionResponse
	if err := c.do(ctx, http.MethodPost, "/api/bookings/"+url.PathEscape(id)+"/review", req, &session); err != nil {
		return nil, err
	}

	return &session, nil
}

// ShareQRCode downloads the PNG QR code of a session's watch link.
func (c *Client) ShareQRCode(ctx context.Context, id string) ([]byte, error) {
	resp, err := c.send(ctx, http.MethodGet, "/api/bookings/"+url.PathEscape(id)+"/share.png", nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	png, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read qr code")
	}

	return png, nil
}

func (c *Client) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	var dashboard dto.DashboardResponse
	if err := c.do(ctx, http.MethodGet, "/api/dashboard", nil, &dashboard); err != nil {
		return nil, err
	}

	return &dashboard, nil
}

// GetStreamStatus returns the live input state. Transport and API failures are returned as errors;
// callers decide how to degrade.
func (c *Client) GetStreamStatus(ctx context.Context, liveInputID string) (entity.LiveInputStatus, error) {
	var status entity.LiveInputStatus
	if err := c.do(ctx, http.MethodGet, "/api/stream/status/"+url.PathEscape(liveInputID), nil, &status); err != nil {
		return entity.UnknownLiveInputStatus(), err
	}

	return status, nil
}

// do sends body as JSON and decodes the data member of the success envelope into dest.
func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	resp, err := c.send(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if dest == nil {
		return nil
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return errors.Wrap(err, "decode response")
	}
	if err := json.Unmarshal(envelope.Data, dest); err != nil {
		return errors.Wrap(err, "decode response data")
	}

	return nil
}

// send performs the request and turns any status >= 400 into an *APIError.
func (c *Client) send(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "encode request")
		}
		reader = bytes.NewReader(payload)
	}

	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "execute request")
	}

	if resp.StatusCode >= http.StatusBadRequest {
		defer func() { _ = resp.Body.Close() }()

		return nil, decodeAPIError(resp)
	}

	return resp, nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	var envelope struct {
		Error *struct {
			Code    string   `json:"code"`
			Message string   `json:"message"`
			Details []string `json:"details"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error != nil {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
		apiErr.Details = envelope.Error.Details
	}

	return apiErr
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, errors.Wrapf(err, "parse api url %q", raw)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""

	return u, nil
}
