package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cleanrecord/internal/delivery/api/dto"
	"cleanrecord/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"data": data, "meta": map[string]string{"request_id": "r-1"}})
}

func writeError(w http.ResponseWriter, status int, code, message string, details []string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{"code": code, "message": message, "details": details},
		"meta":  map[string]string{"request_id": "r-1"},
	})
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := New(server.URL, "alice-token")
	require.NoError(t, err)

	return c
}

func testContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	return ctx
}

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8080", u.String())

	u, err = parseBaseURL("portal.example.com:9000/ignored?x=1#frag")
	require.NoError(t, err)
	assert.Equal(t, "http://portal.example.com:9000", u.String())
}

func TestClient_SendsTokenAndDecodesEnvelope(t *testing.T) {
	var gotAuth, gotUserAgent string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotUserAgent = r.Header.Get("User-Agent")
		require.Equal(t, "/api/addresses", r.URL.Path)
		writeData(w, http.StatusOK, []dto.AddressResponse{{ID: "a-1", Name: "Dom"}})
	})

	addresses, err := c.ListAddresses(testContext(t))

	require.NoError(t, err)
	require.Len(t, addresses, 1)
	assert.Equal(t, "Dom", addresses[0].Name)
	assert.Equal(t, "Bearer alice-token", gotAuth)
	assert.Equal(t, defaultUserAgent, gotUserAgent)
}

func TestClient_CreateBooking(t *testing.T) {
	var got dto.BookingRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/bookings", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeData(w, http.StatusCreated, dto.BookingCreatedResponse{Success: true, BookingID: "b-1", Message: dto.MessageBookingCreated})
	})

	resp, err := c.CreateBooking(testContext(t), &dto.BookingRequest{Date: "2025-03-10", Time: "10:00", AddressID: "a-1", ServiceType: "standard"})

	require.NoError(t, err)
	assert.Equal(t, "b-1", resp.BookingID)
	assert.Equal(t, "2025-03-10", got.Date)
	assert.Equal(t, "a-1", got.AddressID)
}

func TestClient_GetProfile_None(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeData(w, http.StatusOK, nil)
	})

	profile, err := c.GetProfile(testContext(t))

	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestClient_APIError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusBadRequest, "VALIDATION_FAILED", "Missing required fields", []string{"email: email"})
	})

	_, err := c.SaveProfile(testContext(t), &dto.ProfileRequest{FirstName: "Alice"})

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "VALIDATION_FAILED", apiErr.Code)
	assert.Equal(t, []string{"email: email"}, apiErr.Details)
	assert.True(t, IsStatus(err, http.StatusBadRequest))
	assert.False(t, IsStatus(err, http.StatusNotFound))
}

func TestClient_PathsAndMethods(t *testing.T) {
	type call struct{ method, path string }
	var calls []call
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, call{r.Method, r.URL.Path})
		_, _ = io.Copy(io.Discard, r.Body)
		switch r.URL.Path {
		case "/api/bookings/b-1/share.png":
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write([]byte("PNG"))
		case "/api/stream/status/li_1":
			writeData(w, http.StatusOK, entity.LiveInputStatus{Status: entity.LiveInputConnected})
		default:
			writeData(w, http.StatusOK, map[string]string{"message": "ok"})
		}
	})
	ctx := testContext(t)

	require.NoError(t, c.DeleteAddress(ctx, "a-1"))
	require.NoError(t, c.CancelBooking(ctx, "b-1"))
	_, err := c.UpdateAddress(ctx, &dto.AddressRequest{ID: "a-1", Name: "Dom"})
	require.NoError(t, err)
	_, err = c.UpdateBooking(ctx, "b-1", &dto.BookingRequest{})
	require.NoError(t, err)
	_, err = c.ReviewSession(ctx, "b-1", &dto.ReviewRequest{Rating: 5})
	require.NoError(t, err)

	png, err := c.ShareQRCode(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("PNG"), png)

	status, err := c.GetStreamStatus(ctx, "li_1")
	require.NoError(t, err)
	assert.Equal(t, entity.LiveInputConnected, status.Status)

	assert.Equal(t, []call{
		{http.MethodDelete, "/api/addresses/a-1"},
		{http.MethodDelete, "/api/bookings/b-1"},
		{http.MethodPut, "/api/addresses/a-1"},
		{http.MethodPut, "/api/bookings/b-1"},
		{http.MethodPost, "/api/bookings/b-1/review"},
		{http.MethodGet, "/api/bookings/b-1/share.png"},
		{http.MethodGet, "/api/stream/status/li_1"},
	}, calls)
}

func TestClient_StreamStatusFailureIsUnknown(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "LIVE_INPUT_NOT_FOUND", "Live input not found", nil)
	})

	status, err := c.GetStreamStatus(testContext(t), "li_1")

	assert.Error(t, err)
	assert.Equal(t, entity.UnknownLiveInputStatus(), status)
}
