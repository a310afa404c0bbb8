package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"cleanrecord/internal/delivery/api/middleware"
	"cleanrecord/internal/delivery/api/validator"
	"cleanrecord/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testUserID = "google-oauth2|alice"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newContext builds an authenticated echo context. An empty userID leaves the request anonymous.
func newContext(method, target, body, userID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if userID != "" {
		middleware.SetIdentity(c, &entity.Identity{
			Subject:    userID,
			Email:      "alice@example.com",
			GivenName:  "Alice",
			FamilyName: "Nowak",
			Locale:     "pl-PL",
		})
	}

	return c, rec
}

func withID(c echo.Context, id string) echo.Context {
	c.SetParamNames("id")
	c.SetParamValues(id)

	return c
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string   `json:"code"`
		Message string   `json:"message"`
		Details []string `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var data T
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &data))

	return data
}
