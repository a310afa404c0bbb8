package handler

import (
	"net/http"

	"cleanrecord/internal/delivery/api/middleware"
	"cleanrecord/internal/delivery/api/response"
	domainerrors "cleanrecord/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// HealthHandler serves liveness and caller introspection endpoints
type HealthHandler struct{}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health reports that the process is serving
func (h *HealthHandler) Health(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// WhoAmI returns the identity resolved by the auth middleware
func (h *HealthHandler) WhoAmI(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"userId": identity.Subject,
		"email":  identity.Email,
	})
}
