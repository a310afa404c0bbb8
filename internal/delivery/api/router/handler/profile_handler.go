package handler

import (
	"log/slog"
	"net/http"

	"cleanrecord/internal/delivery/api/dto"
	"cleanrecord/internal/delivery/api/middleware"
	"cleanrecord/internal/delivery/api/response"
	"cleanrecord/internal/delivery/api/validator"
	domainerrors "cleanrecord/internal/domain/errors"
	"cleanrecord/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler holds dependencies for profile handlers
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// GetProfile returns the caller's profile, or null data when none was saved
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	profile, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.NewProfileResponse(profile))
}

// SaveProfile creates the caller's profile (201) or updates it in place (200)
func (h *ProfileHandler) SaveProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req dto.ProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, validator.FieldErrors(err))
	}

	profile, created, err := h.profileUC.SaveProfile(c.Request().Context(), userID, &usecase.SaveProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Language:  req.Language,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	return response.Success(c, status, dto.NewProfileResponse(profile))
}

// GetProfileDefaults suggests profile form values from the saved profile or the caller's identity
func (h *ProfileHandler) GetProfileDefaults(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthorized)
	}

	defaults, err := h.profileUC.GetProfileDefaults(c.Request().Context(), identity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, defaults)
}
