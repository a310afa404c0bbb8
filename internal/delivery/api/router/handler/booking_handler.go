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

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const contentTypePNG = "image/png"

// BookingHandlerParams holds dependencies for BookingHandler, injected by Fx.
type BookingHandlerParams struct {
	fx.In

	BookingUC usecase.BookingUsecase
	Logger    *slog.Logger
}

// BookingHandler holds dependencies for booking handlers
type BookingHandler struct {
	bookingUC usecase.BookingUsecase
	logger    *slog.Logger
}

// NewBookingHandler is the constructor for BookingHandler
func NewBookingHandler(params BookingHandlerParams) *BookingHandler {
	return &BookingHandler{
		bookingUC: params.BookingUC,
		logger:    params.Logger,
	}
}

// CreateBooking books a cleaning from a calendar selection
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	input, err := bindBooking(c)
	if err != nil {
		return err
	}
	if input == nil {
		return nil
	}

	session, err := h.bookingUC.CreateBooking(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, dto.BookingCreatedResponse{
		Success:   true,
		BookingID: session.ID.String(),
		Message:   dto.MessageBookingCreated,
	})
}

// ListBookings returns the caller's sessions, newest scheduled first
func (h *BookingHandler) ListBookings(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	sessions, err := h.bookingUC.ListBookings(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.NewSessionResponses(sessions))
}

// UpdateBooking changes the calendar selection of a scheduled booking
func (h *BookingHandler) UpdateBooking(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := parseID(c.Param("id"), domainerrors.ErrBookingIDMissing, domainerrors.ErrSessionNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input, err := bindBooking(c)
	if err != nil {
		return err
	}
	if input == nil {
		return nil
	}

	session, err := h.bookingUC.UpdateBooking(c.Request().Context(), userID, id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.NewSessionResponse(session))
}

// CancelBooking deletes a scheduled booking named by the :id path segment or ?id=
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	rawID := c.Param("id")
	if rawID == "" {
		rawID = c.QueryParam("id")
	}
	id, err := parseID(rawID, domainerrors.ErrBookingIDMissing, domainerrors.ErrSessionNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.bookingUC.CancelBooking(c.Request().Context(), userID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.MessageResponse{Message: dto.MessageBookingDeleted})
}

// ReviewSession rates a completed session
func (h *BookingHandler) ReviewSession(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := parseID(c.Param("id"), domainerrors.ErrBookingIDMissing, domainerrors.ErrSessionNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req dto.ReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidRating)
	}

	session, err := h.bookingUC.ReviewSession(c.Request().Context(), userID, id, &usecase.ReviewInput{
		Rating:   req.Rating,
		Feedback: req.Feedback,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.NewSessionResponse(session))
}

// ShareQRCode renders a PNG QR code linking to the session's watch page
func (h *BookingHandler) ShareQRCode(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	id, err := parseID(c.Param("id"), domainerrors.ErrBookingIDMissing, domainerrors.ErrSessionNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.bookingUC.ShareQRCode(c.Request().Context(), userID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, contentTypePNG, png)
}

// bindBooking decodes and validates a booking body. A nil input means the error response was already written.
func bindBooking(c echo.Context) (*usecase.BookingInput, error) {
	var req dto.BookingRequest
	if err := c.Bind(&req); err != nil {
		return nil, response.BindingError(c, "INVALID_INPUT", "Invalid booking input")
	}

	if err := c.Validate(&req); err != nil {
		return nil, response.ValidationFailed(c, validator.FieldErrors(err))
	}

	addressID, err := uuid.Parse(req.AddressID)
	if err != nil {
		return nil, response.ValidationFailed(c, []string{"addressId: uuid"})
	}

	return &usecase.BookingInput{
		Date:        req.Date,
		Time:        req.Time,
		AddressID:   addressID,
		ServiceType: req.ServiceType,
		Notes:       req.Notes,
	}, nil
}
