package handler

import (
	"log/slog"
	"net/http"

	"cleanrecord/internal/delivery/api/dto"
	"cleanrecord/internal/delivery/api/middleware"
	"cleanrecord/internal/delivery/api/response"
	domainerrors "cleanrecord/internal/domain/errors"
	"cleanrecord/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	Logger    *slog.Logger
}

// AddressHandler holds dependencies for saved address handlers
type AddressHandler struct {
	addressUC usecase.AddressUsecase
	logger    *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

// ListAddresses returns the caller's addresses, oldest first
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	addresses, err := h.addressUC.ListAddresses(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.NewAddressResponses(addresses))
}

// CreateAddress saves a new address for the caller. Any owner in the body is ignored.
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req dto.AddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	address, err := h.addressUC.CreateAddress(c.Request().Context(), userID, toAddressInput(&req))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, dto.NewAddressResponse(address))
}

// UpdateAddress rewrites an address identified by the body id (or the :id path segment)
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req dto.AddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	rawID := c.Param("id")
	if rawID == "" {
		rawID = req.ID
	}
	id, err := parseID(rawID, domainerrors.ErrAddressIDMissing, domainerrors.ErrAddressNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	address, err := h.addressUC.UpdateAddress(c.Request().Context(), userID, id, toAddressInput(&req))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.NewAddressResponse(address))
}

// DeleteAddress removes an address named by ?id=, the :id path segment or a JSON body {id}
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	rawID := c.Param("id")
	if rawID == "" {
		rawID = c.QueryParam("id")
	}
	if rawID == "" && c.Request().ContentLength != 0 {
		var req dto.AddressRequest
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
		}
		rawID = req.ID
	}

	id, err := parseID(rawID, domainerrors.ErrAddressIDMissing, domainerrors.ErrAddressNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.addressUC.DeleteAddress(c.Request().Context(), userID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.MessageResponse{Message: dto.MessageAddressDeleted})
}

func toAddressInput(req *dto.AddressRequest) *usecase.AddressInput {
	return &usecase.AddressInput{
		Name:       req.Name,
		Street:     req.Street,
		PostalCode: req.PostalCode,
		City:       req.City,
	}
}
