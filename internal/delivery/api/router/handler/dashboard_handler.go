package handler

import (
	"log/slog"
	"net/http"

	"cleanrecord/internal/delivery/api/dto"
	"cleanrecord/internal/delivery/api/middleware"
	"cleanrecord/internal/delivery/api/response"
	"cleanrecord/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DashboardHandlerParams holds dependencies for DashboardHandler, injected by Fx.
type DashboardHandlerParams struct {
	fx.In

	DashboardUC usecase.DashboardUsecase
	StreamUC    usecase.StreamUsecase
	Logger      *slog.Logger
}

// DashboardHandler serves the dashboard and live video status
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
	streamUC    usecase.StreamUsecase
	logger      *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(params DashboardHandlerParams) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: params.DashboardUC,
		streamUC:    params.StreamUC,
		logger:      params.Logger,
	}
}

// GetDashboard returns stats, the next booking, history and the gallery
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	dashboard, err := h.dashboardUC.GetDashboard(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, dto.NewDashboardResponse(dashboard))
}

// GetStreamStatus reports the live input state of one of the caller's sessions
func (h *DashboardHandler) GetStreamStatus(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	status, err := h.streamUC.GetLiveInputStatus(c.Request().Context(), userID, c.Param("liveInputId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}
