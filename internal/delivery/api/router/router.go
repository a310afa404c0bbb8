// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cleanrecord/config"
	"cleanrecord/internal/delivery/api/middleware"
	"cleanrecord/internal/delivery/api/router/handler"
	"cleanrecord/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler    *handler.HealthHandler
	AddressHandler   *handler.AddressHandler
	ProfileHandler   *handler.ProfileHandler
	BookingHandler   *handler.BookingHandler
	DashboardHandler *handler.DashboardHandler
	AuthMiddleware   *middleware.AuthMiddleware
	BookingLimiter   *middleware.RateLimiter
	Gatherer         prometheus.Gatherer
	Config           *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler    *handler.HealthHandler
	addressHandler   *handler.AddressHandler
	profileHandler   *handler.ProfileHandler
	bookingHandler   *handler.BookingHandler
	dashboardHandler *handler.DashboardHandler
	authMiddleware   *middleware.AuthMiddleware
	bookingLimiter   *middleware.RateLimiter
	gatherer         prometheus.Gatherer
	config           *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:    params.HealthHandler,
		addressHandler:   params.AddressHandler,
		profileHandler:   params.ProfileHandler,
		bookingHandler:   params.BookingHandler,
		dashboardHandler: params.DashboardHandler,
		authMiddleware:   params.AuthMiddleware,
		bookingLimiter:   params.BookingLimiter,
		gatherer:         params.Gatherer,
		config:           params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", r.healthHandler.Health)

	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(metrics.Handler(r.gatherer)))
	}

	// Every API route acts on behalf of the authenticated caller
	api := e.Group("/api")
	api.Use(r.authMiddleware.Authenticate)

	api.GET("/me", r.healthHandler.WhoAmI)

	addressesGroup := api.Group("/addresses")
	{
		addressesGroup.GET("", r.addressHandler.ListAddresses)
		addressesGroup.POST("", r.addressHandler.CreateAddress)
		addressesGroup.PUT("", r.addressHandler.UpdateAddress)
		addressesGroup.DELETE("", r.addressHandler.DeleteAddress)
		addressesGroup.PUT("/:id", r.addressHandler.UpdateAddress)
		addressesGroup.DELETE("/:id", r.addressHandler.DeleteAddress)
	}

	profileGroup := api.Group("/profile")
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.POST("", r.profileHandler.SaveProfile)
		profileGroup.GET("/defaults", r.profileHandler.GetProfileDefaults)
	}

	bookingsGroup := api.Group("/bookings")
	{
		bookingsGroup.GET("", r.bookingHandler.ListBookings)
		bookingsGroup.POST("", r.bookingHandler.CreateBooking, r.bookingLimiter.Limit)
		bookingsGroup.DELETE("", r.bookingHandler.CancelBooking)
		bookingsGroup.PUT("/:id", r.bookingHandler.UpdateBooking)
		bookingsGroup.DELETE("/:id", r.bookingHandler.CancelBooking)
		bookingsGroup.POST("/:id/review", r.bookingHandler.ReviewSession)
		bookingsGroup.GET("/:id/share.png", r.bookingHandler.ShareQRCode)
	}

	api.GET("/dashboard", r.dashboardHandler.GetDashboard)
	api.GET("/stream/status/:liveInputId", r.dashboardHandler.GetStreamStatus)
}
