package main

import (
	"context"
	"log/slog"
	"os"

	"cleanrecord/config"
	"cleanrecord/internal/delivery"
	"cleanrecord/internal/delivery/api"
	"cleanrecord/internal/delivery/api/middleware"
	"cleanrecord/internal/delivery/api/router/handler"
	"cleanrecord/internal/domain/service"
	"cleanrecord/internal/infra/auth"
	logs "cleanrecord/internal/infra/log"
	"cleanrecord/internal/infra/metrics"
	"cleanrecord/internal/infra/persistence/relational"
	"cleanrecord/internal/infra/pubsub"
	"cleanrecord/internal/infra/qrcode"
	"cleanrecord/internal/infra/sanitize"
	"cleanrecord/internal/infra/stream"
	"cleanrecord/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		metrics.Module,
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		relational.New,
		relational.NewTransactionManager,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewIdentityVerifier,
			stream.NewStreamStatusService,
			sanitize.NewContentSanitizer,
			pubsub.NewEventPublisher,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates the share QR code renderer from the share section
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.Share)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAddressService,
			impl.NewProfileService,
			impl.NewBookingService,
			impl.NewDashboardService,
			impl.NewStreamService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewBookingRateLimiter,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHealthHandler,
			handler.NewAddressHandler,
			handler.NewProfileHandler,
			handler.NewBookingHandler,
			handler.NewDashboardHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
