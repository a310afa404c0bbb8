package main

import (
	"context"
	"log/slog"
	"os"

	"cleanrecord/config"
	"cleanrecord/internal/delivery"
	"cleanrecord/internal/delivery/worker"
	"cleanrecord/internal/delivery/worker/handler"
	"cleanrecord/internal/domain/service"
	logs "cleanrecord/internal/infra/log"
	"cleanrecord/internal/infra/metrics"
	"cleanrecord/internal/infra/notification"
	"cleanrecord/internal/infra/persistence/relational"
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
		metrics.Module,
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			relational.New,
			relational.NewTransactionManager,
			newNotificationService,
			impl.NewSessionLifecycleService,
			handler.NewPushHandler,
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
		fx.Invoke(
			startServer,
		),
	).Run()
}

// newNotificationService sends through Firebase when it is configured and only logs otherwise
func newNotificationService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		logger.Warn("Firebase is not configured, notifications will only be logged")

		return notification.NewNoopNotificationService(logger), nil
	}

	return notification.NewFirebaseService(ctx, cfg.Firebase, logger)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start worker", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
