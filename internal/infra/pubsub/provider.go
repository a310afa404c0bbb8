package pubsub

import (
	"context"
	"log/slog"

	"cleanrecord/config"
	"cleanrecord/internal/domain/constants"
	"cleanrecord/internal/domain/service"
	"cleanrecord/internal/errors"

	"go.uber.org/fx"
)

// discardPublisher stands in when no provider is configured; booking events are dropped.
type discardPublisher struct {
	logger *slog.Logger
}

func (p *discardPublisher) PublishBookingEvent(ctx context.Context, event *service.BookingEvent) error {
	p.logger.DebugContext(ctx, "[PubSub] No provider configured, dropping booking event",
		slog.String("type", string(event.Type)),
		slog.String("session_id", event.SessionID),
	)

	return nil
}

func (p *discardPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the booking event transport from pubsub.provider and
// closes it when the app stops.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := newPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing booking event publisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, booking events will not be published")

		return &discardPublisher{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint is required for the local provider")
		}
		logger.Info("Publishing booking events over HTTP", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
		logger.Info("Publishing booking events to Google Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}
