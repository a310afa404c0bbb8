package pubsub

import (
	"context"
	"log/slog"
	"time"

	"cleanrecord/internal/domain/service"
	"cleanrecord/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

const publishTimeout = 10 * time.Second

// googlePubSubPublisher sends booking events to a Cloud Pub/Sub topic.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topicID   string
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and fails fast when topicID does not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	topic := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "look up topic %s", topic)
	}

	return &googlePubSubPublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		topicID:   topicID,
		logger:    logger,
	}, nil
}

// PublishBookingEvent blocks until the server acknowledges the message or publishTimeout passes.
func (p *googlePubSubPublisher) PublishBookingEvent(ctx context.Context, event *service.BookingEvent) error {
	data, attributes, err := encodeBookingEvent(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{Data: data, Attributes: attributes}).Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "publish %s to %s", event.Type, p.topicID)
	}

	p.logger.DebugContext(ctx, "[GooglePubSub] Booking event published",
		slog.String("type", string(event.Type)),
		slog.String("session_id", event.SessionID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages and releases the client.
func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
