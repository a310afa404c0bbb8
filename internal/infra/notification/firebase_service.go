package notification

import (
	"context"
	"log/slog"

	"cleanrecord/config"
	"cleanrecord/internal/domain/service"
	"cleanrecord/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// UserTopic is the FCM topic every device of a user subscribes to.
func UserTopic(userID string) string {
	return "user_" + userID
}

// messageSender is the subset of *messaging.Client used here.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client messageSender
	logger *slog.Logger
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig, logger *slog.Logger) (service.NotificationService, error) {
	var firebaseCfg *firebase.Config
	if cfg.ProjectID != "" {
		firebaseCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	opts := []option.ClientOption{}
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, firebaseCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client: client,
		logger: logger,
	}, nil
}

// SendUserNotification sends a push notification to the user's topic
func (s *firebaseService) SendUserNotification(ctx context.Context, userID, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Topic: UserTopic(userID),
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		return errors.Wrap(err, "failed to send notification")
	}

	s.logger.DebugContext(ctx, "Notification sent",
		slog.String("topic", message.Topic),
		slog.String("messageId", messageID),
	)

	return nil
}

type noopNotificationService struct {
	logger *slog.Logger
}

// NewNoopNotificationService logs notifications instead of sending them; used when Firebase is not configured
func NewNoopNotificationService(logger *slog.Logger) service.NotificationService {
	return &noopNotificationService{logger: logger}
}

func (s *noopNotificationService) SendUserNotification(ctx context.Context, userID, title, _ string, _ map[string]string) error {
	s.logger.InfoContext(ctx, "Notification skipped (firebase not configured)",
		slog.String("topic", UserTopic(userID)),
		slog.String("title", title),
	)

	return nil
}
