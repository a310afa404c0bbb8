package service

import (
	"context"
)

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendUserNotification sends a push notification to every device subscribed to the user's topic
	SendUserNotification(ctx context.Context, userID, title, body string, data map[string]string) error
}
