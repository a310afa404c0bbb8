package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"cleanrecord/internal/errors"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	messages []*messaging.Message
	err      error
}

func (r *recordingSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	r.messages = append(r.messages, message)

	return "projects/test/messages/1", r.err
}

func TestFirebaseService_SendUserNotification(t *testing.T) {
	sender := &recordingSender{}
	svc := &firebaseService{client: sender, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	err := svc.SendUserNotification(context.Background(), "user-a", "Sprzątanie na żywo", "Transmisja rozpoczęta", map[string]string{"sessionId": "s-1"})

	require.NoError(t, err)
	require.Len(t, sender.messages, 1)
	assert.Equal(t, "user_user-a", sender.messages[0].Topic)
	assert.Equal(t, "Sprzątanie na żywo", sender.messages[0].Notification.Title)
	assert.Equal(t, "s-1", sender.messages[0].Data["sessionId"])
}

func TestFirebaseService_SendUserNotification_Error(t *testing.T) {
	sender := &recordingSender{err: errors.New("unavailable")}
	svc := &firebaseService{client: sender, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	err := svc.SendUserNotification(context.Background(), "user-a", "t", "b", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send notification")
}
