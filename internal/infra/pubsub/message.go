package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"cleanrecord/internal/domain/service"
	"cleanrecord/internal/errors"

	"github.com/google/uuid"
)

// Message attribute keys set on every booking event. Subscribers can filter on them
// without decoding the payload.
const (
	AttributeType      = "type"
	AttributeSessionID = "session_id"
	AttributeUserID    = "user_id"
	AttributeRequestID = "request_id"
)

// PushMessage is the body Pub/Sub push subscriptions deliver. The local publisher
// produces it and the stream worker consumes it.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewPushMessage wraps payload the way Pub/Sub does: base64 data, a fresh message id and a publish time.
func NewPushMessage(payload []byte, attributes map[string]string, subscription string) PushMessage {
	var msg PushMessage
	msg.Subscription = subscription
	msg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = uuid.NewString()
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	return msg
}

// DecodeData returns the raw payload carried in the envelope.
func (m PushMessage) DecodeData() ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode push message data")
	}

	return data, nil
}

// encodeBookingEvent returns the JSON payload and routing attributes for event.
func encodeBookingEvent(event *service.BookingEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.Wrap(err, "encode booking event")
	}

	attributes := map[string]string{
		AttributeType:      string(event.Type),
		AttributeSessionID: event.SessionID,
		AttributeUserID:    event.UserID,
	}
	if event.RequestID != "" {
		attributes[AttributeRequestID] = event.RequestID
	}

	return data, attributes, nil
}
