package entity

import "time"

// LiveInputState is the connection state of a live video input.
type LiveInputState string

const (
	LiveInputConnected    LiveInputState = "connected"
	LiveInputDisconnected LiveInputState = "disconnected"
	LiveInputUnknown      LiveInputState = "unknown"
)

// LiveInputStatus is the last known state of a live input.
type LiveInputStatus struct {
	Status      LiveInputState `json:"status"`
	ViewerCount *int           `json:"viewerCount,omitempty"`
}

// UnknownLiveInputStatus is reported whenever the platform cannot be reached or answers with an error.
func UnknownLiveInputStatus() LiveInputStatus {
	return LiveInputStatus{Status: LiveInputUnknown}
}

// StreamEventType is the kind of lifecycle event emitted by the streaming platform.
type StreamEventType string

const (
	StreamEventConnected      StreamEventType = "live_input.connected"
	StreamEventDisconnected   StreamEventType = "live_input.disconnected"
	StreamEventRecordingReady StreamEventType = "recording.ready"
)

// IsValid checks if the StreamEventType is a valid value.
func (t StreamEventType) IsValid() bool {
	switch t {
	case StreamEventConnected, StreamEventDisconnected, StreamEventRecordingReady:
		return true
	default:
		return false
	}
}

// StreamEvent is a lifecycle notification about a session's video.
type StreamEvent struct {
	Type            StreamEventType `json:"type"`
	LiveInputID     string          `json:"liveInputId"`
	SessionID       string          `json:"sessionId,omitempty"`
	StreamID        string          `json:"streamId,omitempty"`
	PlaybackID      string          `json:"playbackId,omitempty"`
	RecordingURL    string          `json:"recordingUrl,omitempty"`
	ThumbnailURL    string          `json:"thumbnailUrl,omitempty"`
	DurationSeconds int             `json:"durationSeconds,omitempty"`
	OccurredAt      time.Time       `json:"occurredAt"`
}
