package usecase

import (
	"context"

	"cleanrecord/internal/domain/entity"
)

// StreamUsecase exposes live video state of the caller's sessions.
type StreamUsecase interface {
	// GetLiveInputStatus reports the platform status of a live input that belongs to one of the caller's sessions.
	GetLiveInputStatus(ctx context.Context, userID, liveInputID string) (entity.LiveInputStatus, error)
}

// SessionLifecycleUsecase applies platform lifecycle events to cleaning sessions.
type SessionLifecycleUsecase interface {
	HandleStreamEvent(ctx context.Context, event *entity.StreamEvent) error
}
