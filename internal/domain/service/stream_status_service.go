package service

import (
	"context"

	"cleanrecord/internal/domain/entity"
)

// StreamStatusService reads live input state from the video platform.
// Implementations never fail: any problem is reported as an unknown status.
type StreamStatusService interface {
	LiveInputStatus(ctx context.Context, liveInputID string) entity.LiveInputStatus
}
