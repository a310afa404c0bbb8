package repository

import (
	"context"

	"cleanrecord/internal/domain/entity"
	"cleanrecord/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for cleaning session persistence.
var (
	// ErrSessionNotFound is returned when a session does not exist (or is not owned, for scoped lookups).
	ErrSessionNotFound = errors.New("cleaning session not found")
)

// SessionRepository defines the interface for cleaning session database operations.
type SessionRepository interface {
	// CreateSession persists a new session.
	CreateSession(ctx context.Context, session *entity.CleaningSession) error

	// FindSessionByID retrieves a session regardless of owner, for explicit ownership checks.
	FindSessionByID(ctx context.Context, id uuid.UUID) (*entity.CleaningSession, error)

	// FindSessionByLiveInputID retrieves the session streaming on a live input.
	FindSessionByLiveInputID(ctx context.Context, liveInputID string) (*entity.CleaningSession, error)

	// FindOwnedSessionByLiveInputID retrieves the owner's session streaming on a live input.
	FindOwnedSessionByLiveInputID(ctx context.Context, userID, liveInputID string) (*entity.CleaningSession, error)

	// FindSessionsByUser retrieves every session of an owner, newest scheduled first,
	// each with AddressName resolved against the owner's addresses.
	FindSessionsByUser(ctx context.Context, userID string) ([]*entity.CleaningSession, error)

	// UpdateBooking re-sets address, service type, scheduled time and notes of an owned session.
	// Returns ErrSessionNotFound if zero rows match the id and owner.
	UpdateBooking(ctx context.Context, session *entity.CleaningSession) error

	// UpdateSession writes lifecycle, video and review fields of a session.
	UpdateSession(ctx context.Context, session *entity.CleaningSession) error

	// DeleteSession removes a session by id.
	DeleteSession(ctx context.Context, id uuid.UUID) error
}
