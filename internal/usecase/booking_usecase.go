package usecase

import (
	"context"

	"cleanrecord/internal/domain/entity"

	"github.com/google/uuid"
)

// BookingUsecase defines the interface for booking a cleaning session and managing it afterwards.
type BookingUsecase interface {
	CreateBooking(ctx context.Context, userID string, input *BookingInput) (*entity.CleaningSession, error)
	// ListBookings returns the caller's sessions, newest scheduled first, with address labels resolved.
	ListBookings(ctx context.Context, userID string) ([]*entity.CleaningSession, error)
	UpdateBooking(ctx context.Context, userID string, id uuid.UUID, input *BookingInput) (*entity.CleaningSession, error)
	CancelBooking(ctx context.Context, userID string, id uuid.UUID) error
	ReviewSession(ctx context.Context, userID string, id uuid.UUID, input *ReviewInput) (*entity.CleaningSession, error)
	// ShareQRCode renders a PNG QR code linking to the session's watch page.
	ShareQRCode(ctx context.Context, userID string, id uuid.UUID) ([]byte, error)
}

// --- Input DTOs ---

// BookingInput carries a calendar selection. Date and Time are naive local values
// ("YYYY-MM-DD", "HH:MM") interpreted in the configured booking location.
type BookingInput struct {
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	AddressID   uuid.UUID `json:"addressId"`
	ServiceType string    `json:"serviceType,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
}

// ReviewInput defines a customer's rating of a completed session.
type ReviewInput struct {
	Rating   int     `json:"rating"`
	Feedback *string `json:"feedback,omitempty"`
}
