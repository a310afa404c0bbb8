// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"cleanrecord/internal/domain/entity"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// GetProfile returns the caller's profile, or nil when none has been saved yet.
	GetProfile(ctx context.Context, userID string) (*entity.UserProfile, error)
	// SaveProfile creates the profile on first save and updates it afterwards.
	// The boolean reports whether a new row was inserted.
	SaveProfile(ctx context.Context, userID string, input *SaveProfileInput) (*entity.UserProfile, bool, error)
	// GetProfileDefaults suggests form values: the saved profile if any, else the identity attributes.
	GetProfileDefaults(ctx context.Context, identity *entity.Identity) (*entity.ProfileDefaults, error)
}

// --- Input DTOs ---

// SaveProfileInput defines the data required to create or update a profile.
type SaveProfileInput struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Language  string  `json:"language,omitempty"`
}
