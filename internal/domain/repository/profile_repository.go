package repository

import (
	"context"

	"cleanrecord/internal/domain/entity"
	"cleanrecord/internal/errors"
)

// Domain-specific errors for profile persistence.
var (
	// ErrProfileNotFound is returned when the owner has not saved a profile yet.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrProfileAlreadyExists is returned when a second profile is inserted for the same owner.
	ErrProfileAlreadyExists = errors.New("profile already exists")
)

// ProfileRepository defines the interface for profile-related database operations.
type ProfileRepository interface {
	// FindProfileByUserID retrieves the single profile of an owner.
	// Returns ErrProfileNotFound if none exists.
	FindProfileByUserID(ctx context.Context, userID string) (*entity.UserProfile, error)

	// CreateProfile inserts a new profile.
	// Returns ErrProfileAlreadyExists if the owner already has one.
	CreateProfile(ctx context.Context, profile *entity.UserProfile) error

	// UpdateProfile updates contact fields of the owner's profile. The balance is never touched.
	UpdateProfile(ctx context.Context, profile *entity.UserProfile) error
}
