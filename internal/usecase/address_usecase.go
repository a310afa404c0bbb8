package usecase

import (
	"context"

	"cleanrecord/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressUsecase defines the interface for saved address operations.
// The userID is always the authenticated caller; it is never taken from request bodies.
type AddressUsecase interface {
	ListAddresses(ctx context.Context, userID string) ([]*entity.Address, error)
	CreateAddress(ctx context.Context, userID string, input *AddressInput) (*entity.Address, error)
	UpdateAddress(ctx context.Context, userID string, id uuid.UUID, input *AddressInput) (*entity.Address, error)
	DeleteAddress(ctx context.Context, userID string, id uuid.UUID) error
}

// --- Input DTOs ---

// AddressInput defines the editable fields of an address.
type AddressInput struct {
	Name       string `json:"name"`
	Street     string `json:"street"`
	PostalCode string `json:"postalCode"`
	City       string `json:"city"`
}
