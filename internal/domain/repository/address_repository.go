// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"cleanrecord/internal/domain/entity"
	"cleanrecord/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for address persistence.
var (
	// ErrAddressNotFound is returned when no address matches both the id and the owner.
	ErrAddressNotFound = errors.New("address not found")
)

// AddressRepository defines the interface for address-related database operations.
// Every method is scoped to an owner; rows of other owners are never visible.
type AddressRepository interface {
	// CreateAddress persists a new address.
	CreateAddress(ctx context.Context, address *entity.Address) error

	// FindAddressByID retrieves an address by id and owner.
	// Returns ErrAddressNotFound if the address does not exist or belongs to someone else.
	FindAddressByID(ctx context.Context, userID string, id uuid.UUID) (*entity.Address, error)

	// FindAddressesByUser retrieves all addresses of an owner, oldest first.
	FindAddressesByUser(ctx context.Context, userID string) ([]*entity.Address, error)

	// UpdateAddress updates the label and location fields of an owned address.
	// Returns ErrAddressNotFound if zero rows match the id and owner.
	UpdateAddress(ctx context.Context, address *entity.Address) error

	// DeleteAddress removes an owned address.
	// Returns ErrAddressNotFound if zero rows match the id and owner.
	DeleteAddress(ctx context.Context, userID string, id uuid.UUID) error
}
