// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "cleanrecord/internal/delivery/context"
	"cleanrecord/internal/domain/entity"
	domainerrors "cleanrecord/internal/domain/errors"
	"cleanrecord/internal/domain/repository"
	"cleanrecord/internal/domain/service"
	"cleanrecord/internal/errors"
	"cleanrecord/internal/usecase"

	"github.com/google/uuid"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	txManager repository.TransactionManager
	sanitizer service.ContentSanitizer
	logger    *slog.Logger
	now       func() time.Time
}

// NewAddressService is the constructor for addressService.
func NewAddressService(
	txManager repository.TransactionManager,
	sanitizer service.ContentSanitizer,
	logger *slog.Logger,
) usecase.AddressUsecase {
	return &addressService{
		txManager: txManager,
		sanitizer: sanitizer,
		logger:    logger,
		now:       time.Now,
	}
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAddresses returns the caller's saved addresses, oldest first.
func (srv *addressService) ListAddresses(ctx context.Context, userID string) ([]*entity.Address, error) {
	var addresses []*entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewAddressRepository().FindAddressesByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find addresses")
		}
		addresses = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

// CreateAddress saves a new address owned by the caller.
func (srv *addressService) CreateAddress(ctx context.Context, userID string, input *usecase.AddressInput) (*entity.Address, error) {
	address := srv.buildAddress(userID, input)
	if err := validateAddress(address); err != nil {
		return nil, err
	}

	now := srv.now()
	address.ID = uuid.New()
	address.CreatedAt = now
	address.UpdatedAt = now

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewAddressRepository().CreateAddress(ctx, address); err != nil {
			return errors.Wrap(err, "failed to create address")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create address")
	}

	srv.log(ctx).Info("Address created", slog.String("address_id", address.ID.String()))

	return address, nil
}

// UpdateAddress replaces the fields of an address owned by the caller.
// Addresses of other callers are reported exactly like missing ones.
func (srv *addressService) UpdateAddress(ctx context.Context, userID string, id uuid.UUID, input *usecase.AddressInput) (*entity.Address, error) {
	if id == uuid.Nil {
		return nil, domainerrors.ErrAddressIDMissing
	}

	address := srv.buildAddress(userID, input)
	if err := validateAddress(address); err != nil {
		return nil, err
	}
	address.ID = id
	address.UpdatedAt = srv.now()

	var updated *entity.Address

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		if err := addressRepo.UpdateAddress(ctx, address); err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return domainerrors.ErrAddressNotFound
			}

			return errors.Wrap(err, "failed to update address")
		}

		found, err := addressRepo.FindAddressByID(ctx, userID, id)
		if err != nil {
			return errors.Wrap(err, "failed to reload address")
		}
		updated = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update address")
	}

	return updated, nil
}

// DeleteAddress removes an address owned by the caller. Sessions referencing it keep the dangling id.
func (srv *addressService) DeleteAddress(ctx context.Context, userID string, id uuid.UUID) error {
	if id == uuid.Nil {
		return domainerrors.ErrAddressIDMissing
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewAddressRepository().DeleteAddress(ctx, userID, id); err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return domainerrors.ErrAddressNotFound
			}

			return errors.Wrap(err, "failed to delete address")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete address")
	}

	srv.log(ctx).Info("Address deleted", slog.String("address_id", id.String()))

	return nil
}

func (srv *addressService) buildAddress(userID string, input *usecase.AddressInput) *entity.Address {
	return &entity.Address{
		UserID:     userID,
		Name:       srv.sanitizer.Sanitize(input.Name),
		Street:     srv.sanitizer.Sanitize(input.Street),
		PostalCode: srv.sanitizer.Sanitize(input.PostalCode),
		City:       srv.sanitizer.Sanitize(input.City),
	}
}

func validateAddress(address *entity.Address) error {
	if !address.HasRequiredFields() {
		return domainerrors.ErrValidationFailed
	}
	if address.NameTooLong() {
		return domainerrors.ErrAddressNameTooLong
	}

	return nil
}
