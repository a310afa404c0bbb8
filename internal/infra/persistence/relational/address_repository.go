package relational

import (
	"context"

	"cleanrecord/internal/domain/entity"
	domainerrors "cleanrecord/internal/domain/errors"
	"cleanrecord/internal/domain/repository"
	"cleanrecord/internal/errors"
	"cleanrecord/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// addressRepository implements the domain.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// CreateAddress persists a new address.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := gorm.G[model.AddressModel](repo.db).Create(ctx, addressM); err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrAddressNameTooLong.WrapMessage("address name exceeds limit")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindAddressByID retrieves an address by id and owner.
func (repo *addressRepository) FindAddressByID(ctx context.Context, userID string, id uuid.UUID) (*entity.Address, error) {
	addressM, err := gorm.G[model.AddressModel](repo.db).
		Where("id = ? AND user_id = ?", id, userID).
		First(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return toAddressDomain(&addressM), nil
}

// FindAddressesByUser retrieves all addresses of an owner, oldest first.
func (repo *addressRepository) FindAddressesByUser(ctx context.Context, userID string) ([]*entity.Address, error) {
	addressModels, err := gorm.G[model.AddressModel](repo.db).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by user")
	}

	addresses := make([]*entity.Address, 0, len(addressModels))
	for i := range addressModels {
		addresses = append(addresses, toAddressDomain(&addressModels[i]))
	}

	return addresses, nil
}

// UpdateAddress updates the label and location fields of an owned address.
func (repo *addressRepository) UpdateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	rows, err := gorm.G[model.AddressModel](repo.db).
		Where("id = ? AND user_id = ?", address.ID, address.UserID).
		Select("name", "street", "postal_code", "city", "updated_at").
		Updates(ctx, model.AddressModel{
			Name:       addressM.Name,
			Street:     addressM.Street,
			PostalCode: addressM.PostalCode,
			City:       addressM.City,
			UpdatedAt:  addressM.UpdatedAt,
		})
	if err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrAddressNameTooLong.WrapMessage("address name exceeds limit")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update address")
	}

	// Zero rows means the address is missing or owned by someone else.
	if rows == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// DeleteAddress removes an owned address.
func (repo *addressRepository) DeleteAddress(ctx context.Context, userID string, id uuid.UUID) error {
	rows, err := gorm.G[model.AddressModel](repo.db).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(ctx)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete address")
	}

	if rows == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:         data.ID,
		UserID:     data.UserID,
		Name:       data.Name,
		Street:     data.Street,
		PostalCode: data.PostalCode,
		City:       data.City,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromAddressDomain converts a domain Address entity to a GORM AddressModel.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Name:       data.Name,
		Street:     data.Street,
		PostalCode: data.PostalCode,
		City:       data.City,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
