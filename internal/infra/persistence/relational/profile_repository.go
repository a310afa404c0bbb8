package relational

import (
	"context"

	"cleanrecord/internal/domain/entity"
	domainerrors "cleanrecord/internal/domain/errors"
	"cleanrecord/internal/domain/repository"
	"cleanrecord/internal/errors"
	"cleanrecord/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// profileRepository implements the domain.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// FindProfileByUserID retrieves the single profile of an owner.
func (repo *profileRepository) FindProfileByUserID(ctx context.Context, userID string) (*entity.UserProfile, error) {
	profileM, err := gorm.G[model.UserProfileModel](repo.db).
		Where("user_id = ?", userID).
		First(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by user ID")
	}

	return toProfileDomain(&profileM), nil
}

// CreateProfile inserts a new profile.
func (repo *profileRepository) CreateProfile(ctx context.Context, profile *entity.UserProfile) error {
	profileM := fromProfileDomain(profile)

	if err := gorm.G[model.UserProfileModel](repo.db).Create(ctx, profileM); err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrProfileAlreadyExists, err.Error())
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// UpdateProfile updates contact fields of the owner's profile.
func (repo *profileRepository) UpdateProfile(ctx context.Context, profile *entity.UserProfile) error {
	profileM := fromProfileDomain(profile)

	rows, err := gorm.G[model.UserProfileModel](repo.db).
		Where("user_id = ?", profile.UserID).
		Select("first_name", "last_name", "email", "phone", "language", "updated_at").
		Updates(ctx, model.UserProfileModel{
			FirstName: profileM.FirstName,
			LastName:  profileM.LastName,
			Email:     profileM.Email,
			Phone:     profileM.Phone,
			Language:  profileM.Language,
			UpdatedAt: profileM.UpdatedAt,
		})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update profile")
	}

	if rows == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProfileDomain converts a GORM UserProfileModel to a domain UserProfile entity.
func toProfileDomain(data *model.UserProfileModel) *entity.UserProfile {
	if data == nil {
		return nil
	}

	return &entity.UserProfile{
		ID:        data.ID,
		UserID:    data.UserID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Phone:     data.Phone,
		Language:  data.Language,
		Balance:   data.Balance,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromProfileDomain converts a domain UserProfile entity to a GORM UserProfileModel.
func fromProfileDomain(data *entity.UserProfile) *model.UserProfileModel {
	if data == nil {
		return nil
	}

	return &model.UserProfileModel{
		ID:        data.ID,
		UserID:    data.UserID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Email:     data.Email,
		Phone:     data.Phone,
		Language:  data.Language,
		Balance:   data.Balance,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
