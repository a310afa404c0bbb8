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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	sanitizer service.ContentSanitizer
	logger    *slog.Logger
	now       func() time.Time
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	sanitizer service.ContentSanitizer,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		sanitizer: sanitizer,
		logger:    logger,
		now:       time.Now,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the caller's profile. A missing profile is not an error.
func (srv *profileService) GetProfile(ctx context.Context, userID string) (*entity.UserProfile, error) {
	var profile *entity.UserProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewProfileRepository().FindProfileByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find profile")
		}
		profile = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	return profile, nil
}

// SaveProfile looks up the caller's profile and updates it, or inserts a new one, inside one transaction.
func (srv *profileService) SaveProfile(ctx context.Context, userID string, input *usecase.SaveProfileInput) (*entity.UserProfile, bool, error) {
	fields, err := srv.normalizeProfile(input)
	if err != nil {
		return nil, false, err
	}

	var (
		saved   *entity.UserProfile
		created bool
	)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()
		now := srv.now()

		existing, err := profileRepo.FindProfileByUserID(ctx, userID)
		switch {
		case err == nil:
			existing.FirstName = fields.FirstName
			existing.LastName = fields.LastName
			existing.Email = fields.Email
			existing.Phone = fields.Phone
			existing.Language = fields.Language
			existing.UpdatedAt = now

			if err := profileRepo.UpdateProfile(ctx, existing); err != nil {
				return errors.Wrap(err, "failed to update profile")
			}
			saved = existing

			return nil
		case errors.Is(err, repository.ErrProfileNotFound):
			fields.ID = uuid.New()
			fields.UserID = userID
			fields.Balance = 0
			fields.CreatedAt = now
			fields.UpdatedAt = now

			if err := profileRepo.CreateProfile(ctx, fields); err != nil {
				if errors.Is(err, repository.ErrProfileAlreadyExists) {
					return domainerrors.ErrConflict.WrapMessage("profile was created concurrently")
				}

				return errors.Wrap(err, "failed to create profile")
			}
			saved = fields
			created = true

			return nil
		default:
			return errors.Wrap(err, "failed to find profile")
		}
	})
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to save profile")
	}

	srv.log(ctx).Info("Profile saved",
		slog.String("profile_id", saved.ID.String()),
		slog.Bool("created", created),
	)

	return saved, created, nil
}

// GetProfileDefaults returns the saved profile values when present, else values derived from the identity.
func (srv *profileService) GetProfileDefaults(ctx context.Context, identity *entity.Identity) (*entity.ProfileDefaults, error) {
	profile, err := srv.GetProfile(ctx, identity.Subject)
	if err != nil {
		return nil, err
	}

	if profile == nil {
		defaults := identity.ProfileDefaults()

		return &defaults, nil
	}

	return &entity.ProfileDefaults{
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Email:     profile.Email,
		Language:  profile.Language,
	}, nil
}

func (srv *profileService) normalizeProfile(input *usecase.SaveProfileInput) (*entity.UserProfile, error) {
	profile := &entity.UserProfile{
		FirstName: srv.sanitizer.Sanitize(input.FirstName),
		LastName:  srv.sanitizer.Sanitize(input.LastName),
		Email:     srv.sanitizer.Sanitize(input.Email),
		Language:  srv.sanitizer.Sanitize(input.Language),
	}
	if profile.FirstName == "" || profile.LastName == "" || profile.Email == "" {
		return nil, domainerrors.ErrValidationFailed
	}
	if profile.Language == "" {
		profile.Language = entity.DefaultLanguage
	}
	if input.Phone != nil {
		if phone := srv.sanitizer.Sanitize(*input.Phone); phone != "" {
			profile.Phone = &phone
		}
	}

	return profile, nil
}
