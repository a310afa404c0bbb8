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

// sessionsWithAddressQuery resolves each session's address label against the owner's own addresses.
const sessionsWithAddressQuery = `
SELECT cleaning_sessions.*, user_addresses.name AS address_name
FROM cleaning_sessions
LEFT JOIN user_addresses
    ON user_addresses.id = cleaning_sessions.address_id
   AND user_addresses.user_id = cleaning_sessions.user_id
WHERE cleaning_sessions.user_id = ?
ORDER BY cleaning_sessions.scheduled_time DESC`

// sessionRepository implements the domain.SessionRepository interface.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// CreateSession persists a new session.
func (repo *sessionRepository) CreateSession(ctx context.Context, session *entity.CleaningSession) error {
	sessionM := fromSessionDomain(session)

	if err := gorm.G[model.CleaningSessionModel](repo.db).Create(ctx, sessionM); err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required booking information")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("booking violates a check constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cleaning session")
	}

	session.CreatedAt = sessionM.CreatedAt
	session.UpdatedAt = sessionM.UpdatedAt

	return nil
}

// FindSessionByID retrieves a session regardless of owner.
func (repo *sessionRepository) FindSessionByID(ctx context.Context, id uuid.UUID) (*entity.CleaningSession, error) {
	sessionM, err := gorm.G[model.CleaningSessionModel](repo.db).
		Where("id = ?", id).
		First(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find cleaning session by ID")
	}

	return toSessionDomain(&sessionM, nil), nil
}

// FindSessionByLiveInputID retrieves the session streaming on a live input.
func (repo *sessionRepository) FindSessionByLiveInputID(ctx context.Context, liveInputID string) (*entity.CleaningSession, error) {
	return repo.findByLiveInput(ctx, gorm.G[model.CleaningSessionModel](repo.db).
		Where("live_input_id = ?", liveInputID))
}

// FindOwnedSessionByLiveInputID retrieves the owner's session streaming on a live input.
func (repo *sessionRepository) FindOwnedSessionByLiveInputID(ctx context.Context, userID, liveInputID string) (*entity.CleaningSession, error) {
	return repo.findByLiveInput(ctx, gorm.G[model.CleaningSessionModel](repo.db).
		Where("live_input_id = ? AND user_id = ?", liveInputID, userID))
}

func (repo *sessionRepository) findByLiveInput(ctx context.Context, query gorm.ChainInterface[model.CleaningSessionModel]) (*entity.CleaningSession, error) {
	// The newest session wins if a live input was reused.
	sessionM, err := query.Order("scheduled_time DESC").First(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find cleaning session by live input")
	}

	return toSessionDomain(&sessionM, nil), nil
}

// FindSessionsByUser retrieves every session of an owner with resolved address labels.
func (repo *sessionRepository) FindSessionsByUser(ctx context.Context, userID string) ([]*entity.CleaningSession, error) {
	rows, err := gorm.G[model.CleaningSessionWithAddress](repo.db).
		Raw(sessionsWithAddressQuery, userID).
		Find(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cleaning sessions by user")
	}

	sessions := make([]*entity.CleaningSession, 0, len(rows))
	for i := range rows {
		sessions = append(sessions, toSessionDomain(&rows[i].CleaningSessionModel, rows[i].AddressName))
	}

	return sessions, nil
}

// UpdateBooking re-sets address, service type, scheduled time and notes of an owned session.
func (repo *sessionRepository) UpdateBooking(ctx context.Context, session *entity.CleaningSession) error {
	sessionM := fromSessionDomain(session)

	rows, err := gorm.G[model.CleaningSessionModel](repo.db).
		Where("id = ? AND user_id = ?", session.ID, session.UserID).
		Select("address_id", "service_type", "scheduled_time", "notes", "updated_at").
		Updates(ctx, model.CleaningSessionModel{
			AddressID:     sessionM.AddressID,
			ServiceType:   sessionM.ServiceType,
			ScheduledTime: sessionM.ScheduledTime,
			Notes:         sessionM.Notes,
			UpdatedAt:     sessionM.UpdatedAt,
		})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update booking")
	}

	if rows == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// UpdateSession writes lifecycle, video and review fields of a session.
func (repo *sessionRepository) UpdateSession(ctx context.Context, session *entity.CleaningSession) error {
	sessionM := fromSessionDomain(session)

	rows, err := gorm.G[model.CleaningSessionModel](repo.db).
		Where("id = ?", session.ID).
		Select(
			"status", "start_time", "end_time", "duration",
			"stream_id", "live_input_id", "recording_url", "thumbnail_url", "playback_id",
			"rating", "customer_feedback", "updated_at",
		).
		Updates(ctx, model.CleaningSessionModel{
			Status:           sessionM.Status,
			StartTime:        sessionM.StartTime,
			EndTime:          sessionM.EndTime,
			Duration:         sessionM.Duration,
			StreamID:         sessionM.StreamID,
			LiveInputID:      sessionM.LiveInputID,
			RecordingURL:     sessionM.RecordingURL,
			ThumbnailURL:     sessionM.ThumbnailURL,
			PlaybackID:       sessionM.PlaybackID,
			Rating:           sessionM.Rating,
			CustomerFeedback: sessionM.CustomerFeedback,
			UpdatedAt:        sessionM.UpdatedAt,
		})
	if err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidRating.WrapMessage("session violates a check constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update cleaning session")
	}

	if rows == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// DeleteSession removes a session by id.
func (repo *sessionRepository) DeleteSession(ctx context.Context, id uuid.UUID) error {
	rows, err := gorm.G[model.CleaningSessionModel](repo.db).
		Where("id = ?", id).
		Delete(ctx)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete cleaning session")
	}

	if rows == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toSessionDomain converts a GORM CleaningSessionModel to a domain CleaningSession entity.
func toSessionDomain(data *model.CleaningSessionModel, addressName *string) *entity.CleaningSession {
	if data == nil {
		return nil
	}

	return &entity.CleaningSession{
		ID:               data.ID,
		UserID:           data.UserID,
		AddressID:        data.AddressID,
		AddressName:      addressName,
		StreamID:         data.StreamID,
		LiveInputID:      data.LiveInputID,
		CleanerName:      data.CleanerName,
		CleanerAvatar:    data.CleanerAvatar,
		ServiceType:      entity.ServiceType(data.ServiceType),
		ScheduledTime:    data.ScheduledTime,
		StartTime:        data.StartTime,
		EndTime:          data.EndTime,
		Duration:         data.Duration,
		Status:           entity.SessionStatus(data.Status),
		RecordingURL:     data.RecordingURL,
		ThumbnailURL:     data.ThumbnailURL,
		PlaybackID:       data.PlaybackID,
		Notes:            data.Notes,
		Rating:           data.Rating,
		CustomerFeedback: data.CustomerFeedback,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromSessionDomain converts a domain CleaningSession entity to a GORM CleaningSessionModel.
func fromSessionDomain(data *entity.CleaningSession) *model.CleaningSessionModel {
	if data == nil {
		return nil
	}

	return &model.CleaningSessionModel{
		ID:               data.ID,
		UserID:           data.UserID,
		AddressID:        data.AddressID,
		StreamID:         data.StreamID,
		LiveInputID:      data.LiveInputID,
		CleanerName:      data.CleanerName,
		CleanerAvatar:    data.CleanerAvatar,
		ServiceType:      string(data.ServiceType),
		ScheduledTime:    data.ScheduledTime,
		StartTime:        data.StartTime,
		EndTime:          data.EndTime,
		Duration:         data.Duration,
		Status:           string(data.Status),
		RecordingURL:     data.RecordingURL,
		ThumbnailURL:     data.ThumbnailURL,
		PlaybackID:       data.PlaybackID,
		Notes:            data.Notes,
		Rating:           data.Rating,
		CustomerFeedback: data.CustomerFeedback,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
