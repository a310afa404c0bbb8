package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"cleanrecord/config"
	deliverycontext "cleanrecord/internal/delivery/context"
	"cleanrecord/internal/domain/entity"
	domainerrors "cleanrecord/internal/domain/errors"
	"cleanrecord/internal/domain/repository"
	"cleanrecord/internal/domain/service"
	"cleanrecord/internal/errors"
	"cleanrecord/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// scheduleLayout matches date + "T" + time + ":00" built from the calendar selection.
const scheduleLayout = "2006-01-02T15:04:05"

// bookingService implements the BookingUsecase interface.
type bookingService struct {
	txManager   repository.TransactionManager
	publisher   service.EventPublisher
	qrService   service.QRCodeService
	sanitizer   service.ContentSanitizer
	metrics     service.MetricsRecorder
	cleanerName string
	location    *time.Location
	logger      *slog.Logger
	now         func() time.Time
}

// BookingServiceParams holds dependencies for BookingService, injected by Fx.
type BookingServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	QRService service.QRCodeService
	Sanitizer service.ContentSanitizer
	Metrics   service.MetricsRecorder
	Config    *config.Config
	Logger    *slog.Logger
}

// NewBookingService is the constructor for bookingService.
func NewBookingService(params BookingServiceParams) (usecase.BookingUsecase, error) {
	location, err := params.Config.BookingLocation()
	if err != nil {
		return nil, err
	}

	cleanerName := ""
	if params.Config.Booking != nil {
		cleanerName = params.Config.Booking.CleanerName
	}

	return &bookingService{
		txManager:   params.TxManager,
		publisher:   params.Publisher,
		qrService:   params.QRService,
		sanitizer:   params.Sanitizer,
		metrics:     params.Metrics,
		cleanerName: cleanerName,
		location:    location,
		logger:      params.Logger,
		now:         time.Now,
	}, nil
}

func (srv *bookingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// bookingFields is a validated booking input.
type bookingFields struct {
	scheduledTime time.Time
	addressID     uuid.UUID
	serviceType   entity.ServiceType
	notes         *string
}

// CreateBooking books a cleaning at one of the caller's addresses.
func (srv *bookingService) CreateBooking(ctx context.Context, userID string, input *usecase.BookingInput) (*entity.CleaningSession, error) {
	fields, err := srv.parseBooking(input)
	if err != nil {
		return nil, err
	}

	now := srv.now()
	session := &entity.CleaningSession{
		ID:            uuid.New(),
		UserID:        userID,
		AddressID:     &fields.addressID,
		CleanerName:   srv.cleanerName,
		ServiceType:   fields.serviceType,
		ScheduledTime: fields.scheduledTime,
		Status:        entity.SessionStatusScheduled,
		Notes:         fields.notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		address, err := findOwnedAddress(ctx, repoFactory, userID, fields.addressID)
		if err != nil {
			return err
		}
		session.AddressName = &address.Name

		if err := repoFactory.NewSessionRepository().CreateSession(ctx, session); err != nil {
			return errors.Wrap(err, "failed to create session")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create booking")
	}

	srv.log(ctx).Info("Booking created",
		slog.String("session_id", session.ID.String()),
		slog.Time("scheduled_time", session.ScheduledTime),
	)
	srv.publish(ctx, service.BookingCreated, session)

	return session, nil
}

// ListBookings returns the caller's sessions with resolved address labels.
func (srv *bookingService) ListBookings(ctx context.Context, userID string) ([]*entity.CleaningSession, error) {
	var sessions []*entity.CleaningSession

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewSessionRepository().FindSessionsByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find sessions")
		}
		sessions = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings")
	}

	return sessions, nil
}

// UpdateBooking re-sets the calendar selection of a scheduled session owned by the caller.
func (srv *bookingService) UpdateBooking(ctx context.Context, userID string, id uuid.UUID, input *usecase.BookingInput) (*entity.CleaningSession, error) {
	if id == uuid.Nil {
		return nil, domainerrors.ErrBookingIDMissing
	}

	fields, err := srv.parseBooking(input)
	if err != nil {
		return nil, err
	}

	var session *entity.CleaningSession

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.NewSessionRepository()

		found, err := findSession(ctx, sessionRepo, id)
		if err != nil {
			return err
		}
		// Updates use the compound id + owner predicate, so foreign bookings look missing
		if !found.IsOwnedBy(userID) {
			return domainerrors.ErrSessionNotFound
		}
		if !found.IsEditable() {
			return domainerrors.ErrSessionNotEditable
		}

		address, err := findOwnedAddress(ctx, repoFactory, userID, fields.addressID)
		if err != nil {
			return err
		}

		found.AddressID = &fields.addressID
		found.AddressName = &address.Name
		found.ServiceType = fields.serviceType
		found.ScheduledTime = fields.scheduledTime
		found.Notes = fields.notes
		found.UpdatedAt = srv.now()

		if err := sessionRepo.UpdateBooking(ctx, found); err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				return domainerrors.ErrSessionNotFound
			}

			return errors.Wrap(err, "failed to update booking")
		}
		session = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update booking")
	}

	srv.log(ctx).Info("Booking updated", slog.String("session_id", session.ID.String()))
	srv.publish(ctx, service.BookingUpdated, session)

	return session, nil
}

// CancelBooking deletes a scheduled session. Unlike updates, a foreign booking is reported as forbidden.
func (srv *bookingService) CancelBooking(ctx context.Context, userID string, id uuid.UUID) error {
	if id == uuid.Nil {
		return domainerrors.ErrBookingIDMissing
	}

	var session *entity.CleaningSession

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.NewSessionRepository()

		found, err := findSession(ctx, sessionRepo, id)
		if err != nil {
			return err
		}
		if !found.IsOwnedBy(userID) {
			return domainerrors.ErrSessionForbidden
		}
		if !found.Status.CanTransitionTo(entity.SessionStatusCancelled) {
			return domainerrors.ErrInvalidStatusTransition
		}

		if err := sessionRepo.DeleteSession(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete session")
		}
		session = found

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to cancel booking")
	}

	srv.log(ctx).Info("Booking cancelled", slog.String("session_id", id.String()))
	srv.publish(ctx, service.BookingCancelled, session)

	return nil
}

// ReviewSession stores the caller's rating of a completed session.
func (srv *bookingService) ReviewSession(ctx context.Context, userID string, id uuid.UUID, input *usecase.ReviewInput) (*entity.CleaningSession, error) {
	if id == uuid.Nil {
		return nil, domainerrors.ErrBookingIDMissing
	}

	var feedback *string
	if input.Feedback != nil {
		if text := srv.sanitizer.Sanitize(*input.Feedback); text != "" {
			feedback = &text
		}
	}

	var session *entity.CleaningSession

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.NewSessionRepository()

		found, err := findSession(ctx, sessionRepo, id)
		if err != nil {
			return err
		}
		if !found.IsOwnedBy(userID) {
			return domainerrors.ErrSessionNotFound
		}

		if err := found.Review(input.Rating, feedback, srv.now()); err != nil {
			switch {
			case errors.Is(err, entity.ErrSessionNotReviewable):
				return domainerrors.ErrSessionNotReviewable
			case errors.Is(err, entity.ErrRatingOutOfRange):
				return domainerrors.ErrInvalidRating
			default:
				return errors.Wrap(err, "failed to review session")
			}
		}

		if err := sessionRepo.UpdateSession(ctx, found); err != nil {
			return errors.Wrap(err, "failed to save review")
		}
		session = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to review session")
	}

	return session, nil
}

// ShareQRCode renders a QR code for the watch page of a session owned by the caller.
func (srv *bookingService) ShareQRCode(ctx context.Context, userID string, id uuid.UUID) ([]byte, error) {
	if id == uuid.Nil {
		return nil, domainerrors.ErrBookingIDMissing
	}

	var watchID string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findSession(ctx, repoFactory.NewSessionRepository(), id)
		if err != nil {
			return err
		}
		if !found.IsOwnedBy(userID) {
			return domainerrors.ErrSessionNotFound
		}
		watchID = found.WatchID()

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session for sharing")
	}

	png, err := srv.qrService.GenerateShareQR(watchID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share QR code")
	}

	return png, nil
}

func (srv *bookingService) parseBooking(input *usecase.BookingInput) (*bookingFields, error) {
	date := strings.TrimSpace(input.Date)
	clock := strings.TrimSpace(input.Time)
	if date == "" || clock == "" || input.AddressID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed
	}

	// Naive local time: the selection is interpreted in the configured booking zone
	scheduled, err := time.ParseInLocation(scheduleLayout, date+"T"+clock+":00", srv.location)
	if err != nil {
		return nil, domainerrors.ErrInvalidSchedule
	}

	serviceType := entity.DefaultServiceType
	if input.ServiceType != "" {
		serviceType = entity.ServiceType(input.ServiceType)
		if !serviceType.IsValid() {
			return nil, domainerrors.ErrInvalidServiceType
		}
	}

	var notes *string
	if input.Notes != nil {
		if text := srv.sanitizer.Sanitize(*input.Notes); text != "" {
			notes = &text
		}
	}

	return &bookingFields{
		scheduledTime: scheduled,
		addressID:     input.AddressID,
		serviceType:   serviceType,
		notes:         notes,
	}, nil
}

// publish announces a booking change. Delivery failures are logged and never undo the committed change.
func (srv *bookingService) publish(ctx context.Context, eventType service.BookingEventType, session *entity.CleaningSession) {
	srv.metrics.RecordBookingEvent(string(eventType))

	event := &service.BookingEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		Type:          eventType,
		SessionID:     session.ID.String(),
		UserID:        session.UserID,
		ServiceType:   session.ServiceType.String(),
		ScheduledTime: session.ScheduledTime,
		OccurredAt:    srv.now(),
	}
	if session.AddressID != nil {
		event.AddressID = session.AddressID.String()
	}

	if err := srv.publisher.PublishBookingEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish booking event",
			slog.String("type", string(eventType)),
			slog.String("session_id", event.SessionID),
			slog.Any("error", err),
		)
	}
}

func findSession(ctx context.Context, sessionRepo repository.SessionRepository, id uuid.UUID) (*entity.CleaningSession, error) {
	session, err := sessionRepo.FindSessionByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, domainerrors.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	return session, nil
}

func findOwnedAddress(ctx context.Context, repoFactory repository.RepositoryFactory, userID string, id uuid.UUID) (*entity.Address, error) {
	address, err := repoFactory.NewAddressRepository().FindAddressByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address")
	}

	return address, nil
}
