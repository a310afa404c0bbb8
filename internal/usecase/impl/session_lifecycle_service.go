package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	deliverycontext "cleanrecord/internal/delivery/context"
	"cleanrecord/internal/domain/entity"
	"cleanrecord/internal/domain/repository"
	"cleanrecord/internal/domain/service"
	"cleanrecord/internal/errors"
	"cleanrecord/internal/usecase"

	"github.com/google/uuid"
)

// Outcomes recorded for every handled stream event
const (
	streamEventApplied = "applied"
	streamEventIgnored = "ignored"
	streamEventFailed  = "failed"
)

const (
	liveNotificationTitle      = "Transmisja na żywo"
	liveNotificationBody       = "Sprzątanie właśnie się rozpoczęło. Możesz oglądać na żywo."
	recordingNotificationTitle = "Nagranie gotowe"
	recordingNotificationBody  = "Sprzątanie zakończone. Nagranie jest już dostępne."
)

type sessionLifecycleService struct {
	txManager     repository.TransactionManager
	notifications service.NotificationService
	metrics       service.MetricsRecorder
	logger        *slog.Logger
	now           func() time.Time
}

// NewSessionLifecycleService is the constructor for sessionLifecycleService.
func NewSessionLifecycleService(
	txManager repository.TransactionManager,
	notifications service.NotificationService,
	metrics service.MetricsRecorder,
	logger *slog.Logger,
) usecase.SessionLifecycleUsecase {
	return &sessionLifecycleService{
		txManager:     txManager,
		notifications: notifications,
		metrics:       metrics,
		logger:        logger,
		now:           time.Now,
	}
}

func (srv *sessionLifecycleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleStreamEvent moves the matching session through its status machine.
// Events that cannot be applied are logged and dropped; only store failures are returned so the caller can ask for redelivery.
func (srv *sessionLifecycleService) HandleStreamEvent(ctx context.Context, event *entity.StreamEvent) error {
	logger := srv.log(ctx).With(
		slog.String("event_type", string(event.Type)),
		slog.String("live_input_id", event.LiveInputID),
	)

	if !event.Type.IsValid() {
		logger.Warn("Ignoring stream event of unknown type")
		srv.metrics.RecordStreamEvent(string(event.Type), streamEventIgnored)

		return nil
	}

	if event.Type == entity.StreamEventDisconnected {
		logger.Info("Live input disconnected")
		srv.metrics.RecordStreamEvent(string(event.Type), streamEventApplied)

		return nil
	}

	occurredAt := event.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = srv.now()
	}

	var (
		session *entity.CleaningSession
		applied bool
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.NewSessionRepository()

		found, err := srv.findEventSession(ctx, sessionRepo, event)
		if err != nil {
			return err
		}
		if found == nil {
			logger.Warn("No session matches stream event")

			return nil
		}

		applied, err = applyStreamEvent(found, event, occurredAt)
		if err != nil {
			logger.Warn("Stream event rejected by session state",
				slog.String("session_id", found.ID.String()),
				slog.String("status", found.Status.String()),
				slog.Any("error", err),
			)

			return nil
		}

		if err := sessionRepo.UpdateSession(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update session")
		}
		session = found

		return nil
	})
	if err != nil {
		srv.metrics.RecordStreamEvent(string(event.Type), streamEventFailed)

		return errors.Wrap(err, "failed to handle stream event")
	}

	if session == nil {
		srv.metrics.RecordStreamEvent(string(event.Type), streamEventIgnored)

		return nil
	}

	srv.metrics.RecordStreamEvent(string(event.Type), streamEventApplied)
	logger.Info("Session updated from stream event",
		slog.String("session_id", session.ID.String()),
		slog.String("status", session.Status.String()),
	)

	if applied {
		srv.notifyOwner(ctx, session)
	}

	return nil
}

// findEventSession prefers the explicit session id and falls back to the live input. A nil session means no match.
func (srv *sessionLifecycleService) findEventSession(ctx context.Context, sessionRepo repository.SessionRepository, event *entity.StreamEvent) (*entity.CleaningSession, error) {
	var (
		session *entity.CleaningSession
		err     error
	)

	if event.SessionID != "" {
		id, parseErr := uuid.Parse(event.SessionID)
		if parseErr != nil {
			return nil, nil //nolint:nilnil // unparsable ids never match
		}
		session, err = sessionRepo.FindSessionByID(ctx, id)
	} else {
		session, err = sessionRepo.FindSessionByLiveInputID(ctx, event.LiveInputID)
	}

	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, nil //nolint:nilnil // a missing session is not a failure
		}

		return nil, errors.Wrap(err, "failed to find session")
	}

	return session, nil
}

// applyStreamEvent mutates the session. It reports whether the status changed.
func applyStreamEvent(session *entity.CleaningSession, event *entity.StreamEvent, at time.Time) (bool, error) {
	if event.LiveInputID != "" && session.LiveInputID == nil {
		liveInputID := event.LiveInputID
		session.LiveInputID = &liveInputID
	}

	switch event.Type {
	case entity.StreamEventConnected:
		if event.StreamID != "" {
			streamID := event.StreamID
			session.StreamID = &streamID
		}

		return true, session.TransitionTo(entity.SessionStatusLive, at)

	case entity.StreamEventRecordingReady:
		setRecordingFields(session, event)

		// A repeated recording event refreshes the video fields only
		if session.Status == entity.SessionStatusCompleted {
			session.UpdatedAt = at

			return false, nil
		}

		if event.DurationSeconds > 0 {
			minutes := int(math.Round(float64(event.DurationSeconds) / 60))
			session.Duration = &minutes
		}

		return true, session.TransitionTo(entity.SessionStatusCompleted, at)
	}

	return false, errors.Errorf("unsupported stream event %s", event.Type)
}

func setRecordingFields(session *entity.CleaningSession, event *entity.StreamEvent) {
	if event.StreamID != "" {
		streamID := event.StreamID
		session.StreamID = &streamID
	}
	if event.PlaybackID != "" {
		playbackID := event.PlaybackID
		session.PlaybackID = &playbackID
	}
	if event.RecordingURL != "" {
		recordingURL := event.RecordingURL
		session.RecordingURL = &recordingURL
	}
	if event.ThumbnailURL != "" {
		thumbnailURL := event.ThumbnailURL
		session.ThumbnailURL = &thumbnailURL
	}
}

func (srv *sessionLifecycleService) notifyOwner(ctx context.Context, session *entity.CleaningSession) {
	var title, body string
	switch session.Status {
	case entity.SessionStatusLive:
		title, body = liveNotificationTitle, liveNotificationBody
	case entity.SessionStatusCompleted:
		title, body = recordingNotificationTitle, recordingNotificationBody
	default:
		return
	}

	data := map[string]string{
		"session_id": session.ID.String(),
		"status":     session.Status.String(),
		"watch_id":   session.WatchID(),
	}

	if err := srv.notifications.SendUserNotification(ctx, session.UserID, title, body, data); err != nil {
		srv.log(ctx).Error("Failed to notify session owner",
			slog.String("session_id", session.ID.String()),
			slog.Any("error", err),
		)
	}
}
