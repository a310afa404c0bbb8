package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "cleanrecord/internal/delivery/context"
	"cleanrecord/internal/domain/entity"
	domainerrors "cleanrecord/internal/domain/errors"
	"cleanrecord/internal/domain/repository"
	"cleanrecord/internal/domain/service"
	"cleanrecord/internal/errors"
	"cleanrecord/internal/usecase"
)

type streamService struct {
	txManager    repository.TransactionManager
	statusClient service.StreamStatusService
	logger       *slog.Logger
}

// NewStreamService is the constructor for streamService.
func NewStreamService(
	txManager repository.TransactionManager,
	statusClient service.StreamStatusService,
	logger *slog.Logger,
) usecase.StreamUsecase {
	return &streamService{
		txManager:    txManager,
		statusClient: statusClient,
		logger:       logger,
	}
}

// GetLiveInputStatus checks ownership locally, then asks the platform. Platform failures surface as the unknown status.
func (srv *streamService) GetLiveInputStatus(ctx context.Context, userID, liveInputID string) (entity.LiveInputStatus, error) {
	liveInputID = strings.TrimSpace(liveInputID)
	if liveInputID == "" {
		return entity.LiveInputStatus{}, domainerrors.ErrLiveInputNotFound
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		_, err := repoFactory.NewSessionRepository().FindOwnedSessionByLiveInputID(ctx, userID, liveInputID)
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				return domainerrors.ErrLiveInputNotFound
			}

			return errors.Wrap(err, "failed to find session by live input")
		}

		return nil
	})
	if err != nil {
		return entity.LiveInputStatus{}, errors.Wrap(err, "failed to resolve live input")
	}

	status := srv.statusClient.LiveInputStatus(ctx, liveInputID)
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Live input status",
		slog.String("live_input_id", liveInputID),
		slog.String("status", string(status.Status)),
	)

	return status, nil
}
