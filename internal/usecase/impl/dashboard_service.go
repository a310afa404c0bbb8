package impl

import (
	"context"
	"log/slog"
	"time"

	"cleanrecord/internal/domain/entity"
	"cleanrecord/internal/domain/repository"
	"cleanrecord/internal/errors"
	"cleanrecord/internal/usecase"
)

type dashboardService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
	now       func() time.Time
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(txManager repository.TransactionManager, logger *slog.Logger) usecase.DashboardUsecase {
	return &dashboardService{
		txManager: txManager,
		logger:    logger,
		now:       time.Now,
	}
}

func (srv *dashboardService) GetDashboard(ctx context.Context, userID string) (*entity.Dashboard, error) {
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
		return nil, errors.Wrap(err, "failed to load dashboard")
	}

	dashboard := entity.BuildDashboard(sessions, srv.now())

	return &dashboard, nil
}
