package usecase

import (
	"context"

	"cleanrecord/internal/domain/entity"
)

// DashboardUsecase derives the customer dashboard from stored sessions.
type DashboardUsecase interface {
	GetDashboard(ctx context.Context, userID string) (*entity.Dashboard, error)
}
