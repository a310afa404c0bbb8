package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"cleanrecord/internal/domain/repository"
	mockRepo "cleanrecord/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

const (
	testUserID  = "google-oauth2|alice"
	otherUserID = "google-oauth2|bob"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock() time.Time {
	return fixedNow
}

// onExecute expects one transaction and runs fn against a fresh factory prepared by setup.
// The transaction returns whatever fn returns.
func onExecute(t *testing.T, txManager *mockRepo.MockTransactionManager, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}

func ptr[T any](v T) *T {
	return &v
}
