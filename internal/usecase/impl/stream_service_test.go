package impl

import (
	"context"
	"testing"

	"cleanrecord/internal/domain/entity"
	domainerrors "cleanrecord/internal/domain/errors"
	"cleanrecord/internal/domain/repository"
	mockRepo "cleanrecord/internal/mocks/repository"
	mockSvc "cleanrecord/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamService_GetLiveInputStatus(t *testing.T) {
	t.Run("owned live input", func(t *testing.T) {
		txManager := mockRepo.NewMockTransactionManager(t)
		statusClient := mockSvc.NewMockStreamStatusService(t)
		svc := NewStreamService(txManager, statusClient, testLogger())
		ctx := context.Background()
		viewers := 3

		onExecute(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
			sessionRepo := mockRepo.NewMockSessionRepository(t)
			factory.EXPECT().NewSessionRepository().Return(sessionRepo)
			sessionRepo.EXPECT().FindOwnedSessionByLiveInputID(ctx, testUserID, "li-1").
				Return(&entity.CleaningSession{ID: uuid.New(), UserID: testUserID}, nil)
		})
		statusClient.EXPECT().LiveInputStatus(ctx, "li-1").
			Return(entity.LiveInputStatus{Status: entity.LiveInputConnected, ViewerCount: &viewers})

		status, err := svc.GetLiveInputStatus(ctx, testUserID, "li-1")

		require.NoError(t, err)
		assert.Equal(t, entity.LiveInputConnected, status.Status)
		assert.Equal(t, 3, *status.ViewerCount)
	})

	t.Run("platform trouble is unknown", func(t *testing.T) {
		txManager := mockRepo.NewMockTransactionManager(t)
		statusClient := mockSvc.NewMockStreamStatusService(t)
		svc := NewStreamService(txManager, statusClient, testLogger())
		ctx := context.Background()

		onExecute(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
			sessionRepo := mockRepo.NewMockSessionRepository(t)
			factory.EXPECT().NewSessionRepository().Return(sessionRepo)
			sessionRepo.EXPECT().FindOwnedSessionByLiveInputID(ctx, testUserID, "li-1").
				Return(&entity.CleaningSession{ID: uuid.New(), UserID: testUserID}, nil)
		})
		statusClient.EXPECT().LiveInputStatus(ctx, "li-1").Return(entity.UnknownLiveInputStatus())

		status, err := svc.GetLiveInputStatus(ctx, testUserID, "li-1")

		require.NoError(t, err)
		assert.Equal(t, entity.LiveInputUnknown, status.Status)
		assert.Nil(t, status.ViewerCount)
	})

	t.Run("foreign live input never reaches the platform", func(t *testing.T) {
		txManager := mockRepo.NewMockTransactionManager(t)
		statusClient := mockSvc.NewMockStreamStatusService(t)
		svc := NewStreamService(txManager, statusClient, testLogger())
		ctx := context.Background()

		onExecute(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
			sessionRepo := mockRepo.NewMockSessionRepository(t)
			factory.EXPECT().NewSessionRepository().Return(sessionRepo)
			sessionRepo.EXPECT().FindOwnedSessionByLiveInputID(ctx, testUserID, "li-2").
				Return(nil, repository.ErrSessionNotFound)
		})

		_, err := svc.GetLiveInputStatus(ctx, testUserID, "li-2")

		assert.ErrorIs(t, err, domainerrors.ErrLiveInputNotFound)
	})

	t.Run("blank id", func(t *testing.T) {
		svc := NewStreamService(mockRepo.NewMockTransactionManager(t), mockSvc.NewMockStreamStatusService(t), testLogger())

		_, err := svc.GetLiveInputStatus(context.Background(), testUserID, "  ")

		assert.ErrorIs(t, err, domainerrors.ErrLiveInputNotFound)
	})
}
