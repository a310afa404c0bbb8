package impl

import (
	"context"
	"testing"
	"time"

	"cleanrecord/config"
	"cleanrecord/internal/domain/entity"
	domainerrors "cleanrecord/internal/domain/errors"
	"cleanrecord/internal/domain/repository"
	"cleanrecord/internal/domain/service"
	"cleanrecord/internal/errors"
	"cleanrecord/internal/infra/sanitize"
	mockRepo "cleanrecord/internal/mocks/repository"
	mockSvc "cleanrecord/internal/mocks/service"
	"cleanrecord/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bookingServiceFixtures struct {
	service   *bookingService
	txManager *mockRepo.MockTransactionManager
	publisher *mockSvc.MockEventPublisher
	qrService *mockSvc.MockQRCodeService
	metrics   *mockSvc.MockMetricsRecorder
}

func createTestBookingService(t *testing.T) bookingServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)

	uc, err := NewBookingService(BookingServiceParams{
		TxManager: txManager,
		Publisher: publisher,
		QRService: qrService,
		Sanitizer: sanitize.NewContentSanitizer(),
		Metrics:   metrics,
		Config: &config.Config{
			Booking: &config.BookingConfig{CleanerName: "Zespół CleanRecord"},
		},
		Logger: testLogger(),
	})
	require.NoError(t, err)

	svc := uc.(*bookingService)
	svc.now = fixedClock

	return bookingServiceFixtures{
		service:   svc,
		txManager: txManager,
		publisher: publisher,
		qrService: qrService,
		metrics:   metrics,
	}
}

func (f bookingServiceFixtures) expectPublish(eventType service.BookingEventType) {
	f.metrics.EXPECT().RecordBookingEvent(string(eventType)).Return().Once()
	f.publisher.EXPECT().
		PublishBookingEvent(mock.Anything, mock.MatchedBy(func(e *service.BookingEvent) bool {
			return e.Type == eventType
		})).
		Return(nil).
		Once()
}

func scheduledSession(userID string) *entity.CleaningSession {
	addressID := uuid.New()

	return &entity.CleaningSession{
		ID:            uuid.New(),
		UserID:        userID,
		AddressID:     &addressID,
		CleanerName:   "Zespół CleanRecord",
		ServiceType:   entity.ServiceTypeStandard,
		ScheduledTime: time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
		Status:        entity.SessionStatusScheduled,
	}
}

func TestBookingService_CreateBooking_NaiveLocalTime(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	addressID := uuid.New()
	address := &entity.Address{ID: addressID, UserID: testUserID, Name: "Dom"}

	var stored *entity.CleaningSession
	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		addressRepo := mockRepo.NewMockAddressRepository(t)
		sessionRepo := mockRepo.NewMockSessionRepository(t)
		factory.EXPECT().NewAddressRepository().Return(addressRepo)
		factory.EXPECT().NewSessionRepository().Return(sessionRepo)
		addressRepo.EXPECT().FindAddressByID(ctx, testUserID, addressID).Return(address, nil)
		sessionRepo.EXPECT().CreateSession(ctx, mock.AnythingOfType("*entity.CleaningSession")).
			Run(func(_ context.Context, s *entity.CleaningSession) { stored = s }).
			Return(nil)
	})
	fx.expectPublish(service.BookingCreated)

	session, err := fx.service.CreateBooking(ctx, testUserID, &usecase.BookingInput{
		Date:      "2025-03-10",
		Time:      "10:00",
		AddressID: addressID,
	})

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, session, stored)
	assert.True(t, session.ScheduledTime.Equal(time.Date(2025, 3, 10, 10, 0, 0, 0, time.Local)))
	assert.Equal(t, entity.SessionStatusScheduled, session.Status)
	assert.Equal(t, entity.ServiceTypeStandard, session.ServiceType)
	assert.Equal(t, "Zespół CleanRecord", session.CleanerName)
	assert.Equal(t, testUserID, session.UserID)
	assert.Equal(t, "Dom", *session.AddressName)
}

func TestBookingService_CreateBooking_ConfiguredLocation(t *testing.T) {
	fx := createTestBookingService(t)
	warsaw := time.FixedZone("CET", 60*60)
	fx.service.location = warsaw

	fields, err := fx.service.parseBooking(&usecase.BookingInput{
		Date:        "2025-03-10",
		Time:        "10:00",
		AddressID:   uuid.New(),
		ServiceType: "deep",
		Notes:       ptr("  klucze u sąsiada "),
	})

	require.NoError(t, err)
	assert.True(t, fields.scheduledTime.Equal(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)))
	assert.Equal(t, entity.ServiceTypeDeep, fields.serviceType)
	assert.Equal(t, "klucze u sąsiada", *fields.notes)
}

func TestBookingService_CreateBooking_Validation(t *testing.T) {
	addressID := uuid.New()
	tests := map[string]struct {
		input *usecase.BookingInput
		want  error
	}{
		"missing date":    {input: &usecase.BookingInput{Time: "10:00", AddressID: addressID}, want: domainerrors.ErrValidationFailed},
		"missing time":    {input: &usecase.BookingInput{Date: "2025-03-10", AddressID: addressID}, want: domainerrors.ErrValidationFailed},
		"missing address": {input: &usecase.BookingInput{Date: "2025-03-10", Time: "10:00"}, want: domainerrors.ErrValidationFailed},
		"bad date":        {input: &usecase.BookingInput{Date: "10.03.2025", Time: "10:00", AddressID: addressID}, want: domainerrors.ErrInvalidSchedule},
		"bad time":        {input: &usecase.BookingInput{Date: "2025-03-10", Time: "25:00", AddressID: addressID}, want: domainerrors.ErrInvalidSchedule},
		"bad service":     {input: &usecase.BookingInput{Date: "2025-03-10", Time: "10:00", AddressID: addressID, ServiceType: "laundry"}, want: domainerrors.ErrInvalidServiceType},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			fx := createTestBookingService(t)

			_, err := fx.service.CreateBooking(context.Background(), testUserID, tt.input)

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBookingService_CreateBooking_ForeignAddress(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	addressID := uuid.New()

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		addressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewAddressRepository().Return(addressRepo)
		addressRepo.EXPECT().FindAddressByID(ctx, testUserID, addressID).Return(nil, repository.ErrAddressNotFound)
	})

	_, err := fx.service.CreateBooking(ctx, testUserID, &usecase.BookingInput{
		Date:      "2025-03-10",
		Time:      "10:00",
		AddressID: addressID,
	})

	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}

func TestBookingService_CreateBooking_PublishFailureKeepsBooking(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	addressID := uuid.New()

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		addressRepo := mockRepo.NewMockAddressRepository(t)
		sessionRepo := mockRepo.NewMockSessionRepository(t)
		factory.EXPECT().NewAddressRepository().Return(addressRepo)
		factory.EXPECT().NewSessionRepository().Return(sessionRepo)
		addressRepo.EXPECT().FindAddressByID(ctx, testUserID, addressID).Return(&entity.Address{ID: addressID, Name: "Dom"}, nil)
		sessionRepo.EXPECT().CreateSession(ctx, mock.Anything).Return(nil)
	})
	fx.metrics.EXPECT().RecordBookingEvent(string(service.BookingCreated)).Return()
	fx.publisher.EXPECT().PublishBookingEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	session, err := fx.service.CreateBooking(ctx, testUserID, &usecase.BookingInput{
		Date:      "2025-03-10",
		Time:      "10:00",
		AddressID: addressID,
	})

	require.NoError(t, err)
	assert.NotNil(t, session)
}

func TestBookingService_UpdateBooking(t *testing.T) {
	t.Run("owner updates scheduled booking", func(t *testing.T) {
		fx := createTestBookingService(t)
		ctx := context.Background()
		session := scheduledSession(testUserID)
		newAddressID := uuid.New()

		onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			addressRepo := mockRepo.NewMockAddressRepository(t)
			sessionRepo := mockRepo.NewMockSessionRepository(t)
			factory.EXPECT().NewSessionRepository().Return(sessionRepo)
			factory.EXPECT().NewAddressRepository().Return(addressRepo)
			sessionRepo.EXPECT().FindSessionByID(ctx, session.ID).Return(session, nil)
			addressRepo.EXPECT().FindAddressByID(ctx, testUserID, newAddressID).Return(&entity.Address{ID: newAddressID, Name: "Biuro"}, nil)
			sessionRepo.EXPECT().UpdateBooking(ctx, session).Return(nil)
		})
		fx.expectPublish(service.BookingUpdated)

		updated, err := fx.service.UpdateBooking(ctx, testUserID, session.ID, &usecase.BookingInput{
			Date:        "2025-03-12",
			Time:        "14:00",
			AddressID:   newAddressID,
			ServiceType: "window",
		})

		require.NoError(t, err)
		assert.Equal(t, newAddressID, *updated.AddressID)
		assert.Equal(t, "Biuro", *updated.AddressName)
		assert.Equal(t, entity.ServiceTypeWindow, updated.ServiceType)
		assert.Equal(t, 14, updated.ScheduledTime.Hour())
	})

	t.Run("foreign booking looks missing", func(t *testing.T) {
		fx := createTestBookingService(t)
		ctx := context.Background()
		session := scheduledSession(otherUserID)

		onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			sessionRepo := mockRepo.NewMockSessionRepository(t)
			factory.EXPECT().NewSessionRepository().Return(sessionRepo)
			sessionRepo.EXPECT().FindSessionByID(ctx, session.ID).Return(session, nil)
		})

		_, err := fx.service.UpdateBooking(ctx, testUserID, session.ID, &usecase.BookingInput{
			Date: "2025-03-12", Time: "14:00", AddressID: uuid.New(),
		})

		assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
	})

	t.Run("completed session is not editable", func(t *testing.T) {
		fx := createTestBookingService(t)
		ctx := context.Background()
		session := scheduledSession(testUserID)
		session.Status = entity.SessionStatusCompleted

		onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			sessionRepo := mockRepo.NewMockSessionRepository(t)
			factory.EXPECT().NewSessionRepository().Return(sessionRepo)
			sessionRepo.EXPECT().FindSessionByID(ctx, session.ID).Return(session, nil)
		})

		_, err := fx.service.UpdateBooking(ctx, testUserID, session.ID, &usecase.BookingInput{
			Date: "2025-03-12", Time: "14:00", AddressID: uuid.New(),
		})

		assert.ErrorIs(t, err, domainerrors.ErrSessionNotEditable)
	})
}

func TestBookingService_CancelBooking(t *testing.T) {
	t.Run("owner cancels", func(t *testing.T) {
		fx := createTestBookingService(t)
		ctx := context.Background()
		session := scheduledSession(testUserID)

		onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			sessionRepo := mockRepo.NewMockSessionRepository(t)
			factory.EXPECT().NewSessionRepository().Return(sessionRepo)
			sessionRepo.EXPECT().FindSessionByID(ctx, session.ID).Return(session, nil)
			sessionRepo.EXPECT().DeleteSession(ctx, session.ID).Return(nil)
		})
		fx.expectPublish(service.BookingCancelled)

		require.NoError(t, fx.service.CancelBooking(ctx, testUserID, session.ID))
	})

	t.Run("absent booking", func(t *testing.T) {
		fx := createTestBookingService(t)
		ctx := context.Background()
		id := uuid.New()

		onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			sessionRepo := mockRepo.NewMockSessionRepository(t)
			factory.EXPECT().NewSessionRepository().Return(sessionRepo)
			sessionRepo.EXPECT().FindSessionByID(ctx, id).Return(nil, repository.ErrSessionNotFound)
		})

		assert.ErrorIs(t, fx.service.CancelBooking(ctx, testUserID, id), domainerrors.ErrSessionNotFound)
	})

	t.Run("foreign booking is forbidden and kept", func(t *testing.T) {
		fx := createTestBookingService(t)
		ctx := context.Background()
		session := scheduledSession(otherUserID)

		onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			sessionRepo := mockRepo.NewMockSessionRepository(t)
			factory.EXPECT().NewSessionRepository().Return(sessionRepo)
			sessionRepo.EXPECT().FindSessionByID(ctx, session.ID).Return(session, nil)
		})

		assert.ErrorIs(t, fx.service.CancelBooking(ctx, testUserID, session.ID), domainerrors.ErrSessionForbidden)
	})

	t.Run("live session cannot be cancelled", func(t *testing.T) {
		fx := createTestBookingService(t)
		ctx := context.Background()
		session := scheduledSession(testUserID)
		session.Status = entity.SessionStatusLive

		onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			sessionRepo := mockRepo.NewMockSessionRepository(t)
			factory.EXPECT().NewSessionRepository().Return(sessionRepo)
			sessionRepo.EXPECT().FindSessionByID(ctx, session.ID).Return(session, nil)
		})

		assert.ErrorIs(t, fx.service.CancelBooking(ctx, testUserID, session.ID), domainerrors.ErrInvalidStatusTransition)
	})

	t.Run("missing id", func(t *testing.T) {
		fx := createTestBookingService(t)

		assert.ErrorIs(t, fx.service.CancelBooking(context.Background(), testUserID, uuid.Nil), domainerrors.ErrBookingIDMissing)
	})
}

func TestBookingService_ReviewSession(t *testing.T) {
	t.Run("completed session", func(t *testing.T) {
		fx := createTestBookingService(t)
		ctx := context.Background()
		session := scheduledSession(testUserID)
		session.Status = entity.SessionStatusCompleted

		onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			sessionRepo := mockRepo.NewMockSessionRepository(t)
			factory.EXPECT().NewSessionRepository().Return(sessionRepo)
			sessionRepo.EXPECT().FindSessionByID(ctx, session.ID).Return(session, nil)
			sessionRepo.EXPECT().UpdateSession(ctx, session).Return(nil)
		})

		reviewed, err := fx.service.ReviewSession(ctx, testUserID, session.ID, &usecase.ReviewInput{
			Rating:   5,
			Feedback: ptr("Świetnie"),
		})

		require.NoError(t, err)
		assert.Equal(t, 5, *reviewed.Rating)
		assert.Equal(t, "Świetnie", *reviewed.CustomerFeedback)
	})

	t.Run("scheduled session", func(t *testing.T) {
		fx := createTestBookingService(t)
		ctx := context.Background()
		session := scheduledSession(testUserID)

		onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			sessionRepo := mockRepo.NewMockSessionRepository(t)
			factory.EXPECT().NewSessionRepository().Return(sessionRepo)
			sessionRepo.EXPECT().FindSessionByID(ctx, session.ID).Return(session, nil)
		})

		_, err := fx.service.ReviewSession(ctx, testUserID, session.ID, &usecase.ReviewInput{Rating: 4})

		assert.ErrorIs(t, err, domainerrors.ErrSessionNotReviewable)
	})

	t.Run("rating out of range", func(t *testing.T) {
		fx := createTestBookingService(t)
		ctx := context.Background()
		session := scheduledSession(testUserID)
		session.Status = entity.SessionStatusCompleted

		onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			sessionRepo := mockRepo.NewMockSessionRepository(t)
			factory.EXPECT().NewSessionRepository().Return(sessionRepo)
			sessionRepo.EXPECT().FindSessionByID(ctx, session.ID).Return(session, nil)
		})

		_, err := fx.service.ReviewSession(ctx, testUserID, session.ID, &usecase.ReviewInput{Rating: 6})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidRating)
	})
}

func TestBookingService_ShareQRCode(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	session := scheduledSession(testUserID)
	session.PlaybackID = ptr("playback-123")

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		sessionRepo := mockRepo.NewMockSessionRepository(t)
		factory.EXPECT().NewSessionRepository().Return(sessionRepo)
		sessionRepo.EXPECT().FindSessionByID(ctx, session.ID).Return(session, nil)
	})
	fx.qrService.EXPECT().GenerateShareQR("playback-123").Return([]byte("png"), nil)

	png, err := fx.service.ShareQRCode(ctx, testUserID, session.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestBookingService_ListBookings(t *testing.T) {
	fx := createTestBookingService(t)
	ctx := context.Background()
	sessions := []*entity.CleaningSession{scheduledSession(testUserID)}

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		sessionRepo := mockRepo.NewMockSessionRepository(t)
		factory.EXPECT().NewSessionRepository().Return(sessionRepo)
		sessionRepo.EXPECT().FindSessionsByUser(ctx, testUserID).Return(sessions, nil)
	})

	found, err := fx.service.ListBookings(ctx, testUserID)

	require.NoError(t, err)
	assert.Equal(t, sessions, found)
}
