package impl

import (
	"context"
	"testing"

	"cleanrecord/internal/domain/entity"
	domainerrors "cleanrecord/internal/domain/errors"
	"cleanrecord/internal/domain/repository"
	"cleanrecord/internal/errors"
	"cleanrecord/internal/infra/sanitize"
	mockRepo "cleanrecord/internal/mocks/repository"
	"cleanrecord/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type addressServiceFixtures struct {
	service   *addressService
	txManager *mockRepo.MockTransactionManager
}

func createTestAddressService(t *testing.T) addressServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := NewAddressService(txManager, sanitize.NewContentSanitizer(), testLogger()).(*addressService)
	svc.now = fixedClock

	return addressServiceFixtures{
		service:   svc,
		txManager: txManager,
	}
}

func validAddressInput() *usecase.AddressInput {
	return &usecase.AddressInput{
		Name:       "Dom",
		Street:     "ul. Prosta 1",
		PostalCode: "00-001",
		City:       "Warszawa",
	}
}

func TestAddressService_CreateAddress_OwnerFromCaller(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()

	var stored *entity.Address
	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		addressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewAddressRepository().Return(addressRepo)
		addressRepo.EXPECT().CreateAddress(ctx, mock.AnythingOfType("*entity.Address")).
			Run(func(_ context.Context, address *entity.Address) { stored = address }).
			Return(nil)
	})

	address, err := fx.service.CreateAddress(ctx, testUserID, validAddressInput())

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, testUserID, stored.UserID)
	assert.NotEqual(t, uuid.Nil, stored.ID)
	assert.Equal(t, fixedNow, stored.CreatedAt)
	assert.Equal(t, stored, address)
}

func TestAddressService_CreateAddress_SanitizesFields(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		addressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewAddressRepository().Return(addressRepo)
		addressRepo.EXPECT().CreateAddress(ctx, mock.Anything).Return(nil)
	})

	input := validAddressInput()
	input.Name = "  <b>Biuro</b> "

	address, err := fx.service.CreateAddress(ctx, testUserID, input)

	require.NoError(t, err)
	assert.Equal(t, "Biuro", address.Name)
}

func TestAddressService_CreateAddress_Validation(t *testing.T) {
	tests := map[string]struct {
		mutate func(input *usecase.AddressInput)
		want   error
	}{
		"missing name":       {mutate: func(in *usecase.AddressInput) { in.Name = "" }, want: domainerrors.ErrValidationFailed},
		"blank street":       {mutate: func(in *usecase.AddressInput) { in.Street = "   " }, want: domainerrors.ErrValidationFailed},
		"markup only city":   {mutate: func(in *usecase.AddressInput) { in.City = "<br>" }, want: domainerrors.ErrValidationFailed},
		"name of 17 letters": {mutate: func(in *usecase.AddressInput) { in.Name = "Mieszkanie rodzic" }, want: domainerrors.ErrAddressNameTooLong},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			fx := createTestAddressService(t)
			input := validAddressInput()
			tt.mutate(input)

			_, err := fx.service.CreateAddress(context.Background(), testUserID, input)

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAddressService_CreateAddress_NameOfSixteenRunes(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		addressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewAddressRepository().Return(addressRepo)
		addressRepo.EXPECT().CreateAddress(ctx, mock.Anything).Return(nil)
	})

	input := validAddressInput()
	input.Name = "Łódź Śródmieście"

	_, err := fx.service.CreateAddress(ctx, testUserID, input)

	require.NoError(t, err)
}

func TestAddressService_UpdateAddress_NotOwned(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()
	id := uuid.New()

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		addressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewAddressRepository().Return(addressRepo)
		addressRepo.EXPECT().UpdateAddress(ctx, mock.MatchedBy(func(a *entity.Address) bool {
			return a.ID == id && a.UserID == otherUserID
		})).Return(repository.ErrAddressNotFound)
	})

	_, err := fx.service.UpdateAddress(ctx, otherUserID, id, validAddressInput())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotFound))
}

func TestAddressService_UpdateAddress_Success(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()
	id := uuid.New()
	reloaded := &entity.Address{ID: id, UserID: testUserID, Name: "Dom"}

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		addressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewAddressRepository().Return(addressRepo)
		addressRepo.EXPECT().UpdateAddress(ctx, mock.MatchedBy(func(a *entity.Address) bool {
			return a.ID == id && a.UserID == testUserID && a.UpdatedAt.Equal(fixedNow)
		})).Return(nil)
		addressRepo.EXPECT().FindAddressByID(ctx, testUserID, id).Return(reloaded, nil)
	})

	address, err := fx.service.UpdateAddress(ctx, testUserID, id, validAddressInput())

	require.NoError(t, err)
	assert.Equal(t, reloaded, address)
}

func TestAddressService_DeleteAddress(t *testing.T) {
	t.Run("missing id", func(t *testing.T) {
		fx := createTestAddressService(t)

		err := fx.service.DeleteAddress(context.Background(), testUserID, uuid.Nil)

		assert.ErrorIs(t, err, domainerrors.ErrAddressIDMissing)
	})

	t.Run("not owned", func(t *testing.T) {
		fx := createTestAddressService(t)
		ctx := context.Background()
		id := uuid.New()

		onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			addressRepo := mockRepo.NewMockAddressRepository(t)
			factory.EXPECT().NewAddressRepository().Return(addressRepo)
			addressRepo.EXPECT().DeleteAddress(ctx, otherUserID, id).Return(repository.ErrAddressNotFound)
		})

		err := fx.service.DeleteAddress(ctx, otherUserID, id)

		assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
	})

	t.Run("store failure", func(t *testing.T) {
		fx := createTestAddressService(t)
		ctx := context.Background()
		id := uuid.New()

		onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			addressRepo := mockRepo.NewMockAddressRepository(t)
			factory.EXPECT().NewAddressRepository().Return(addressRepo)
			addressRepo.EXPECT().DeleteAddress(ctx, testUserID, id).Return(errors.New("disk I/O error"))
		})

		err := fx.service.DeleteAddress(ctx, testUserID, id)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to delete address")
	})
}

func TestAddressService_ListAddresses(t *testing.T) {
	fx := createTestAddressService(t)
	ctx := context.Background()
	addresses := []*entity.Address{{ID: uuid.New(), UserID: testUserID, Name: "Dom"}}

	onExecute(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		addressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().NewAddressRepository().Return(addressRepo)
		addressRepo.EXPECT().FindAddressesByUser(ctx, testUserID).Return(addresses, nil)
	})

	found, err := fx.service.ListAddresses(ctx, testUserID)

	require.NoError(t, err)
	assert.Equal(t, addresses, found)
}
