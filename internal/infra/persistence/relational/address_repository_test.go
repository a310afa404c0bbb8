package relational

import (
	"context"
	"testing"
	"time"

	"cleanrecord/internal/domain/entity"
	domainerrors "cleanrecord/internal/domain/errors"
	"cleanrecord/internal/domain/repository"
	"cleanrecord/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAddress(userID, name string) *entity.Address {
	now := time.Now().UTC().Truncate(time.Second)

	return &entity.Address{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       name,
		Street:     "ul. Testowa 1",
		PostalCode: "00-001",
		City:       "Warszawa",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestAddressRepository_OwnerScoping(t *testing.T) {
	repo := NewAddressRepository(newTestDB(t))
	ctx := context.Background()

	address := newTestAddress("user-a", "Dom")
	require.NoError(t, repo.CreateAddress(ctx, address))

	addressesA, err := repo.FindAddressesByUser(ctx, "user-a")
	require.NoError(t, err)
	require.Len(t, addressesA, 1)
	assert.Equal(t, address.ID, addressesA[0].ID)
	assert.Equal(t, "Dom", addressesA[0].Name)
	assert.Equal(t, "ul. Testowa 1", addressesA[0].Street)
	assert.Equal(t, "00-001", addressesA[0].PostalCode)
	assert.Equal(t, "Warszawa", addressesA[0].City)
	assert.Equal(t, "user-a", addressesA[0].UserID)

	addressesB, err := repo.FindAddressesByUser(ctx, "user-b")
	require.NoError(t, err)
	assert.Empty(t, addressesB)

	_, err = repo.FindAddressByID(ctx, "user-b", address.ID)
	assert.ErrorIs(t, err, repository.ErrAddressNotFound)
}

func TestAddressRepository_UpdateAndDelete_NonOwnerLeavesRowUnchanged(t *testing.T) {
	repo := NewAddressRepository(newTestDB(t))
	ctx := context.Background()

	address := newTestAddress("user-a", "Dom")
	require.NoError(t, repo.CreateAddress(ctx, address))

	hijack := *address
	hijack.UserID = "user-b"
	hijack.Name = "Przejęte"
	assert.ErrorIs(t, repo.UpdateAddress(ctx, &hijack), repository.ErrAddressNotFound)
	assert.ErrorIs(t, repo.DeleteAddress(ctx, "user-b", address.ID), repository.ErrAddressNotFound)

	stored, err := repo.FindAddressByID(ctx, "user-a", address.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dom", stored.Name)
}

func TestAddressRepository_UpdateAndDelete_Owner(t *testing.T) {
	repo := NewAddressRepository(newTestDB(t))
	ctx := context.Background()

	address := newTestAddress("user-a", "Dom")
	require.NoError(t, repo.CreateAddress(ctx, address))

	address.Name = "Biuro"
	address.City = "Kraków"
	address.UpdatedAt = address.UpdatedAt.Add(time.Minute)
	require.NoError(t, repo.UpdateAddress(ctx, address))

	stored, err := repo.FindAddressByID(ctx, "user-a", address.ID)
	require.NoError(t, err)
	assert.Equal(t, "Biuro", stored.Name)
	assert.Equal(t, "Kraków", stored.City)

	require.NoError(t, repo.DeleteAddress(ctx, "user-a", address.ID))
	assert.ErrorIs(t, repo.DeleteAddress(ctx, "user-a", address.ID), repository.ErrAddressNotFound)
}

func TestAddressRepository_CreateAddress_NameTooLong(t *testing.T) {
	repo := NewAddressRepository(newTestDB(t))

	err := repo.CreateAddress(context.Background(), newTestAddress("user-a", "Mieszkanie rodziców"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNameTooLong))
}
