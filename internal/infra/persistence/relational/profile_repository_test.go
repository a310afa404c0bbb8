package relational

import (
	"context"
	"testing"
	"time"

	"cleanrecord/internal/domain/entity"
	"cleanrecord/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepository_CreateFindUpdate(t *testing.T) {
	repo := NewProfileRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.FindProfileByUserID(ctx, "user-a")
	require.ErrorIs(t, err, repository.ErrProfileNotFound)

	now := time.Now().UTC().Truncate(time.Second)
	profile := &entity.UserProfile{
		ID:        uuid.New(),
		UserID:    "user-a",
		FirstName: "Anna",
		LastName:  "Nowak",
		Email:     "anna@example.com",
		Language:  entity.DefaultLanguage,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.CreateProfile(ctx, profile))

	stored, err := repo.FindProfileByUserID(ctx, "user-a")
	require.NoError(t, err)
	assert.Equal(t, profile.ID, stored.ID)
	assert.Equal(t, int64(0), stored.Balance)
	assert.Nil(t, stored.Phone)

	phone := "+48 600 000 000"
	stored.FirstName = "Anna Maria"
	stored.Phone = &phone
	stored.Language = "en"
	require.NoError(t, repo.UpdateProfile(ctx, stored))

	updated, err := repo.FindProfileByUserID(ctx, "user-a")
	require.NoError(t, err)
	assert.Equal(t, "Anna Maria", updated.FirstName)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, phone, *updated.Phone)
	assert.Equal(t, "en", updated.Language)
}

func TestProfileRepository_CreateProfile_Duplicate(t *testing.T) {
	repo := NewProfileRepository(newTestDB(t))
	ctx := context.Background()

	newProfile := func() *entity.UserProfile {
		return &entity.UserProfile{
			ID:        uuid.New(),
			UserID:    "user-a",
			FirstName: "Anna",
			LastName:  "Nowak",
			Email:     "anna@example.com",
			Language:  entity.DefaultLanguage,
		}
	}

	require.NoError(t, repo.CreateProfile(ctx, newProfile()))
	assert.ErrorIs(t, repo.CreateProfile(ctx, newProfile()), repository.ErrProfileAlreadyExists)
}

func TestProfileRepository_UpdateProfile_Missing(t *testing.T) {
	repo := NewProfileRepository(newTestDB(t))

	err := repo.UpdateProfile(context.Background(), &entity.UserProfile{UserID: "ghost", FirstName: "X", LastName: "Y", Email: "x@example.com"})

	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}
