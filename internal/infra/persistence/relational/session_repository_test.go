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

func newTestSession(userID string, addressID *uuid.UUID, scheduled time.Time) *entity.CleaningSession {
	return &entity.CleaningSession{
		ID:            uuid.New(),
		UserID:        userID,
		AddressID:     addressID,
		CleanerName:   "Zespół CleanRecord",
		ServiceType:   entity.DefaultServiceType,
		ScheduledTime: scheduled,
		Status:        entity.SessionStatusScheduled,
		CreatedAt:     scheduled,
		UpdatedAt:     scheduled,
	}
}

func TestSessionRepository_FindSessionsByUser_ResolvesAddressName(t *testing.T) {
	db := newTestDB(t)
	addresses := NewAddressRepository(db)
	sessions := NewSessionRepository(db)
	ctx := context.Background()

	home := newTestAddress("user-a", "Dom")
	office := newTestAddress("user-a", "Biuro")
	foreign := newTestAddress("user-b", "Obcy")
	require.NoError(t, addresses.CreateAddress(ctx, home))
	require.NoError(t, addresses.CreateAddress(ctx, office))
	require.NoError(t, addresses.CreateAddress(ctx, foreign))

	base := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	older := newTestSession("user-a", &home.ID, base)
	newer := newTestSession("user-a", &office.ID, base.Add(48*time.Hour))
	// References another user's address; the label must not leak.
	crossed := newTestSession("user-a", &foreign.ID, base.Add(24*time.Hour))
	other := newTestSession("user-b", &foreign.ID, base)
	for _, s := range []*entity.CleaningSession{older, newer, crossed, other} {
		require.NoError(t, sessions.CreateSession(ctx, s))
	}

	// Deleting the address leaves a dangling reference.
	require.NoError(t, addresses.DeleteAddress(ctx, "user-a", office.ID))

	found, err := sessions.FindSessionsByUser(ctx, "user-a")
	require.NoError(t, err)
	require.Len(t, found, 3)

	assert.Equal(t, newer.ID, found[0].ID)
	assert.Nil(t, found[0].AddressName)
	require.NotNil(t, found[0].AddressID)
	assert.Equal(t, office.ID, *found[0].AddressID)

	assert.Equal(t, crossed.ID, found[1].ID)
	assert.Nil(t, found[1].AddressName)

	assert.Equal(t, older.ID, found[2].ID)
	require.NotNil(t, found[2].AddressName)
	assert.Equal(t, "Dom", *found[2].AddressName)
	assert.True(t, base.Equal(found[2].ScheduledTime))
	assert.Equal(t, entity.SessionStatusScheduled, found[2].Status)
}

func TestSessionRepository_UpdateBooking_OwnerScoped(t *testing.T) {
	sessions := NewSessionRepository(newTestDB(t))
	ctx := context.Background()

	scheduled := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	session := newTestSession("user-a", nil, scheduled)
	require.NoError(t, sessions.CreateSession(ctx, session))

	notes := "Klucze u sąsiada"
	update := *session
	update.ServiceType = entity.ServiceTypeDeep
	update.ScheduledTime = scheduled.Add(2 * time.Hour)
	update.Notes = &notes

	hijack := update
	hijack.UserID = "user-b"
	assert.ErrorIs(t, sessions.UpdateBooking(ctx, &hijack), repository.ErrSessionNotFound)

	require.NoError(t, sessions.UpdateBooking(ctx, &update))

	stored, err := sessions.FindSessionByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ServiceTypeDeep, stored.ServiceType)
	assert.True(t, scheduled.Add(2*time.Hour).Equal(stored.ScheduledTime))
	require.NotNil(t, stored.Notes)
	assert.Equal(t, notes, *stored.Notes)
}

func TestSessionRepository_LifecycleAndDelete(t *testing.T) {
	sessions := NewSessionRepository(newTestDB(t))
	ctx := context.Background()

	scheduled := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	liveInput := "li-123"
	session := newTestSession("user-a", nil, scheduled)
	session.LiveInputID = &liveInput
	require.NoError(t, sessions.CreateSession(ctx, session))

	found, err := sessions.FindSessionByLiveInputID(ctx, liveInput)
	require.NoError(t, err)
	assert.Equal(t, session.ID, found.ID)

	_, err = sessions.FindOwnedSessionByLiveInputID(ctx, "user-b", liveInput)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)

	require.NoError(t, found.TransitionTo(entity.SessionStatusLive, scheduled))
	require.NoError(t, sessions.UpdateSession(ctx, found))
	require.NoError(t, found.TransitionTo(entity.SessionStatusCompleted, scheduled.Add(90*time.Minute)))
	require.NoError(t, sessions.UpdateSession(ctx, found))

	stored, err := sessions.FindOwnedSessionByLiveInputID(ctx, "user-a", liveInput)
	require.NoError(t, err)
	assert.Equal(t, entity.SessionStatusCompleted, stored.Status)
	require.NotNil(t, stored.Duration)
	assert.Equal(t, 90, *stored.Duration)

	require.NoError(t, sessions.DeleteSession(ctx, session.ID))
	_, err = sessions.FindSessionByID(ctx, session.ID)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
	assert.ErrorIs(t, sessions.DeleteSession(ctx, session.ID), repository.ErrSessionNotFound)
}
