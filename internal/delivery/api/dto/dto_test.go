package dto

import (
	"testing"
	"time"

	"cleanrecord/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewProfileResponse(t *testing.T) {
	assert.Nil(t, NewProfileResponse(nil))

	profile := &entity.UserProfile{ID: uuid.New(), FirstName: "Anna", Balance: 1250, Language: "pl"}
	resp := NewProfileResponse(profile)

	assert.Equal(t, profile.ID.String(), resp.ID)
	assert.Equal(t, int64(1250), resp.Balance)
	assert.Equal(t, "12.50", resp.BalanceFormatted)
}

func TestSessionResponse_RoundTripsForDerivations(t *testing.T) {
	addressID := uuid.New()
	rating := 5
	session := &entity.CleaningSession{
		ID:            uuid.New(),
		UserID:        "google-oauth2|alice",
		AddressID:     &addressID,
		ServiceType:   entity.ServiceTypeDeep,
		Status:        entity.SessionStatusCompleted,
		ScheduledTime: time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
		Rating:        &rating,
	}

	resp := NewSessionResponse(session)
	assert.Equal(t, addressID.String(), *resp.AddressID)
	assert.Equal(t, "deep", resp.ServiceType)

	back := resp.ToEntity()
	assert.Equal(t, session.ID, back.ID)
	assert.Equal(t, session.Status, back.Status)
	assert.Equal(t, session.ScheduledTime, back.ScheduledTime)
	assert.Equal(t, 5, *back.Rating)
}

func TestNewDashboardResponse_EmptyListsAreNotNil(t *testing.T) {
	resp := NewDashboardResponse(&entity.Dashboard{})

	assert.NotNil(t, resp.History)
	assert.NotNil(t, resp.Gallery)
	assert.Nil(t, resp.NextBooking)
	assert.Equal(t, entity.AverageRatingPlaceholder, resp.Stats.AverageRatingLabel)
}
