package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestComputeDashboardStats(t *testing.T) {
	sessions := []*CleaningSession{
		{Status: SessionStatusCompleted, Duration: intPtr(120), Rating: intPtr(5)},
		{Status: SessionStatusCompleted, Duration: intPtr(90), Rating: intPtr(3)},
		{Status: SessionStatusCompleted, Rating: intPtr(4)},
		{Status: SessionStatusScheduled},
		{Status: SessionStatusScheduled},
		{Status: SessionStatusCancelled, Duration: intPtr(15)},
	}

	stats := ComputeDashboardStats(sessions)

	assert.Equal(t, 3, stats.CompletedCount)
	assert.Equal(t, 225, stats.TotalDuration)
	assert.InDelta(t, 4.0, stats.AverageRating, 1e-9)
	assert.Equal(t, 2, stats.UpcomingCount)
	assert.Equal(t, "4.0", stats.AverageRatingLabel())
}

func TestComputeDashboardStats_NoRatings(t *testing.T) {
	for name, sessions := range map[string][]*CleaningSession{
		"empty":   nil,
		"unrated": {{Status: SessionStatusCompleted}, {Status: SessionStatusScheduled}},
	} {
		t.Run(name, func(t *testing.T) {
			stats := ComputeDashboardStats(sessions)
			assert.Zero(t, stats.AverageRating)
			assert.Equal(t, AverageRatingPlaceholder, stats.AverageRatingLabel())
		})
	}
}

func TestNextBooking(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	past := &CleaningSession{Status: SessionStatusScheduled, ScheduledTime: now.Add(-time.Hour)}
	atNow := &CleaningSession{Status: SessionStatusScheduled, ScheduledTime: now}
	soon := &CleaningSession{Status: SessionStatusScheduled, ScheduledTime: now.Add(2 * time.Hour)}
	later := &CleaningSession{Status: SessionStatusScheduled, ScheduledTime: now.Add(48 * time.Hour)}
	cancelled := &CleaningSession{Status: SessionStatusCancelled, ScheduledTime: now.Add(time.Hour)}

	next := NextBooking([]*CleaningSession{later, past, cancelled, atNow, soon}, now)

	require.NotNil(t, next)
	assert.Same(t, soon, next)
	assert.Nil(t, NextBooking([]*CleaningSession{past, atNow}, now))
}

func TestSessionHistory(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	oldCompleted := &CleaningSession{Status: SessionStatusCompleted, ScheduledTime: now.Add(-72 * time.Hour)}
	missed := &CleaningSession{Status: SessionStatusScheduled, ScheduledTime: now.Add(-24 * time.Hour)}
	upcoming := &CleaningSession{Status: SessionStatusScheduled, ScheduledTime: now.Add(24 * time.Hour)}
	live := &CleaningSession{Status: SessionStatusLive, ScheduledTime: now.Add(-time.Hour)}

	history := SessionHistory([]*CleaningSession{oldCompleted, upcoming, missed, live}, now)

	assert.Equal(t, []*CleaningSession{missed, oldCompleted}, history)
}

func TestSortForGallery(t *testing.T) {
	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	started := base.Add(5 * time.Hour)
	older := &CleaningSession{Status: SessionStatusCompleted, ScheduledTime: base.Add(-48 * time.Hour)}
	newer := &CleaningSession{Status: SessionStatusCompleted, ScheduledTime: base, StartTime: &started}
	live := &CleaningSession{Status: SessionStatusLive, ScheduledTime: base.Add(-96 * time.Hour)}
	input := []*CleaningSession{older, newer, live}

	sorted := SortForGallery(input)

	assert.Equal(t, []*CleaningSession{live, newer, older}, sorted)
	assert.Equal(t, []*CleaningSession{older, newer, live}, input)
}
