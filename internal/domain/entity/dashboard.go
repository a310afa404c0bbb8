package entity

import (
	"slices"
	"strconv"
	"time"
)

// AverageRatingPlaceholder is shown when no session has been rated.
const AverageRatingPlaceholder = "-"

// DashboardStats is a summary of a customer's sessions.
type DashboardStats struct {
	CompletedCount int     `json:"completedCount"`
	TotalDuration  int     `json:"totalDuration"` // minutes
	AverageRating  float64 `json:"averageRating"` // 0 when nothing is rated
	UpcomingCount  int     `json:"upcomingCount"`
}

// ComputeDashboardStats aggregates the given sessions.
func ComputeDashboardStats(sessions []*CleaningSession) DashboardStats {
	var (
		stats       DashboardStats
		ratingSum   int
		ratingCount int
	)

	for _, s := range sessions {
		switch s.Status {
		case SessionStatusCompleted:
			stats.CompletedCount++
		case SessionStatusScheduled:
			stats.UpcomingCount++
		}
		if s.Duration != nil {
			stats.TotalDuration += *s.Duration
		}
		if s.Rating != nil {
			ratingSum += *s.Rating
			ratingCount++
		}
	}

	if ratingCount > 0 {
		stats.AverageRating = float64(ratingSum) / float64(ratingCount)
	}

	return stats
}

// AverageRatingLabel renders the average with one decimal, or the placeholder when unrated.
func (d DashboardStats) AverageRatingLabel() string {
	if d.AverageRating == 0 {
		return AverageRatingPlaceholder
	}

	return strconv.FormatFloat(d.AverageRating, 'f', 1, 64)
}

// NextBooking returns the scheduled session with the soonest time strictly after now.
func NextBooking(sessions []*CleaningSession, now time.Time) *CleaningSession {
	var next *CleaningSession
	for _, s := range sessions {
		if s.Status != SessionStatusScheduled || !s.ScheduledTime.After(now) {
			continue
		}
		if next == nil || s.ScheduledTime.Before(next.ScheduledTime) {
			next = s
		}
	}

	return next
}

// SessionHistory returns completed sessions plus scheduled sessions already in the past, newest first.
func SessionHistory(sessions []*CleaningSession, now time.Time) []*CleaningSession {
	history := make([]*CleaningSession, 0, len(sessions))
	for _, s := range sessions {
		switch {
		case s.Status == SessionStatusCompleted:
			history = append(history, s)
		case s.Status == SessionStatusScheduled && !s.ScheduledTime.After(now):
			history = append(history, s)
		}
	}

	slices.SortStableFunc(history, func(a, b *CleaningSession) int {
		return b.ScheduledTime.Compare(a.ScheduledTime)
	})

	return history
}

// SortForGallery orders sessions for the recordings gallery: live first, then newest.
// The input slice is not modified.
func SortForGallery(sessions []*CleaningSession) []*CleaningSession {
	sorted := slices.Clone(sessions)
	slices.SortStableFunc(sorted, func(a, b *CleaningSession) int {
		aLive := a.Status == SessionStatusLive
		bLive := b.Status == SessionStatusLive
		if aLive != bLive {
			if aLive {
				return -1
			}

			return 1
		}

		return galleryTime(b).Compare(galleryTime(a))
	})

	return sorted
}

func galleryTime(s *CleaningSession) time.Time {
	if s.StartTime != nil {
		return *s.StartTime
	}

	return s.ScheduledTime
}

// Dashboard is the full derived view returned to the portal.
type Dashboard struct {
	Stats       DashboardStats
	NextBooking *CleaningSession
	History     []*CleaningSession
	Gallery     []*CleaningSession
}

// BuildDashboard derives every dashboard section from the caller's sessions.
func BuildDashboard(sessions []*CleaningSession, now time.Time) Dashboard {
	return Dashboard{
		Stats:       ComputeDashboardStats(sessions),
		NextBooking: NextBooking(sessions, now),
		History:     SessionHistory(sessions, now),
		Gallery:     SortForGallery(sessions),
	}
}
