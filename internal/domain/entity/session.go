package entity

import (
	"time"

	"cleanrecord/internal/errors"

	"github.com/google/uuid"
)

// SessionStatus represents where a cleaning session is in its lifecycle.
type SessionStatus string

const (
	// SessionStatusScheduled is the initial status of a booked session.
	SessionStatusScheduled SessionStatus = "scheduled"
	// SessionStatusLive indicates the cleaner has started and video is streaming.
	SessionStatusLive SessionStatus = "live"
	// SessionStatusCompleted indicates the session finished.
	SessionStatusCompleted SessionStatus = "completed"
	// SessionStatusCancelled indicates the owner cancelled before the session started.
	SessionStatusCancelled SessionStatus = "cancelled"
)

// String returns the string representation of the SessionStatus.
func (s SessionStatus) String() string {
	return string(s)
}

// IsValid checks if the SessionStatus is a valid value.
func (s SessionStatus) IsValid() bool {
	switch s {
	case SessionStatusScheduled, SessionStatusLive, SessionStatusCompleted, SessionStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible.
func (s SessionStatus) IsTerminal() bool {
	return s == SessionStatusCompleted || s == SessionStatusCancelled
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s SessionStatus) CanTransitionTo(next SessionStatus) bool {
	switch s {
	case SessionStatusScheduled:
		return next == SessionStatusLive || next == SessionStatusCancelled
	case SessionStatusLive:
		return next == SessionStatusCompleted
	default:
		return false
	}
}

// ServiceType is the kind of cleaning that was booked.
type ServiceType string

const (
	ServiceTypeStandard       ServiceType = "standard"
	ServiceTypeDeep           ServiceType = "deep"
	ServiceTypeWindow         ServiceType = "window"
	ServiceTypeOffice         ServiceType = "office"
	ServiceTypePostRenovation ServiceType = "post_renovation"

	// DefaultServiceType is used when a booking does not name one.
	DefaultServiceType = ServiceTypeStandard
)

// String returns the string representation of the ServiceType.
func (t ServiceType) String() string {
	return string(t)
}

// IsValid checks if the ServiceType is a valid value.
func (t ServiceType) IsValid() bool {
	switch t {
	case ServiceTypeStandard, ServiceTypeDeep, ServiceTypeWindow, ServiceTypeOffice, ServiceTypePostRenovation:
		return true
	default:
		return false
	}
}

// Rating bounds for a completed session review.
const (
	MinRating = 1
	MaxRating = 5
)

var (
	// ErrInvalidStatusTransition is returned when a status change is not allowed.
	ErrInvalidStatusTransition = errors.New("invalid session status transition")
	// ErrSessionNotReviewable is returned when a review targets a session that has not completed.
	ErrSessionNotReviewable = errors.New("only completed sessions can be reviewed")
	// ErrRatingOutOfRange is returned for ratings outside MinRating..MaxRating.
	ErrRatingOutOfRange = errors.New("rating out of range")
)

// CleaningSession is one booked, live or finished cleaning appointment.
// Video fields are filled in by the streaming platform once the session runs.
type CleaningSession struct {
	ID               uuid.UUID     // The Global Unique Identifier (GUID) for the session.
	UserID           string        // The identity provider subject that booked the session.
	AddressID        *uuid.UUID    // Label-only reference to a saved address; may dangle after deletion.
	AddressName      *string       // Resolved address label; nil when the address no longer exists.
	StreamID         *string       // Recorded video id on the streaming platform.
	LiveInputID      *string       // Live input handle on the streaming platform.
	CleanerName      string        // Display name of the assigned cleaner.
	CleanerAvatar    *string       // Optional avatar URL of the cleaner.
	ServiceType      ServiceType   // The kind of cleaning booked.
	ScheduledTime    time.Time     // When the session is booked for.
	StartTime        *time.Time    // When the session went live.
	EndTime          *time.Time    // When the session finished.
	Duration         *int          // Duration in minutes.
	Status           SessionStatus // Lifecycle status.
	RecordingURL     *string       // URL of the finished recording.
	ThumbnailURL     *string       // URL of the recording thumbnail.
	PlaybackID       *string       // Embeddable playback identifier.
	Notes            *string       // Free-form notes entered at booking time.
	Rating           *int          // Customer rating 1..5.
	CustomerFeedback *string       // Customer feedback text.
	CreatedAt        time.Time     // Timestamp of when this session was created.
	UpdatedAt        time.Time     // Timestamp of the last modification.
}

// IsOwnedBy reports whether the session belongs to the given caller.
func (s *CleaningSession) IsOwnedBy(userID string) bool {
	return s.UserID == userID
}

// IsEditable reports whether the booking details may still change.
func (s *CleaningSession) IsEditable() bool {
	return s.Status == SessionStatusScheduled
}

// TransitionTo moves the session to next, stamping start or end times as needed.
func (s *CleaningSession) TransitionTo(next SessionStatus, at time.Time) error {
	if !s.Status.CanTransitionTo(next) {
		return errors.Wrapf(ErrInvalidStatusTransition, "%s -> %s", s.Status, next)
	}

	switch next {
	case SessionStatusLive:
		s.StartTime = &at
	case SessionStatusCompleted:
		s.EndTime = &at
		if s.Duration == nil && s.StartTime != nil {
			minutes := int(at.Sub(*s.StartTime).Round(time.Minute) / time.Minute)
			s.Duration = &minutes
		}
	}

	s.Status = next
	s.UpdatedAt = at

	return nil
}

// Review records the customer's rating and optional feedback.
func (s *CleaningSession) Review(rating int, feedback *string, at time.Time) error {
	if s.Status != SessionStatusCompleted {
		return ErrSessionNotReviewable
	}
	if rating < MinRating || rating > MaxRating {
		return ErrRatingOutOfRange
	}

	s.Rating = &rating
	s.CustomerFeedback = feedback
	s.UpdatedAt = at

	return nil
}

// WatchID returns the identifier used in share links, preferring the playback id.
func (s *CleaningSession) WatchID() string {
	if s.PlaybackID != nil && *s.PlaybackID != "" {
		return *s.PlaybackID
	}

	return s.ID.String()
}
