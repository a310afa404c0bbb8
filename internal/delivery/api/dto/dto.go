// Package dto defines the JSON bodies exchanged over the REST API.
// The terminal portal decodes the same types.
package dto

import (
	"time"

	"cleanrecord/internal/domain/entity"

	"github.com/google/uuid"
)

// Messages returned by mutating endpoints.
const (
	MessageAddressDeleted = "Address deleted successfully"
	MessageBookingCreated = "Rezerwacja została utworzona"
	MessageBookingDeleted = "Rezerwacja została anulowana"
)

// MessageResponse carries a single human readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// AddressRequest is the body of address create, update and delete calls. ID is ignored on create.
type AddressRequest struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name"`
	Street     string `json:"street"`
	PostalCode string `json:"postalCode"`
	City       string `json:"city"`
}

// AddressResponse is a saved address.
type AddressResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Street     string    `json:"street"`
	PostalCode string    `json:"postalCode"`
	City       string    `json:"city"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// NewAddressResponse maps an address entity.
func NewAddressResponse(address *entity.Address) *AddressResponse {
	return &AddressResponse{
		ID:         address.ID.String(),
		Name:       address.Name,
		Street:     address.Street,
		PostalCode: address.PostalCode,
		City:       address.City,
		CreatedAt:  address.CreatedAt,
		UpdatedAt:  address.UpdatedAt,
	}
}

// NewAddressResponses maps a list of addresses, never returning nil.
func NewAddressResponses(addresses []*entity.Address) []*AddressResponse {
	out := make([]*AddressResponse, 0, len(addresses))
	for _, address := range addresses {
		out = append(out, NewAddressResponse(address))
	}

	return out
}

// ProfileRequest is the body of the profile save call.
type ProfileRequest struct {
	FirstName string  `json:"firstName" validate:"required,max=100"`
	LastName  string  `json:"lastName" validate:"required,max=100"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=32"`
	Language  string  `json:"language,omitempty" validate:"omitempty,min=2,max=8"`
}

// ProfileResponse is the caller's profile. Balance is in minor units; BalanceFormatted in major units.
type ProfileResponse struct {
	ID               string    `json:"id"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Email            string    `json:"email"`
	Phone            *string   `json:"phone"`
	Language         string    `json:"language"`
	Balance          int64     `json:"balance"`
	BalanceFormatted string    `json:"balanceFormatted"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// NewProfileResponse maps a profile entity. A nil profile maps to nil.
func NewProfileResponse(profile *entity.UserProfile) *ProfileResponse {
	if profile == nil {
		return nil
	}

	return &ProfileResponse{
		ID:               profile.ID.String(),
		FirstName:        profile.FirstName,
		LastName:         profile.LastName,
		Email:            profile.Email,
		Phone:            profile.Phone,
		Language:         profile.Language,
		Balance:          profile.Balance,
		BalanceFormatted: profile.FormattedBalance(),
		CreatedAt:        profile.CreatedAt,
		UpdatedAt:        profile.UpdatedAt,
	}
}

// BookingRequest is a calendar selection: a naive local date and time plus the address to clean.
type BookingRequest struct {
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string  `json:"time" validate:"required,datetime=15:04"`
	AddressID   string  `json:"addressId" validate:"required,uuid"`
	ServiceType string  `json:"serviceType,omitempty" validate:"omitempty,oneof=standard deep window office post_renovation"`
	Notes       *string `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// BookingCreatedResponse acknowledges a new booking.
type BookingCreatedResponse struct {
	Success   bool   `json:"success"`
	BookingID string `json:"bookingId"`
	Message   string `json:"message"`
}

// ReviewRequest rates a completed session.
type ReviewRequest struct {
	Rating   int     `json:"rating" validate:"required,min=1,max=5"`
	Feedback *string `json:"feedback,omitempty" validate:"omitempty,max=2000"`
}

// SessionResponse is a cleaning session as shown in booking lists, history and the gallery.
type SessionResponse struct {
	ID               string     `json:"id"`
	AddressID        *string    `json:"addressId"`
	AddressName      *string    `json:"addressName"`
	StreamID         *string    `json:"streamId"`
	LiveInputID      *string    `json:"liveInputId"`
	CleanerName      string     `json:"cleanerName"`
	CleanerAvatar    *string    `json:"cleanerAvatar"`
	ServiceType      string     `json:"serviceType"`
	ScheduledTime    time.Time  `json:"scheduledTime"`
	StartTime        *time.Time `json:"startTime"`
	EndTime          *time.Time `json:"endTime"`
	Duration         *int       `json:"duration"`
	Status           string     `json:"status"`
	RecordingURL     *string    `json:"recordingUrl"`
	ThumbnailURL     *string    `json:"thumbnailUrl"`
	PlaybackID       *string    `json:"playbackId"`
	Notes            *string    `json:"notes"`
	Rating           *int       `json:"rating"`
	CustomerFeedback *string    `json:"customerFeedback"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// NewSessionResponse maps a session entity. A nil session maps to nil.
func NewSessionResponse(session *entity.CleaningSession) *SessionResponse {
	if session == nil {
		return nil
	}

	var addressID *string
	if session.AddressID != nil {
		id := session.AddressID.String()
		addressID = &id
	}

	return &SessionResponse{
		ID:               session.ID.String(),
		AddressID:        addressID,
		AddressName:      session.AddressName,
		StreamID:         session.StreamID,
		LiveInputID:      session.LiveInputID,
		CleanerName:      session.CleanerName,
		CleanerAvatar:    session.CleanerAvatar,
		ServiceType:      session.ServiceType.String(),
		ScheduledTime:    session.ScheduledTime,
		StartTime:        session.StartTime,
		EndTime:          session.EndTime,
		Duration:         session.Duration,
		Status:           session.Status.String(),
		RecordingURL:     session.RecordingURL,
		ThumbnailURL:     session.ThumbnailURL,
		PlaybackID:       session.PlaybackID,
		Notes:            session.Notes,
		Rating:           session.Rating,
		CustomerFeedback: session.CustomerFeedback,
		CreatedAt:        session.CreatedAt,
		UpdatedAt:        session.UpdatedAt,
	}
}

// NewSessionResponses maps a list of sessions, never returning nil.
func NewSessionResponses(sessions []*entity.CleaningSession) []*SessionResponse {
	out := make([]*SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		out = append(out, NewSessionResponse(session))
	}

	return out
}

// ToEntity rebuilds the session for client side derivations such as the dashboard.
func (s *SessionResponse) ToEntity() *entity.CleaningSession {
	id, _ := uuid.Parse(s.ID)

	return &entity.CleaningSession{
		ID:               id,
		AddressName:      s.AddressName,
		StreamID:         s.StreamID,
		LiveInputID:      s.LiveInputID,
		CleanerName:      s.CleanerName,
		CleanerAvatar:    s.CleanerAvatar,
		ServiceType:      entity.ServiceType(s.ServiceType),
		ScheduledTime:    s.ScheduledTime,
		StartTime:        s.StartTime,
		EndTime:          s.EndTime,
		Duration:         s.Duration,
		Status:           entity.SessionStatus(s.Status),
		RecordingURL:     s.RecordingURL,
		ThumbnailURL:     s.ThumbnailURL,
		PlaybackID:       s.PlaybackID,
		Notes:            s.Notes,
		Rating:           s.Rating,
		CustomerFeedback: s.CustomerFeedback,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

// StatsResponse is the dashboard summary.
type StatsResponse struct {
	CompletedCount     int     `json:"completedCount"`
	TotalDuration      int     `json:"totalDuration"`
	AverageRating      float64 `json:"averageRating"`
	AverageRatingLabel string  `json:"averageRatingLabel"`
	UpcomingCount      int     `json:"upcomingCount"`
}

// DashboardResponse is every derived dashboard section.
type DashboardResponse struct {
	Stats       StatsResponse      `json:"stats"`
	NextBooking *SessionResponse   `json:"nextBooking"`
	History     []*SessionResponse `json:"history"`
	Gallery     []*SessionResponse `json:"gallery"`
}

// NewDashboardResponse maps a derived dashboard.
func NewDashboardResponse(dashboard *entity.Dashboard) *DashboardResponse {
	return &DashboardResponse{
		Stats: StatsResponse{
			CompletedCount:     dashboard.Stats.CompletedCount,
			TotalDuration:      dashboard.Stats.TotalDuration,
			AverageRating:      dashboard.Stats.AverageRating,
			AverageRatingLabel: dashboard.Stats.AverageRatingLabel(),
			UpcomingCount:      dashboard.Stats.UpcomingCount,
		},
		NextBooking: NewSessionResponse(dashboard.NextBooking),
		History:     NewSessionResponses(dashboard.History),
		Gallery:     NewSessionResponses(dashboard.Gallery),
	}
}
