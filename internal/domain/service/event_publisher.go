package service

import (
	"context"
	"time"
)

// BookingEventType names a change to a booking.
type BookingEventType string

const (
	BookingCreated   BookingEventType = "booking.created"
	BookingUpdated   BookingEventType = "booking.updated"
	BookingCancelled BookingEventType = "booking.cancelled"
)

// BookingEvent is published whenever a customer creates, changes or cancels a booking
type BookingEvent struct {
	RequestID     string           `json:"request_id,omitempty"` // For distributed tracing
	Type          BookingEventType `json:"type"`
	SessionID     string           `json:"session_id"`
	UserID        string           `json:"user_id"`
	AddressID     string           `json:"address_id,omitempty"`
	ServiceType   string           `json:"service_type,omitempty"`
	ScheduledTime time.Time        `json:"scheduled_time"`
	OccurredAt    time.Time        `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishBookingEvent publishes a booking event for downstream scheduling
	PublishBookingEvent(ctx context.Context, event *BookingEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
