package model

import (
	"time"

	"github.com/google/uuid"
)

// CleaningSessionModel mirrors the 'cleaning_sessions' table.
// AddressID is not a foreign key; deleting an address leaves the reference dangling.
type CleaningSessionModel struct {
	ID               uuid.UUID  `gorm:"primaryKey"`
	UserID           string     `gorm:"not null;index:idx_cleaning_sessions_user_id"`
	AddressID        *uuid.UUID `gorm:"index"`
	StreamID         *string
	LiveInputID      *string `gorm:"index"`
	CleanerName      string  `gorm:"not null"`
	CleanerAvatar    *string
	ServiceType      string    `gorm:"not null;default:standard"`
	ScheduledTime    time.Time `gorm:"not null"`
	StartTime        *time.Time
	EndTime          *time.Time
	Duration         *int
	Status           string `gorm:"not null;default:scheduled"`
	RecordingURL     *string
	ThumbnailURL     *string
	PlaybackID       *string
	Notes            *string
	Rating           *int
	CustomerFeedback *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (CleaningSessionModel) TableName() string {
	return "cleaning_sessions"
}

// CleaningSessionWithAddress is a session row joined with the owner's address label.
type CleaningSessionWithAddress struct {
	CleaningSessionModel
	AddressName *string
}
