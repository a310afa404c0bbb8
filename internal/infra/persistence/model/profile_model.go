package model

import (
	"time"

	"github.com/google/uuid"
)

// UserProfileModel mirrors the 'user_profiles' table. UserID is the identity provider subject.
type UserProfileModel struct {
	ID        uuid.UUID `gorm:"primaryKey"`
	UserID    string    `gorm:"not null;uniqueIndex"`
	FirstName string    `gorm:"not null"`
	LastName  string    `gorm:"not null"`
	Email     string    `gorm:"not null"`
	Phone     *string
	Language  string `gorm:"not null;default:pl"`
	Balance   int64  `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserProfileModel) TableName() string {
	return "user_profiles"
}
