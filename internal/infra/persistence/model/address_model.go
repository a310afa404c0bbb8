package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'user_addresses' table.
type AddressModel struct {
	ID         uuid.UUID `gorm:"primaryKey"`
	UserID     string    `gorm:"not null;index:idx_user_addresses_user_id"`
	Name       string    `gorm:"not null"`
	Street     string    `gorm:"not null"`
	PostalCode string    `gorm:"not null"`
	City       string    `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "user_addresses"
}
