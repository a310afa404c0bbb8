package entity

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// AddressNameMaxLength is the maximum number of characters in an address label.
const AddressNameMaxLength = 16

// Address is a saved cleaning location owned by a single customer.
type Address struct {
	ID         uuid.UUID // The Global Unique Identifier (GUID) for the address.
	UserID     string    // The identity provider subject that owns this address.
	Name       string    // A short user-defined label, e.g. "Dom", "Biuro".
	Street     string    // Street and building number.
	PostalCode string    // Postal code, e.g. "00-001".
	City       string    // City name.
	CreatedAt  time.Time // Timestamp of when this address was created.
	UpdatedAt  time.Time // Timestamp of the last modification.
}

// IsOwnedBy reports whether the address belongs to the given caller.
func (a *Address) IsOwnedBy(userID string) bool {
	return a.UserID == userID
}

// HasRequiredFields reports whether every user supplied field is non-empty.
func (a *Address) HasRequiredFields() bool {
	return a.Name != "" && a.Street != "" && a.PostalCode != "" && a.City != ""
}

// NameTooLong reports whether the label exceeds AddressNameMaxLength characters.
func (a *Address) NameTooLong() bool {
	return utf8.RuneCountInString(a.Name) > AddressNameMaxLength
}
