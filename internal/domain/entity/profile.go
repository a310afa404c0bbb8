// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultLanguage is the preferred language assigned when a profile is saved without one.
const DefaultLanguage = "pl"

// balanceExponent converts minor currency units (grosze) to major units.
const balanceExponent = -2

// UserProfile holds the contact details and account balance of a portal customer.
// There is at most one profile per external identity.
type UserProfile struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the profile.
	UserID    string    // The identity provider subject that owns this profile.
	FirstName string    // The customer's given name.
	LastName  string    // The customer's family name.
	Email     string    // The contact email.
	Phone     *string   // Optional contact phone number.
	Language  string    // Preferred language code, e.g. "pl".
	Balance   int64     // Account balance in minor currency units.
	CreatedAt time.Time // Timestamp of when this profile was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}

// BalanceDecimal returns the balance in major currency units.
func (p *UserProfile) BalanceDecimal() decimal.Decimal {
	return decimal.New(p.Balance, balanceExponent)
}

// FormattedBalance renders the balance with two decimal places, e.g. "12.50".
func (p *UserProfile) FormattedBalance() string {
	return p.BalanceDecimal().StringFixed(2)
}

// IsOwnedBy reports whether the profile belongs to the given caller.
func (p *UserProfile) IsOwnedBy(userID string) bool {
	return p.UserID == userID
}
