// Package account holds the account screen state: which section is expanded
// and client-side validation of the address form.
package account

import (
	"strings"
	"unicode/utf8"

	"cleanrecord/internal/delivery/api/dto"
	"cleanrecord/internal/domain/entity"
)

// Section is an expandable part of the account screen.
type Section int

const (
	SectionNone Section = iota
	SectionProfile
	SectionAddresses
	SectionBalance
)

// Sections lists the sections in display order.
var Sections = []Section{SectionProfile, SectionAddresses, SectionBalance}

func (s Section) String() string {
	switch s {
	case SectionProfile:
		return "profile"
	case SectionAddresses:
		return "addresses"
	case SectionBalance:
		return "balance"
	default:
		return "none"
	}
}

// Title is the Polish section header.
func (s Section) Title() string {
	switch s {
	case SectionProfile:
		return "Dane osobowe"
	case SectionAddresses:
		return "Moje adresy"
	case SectionBalance:
		return "Saldo konta"
	default:
		return ""
	}
}

// ParseSection maps a deep-link name such as "addresses" to a section.
func ParseSection(name string) Section {
	for _, s := range Sections {
		if s.String() == strings.ToLower(strings.TrimSpace(name)) {
			return s
		}
	}

	return SectionNone
}

// Accordion keeps at most one section expanded.
type Accordion struct {
	open Section
}

// NewAccordion starts with the profile section open, or the deep-linked one.
func NewAccordion(initial Section) Accordion {
	if initial == SectionNone {
		initial = SectionProfile
	}

	return Accordion{open: initial}
}

// Open returns the expanded section.
func (a Accordion) Open() Section {
	return a.open
}

// IsOpen reports whether s is expanded.
func (a Accordion) IsOpen(s Section) bool {
	return s != SectionNone && a.open == s
}

// Toggle expands s, collapsing any other section; toggling the open section collapses it.
func (a *Accordion) Toggle(s Section) {
	if a.open == s {
		a.open = SectionNone

		return
	}
	a.open = s
}

// Validation messages shown inline under the address form.
const (
	MessageFieldRequired = "To pole jest wymagane"
	MessageNameTooLong   = "Nazwa może mieć maksymalnie 16 znaków"
)

// AddressForm is the address being edited on the account screen.
type AddressForm struct {
	ID         string
	Name       string
	Street     string
	PostalCode string
	City       string
}

// NameRemaining is the number of characters still allowed in the name.
func (f AddressForm) NameRemaining() int {
	return entity.AddressNameMaxLength - utf8.RuneCountInString(f.Name)
}

// Validate returns inline messages keyed by JSON field name. An empty map means the form can be saved.
func (f AddressForm) Validate() map[string]string {
	problems := make(map[string]string)

	required := map[string]string{
		"name":       f.Name,
		"street":     f.Street,
		"postalCode": f.PostalCode,
		"city":       f.City,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			problems[field] = MessageFieldRequired
		}
	}

	if f.NameRemaining() < 0 {
		problems["name"] = MessageNameTooLong
	}

	return problems
}

// Request converts the form into the API body.
func (f AddressForm) Request() *dto.AddressRequest {
	return &dto.AddressRequest{
		ID:         f.ID,
		Name:       strings.TrimSpace(f.Name),
		Street:     strings.TrimSpace(f.Street),
		PostalCode: strings.TrimSpace(f.PostalCode),
		City:       strings.TrimSpace(f.City),
	}
}

// FormFromAddress prefills the form for editing.
func FormFromAddress(address *dto.AddressResponse) AddressForm {
	return AddressForm{
		ID:         address.ID,
		Name:       address.Name,
		Street:     address.Street,
		PostalCode: address.PostalCode,
		City:       address.City,
	}
}
