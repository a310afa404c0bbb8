package entity

// Identity is the authenticated caller as asserted by the external identity provider.
type Identity struct {
	Subject    string // Stable user id from the provider ('sub' claim); the owner key for all records.
	Email      string
	GivenName  string
	FamilyName string
	Locale     string
}

// ProfileDefaults are the suggested values for an empty profile form.
type ProfileDefaults struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Language  string `json:"language"`
}

// ProfileDefaults derives form defaults from identity attributes.
func (i *Identity) ProfileDefaults() ProfileDefaults {
	language := DefaultLanguage
	if len(i.Locale) >= 2 {
		language = i.Locale[:2]
	}

	return ProfileDefaults{
		FirstName: i.GivenName,
		LastName:  i.FamilyName,
		Email:     i.Email,
		Language:  language,
	}
}
