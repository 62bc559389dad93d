package models

import (
	"strings"

	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// Organization is a tenant. All other resources belong to exactly one
// organization.
type Organization struct {
	DefaultModel
	Name     string
	Note     string
	Currency string // ISO 4217 code, only used for display
	Locale   string // BCP 47 tag for labels. Empty uses the server default
}

func (o *Organization) BeforeSave(_ *gorm.DB) error {
	o.Name = strings.TrimSpace(o.Name)
	o.Note = strings.TrimSpace(o.Note)
	o.Currency = strings.ToUpper(strings.TrimSpace(o.Currency))
	o.Locale = strings.TrimSpace(o.Locale)

	if o.Locale != "" {
		if _, err := language.Parse(o.Locale); err != nil {
			return ErrOrganizationLocaleMalformed
		}
	}

	return nil
}
