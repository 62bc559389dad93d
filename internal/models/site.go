package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sitebook/backend/internal/finance"
	"gorm.io/gorm"
)

// Site is a construction site, the unit all financial records are entered for.
type Site struct {
	DefaultModel
	Organization   Organization `json:"-"`
	OrganizationID uuid.UUID    `gorm:"uniqueIndex:site_name_organization"`
	Name           string       `gorm:"uniqueIndex:site_name_organization"`
	Note           string
	Address        string
	BudgetItems    []finance.BudgetLineItem `gorm:"serializer:json"`
	VATEnabled     bool
	VATRate        decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // VAT rate in percent
	Budget         decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Total of the budget items including VAT. Recomputed on every save
}

// BeforeSave recomputes the stored budget from the budget items.
func (s *Site) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)
	s.Note = strings.TrimSpace(s.Note)
	s.Address = strings.TrimSpace(s.Address)

	for i := range s.BudgetItems {
		s.BudgetItems[i].Label = strings.TrimSpace(s.BudgetItems[i].Label)
		if s.BudgetItems[i].ID == "" {
			s.BudgetItems[i].ID = uuid.NewString()
		}
	}

	s.Budget = s.BudgetBreakdown().Total
	return nil
}

// BudgetBreakdown returns the subtotal, VAT and total of the site's budget items.
func (s Site) BudgetBreakdown() finance.BudgetBreakdown {
	return finance.CalculateBudget(s.BudgetItems, s.VATEnabled, s.VATRate)
}
