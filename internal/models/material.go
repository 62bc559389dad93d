package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sitebook/backend/internal/finance"
	"github.com/sitebook/backend/internal/money"
	"github.com/sitebook/backend/internal/types"
	"gorm.io/gorm"
)

// Material is a material purchase for a site.
type Material struct {
	DefaultModel
	Site         Site `json:"-"`
	SiteID       uuid.UUID
	Name         string
	Quantity     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	UnitPrice    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	TotalPrice   decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Derived from quantity and unit price when not set
	PurchaseDate types.Date
}

func (m *Material) BeforeSave(_ *gorm.DB) error {
	m.Name = strings.TrimSpace(m.Name)

	if m.Quantity.IsNegative() || m.UnitPrice.IsNegative() || m.TotalPrice.IsNegative() {
		return ErrAmountNegative
	}

	if m.TotalPrice.IsZero() {
		m.TotalPrice = money.Round(m.Quantity.Mul(m.UnitPrice))
	}

	if m.PurchaseDate.IsZero() {
		m.PurchaseDate = localDate(time.Now())
	}

	return nil
}

// Record returns the engine representation of the material purchase.
func (m Material) Record() finance.Material {
	return finance.Material{
		ID:           m.ID,
		SiteID:       m.SiteID,
		Quantity:     m.Quantity,
		UnitPrice:    m.UnitPrice,
		TotalPrice:   m.TotalPrice,
		PurchaseDate: m.PurchaseDate,
	}
}
