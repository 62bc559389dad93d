package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Worker struct {
	DefaultModel
	Organization   Organization        `json:"-"`
	OrganizationID uuid.UUID           `gorm:"uniqueIndex:worker_name_organization"`
	Name           string              `gorm:"uniqueIndex:worker_name_organization"`
	HourlyRate     decimal.NullDecimal `gorm:"type:DECIMAL(20,8)"` // Current rate. Snapshotted into new hourly attendance logs
}

func (w *Worker) BeforeSave(_ *gorm.DB) error {
	w.Name = strings.TrimSpace(w.Name)

	if w.HourlyRate.Valid && w.HourlyRate.Decimal.IsNegative() {
		return ErrRateNegative
	}

	return nil
}
