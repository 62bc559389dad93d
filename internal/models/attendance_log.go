package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sitebook/backend/internal/finance"
	"github.com/sitebook/backend/internal/types"
	"gorm.io/gorm"
)

// AttendanceLog is one worker's attendance on a site for one day.
type AttendanceLog struct {
	DefaultModel
	Site               Site `json:"-"`
	SiteID             uuid.UUID
	Worker             Worker `json:"-"`
	WorkerID           uuid.UUID
	Date               types.Date
	Hours              decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	PaymentType        finance.PaymentType
	HourlyRateSnapshot decimal.NullDecimal `gorm:"type:DECIMAL(20,8)"` // Rate of the worker at creation time
	FixedAmount        decimal.Decimal     `gorm:"type:DECIMAL(20,8)"`
	Note               string
}

func (a *AttendanceLog) BeforeSave(tx *gorm.DB) error {
	a.Note = strings.TrimSpace(a.Note)

	if a.PaymentType == "" {
		a.PaymentType = finance.Hourly
	}

	if a.PaymentType != finance.Hourly && a.PaymentType != finance.Fixed {
		return ErrPaymentTypeInvalid
	}

	if a.Hours.IsNegative() {
		return ErrHoursNegative
	}

	if a.FixedAmount.IsNegative() || (a.HourlyRateSnapshot.Valid && a.HourlyRateSnapshot.Decimal.IsNegative()) {
		return ErrAmountNegative
	}

	if a.Date.IsZero() {
		a.Date = localDate(time.Now())
	}

	return a.checkOrganization(tx)
}

// checkOrganization verifies that site and worker belong to the same organization.
func (a *AttendanceLog) checkOrganization(tx *gorm.DB) error {
	var site Site
	err := tx.First(&site, a.SiteID).Error
	if err != nil {
		return err
	}

	var worker Worker
	err = tx.First(&worker, a.WorkerID).Error
	if err != nil {
		return err
	}

	if site.OrganizationID != worker.OrganizationID {
		return ErrWorkerOrganizationMismatch
	}

	return nil
}

// BeforeCreate snapshots the worker's current rate for hourly entries
// that do not specify one.
func (a *AttendanceLog) BeforeCreate(tx *gorm.DB) error {
	_ = a.DefaultModel.BeforeCreate(tx)

	if a.PaymentType != finance.Hourly || a.HourlyRateSnapshot.Valid {
		return nil
	}

	var worker Worker
	err := tx.First(&worker, a.WorkerID).Error
	if err != nil {
		return err
	}

	a.HourlyRateSnapshot = worker.HourlyRate
	return nil
}

// Record returns the engine representation of the attendance log.
//
// The Worker must be loaded for name and current rate to be set.
func (a AttendanceLog) Record() finance.AttendanceLog {
	return finance.AttendanceLog{
		ID:                 a.ID,
		SiteID:             a.SiteID,
		WorkerID:           a.WorkerID,
		WorkerName:         a.Worker.Name,
		Date:               a.Date,
		Hours:              a.Hours,
		PaymentType:        a.PaymentType,
		HourlyRateSnapshot: a.HourlyRateSnapshot,
		FixedAmount:        a.FixedAmount,
		WorkerDefaultRate:  a.Worker.HourlyRate,
	}
}
