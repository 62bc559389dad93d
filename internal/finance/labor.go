package finance

import (
	"github.com/shopspring/decimal"
	"github.com/sitebook/backend/internal/money"
)

// EffectiveRate returns the hourly rate used for an hourly attendance entry.
//
// The rate snapshot wins if it is set and nonzero. Otherwise the worker's
// current rate is used, and if that is unknown too, the rate is zero.
func EffectiveRate(log AttendanceLog) decimal.Decimal {
	if log.HourlyRateSnapshot.Valid && !log.HourlyRateSnapshot.Decimal.IsZero() {
		return log.HourlyRateSnapshot.Decimal
	}

	return money.FromNull(log.WorkerDefaultRate)
}

// LaborCost returns the cost of one attendance entry.
//
// Fixed price entries cost their fixed amount, hours are ignored. Hourly
// entries cost hours × effective rate.
func LaborCost(log AttendanceLog) decimal.Decimal {
	if log.PaymentType == Fixed {
		return money.Round(log.FixedAmount)
	}

	return money.Round(log.Hours.Mul(EffectiveRate(log)))
}
