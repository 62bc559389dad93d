// Package finance is the financial rollup and time-series aggregation engine.
//
// It turns independently entered transactions, material purchases and
// attendance entries into total cost, income, profit, margin and budget
// figures, and into calendar-bucketed series for charting. Every function in
// this package is pure: it only reads its inputs and always returns fresh
// values, so results can be computed concurrently and never need to be
// invalidated.
package finance

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sitebook/backend/internal/types"
)

// TransactionType is the kind of a cash transaction.
type TransactionType string

const (
	Invoice TransactionType = "invoice"
	Expense TransactionType = "expense"
)

// PaymentType defines how the labor of an attendance entry is paid.
type PaymentType string

const (
	Hourly PaymentType = "hourly"
	Fixed  PaymentType = "fixed"
)

// Transaction is a cash movement on a site.
//
// Paid invoices count as income, expenses always count as cost.
type Transaction struct {
	ID     uuid.UUID
	SiteID uuid.UUID
	Type   TransactionType
	Amount decimal.Decimal
	Date   types.Date
	IsPaid bool
}

// Material is a material purchase for a site. It always counts as cost.
type Material struct {
	ID           uuid.UUID
	SiteID       uuid.UUID
	Quantity     decimal.Decimal
	UnitPrice    decimal.Decimal
	TotalPrice   decimal.Decimal
	PurchaseDate types.Date
}

// AttendanceLog is one worker's attendance entry on a site.
//
// HourlyRateSnapshot is the rate recorded when the entry was created. Entries
// that predate rate snapshots do not have it set, for those the worker's
// current rate in WorkerDefaultRate is used.
type AttendanceLog struct {
	ID                 uuid.UUID
	SiteID             uuid.UUID
	WorkerID           uuid.UUID
	WorkerName         string
	Date               types.Date
	Hours              decimal.Decimal
	PaymentType        PaymentType
	HourlyRateSnapshot decimal.NullDecimal
	FixedAmount        decimal.Decimal
	WorkerDefaultRate  decimal.NullDecimal
}

// BudgetLineItem is one user-entered line of a site budget.
type BudgetLineItem struct {
	ID     string          `json:"id" example:"3"`
	Label  string          `json:"label" example:"Roof tiles"`
	Amount decimal.Decimal `json:"amount" example:"1250.50"`
}
