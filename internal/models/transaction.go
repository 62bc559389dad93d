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

// Transaction is an invoice or expense on a site.
type Transaction struct {
	DefaultModel
	Site   Site `json:"-"`
	SiteID uuid.UUID
	Type   finance.TransactionType
	Amount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date   types.Date
	IsPaid bool // Only relevant for invoices. Unpaid invoices are not income
	Note   string
}

// BeforeSave
//   - rejects unknown types and negative amounts
//   - defaults the date to today
//   - trims whitespace from the note
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Note = strings.TrimSpace(t.Note)

	if t.Type != finance.Invoice && t.Type != finance.Expense {
		return ErrTransactionTypeInvalid
	}

	if t.Amount.IsNegative() {
		return ErrAmountNegative
	}

	if t.Date.IsZero() {
		t.Date = localDate(time.Now())
	}

	return nil
}

// Record returns the engine representation of the transaction.
func (t Transaction) Record() finance.Transaction {
	return finance.Transaction{
		ID:     t.ID,
		SiteID: t.SiteID,
		Type:   t.Type,
		Amount: t.Amount,
		Date:   t.Date,
		IsPaid: t.IsPaid,
	}
}
