package finance

import (
	"github.com/shopspring/decimal"
	"github.com/sitebook/backend/internal/money"
)

// BudgetBreakdown is the result of a budget calculation.
type BudgetBreakdown struct {
	Subtotal  decimal.Decimal `json:"subtotal" example:"100"` // Sum of all line items
	VATAmount decimal.Decimal `json:"vatAmount" example:"23"` // VAT on the subtotal, 0 if VAT is disabled
	Total     decimal.Decimal `json:"total" example:"123"`    // Subtotal plus VAT
}

// CalculateBudget returns subtotal, VAT and total for a list of line items.
//
// Each line amount is clamped to zero and rounded before summing since every
// line is an independently entered money value. A negative VAT rate is
// treated as zero.
func CalculateBudget(items []BudgetLineItem, vatEnabled bool, vatRatePercent decimal.Decimal) BudgetBreakdown {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(money.Round(money.NonNegative(item.Amount)))
	}

	b := BudgetBreakdown{
		Subtotal:  money.Round(subtotal),
		VATAmount: decimal.Zero,
	}

	if vatEnabled {
		b.VATAmount = money.Round(money.PercentOf(b.Subtotal, money.NonNegative(vatRatePercent)))
	}

	b.Total = money.Round(b.Subtotal.Add(b.VATAmount))
	return b
}
