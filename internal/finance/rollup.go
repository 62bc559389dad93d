package finance

import (
	"github.com/shopspring/decimal"
	"github.com/sitebook/backend/internal/money"
)

// Rollup is the combined income and cost aggregate for a record set.
type Rollup struct {
	Income       decimal.Decimal `json:"income" example:"1000"`      // Sum of all paid invoices
	ExpenseCost  decimal.Decimal `json:"expenseCost" example:"200"`  // Sum of all expenses
	MaterialCost decimal.Decimal `json:"materialCost" example:"150"` // Sum of all material purchases
	LaborCost    decimal.Decimal `json:"laborCost" example:"250"`    // Sum of the labor cost of all attendance entries
	TotalCost    decimal.Decimal `json:"totalCost" example:"600"`    // Expenses, materials and labor
	Profit       decimal.Decimal `json:"profit" example:"400"`       // Income minus total cost
	Margin       decimal.Decimal `json:"margin" example:"40"`        // Profit as percentage of income, 0 without income
	TotalHours   decimal.Decimal `json:"totalHours" example:"10"`    // Sum of all attendance hours
}

// accumulator collects unrounded sums. Rounding happens once in rollup().
type accumulator struct {
	income   decimal.Decimal
	expenses decimal.Decimal
	material decimal.Decimal
	labor    decimal.Decimal
	hours    decimal.Decimal
}

func (a *accumulator) addTransaction(t Transaction) {
	switch t.Type {
	case Invoice:
		if t.IsPaid {
			a.income = a.income.Add(t.Amount)
		}
	case Expense:
		a.expenses = a.expenses.Add(t.Amount)
	}
}

func (a *accumulator) addMaterial(m Material) {
	a.material = a.material.Add(m.TotalPrice)
}

func (a *accumulator) addLog(l AttendanceLog) {
	a.labor = a.labor.Add(LaborCost(l))
	a.hours = a.hours.Add(l.Hours)
}

func (a accumulator) rollup() Rollup {
	r := Rollup{
		Income:       money.Round(a.income),
		ExpenseCost:  money.Round(a.expenses),
		MaterialCost: money.Round(a.material),
		LaborCost:    money.Round(a.labor),
		TotalHours:   a.hours,
	}

	// The total cost is exactly these three buckets. Any new cost source
	// must be added here and to the worker breakdown deliberately.
	r.TotalCost = money.Round(money.Sum(r.ExpenseCost, r.MaterialCost, r.LaborCost))
	r.Profit = money.Round(r.Income.Sub(r.TotalCost))

	if r.Income.IsPositive() {
		r.Margin = money.Percent(r.Profit, r.Income)
	}

	return r
}

// Calculate computes the rollup for a complete record set.
//
// The records must already be filtered to the scope and time window of
// interest. Empty input yields an all-zero Rollup.
func Calculate(transactions []Transaction, materials []Material, logs []AttendanceLog) Rollup {
	var a accumulator

	for _, t := range transactions {
		a.addTransaction(t)
	}

	for _, m := range materials {
		a.addMaterial(m)
	}

	for _, l := range logs {
		a.addLog(l)
	}

	return a.rollup()
}
