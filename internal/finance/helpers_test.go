package finance_test

import (
	"github.com/shopspring/decimal"
	"github.com/sitebook/backend/internal/types"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func nd(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(d(s))
}

func date(s string) types.Date {
	parsed, err := types.ParseDate(s)
	if err != nil {
		panic(err)
	}

	return parsed
}
