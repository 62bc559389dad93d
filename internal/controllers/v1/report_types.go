package v1

import (
	"github.com/shopspring/decimal"
	"github.com/sitebook/backend/internal/finance"
	"github.com/sitebook/backend/internal/report"
	"github.com/sitebook/backend/internal/types"
	ez_uuid "github.com/sitebook/backend/internal/uuid"
)

// ReportQuery selects the records a computed endpoint works on.
type ReportQuery struct {
	OrganizationID ez_uuid.UUID `form:"organization"` // ID of the organization. Required
	SiteID         ez_uuid.UUID `form:"site"`         // ID of a site of the organization. Empty for all sites
	From           types.Date   `form:"from"`         // First day of the time window
	Until          types.Date   `form:"until"`        // Last day of the time window
}

// scope returns the report scope for the query.
func (q ReportQuery) scope() (report.Scope, error) {
	if q.OrganizationID == ez_uuid.Nil {
		return report.Scope{}, errOrganizationParameter
	}

	if !q.From.IsZero() && !q.Until.IsZero() && q.From.After(q.Until) {
		return report.Scope{}, errWindowInverted
	}

	return report.Scope{
		OrganizationID: q.OrganizationID.UUID,
		SiteID:         q.SiteID.UUID,
		From:           q.From,
		Until:          q.Until,
	}, nil
}

type SeriesQuery struct {
	ReportQuery
	Mode finance.Mode `form:"mode"` // monthly or cumulative. Defaults to monthly
}

// mode returns the requested mode, defaulting to monthly.
func (q SeriesQuery) mode() finance.Mode {
	if q.Mode == "" {
		return finance.Monthly
	}

	return q.Mode
}

type WorkerBreakdownQuery struct {
	ReportQuery
	Worker string `form:"worker"` // Glob pattern on the worker name
}

type RollupResponse struct {
	Error *string            `json:"error" example:"the organization parameter must be set"` // The error, if any occurred
	Data  *report.SiteRollup `json:"data"`                                                   // The rollup of the scope
}

type SeriesResponse struct {
	Error *string        `json:"error" example:"the series mode must be one of 'monthly' or 'cumulative'"` // The error, if any occurred
	Data  *report.Series `json:"data"`                                                                     // The series of the scope
}

type WorkerBreakdownResponse struct {
	Error *string               `json:"error" example:"the organization parameter must be set"` // The error, if any occurred
	Data  []finance.WorkerShare `json:"data"`                                                   // Labor per worker, most hours first
}

type BudgetBreakdownRequest struct {
	Items      []finance.BudgetLineItem `json:"items"`                                  // The budget line items
	VATEnabled bool                     `json:"vatEnabled" example:"true"`              // If VAT is added to the subtotal
	VATRate    decimal.Decimal          `json:"vatRate" example:"23" multipleOf:"0.01"` // VAT rate in percent
}

type BudgetBreakdownResponse struct {
	Error *string                  `json:"error" example:"the request body must not be empty"` // The error, if any occurred
	Data  *finance.BudgetBreakdown `json:"data"`                                               // Subtotal, VAT and total of the items
}

// displayRollup rounds the margin to one and the budget consumption to two
// decimal places.
func displayRollup(r report.SiteRollup) report.SiteRollup {
	r.Margin = r.Margin.Round(1)
	r.BudgetUsedPercent = r.BudgetUsedPercent.Round(2)
	return r
}

// displayShares rounds the percentages of the shares to two decimal places.
func displayShares(shares []finance.WorkerShare) []finance.WorkerShare {
	for i := range shares {
		shares[i].PercentOfTotal = shares[i].PercentOfTotal.Round(2)
	}

	return shares
}
