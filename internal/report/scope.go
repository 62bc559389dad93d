// Package report exposes the financial engine for one scope of records.
//
// A Service loads the records of a scope from a Store once per call and runs
// them through the finance package. Nothing is cached, every result is
// computed from the records at the time of the call.
package report

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sitebook/backend/internal/finance"
	"github.com/sitebook/backend/internal/types"
)

var (
	ErrOrganizationMissing = errors.New("an organization is required")
	ErrInvalidMode         = errors.New("the series mode must be one of 'monthly' or 'cumulative'")
	ErrInvalidWindow       = errors.New("the start of the time window must not be after its end")
)

// Scope selects the records a report is computed over.
type Scope struct {
	OrganizationID uuid.UUID  // Required
	SiteID         uuid.UUID  // uuid.Nil selects all sites of the organization
	From           types.Date // Inclusive. Zero for no lower bound
	Until          types.Date // Inclusive. Zero for no upper bound
}

// Validate checks that the scope can be queried.
func (s Scope) Validate() error {
	if s.OrganizationID == uuid.Nil {
		return ErrOrganizationMissing
	}

	if !s.From.IsZero() && !s.Until.IsZero() && s.From.After(s.Until) {
		return ErrInvalidWindow
	}

	return nil
}

// IsSite reports if the scope is a single site.
func (s Scope) IsSite() bool {
	return s.SiteID != uuid.Nil
}

// Includes reports if a date is inside the time window of the scope.
func (s Scope) Includes(d types.Date) bool {
	if !s.From.IsZero() && d.Before(s.From) {
		return false
	}

	if !s.Until.IsZero() && d.After(s.Until) {
		return false
	}

	return true
}

// Info is the metadata of a scope.
type Info struct {
	Created types.Date          // Creation date of the site, or of the organization for organization scopes
	Budget  decimal.NullDecimal // The stored site budget. Not set for organization scopes
	Locale  string              // Label language of the organization. Empty for the default
}

// Store is the data collaborator of the engine.
//
// All record methods must only return records of the scope's organization,
// restricted to the site and time window when the scope sets them.
// AttendanceLogs must have WorkerName and WorkerDefaultRate populated from
// the worker's current data.
type Store interface {
	ScopeInfo(ctx context.Context, scope Scope) (Info, error)
	Transactions(ctx context.Context, scope Scope) ([]finance.Transaction, error)
	Materials(ctx context.Context, scope Scope) ([]finance.Material, error)
	AttendanceLogs(ctx context.Context, scope Scope) ([]finance.AttendanceLog, error)
}
