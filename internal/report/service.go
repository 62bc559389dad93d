package report

import (
	"context"
	"fmt"
	"time"

	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"github.com/sitebook/backend/internal/finance"
	"github.com/sitebook/backend/internal/money"
	"github.com/sitebook/backend/internal/types"
)

// Service computes reports for scopes of a Store.
type Service struct {
	store    Store
	location *time.Location
	locale   string

	// Now returns the current time. Exported so that tests can pin it.
	Now func() time.Time
}

// NewService creates a Service.
//
// The location defines which calendar day "now" is, locale is the label
// language used for organizations without their own locale.
func NewService(store Store, location *time.Location, locale string) *Service {
	if location == nil {
		location = time.Local
	}

	return &Service{
		store:    store,
		location: location,
		locale:   locale,
		Now:      time.Now,
	}
}

// SiteRollup is the rollup of a scope together with its budget consumption.
type SiteRollup struct {
	finance.Rollup
	Budget            decimal.Decimal `json:"budget" example:"5000"`          // Stored budget of the site. 0 for organizations
	BudgetUsedPercent decimal.Decimal `json:"budgetUsedPercent" example:"12"` // Total cost as percentage of the budget. 0 without budget
}

// Series is a series of points for charting.
type Series struct {
	Mode   finance.Mode          `json:"mode" example:"monthly"`
	Points []finance.SeriesPoint `json:"points"`
	Raw    int                   `json:"raw" example:"92"` // Number of buckets before down-sampling
}

// Snapshot is everything known about a scope at one point in time.
type Snapshot struct {
	Scope       Scope
	GeneratedAt time.Time
	Language    string
	Rollup      SiteRollup
	Series      Series
	Workers     []finance.WorkerShare
}

// records is the complete record set of a scope.
type records struct {
	transactions []finance.Transaction
	materials    []finance.Material
	logs         []finance.AttendanceLog
}

func (s *Service) load(ctx context.Context, scope Scope) (records, error) {
	var (
		r   records
		err error
	)

	r.transactions, err = s.store.Transactions(ctx, scope)
	if err != nil {
		return records{}, fmt.Errorf("loading transactions: %w", err)
	}

	r.materials, err = s.store.Materials(ctx, scope)
	if err != nil {
		return records{}, fmt.Errorf("loading materials: %w", err)
	}

	r.logs, err = s.store.AttendanceLogs(ctx, scope)
	if err != nil {
		return records{}, fmt.Errorf("loading attendance logs: %w", err)
	}

	return r, nil
}

// window returns the records inside the time window of the scope.
func (r records) window(scope Scope) records {
	var w records

	for _, t := range r.transactions {
		if scope.Includes(t.Date) {
			w.transactions = append(w.transactions, t)
		}
	}

	for _, m := range r.materials {
		if scope.Includes(m.PurchaseDate) {
			w.materials = append(w.materials, m)
		}
	}

	for _, l := range r.logs {
		if scope.Includes(l.Date) {
			w.logs = append(w.logs, l)
		}
	}

	return w
}

// today returns the current calendar date in the service's location.
func (s *Service) today() types.Date {
	return types.DateOf(s.Now().In(s.location))
}

func (s *Service) labeler(info Info) finance.Labeler {
	if info.Locale != "" {
		return finance.NewLabeler(info.Locale)
	}

	return finance.NewLabeler(s.locale)
}

func (s *Service) info(ctx context.Context, scope Scope) (Info, error) {
	if err := scope.Validate(); err != nil {
		return Info{}, err
	}

	info, err := s.store.ScopeInfo(ctx, scope)
	if err != nil {
		return Info{}, fmt.Errorf("loading scope: %w", err)
	}

	return info, nil
}

// Rollup returns the rollup of all records in the scope.
func (s *Service) Rollup(ctx context.Context, scope Scope) (SiteRollup, error) {
	info, err := s.info(ctx, scope)
	if err != nil {
		return SiteRollup{}, err
	}

	r, err := s.load(ctx, scope)
	if err != nil {
		return SiteRollup{}, err
	}

	return siteRollup(r, info), nil
}

func siteRollup(r records, info Info) SiteRollup {
	sr := SiteRollup{
		Rollup: finance.Calculate(r.transactions, r.materials, r.logs),
		Budget: money.FromNull(info.Budget),
	}

	if sr.Budget.IsPositive() {
		sr.BudgetUsedPercent = money.Percent(sr.TotalCost, sr.Budget)
	}

	return sr
}

// Series returns the income and cost series of the scope.
//
// The series starts at the scope's From date if set, and otherwise at the
// earliest record. It ends at the scope's Until date if set, and otherwise
// today. Records before the start are part of the running totals of
// cumulative series. Monthly series only contain records inside the window.
func (s *Service) Series(ctx context.Context, scope Scope, mode finance.Mode) (Series, error) {
	if !mode.Valid() {
		return Series{}, ErrInvalidMode
	}

	info, err := s.info(ctx, scope)
	if err != nil {
		return Series{}, err
	}

	r, err := s.load(ctx, unbounded(scope))
	if err != nil {
		return Series{}, err
	}

	return s.series(r, scope, info, mode), nil
}

// unbounded returns the scope without a lower bound of its time window.
func unbounded(scope Scope) Scope {
	scope.From = types.Date{}
	return scope
}

func (s *Service) series(r records, scope Scope, info Info, mode finance.Mode) Series {
	end := scope.Until
	if end.IsZero() {
		end = s.today()
	}

	start := scope.From
	if start.IsZero() {
		start = finance.StartDate(r.transactions, r.materials, r.logs, info.Created, end)
	}

	// Month buckets start on the 1st, so records of the first month that
	// are before From have to be dropped here
	if mode == finance.Monthly {
		r = r.window(scope)
	}

	buckets := finance.Buckets(start, end, mode.Granularity(), s.labeler(info))
	points := finance.BuildSeries(buckets, r.transactions, r.materials, r.logs, mode)

	series := Series{
		Mode:   mode,
		Points: points,
		Raw:    len(points),
	}

	if mode == finance.Cumulative {
		series.Points = finance.Downsample(points)
	}

	return series
}

// Workers returns the labor breakdown per worker of the scope.
//
// If nameGlob is not empty, only workers whose name matches it are included,
// and their percentages refer to the matched workers only.
func (s *Service) Workers(ctx context.Context, scope Scope, nameGlob string) ([]finance.WorkerShare, error) {
	if _, err := s.info(ctx, scope); err != nil {
		return nil, err
	}

	logs, err := s.store.AttendanceLogs(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("loading attendance logs: %w", err)
	}

	return finance.WorkerBreakdown(matching(logs, nameGlob)), nil
}

func matching(logs []finance.AttendanceLog, nameGlob string) []finance.AttendanceLog {
	if nameGlob == "" {
		return logs
	}

	matched := make([]finance.AttendanceLog, 0, len(logs))
	for _, l := range logs {
		if glob.Glob(nameGlob, l.WorkerName) {
			matched = append(matched, l)
		}
	}

	return matched
}

// Budget computes a budget breakdown without persisting anything.
func (s *Service) Budget(items []finance.BudgetLineItem, vatEnabled bool, vatRatePercent decimal.Decimal) finance.BudgetBreakdown {
	return finance.CalculateBudget(items, vatEnabled, vatRatePercent)
}

// Report computes rollup, series and worker breakdown from a single load of
// the scope's records.
func (s *Service) Report(ctx context.Context, scope Scope, mode finance.Mode) (Snapshot, error) {
	if !mode.Valid() {
		return Snapshot{}, ErrInvalidMode
	}

	info, err := s.info(ctx, scope)
	if err != nil {
		return Snapshot{}, err
	}

	all, err := s.load(ctx, unbounded(scope))
	if err != nil {
		return Snapshot{}, err
	}

	inWindow := all.window(scope)

	return Snapshot{
		Scope:       scope,
		GeneratedAt: s.Now(),
		Language:    s.labeler(info).Language().String(),
		Rollup:      siteRollup(inWindow, info),
		Series:      s.series(all, scope, info, mode),
		Workers:     finance.WorkerBreakdown(inWindow.logs),
	}, nil
}
