package models

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sitebook/backend/internal/finance"
	"github.com/sitebook/backend/internal/report"
	"gorm.io/gorm"
)

// Store reads the records of report scopes from the database.
type Store struct {
	db *gorm.DB
}

// NewStore returns a Store on db.
func NewStore(db *gorm.DB) Store {
	return Store{db: db}
}

// ScopeInfo returns the metadata of the scope.
//
// For site scopes, the site must belong to the scope's organization.
func (s Store) ScopeInfo(ctx context.Context, scope report.Scope) (report.Info, error) {
	var organization Organization
	err := s.db.WithContext(ctx).First(&organization, scope.OrganizationID).Error
	if err != nil {
		return report.Info{}, err
	}

	info := report.Info{
		Created: localDate(organization.CreatedAt),
		Locale:  organization.Locale,
	}

	if !scope.IsSite() {
		return info, nil
	}

	var site Site
	err = s.db.WithContext(ctx).Where(&Site{OrganizationID: scope.OrganizationID}).First(&site, scope.SiteID).Error
	if err != nil {
		return report.Info{}, err
	}

	info.Created = localDate(site.CreatedAt)
	info.Budget = decimal.NewNullDecimal(site.Budget)

	return info, nil
}

// scoped restricts a query on a table with a site_id column to the scope.
func (s Store) scoped(ctx context.Context, table, dateColumn string, scope report.Scope) *gorm.DB {
	q := s.db.WithContext(ctx).
		Joins(fmt.Sprintf("JOIN sites AS scope_sites ON scope_sites.id = %s.site_id AND scope_sites.deleted_at IS NULL", table)).
		Where("scope_sites.organization_id = ?", scope.OrganizationID).
		Order(fmt.Sprintf("%s.%s ASC, %s.created_at ASC", table, dateColumn, table))

	if scope.SiteID != uuid.Nil {
		q = q.Where(fmt.Sprintf("%s.site_id = ?", table), scope.SiteID)
	}

	if !scope.From.IsZero() {
		q = q.Where(fmt.Sprintf("date(%s.%s) >= date(?)", table, dateColumn), scope.From)
	}

	if !scope.Until.IsZero() {
		q = q.Where(fmt.Sprintf("date(%s.%s) <= date(?)", table, dateColumn), scope.Until)
	}

	return q
}

// Transactions returns the transactions of the scope ordered by date.
func (s Store) Transactions(ctx context.Context, scope report.Scope) ([]finance.Transaction, error) {
	var transactions []Transaction
	err := s.scoped(ctx, "transactions", "date", scope).Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	records := make([]finance.Transaction, 0, len(transactions))
	for _, t := range transactions {
		records = append(records, t.Record())
	}

	return records, nil
}

// Materials returns the material purchases of the scope ordered by date.
func (s Store) Materials(ctx context.Context, scope report.Scope) ([]finance.Material, error) {
	var materials []Material
	err := s.scoped(ctx, "materials", "purchase_date", scope).Find(&materials).Error
	if err != nil {
		return nil, err
	}

	records := make([]finance.Material, 0, len(materials))
	for _, m := range materials {
		records = append(records, m.Record())
	}

	return records, nil
}

// AttendanceLogs returns the attendance logs of the scope ordered by date.
//
// Deleted workers are still loaded so that their labor keeps its name and rate.
func (s Store) AttendanceLogs(ctx context.Context, scope report.Scope) ([]finance.AttendanceLog, error) {
	var logs []AttendanceLog
	err := s.scoped(ctx, "attendance_logs", "date", scope).
		Preload("Worker", func(db *gorm.DB) *gorm.DB {
			return db.Unscoped()
		}).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}

	records := make([]finance.AttendanceLog, 0, len(logs))
	for _, l := range logs {
		records = append(records, l.Record())
	}

	return records, nil
}
