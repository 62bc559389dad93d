// Package export writes report snapshots as XLSX workbooks.
package export

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sitebook/backend/internal/report"
	"github.com/sitebook/backend/internal/types"
	"github.com/xuri/excelize/v2"
)

const (
	SheetRollup  = "Rollup"
	SheetSeries  = "Series"
	SheetWorkers = "Workers"
)

// ContentType is the MIME type of the workbooks.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Workbook creates a workbook with one sheet each for the rollup, the series
// and the worker breakdown of the snapshot.
func Workbook(snapshot report.Snapshot) (*excelize.File, error) {
	f := excelize.NewFile()

	// New files always contain "Sheet1"
	err := f.SetSheetName("Sheet1", SheetRollup)
	if err != nil {
		return nil, err
	}

	for _, name := range []string{SheetSeries, SheetWorkers} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
	}

	if err := rollup(f, snapshot); err != nil {
		return nil, fmt.Errorf("writing rollup sheet: %w", err)
	}

	if err := series(f, snapshot.Series); err != nil {
		return nil, fmt.Errorf("writing series sheet: %w", err)
	}

	if err := workers(f, snapshot); err != nil {
		return nil, fmt.Errorf("writing workers sheet: %w", err)
	}

	return f, nil
}

// Write writes the workbook for the snapshot to w.
func Write(w io.Writer, snapshot report.Snapshot) error {
	f, err := Workbook(snapshot)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.Write(w)
}

// Filename returns the name the workbook for the scope is offered as.
func Filename(snapshot report.Snapshot) string {
	id := snapshot.Scope.OrganizationID
	if snapshot.Scope.IsSite() {
		id = snapshot.Scope.SiteID
	}

	return fmt.Sprintf("sitebook-%s-%s.xlsx", id, snapshot.GeneratedAt.Format("2006-01-02"))
}

// setRow writes the values into the row, starting at column A.
func setRow(f *excelize.File, sheet string, row int, values ...any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}

	for i, v := range values {
		if d, ok := v.(decimal.Decimal); ok {
			values[i] = d.InexactFloat64()
		}
	}

	return f.SetSheetRow(sheet, cell, &values)
}

// date formats d, leaving open window bounds empty.
func date(d types.Date) string {
	if d.IsZero() {
		return ""
	}

	return d.String()
}

func rollup(f *excelize.File, s report.Snapshot) error {
	site := ""
	if s.Scope.IsSite() {
		site = s.Scope.SiteID.String()
	}

	r := s.Rollup
	rows := [][]any{
		{"Generated at", s.GeneratedAt.Format("2006-01-02 15:04:05")},
		{"Language", s.Language},
		{"Organization", s.Scope.OrganizationID.String()},
		{"Site", site},
		{"From", date(s.Scope.From)},
		{"Until", date(s.Scope.Until)},
		{},
		{"Income", r.Income},
		{"Expenses", r.ExpenseCost},
		{"Materials", r.MaterialCost},
		{"Labor", r.LaborCost},
		{"Total cost", r.TotalCost},
		{"Profit", r.Profit},
		{"Margin %", r.Margin},
		{"Hours", r.TotalHours},
		{"Budget", r.Budget},
		{"Budget used %", r.BudgetUsedPercent},
	}

	for i, row := range rows {
		if err := setRow(f, SheetRollup, i+1, row...); err != nil {
			return err
		}
	}

	return nil
}

func series(f *excelize.File, s report.Series) error {
	err := setRow(f, SheetSeries, 1, "Period", "Income", "Cost")
	if err != nil {
		return err
	}

	for i, p := range s.Points {
		err := setRow(f, SheetSeries, i+2, p.Label, p.Income, p.Cost)
		if err != nil {
			return err
		}
	}

	return nil
}

func workers(f *excelize.File, s report.Snapshot) error {
	err := setRow(f, SheetWorkers, 1, "Worker", "ID", "Hours", "Cost", "Share %")
	if err != nil {
		return err
	}

	for i, w := range s.Workers {
		id := ""
		if w.WorkerID != uuid.Nil {
			id = w.WorkerID.String()
		}

		err := setRow(f, SheetWorkers, i+2, w.WorkerName, id, w.Hours, w.Cost, w.PercentOfTotal)
		if err != nil {
			return err
		}
	}

	return nil
}
