package models_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sitebook/backend/internal/finance"
	"github.com/sitebook/backend/internal/models"
	"github.com/sitebook/backend/internal/report"
	"github.com/sitebook/backend/internal/types"
)

type storeFixture struct {
	organization models.Organization
	site         models.Site
	otherSite    models.Site
	worker       models.Worker
}

func (suite *TestSuiteStandard) createStoreFixture() storeFixture {
	organization := suite.createTestOrganization(models.Organization{Locale: "de"})
	site := suite.createTestSite(models.Site{OrganizationID: organization.ID, Name: "Main Street", BudgetItems: []finance.BudgetLineItem{{Amount: d("1000")}}})
	otherSite := suite.createTestSite(models.Site{OrganizationID: organization.ID, Name: "Harbor"})
	worker := suite.createTestWorker(models.Worker{OrganizationID: organization.ID, Name: "Anna", HourlyRate: decimal.NewNullDecimal(d("25"))})

	suite.createTestTransaction(models.Transaction{SiteID: site.ID, Type: finance.Invoice, Amount: d("500"), IsPaid: true, Date: date("2024-01-15")})
	suite.createTestTransaction(models.Transaction{SiteID: site.ID, Type: finance.Expense, Amount: d("100"), Date: date("2024-02-10")})
	suite.createTestTransaction(models.Transaction{SiteID: otherSite.ID, Type: finance.Expense, Amount: d("70"), Date: date("2024-02-11")})
	suite.createTestMaterial(models.Material{SiteID: site.ID, Name: "Bricks", TotalPrice: d("50"), PurchaseDate: date("2024-01-31")})
	suite.createTestAttendanceLog(models.AttendanceLog{SiteID: site.ID, WorkerID: worker.ID, Hours: d("4"), Date: date("2024-02-01")})

	// Records of another organization must never show up
	other := suite.createTestOrganization(models.Organization{Name: "Other"})
	foreignSite := suite.createTestSite(models.Site{OrganizationID: other.ID, Name: "Main Street"})
	suite.createTestTransaction(models.Transaction{SiteID: foreignSite.ID, Type: finance.Expense, Amount: d("999"), Date: date("2024-02-10")})

	return storeFixture{organization, site, otherSite, worker}
}

func (suite *TestSuiteStandard) TestStoreScopes() {
	f := suite.createStoreFixture()
	store := models.NewStore(models.DB)
	ctx := context.Background()

	tests := []struct {
		name         string
		scope        report.Scope
		transactions int
		materials    int
		logs         int
	}{
		{"Organization", report.Scope{OrganizationID: f.organization.ID}, 3, 1, 1},
		{"Site", report.Scope{OrganizationID: f.organization.ID, SiteID: f.site.ID}, 2, 1, 1},
		{"Other site", report.Scope{OrganizationID: f.organization.ID, SiteID: f.otherSite.ID}, 1, 0, 0},
		{"From", report.Scope{OrganizationID: f.organization.ID, From: date("2024-02-01")}, 2, 0, 1},
		{"Until", report.Scope{OrganizationID: f.organization.ID, Until: date("2024-01-31")}, 1, 1, 0},
		{"Single day", report.Scope{OrganizationID: f.organization.ID, From: date("2024-02-10"), Until: date("2024-02-10")}, 1, 0, 0},
		{"Unknown organization", report.Scope{OrganizationID: uuid.New()}, 0, 0, 0},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			transactions, err := store.Transactions(ctx, tt.scope)
			suite.Require().Nil(err)
			suite.Assert().Len(transactions, tt.transactions)

			materials, err := store.Materials(ctx, tt.scope)
			suite.Require().Nil(err)
			suite.Assert().Len(materials, tt.materials)

			logs, err := store.AttendanceLogs(ctx, tt.scope)
			suite.Require().Nil(err)
			suite.Assert().Len(logs, tt.logs)
		})
	}
}

func (suite *TestSuiteStandard) TestStoreOrdering() {
	f := suite.createStoreFixture()

	transactions, err := models.NewStore(models.DB).Transactions(context.Background(), report.Scope{OrganizationID: f.organization.ID})
	suite.Require().Nil(err)

	for i := 1; i < len(transactions); i++ {
		suite.Assert().False(transactions[i].Date.Before(transactions[i-1].Date))
	}
}

func (suite *TestSuiteStandard) TestStoreDeletedSite() {
	f := suite.createStoreFixture()
	suite.Require().Nil(models.DB.Delete(&f.otherSite).Error)

	transactions, err := models.NewStore(models.DB).Transactions(context.Background(), report.Scope{OrganizationID: f.organization.ID})
	suite.Require().Nil(err)
	suite.Assert().Len(transactions, 2)
}

func (suite *TestSuiteStandard) TestStoreAttendanceLogWorker() {
	f := suite.createStoreFixture()
	suite.Require().Nil(models.DB.Delete(&f.worker).Error)

	logs, err := models.NewStore(models.DB).AttendanceLogs(context.Background(), report.Scope{OrganizationID: f.organization.ID})
	suite.Require().Nil(err)
	suite.Require().Len(logs, 1)

	suite.Assert().Equal(f.worker.ID, logs[0].WorkerID)
	suite.Assert().Equal("Anna", logs[0].WorkerName, "deleted workers keep their name")
	suite.Assert().Equal("25", logs[0].WorkerDefaultRate.Decimal.String())
	suite.Assert().Equal("100", finance.LaborCost(logs[0]).String())
}

func (suite *TestSuiteStandard) TestStoreScopeInfo() {
	f := suite.createStoreFixture()
	store := models.NewStore(models.DB)
	ctx := context.Background()

	info, err := store.ScopeInfo(ctx, report.Scope{OrganizationID: f.organization.ID})
	suite.Require().Nil(err)
	suite.Assert().Equal("de", info.Locale)
	suite.Assert().False(info.Budget.Valid)
	suite.Assert().Equal(types.DateOf(f.organization.CreatedAt.In(report.ConfigFromEnv().Location)), info.Created)

	info, err = store.ScopeInfo(ctx, report.Scope{OrganizationID: f.organization.ID, SiteID: f.site.ID})
	suite.Require().Nil(err)
	suite.Require().True(info.Budget.Valid)
	suite.Assert().Equal("1000", info.Budget.Decimal.String())

	_, err = store.ScopeInfo(ctx, report.Scope{OrganizationID: uuid.New()})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	// A site of another organization is not part of the scope
	other := suite.createTestOrganization(models.Organization{Name: "Third"})
	_, err = store.ScopeInfo(ctx, report.Scope{OrganizationID: other.ID, SiteID: f.site.ID})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestStoreScopeInfoTimezone() {
	// 22:00 UTC on March 31st is already April 1st in UTC+14
	created := time.Date(2024, 3, 31, 22, 0, 0, 0, time.UTC)
	organization := suite.createTestOrganization(models.Organization{DefaultModel: models.DefaultModel{Timestamps: models.Timestamps{CreatedAt: created}}})
	site := suite.createTestSite(models.Site{OrganizationID: organization.ID, Name: "Main Street", DefaultModel: models.DefaultModel{Timestamps: models.Timestamps{CreatedAt: created}}})

	store := models.NewStore(models.DB)
	ctx := context.Background()

	tests := []struct {
		timezone string
		created  types.Date
	}{
		{"UTC", date("2024-03-31")},
		{"Pacific/Kiritimati", date("2024-04-01")},
	}

	for _, tt := range tests {
		suite.Run(tt.timezone, func() {
			suite.T().Setenv("TIMEZONE", tt.timezone)

			info, err := store.ScopeInfo(ctx, report.Scope{OrganizationID: organization.ID})
			suite.Require().Nil(err)
			suite.Assert().Equal(tt.created, info.Created)

			info, err = store.ScopeInfo(ctx, report.Scope{OrganizationID: organization.ID, SiteID: site.ID})
			suite.Require().Nil(err)
			suite.Assert().Equal(tt.created, info.Created)
		})
	}
}

func (suite *TestSuiteStandard) TestStoreReport() {
	f := suite.createStoreFixture()

	service := report.NewService(models.NewStore(models.DB), nil, "en")
	r, err := service.Rollup(context.Background(), report.Scope{OrganizationID: f.organization.ID, SiteID: f.site.ID})
	suite.Require().Nil(err)

	suite.Assert().Equal("500", r.Income.String())
	suite.Assert().Equal("250", r.TotalCost.String())
	suite.Assert().Equal("25", r.BudgetUsedPercent.String())
}
