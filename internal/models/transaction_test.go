package models_test

import (
	"time"

	"github.com/sitebook/backend/internal/finance"
	"github.com/sitebook/backend/internal/models"
	"github.com/sitebook/backend/internal/types"
)

func (suite *TestSuiteStandard) TestTransactionBeforeSave() {
	organization := suite.createTestOrganization(models.Organization{})
	site := suite.createTestSite(models.Site{OrganizationID: organization.ID, Name: "Main Street"})

	tests := []struct {
		name        string
		transaction models.Transaction
		err         error
	}{
		{"Invoice", models.Transaction{Type: finance.Invoice, Amount: d("100")}, nil},
		{"Expense", models.Transaction{Type: finance.Expense, Amount: d("0")}, nil},
		{"Negative amount", models.Transaction{Type: finance.Expense, Amount: d("-1")}, models.ErrAmountNegative},
		{"Unknown type", models.Transaction{Type: "refund", Amount: d("1")}, models.ErrTransactionTypeInvalid},
		{"Missing type", models.Transaction{Amount: d("1")}, models.ErrTransactionTypeInvalid},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			tt.transaction.SiteID = site.ID
			err := models.DB.Create(&tt.transaction).Error
			if tt.err == nil {
				suite.Assert().Nil(err)
				return
			}

			suite.Assert().ErrorIs(err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionDateDefault() {
	suite.T().Setenv("TIMEZONE", "")
	organization := suite.createTestOrganization(models.Organization{})
	site := suite.createTestSite(models.Site{OrganizationID: organization.ID, Name: "Main Street"})

	transaction := suite.createTestTransaction(models.Transaction{SiteID: site.ID, Type: finance.Expense, Amount: d("10"), Note: " Nails "})
	suite.Assert().Equal(types.DateOf(time.Now()), transaction.Date)
	suite.Assert().Equal("Nails", transaction.Note)

	var loaded models.Transaction
	suite.Require().Nil(models.DB.First(&loaded, transaction.ID).Error)
	suite.Assert().Equal(transaction.Date, loaded.Date)
}

// Pacific/Kiritimati is UTC+14 and Etc/GMT+12 is UTC-12, so the current
// calendar date always differs between them.
func (suite *TestSuiteStandard) TestTransactionDateDefaultTimezone() {
	organization := suite.createTestOrganization(models.Organization{})
	site := suite.createTestSite(models.Site{OrganizationID: organization.ID, Name: "Main Street"})

	suite.T().Setenv("TIMEZONE", "Pacific/Kiritimati")
	ahead := suite.createTestTransaction(models.Transaction{SiteID: site.ID, Type: finance.Expense, Amount: d("10")})
	material := suite.createTestMaterial(models.Material{SiteID: site.ID, Name: "Nails", TotalPrice: d("5")})

	suite.T().Setenv("TIMEZONE", "Etc/GMT+12")
	behind := suite.createTestTransaction(models.Transaction{SiteID: site.ID, Type: finance.Expense, Amount: d("10")})

	suite.Assert().True(ahead.Date.After(behind.Date), "%s must be after %s", ahead.Date, behind.Date)
	suite.Assert().Equal(ahead.Date, material.PurchaseDate)
}

func (suite *TestSuiteStandard) TestTransactionRecord() {
	organization := suite.createTestOrganization(models.Organization{})
	site := suite.createTestSite(models.Site{OrganizationID: organization.ID, Name: "Main Street"})

	transaction := suite.createTestTransaction(models.Transaction{SiteID: site.ID, Type: finance.Invoice, Amount: d("12.5"), Date: date("2024-03-01"), IsPaid: true})
	record := transaction.Record()

	suite.Assert().Equal(transaction.ID, record.ID)
	suite.Assert().Equal(site.ID, record.SiteID)
	suite.Assert().Equal(finance.Invoice, record.Type)
	suite.Assert().Equal("12.5", record.Amount.String())
	suite.Assert().Equal(date("2024-03-01"), record.Date)
	suite.Assert().True(record.IsPaid)
}
