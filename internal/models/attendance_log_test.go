package models_test

import (
	"github.com/shopspring/decimal"
	"github.com/sitebook/backend/internal/finance"
	"github.com/sitebook/backend/internal/models"
)

func (suite *TestSuiteStandard) TestAttendanceLogRateSnapshot() {
	organization := suite.createTestOrganization(models.Organization{})
	site := suite.createTestSite(models.Site{OrganizationID: organization.ID, Name: "Main Street"})
	worker := suite.createTestWorker(models.Worker{OrganizationID: organization.ID, Name: "Anna", HourlyRate: decimal.NewNullDecimal(d("20"))})

	log := suite.createTestAttendanceLog(models.AttendanceLog{SiteID: site.ID, WorkerID: worker.ID, Hours: d("5")})
	suite.Assert().Equal(finance.Hourly, log.PaymentType, "payment type must default to hourly")
	suite.Require().True(log.HourlyRateSnapshot.Valid)
	suite.Assert().Equal("20", log.HourlyRateSnapshot.Decimal.String())

	// A later rate change does not affect existing entries
	worker.HourlyRate = decimal.NewNullDecimal(d("30"))
	suite.Require().Nil(models.DB.Save(&worker).Error)

	var loaded models.AttendanceLog
	suite.Require().Nil(models.DB.Preload("Worker").First(&loaded, log.ID).Error)
	suite.Assert().Equal("20", loaded.HourlyRateSnapshot.Decimal.String())
	suite.Assert().Equal("100", finance.LaborCost(loaded.Record()).String())

	// Explicit snapshots are kept
	explicit := suite.createTestAttendanceLog(models.AttendanceLog{SiteID: site.ID, WorkerID: worker.ID, Hours: d("1"), HourlyRateSnapshot: decimal.NewNullDecimal(d("15"))})
	suite.Assert().Equal("15", explicit.HourlyRateSnapshot.Decimal.String())

	// Fixed entries get no snapshot
	fixed := suite.createTestAttendanceLog(models.AttendanceLog{SiteID: site.ID, WorkerID: worker.ID, PaymentType: finance.Fixed, FixedAmount: d("300")})
	suite.Assert().False(fixed.HourlyRateSnapshot.Valid)
}

func (suite *TestSuiteStandard) TestAttendanceLogWorkerWithoutRate() {
	organization := suite.createTestOrganization(models.Organization{})
	site := suite.createTestSite(models.Site{OrganizationID: organization.ID, Name: "Main Street"})
	worker := suite.createTestWorker(models.Worker{OrganizationID: organization.ID, Name: "Anna"})

	log := suite.createTestAttendanceLog(models.AttendanceLog{SiteID: site.ID, WorkerID: worker.ID, Hours: d("5")})
	suite.Assert().False(log.HourlyRateSnapshot.Valid)

	// Once the worker has a rate, the entry uses it
	worker.HourlyRate = decimal.NewNullDecimal(d("20"))
	suite.Require().Nil(models.DB.Save(&worker).Error)

	var loaded models.AttendanceLog
	suite.Require().Nil(models.DB.Preload("Worker").First(&loaded, log.ID).Error)
	record := loaded.Record()
	suite.Assert().Equal("Anna", record.WorkerName)
	suite.Assert().Equal("100", finance.LaborCost(record).String())
}

func (suite *TestSuiteStandard) TestAttendanceLogValidation() {
	organization := suite.createTestOrganization(models.Organization{})
	site := suite.createTestSite(models.Site{OrganizationID: organization.ID, Name: "Main Street"})
	worker := suite.createTestWorker(models.Worker{OrganizationID: organization.ID, Name: "Anna"})

	other := suite.createTestOrganization(models.Organization{Name: "Other"})
	foreignWorker := suite.createTestWorker(models.Worker{OrganizationID: other.ID, Name: "Piotr"})

	tests := []struct {
		name string
		log  models.AttendanceLog
		err  error
	}{
		{"Negative hours", models.AttendanceLog{SiteID: site.ID, WorkerID: worker.ID, Hours: d("-1")}, models.ErrHoursNegative},
		{"Negative fixed amount", models.AttendanceLog{SiteID: site.ID, WorkerID: worker.ID, PaymentType: finance.Fixed, FixedAmount: d("-1")}, models.ErrAmountNegative},
		{"Unknown payment type", models.AttendanceLog{SiteID: site.ID, WorkerID: worker.ID, PaymentType: "daily"}, models.ErrPaymentTypeInvalid},
		{"Worker of other organization", models.AttendanceLog{SiteID: site.ID, WorkerID: foreignWorker.ID}, models.ErrWorkerOrganizationMismatch},
		{"Unknown worker", models.AttendanceLog{SiteID: site.ID}, models.ErrResourceNotFound},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.Assert().ErrorIs(models.DB.Create(&tt.log).Error, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestWorkerRateNegative() {
	organization := suite.createTestOrganization(models.Organization{})

	err := models.DB.Create(&models.Worker{OrganizationID: organization.ID, Name: "Anna", HourlyRate: decimal.NewNullDecimal(d("-5"))}).Error
	suite.Assert().ErrorIs(err, models.ErrRateNegative)
}
