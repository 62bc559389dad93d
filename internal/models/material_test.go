package models_test

import (
	"github.com/sitebook/backend/internal/models"
)

func (suite *TestSuiteStandard) TestMaterialTotalPrice() {
	organization := suite.createTestOrganization(models.Organization{})
	site := suite.createTestSite(models.Site{OrganizationID: organization.ID, Name: "Main Street"})

	derived := suite.createTestMaterial(models.Material{SiteID: site.ID, Name: "Bricks", Quantity: d("3"), UnitPrice: d("33.335")})
	suite.Assert().Equal("100.01", derived.TotalPrice.String())

	explicit := suite.createTestMaterial(models.Material{SiteID: site.ID, Name: "Cement", Quantity: d("3"), UnitPrice: d("10"), TotalPrice: d("25")})
	suite.Assert().Equal("25", explicit.TotalPrice.String(), "an explicit total price must be kept, e.g. for discounts")

	record := derived.Record()
	suite.Assert().Equal("100.01", record.TotalPrice.String())
	suite.Assert().Equal(derived.PurchaseDate, record.PurchaseDate)
}

func (suite *TestSuiteStandard) TestMaterialNegative() {
	organization := suite.createTestOrganization(models.Organization{})
	site := suite.createTestSite(models.Site{OrganizationID: organization.ID, Name: "Main Street"})

	for _, m := range []models.Material{
		{SiteID: site.ID, Quantity: d("-1"), UnitPrice: d("1")},
		{SiteID: site.ID, Quantity: d("1"), UnitPrice: d("-1")},
		{SiteID: site.ID, TotalPrice: d("-1")},
	} {
		suite.Assert().ErrorIs(models.DB.Create(&m).Error, models.ErrAmountNegative)
	}
}
