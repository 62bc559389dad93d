package models_test

import (
	"github.com/sitebook/backend/internal/finance"
	"github.com/sitebook/backend/internal/models"
)

func (suite *TestSuiteStandard) TestSiteBudgetOnCreate() {
	organization := suite.createTestOrganization(models.Organization{})

	site := suite.createTestSite(models.Site{
		OrganizationID: organization.ID,
		Name:           "  Main Street 5  ",
		BudgetItems: []finance.BudgetLineItem{
			{Label: "Foundation", Amount: d("40")},
			{Label: "Roof", Amount: d("60")},
			{Label: "Refund", Amount: d("-30")},
		},
		VATEnabled: true,
		VATRate:    d("23"),
	})

	suite.Assert().Equal("Main Street 5", site.Name)
	suite.Assert().Equal("123", site.Budget.String())

	var loaded models.Site
	suite.Require().Nil(models.DB.First(&loaded, site.ID).Error)
	suite.Assert().Equal("123", loaded.Budget.String())
	suite.Require().Len(loaded.BudgetItems, 3)
	suite.Assert().Equal("Roof", loaded.BudgetItems[1].Label)

	for _, item := range loaded.BudgetItems {
		suite.Assert().NotEmpty(item.ID, "budget items must get an ID")
	}
}

func (suite *TestSuiteStandard) TestSiteBudgetRecomputedOnSave() {
	organization := suite.createTestOrganization(models.Organization{})
	site := suite.createTestSite(models.Site{
		OrganizationID: organization.ID,
		Name:           "Main Street",
		BudgetItems:    []finance.BudgetLineItem{{Label: "Walls", Amount: d("100")}},
	})
	suite.Assert().Equal("100", site.Budget.String())

	site.VATEnabled = true
	site.VATRate = d("8")
	suite.Require().Nil(models.DB.Save(&site).Error)
	suite.Assert().Equal("108", site.Budget.String())

	breakdown := site.BudgetBreakdown()
	suite.Assert().Equal("100", breakdown.Subtotal.String())
	suite.Assert().Equal("8", breakdown.VATAmount.String())

	site.BudgetItems = nil
	suite.Require().Nil(models.DB.Save(&site).Error)
	suite.Assert().True(site.Budget.IsZero())
}
