package models_test

import (
	"github.com/sitebook/backend/internal/models"
)

func (suite *TestSuiteStandard) TestOrganizationBeforeSave() {
	organization := suite.createTestOrganization(models.Organization{
		Name:     " Kowalski ",
		Currency: "pln",
		Locale:   "pl-PL",
	})

	suite.Assert().Equal("Kowalski", organization.Name)
	suite.Assert().Equal("PLN", organization.Currency)
	suite.Assert().Equal("pl-PL", organization.Locale)
}

func (suite *TestSuiteStandard) TestOrganizationLocaleMalformed() {
	err := models.DB.Create(&models.Organization{Name: "Broken", Locale: "not a locale"}).Error
	suite.Assert().ErrorIs(err, models.ErrOrganizationLocaleMalformed)
}
