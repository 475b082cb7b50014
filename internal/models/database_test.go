package models_test

import (
	"github.com/cashplanner/backend/internal/models"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestDBClosedCreate() {
	suite.CloseDB()

	err := models.DB.Create(&models.Account{Name: "Bank"}).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestDBClosedQuery() {
	account := suite.createTestAccount(models.Account{Name: "Bank"})
	suite.CloseDB()

	err := models.DB.First(&models.Account{}, account.ID).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestQueryNotFoundNamesResource() {
	err := models.DB.First(&models.Card{}, uuid.New()).Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Equal("there is no card matching your query", err.Error())
}
