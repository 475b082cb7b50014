package models_test

import (
	"github.com/cashplanner/backend/internal/models"
)

func (suite *TestSuiteStandard) TestAccountTrimWhitespace() {
	account := suite.createTestAccount(models.Account{
		Name: " Main Bank ",
		Note: " salary account\t",
	})

	suite.Assert().Equal("Main Bank", account.Name)
	suite.Assert().Equal("salary account", account.Note)
}

func (suite *TestSuiteStandard) TestAccountWindowEndsBeforeStart() {
	err := models.DB.Create(&models.Account{
		Name:           "Broken",
		EffectiveStart: datePtr(2026, 3, 1),
		EffectiveEnd:   datePtr(2026, 1, 1),
	}).Error

	suite.Assert().ErrorIs(err, models.ErrWindowEndsBeforeStart)
}

func (suite *TestSuiteStandard) TestAccountActiveOn() {
	account := suite.createTestAccount(models.Account{
		EffectiveStart: datePtr(2026, 1, 10),
		EffectiveEnd:   datePtr(2026, 2, 10),
	})

	suite.Assert().False(account.ActiveOn(date(2026, 1, 9)))
	suite.Assert().True(account.ActiveOn(date(2026, 1, 10)))
	suite.Assert().True(account.ActiveOn(date(2026, 2, 10)))
	suite.Assert().False(account.ActiveOn(date(2026, 2, 11)))

	open := suite.createTestAccount(models.Account{})
	suite.Assert().True(open.ActiveOn(date(2030, 12, 31)))
}

func (suite *TestSuiteStandard) TestAccountForecast() {
	account := suite.createTestAccount(models.Account{
		Name:           "Checking",
		BalanceYen:     250000,
		EffectiveStart: datePtr(2026, 1, 1),
	})

	view := account.Forecast()
	suite.Assert().Equal(account.ID, view.ID)
	suite.Assert().Equal(int64(250000), view.Balance)
	suite.Assert().Equal(date(2026, 1, 1), view.EffectiveStart)
	suite.Assert().True(view.EffectiveEnd.IsZero())
}
