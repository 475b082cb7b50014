package models_test

import (
	"github.com/cashplanner/backend/internal/models"
)

func (suite *TestSuiteStandard) TestCashflowEventUnknownSource() {
	account := suite.createTestAccount(models.Account{})

	err := models.DB.Create(&models.CashflowEvent{
		Date:      date(2026, 2, 1),
		AmountYen: -1000,
		AccountID: account.ID,
		Source:    "lottery",
	}).Error

	suite.Assert().ErrorIs(err, models.ErrEventSourceUnknown)
}

func (suite *TestSuiteStandard) TestCashflowEventDefaults() {
	account := suite.createTestAccount(models.Account{})

	event := suite.createTestCashflowEvent(models.CashflowEvent{
		Date:      date(2026, 2, 1),
		AmountYen: -1000,
		AccountID: account.ID,
		Source:    models.SourceOneOff,
	})

	suite.Assert().Equal(models.StatusExpected, event.Status)
	suite.Assert().NotZero(event.Sequence)
}

func (suite *TestSuiteStandard) TestCashflowEventSequenceIncreases() {
	account := suite.createTestAccount(models.Account{})

	first := suite.createTestCashflowEvent(models.CashflowEvent{
		Date:      date(2026, 2, 1),
		AmountYen: 1000,
		AccountID: account.ID,
		Source:    models.SourceOneOff,
	})
	second := suite.createTestCashflowEvent(models.CashflowEvent{
		Date:      date(2026, 2, 1),
		AmountYen: 2000,
		AccountID: account.ID,
		Source:    models.SourceOneOff,
	})

	suite.Assert().Greater(second.Sequence, first.Sequence)
}

func (suite *TestSuiteStandard) TestCashflowEventDerived() {
	suite.Assert().True(models.CashflowEvent{Source: models.SourcePlan}.Derived())
	suite.Assert().True(models.CashflowEvent{Source: models.SourceCard}.Derived())
	suite.Assert().False(models.CashflowEvent{Source: models.SourceOneOff}.Derived())
	suite.Assert().False(models.CashflowEvent{Source: models.SourceTransfer}.Derived())
}
