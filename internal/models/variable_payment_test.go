package models_test

import (
	"github.com/cashplanner/backend/internal/models"
	"github.com/cashplanner/backend/internal/recurrence"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) variablePayment() models.VariablePayment {
	account := suite.createTestAccount(models.Account{})

	return suite.createTestVariablePayment(models.VariablePayment{
		Name:               "Electricity",
		EstimatedAmountYen: 4500,
		RecurringFields: models.RecurringFields{
			Freq:          string(recurrence.Monthly),
			Day:           5,
			PaymentMethod: models.PaymentMethodAccount,
			AccountID:     &account.ID,
		},
	})
}

func (suite *TestSuiteStandard) TestVariablePaymentDefinition() {
	payment := suite.variablePayment()

	def := payment.Definition()
	suite.Assert().Equal(int64(-4500), def.Amount)
	suite.Assert().Equal(payment.ID, def.ID)
}

func (suite *TestSuiteStandard) TestVariableConfirmationUnique() {
	payment := suite.variablePayment()

	confirmation := models.VariableConfirmation{
		VariablePaymentID:  payment.ID,
		OccurrenceDate:     date(2026, 2, 5),
		ConfirmedAmountYen: 4321,
	}
	suite.Require().NoError(models.DB.Create(&confirmation).Error)

	duplicate := models.VariableConfirmation{
		VariablePaymentID:  payment.ID,
		OccurrenceDate:     date(2026, 2, 5),
		ConfirmedAmountYen: 9999,
	}
	suite.Assert().ErrorIs(models.DB.Create(&duplicate).Error, models.ErrConfirmationNotUnique)
}

func (suite *TestSuiteStandard) TestVariableConfirmationNormalized() {
	payment := suite.variablePayment()

	confirmation := models.VariableConfirmation{
		VariablePaymentID:  payment.ID,
		OccurrenceDate:     date(2026, 3, 5),
		ConfirmedAmountYen: -4100,
	}
	suite.Require().NoError(models.DB.Create(&confirmation).Error)

	suite.Assert().Equal(int64(4100), confirmation.ConfirmedAmountYen)
}

func (suite *TestSuiteStandard) TestVariableConfirmationPaymentMustExist() {
	err := models.DB.Create(&models.VariableConfirmation{
		VariablePaymentID:  uuid.New(),
		OccurrenceDate:     date(2026, 2, 5),
		ConfirmedAmountYen: 1000,
	}).Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestVariableConfirmationNoPayment() {
	err := models.DB.Create(&models.VariableConfirmation{
		OccurrenceDate:     date(2026, 2, 5),
		ConfirmedAmountYen: 1000,
	}).Error

	suite.Assert().ErrorIs(err, models.ErrConfirmationNoPayment)
}
