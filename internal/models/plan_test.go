package models_test

import (
	"github.com/cashplanner/backend/internal/models"
	"github.com/cashplanner/backend/internal/recurrence"
)

func (suite *TestSuiteStandard) TestPlanUnknownFrequency() {
	account := suite.createTestAccount(models.Account{})

	err := models.DB.Create(&models.Plan{
		Title:     "Broken",
		Type:      models.PlanTypeExpense,
		AmountYen: 1000,
		RecurringFields: models.RecurringFields{
			Freq:          "fortnightly",
			Day:           1,
			PaymentMethod: models.PaymentMethodAccount,
			AccountID:     &account.ID,
		},
	}).Error

	suite.Assert().ErrorIs(err, models.ErrDefinitionUnknownFrequency)
}

func (suite *TestSuiteStandard) TestPlanWeeklyNeedsAnchor() {
	account := suite.createTestAccount(models.Account{})

	err := models.DB.Create(&models.Plan{
		Title:     "Gym",
		Type:      models.PlanTypeExpense,
		AmountYen: 1000,
		RecurringFields: models.RecurringFields{
			Freq:          string(recurrence.WeeklyInterval),
			IntervalWeeks: 2,
			PaymentMethod: models.PaymentMethodAccount,
			AccountID:     &account.ID,
		},
	}).Error

	suite.Assert().ErrorIs(err, models.ErrDefinitionNoAnchor)
}

func (suite *TestSuiteStandard) TestPlanNeedsPaymentReference() {
	err := models.DB.Create(&models.Plan{
		Title:     "No account",
		Type:      models.PlanTypeIncome,
		AmountYen: 280000,
		RecurringFields: models.RecurringFields{
			Freq:          string(recurrence.Monthly),
			Day:           25,
			PaymentMethod: models.PaymentMethodAccount,
		},
	}).Error

	suite.Assert().ErrorIs(err, models.ErrDefinitionNoAccount)

	err = models.DB.Create(&models.Plan{
		Title:     "No card",
		Type:      models.PlanTypeExpense,
		AmountYen: 500,
		RecurringFields: models.RecurringFields{
			Freq:          string(recurrence.Monthly),
			Day:           1,
			PaymentMethod: models.PaymentMethodCard,
		},
	}).Error

	suite.Assert().ErrorIs(err, models.ErrDefinitionNoCard)
}

func (suite *TestSuiteStandard) TestPlanAmountNormalized() {
	account := suite.createTestAccount(models.Account{})

	plan := suite.createTestPlan(models.Plan{
		Title:     "Rent",
		Type:      models.PlanTypeExpense,
		AmountYen: -85000,
		RecurringFields: models.RecurringFields{
			Freq:          string(recurrence.Monthly),
			Day:           27,
			PaymentMethod: models.PaymentMethodAccount,
			AccountID:     &account.ID,
		},
	})

	suite.Assert().Equal(int64(85000), plan.AmountYen)
}

func (suite *TestSuiteStandard) TestPlanDefinitionSign() {
	account := suite.createTestAccount(models.Account{})

	income := suite.createTestPlan(models.Plan{
		Title:     "Salary",
		Type:      models.PlanTypeIncome,
		AmountYen: 280000,
		RecurringFields: models.RecurringFields{
			Freq:          string(recurrence.Monthly),
			Day:           25,
			PaymentMethod: models.PaymentMethodAccount,
			AccountID:     &account.ID,
		},
	})
	suite.Assert().Equal(int64(280000), income.Definition().Amount)

	expense := suite.createTestPlan(models.Plan{
		Title:     "Rent",
		Type:      models.PlanTypeExpense,
		AmountYen: 85000,
		RecurringFields: models.RecurringFields{
			Freq:          string(recurrence.Monthly),
			Day:           27,
			PaymentMethod: models.PaymentMethodAccount,
			AccountID:     &account.ID,
		},
	})
	suite.Assert().Equal(int64(-85000), expense.Definition().Amount)
}

func (suite *TestSuiteStandard) TestSubscriptionDefinitionIsExpense() {
	account := suite.createTestAccount(models.Account{})

	subscription := suite.createTestSubscription(models.Subscription{
		Name:      "Streaming",
		AmountYen: 1490,
		RecurringFields: models.RecurringFields{
			Freq:          string(recurrence.Monthly),
			Day:           10,
			PaymentMethod: models.PaymentMethodAccount,
			AccountID:     &account.ID,
		},
	})

	def := subscription.Definition()
	suite.Assert().Equal(int64(-1490), def.Amount)
	suite.Assert().Equal(recurrence.DirectDebit, def.Settlement)
}
