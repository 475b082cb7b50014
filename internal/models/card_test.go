package models_test

import (
	"github.com/cashplanner/backend/internal/models"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestCardDayOutOfRange() {
	account := suite.createTestAccount(models.Account{})

	for _, card := range []models.Card{
		{Name: "No closing day", ClosingDay: 0, PaymentDay: 27, PaymentAccountID: account.ID},
		{Name: "Closing day too large", ClosingDay: 32, PaymentDay: 27, PaymentAccountID: account.ID},
		{Name: "Payment day too large", ClosingDay: 15, PaymentDay: 32, PaymentAccountID: account.ID},
	} {
		err := models.DB.Create(&card).Error
		suite.Assert().ErrorIs(err, models.ErrCardDayOutOfRange, "Card: %#v", card)
	}
}

func (suite *TestSuiteStandard) TestCardNoPaymentAccount() {
	err := models.DB.Create(&models.Card{
		Name:       "Orphan",
		ClosingDay: 15,
		PaymentDay: 27,
	}).Error

	suite.Assert().ErrorIs(err, models.ErrCardNoPaymentAccount)
}

func (suite *TestSuiteStandard) TestCardPaymentAccountMustExist() {
	err := models.DB.Create(&models.Card{
		Name:             "Dangling",
		ClosingDay:       15,
		PaymentDay:       27,
		PaymentAccountID: uuid.New(),
	}).Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestCardBilling() {
	account := suite.createTestAccount(models.Account{})
	card := suite.createTestCard(models.Card{
		Name:             "Rakuten Card",
		ClosingDay:       31,
		PaymentDay:       27,
		PaymentAccountID: account.ID,
		EffectiveStart:   datePtr(2026, 1, 20),
	})

	view := card.Billing()
	suite.Assert().Equal(card.ID, view.ID)
	suite.Assert().Equal(31, view.ClosingDay)
	suite.Assert().Equal(27, view.PaymentDay)
	suite.Assert().Equal(account.ID, view.PaymentAccountID)
	suite.Assert().Equal(date(2026, 1, 20), view.EffectiveStart)
}
