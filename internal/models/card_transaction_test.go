package models_test

import (
	"github.com/cashplanner/backend/internal/models"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestCardTransactionNoCard() {
	err := models.DB.Create(&models.CardTransaction{
		Date:      date(2026, 1, 20),
		AmountYen: 1200,
		Merchant:  "Konbini",
	}).Error

	suite.Assert().ErrorIs(err, models.ErrTransactionNoCard)
}

func (suite *TestSuiteStandard) TestCardTransactionCardMustExist() {
	err := models.DB.Create(&models.CardTransaction{
		CardID:    uuid.New(),
		Date:      date(2026, 1, 20),
		AmountYen: 1200,
	}).Error

	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestCardTransactionNormalized() {
	account := suite.createTestAccount(models.Account{})
	card := suite.createTestCard(models.Card{Name: "Visa", PaymentAccountID: account.ID})

	transaction := suite.createTestCardTransaction(models.CardTransaction{
		CardID:    card.ID,
		Date:      date(2026, 1, 20),
		AmountYen: 1200,
		Merchant:  "  Konbini ",
		Note:      " groceries ",
	})

	suite.Assert().Equal("Konbini", transaction.Merchant)
	suite.Assert().Equal("groceries", transaction.Note)
}
