package v1

import (
	"time"

	"github.com/cashplanner/backend/internal/models"
	"github.com/google/uuid"
)

type TransactionEditable struct {
	CardID     uuid.UUID `json:"cardId" example:"4b9e9d20-5797-4e14-8aad-5e9eb1b894f1"` // The card the charge was made on
	Date       time.Time `json:"date" example:"2026-01-20T00:00:00Z"`                   // Date of the charge
	AmountYen  int64     `json:"amountYen" example:"1200"`                              // Amount in whole yen. Positive for charges, negative for refunds
	Merchant   string    `json:"merchant" example:"Seven Eleven"`                       // Merchant of the charge
	Note       string    `json:"note" example:"Lunch"`                                  // Any notes for the charge
	ImportHash string    `json:"importHash" example:""`                                 // Fingerprint set by statement imports, empty for manual charges
}

func (editable TransactionEditable) model() models.CardTransaction {
	return models.CardTransaction{
		CardID:     editable.CardID,
		Date:       editable.Date,
		AmountYen:  editable.AmountYen,
		Merchant:   editable.Merchant,
		Note:       editable.Note,
		ImportHash: editable.ImportHash,
	}
}

type TransactionListResponse struct {
	Data  []Transaction `json:"data"`                                                          // List of transactions
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created transactions
}

func (r *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, TransactionResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                          // The transaction data, if creation was successful
}

// Transaction is the API representation of a card transaction.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
}

func newTransaction(model models.CardTransaction) Transaction {
	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			CardID:     model.CardID,
			Date:       model.Date,
			AmountYen:  model.AmountYen,
			Merchant:   model.Merchant,
			Note:       model.Note,
			ImportHash: model.ImportHash,
		},
	}
}

// TransactionQueryFilter contains the fields that transactions can be filtered with.
type TransactionQueryFilter struct {
	CardID string `form:"card"` // By ID of the card
}
