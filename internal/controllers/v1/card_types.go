package v1

import (
	"time"

	"github.com/cashplanner/backend/internal/models"
	"github.com/google/uuid"
)

type CardEditable struct {
	Name             string     `json:"name" example:"Rakuten Card"`                                     // Name of the card
	ClosingDay       int        `json:"closingDay" example:"15"`                                         // Day of month the billing period closes, clamped to the month length
	PaymentDay       int        `json:"paymentDay" example:"27"`                                         // Day of month the withdrawal happens, clamped to the month length
	PaymentAccountID uuid.UUID  `json:"paymentAccountId" example:"f9e873c2-fb96-4367-bfb6-7ecd9bf4a6b5"` // The account the withdrawal is debited from
	EffectiveStart   *time.Time `json:"effectiveStart" example:"2026-01-01T00:00:00Z"`                   // Start of the validity window
	EffectiveEnd     *time.Time `json:"effectiveEnd" example:"2026-12-31T00:00:00Z"`                     // End of the validity window. Null means the card is open
}

func (editable CardEditable) model() models.Card {
	return models.Card{
		Name:             editable.Name,
		ClosingDay:       editable.ClosingDay,
		PaymentDay:       editable.PaymentDay,
		PaymentAccountID: editable.PaymentAccountID,
		EffectiveStart:   editable.EffectiveStart,
		EffectiveEnd:     editable.EffectiveEnd,
	}
}

type CardListResponse struct {
	Data  []Card  `json:"data"`                                                          // List of cards
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CardCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []CardResponse `json:"data"`                                                          // List of created cards
}

func (r *CardCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, CardResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CardResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this card
	Data  *Card   `json:"data"`                                                          // The card data, if creation was successful
}

// Card is the API representation of a card.
type Card struct {
	models.DefaultModel
	CardEditable
}

func newCard(model models.Card) Card {
	return Card{
		DefaultModel: model.DefaultModel,
		CardEditable: CardEditable{
			Name:             model.Name,
			ClosingDay:       model.ClosingDay,
			PaymentDay:       model.PaymentDay,
			PaymentAccountID: model.PaymentAccountID,
			EffectiveStart:   model.EffectiveStart,
			EffectiveEnd:     model.EffectiveEnd,
		},
	}
}
