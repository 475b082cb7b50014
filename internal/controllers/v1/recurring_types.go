package v1

import (
	"time"

	"github.com/cashplanner/backend/internal/models"
	"github.com/google/uuid"
)

// RecurringEditable is the shared recurring shape of plans, subscriptions
// and variable payments.
type RecurringEditable struct {
	Freq           string     `json:"freq" example:"monthly"`                                   // One of monthly, yearly, monthly_interval, weekly_interval
	Day            int        `json:"day" example:"27"`                                         // Billing day of the month, clamped to the month length
	Month          int        `json:"month" example:"12"`                                       // Anchor month, yearly frequency only
	IntervalMonths int        `json:"intervalMonths" example:"2"`                               // Interval in months, monthly_interval only
	IntervalWeeks  int        `json:"intervalWeeks" example:"2"`                                // Interval in weeks, weekly_interval only
	AnchorDate     *time.Time `json:"anchorDate" example:"2026-01-05T00:00:00Z"`                // Anchor date for interval frequencies
	EffectiveStart *time.Time `json:"effectiveStart" example:"2026-01-01T00:00:00Z"`            // Start of the validity window
	EffectiveEnd   *time.Time `json:"effectiveEnd" example:"2026-12-31T00:00:00Z"`              // End of the validity window. Null means still active
	PaymentMethod  string     `json:"paymentMethod" example:"account"`                          // account for direct debit, card to route via a card
	AccountID      *uuid.UUID `json:"accountId" example:"f9e873c2-fb96-4367-bfb6-7ecd9bf4a6b5"` // The account debited, account payment method only
	CardID         *uuid.UUID `json:"cardId" example:"4b9e9d20-5797-4e14-8aad-5e9eb1b894f1"`    // The card charged, card payment method only
}

func (editable RecurringEditable) fields() models.RecurringFields {
	return models.RecurringFields{
		Freq:           editable.Freq,
		Day:            editable.Day,
		Month:          editable.Month,
		IntervalMonths: editable.IntervalMonths,
		IntervalWeeks:  editable.IntervalWeeks,
		AnchorDate:     editable.AnchorDate,
		EffectiveStart: editable.EffectiveStart,
		EffectiveEnd:   editable.EffectiveEnd,
		PaymentMethod:  editable.PaymentMethod,
		AccountID:      editable.AccountID,
		CardID:         editable.CardID,
	}
}

func newRecurringEditable(fields models.RecurringFields) RecurringEditable {
	return RecurringEditable{
		Freq:           fields.Freq,
		Day:            fields.Day,
		Month:          fields.Month,
		IntervalMonths: fields.IntervalMonths,
		IntervalWeeks:  fields.IntervalWeeks,
		AnchorDate:     fields.AnchorDate,
		EffectiveStart: fields.EffectiveStart,
		EffectiveEnd:   fields.EffectiveEnd,
		PaymentMethod:  fields.PaymentMethod,
		AccountID:      fields.AccountID,
		CardID:         fields.CardID,
	}
}
