package models

import (
	"time"

	"github.com/cashplanner/backend/internal/recurrence"
	"github.com/google/uuid"
)

// Payment methods for recurring definitions.
const (
	PaymentMethodAccount = "account"
	PaymentMethodCard    = "card"
)

// RecurringFields is the shared recurring shape of plans, subscriptions
// and variable payments. All three adapt into recurrence.Definition so
// that resolution has exactly one code path.
type RecurringFields struct {
	Freq           string // monthly, yearly, monthly_interval, weekly_interval
	Day            int    // billing day of month, 1-31
	Month          int    // anchor month for yearly, 1-12
	IntervalMonths int    // monthly_interval only
	IntervalWeeks  int    // weekly_interval only

	// AnchorDate anchors weekly_interval and monthly_interval schedules.
	// monthly_interval falls back to the effective start date when unset.
	AnchorDate *time.Time

	// Validity window, inclusive. A nil end means still active.
	EffectiveStart *time.Time
	EffectiveEnd   *time.Time

	PaymentMethod string     // account or card
	AccountID     *uuid.UUID // set for account payment method
	CardID        *uuid.UUID // set for card payment method
}

// validate rejects malformed definitions at the persistence boundary so
// the resolver can assume well-formed input.
func (f RecurringFields) validate() error {
	switch recurrence.Frequency(f.Freq) {
	case recurrence.Monthly, recurrence.Yearly, recurrence.MonthlyInterval:
	case recurrence.WeeklyInterval:
		if f.AnchorDate == nil {
			return ErrDefinitionNoAnchor
		}
	default:
		return ErrDefinitionUnknownFrequency
	}

	switch f.PaymentMethod {
	case PaymentMethodAccount:
		if f.AccountID == nil || *f.AccountID == uuid.Nil {
			return ErrDefinitionNoAccount
		}
	case PaymentMethodCard:
		if f.CardID == nil || *f.CardID == uuid.Nil {
			return ErrDefinitionNoCard
		}
	default:
		return ErrDefinitionUnknownSettlement
	}

	return checkWindow(f.EffectiveStart, f.EffectiveEnd)
}

// definition builds the resolver view with the given signed amount.
func (f RecurringFields) definition(id uuid.UUID, amount int64) recurrence.Definition {
	anchor := deref(f.AnchorDate)
	if anchor.IsZero() {
		anchor = deref(f.EffectiveStart)
	}

	settlement := recurrence.DirectDebit
	var accountID, cardID uuid.UUID
	if f.PaymentMethod == PaymentMethodCard {
		settlement = recurrence.CardRouted
		cardID = *f.CardID
	} else {
		accountID = *f.AccountID
	}

	return recurrence.Definition{
		ID:             id,
		Amount:         amount,
		Frequency:      recurrence.Frequency(f.Freq),
		Day:            f.Day,
		Month:          time.Month(f.Month),
		IntervalMonths: f.IntervalMonths,
		IntervalWeeks:  f.IntervalWeeks,
		Anchor:         anchor,
		EffectiveStart: deref(f.EffectiveStart),
		EffectiveEnd:   deref(f.EffectiveEnd),
		Settlement:     settlement,
		AccountID:      accountID,
		CardID:         cardID,
	}
}
