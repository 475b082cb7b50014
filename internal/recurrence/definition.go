// Package recurrence resolves recurring definitions to concrete
// occurrence dates.
package recurrence

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Frequency is how often a recurring definition produces an occurrence.
type Frequency string

const (
	Monthly         Frequency = "monthly"
	Yearly          Frequency = "yearly"
	MonthlyInterval Frequency = "monthly_interval"
	WeeklyInterval  Frequency = "weekly_interval"
)

// Settlement is how an occurrence is paid.
type Settlement string

const (
	// DirectDebit occurrences are debited from an account directly.
	DirectDebit Settlement = "account"
	// CardRouted occurrences accumulate on a card and settle with its
	// withdrawal.
	CardRouted Settlement = "card"
)

var ErrUnknownFrequency = errors.New("unknown frequency")

// Definition is the shared shape of all recurring definitions. Plans,
// subscriptions and variable recurring payments all adapt into it so that
// resolution has exactly one code path.
type Definition struct {
	ID uuid.UUID

	// Amount is signed: positive for income, negative for expenses.
	Amount int64

	Frequency      Frequency
	Day            int        // anchor day of month, 1-31, clamped to month length
	Month          time.Month // anchor month, yearly only
	IntervalMonths int        // monthly_interval only
	IntervalWeeks  int        // weekly_interval only

	// Anchor is the anchor date for weekly_interval and the anchor month
	// for monthly_interval.
	Anchor time.Time

	// Validity window, inclusive. A zero EffectiveEnd means still active.
	EffectiveStart time.Time
	EffectiveEnd   time.Time

	Settlement Settlement
	AccountID  uuid.UUID
	CardID     uuid.UUID
}

// ActiveOn reports whether the definition's validity window contains t.
func (d Definition) ActiveOn(t time.Time) bool {
	if !d.EffectiveStart.IsZero() && t.Before(d.EffectiveStart) {
		return false
	}
	if !d.EffectiveEnd.IsZero() && t.After(d.EffectiveEnd) {
		return false
	}

	return true
}
