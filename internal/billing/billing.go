// Package billing computes card billing periods and the amounts settling
// on a card's withdrawal date.
package billing

import (
	"time"

	"github.com/cashplanner/backend/internal/amortize"
	"github.com/cashplanner/backend/internal/calendar"
	"github.com/cashplanner/backend/internal/recurrence"
	"github.com/cashplanner/backend/internal/types"
	"github.com/google/uuid"
)

// Card is the billing configuration of a credit card.
type Card struct {
	ID               uuid.UUID
	Name             string
	ClosingDay       int // 1-31, clamped to month length
	PaymentDay       int // 1-31, clamped to month length
	PaymentAccountID uuid.UUID

	// Validity window, inclusive. A zero EffectiveEnd means still active.
	EffectiveStart time.Time
	EffectiveEnd   time.Time
}

// ActiveOn reports whether the card's validity window contains t.
func (c Card) ActiveOn(t time.Time) bool {
	if !c.EffectiveStart.IsZero() && t.Before(c.EffectiveStart) {
		return false
	}
	if !c.EffectiveEnd.IsZero() && t.After(c.EffectiveEnd) {
		return false
	}

	return true
}

// clipToWindow intersects [start, end] with the card's validity window.
// ok is false when they do not overlap at all.
func (c Card) clipToWindow(start, end time.Time) (lo, hi time.Time, ok bool) {
	lo, hi = start, end
	if !c.EffectiveStart.IsZero() && lo.Before(c.EffectiveStart) {
		lo = c.EffectiveStart
	}
	if !c.EffectiveEnd.IsZero() && hi.After(c.EffectiveEnd) {
		hi = c.EffectiveEnd
	}

	return lo, hi, !lo.After(hi)
}

// Transaction is a raw card transaction. Expenses are positive, refunds
// negative.
type Transaction struct {
	CardID uuid.UUID
	Date   time.Time
	Amount int64
}

// Period is one billing cycle of a card: the charges in [Start, End] are
// debited from the payment account on WithdrawDate.
type Period struct {
	Start        time.Time
	End          time.Time
	WithdrawDate time.Time
}

// PeriodForWithdrawMonth computes the billing period settled in the given
// withdrawal month. The period ends on the card's most recent closing
// date on or before the nominal payment date: in the withdrawal month
// itself when the closing day falls before the payment day, otherwise in
// the month before. It starts the day after the previous period's end, so
// consecutive periods are contiguous and non-overlapping. The withdrawal
// date is the payment day clamped into the withdrawal month and shifted
// forward to a business day; settlement is always treated as an expense.
func PeriodForWithdrawMonth(cal calendar.Calendar, card Card, withdrawMonth types.Month) Period {
	endMonth := withdrawMonth
	if card.ClosingDay >= card.PaymentDay {
		endMonth = withdrawMonth.AddDate(0, -1)
	}

	end := endMonth.Day(card.ClosingDay)
	prevEnd := endMonth.AddDate(0, -1).Day(card.ClosingDay)

	withdraw := withdrawMonth.Day(card.PaymentDay)
	withdraw = cal.ApplyBusinessDayRule(withdraw, calendar.Expense)

	return Period{
		Start:        prevEnd.AddDate(0, 0, 1),
		End:          end,
		WithdrawDate: withdraw,
	}
}

// ConfirmationKey identifies one occurrence of a variable recurring
// payment.
type ConfirmationKey struct {
	DefinitionID uuid.UUID
	Date         string // 2006-01-02
}

// NewConfirmationKey builds the lookup key for a definition occurrence.
func NewConfirmationKey(definitionID uuid.UUID, date time.Time) ConfirmationKey {
	return ConfirmationKey{DefinitionID: definitionID, Date: date.Format("2006-01-02")}
}

// Inputs is the snapshot a withdrawal aggregation computes over. All
// slices are already filtered to the card in question.
type Inputs struct {
	Transactions  []Transaction
	Definitions   []recurrence.Definition   // card-routed definitions
	Confirmations map[ConfirmationKey]int64 // confirmed amounts per occurrence
	Revolving     []amortize.Revolving
	Installments  []amortize.Installment
}

// AmountDueForWithdraw returns the total settling on the card's
// withdrawal date for the given month, as a non-negative magnitude.
// Raw transactions and routed definition occurrences only count inside
// the billing period clipped to the card's validity window; revolving and
// installment dues are keyed by the withdrawal month directly.
func AmountDueForWithdraw(cal calendar.Calendar, card Card, withdrawMonth types.Month, in Inputs) int64 {
	period := PeriodForWithdrawMonth(cal, card, withdrawMonth)

	var total int64
	if lo, hi, ok := card.clipToWindow(period.Start, period.End); ok {
		for _, t := range in.Transactions {
			if t.Date.Before(lo) || t.Date.After(hi) {
				continue
			}

			total += t.Amount
		}

		for _, d := range in.Definitions {
			for _, occurrence := range recurrence.OccurrencesInRange(cal, d, lo, hi) {
				amount := d.Amount
				if confirmed, ok := in.Confirmations[NewConfirmationKey(d.ID, occurrence)]; ok {
					amount = confirmed
				}
				if amount < 0 {
					amount = -amount
				}

				total += amount
			}
		}
	}

	for _, r := range in.Revolving {
		total += r.DueInMonth(withdrawMonth)
	}
	for _, i := range in.Installments {
		total += i.DueInMonth(withdrawMonth)
	}

	if total < 0 {
		return 0
	}

	return total
}
