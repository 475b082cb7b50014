// Package amortize computes monthly dues for revolving balances and
// fixed installment plans.
package amortize

import (
	"errors"

	"github.com/cashplanner/backend/internal/types"
	"github.com/google/uuid"
)

var (
	ErrNonPositiveAmount = errors.New("schedule amounts must be positive")
	ErrNonPositiveMonths = errors.New("installment months must be positive")
)

// Revolving is a fixed-payment payoff of a remaining balance. The final
// payment may be smaller than the nominal monthly payment.
type Revolving struct {
	ID             uuid.UUID
	CardID         uuid.UUID
	StartMonth     types.Month
	Remaining      int64
	MonthlyPayment int64
	Note           string
}

// DueInMonth returns the amount due for the given month, zero before the
// start month and once the balance is paid off.
func (r Revolving) DueInMonth(month types.Month) int64 {
	offset := month.MonthsSince(r.StartMonth)
	if offset < 0 {
		return 0
	}

	paid := r.MonthlyPayment * int64(offset)
	if paid >= r.Remaining {
		return 0
	}

	left := r.Remaining - paid
	if left < r.MonthlyPayment {
		return left
	}

	return r.MonthlyPayment
}

// Installment splits a total into a fixed number of equal monthly shares.
// The remainder of the division is paid one unit at a time with the
// earliest shares, so the shares always sum to the total exactly.
type Installment struct {
	ID         uuid.UUID
	CardID     uuid.UUID
	StartMonth types.Month
	Months     int
	Total      int64
	Note       string
}

// DueInMonth returns the share due for the given month, zero outside
// [start, start+months).
func (i Installment) DueInMonth(month types.Month) int64 {
	offset := month.MonthsSince(i.StartMonth)
	if offset < 0 || offset >= i.Months {
		return 0
	}

	months := int64(i.Months)
	share := i.Total / months
	if int64(offset) < i.Total%months {
		share++
	}

	return share
}
