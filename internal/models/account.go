package models

import (
	"strings"
	"time"

	"github.com/cashplanner/backend/internal/forecast"
	"gorm.io/gorm"
)

// Account represents an asset account, e.g. a bank account. Its balance
// is the balance as of the effective start date, not as of an arbitrary
// forecast start.
type Account struct {
	DefaultModel
	Name       string `gorm:"uniqueIndex:account_name"`
	Note       string
	BalanceYen int64

	// Validity window, inclusive. A nil end means the account is open.
	EffectiveStart *time.Time
	EffectiveEnd   *time.Time
}

// BeforeSave validates the account and trims whitespace from all strings.
func (a *Account) BeforeSave(_ *gorm.DB) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Note = strings.TrimSpace(a.Note)

	return checkWindow(a.EffectiveStart, a.EffectiveEnd)
}

// ActiveOn reports whether the account's validity window contains t.
func (a Account) ActiveOn(t time.Time) bool {
	return activeOn(a.EffectiveStart, a.EffectiveEnd, t)
}

// Forecast returns the simulation view of the account.
func (a Account) Forecast() forecast.Account {
	return forecast.Account{
		ID:             a.ID,
		Name:           a.Name,
		Balance:        a.BalanceYen,
		EffectiveStart: deref(a.EffectiveStart),
		EffectiveEnd:   deref(a.EffectiveEnd),
	}
}
