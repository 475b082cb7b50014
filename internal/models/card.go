package models

import (
	"strings"
	"time"

	"github.com/cashplanner/backend/internal/billing"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Card represents a credit card with its billing cycle configuration.
// Charges accumulated between two closing days are debited from the
// payment account on the payment day of the following month.
type Card struct {
	DefaultModel
	Name             string
	ClosingDay       int     // 1-31, clamped to month length
	PaymentDay       int     // 1-31, clamped to month length
	PaymentAccountID uuid.UUID
	PaymentAccount   Account `json:"-"`

	// Validity window, inclusive. A nil end means the card is open.
	EffectiveStart *time.Time
	EffectiveEnd   *time.Time
}

// BeforeSave validates the billing day configuration.
func (c *Card) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)

	if c.ClosingDay < 1 || c.ClosingDay > 31 || c.PaymentDay < 1 || c.PaymentDay > 31 {
		return ErrCardDayOutOfRange
	}
	if c.PaymentAccountID == uuid.Nil {
		return ErrCardNoPaymentAccount
	}

	return checkWindow(c.EffectiveStart, c.EffectiveEnd)
}

func (c *Card) BeforeCreate(tx *gorm.DB) error {
	_ = c.DefaultModel.BeforeCreate(tx)

	if c.PaymentAccountID == uuid.Nil {
		return ErrCardNoPaymentAccount
	}

	return c.checkIntegrity(tx, *c)
}

func (c *Card) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("PaymentAccountID") {
		toSave := tx.Statement.Dest.(Card)
		return c.checkIntegrity(tx, toSave)
	}

	return nil
}

// checkIntegrity verifies that the payment account exists.
func (c *Card) checkIntegrity(tx *gorm.DB, toSave Card) error {
	return tx.First(&Account{}, toSave.PaymentAccountID).Error
}

// ActiveOn reports whether the card's validity window contains t.
func (c Card) ActiveOn(t time.Time) bool {
	return activeOn(c.EffectiveStart, c.EffectiveEnd, t)
}

// Billing returns the billing view of the card.
func (c Card) Billing() billing.Card {
	return billing.Card{
		ID:               c.ID,
		Name:             c.Name,
		ClosingDay:       c.ClosingDay,
		PaymentDay:       c.PaymentDay,
		PaymentAccountID: c.PaymentAccountID,
		EffectiveStart:   deref(c.EffectiveStart),
		EffectiveEnd:     deref(c.EffectiveEnd),
	}
}
