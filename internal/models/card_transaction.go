package models

import (
	"strings"
	"time"

	"github.com/cashplanner/backend/internal/billing"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CardTransaction is a raw charge on a card. Expenses are positive,
// refunds negative.
type CardTransaction struct {
	DefaultModel
	CardID    uuid.UUID
	Card      Card `json:"-"`
	Date      time.Time
	AmountYen int64
	Merchant  string
	Note      string

	// ImportHash is the SHA256 hash of a unique combination of statement
	// values, used in duplicate detection for imports. Empty for
	// transactions entered by hand.
	ImportHash string `gorm:"index"`
}

// BeforeSave normalizes the transaction.
func (t *CardTransaction) BeforeSave(_ *gorm.DB) error {
	t.Merchant = strings.TrimSpace(t.Merchant)
	t.Note = strings.TrimSpace(t.Note)
	t.ImportHash = strings.TrimSpace(t.ImportHash)
	t.Date = t.Date.In(time.UTC)

	return nil
}

func (t *CardTransaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	if t.CardID == uuid.Nil {
		return ErrTransactionNoCard
	}

	return tx.First(&Card{}, t.CardID).Error
}

// Billing returns the billing view of the transaction.
func (t CardTransaction) Billing() billing.Transaction {
	return billing.Transaction{
		CardID: t.CardID,
		Date:   t.Date,
		Amount: t.AmountYen,
	}
}
