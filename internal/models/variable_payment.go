package models

import (
	"strings"
	"time"

	"github.com/cashplanner/backend/internal/recurrence"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VariablePayment is a recurring expense whose exact amount varies per
// occurrence, e.g. a utility bill. The estimated amount is used until a
// confirmation for a specific occurrence replaces it.
type VariablePayment struct {
	DefaultModel
	Name               string
	EstimatedAmountYen int64 // always stored as a magnitude
	RecurringFields
}

// BeforeSave validates the variable payment.
func (v *VariablePayment) BeforeSave(_ *gorm.DB) error {
	v.Name = strings.TrimSpace(v.Name)

	if v.EstimatedAmountYen < 0 {
		v.EstimatedAmountYen = -v.EstimatedAmountYen
	}

	return v.RecurringFields.validate()
}

// Definition returns the resolver view of the variable payment with the
// estimated amount. Variable payments are always expenses.
func (v VariablePayment) Definition() recurrence.Definition {
	return v.RecurringFields.definition(v.ID, -v.EstimatedAmountYen)
}

// VariableConfirmation replaces the estimate of one specific occurrence
// of a variable payment, keyed by payment and occurrence date.
type VariableConfirmation struct {
	DefaultModel
	VariablePaymentID  uuid.UUID       `gorm:"uniqueIndex:confirmation_payment_date"`
	VariablePayment    VariablePayment `json:"-"`
	OccurrenceDate     time.Time       `gorm:"uniqueIndex:confirmation_payment_date"`
	ConfirmedAmountYen int64           // magnitude; the occurrence keeps its expense sign
}

// BeforeSave normalizes the confirmation.
func (c *VariableConfirmation) BeforeSave(_ *gorm.DB) error {
	if c.ConfirmedAmountYen < 0 {
		c.ConfirmedAmountYen = -c.ConfirmedAmountYen
	}

	c.OccurrenceDate = c.OccurrenceDate.In(time.UTC)
	return nil
}

func (c *VariableConfirmation) BeforeCreate(tx *gorm.DB) error {
	_ = c.DefaultModel.BeforeCreate(tx)

	if c.VariablePaymentID == uuid.Nil {
		return ErrConfirmationNoPayment
	}

	return tx.First(&VariablePayment{}, c.VariablePaymentID).Error
}
