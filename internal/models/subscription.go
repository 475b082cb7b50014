package models

import (
	"strings"

	"github.com/cashplanner/backend/internal/recurrence"
	"gorm.io/gorm"
)

// Subscription is a recurring fixed-amount expense, e.g. a streaming
// service.
type Subscription struct {
	DefaultModel
	Name      string
	AmountYen int64 // always stored as a magnitude
	RecurringFields
}

// BeforeSave validates the subscription.
func (s *Subscription) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)

	if s.AmountYen < 0 {
		s.AmountYen = -s.AmountYen
	}

	return s.RecurringFields.validate()
}

// Definition returns the resolver view of the subscription. Subscriptions
// are always expenses.
func (s Subscription) Definition() recurrence.Definition {
	return s.RecurringFields.definition(s.ID, -s.AmountYen)
}
