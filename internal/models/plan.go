package models

import (
	"strings"

	"github.com/cashplanner/backend/internal/recurrence"
	"gorm.io/gorm"
)

// Plan types.
const (
	PlanTypeIncome  = "income"
	PlanTypeExpense = "expense"
)

// Plan is a recurring income or expense with a nominal amount, e.g. a
// salary or rent.
type Plan struct {
	DefaultModel
	Title     string
	Type      string // income or expense
	AmountYen int64  // nominal amount, always stored as a magnitude
	RecurringFields
}

// BeforeSave validates the plan.
func (p *Plan) BeforeSave(_ *gorm.DB) error {
	p.Title = strings.TrimSpace(p.Title)

	if p.Type != PlanTypeIncome && p.Type != PlanTypeExpense {
		p.Type = PlanTypeExpense
	}
	if p.AmountYen < 0 {
		p.AmountYen = -p.AmountYen
	}

	return p.RecurringFields.validate()
}

// Definition returns the resolver view of the plan. Incomes are positive,
// expenses negative.
func (p Plan) Definition() recurrence.Definition {
	amount := p.AmountYen
	if p.Type != PlanTypeIncome {
		amount = -amount
	}

	return p.RecurringFields.definition(p.ID, amount)
}
