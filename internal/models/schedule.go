package models

import (
	"strings"

	"github.com/cashplanner/backend/internal/amortize"
	"github.com/cashplanner/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RevolvingBalance is a card balance paid off with a fixed monthly
// payment. The final payment may be smaller than the nominal amount.
type RevolvingBalance struct {
	DefaultModel
	CardID            uuid.UUID
	Card              Card `json:"-"`
	StartMonth        types.Month
	RemainingYen      int64
	MonthlyPaymentYen int64
	Note              string
}

// BeforeSave validates the schedule.
func (r *RevolvingBalance) BeforeSave(_ *gorm.DB) error {
	r.Note = strings.TrimSpace(r.Note)

	if r.RemainingYen <= 0 || r.MonthlyPaymentYen <= 0 {
		return ErrScheduleAmountNotPositive
	}

	return nil
}

func (r *RevolvingBalance) BeforeCreate(tx *gorm.DB) error {
	_ = r.DefaultModel.BeforeCreate(tx)

	if r.CardID == uuid.Nil {
		return ErrScheduleNoCard
	}

	return tx.First(&Card{}, r.CardID).Error
}

// Amortize returns the calculator view of the schedule.
func (r RevolvingBalance) Amortize() amortize.Revolving {
	return amortize.Revolving{
		ID:             r.ID,
		CardID:         r.CardID,
		StartMonth:     r.StartMonth,
		Remaining:      r.RemainingYen,
		MonthlyPayment: r.MonthlyPaymentYen,
		Note:           r.Note,
	}
}

// InstallmentPlan is a card charge split into a fixed number of equal
// monthly shares.
type InstallmentPlan struct {
	DefaultModel
	CardID     uuid.UUID
	Card       Card `json:"-"`
	StartMonth types.Month
	Months     int
	TotalYen   int64
	Note       string
}

// BeforeSave validates the schedule.
func (i *InstallmentPlan) BeforeSave(_ *gorm.DB) error {
	i.Note = strings.TrimSpace(i.Note)

	if i.TotalYen <= 0 {
		return ErrScheduleAmountNotPositive
	}
	if i.Months <= 0 {
		return ErrScheduleMonthsNotPositive
	}

	return nil
}

func (i *InstallmentPlan) BeforeCreate(tx *gorm.DB) error {
	_ = i.DefaultModel.BeforeCreate(tx)

	if i.CardID == uuid.Nil {
		return ErrScheduleNoCard
	}

	return tx.First(&Card{}, i.CardID).Error
}

// Amortize returns the calculator view of the schedule.
func (i InstallmentPlan) Amortize() amortize.Installment {
	return amortize.Installment{
		ID:         i.ID,
		CardID:     i.CardID,
		StartMonth: i.StartMonth,
		Months:     i.Months,
		Total:      i.TotalYen,
		Note:       i.Note,
	}
}
