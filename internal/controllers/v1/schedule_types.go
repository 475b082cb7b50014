package v1

import (
	"github.com/cashplanner/backend/internal/models"
	"github.com/cashplanner/backend/internal/types"
	"github.com/google/uuid"
)

type RevolvingBalanceEditable struct {
	CardID            uuid.UUID   `json:"cardId" example:"4b9e9d20-5797-4e14-8aad-5e9eb1b894f1"` // The card the balance is on
	StartMonth        types.Month `json:"startMonth" example:"2026-02-01T00:00:00Z"`             // First withdrawal month
	RemainingYen      int64       `json:"remainingYen" example:"25000"`                          // Remaining balance in whole yen
	MonthlyPaymentYen int64       `json:"monthlyPaymentYen" example:"10000"`                     // Nominal monthly payment in whole yen
	Note              string      `json:"note" example:"TV purchase"`                            // Any notes for the balance
}

func (editable RevolvingBalanceEditable) model() models.RevolvingBalance {
	return models.RevolvingBalance{
		CardID:            editable.CardID,
		StartMonth:        editable.StartMonth,
		RemainingYen:      editable.RemainingYen,
		MonthlyPaymentYen: editable.MonthlyPaymentYen,
		Note:              editable.Note,
	}
}

type RevolvingBalanceListResponse struct {
	Data  []RevolvingBalance `json:"data"`                                                          // List of revolving balances
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type RevolvingBalanceCreateResponse struct {
	Error *string                    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []RevolvingBalanceResponse `json:"data"`                                                          // List of created revolving balances
}

func (r *RevolvingBalanceCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, RevolvingBalanceResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type RevolvingBalanceResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this revolving balance
	Data  *RevolvingBalance `json:"data"`                                                          // The revolving balance data, if creation was successful
}

// RevolvingBalance is the API representation of a revolving balance.
type RevolvingBalance struct {
	models.DefaultModel
	RevolvingBalanceEditable
}

func newRevolvingBalance(model models.RevolvingBalance) RevolvingBalance {
	return RevolvingBalance{
		DefaultModel: model.DefaultModel,
		RevolvingBalanceEditable: RevolvingBalanceEditable{
			CardID:            model.CardID,
			StartMonth:        model.StartMonth,
			RemainingYen:      model.RemainingYen,
			MonthlyPaymentYen: model.MonthlyPaymentYen,
			Note:              model.Note,
		},
	}
}

type InstallmentPlanEditable struct {
	CardID     uuid.UUID   `json:"cardId" example:"4b9e9d20-5797-4e14-8aad-5e9eb1b894f1"` // The card the plan is on
	StartMonth types.Month `json:"startMonth" example:"2026-02-01T00:00:00Z"`             // First withdrawal month
	Months     int         `json:"months" example:"7"`                                    // Number of monthly shares
	TotalYen   int64       `json:"totalYen" example:"35000"`                              // Total amount in whole yen
	Note       string      `json:"note" example:"New fridge"`                             // Any notes for the plan
}

func (editable InstallmentPlanEditable) model() models.InstallmentPlan {
	return models.InstallmentPlan{
		CardID:     editable.CardID,
		StartMonth: editable.StartMonth,
		Months:     editable.Months,
		TotalYen:   editable.TotalYen,
		Note:       editable.Note,
	}
}

type InstallmentPlanListResponse struct {
	Data  []InstallmentPlan `json:"data"`                                                          // List of installment plans
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type InstallmentPlanCreateResponse struct {
	Error *string                   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []InstallmentPlanResponse `json:"data"`                                                          // List of created installment plans
}

func (r *InstallmentPlanCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, InstallmentPlanResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type InstallmentPlanResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this installment plan
	Data  *InstallmentPlan `json:"data"`                                                          // The installment plan data, if creation was successful
}

// InstallmentPlan is the API representation of an installment plan.
type InstallmentPlan struct {
	models.DefaultModel
	InstallmentPlanEditable
}

func newInstallmentPlan(model models.InstallmentPlan) InstallmentPlan {
	return InstallmentPlan{
		DefaultModel: model.DefaultModel,
		InstallmentPlanEditable: InstallmentPlanEditable{
			CardID:     model.CardID,
			StartMonth: model.StartMonth,
			Months:     model.Months,
			TotalYen:   model.TotalYen,
			Note:       model.Note,
		},
	}
}
