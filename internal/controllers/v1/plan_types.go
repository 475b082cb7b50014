package v1

import (
	"github.com/cashplanner/backend/internal/models"
)

type PlanEditable struct {
	Title     string `json:"title" example:"Salary"`     // Title of the plan
	Type      string `json:"type" example:"income"`      // income or expense
	AmountYen int64  `json:"amountYen" example:"280000"` // Nominal amount in whole yen, always a magnitude
	RecurringEditable
}

func (editable PlanEditable) model() models.Plan {
	return models.Plan{
		Title:           editable.Title,
		Type:            editable.Type,
		AmountYen:       editable.AmountYen,
		RecurringFields: editable.fields(),
	}
}

type PlanListResponse struct {
	Data  []Plan  `json:"data"`                                                          // List of plans
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type PlanCreateResponse struct {
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []PlanResponse `json:"data"`                                                          // List of created plans
}

func (r *PlanCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, PlanResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type PlanResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this plan
	Data  *Plan   `json:"data"`                                                          // The plan data, if creation was successful
}

// Plan is the API representation of a plan.
type Plan struct {
	models.DefaultModel
	PlanEditable
}

func newPlan(model models.Plan) Plan {
	return Plan{
		DefaultModel: model.DefaultModel,
		PlanEditable: PlanEditable{
			Title:             model.Title,
			Type:              model.Type,
			AmountYen:         model.AmountYen,
			RecurringEditable: newRecurringEditable(model.RecurringFields),
		},
	}
}
