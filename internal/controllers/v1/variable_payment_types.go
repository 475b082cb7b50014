package v1

import (
	"time"

	"github.com/cashplanner/backend/internal/models"
	"github.com/google/uuid"
)

type VariablePaymentEditable struct {
	Name               string `json:"name" example:"Electricity"`        // Name of the variable payment
	EstimatedAmountYen int64  `json:"estimatedAmountYen" example:"4500"` // Estimated amount in whole yen, used until an occurrence is confirmed
	RecurringEditable
}

func (editable VariablePaymentEditable) model() models.VariablePayment {
	return models.VariablePayment{
		Name:               editable.Name,
		EstimatedAmountYen: editable.EstimatedAmountYen,
		RecurringFields:    editable.fields(),
	}
}

type VariablePaymentListResponse struct {
	Data  []VariablePayment `json:"data"`                                                          // List of variable payments
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type VariablePaymentCreateResponse struct {
	Error *string                   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []VariablePaymentResponse `json:"data"`                                                          // List of created variable payments
}

func (r *VariablePaymentCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, VariablePaymentResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type VariablePaymentResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this variable payment
	Data  *VariablePayment `json:"data"`                                                          // The variable payment data, if creation was successful
}

// VariablePayment is the API representation of a variable payment.
type VariablePayment struct {
	models.DefaultModel
	VariablePaymentEditable
}

func newVariablePayment(model models.VariablePayment) VariablePayment {
	return VariablePayment{
		DefaultModel: model.DefaultModel,
		VariablePaymentEditable: VariablePaymentEditable{
			Name:               model.Name,
			EstimatedAmountYen: model.EstimatedAmountYen,
			RecurringEditable:  newRecurringEditable(model.RecurringFields),
		},
	}
}

type VariableConfirmationEditable struct {
	VariablePaymentID  uuid.UUID `json:"variablePaymentId" example:"f9e873c2-fb96-4367-bfb6-7ecd9bf4a6b5"` // The variable payment the confirmation belongs to
	OccurrenceDate     time.Time `json:"occurrenceDate" example:"2026-02-05T00:00:00Z"`                    // The occurrence the confirmation replaces the estimate for
	ConfirmedAmountYen int64     `json:"confirmedAmountYen" example:"4321"`                                // Confirmed amount in whole yen, always a magnitude
}

func (editable VariableConfirmationEditable) model() models.VariableConfirmation {
	return models.VariableConfirmation{
		VariablePaymentID:  editable.VariablePaymentID,
		OccurrenceDate:     editable.OccurrenceDate,
		ConfirmedAmountYen: editable.ConfirmedAmountYen,
	}
}

type VariableConfirmationListResponse struct {
	Data  []VariableConfirmation `json:"data"`                                                          // List of confirmations
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type VariableConfirmationCreateResponse struct {
	Error *string                        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []VariableConfirmationResponse `json:"data"`                                                          // List of created confirmations
}

func (r *VariableConfirmationCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, VariableConfirmationResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type VariableConfirmationResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this confirmation
	Data  *VariableConfirmation `json:"data"`                                                          // The confirmation data, if creation was successful
}

// VariableConfirmation is the API representation of a confirmation.
type VariableConfirmation struct {
	models.DefaultModel
	VariableConfirmationEditable
}

func newVariableConfirmation(model models.VariableConfirmation) VariableConfirmation {
	return VariableConfirmation{
		DefaultModel: model.DefaultModel,
		VariableConfirmationEditable: VariableConfirmationEditable{
			VariablePaymentID:  model.VariablePaymentID,
			OccurrenceDate:     model.OccurrenceDate,
			ConfirmedAmountYen: model.ConfirmedAmountYen,
		},
	}
}
