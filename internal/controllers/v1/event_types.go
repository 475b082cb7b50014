package v1

import (
	"time"

	"github.com/cashplanner/backend/internal/models"
	"github.com/google/uuid"
)

// EventEditable contains the fields of a cashflow event the user can
// author directly. Derived events are regenerated by the planner and
// can not be created or changed through the API.
type EventEditable struct {
	Date        time.Time `json:"date" example:"2026-02-14T00:00:00Z"`
	AmountYen   int64     `json:"amountYen" example:"-32000"`
	AccountID   uuid.UUID `json:"accountId" example:"6f02cc44-facd-454b-9860-8c2a29a4b82b"`
	Source      string    `json:"source" example:"oneoff" enums:"oneoff,transfer"`
	Description string    `json:"description" example:"Concert tickets"`
	Status      string    `json:"status" example:"expected" enums:"expected,done" default:"expected"`
}

func (editable EventEditable) model() models.CashflowEvent {
	return models.CashflowEvent{
		Date:        editable.Date,
		AmountYen:   editable.AmountYen,
		AccountID:   editable.AccountID,
		Source:      editable.Source,
		Description: editable.Description,
		Status:      editable.Status,
	}
}

type EventListResponse struct {
	Data  []Event `json:"data"`
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

type EventCreateResponse struct {
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"`
	Data  []EventResponse `json:"data"`
}

func (e *EventCreateResponse) appendError(err error, currentStatus int) int {
	message := err.Error()
	e.Data = append(e.Data, EventResponse{Error: &message})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type EventResponse struct {
	Data  *Event  `json:"data"`
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

type Event struct {
	models.DefaultModel
	EventEditable

	// DefinitionID references the recurring definition a derived event
	// was generated from.
	DefinitionID *uuid.UUID `json:"definitionId" example:"a5b8e1d4-3b1c-4b5e-8f2a-9d6c7e8f9a0b"`

	Sequence uint64 `json:"sequence" example:"17"`
}

func newEvent(event models.CashflowEvent) Event {
	return Event{
		DefaultModel: event.DefaultModel,
		EventEditable: EventEditable{
			Date:        event.Date,
			AmountYen:   event.AmountYen,
			AccountID:   event.AccountID,
			Source:      event.Source,
			Description: event.Description,
			Status:      event.Status,
		},
		DefinitionID: event.DefinitionID,
		Sequence:     event.Sequence,
	}
}

// EventQueryFilter narrows the event list by date range and account.
type EventQueryFilter struct {
	From    time.Time `form:"from" time_format:"2006-01-02"`
	Until   time.Time `form:"until" time_format:"2006-01-02"`
	Account string    `form:"account"`
	Source  string    `form:"source"`
}
