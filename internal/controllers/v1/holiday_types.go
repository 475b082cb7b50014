package v1

import (
	"time"

	"github.com/cashplanner/backend/internal/models"
)

// HolidayEditable contains the fields of a holiday that can be set by
// the user.
type HolidayEditable struct {
	Date time.Time `json:"date" example:"2026-01-01T00:00:00Z"`
	Name string    `json:"name" example:"元日"`
}

func (editable HolidayEditable) model() models.Holiday {
	return models.Holiday{
		Date: editable.Date,
		Name: editable.Name,
	}
}

type HolidayListResponse struct {
	Data  []Holiday `json:"data"`
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"`
}

type HolidayCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"`
	Data  []HolidayResponse `json:"data"`
}

func (h *HolidayCreateResponse) appendError(err error, currentStatus int) int {
	message := err.Error()
	h.Data = append(h.Data, HolidayResponse{Error: &message})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type HolidayResponse struct {
	Data  *Holiday `json:"data"`
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"`
}

type Holiday struct {
	models.DefaultModel
	HolidayEditable
}

func newHoliday(holiday models.Holiday) Holiday {
	return Holiday{
		DefaultModel: holiday.DefaultModel,
		HolidayEditable: HolidayEditable{
			Date: holiday.Date,
			Name: holiday.Name,
		},
	}
}
