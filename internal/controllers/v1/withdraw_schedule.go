package v1

import (
	"net/http"
	"time"

	"github.com/cashplanner/backend/internal/httputil"
	"github.com/cashplanner/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WithdrawScheduleQuery struct {
	From time.Time `form:"from" time_format:"2006-01-02"` // First withdrawal date to include, defaults to today
}

// Withdrawal is one card settlement on a withdrawal day.
type Withdrawal struct {
	CardID      uuid.UUID `json:"cardId" example:"4b9e9d20-5797-4e14-8aad-5e9eb1b894f1"`    // The card being settled
	CardName    string    `json:"cardName" example:"Rakuten Card"`                          // Name of the card
	AccountID   uuid.UUID `json:"accountId" example:"f9e873c2-fb96-4367-bfb6-7ecd9bf4a6b5"` // The account the withdrawal is debited from
	AmountYen   int64     `json:"amountYen" example:"-52300"`                               // Settlement amount in whole yen, negative for a debit
	Description string    `json:"description" example:"Card settlement: Rakuten Card (2026-01-16 - 2026-02-15)"`
}

// WithdrawDay groups the card settlements that fall on the same date.
type WithdrawDay struct {
	Date        time.Time    `json:"date" example:"2026-02-27T00:00:00Z"` // The withdrawal date
	TotalYen    int64        `json:"totalYen" example:"-52300"`           // Sum of all settlements on the date
	Withdrawals []Withdrawal `json:"withdrawals"`                         // The settlements on the date
}

type WithdrawScheduleResponse struct {
	Data  []WithdrawDay `json:"data"`                                                          // Upcoming withdrawal days in date order
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// RegisterWithdrawScheduleRoutes registers the routes for the card
// withdrawal schedule with the RouterGroup that is passed.
func RegisterWithdrawScheduleRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsWithdrawSchedule)
	r.GET("", GetWithdrawSchedule)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Planner
// @Success		204
// @Router			/v1/withdraw-schedule [options]
func OptionsWithdrawSchedule(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get withdrawal schedule
// @Description	Returns the upcoming card settlements from the materialized plan, grouped by withdrawal date.
// @Tags			Planner
// @Produce		json
// @Success		200		{object}	WithdrawScheduleResponse
// @Failure		400		{object}	WithdrawScheduleResponse
// @Failure		500		{object}	WithdrawScheduleResponse
// @Param			from	query		string	false	"First withdrawal date to include (YYYY-MM-DD), defaults to today"
// @Router			/v1/withdraw-schedule [get]
func GetWithdrawSchedule(c *gin.Context) {
	var query WithdrawScheduleQuery
	if err := c.BindQuery(&query); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, WithdrawScheduleResponse{Error: &e})
		return
	}

	from := query.From
	if from.IsZero() {
		now := time.Now().In(time.UTC)
		from = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	var events []models.CashflowEvent
	err := models.DB.
		Where("source = ?", models.SourceCard).
		Where("date >= ?", from).
		Order("date ASC, sequence ASC").
		Find(&events).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WithdrawScheduleResponse{Error: &e})
		return
	}

	var cards []models.Card
	err = models.DB.Find(&cards).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), WithdrawScheduleResponse{Error: &e})
		return
	}

	cardNames := make(map[uuid.UUID]string, len(cards))
	for _, card := range cards {
		cardNames[card.ID] = card.Name
	}

	data := make([]WithdrawDay, 0)
	for _, event := range events {
		withdrawal := Withdrawal{
			AccountID:   event.AccountID,
			AmountYen:   event.AmountYen,
			Description: event.Description,
		}

		if event.DefinitionID != nil {
			withdrawal.CardID = *event.DefinitionID
			withdrawal.CardName = cardNames[*event.DefinitionID]
		}

		if len(data) > 0 && data[len(data)-1].Date.Equal(event.Date) {
			day := &data[len(data)-1]
			day.TotalYen += event.AmountYen
			day.Withdrawals = append(day.Withdrawals, withdrawal)
			continue
		}

		data = append(data, WithdrawDay{
			Date:        event.Date,
			TotalYen:    event.AmountYen,
			Withdrawals: []Withdrawal{withdrawal},
		})
	}

	c.JSON(http.StatusOK, WithdrawScheduleResponse{Data: data})
}
