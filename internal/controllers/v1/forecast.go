package v1

import (
	"net/http"
	"time"

	"github.com/cashplanner/backend/internal/forecast"
	"github.com/cashplanner/backend/internal/httputil"
	"github.com/cashplanner/backend/internal/models"
	"github.com/cashplanner/backend/internal/planner"
	"github.com/cashplanner/backend/internal/types"
	"github.com/gin-gonic/gin"
)

type ForecastQuery struct {
	Start           time.Time `form:"start" time_format:"2006-01-02"`  // First day of the simulation, defaults to today
	End             time.Time `form:"end" time_format:"2006-01-02"`    // Last day of the simulation, defaults to the end of the planning horizon
	DangerThreshold int64     `form:"dangerThreshold" example:"50000"` // Balances below this value are flagged
}

type ForecastResponse struct {
	Data  *forecast.Result `json:"data"`
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"`
}

type ForecastDailyResponse struct {
	Data  *forecast.DailyResult `json:"data"`
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// ForecastFree is the total free cash per calendar day, summed over all
// accounts.
type ForecastFree struct {
	Start   time.Time             `json:"start"`
	End     time.Time             `json:"end"`
	Summary forecast.Summary      `json:"summary"`
	Series  []forecast.DailyPoint `json:"series"`
}

type ForecastFreeResponse struct {
	Data  *ForecastFree `json:"data"`
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// RegisterForecastRoutes registers the routes for balance forecasts
// with the RouterGroup that is passed.
func RegisterForecastRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsForecast)
	r.GET("", GetForecast)

	r.OPTIONS("/daily", OptionsForecastDaily)
	r.GET("/daily", GetForecastDaily)

	r.OPTIONS("/free", OptionsForecastFree)
	r.GET("/free", GetForecastFree)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Forecast
// @Success		204
// @Router			/v1/forecast [options]
func OptionsForecast(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Forecast
// @Success		204
// @Router			/v1/forecast/daily [options]
func OptionsForecastDaily(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Forecast
// @Success		204
// @Router			/v1/forecast/free [options]
func OptionsForecastFree(c *gin.Context) {
	httputil.OptionsGet(c)
}

// simulate binds the forecast query, loads the accounts and events and
// runs the simulation.
func simulate(c *gin.Context) (forecast.Result, error) {
	var query ForecastQuery
	if err := c.BindQuery(&query); err != nil {
		return forecast.Result{}, err
	}

	start := query.Start
	if start.IsZero() {
		now := time.Now().In(time.UTC)
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	end := query.End
	if end.IsZero() {
		end = types.MonthOf(start).AddDate(0, planner.HorizonMonths-1).Last()
	}

	if end.Before(start) {
		return forecast.Result{}, errForecastRange
	}

	var accounts []models.Account
	if err := models.DB.Order("name ASC").Find(&accounts).Error; err != nil {
		return forecast.Result{}, err
	}

	var events []models.CashflowEvent
	err := models.DB.
		Where("date >= ?", start).
		Where("date <= ?", end).
		Order("date ASC, sequence ASC").
		Find(&events).Error
	if err != nil {
		return forecast.Result{}, err
	}

	forecastAccounts := make([]forecast.Account, 0, len(accounts))
	for _, account := range accounts {
		forecastAccounts = append(forecastAccounts, account.Forecast())
	}

	forecastEvents := make([]forecast.Event, 0, len(events))
	for _, event := range events {
		forecastEvents = append(forecastEvents, event.Forecast())
	}

	return forecast.Simulate(forecastAccounts, forecastEvents, start, end, query.DangerThreshold), nil
}

// @Summary		Get forecast
// @Description	Simulates the balance trajectory of all accounts over the requested range. The result has one point per event plus a summary per account and for the total.
// @Tags			Forecast
// @Produce		json
// @Success		200				{object}	ForecastResponse
// @Failure		400				{object}	ForecastResponse
// @Failure		500				{object}	ForecastResponse
// @Param			start			query		string	false	"First day of the simulation (YYYY-MM-DD), defaults to today"
// @Param			end				query		string	false	"Last day of the simulation (YYYY-MM-DD), defaults to the end of the planning horizon"
// @Param			dangerThreshold	query		int		false	"Balances below this value are flagged"
// @Router			/v1/forecast [get]
func GetForecast(c *gin.Context) {
	result, err := simulate(c)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ForecastResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, ForecastResponse{Data: &result})
}

// @Summary		Get daily forecast
// @Description	Simulates the balance trajectory of all accounts over the requested range and fills it to one point per calendar day.
// @Tags			Forecast
// @Produce		json
// @Success		200				{object}	ForecastDailyResponse
// @Failure		400				{object}	ForecastDailyResponse
// @Failure		500				{object}	ForecastDailyResponse
// @Param			start			query		string	false	"First day of the simulation (YYYY-MM-DD), defaults to today"
// @Param			end				query		string	false	"Last day of the simulation (YYYY-MM-DD), defaults to the end of the planning horizon"
// @Param			dangerThreshold	query		int		false	"Balances below this value are flagged"
// @Router			/v1/forecast/daily [get]
func GetForecastDaily(c *gin.Context) {
	result, err := simulate(c)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ForecastDailyResponse{Error: &e})
		return
	}

	daily := result.Daily()
	c.JSON(http.StatusOK, ForecastDailyResponse{Data: &daily})
}

// @Summary		Get free cash forecast
// @Description	Returns the total free cash over all accounts as one point per calendar day, with the summary for the total.
// @Tags			Forecast
// @Produce		json
// @Success		200				{object}	ForecastFreeResponse
// @Failure		400				{object}	ForecastFreeResponse
// @Failure		500				{object}	ForecastFreeResponse
// @Param			start			query		string	false	"First day of the simulation (YYYY-MM-DD), defaults to today"
// @Param			end				query		string	false	"Last day of the simulation (YYYY-MM-DD), defaults to the end of the planning horizon"
// @Param			dangerThreshold	query		int		false	"Balances below this value are flagged"
// @Router			/v1/forecast/free [get]
func GetForecastFree(c *gin.Context) {
	result, err := simulate(c)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ForecastFreeResponse{Error: &e})
		return
	}

	daily := result.Daily()
	free := ForecastFree{
		Start:   result.Start,
		End:     result.End,
		Summary: result.TotalSummary,
		Series:  daily.Total,
	}

	c.JSON(http.StatusOK, ForecastFreeResponse{Data: &free})
}
