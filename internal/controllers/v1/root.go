package v1

import (
	"net/http"

	"github.com/cashplanner/backend/internal/httputil"
	"github.com/cashplanner/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.DELETE("", Cleanup)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Accounts              string `json:"accounts" example:"https://example.com/api/v1/accounts"`                            // URL of Account collection endpoint
	Cards                 string `json:"cards" example:"https://example.com/api/v1/cards"`                                  // URL of Card collection endpoint
	Plans                 string `json:"plans" example:"https://example.com/api/v1/plans"`                                  // URL of Plan collection endpoint
	Subscriptions         string `json:"subscriptions" example:"https://example.com/api/v1/subscriptions"`                  // URL of Subscription collection endpoint
	VariablePayments      string `json:"variablePayments" example:"https://example.com/api/v1/variable-payments"`           // URL of Variable Payment collection endpoint
	VariableConfirmations string `json:"variableConfirmations" example:"https://example.com/api/v1/variable-confirmations"` // URL of Variable Confirmation collection endpoint
	Transactions          string `json:"transactions" example:"https://example.com/api/v1/transactions"`                    // URL of Card Transaction collection endpoint
	RevolvingBalances     string `json:"revolvingBalances" example:"https://example.com/api/v1/revolving-balances"`         // URL of Revolving Balance collection endpoint
	InstallmentPlans      string `json:"installmentPlans" example:"https://example.com/api/v1/installment-plans"`           // URL of Installment Plan collection endpoint
	Events                string `json:"events" example:"https://example.com/api/v1/events"`                                // URL of Cashflow Event collection endpoint
	MatchRules            string `json:"matchRules" example:"https://example.com/api/v1/match-rules"`                       // URL of Match Rule collection endpoint
	Holidays              string `json:"holidays" example:"https://example.com/api/v1/holidays"`                            // URL of Holiday collection endpoint
	Import                string `json:"import" example:"https://example.com/api/v1/import"`                                // URL of import list endpoint
	Rebuild               string `json:"rebuild" example:"https://example.com/api/v1/rebuild"`                              // URL of planner rebuild endpoint
	Forecast              string `json:"forecast" example:"https://example.com/api/v1/forecast"`                            // URL of balance forecast endpoint
	WithdrawSchedule      string `json:"withdrawSchedule" example:"https://example.com/api/v1/withdraw-schedule"`           // URL of card withdrawal schedule endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Accounts:              url + "/v1/accounts",
			Cards:                 url + "/v1/cards",
			Plans:                 url + "/v1/plans",
			Subscriptions:         url + "/v1/subscriptions",
			VariablePayments:      url + "/v1/variable-payments",
			VariableConfirmations: url + "/v1/variable-confirmations",
			Transactions:          url + "/v1/transactions",
			RevolvingBalances:     url + "/v1/revolving-balances",
			InstallmentPlans:      url + "/v1/installment-plans",
			Events:                url + "/v1/events",
			MatchRules:            url + "/v1/match-rules",
			Holidays:              url + "/v1/holidays",
			Import:                url + "/v1/import",
			Rebuild:               url + "/v1/rebuild",
			Forecast:              url + "/v1/forecast",
			WithdrawSchedule:      url + "/v1/withdraw-schedule",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// Cleanup deletes all data. It is used to reset the instance for a
// fresh start, e.g. after playing with example data.
//
//	@Summary		Delete everything
//	@Description	Permanently deletes all resources
//	@Tags			v1
//	@Success		204
//	@Failure		400	{object}	httpError
//	@Failure		500	{object}	httpError
//	@Param			confirm	query	string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
//	@Router			/v1 [delete]
func Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.Bind(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httpError{Error: errCleanupConfirmation.Error()})
		return
	}

	// The order is important here since there are foreign keys to consider!
	resources := []any{
		models.MatchRule{},
		models.Holiday{},
		models.CashflowEvent{},
		models.RevolvingBalance{},
		models.InstallmentPlan{},
		models.CardTransaction{},
		models.VariableConfirmation{},
		models.VariablePayment{},
		models.Subscription{},
		models.Plan{},
		models.Card{},
		models.Account{},
	}

	// Use a transaction so that we can roll back if errors happen
	tx := models.DB.Begin()

	for _, model := range resources {
		err := tx.Unscoped().Where("true").Delete(&model).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
			tx.Rollback()
			return
		}
	}

	tx.Commit()
	c.JSON(http.StatusNoContent, nil)
}
