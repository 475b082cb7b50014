package v1

import (
	"github.com/cashplanner/backend/internal/httputil"
	"github.com/cashplanner/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
//
// Note: This function only works for resources with an ID, not for calculated endpoints (like /forecast)
func resourceOptionsDetail[R models.Account | models.Card | models.Plan | models.Subscription | models.VariablePayment | models.VariableConfirmation | models.CardTransaction | models.RevolvingBalance | models.InstallmentPlan | models.CashflowEvent | models.Holiday | models.MatchRule](c *gin.Context, resource R) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&resource, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}
