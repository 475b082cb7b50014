package v1

import (
	"fmt"
	"net/http"

	"github.com/cashplanner/backend/internal/calendar"
	"github.com/cashplanner/backend/internal/httputil"
	"github.com/cashplanner/backend/internal/models"
	"github.com/cashplanner/backend/internal/planner"
	"github.com/cashplanner/backend/internal/types"
	"github.com/gin-gonic/gin"
)

type RebuildQuery struct {
	From string `form:"from"` // First month of the planning horizon (YYYY-MM), defaults to the current month
}

// RegisterRebuildRoutes registers the routes for planner rebuilds with
// the RouterGroup that is passed.
func RegisterRebuildRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsRebuild)
	r.POST("", Rebuild)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Planner
// @Success		204
// @Router			/v1/rebuild [options]
func OptionsRebuild(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Rebuild derived events
// @Description	Deletes and regenerates all derived cashflow events over the planning horizon. One-off and transfer events are untouched.
// @Tags			Planner
// @Produce		json
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			from	query		string	false	"First month of the planning horizon (YYYY-MM), defaults to the current month"
// @Router			/v1/rebuild [post]
func Rebuild(c *gin.Context) {
	var query RebuildQuery
	if err := c.BindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	holidays, err := models.LoadHolidays(models.DB)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	cal := calendar.Calendar{Holidays: holidays}

	if query.From != "" {
		first, err := types.ParseMonth(query.From)
		if err != nil {
			c.JSON(http.StatusBadRequest, httpError{Error: fmt.Errorf("from: %w", err).Error()})
			return
		}

		err = planner.RebuildFrom(models.DB, cal, first)
		if err != nil {
			c.JSON(status(err), httpError{Error: err.Error()})
			return
		}

		c.Status(http.StatusNoContent)
		return
	}

	err = planner.Rebuild(models.DB, cal)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
