package v1

import (
	"net/http"

	"github.com/cashplanner/backend/internal/httputil"
	"github.com/cashplanner/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterPlanRoutes registers the routes for plans with
// the RouterGroup that is passed.
func RegisterPlanRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsPlanList)
		r.GET("", GetPlans)
		r.POST("", CreatePlans)
	}

	// Plan with ID
	{
		r.OPTIONS("/:id", OptionsPlanDetail)
		r.GET("/:id", GetPlan)
		r.PATCH("/:id", UpdatePlan)
		r.DELETE("/:id", DeletePlan)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Plans
// @Success		204
// @Router			/v1/plans [options]
func OptionsPlanList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Plans
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/plans/{id} [options]
func OptionsPlanDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Plan{})
}

// @Summary		Create plans
// @Description	Creates plans from the list of submitted plan data. The response code is the highest response code number that a single plan creation would have caused. If it is not equal to 201, at least one plan has an error.
// @Tags			Plans
// @Produce		json
// @Success		201		{object}	PlanCreateResponse
// @Failure		400		{object}	PlanCreateResponse
// @Failure		404		{object}	PlanCreateResponse
// @Failure		500		{object}	PlanCreateResponse
// @Param			plans	body		[]PlanEditable	true	"Plans"
// @Router			/v1/plans [post]
func CreatePlans(c *gin.Context) {
	var editables []PlanEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PlanCreateResponse{Error: &e})
		return
	}

	s := http.StatusCreated
	r := PlanCreateResponse{}

	for _, editable := range editables {
		plan := editable.model()

		err = models.DB.Create(&plan).Error
		if err != nil {
			s = r.appendError(err, s)
			continue
		}

		data := newPlan(plan)
		r.Data = append(r.Data, PlanResponse{Data: &data})
	}

	c.JSON(s, r)
}

// @Summary		Get plans
// @Description	Returns a list of plans
// @Tags			Plans
// @Produce		json
// @Success		200	{object}	PlanListResponse
// @Failure		500	{object}	PlanListResponse
// @Router			/v1/plans [get]
func GetPlans(c *gin.Context) {
	var plans []models.Plan
	err := models.DB.Order("title ASC").Find(&plans).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PlanListResponse{Error: &e})
		return
	}

	data := make([]Plan, 0, len(plans))
	for _, plan := range plans {
		data = append(data, newPlan(plan))
	}

	c.JSON(http.StatusOK, PlanListResponse{Data: data})
}

// @Summary		Get plan
// @Description	Returns a specific plan
// @Tags			Plans
// @Produce		json
// @Success		200	{object}	PlanResponse
// @Failure		400	{object}	PlanResponse
// @Failure		404	{object}	PlanResponse
// @Failure		500	{object}	PlanResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/plans/{id} [get]
func GetPlan(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PlanResponse{Error: &e})
		return
	}

	var plan models.Plan
	err = models.DB.First(&plan, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PlanResponse{Error: &e})
		return
	}

	data := newPlan(plan)
	c.JSON(http.StatusOK, PlanResponse{Data: &data})
}

// @Summary		Update plan
// @Description	Updates a plan. Only values to be updated need to be specified.
// @Tags			Plans
// @Accept			json
// @Produce		json
// @Success		200		{object}	PlanResponse
// @Failure		400		{object}	PlanResponse
// @Failure		404		{object}	PlanResponse
// @Failure		500		{object}	PlanResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			plan	body		PlanEditable	true	"Plan"
// @Router			/v1/plans/{id} [patch]
func UpdatePlan(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PlanResponse{Error: &e})
		return
	}

	var plan models.Plan
	err = models.DB.First(&plan, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PlanResponse{Error: &e})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, PlanEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PlanResponse{Error: &e})
		return
	}

	var data PlanEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PlanResponse{Error: &e})
		return
	}

	err = models.DB.Model(&plan).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PlanResponse{Error: &e})
		return
	}

	apiResource := newPlan(plan)
	c.JSON(http.StatusOK, PlanResponse{Data: &apiResource})
}

// @Summary		Delete plan
// @Description	Deletes a plan
// @Tags			Plans
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/plans/{id} [delete]
func DeletePlan(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var plan models.Plan
	err = models.DB.First(&plan, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&plan).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
