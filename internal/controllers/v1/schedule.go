package v1

import (
	"net/http"

	"github.com/cashplanner/backend/internal/httputil"
	"github.com/cashplanner/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterRevolvingBalanceRoutes registers the routes for revolving
// balances with the RouterGroup that is passed.
func RegisterRevolvingBalanceRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsRevolvingBalanceList)
		r.GET("", GetRevolvingBalances)
		r.POST("", CreateRevolvingBalances)
	}

	// RevolvingBalance with ID
	{
		r.OPTIONS("/:id", OptionsRevolvingBalanceDetail)
		r.GET("/:id", GetRevolvingBalance)
		r.PATCH("/:id", UpdateRevolvingBalance)
		r.DELETE("/:id", DeleteRevolvingBalance)
	}
}

// RegisterInstallmentPlanRoutes registers the routes for installment
// plans with the RouterGroup that is passed.
func RegisterInstallmentPlanRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsInstallmentPlanList)
		r.GET("", GetInstallmentPlans)
		r.POST("", CreateInstallmentPlans)
	}

	// InstallmentPlan with ID
	{
		r.OPTIONS("/:id", OptionsInstallmentPlanDetail)
		r.GET("/:id", GetInstallmentPlan)
		r.PATCH("/:id", UpdateInstallmentPlan)
		r.DELETE("/:id", DeleteInstallmentPlan)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Schedules
// @Success		204
// @Router			/v1/revolving-balances [options]
func OptionsRevolvingBalanceList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Schedules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/revolving-balances/{id} [options]
func OptionsRevolvingBalanceDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.RevolvingBalance{})
}

// @Summary		Create revolving balances
// @Description	Creates revolving balances from the list of submitted data. The response code is the highest response code number that a single creation would have caused. If it is not equal to 201, at least one revolving balance has an error.
// @Tags			Schedules
// @Produce		json
// @Success		201					{object}	RevolvingBalanceCreateResponse
// @Failure		400					{object}	RevolvingBalanceCreateResponse
// @Failure		404					{object}	RevolvingBalanceCreateResponse
// @Failure		500					{object}	RevolvingBalanceCreateResponse
// @Param			revolvingBalances	body		[]RevolvingBalanceEditable	true	"RevolvingBalances"
// @Router			/v1/revolving-balances [post]
func CreateRevolvingBalances(c *gin.Context) {
	var editables []RevolvingBalanceEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RevolvingBalanceCreateResponse{Error: &e})
		return
	}

	s := http.StatusCreated
	r := RevolvingBalanceCreateResponse{}

	for _, editable := range editables {
		balance := editable.model()

		err = models.DB.Create(&balance).Error
		if err != nil {
			s = r.appendError(err, s)
			continue
		}

		data := newRevolvingBalance(balance)
		r.Data = append(r.Data, RevolvingBalanceResponse{Data: &data})
	}

	c.JSON(s, r)
}

// @Summary		Get revolving balances
// @Description	Returns a list of revolving balances
// @Tags			Schedules
// @Produce		json
// @Success		200	{object}	RevolvingBalanceListResponse
// @Failure		500	{object}	RevolvingBalanceListResponse
// @Router			/v1/revolving-balances [get]
func GetRevolvingBalances(c *gin.Context) {
	var balances []models.RevolvingBalance
	err := models.DB.Order("start_month ASC").Find(&balances).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RevolvingBalanceListResponse{Error: &e})
		return
	}

	data := make([]RevolvingBalance, 0, len(balances))
	for _, balance := range balances {
		data = append(data, newRevolvingBalance(balance))
	}

	c.JSON(http.StatusOK, RevolvingBalanceListResponse{Data: data})
}

// @Summary		Get revolving balance
// @Description	Returns a specific revolving balance
// @Tags			Schedules
// @Produce		json
// @Success		200	{object}	RevolvingBalanceResponse
// @Failure		400	{object}	RevolvingBalanceResponse
// @Failure		404	{object}	RevolvingBalanceResponse
// @Failure		500	{object}	RevolvingBalanceResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/revolving-balances/{id} [get]
func GetRevolvingBalance(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RevolvingBalanceResponse{Error: &e})
		return
	}

	var balance models.RevolvingBalance
	err = models.DB.First(&balance, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RevolvingBalanceResponse{Error: &e})
		return
	}

	data := newRevolvingBalance(balance)
	c.JSON(http.StatusOK, RevolvingBalanceResponse{Data: &data})
}

// @Summary		Update revolving balance
// @Description	Updates a revolving balance. Only values to be updated need to be specified.
// @Tags			Schedules
// @Accept			json
// @Produce		json
// @Success		200					{object}	RevolvingBalanceResponse
// @Failure		400					{object}	RevolvingBalanceResponse
// @Failure		404					{object}	RevolvingBalanceResponse
// @Failure		500					{object}	RevolvingBalanceResponse
// @Param			id					path		URIID						true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			revolvingBalance	body		RevolvingBalanceEditable	true	"RevolvingBalance"
// @Router			/v1/revolving-balances/{id} [patch]
func UpdateRevolvingBalance(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RevolvingBalanceResponse{Error: &e})
		return
	}

	var balance models.RevolvingBalance
	err = models.DB.First(&balance, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RevolvingBalanceResponse{Error: &e})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, RevolvingBalanceEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RevolvingBalanceResponse{Error: &e})
		return
	}

	var data RevolvingBalanceEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RevolvingBalanceResponse{Error: &e})
		return
	}

	err = models.DB.Model(&balance).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RevolvingBalanceResponse{Error: &e})
		return
	}

	apiResource := newRevolvingBalance(balance)
	c.JSON(http.StatusOK, RevolvingBalanceResponse{Data: &apiResource})
}

// @Summary		Delete revolving balance
// @Description	Deletes a revolving balance
// @Tags			Schedules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/revolving-balances/{id} [delete]
func DeleteRevolvingBalance(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var balance models.RevolvingBalance
	err = models.DB.First(&balance, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&balance).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Schedules
// @Success		204
// @Router			/v1/installment-plans [options]
func OptionsInstallmentPlanList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Schedules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/installment-plans/{id} [options]
func OptionsInstallmentPlanDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.InstallmentPlan{})
}

// @Summary		Create installment plans
// @Description	Creates installment plans from the list of submitted data. The response code is the highest response code number that a single creation would have caused. If it is not equal to 201, at least one installment plan has an error.
// @Tags			Schedules
// @Produce		json
// @Success		201					{object}	InstallmentPlanCreateResponse
// @Failure		400					{object}	InstallmentPlanCreateResponse
// @Failure		404					{object}	InstallmentPlanCreateResponse
// @Failure		500					{object}	InstallmentPlanCreateResponse
// @Param			installmentPlans	body		[]InstallmentPlanEditable	true	"InstallmentPlans"
// @Router			/v1/installment-plans [post]
func CreateInstallmentPlans(c *gin.Context) {
	var editables []InstallmentPlanEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InstallmentPlanCreateResponse{Error: &e})
		return
	}

	s := http.StatusCreated
	r := InstallmentPlanCreateResponse{}

	for _, editable := range editables {
		plan := editable.model()

		err = models.DB.Create(&plan).Error
		if err != nil {
			s = r.appendError(err, s)
			continue
		}

		data := newInstallmentPlan(plan)
		r.Data = append(r.Data, InstallmentPlanResponse{Data: &data})
	}

	c.JSON(s, r)
}

// @Summary		Get installment plans
// @Description	Returns a list of installment plans
// @Tags			Schedules
// @Produce		json
// @Success		200	{object}	InstallmentPlanListResponse
// @Failure		500	{object}	InstallmentPlanListResponse
// @Router			/v1/installment-plans [get]
func GetInstallmentPlans(c *gin.Context) {
	var plans []models.InstallmentPlan
	err := models.DB.Order("start_month ASC").Find(&plans).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InstallmentPlanListResponse{Error: &e})
		return
	}

	data := make([]InstallmentPlan, 0, len(plans))
	for _, plan := range plans {
		data = append(data, newInstallmentPlan(plan))
	}

	c.JSON(http.StatusOK, InstallmentPlanListResponse{Data: data})
}

// @Summary		Get installment plan
// @Description	Returns a specific installment plan
// @Tags			Schedules
// @Produce		json
// @Success		200	{object}	InstallmentPlanResponse
// @Failure		400	{object}	InstallmentPlanResponse
// @Failure		404	{object}	InstallmentPlanResponse
// @Failure		500	{object}	InstallmentPlanResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/installment-plans/{id} [get]
func GetInstallmentPlan(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InstallmentPlanResponse{Error: &e})
		return
	}

	var plan models.InstallmentPlan
	err = models.DB.First(&plan, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InstallmentPlanResponse{Error: &e})
		return
	}

	data := newInstallmentPlan(plan)
	c.JSON(http.StatusOK, InstallmentPlanResponse{Data: &data})
}

// @Summary		Update installment plan
// @Description	Updates an installment plan. Only values to be updated need to be specified.
// @Tags			Schedules
// @Accept			json
// @Produce		json
// @Success		200				{object}	InstallmentPlanResponse
// @Failure		400				{object}	InstallmentPlanResponse
// @Failure		404				{object}	InstallmentPlanResponse
// @Failure		500				{object}	InstallmentPlanResponse
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			installmentPlan	body		InstallmentPlanEditable	true	"InstallmentPlan"
// @Router			/v1/installment-plans/{id} [patch]
func UpdateInstallmentPlan(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InstallmentPlanResponse{Error: &e})
		return
	}

	var plan models.InstallmentPlan
	err = models.DB.First(&plan, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InstallmentPlanResponse{Error: &e})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, InstallmentPlanEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InstallmentPlanResponse{Error: &e})
		return
	}

	var data InstallmentPlanEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InstallmentPlanResponse{Error: &e})
		return
	}

	err = models.DB.Model(&plan).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), InstallmentPlanResponse{Error: &e})
		return
	}

	apiResource := newInstallmentPlan(plan)
	c.JSON(http.StatusOK, InstallmentPlanResponse{Data: &apiResource})
}

// @Summary		Delete installment plan
// @Description	Deletes an installment plan
// @Tags			Schedules
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/installment-plans/{id} [delete]
func DeleteInstallmentPlan(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var plan models.InstallmentPlan
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
