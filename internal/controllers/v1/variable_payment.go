package v1

import (
	"net/http"

	"github.com/cashplanner/backend/internal/httputil"
	"github.com/cashplanner/backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterVariablePaymentRoutes registers the routes for variable payments
// with the RouterGroup that is passed.
func RegisterVariablePaymentRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsVariablePaymentList)
		r.GET("", GetVariablePayments)
		r.POST("", CreateVariablePayments)
	}

	// VariablePayment with ID
	{
		r.OPTIONS("/:id", OptionsVariablePaymentDetail)
		r.GET("/:id", GetVariablePayment)
		r.PATCH("/:id", UpdateVariablePayment)
		r.DELETE("/:id", DeleteVariablePayment)
	}
}

// RegisterVariableConfirmationRoutes registers the routes for variable
// payment confirmations with the RouterGroup that is passed.
func RegisterVariableConfirmationRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsVariableConfirmationList)
		r.GET("", GetVariableConfirmations)
		r.POST("", CreateVariableConfirmations)
	}

	// VariableConfirmation with ID
	{
		r.OPTIONS("/:id", OptionsVariableConfirmationDetail)
		r.GET("/:id", GetVariableConfirmation)
		r.DELETE("/:id", DeleteVariableConfirmation)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			VariablePayments
// @Success		204
// @Router			/v1/variable-payments [options]
func OptionsVariablePaymentList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			VariablePayments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/variable-payments/{id} [options]
func OptionsVariablePaymentDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.VariablePayment{})
}

// @Summary		Create variable payments
// @Description	Creates variable payments from the list of submitted data. The response code is the highest response code number that a single creation would have caused. If it is not equal to 201, at least one variable payment has an error.
// @Tags			VariablePayments
// @Produce		json
// @Success		201					{object}	VariablePaymentCreateResponse
// @Failure		400					{object}	VariablePaymentCreateResponse
// @Failure		404					{object}	VariablePaymentCreateResponse
// @Failure		500					{object}	VariablePaymentCreateResponse
// @Param			variablePayments	body		[]VariablePaymentEditable	true	"VariablePayments"
// @Router			/v1/variable-payments [post]
func CreateVariablePayments(c *gin.Context) {
	var editables []VariablePaymentEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VariablePaymentCreateResponse{Error: &e})
		return
	}

	s := http.StatusCreated
	r := VariablePaymentCreateResponse{}

	for _, editable := range editables {
		payment := editable.model()

		err = models.DB.Create(&payment).Error
		if err != nil {
			s = r.appendError(err, s)
			continue
		}

		data := newVariablePayment(payment)
		r.Data = append(r.Data, VariablePaymentResponse{Data: &data})
	}

	c.JSON(s, r)
}

// @Summary		Get variable payments
// @Description	Returns a list of variable payments
// @Tags			VariablePayments
// @Produce		json
// @Success		200	{object}	VariablePaymentListResponse
// @Failure		500	{object}	VariablePaymentListResponse
// @Router			/v1/variable-payments [get]
func GetVariablePayments(c *gin.Context) {
	var payments []models.VariablePayment
	err := models.DB.Order("name ASC").Find(&payments).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VariablePaymentListResponse{Error: &e})
		return
	}

	data := make([]VariablePayment, 0, len(payments))
	for _, payment := range payments {
		data = append(data, newVariablePayment(payment))
	}

	c.JSON(http.StatusOK, VariablePaymentListResponse{Data: data})
}

// @Summary		Get variable payment
// @Description	Returns a specific variable payment
// @Tags			VariablePayments
// @Produce		json
// @Success		200	{object}	VariablePaymentResponse
// @Failure		400	{object}	VariablePaymentResponse
// @Failure		404	{object}	VariablePaymentResponse
// @Failure		500	{object}	VariablePaymentResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/variable-payments/{id} [get]
func GetVariablePayment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VariablePaymentResponse{Error: &e})
		return
	}

	var payment models.VariablePayment
	err = models.DB.First(&payment, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VariablePaymentResponse{Error: &e})
		return
	}

	data := newVariablePayment(payment)
	c.JSON(http.StatusOK, VariablePaymentResponse{Data: &data})
}

// @Summary		Update variable payment
// @Description	Updates a variable payment. Only values to be updated need to be specified.
// @Tags			VariablePayments
// @Accept			json
// @Produce		json
// @Success		200				{object}	VariablePaymentResponse
// @Failure		400				{object}	VariablePaymentResponse
// @Failure		404				{object}	VariablePaymentResponse
// @Failure		500				{object}	VariablePaymentResponse
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			variablePayment	body		VariablePaymentEditable	true	"VariablePayment"
// @Router			/v1/variable-payments/{id} [patch]
func UpdateVariablePayment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VariablePaymentResponse{Error: &e})
		return
	}

	var payment models.VariablePayment
	err = models.DB.First(&payment, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VariablePaymentResponse{Error: &e})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, VariablePaymentEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VariablePaymentResponse{Error: &e})
		return
	}

	var data VariablePaymentEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VariablePaymentResponse{Error: &e})
		return
	}

	err = models.DB.Model(&payment).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VariablePaymentResponse{Error: &e})
		return
	}

	apiResource := newVariablePayment(payment)
	c.JSON(http.StatusOK, VariablePaymentResponse{Data: &apiResource})
}

// @Summary		Delete variable payment
// @Description	Deletes a variable payment and all of its confirmations
// @Tags			VariablePayments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/variable-payments/{id} [delete]
func DeleteVariablePayment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var payment models.VariablePayment
	err = models.DB.First(&payment, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where(&models.VariableConfirmation{VariablePaymentID: payment.ID}).
			Delete(&models.VariableConfirmation{}).Error
		if err != nil {
			return err
		}

		return tx.Delete(&payment).Error
	})
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			VariablePayments
// @Success		204
// @Router			/v1/variable-confirmations [options]
func OptionsVariableConfirmationList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			VariablePayments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/variable-confirmations/{id} [options]
func OptionsVariableConfirmationDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.First(&models.VariableConfirmation{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Header("allow", "GET, DELETE")
	c.Status(http.StatusNoContent)
}

// @Summary		Create confirmations
// @Description	Confirms the exact amount of specific variable payment occurrences. A confirmation replaces the estimate for exactly one occurrence date.
// @Tags			VariablePayments
// @Produce		json
// @Success		201				{object}	VariableConfirmationCreateResponse
// @Failure		400				{object}	VariableConfirmationCreateResponse
// @Failure		404				{object}	VariableConfirmationCreateResponse
// @Failure		500				{object}	VariableConfirmationCreateResponse
// @Param			confirmations	body		[]VariableConfirmationEditable	true	"Confirmations"
// @Router			/v1/variable-confirmations [post]
func CreateVariableConfirmations(c *gin.Context) {
	var editables []VariableConfirmationEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VariableConfirmationCreateResponse{Error: &e})
		return
	}

	s := http.StatusCreated
	r := VariableConfirmationCreateResponse{}

	for _, editable := range editables {
		confirmation := editable.model()

		err = models.DB.Create(&confirmation).Error
		if err != nil {
			s = r.appendError(err, s)
			continue
		}

		data := newVariableConfirmation(confirmation)
		r.Data = append(r.Data, VariableConfirmationResponse{Data: &data})
	}

	c.JSON(s, r)
}

// @Summary		Get confirmations
// @Description	Returns a list of confirmations
// @Tags			VariablePayments
// @Produce		json
// @Success		200	{object}	VariableConfirmationListResponse
// @Failure		500	{object}	VariableConfirmationListResponse
// @Router			/v1/variable-confirmations [get]
func GetVariableConfirmations(c *gin.Context) {
	var confirmations []models.VariableConfirmation
	err := models.DB.Order("occurrence_date ASC").Find(&confirmations).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VariableConfirmationListResponse{Error: &e})
		return
	}

	data := make([]VariableConfirmation, 0, len(confirmations))
	for _, confirmation := range confirmations {
		data = append(data, newVariableConfirmation(confirmation))
	}

	c.JSON(http.StatusOK, VariableConfirmationListResponse{Data: data})
}

// @Summary		Get confirmation
// @Description	Returns a specific confirmation
// @Tags			VariablePayments
// @Produce		json
// @Success		200	{object}	VariableConfirmationResponse
// @Failure		400	{object}	VariableConfirmationResponse
// @Failure		404	{object}	VariableConfirmationResponse
// @Failure		500	{object}	VariableConfirmationResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/variable-confirmations/{id} [get]
func GetVariableConfirmation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VariableConfirmationResponse{Error: &e})
		return
	}

	var confirmation models.VariableConfirmation
	err = models.DB.First(&confirmation, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), VariableConfirmationResponse{Error: &e})
		return
	}

	data := newVariableConfirmation(confirmation)
	c.JSON(http.StatusOK, VariableConfirmationResponse{Data: &data})
}

// @Summary		Delete confirmation
// @Description	Deletes a confirmation. The occurrence falls back to the estimated amount.
// @Tags			VariablePayments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/variable-confirmations/{id} [delete]
func DeleteVariableConfirmation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var confirmation models.VariableConfirmation
	err = models.DB.First(&confirmation, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&confirmation).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
