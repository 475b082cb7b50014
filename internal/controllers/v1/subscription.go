package v1

import (
	"net/http"

	"github.com/cashplanner/backend/internal/httputil"
	"github.com/cashplanner/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterSubscriptionRoutes registers the routes for subscriptions with
// the RouterGroup that is passed.
func RegisterSubscriptionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSubscriptionList)
		r.GET("", GetSubscriptions)
		r.POST("", CreateSubscriptions)
	}

	// Subscription with ID
	{
		r.OPTIONS("/:id", OptionsSubscriptionDetail)
		r.GET("/:id", GetSubscription)
		r.PATCH("/:id", UpdateSubscription)
		r.DELETE("/:id", DeleteSubscription)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Subscriptions
// @Success		204
// @Router			/v1/subscriptions [options]
func OptionsSubscriptionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Subscriptions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subscriptions/{id} [options]
func OptionsSubscriptionDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Subscription{})
}

// @Summary		Create subscriptions
// @Description	Creates subscriptions from the list of submitted subscription data. The response code is the highest response code number that a single subscription creation would have caused. If it is not equal to 201, at least one subscription has an error.
// @Tags			Subscriptions
// @Produce		json
// @Success		201				{object}	SubscriptionCreateResponse
// @Failure		400				{object}	SubscriptionCreateResponse
// @Failure		404				{object}	SubscriptionCreateResponse
// @Failure		500				{object}	SubscriptionCreateResponse
// @Param			subscriptions	body		[]SubscriptionEditable	true	"Subscriptions"
// @Router			/v1/subscriptions [post]
func CreateSubscriptions(c *gin.Context) {
	var editables []SubscriptionEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionCreateResponse{Error: &e})
		return
	}

	s := http.StatusCreated
	r := SubscriptionCreateResponse{}

	for _, editable := range editables {
		subscription := editable.model()

		err = models.DB.Create(&subscription).Error
		if err != nil {
			s = r.appendError(err, s)
			continue
		}

		data := newSubscription(subscription)
		r.Data = append(r.Data, SubscriptionResponse{Data: &data})
	}

	c.JSON(s, r)
}

// @Summary		Get subscriptions
// @Description	Returns a list of subscriptions
// @Tags			Subscriptions
// @Produce		json
// @Success		200	{object}	SubscriptionListResponse
// @Failure		500	{object}	SubscriptionListResponse
// @Router			/v1/subscriptions [get]
func GetSubscriptions(c *gin.Context) {
	var subscriptions []models.Subscription
	err := models.DB.Order("name ASC").Find(&subscriptions).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionListResponse{Error: &e})
		return
	}

	data := make([]Subscription, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		data = append(data, newSubscription(subscription))
	}

	c.JSON(http.StatusOK, SubscriptionListResponse{Data: data})
}

// @Summary		Get subscription
// @Description	Returns a specific subscription
// @Tags			Subscriptions
// @Produce		json
// @Success		200	{object}	SubscriptionResponse
// @Failure		400	{object}	SubscriptionResponse
// @Failure		404	{object}	SubscriptionResponse
// @Failure		500	{object}	SubscriptionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subscriptions/{id} [get]
func GetSubscription(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionResponse{Error: &e})
		return
	}

	var subscription models.Subscription
	err = models.DB.First(&subscription, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionResponse{Error: &e})
		return
	}

	data := newSubscription(subscription)
	c.JSON(http.StatusOK, SubscriptionResponse{Data: &data})
}

// @Summary		Update subscription
// @Description	Updates a subscription. Only values to be updated need to be specified.
// @Tags			Subscriptions
// @Accept			json
// @Produce		json
// @Success		200				{object}	SubscriptionResponse
// @Failure		400				{object}	SubscriptionResponse
// @Failure		404				{object}	SubscriptionResponse
// @Failure		500				{object}	SubscriptionResponse
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			subscription	body		SubscriptionEditable	true	"Subscription"
// @Router			/v1/subscriptions/{id} [patch]
func UpdateSubscription(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionResponse{Error: &e})
		return
	}

	var subscription models.Subscription
	err = models.DB.First(&subscription, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionResponse{Error: &e})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, SubscriptionEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionResponse{Error: &e})
		return
	}

	var data SubscriptionEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionResponse{Error: &e})
		return
	}

	err = models.DB.Model(&subscription).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SubscriptionResponse{Error: &e})
		return
	}

	apiResource := newSubscription(subscription)
	c.JSON(http.StatusOK, SubscriptionResponse{Data: &apiResource})
}

// @Summary		Delete subscription
// @Description	Deletes a subscription
// @Tags			Subscriptions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/subscriptions/{id} [delete]
func DeleteSubscription(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var subscription models.Subscription
	err = models.DB.First(&subscription, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&subscription).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
