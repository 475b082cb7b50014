package v1

import (
	"net/http"

	"github.com/cashplanner/backend/internal/httputil"
	"github.com/cashplanner/backend/internal/models"
	ez_uuid "github.com/cashplanner/backend/internal/uuid"
	"github.com/gin-gonic/gin"
)

// RegisterEventRoutes registers the routes for cashflow events with
// the RouterGroup that is passed.
func RegisterEventRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsEventList)
		r.GET("", GetEvents)
		r.POST("", CreateEvents)
	}

	// Event with ID
	{
		r.OPTIONS("/:id", OptionsEventDetail)
		r.GET("/:id", GetEvent)
		r.PATCH("/:id", UpdateEvent)
		r.DELETE("/:id", DeleteEvent)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Events
// @Success		204
// @Router			/v1/events [options]
func OptionsEventList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Events
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/events/{id} [options]
func OptionsEventDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.CashflowEvent{})
}

// @Summary		Create events
// @Description	Creates one-off and transfer events from the list of submitted data. Derived events belong to the planner and are rejected. The response code is the highest response code number that a single creation would have caused. If it is not equal to 201, at least one event has an error.
// @Tags			Events
// @Produce		json
// @Success		201		{object}	EventCreateResponse
// @Failure		400		{object}	EventCreateResponse
// @Failure		404		{object}	EventCreateResponse
// @Failure		500		{object}	EventCreateResponse
// @Param			events	body		[]EventEditable	true	"Events"
// @Router			/v1/events [post]
func CreateEvents(c *gin.Context) {
	var editables []EventEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EventCreateResponse{Error: &e})
		return
	}

	s := http.StatusCreated
	r := EventCreateResponse{}

	for _, editable := range editables {
		event := editable.model()

		if event.Derived() {
			s = r.appendError(models.ErrEventSourceDerived, s)
			continue
		}

		err = models.DB.Create(&event).Error
		if err != nil {
			s = r.appendError(err, s)
			continue
		}

		data := newEvent(event)
		r.Data = append(r.Data, EventResponse{Data: &data})
	}

	c.JSON(s, r)
}

// @Summary		Get events
// @Description	Returns a list of cashflow events, optionally filtered by date range, account and source
// @Tags			Events
// @Produce		json
// @Success		200		{object}	EventListResponse
// @Failure		400		{object}	EventListResponse
// @Failure		500		{object}	EventListResponse
// @Param			from	query		string	false	"Only events on or after this date (YYYY-MM-DD)"
// @Param			until	query		string	false	"Only events on or before this date (YYYY-MM-DD)"
// @Param			account	query		string	false	"Filter by account ID"
// @Param			source	query		string	false	"Filter by event source"
// @Router			/v1/events [get]
func GetEvents(c *gin.Context) {
	var filter EventQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, EventListResponse{Error: &e})
		return
	}

	query := models.DB.Order("date ASC, sequence ASC")

	if !filter.From.IsZero() {
		query = query.Where("date >= ?", filter.From)
	}

	if !filter.Until.IsZero() {
		query = query.Where("date <= ?", filter.Until)
	}

	if filter.Account != "" {
		var id ez_uuid.UUID
		if err := id.UnmarshalParam(filter.Account); err != nil {
			e := httputil.ErrInvalidUUID.Error()
			c.JSON(http.StatusBadRequest, EventListResponse{Error: &e})
			return
		}

		query = query.Where(&models.CashflowEvent{AccountID: id.UUID})
	}

	if filter.Source != "" {
		query = query.Where(&models.CashflowEvent{Source: filter.Source})
	}

	var events []models.CashflowEvent
	err := query.Find(&events).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EventListResponse{Error: &e})
		return
	}

	data := make([]Event, 0, len(events))
	for _, event := range events {
		data = append(data, newEvent(event))
	}

	c.JSON(http.StatusOK, EventListResponse{Data: data})
}

// @Summary		Get event
// @Description	Returns a specific cashflow event
// @Tags			Events
// @Produce		json
// @Success		200	{object}	EventResponse
// @Failure		400	{object}	EventResponse
// @Failure		404	{object}	EventResponse
// @Failure		500	{object}	EventResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/events/{id} [get]
func GetEvent(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EventResponse{Error: &e})
		return
	}

	var event models.CashflowEvent
	err = models.DB.First(&event, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EventResponse{Error: &e})
		return
	}

	data := newEvent(event)
	c.JSON(http.StatusOK, EventResponse{Data: &data})
}

// @Summary		Update event
// @Description	Updates a one-off or transfer event. Derived events belong to the planner and are rejected. Only values to be updated need to be specified.
// @Tags			Events
// @Accept			json
// @Produce		json
// @Success		200		{object}	EventResponse
// @Failure		400		{object}	EventResponse
// @Failure		404		{object}	EventResponse
// @Failure		500		{object}	EventResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			event	body		EventEditable	true	"Event"
// @Router			/v1/events/{id} [patch]
func UpdateEvent(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EventResponse{Error: &e})
		return
	}

	var event models.CashflowEvent
	err = models.DB.First(&event, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EventResponse{Error: &e})
		return
	}

	if event.Derived() {
		e := models.ErrEventSourceDerived.Error()
		c.JSON(http.StatusBadRequest, EventResponse{Error: &e})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, EventEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EventResponse{Error: &e})
		return
	}

	var data EventEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EventResponse{Error: &e})
		return
	}

	model := data.model()
	if model.Derived() {
		e := models.ErrEventSourceDerived.Error()
		c.JSON(http.StatusBadRequest, EventResponse{Error: &e})
		return
	}

	err = models.DB.Model(&event).Select("", updateFields...).Updates(model).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EventResponse{Error: &e})
		return
	}

	apiResource := newEvent(event)
	c.JSON(http.StatusOK, EventResponse{Data: &apiResource})
}

// @Summary		Delete event
// @Description	Deletes a one-off or transfer event. Derived events belong to the planner and are rejected.
// @Tags			Events
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/events/{id} [delete]
func DeleteEvent(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var event models.CashflowEvent
	err = models.DB.First(&event, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if event.Derived() {
		c.JSON(http.StatusBadRequest, httpError{Error: models.ErrEventSourceDerived.Error()})
		return
	}

	err = models.DB.Delete(&event).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
