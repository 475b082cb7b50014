package v1

import (
	"net/http"

	"github.com/cashplanner/backend/internal/httputil"
	"github.com/cashplanner/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterHolidayRoutes registers the routes for holidays with the
// RouterGroup that is passed.
func RegisterHolidayRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsHolidayList)
		r.GET("", GetHolidays)
		r.POST("", CreateHolidays)
	}

	// Holiday with ID
	{
		r.OPTIONS("/:id", OptionsHolidayDetail)
		r.GET("/:id", GetHoliday)
		r.PATCH("/:id", UpdateHoliday)
		r.DELETE("/:id", DeleteHoliday)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Holidays
// @Success		204
// @Router			/v1/holidays [options]
func OptionsHolidayList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Holidays
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/holidays/{id} [options]
func OptionsHolidayDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Holiday{})
}

// @Summary		Create holidays
// @Description	Creates holidays from the list of submitted data. The response code is the highest response code number that a single creation would have caused. If it is not equal to 201, at least one holiday has an error.
// @Tags			Holidays
// @Produce		json
// @Success		201			{object}	HolidayCreateResponse
// @Failure		400			{object}	HolidayCreateResponse
// @Failure		404			{object}	HolidayCreateResponse
// @Failure		500			{object}	HolidayCreateResponse
// @Param			holidays	body		[]HolidayEditable	true	"Holidays"
// @Router			/v1/holidays [post]
func CreateHolidays(c *gin.Context) {
	var editables []HolidayEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HolidayCreateResponse{Error: &e})
		return
	}

	s := http.StatusCreated
	r := HolidayCreateResponse{}

	for _, editable := range editables {
		holiday := editable.model()

		err = models.DB.Create(&holiday).Error
		if err != nil {
			s = r.appendError(err, s)
			continue
		}

		data := newHoliday(holiday)
		r.Data = append(r.Data, HolidayResponse{Data: &data})
	}

	c.JSON(s, r)
}

// @Summary		Get holidays
// @Description	Returns a list of holidays
// @Tags			Holidays
// @Produce		json
// @Success		200	{object}	HolidayListResponse
// @Failure		500	{object}	HolidayListResponse
// @Router			/v1/holidays [get]
func GetHolidays(c *gin.Context) {
	var holidays []models.Holiday
	err := models.DB.Order("date ASC").Find(&holidays).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HolidayListResponse{Error: &e})
		return
	}

	data := make([]Holiday, 0, len(holidays))
	for _, holiday := range holidays {
		data = append(data, newHoliday(holiday))
	}

	c.JSON(http.StatusOK, HolidayListResponse{Data: data})
}

// @Summary		Get holiday
// @Description	Returns a specific holiday
// @Tags			Holidays
// @Produce		json
// @Success		200	{object}	HolidayResponse
// @Failure		400	{object}	HolidayResponse
// @Failure		404	{object}	HolidayResponse
// @Failure		500	{object}	HolidayResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/holidays/{id} [get]
func GetHoliday(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HolidayResponse{Error: &e})
		return
	}

	var holiday models.Holiday
	err = models.DB.First(&holiday, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HolidayResponse{Error: &e})
		return
	}

	data := newHoliday(holiday)
	c.JSON(http.StatusOK, HolidayResponse{Data: &data})
}

// @Summary		Update holiday
// @Description	Updates a holiday. Only values to be updated need to be specified.
// @Tags			Holidays
// @Accept			json
// @Produce		json
// @Success		200		{object}	HolidayResponse
// @Failure		400		{object}	HolidayResponse
// @Failure		404		{object}	HolidayResponse
// @Failure		500		{object}	HolidayResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			holiday	body		HolidayEditable	true	"Holiday"
// @Router			/v1/holidays/{id} [patch]
func UpdateHoliday(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HolidayResponse{Error: &e})
		return
	}

	var holiday models.Holiday
	err = models.DB.First(&holiday, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HolidayResponse{Error: &e})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, HolidayEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HolidayResponse{Error: &e})
		return
	}

	var data HolidayEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HolidayResponse{Error: &e})
		return
	}

	err = models.DB.Model(&holiday).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HolidayResponse{Error: &e})
		return
	}

	apiResource := newHoliday(holiday)
	c.JSON(http.StatusOK, HolidayResponse{Data: &apiResource})
}

// @Summary		Delete holiday
// @Description	Deletes a holiday
// @Tags			Holidays
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/holidays/{id} [delete]
func DeleteHoliday(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var holiday models.Holiday
	err = models.DB.First(&holiday, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&holiday).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
