package v1

import (
	"net/http"

	"github.com/cashplanner/backend/internal/httputil"
	"github.com/cashplanner/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterCardRoutes registers the routes for cards with
// the RouterGroup that is passed.
func RegisterCardRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCardList)
		r.GET("", GetCards)
		r.POST("", CreateCards)
	}

	// Card with ID
	{
		r.OPTIONS("/:id", OptionsCardDetail)
		r.GET("/:id", GetCard)
		r.PATCH("/:id", UpdateCard)
		r.DELETE("/:id", DeleteCard)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Cards
// @Success		204
// @Router			/v1/cards [options]
func OptionsCardList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Cards
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/cards/{id} [options]
func OptionsCardDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Card{})
}

// @Summary		Create cards
// @Description	Creates cards from the list of submitted card data. The response code is the highest response code number that a single card creation would have caused. If it is not equal to 201, at least one card has an error.
// @Tags			Cards
// @Produce		json
// @Success		201		{object}	CardCreateResponse
// @Failure		400		{object}	CardCreateResponse
// @Failure		404		{object}	CardCreateResponse
// @Failure		500		{object}	CardCreateResponse
// @Param			cards	body		[]CardEditable	true	"Cards"
// @Router			/v1/cards [post]
func CreateCards(c *gin.Context) {
	var editables []CardEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CardCreateResponse{Error: &e})
		return
	}

	s := http.StatusCreated
	r := CardCreateResponse{}

	for _, editable := range editables {
		card := editable.model()

		err = models.DB.Create(&card).Error
		if err != nil {
			s = r.appendError(err, s)
			continue
		}

		data := newCard(card)
		r.Data = append(r.Data, CardResponse{Data: &data})
	}

	c.JSON(s, r)
}

// @Summary		Get cards
// @Description	Returns a list of cards
// @Tags			Cards
// @Produce		json
// @Success		200	{object}	CardListResponse
// @Failure		500	{object}	CardListResponse
// @Router			/v1/cards [get]
func GetCards(c *gin.Context) {
	var cards []models.Card
	err := models.DB.Order("name ASC").Find(&cards).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CardListResponse{Error: &e})
		return
	}

	data := make([]Card, 0, len(cards))
	for _, card := range cards {
		data = append(data, newCard(card))
	}

	c.JSON(http.StatusOK, CardListResponse{Data: data})
}

// @Summary		Get card
// @Description	Returns a specific card
// @Tags			Cards
// @Produce		json
// @Success		200	{object}	CardResponse
// @Failure		400	{object}	CardResponse
// @Failure		404	{object}	CardResponse
// @Failure		500	{object}	CardResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/cards/{id} [get]
func GetCard(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CardResponse{Error: &e})
		return
	}

	var card models.Card
	err = models.DB.First(&card, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CardResponse{Error: &e})
		return
	}

	data := newCard(card)
	c.JSON(http.StatusOK, CardResponse{Data: &data})
}

// @Summary		Update card
// @Description	Updates a card. Only values to be updated need to be specified.
// @Tags			Cards
// @Accept			json
// @Produce		json
// @Success		200	{object}	CardResponse
// @Failure		400	{object}	CardResponse
// @Failure		404	{object}	CardResponse
// @Failure		500	{object}	CardResponse
// @Param			id	path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			card	body		CardEditable	true	"Card"
// @Router			/v1/cards/{id} [patch]
func UpdateCard(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CardResponse{Error: &e})
		return
	}

	var card models.Card
	err = models.DB.First(&card, uri.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CardResponse{Error: &e})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CardEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CardResponse{Error: &e})
		return
	}

	var data CardEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CardResponse{Error: &e})
		return
	}

	err = models.DB.Model(&card).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CardResponse{Error: &e})
		return
	}

	apiResource := newCard(card)
	c.JSON(http.StatusOK, CardResponse{Data: &apiResource})
}

// @Summary		Delete card
// @Description	Deletes a card
// @Tags			Cards
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/cards/{id} [delete]
func DeleteCard(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var card models.Card
	err = models.DB.First(&card, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&card).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
