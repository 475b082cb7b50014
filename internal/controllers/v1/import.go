package v1

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/cashplanner/backend/internal/httputil"
	"github.com/cashplanner/backend/internal/importer"
	"github.com/cashplanner/backend/internal/importer/parser/cardcsv"
	"github.com/cashplanner/backend/internal/models"
	ez_uuid "github.com/cashplanner/backend/internal/uuid"
	"github.com/gin-gonic/gin"
)

type ImportPreviewQuery struct {
	CardID ez_uuid.UUID `form:"cardId" binding:"required"` // ID of the card the statement belongs to
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(formFile.Filename, suffix) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, suffix)
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, err
	}

	return f, nil
}

type ImportPreviewList struct {
	Data     []importer.TransactionPreview `json:"data"`     // List of transaction previews
	Warnings []string                      `json:"warnings"` // Statement lines that could not be parsed
	Error    *string                       `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// RegisterImportRoutes registers the routes for imports.
func RegisterImportRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsImport)
		r.GET("", GetImport)

		r.OPTIONS("/card-statement-preview", OptionsImportCardStatementPreview)
		r.POST("/card-statement-preview", ImportCardStatementPreview)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsGet(c)
}

type ImportResponse struct {
	Links ImportLinks `json:"links"` // Links for the import endpoints
}

type ImportLinks struct {
	CardStatementPreview string `json:"cardStatementPreview" example:"https://example.com/api/v1/import/card-statement-preview"` // URL of the card statement preview endpoint
}

// @Summary		Import API overview
// @Description	Returns general information about the import endpoints
// @Tags			Import
// @Success		200	{object}	ImportResponse
// @Router			/v1/import [get]
func GetImport(c *gin.Context) {
	c.JSON(http.StatusOK, ImportResponse{
		Links: ImportLinks{
			CardStatementPreview: c.GetString(string(models.DBContextURL)) + "/v1/import/card-statement-preview",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import/card-statement-preview [options]
func OptionsImportCardStatementPreview(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Card statement import preview
// @Description	Returns a preview of card transactions to be imported after parsing a card statement csv file. Merchant names are cleaned up with the configured match rules and duplicates of already imported transactions are flagged.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		200		{object}	ImportPreviewList
// @Failure		400		{object}	ImportPreviewList
// @Failure		404		{object}	ImportPreviewList
// @Failure		500		{object}	ImportPreviewList
// @Param			file	formData	file				true	"File to import"
// @Param			cardId	query		ImportPreviewQuery	false	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/import/card-statement-preview [post]
func ImportCardStatementPreview(c *gin.Context) {
	var query ImportPreviewQuery
	err := c.BindQuery(&query)
	if err != nil {
		s := fmt.Errorf("cardId: %w", err).Error()
		c.JSON(http.StatusBadRequest, ImportPreviewList{
			Error: &s,
		})
		return
	}

	if query.CardID == ez_uuid.Nil {
		s := errCardIDParameter.Error()
		c.JSON(http.StatusBadRequest, ImportPreviewList{
			Error: &s,
		})
		return
	}

	f, err := getUploadedFile(c, ".csv")
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportPreviewList{
			Error: &s,
		})
		return
	}

	// Verify that the card exists
	var card models.Card
	err = models.DB.First(&card, query.CardID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportPreviewList{
			Error: &s,
		})
		return
	}

	previews, warnings, err := cardcsv.Parse(f, card)
	if err != nil {
		// cardcsv.Parse returns a usable error already
		s := err.Error()
		c.JSON(http.StatusBadRequest, ImportPreviewList{
			Error: &s,
		})
		return
	}

	// Rules are loaded in priority order, the first match wins
	var matchRules []models.MatchRule
	err = models.DB.Order("priority ASC, match ASC").Find(&matchRules).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportPreviewList{
			Error: &s,
		})
		return
	}

	for i, preview := range previews {
		if len(matchRules) > 0 {
			importer.Match(&preview, matchRules)
		}

		err = importer.DuplicateTransactions(models.DB, &preview)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), ImportPreviewList{
				Error: &s,
			})
			return
		}

		previews[i] = preview
	}

	c.JSON(http.StatusOK, ImportPreviewList{Data: previews, Warnings: warnings})
}
