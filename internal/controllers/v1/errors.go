package v1

import (
	"errors"
	"net/http"

	"github.com/cashplanner/backend/internal/models"
	"gorm.io/gorm"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Import errors
var (
	errNoFilePost      = errors.New("you must send a file to this endpoint")
	errWrongFileSuffix = errors.New("this endpoint only supports files of the following types")
	errCardIDParameter = errors.New("the cardId parameter must be set to the ID of the card the statement belongs to")
)

// Forecast errors
var (
	errForecastRange = errors.New("the end of the forecast range must not be before its start")
)

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)
