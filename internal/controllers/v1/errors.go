package v1

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/ledger"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/models"
	"github.com/rs/zerolog/log"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
	Data  any    `json:"data"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, ledger.ErrConcurrentModification) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

// fail writes the error response for err.
func fail(c *gin.Context, err error) {
	s := status(err)
	if s == http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	}

	c.JSON(s, httpError{
		Error: err.Error(),
	})
}

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)

// Family errors
var (
	errMemberNotInFamily = errors.New("the member does not belong to this family")
)

// Earning errors
var (
	errManualSourceOnly = errors.New("earnings can only be recorded with the source bonus or manual, task earnings are recorded by completing a task")
)
