package v1

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/httputil"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.DELETE("", Cleanup)
	r.OPTIONS("", Options)
}

type RootResponse struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Families string `json:"families" example:"https://example.com/api/v1/families"` // URL of the Family collection endpoint
	Members  string `json:"members" example:"https://example.com/api/v1/members"`   // Base URL of all member ledger endpoints
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	RootResponse
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, RootResponse{
		Links: Links{
			Families: url + "/v1/families",
			Members:  url + "/v1/members",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}

// @Summary		Delete everything
// @Description	Permanently deletes all families with their members, tasks and ledgers
// @Tags			v1
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			confirm	query		string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/v1 [delete]
func Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.ShouldBindQuery(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		fail(c, errCleanupConfirmation)
		return
	}

	// All models or none
	err = models.DB.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		for _, model := range models.All() {
			if err := tx.Unscoped().Where("true").Delete(&model).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// Failing to begin the transaction does not pass the gorm callbacks
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("cleanup failed")
		fail(c, models.ErrGeneral)
		return
	}

	log.Info().Str("request-id", requestid.Get(c)).Msg("deleted all families")
	c.Status(http.StatusNoContent)
}
