// Package healthz reports whether the backend can serve requests.
package healthz

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/httputil"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/models"
	"github.com/rs/zerolog/log"
)

type healthError struct {
	Error string `json:"error" example:"the database cannot be reached"`
	Data  any    `json:"data"`
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns 204 if the database can be reached and 503 with an error otherwise
// @Tags			General
// @Success		204
// @Failure		503	{object}	healthError
// @Router			/healthz [get]
func Get(c *gin.Context) {
	if models.DB == nil {
		unhealthy(c, "the database is not connected")
		return
	}

	sqlDB, err := models.DB.DB()
	if err != nil {
		log.Error().Err(err).Msg("health check could not get the database connection")
		unhealthy(c, "the database cannot be reached")
		return
	}

	err = sqlDB.PingContext(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("health check ping failed")
		unhealthy(c, "the database cannot be reached")
		return
	}

	c.Status(http.StatusNoContent)
}

func unhealthy(c *gin.Context, msg string) {
	c.JSON(http.StatusServiceUnavailable, healthError{Error: msg})
}
