package httputil

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Allow returns a handler that answers OPTIONS requests with an empty body
// and the allowed methods in the allow header. OPTIONS is always allowed.
func Allow(methods ...string) gin.HandlerFunc {
	allow := strings.Join(append([]string{http.MethodOptions}, methods...), ", ")

	return func(c *gin.Context) {
		c.Header("allow", allow)
		c.Status(http.StatusNoContent)
	}
}

var (
	OptionsGet       = Allow(http.MethodGet)
	OptionsPost      = Allow(http.MethodPost)
	OptionsPut       = Allow(http.MethodPut)
	OptionsDelete    = Allow(http.MethodDelete)
	OptionsGetPost   = Allow(http.MethodGet, http.MethodPost)
	OptionsGetDelete = Allow(http.MethodGet, http.MethodDelete)
)
