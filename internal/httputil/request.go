// Package httputil holds the request helpers shared by all controllers.
package httputil

import (
	"errors"
	"io"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidBody      = errors.New("the body of your request contains invalid or un-parseable data. Please check and try again")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
)

// BindData binds the JSON body of the request to data.
//
// The cause of a parse failure is only logged, clients get ErrInvalidBody.
func BindData(c *gin.Context, data any) error {
	err := c.ShouldBindJSON(data)
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) {
		return ErrRequestBodyEmpty
	}

	log.Debug().Str("request-id", requestid.Get(c)).Str("path", c.FullPath()).Msgf("%T: %v", err, err.Error())
	return ErrInvalidBody
}
