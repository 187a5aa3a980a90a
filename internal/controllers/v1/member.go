package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/httputil"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/models"
)

// RegisterMemberRoutes registers the ledger routes of members with
// the RouterGroup that is passed.
func (co Controller) RegisterMemberRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/:id", OptionsMemberGet)
		r.GET("/:id", GetMember)
	}

	co.registerTaskRoutes(r.Group("/:id"))
	co.registerEarningRoutes(r.Group("/:id"))
	co.registerAllocationRoutes(r.Group("/:id"))
	co.registerBalanceRoutes(r.Group("/:id/balance"))
	co.registerGoalRoutes(r.Group("/:id/goals"))
	co.registerInvestmentRoutes(r.Group("/:id/investments"))
	co.registerImportRoutes(r.Group("/:id/import"))
}

// member loads the member addressed by the id parameter.
func member(c *gin.Context) (models.Member, error) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		return models.Member{}, err
	}

	var m models.Member
	err := models.DB.Where("id = ?", uri.ID.UUID).First(&m).Error
	return m, err
}

// optionsMember only answers OPTIONS requests for existing members.
func optionsMember(allow gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := member(c); err != nil {
			fail(c, err)
			return
		}

		allow(c)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Members
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/members/{id} [options]
func OptionsMemberGet(c *gin.Context) {
	optionsMember(httputil.OptionsGet)(c)
}

// @Summary		Get member
// @Description	Returns a specific member
// @Tags			Members
// @Produce		json
// @Success		200	{object}	Response[models.Member]
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/members/{id} [get]
func GetMember(c *gin.Context) {
	m, err := member(c)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, Response[models.Member]{Data: m})
}
