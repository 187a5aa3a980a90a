package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/httputil"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/importer"
)

func (co Controller) registerImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", optionsMember(httputil.OptionsPost))
	r.POST("", co.ImportSnapshot)
}

// ImportEditable is a key-value snapshot of the web storage of the
// previous app.
type ImportEditable struct {
	FamilyID string            `json:"familyId" example:"family-1"` // Family ID used in the snapshot keys, defaults to the family ID
	MemberID string            `json:"memberId" example:"child-1"`  // Member ID used in the snapshot keys, defaults to the member ID
	Snapshot map[string]string `json:"snapshot"`                    // The stored keys and their raw values
}

// @Summary		Import snapshot
// @Description	Imports the ledger of a member from a snapshot of the previous app. Only works for members without ledger data.
// @Tags			Import
// @Accept			json
// @Produce		json
// @Success		201		{object}	Response[importer.Result]
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			import	body		ImportEditable	true	"Snapshot"
// @Router			/v1/members/{id}/import [post]
func (co Controller) ImportSnapshot(c *gin.Context) {
	m, err := member(c)
	if err != nil {
		fail(c, err)
		return
	}

	var data ImportEditable
	if err := httputil.BindData(c, &data); err != nil {
		fail(c, err)
		return
	}

	result, err := co.Ledger.ImportSnapshot(c.Request.Context(), m.Scope(), data.FamilyID, data.MemberID, data.Snapshot)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, Response[importer.Result]{Data: result})
}
