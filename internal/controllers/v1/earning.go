package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/httputil"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/models"
)

func (co Controller) registerEarningRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/earnings", optionsMember(httputil.OptionsGetPost))
	r.GET("/earnings", co.GetEarnings)
	r.POST("/earnings", co.RecordEarning)
}

type EarningEditable struct {
	Amount int64                `json:"amount" example:"100"`   // Amount earned
	Source models.EarningSource `json:"source" example:"bonus"` // bonus or manual
}

type Earnings struct {
	Today   int64                  `json:"today" example:"150"` // Sum of everything earned today
	History []models.EarningRecord `json:"history"`             // All earnings, newest first
}

// @Summary		Get earnings
// @Description	Returns the earning history of the member and the sum earned today
// @Tags			Earnings
// @Produce		json
// @Success		200	{object}	Response[Earnings]
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/members/{id}/earnings [get]
func (co Controller) GetEarnings(c *gin.Context) {
	m, err := member(c)
	if err != nil {
		fail(c, err)
		return
	}

	history, err := co.Ledger.EarningHistory(c.Request.Context(), m.Scope())
	if err != nil {
		fail(c, err)
		return
	}

	today, err := co.Ledger.TodayEarnings(c.Request.Context(), m.Scope())
	if err != nil {
		fail(c, err)
		return
	}

	if history == nil {
		history = make([]models.EarningRecord, 0)
	}

	c.JSON(http.StatusOK, Response[Earnings]{Data: Earnings{
		Today:   today,
		History: history,
	}})
}

// @Summary		Record earning
// @Description	Records a bonus or a manual earning for today. It is pending until its month can be allocated.
// @Tags			Earnings
// @Accept			json
// @Produce		json
// @Success		201		{object}	Response[models.EarningRecord]
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			earning	body		EarningEditable	true	"Earning"
// @Router			/v1/members/{id}/earnings [post]
func (co Controller) RecordEarning(c *gin.Context) {
	m, err := member(c)
	if err != nil {
		fail(c, err)
		return
	}

	var data EarningEditable
	if err := httputil.BindData(c, &data); err != nil {
		fail(c, err)
		return
	}

	if data.Source == models.SourceTaskCompletion {
		fail(c, errManualSourceOnly)
		return
	}

	record, err := co.Ledger.RecordEarning(c.Request.Context(), m.Scope(), data.Amount, data.Source, nil)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, Response[models.EarningRecord]{Data: record})
}
