package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/eligibility"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/httputil"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/models"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/types"
)

func (co Controller) registerInvestmentRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", optionsMember(httputil.OptionsGet))
	r.GET("", co.GetInvestments)
}

type Investments struct {
	Balance      int64                     `json:"balance" example:"300"`          // Sum of all investments
	FirstDate    *types.Date               `json:"firstDate" example:"2025-06-25"` // Date of the first investment, null if there is none
	DurationDays int                       `json:"durationDays" example:"38"`      // Days since the first investment
	Monthly      []eligibility.MonthTotal  `json:"monthly"`                        // Invested sum per month, oldest first
	History      []models.InvestmentRecord `json:"history"`                        // All investments, newest first
}

// @Summary		Get investments
// @Description	Returns the investment history of the member with the derived figures
// @Tags			Investments
// @Produce		json
// @Success		200	{object}	Response[Investments]
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/members/{id}/investments [get]
func (co Controller) GetInvestments(c *gin.Context) {
	m, err := member(c)
	if err != nil {
		fail(c, err)
		return
	}

	ctx := c.Request.Context()
	scope := m.Scope()

	var data Investments
	if data.History, err = co.Ledger.InvestmentHistory(ctx, scope); err != nil {
		fail(c, err)
		return
	}

	if data.Balance, err = co.Ledger.InvestmentBalance(ctx, scope); err != nil {
		fail(c, err)
		return
	}

	if data.Monthly, err = co.Ledger.MonthlyInvestments(ctx, scope); err != nil {
		fail(c, err)
		return
	}

	if data.FirstDate, err = co.Ledger.FirstInvestmentDate(ctx, scope); err != nil {
		fail(c, err)
		return
	}

	if data.DurationDays, err = co.Ledger.InvestmentDurationDays(ctx, scope); err != nil {
		fail(c, err)
		return
	}

	if data.History == nil {
		data.History = make([]models.InvestmentRecord, 0)
	}

	if data.Monthly == nil {
		data.Monthly = make([]eligibility.MonthTotal, 0)
	}

	c.JSON(http.StatusOK, Response[Investments]{Data: data})
}
