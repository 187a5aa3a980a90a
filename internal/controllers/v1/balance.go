package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/httputil"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/ledger"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/models"
)

// balanceOperation moves an amount between the money buckets of a member.
type balanceOperation func(ctx context.Context, scope ledger.Scope, amount int64) (models.Balance, error)

func (co Controller) registerBalanceRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", optionsMember(httputil.OptionsGet))
		r.GET("", co.GetBalance)
	}

	operations := map[string]balanceOperation{
		"add":           co.Ledger.AddMoney,
		"spend":         co.Ledger.SpendMoney,
		"allocate":      co.Ledger.AllocateMoney,
		"deallocate":    co.Ledger.DeallocateMoney,
		"move-to-spent": co.Ledger.MoveAllocatedToSpent,
	}

	for path, op := range operations {
		r.OPTIONS("/"+path, optionsMember(httputil.OptionsPost))
		r.POST("/"+path, co.moveMoney(op))
	}

	r.OPTIONS("/reset", optionsMember(httputil.OptionsPost))
	r.POST("/reset", co.ResetBalance)
}

// @Summary		Get balance
// @Description	Returns the money buckets of the member with goal savings, the investment balance and the savings and spending rates
// @Tags			Balance
// @Produce		json
// @Success		200	{object}	Response[ledger.Summary]
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/members/{id}/balance [get]
func (co Controller) GetBalance(c *gin.Context) {
	m, err := member(c)
	if err != nil {
		fail(c, err)
		return
	}

	summary, err := co.Ledger.BalanceSummary(c.Request.Context(), m.Scope())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, Response[ledger.Summary]{Data: summary})
}

// moveMoney returns the handler for one balance operation.
//
//	@Summary		Move money
//	@Description	add puts new money into available and total. spend moves available to spent. allocate and deallocate move money between available and allocated. move-to-spent moves allocated to spent.
//	@Tags			Balance
//	@Accept			json
//	@Produce		json
//	@Success		200			{object}	Response[models.Balance]
//	@Failure		400			{object}	httpError
//	@Failure		404			{object}	httpError
//	@Failure		409			{object}	httpError
//	@Failure		500			{object}	httpError
//	@Param			id			path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
//	@Param			operation	path		string			true	"add, spend, allocate, deallocate or move-to-spent"
//	@Param			amount		body		AmountEditable	true	"Amount"
//	@Router			/v1/members/{id}/balance/{operation} [post]
func (co Controller) moveMoney(op balanceOperation) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, err := member(c)
		if err != nil {
			fail(c, err)
			return
		}

		var data AmountEditable
		if err := httputil.BindData(c, &data); err != nil {
			fail(c, err)
			return
		}

		balance, err := op(c.Request.Context(), m.Scope(), data.Amount)
		if err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, Response[models.Balance]{Data: balance})
	}
}

// @Summary		Reset balance
// @Description	Sets all money buckets of the member to zero
// @Tags			Balance
// @Produce		json
// @Success		200	{object}	Response[models.Balance]
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/members/{id}/balance/reset [post]
func (co Controller) ResetBalance(c *gin.Context) {
	m, err := member(c)
	if err != nil {
		fail(c, err)
		return
	}

	balance, err := co.Ledger.ResetBalance(c.Request.Context(), m.Scope())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, Response[models.Balance]{Data: balance})
}
