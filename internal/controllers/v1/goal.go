package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/httputil"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/ledger"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/models"
	"github.com/shopspring/decimal"
)

func (co Controller) registerGoalRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", optionsMember(httputil.OptionsGetPost))
		r.GET("", co.GetGoals)
		r.POST("", co.CreateGoal)
	}
	{
		r.OPTIONS("/:goalId", optionsMember(httputil.OptionsDelete))
		r.DELETE("/:goalId", co.DeleteGoal)
	}
	{
		r.OPTIONS("/:goalId/complete", optionsMember(httputil.OptionsPost))
		r.POST("/:goalId/complete", co.CompleteGoal)
		r.OPTIONS("/:goalId/deposit", optionsMember(httputil.OptionsPost))
		r.POST("/:goalId/deposit", co.moveGoalMoney(co.Ledger.AllocateToGoal))
		r.OPTIONS("/:goalId/withdraw", optionsMember(httputil.OptionsPost))
		r.POST("/:goalId/withdraw", co.moveGoalMoney(co.Ledger.WithdrawFromGoal))
	}
}

// Goal is a goal with its progress.
type Goal struct {
	models.Goal
	Progress decimal.Decimal `json:"progress" example:"24"` // Percentage of the target that is saved, at most 100
}

func newGoal(g models.Goal) Goal {
	return Goal{
		Goal:     g,
		Progress: g.Progress(),
	}
}

// Goals lists the goals of a member with the money held while no goal is active.
type Goals struct {
	Goals       []Goal `json:"goals"`
	GoalSavings int64  `json:"goalSavings" example:"30"` // Goal money of allocations made while no goal was active
}

// @Summary		List goals
// @Description	Returns the goals of the member and the goal savings
// @Tags			Goals
// @Produce		json
// @Success		200		{object}	Response[Goals]
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID		true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			active	query		QueryActive	false	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/members/{id}/goals [get]
func (co Controller) GetGoals(c *gin.Context) {
	m, err := member(c)
	if err != nil {
		fail(c, err)
		return
	}

	var query QueryActive
	if err := c.ShouldBindQuery(&query); err != nil {
		fail(c, err)
		return
	}

	list := co.Ledger.Goals
	if query.Active {
		list = co.Ledger.ActiveGoals
	}

	goals, err := list(c.Request.Context(), m.Scope())
	if err != nil {
		fail(c, err)
		return
	}

	savings, err := co.Ledger.GoalSavings(c.Request.Context(), m.Scope())
	if err != nil {
		fail(c, err)
		return
	}

	data := Goals{
		Goals:       make([]Goal, 0, len(goals)),
		GoalSavings: savings,
	}
	for _, g := range goals {
		data.Goals = append(data.Goals, newGoal(g))
	}

	c.JSON(http.StatusOK, Response[Goals]{Data: data})
}

// @Summary		Create goal
// @Description	Creates an active goal
// @Tags			Goals
// @Accept			json
// @Produce		json
// @Success		201		{object}	Response[Goal]
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			goal	body		ledger.GoalInput	true	"Goal"
// @Router			/v1/members/{id}/goals [post]
func (co Controller) CreateGoal(c *gin.Context) {
	m, err := member(c)
	if err != nil {
		fail(c, err)
		return
	}

	var data ledger.GoalInput
	if err := httputil.BindData(c, &data); err != nil {
		fail(c, err)
		return
	}

	g, err := co.Ledger.AddGoal(c.Request.Context(), m.Scope(), data)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, Response[Goal]{Data: newGoal(g)})
}

// @Summary		Delete goal
// @Description	Deletes a goal. The money of an active goal goes back to available.
// @Tags			Goals
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			goalId	path		string	true	"ID of the goal"
// @Router			/v1/members/{id}/goals/{goalId} [delete]
func (co Controller) DeleteGoal(c *gin.Context) {
	var uri URIGoal
	if err := c.ShouldBindUri(&uri); err != nil {
		fail(c, err)
		return
	}

	m, err := member(c)
	if err != nil {
		fail(c, err)
		return
	}

	err = co.Ledger.DeleteGoal(c.Request.Context(), m.Scope(), uri.GoalID.UUID)
	if err != nil {
		fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Complete goal
// @Description	Completes a goal that reached its target. The saved money is spent.
// @Tags			Goals
// @Produce		json
// @Success		200		{object}	Response[Goal]
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			goalId	path		string	true	"ID of the goal"
// @Router			/v1/members/{id}/goals/{goalId}/complete [post]
func (co Controller) CompleteGoal(c *gin.Context) {
	var uri URIGoal
	if err := c.ShouldBindUri(&uri); err != nil {
		fail(c, err)
		return
	}

	m, err := member(c)
	if err != nil {
		fail(c, err)
		return
	}

	g, err := co.Ledger.CompleteGoal(c.Request.Context(), m.Scope(), uri.GoalID.UUID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, Response[Goal]{Data: newGoal(g)})
}

// moveGoalMoney returns the handler that deposits to or withdraws from a goal.
//
//	@Summary		Deposit to or withdraw from goal
//	@Description	deposit moves available money to the goal, capped at what the goal still needs. withdraw moves goal money back to available.
//	@Tags			Goals
//	@Accept			json
//	@Produce		json
//	@Success		200		{object}	Response[Goal]
//	@Failure		400		{object}	httpError
//	@Failure		404		{object}	httpError
//	@Failure		409		{object}	httpError
//	@Failure		500		{object}	httpError
//	@Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
//	@Param			goalId	path		string			true	"ID of the goal"
//	@Param			amount	body		AmountEditable	true	"Amount"
//	@Router			/v1/members/{id}/goals/{goalId}/deposit [post]
//	@Router			/v1/members/{id}/goals/{goalId}/withdraw [post]
func (co Controller) moveGoalMoney(op func(ctx context.Context, scope ledger.Scope, id uuid.UUID, amount int64) (models.Goal, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var uri URIGoal
		if err := c.ShouldBindUri(&uri); err != nil {
			fail(c, err)
			return
		}

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

		g, err := op(c.Request.Context(), m.Scope(), uri.GoalID.UUID, data.Amount)
		if err != nil {
			fail(c, err)
			return
		}

		c.JSON(http.StatusOK, Response[Goal]{Data: newGoal(g)})
	}
}
