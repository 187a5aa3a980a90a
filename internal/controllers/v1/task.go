package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/httputil"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/models"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/types"
)

func (co Controller) registerTaskRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/tasks/:taskId/complete", optionsMember(httputil.OptionsPost))
		r.POST("/tasks/:taskId/complete", co.CompleteTask)
	}
	{
		r.OPTIONS("/tasks/:taskId/completions", optionsMember(httputil.OptionsPut))
		r.PUT("/tasks/:taskId/completions", co.AdjustCompletions)
	}
	{
		r.OPTIONS("/completions", optionsMember(httputil.OptionsGet))
		r.GET("/completions", co.GetCompletions)
	}
	{
		r.OPTIONS("/completions/:completionId", optionsMember(httputil.OptionsDelete))
		r.DELETE("/completions/:completionId", co.RemoveCompletion)
	}
}

// @Summary		Complete task
// @Description	Completes a task for the member and records the reward as pending earning
// @Tags			Tasks
// @Produce		json
// @Success		201		{object}	Response[models.TaskCompletion]
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			taskId	path		string	true	"ID of the task"
// @Router			/v1/members/{id}/tasks/{taskId}/complete [post]
func (co Controller) CompleteTask(c *gin.Context) {
	var uri URITask
	if err := c.ShouldBindUri(&uri); err != nil {
		fail(c, err)
		return
	}

	m, err := member(c)
	if err != nil {
		fail(c, err)
		return
	}

	completion, err := co.Ledger.CompleteTask(c.Request.Context(), m.Scope(), uri.TaskID.UUID)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, Response[models.TaskCompletion]{Data: completion})
}

// @Summary		Set completions
// @Description	Adds or removes completions of a task on a past day or today until the requested count is reached
// @Tags			Tasks
// @Accept			json
// @Produce		json
// @Success		200			{object}	Response[CompletionsCount]
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			taskId		path		string				true	"ID of the task"
// @Param			completions	body		CompletionsEditable	true	"Day and count"
// @Router			/v1/members/{id}/tasks/{taskId}/completions [put]
func (co Controller) AdjustCompletions(c *gin.Context) {
	var uri URITask
	if err := c.ShouldBindUri(&uri); err != nil {
		fail(c, err)
		return
	}

	m, err := member(c)
	if err != nil {
		fail(c, err)
		return
	}

	var data CompletionsEditable
	if err := httputil.BindData(c, &data); err != nil {
		fail(c, err)
		return
	}

	count, err := co.Ledger.AdjustCompletions(c.Request.Context(), m.Scope(), uri.TaskID.UUID, data.Date, data.Count)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, Response[CompletionsCount]{Data: CompletionsCount{Count: count}})
}

// @Summary		List completions
// @Description	Returns the task completions of the member on one day
// @Tags			Tasks
// @Produce		json
// @Success		200		{object}	Response[[]models.TaskCompletion]
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID		true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			date	query		QueryDate	false	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/members/{id}/completions [get]
func (co Controller) GetCompletions(c *gin.Context) {
	m, err := member(c)
	if err != nil {
		fail(c, err)
		return
	}

	var query QueryDate
	if err := c.ShouldBindQuery(&query); err != nil {
		fail(c, err)
		return
	}

	day := co.Ledger.Today()
	if query.Date != "" {
		day, err = types.ParseDate(query.Date)
		if err != nil {
			fail(c, err)
			return
		}
	}

	completions, err := co.Ledger.CompletionsOn(c.Request.Context(), m.Scope(), day)
	if err != nil {
		fail(c, err)
		return
	}

	if completions == nil {
		completions = make([]models.TaskCompletion, 0)
	}

	c.JSON(http.StatusOK, Response[[]models.TaskCompletion]{Data: completions})
}

// @Summary		Remove completion
// @Description	Removes a task completion. Its earning expires if it has not been allocated yet.
// @Tags			Tasks
// @Success		204
// @Failure		400				{object}	httpError
// @Failure		404				{object}	httpError
// @Failure		500				{object}	httpError
// @Param			id				path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			completionId	path		string	true	"ID of the task completion"
// @Router			/v1/members/{id}/completions/{completionId} [delete]
func (co Controller) RemoveCompletion(c *gin.Context) {
	var uri URICompletion
	if err := c.ShouldBindUri(&uri); err != nil {
		fail(c, err)
		return
	}

	m, err := member(c)
	if err != nil {
		fail(c, err)
		return
	}

	err = co.Ledger.RemoveCompletion(c.Request.Context(), m.Scope(), uri.CompletionID.UUID)
	if err != nil {
		fail(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
