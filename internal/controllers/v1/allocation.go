package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/httputil"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/ledger"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/models"
)

func (co Controller) registerAllocationRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/allocation", optionsMember(httputil.OptionsGetPost))
		r.GET("/allocation", co.GetAllocationStatus)
		r.POST("/allocation", co.SubmitAllocation)
	}
	{
		r.OPTIONS("/allocations", optionsMember(httputil.OptionsGet))
		r.GET("/allocations", co.GetAllocations)
	}
}

// @Summary		Allocation status
// @Description	Returns how much the member can allocate today, the pending money per month and the next allocation date
// @Tags			Allocation
// @Produce		json
// @Success		200	{object}	Response[ledger.AllocationStatus]
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/members/{id}/allocation [get]
func (co Controller) GetAllocationStatus(c *gin.Context) {
	m, err := member(c)
	if err != nil {
		fail(c, err)
		return
	}

	s, err := co.Ledger.AllocationStatus(c.Request.Context(), m.Scope())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, Response[ledger.AllocationStatus]{Data: s})
}

// @Summary		Allocate money
// @Description	Distributes all money of the eligible months to the goal, cash and investment. The parts must add up to the allocatable amount.
// @Tags			Allocation
// @Accept			json
// @Produce		json
// @Success		201		{object}	Response[models.Allocation]
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		409		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			split	body		ledger.Split	true	"Split"
// @Router			/v1/members/{id}/allocation [post]
func (co Controller) SubmitAllocation(c *gin.Context) {
	m, err := member(c)
	if err != nil {
		fail(c, err)
		return
	}

	var split ledger.Split
	if err := httputil.BindData(c, &split); err != nil {
		fail(c, err)
		return
	}

	allocation, err := co.Ledger.SubmitAllocation(c.Request.Context(), m.Scope(), split)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, Response[models.Allocation]{Data: allocation})
}

// @Summary		Allocation history
// @Description	Returns all allocations of the member, newest first
// @Tags			Allocation
// @Produce		json
// @Success		200	{object}	Response[[]models.Allocation]
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/members/{id}/allocations [get]
func (co Controller) GetAllocations(c *gin.Context) {
	m, err := member(c)
	if err != nil {
		fail(c, err)
		return
	}

	allocations, err := co.Ledger.Allocations(c.Request.Context(), m.Scope())
	if err != nil {
		fail(c, err)
		return
	}

	if allocations == nil {
		allocations = make([]models.Allocation, 0)
	}

	c.JSON(http.StatusOK, Response[[]models.Allocation]{Data: allocations})
}
