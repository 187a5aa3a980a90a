package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/httputil"
	"github.com/nsdayo12311231-cmyk/family-helper-app/internal/models"
)

// RegisterFamilyRoutes registers the routes for families, their members
// and their tasks with the RouterGroup that is passed.
func RegisterFamilyRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsFamilies)
		r.POST("", CreateFamily)
	}
	{
		r.OPTIONS("/:id", OptionsFamilyDetail)
		r.GET("/:id", GetFamily)
	}
	{
		r.OPTIONS("/:id/members", OptionsFamilyChildren)
		r.GET("/:id/members", GetMembers)
		r.POST("/:id/members", CreateMember)
	}
	{
		r.OPTIONS("/:id/tasks", OptionsFamilyChildren)
		r.GET("/:id/tasks", GetTasks)
		r.POST("/:id/tasks", CreateTask)
	}
}

type FamilyEditable struct {
	Name string `json:"name" example:"Tanaka"` // Name of the family
}

type MemberEditable struct {
	Name string            `json:"name" example:"Hana"`  // Name of the member, unique within the family
	Role models.MemberRole `json:"role" example:"child"` // parent or child, defaults to child
}

type TaskEditable struct {
	Name       string     `json:"name" example:"Feed the cat"` // Name of the task, unique within the family
	Icon       string     `json:"icon" example:"🐱"`
	Reward     int64      `json:"reward" example:"50"`    // Money earned per completion
	DailyLimit int        `json:"dailyLimit" example:"1"` // Completions allowed per member and day, defaults to 1
	MemberID   *uuid.UUID `json:"memberId"`               // Only this member may complete the task. Empty means every member.
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Families
// @Success		204
// @Router			/v1/families [options]
func OptionsFamilies(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Families
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/families/{id} [options]
func OptionsFamilyDetail(c *gin.Context) {
	if _, err := family(c); err != nil {
		fail(c, err)
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Families
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/families/{id}/members [options]
// @Router			/v1/families/{id}/tasks [options]
func OptionsFamilyChildren(c *gin.Context) {
	if _, err := family(c); err != nil {
		fail(c, err)
		return
	}

	httputil.OptionsGetPost(c)
}

// family loads the family addressed by the id parameter.
func family(c *gin.Context) (models.Family, error) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		return models.Family{}, err
	}

	var f models.Family
	err := models.DB.Where("id = ?", uri.ID.UUID).First(&f).Error
	return f, err
}

// @Summary		Create family
// @Description	Creates a new family
// @Tags			Families
// @Accept			json
// @Produce		json
// @Success		201		{object}	Response[models.Family]
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			family	body		FamilyEditable	true	"Family"
// @Router			/v1/families [post]
func CreateFamily(c *gin.Context) {
	var data FamilyEditable
	if err := httputil.BindData(c, &data); err != nil {
		fail(c, err)
		return
	}

	f := models.Family{Name: data.Name}
	if err := models.DB.Create(&f).Error; err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, Response[models.Family]{Data: f})
}

// @Summary		Get family
// @Description	Returns a specific family
// @Tags			Families
// @Produce		json
// @Success		200	{object}	Response[models.Family]
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/families/{id} [get]
func GetFamily(c *gin.Context) {
	f, err := family(c)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, Response[models.Family]{Data: f})
}

// @Summary		List members
// @Description	Returns all members of a family, sorted by name
// @Tags			Families
// @Produce		json
// @Success		200	{object}	Response[[]models.Member]
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/families/{id}/members [get]
func GetMembers(c *gin.Context) {
	f, err := family(c)
	if err != nil {
		fail(c, err)
		return
	}

	members := make([]models.Member, 0)
	err = models.DB.Where("family_id = ?", f.ID).Order("name ASC").Find(&members).Error
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, Response[[]models.Member]{Data: members})
}

// @Summary		Create member
// @Description	Creates a member of the family together with an empty ledger
// @Tags			Families
// @Accept			json
// @Produce		json
// @Success		201		{object}	Response[models.Member]
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			member	body		MemberEditable	true	"Member"
// @Router			/v1/families/{id}/members [post]
func CreateMember(c *gin.Context) {
	f, err := family(c)
	if err != nil {
		fail(c, err)
		return
	}

	var data MemberEditable
	if err := httputil.BindData(c, &data); err != nil {
		fail(c, err)
		return
	}

	m := models.Member{
		FamilyID: f.ID,
		Name:     data.Name,
		Role:     data.Role,
	}

	if err := models.DB.Create(&m).Error; err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, Response[models.Member]{Data: m})
}

// @Summary		List tasks
// @Description	Returns all tasks of a family, sorted by name
// @Tags			Families
// @Produce		json
// @Success		200	{object}	Response[[]models.Task]
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/families/{id}/tasks [get]
func GetTasks(c *gin.Context) {
	f, err := family(c)
	if err != nil {
		fail(c, err)
		return
	}

	tasks := make([]models.Task, 0)
	err = models.DB.Where("family_id = ?", f.ID).Order("name ASC").Find(&tasks).Error
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, Response[[]models.Task]{Data: tasks})
}

// @Summary		Create task
// @Description	Creates a task of the family
// @Tags			Families
// @Accept			json
// @Produce		json
// @Success		201		{object}	Response[models.Task]
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			task	body		TaskEditable	true	"Task"
// @Router			/v1/families/{id}/tasks [post]
func CreateTask(c *gin.Context) {
	f, err := family(c)
	if err != nil {
		fail(c, err)
		return
	}

	var data TaskEditable
	if err := httputil.BindData(c, &data); err != nil {
		fail(c, err)
		return
	}

	if data.MemberID != nil {
		err := models.DB.Where("id = ? AND family_id = ?", *data.MemberID, f.ID).First(&models.Member{}).Error
		if errors.Is(err, models.ErrResourceNotFound) {
			err = errMemberNotInFamily
		}

		if err != nil {
			fail(c, err)
			return
		}
	}

	t := models.Task{
		FamilyID:   f.ID,
		MemberID:   data.MemberID,
		Name:       data.Name,
		Icon:       data.Icon,
		Reward:     data.Reward,
		DailyLimit: data.DailyLimit,
	}

	if err := models.DB.Create(&t).Error; err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, Response[models.Task]{Data: t})
}
