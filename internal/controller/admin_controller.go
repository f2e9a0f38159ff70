package controller

import (
	"strconv"

	"github.com/haritzismaildev/smart-learning-sub001/internal/service"
	"github.com/haritzismaildev/smart-learning-sub001/internal/util"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	SessionService *service.SessionService
}

func NewAdminController(sessionService *service.SessionService) *AdminController {
	return &AdminController{SessionService: sessionService}
}

// @Summary List recent sessions across all users
// @Description Paginated, most recent first; the read is audited
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} util.Response
// @Router /admin/sessions [get]
func (c *AdminController) ListSessions(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	sessions, total, err := c.SessionService.ListRecentSessions(user.UserID, page, limit)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  sessions,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}
