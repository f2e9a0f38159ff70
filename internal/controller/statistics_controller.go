package controller

import (
	"strconv"

	"github.com/haritzismaildev/smart-learning-sub001/internal/model"
	"github.com/haritzismaildev/smart-learning-sub001/internal/service"
	"github.com/haritzismaildev/smart-learning-sub001/internal/util"

	"github.com/gin-gonic/gin"
)

type StatisticsController struct {
	StatisticsService *service.StatisticsService
}

func NewStatisticsController(statisticsService *service.StatisticsService) *StatisticsController {
	return &StatisticsController{StatisticsService: statisticsService}
}

// @Summary Get per-subject statistics
// @Description Single subject when the subject query is set, otherwise the full breakdown. Missing progress is a zero state, not an error.
// @Tags statistics
// @Produce json
// @Security ApiKeyAuth
// @Param userId path int true "User ID"
// @Param subject query string false "Subject (math or english)"
// @Success 200 {object} util.Response
// @Router /users/{userId}/statistics [get]
func (c *StatisticsController) GetStatistics(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	targetUserID, err := strconv.Atoi(ctx.Param("userId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid user ID")
		return
	}

	if subject := ctx.Query("subject"); subject != "" {
		progress, err := c.StatisticsService.GetStatistics(user.UserID, user.Role, uint(targetUserID), model.Subject(subject))
		if err != nil {
			handleServiceError(ctx, err)
			return
		}
		util.Success(ctx, progress)
		return
	}

	breakdown, err := c.StatisticsService.GetBreakdown(user.UserID, user.Role, uint(targetUserID))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, breakdown)
}

// @Summary Get overall statistics
// @Description Summary across subjects plus recent sessions
// @Tags statistics
// @Produce json
// @Security ApiKeyAuth
// @Param userId path int true "User ID"
// @Success 200 {object} util.Response
// @Router /users/{userId}/statistics/overall [get]
func (c *StatisticsController) GetOverall(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	targetUserID, err := strconv.Atoi(ctx.Param("userId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid user ID")
		return
	}

	stats, err := c.StatisticsService.GetOverallStatistics(ctx.Request.Context(), user.UserID, user.Role, uint(targetUserID))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, stats)
}

// @Summary Get children progress
// @Description Per-child progress and recent sessions for the authenticated parent
// @Tags statistics
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /parent/children/progress [get]
func (c *StatisticsController) GetChildrenProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	progress, err := c.StatisticsService.GetChildrenProgress(user.UserID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}
