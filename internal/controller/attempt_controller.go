package controller

import (
	"strconv"

	"github.com/haritzismaildev/smart-learning-sub001/internal/service"
	"github.com/haritzismaildev/smart-learning-sub001/internal/util"

	"github.com/gin-gonic/gin"
)

type AttemptController struct {
	AttemptService *service.AttemptService
}

func NewAttemptController(attemptService *service.AttemptService) *AttemptController {
	return &AttemptController{AttemptService: attemptService}
}

// @Summary Record a question attempt
// @Description Append one answered question to a session
// @Tags attempts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param attempt body service.RecordAttemptRequest true "Attempt"
// @Success 201 {object} util.Response
// @Router /attempts [post]
func (c *AttemptController) Record(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.RecordAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	attempt, err := c.AttemptService.RecordAttempt(user.UserID, req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, attempt)
}

// @Summary List a session's attempts
// @Description Insertion order
// @Tags attempts
// @Produce json
// @Security ApiKeyAuth
// @Param sessionId path int true "Session ID"
// @Success 200 {object} util.Response
// @Router /sessions/{sessionId}/attempts [get]
func (c *AttemptController) List(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	sessionID, err := strconv.Atoi(ctx.Param("sessionId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid session ID")
		return
	}

	attempts, err := c.AttemptService.ListAttempts(user.UserID, user.Role, uint(sessionID))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, attempts)
}
