package controller

import (
	"strconv"

	"github.com/haritzismaildev/smart-learning-sub001/internal/model"
	"github.com/haritzismaildev/smart-learning-sub001/internal/service"
	"github.com/haritzismaildev/smart-learning-sub001/internal/util"
	"github.com/haritzismaildev/smart-learning-sub001/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	SessionService    *service.SessionService
	StatisticsService *service.StatisticsService
}

func NewSessionController(sessionService *service.SessionService, statisticsService *service.StatisticsService) *SessionController {
	return &SessionController{
		SessionService:    sessionService,
		StatisticsService: statisticsService,
	}
}

// @Summary Open a learning session
// @Description Start a new play session for the authenticated user
// @Tags sessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param session body service.OpenSessionRequest true "Subject and topic"
// @Success 201 {object} util.Response
// @Router /sessions [post]
func (c *SessionController) Open(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.OpenSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.SessionService.OpenSession(user.UserID, req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, session)
}

// @Summary Close a learning session
// @Description Submit final totals for a session; updates subject progress
// @Tags sessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param sessionId path int true "Session ID"
// @Param totals body model.SessionTotals true "Final session totals"
// @Success 200 {object} util.Response
// @Router /sessions/{sessionId}/close [put]
func (c *SessionController) Close(ctx *gin.Context) {
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

	var totals model.SessionTotals
	if err := ctx.ShouldBindJSON(&totals); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, progress, err := c.SessionService.CloseSession(user.UserID, uint(sessionID), totals)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	monitoring.SessionsClosed.WithLabelValues(string(session.Subject)).Inc()
	c.StatisticsService.InvalidateOverall(ctx.Request.Context(), session.UserID)

	util.Success(ctx, gin.H{
		"session":  session,
		"progress": progress,
	})
}

// @Summary Get a learning session
// @Tags sessions
// @Produce json
// @Security ApiKeyAuth
// @Param sessionId path int true "Session ID"
// @Success 200 {object} util.Response
// @Router /sessions/{sessionId} [get]
func (c *SessionController) Get(ctx *gin.Context) {
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

	session, err := c.SessionService.GetSession(user.UserID, user.Role, uint(sessionID))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, session)
}

// @Summary List a user's sessions
// @Description Most recent first, bounded by limit
// @Tags sessions
// @Produce json
// @Security ApiKeyAuth
// @Param userId path int true "User ID"
// @Param limit query int false "Maximum entries"
// @Success 200 {object} util.Response
// @Router /users/{userId}/sessions [get]
func (c *SessionController) List(ctx *gin.Context) {
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

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "0"))

	sessions, err := c.SessionService.ListSessions(user.UserID, user.Role, uint(targetUserID), limit)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Success(ctx, sessions)
}
