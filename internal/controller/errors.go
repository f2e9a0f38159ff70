package controller

import (
	"errors"

	"github.com/haritzismaildev/smart-learning-sub001/internal/util"

	"github.com/gin-gonic/gin"
)

// handleServiceError translates service sentinel errors to HTTP results.
// A denied authorization is surfaced as 403, never remapped to 404.
func handleServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrSessionNotFound), errors.Is(err, util.ErrUserNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrSessionAlreadyClosed):
		util.Conflict(ctx, err.Error())
	case errors.Is(err, util.ErrUnsupportedSubject),
		errors.Is(err, util.ErrTopicRequired),
		errors.Is(err, util.ErrNegativeCounters):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
