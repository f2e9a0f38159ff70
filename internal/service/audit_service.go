package service

import (
	"github.com/haritzismaildev/smart-learning-sub001/internal/model"
	"github.com/haritzismaildev/smart-learning-sub001/pkg/logger"

	"go.uber.org/zap"
)

// AuditService emits activity facts for an external audit sink. Writes are
// fire-and-forget: a failed audit write must never fail the operation that
// produced it.
type AuditService struct {
	Logs ActivityStore
}

func NewAuditService(logs ActivityStore) *AuditService {
	return &AuditService{Logs: logs}
}

func (s *AuditService) Record(actorID uint, action, category, description string) {
	entry := &model.ActivityLog{
		ActorID:     actorID,
		Action:      action,
		Category:    category,
		Description: description,
	}

	go func() {
		if err := s.Logs.Create(entry); err != nil {
			logger.Log.Warn("activity log write failed",
				zap.Uint("actorId", actorID),
				zap.String("action", action),
				zap.Error(err),
			)
		}
	}()
}
