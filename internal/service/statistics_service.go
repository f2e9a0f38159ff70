package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/haritzismaildev/smart-learning-sub001/internal/model"
	"github.com/haritzismaildev/smart-learning-sub001/internal/util"
	"github.com/haritzismaildev/smart-learning-sub001/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const overallStatsTTL = 2 * time.Minute

// StatisticsService is the read side: per-subject statistics, overall
// summaries and the parent view over children. It never writes progress.
type StatisticsService struct {
	Progress ProgressStore
	Sessions SessionStore
	Users    UserStore
	Authz    *AuthzService
	Audit    *AuditService
	Redis    *redis.Client
}

func NewStatisticsService(
	progress ProgressStore,
	sessions SessionStore,
	users UserStore,
	authz *AuthzService,
	audit *AuditService,
	rdb *redis.Client,
) *StatisticsService {
	return &StatisticsService{
		Progress: progress,
		Sessions: sessions,
		Users:    users,
		Authz:    authz,
		Audit:    audit,
		Redis:    rdb,
	}
}

type OverallStatistics struct {
	UserID         uint                    `json:"userId"`
	TotalPoints    int                     `json:"totalPoints"`
	TotalCorrect   int                     `json:"totalCorrect"`
	TotalAttempted int                     `json:"totalAttempted"`
	Subjects       []model.SubjectProgress `json:"subjects"`
	RecentSessions []model.LearningSession `json:"recentSessions"`
}

type ChildProgress struct {
	Child    model.ChildSummary      `json:"child"`
	Progress []model.SubjectProgress `json:"progress"`
	Sessions []model.LearningSession `json:"sessions"`
	Error    string                  `json:"error,omitempty"`
}

// GetStatistics returns the progress row for one (user, subject) pair. A
// missing row is the valid "no progress yet" zero state, never an error.
func (s *StatisticsService) GetStatistics(requesterID uint, role model.UserRole, targetUserID uint, subject model.Subject) (*model.SubjectProgress, error) {
	if !subject.Valid() {
		return nil, util.ErrUnsupportedSubject
	}
	if err := s.Authz.Authorize(requesterID, role, targetUserID); err != nil {
		return nil, err
	}

	progress, err := s.Progress.FindByUserAndSubject(targetUserID, subject)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		progress = &model.SubjectProgress{UserID: targetUserID, Subject: subject}
	}
	return progress, nil
}

// GetBreakdown returns one row per supported subject, zero-filled for
// subjects the user has not closed a session in yet.
func (s *StatisticsService) GetBreakdown(requesterID uint, role model.UserRole, targetUserID uint) ([]model.SubjectProgress, error) {
	if err := s.Authz.Authorize(requesterID, role, targetUserID); err != nil {
		return nil, err
	}
	return s.breakdown(targetUserID)
}

func (s *StatisticsService) breakdown(userID uint) ([]model.SubjectProgress, error) {
	rows, err := s.Progress.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	bySubject := make(map[model.Subject]model.SubjectProgress, len(rows))
	for _, row := range rows {
		bySubject[row.Subject] = row
	}

	result := make([]model.SubjectProgress, 0, 2)
	for _, subject := range []model.Subject{model.SubjectMath, model.SubjectEnglish} {
		if row, ok := bySubject[subject]; ok {
			result = append(result, row)
		} else {
			result = append(result, model.SubjectProgress{UserID: userID, Subject: subject})
		}
	}
	return result, nil
}

func (s *StatisticsService) GetOverallStatistics(ctx context.Context, requesterID uint, role model.UserRole, targetUserID uint) (*OverallStatistics, error) {
	if err := s.Authz.Authorize(requesterID, role, targetUserID); err != nil {
		return nil, err
	}

	cacheKey := overallStatsKey(targetUserID)
	if s.Redis != nil {
		if val, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
			var cached OverallStatistics
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return &cached, nil
			}
		} else if err != redis.Nil {
			logger.Log.Warn("overall stats cache read failed", zap.Error(err))
		}
	}

	subjects, err := s.breakdown(targetUserID)
	if err != nil {
		return nil, err
	}

	sessions, err := s.Sessions.ListByUser(targetUserID, 10)
	if err != nil {
		return nil, err
	}

	stats := &OverallStatistics{
		UserID:         targetUserID,
		Subjects:       subjects,
		RecentSessions: sessions,
	}
	for _, row := range subjects {
		stats.TotalPoints += row.Points
		stats.TotalCorrect += row.CorrectCount
		stats.TotalAttempted += row.AttemptedCount
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := s.Redis.Set(ctx, cacheKey, payload, overallStatsTTL).Err(); err != nil {
				logger.Log.Warn("overall stats cache write failed", zap.Error(err))
			}
		}
	}

	return stats, nil
}

// InvalidateOverall drops the cached summary after a session close so the
// next read reflects the new totals.
func (s *StatisticsService) InvalidateOverall(ctx context.Context, userID uint) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, overallStatsKey(userID)).Err(); err != nil {
		logger.Log.Warn("overall stats cache invalidation failed",
			zap.Uint("userId", userID), zap.Error(err))
	}
}

// GetChildrenProgress fans out per child. One child's store failure marks
// that child's entry instead of failing the whole view.
func (s *StatisticsService) GetChildrenProgress(parentID uint) ([]ChildProgress, error) {
	children, err := s.Users.FindChildren(parentID)
	if err != nil {
		return nil, err
	}

	result := make([]ChildProgress, 0, len(children))
	for _, child := range children {
		entry := ChildProgress{
			Child: model.ChildSummary{
				ID:         child.ID,
				FullName:   child.FullName,
				Age:        child.Age,
				GradeLevel: child.GradeLevel,
			},
		}

		progress, err := s.breakdown(child.ID)
		if err != nil {
			logger.Log.Warn("child progress lookup failed",
				zap.Uint("childId", child.ID), zap.Error(err))
			entry.Error = "progress unavailable"
			result = append(result, entry)
			continue
		}
		entry.Progress = progress

		sessions, err := s.Sessions.ListByUser(child.ID, 5)
		if err != nil {
			logger.Log.Warn("child sessions lookup failed",
				zap.Uint("childId", child.ID), zap.Error(err))
			entry.Error = "sessions unavailable"
			result = append(result, entry)
			continue
		}
		entry.Sessions = sessions

		result = append(result, entry)
	}

	s.Audit.Record(parentID, "children_progress_viewed", "statistics",
		fmt.Sprintf("viewed progress of %d children", len(children)))

	return result, nil
}

func overallStatsKey(userID uint) string {
	return fmt.Sprintf("stats:overall:%d", userID)
}
